package question

import "time"

// Question is the only entity of the service, one row of the questions table.
type Question struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // set once at creation
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"` // refreshed on every update
}

// NewQuestion builds an unsaved question stamped with now for both timestamps.
func NewQuestion(title, description, category string, now time.Time) *Question {
	return &Question{
		Title:       title,
		Description: description,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Replace overwrites the mutable fields and refreshes UpdatedAt.
// UpdatedAt never moves before CreatedAt.
func (q *Question) Replace(title, description, category string, now time.Time) {
	q.Title = title
	q.Description = description
	q.Category = category
	if now.Before(q.CreatedAt) {
		now = q.CreatedAt
	}
	q.UpdatedAt = now
}
