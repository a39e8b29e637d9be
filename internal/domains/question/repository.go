package question

import "context"

// Repository is the data access contract for questions.
// Ids are passed through as received from the request path; the storage
// decides whether they are well formed.
type Repository interface {
	// Create inserts q and returns it with its generated ID.
	Create(ctx context.Context, q *Question) (*Question, error)

	// List returns every question matching filter; empty filter fields are ignored.
	List(ctx context.Context, filter QuestionFilter) ([]Question, error)

	// GetByID returns ErrQuestionNotFound when no row matches.
	GetByID(ctx context.Context, id string) (*Question, error)

	// Update writes title, description, category and updated_at of q to row id.
	// Returns ErrQuestionNotFound when no row was affected.
	Update(ctx context.Context, id string, q *Question) error

	// Delete returns ErrQuestionNotFound when no row was affected.
	Delete(ctx context.Context, id string) error
}
