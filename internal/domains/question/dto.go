package question

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateQuestionRequest - POST /questions
type CreateQuestionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Validate requires all three fields to be present and non-empty.
func (r CreateQuestionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Category, validation.Required),
	)
}

// UpdateQuestionRequest - PUT /questions/:id
// Full replacement, every field is required.
type UpdateQuestionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (r UpdateQuestionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Category, validation.Required),
	)
}

// QuestionFilter - query parameters of GET /questions
type QuestionFilter struct {
	Title    string `form:"title"`    // case-insensitive substring match
	Category string `form:"category"` // exact match
}
