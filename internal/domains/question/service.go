package question

import "context"

// Service holds the business rules of the question resource.
type Service interface {
	Create(ctx context.Context, req *CreateQuestionRequest) (*Question, error)
	List(ctx context.Context, filter QuestionFilter) ([]Question, error)
	GetByID(ctx context.Context, id string) (*Question, error)
	Update(ctx context.Context, id string, req *UpdateQuestionRequest) error
	Delete(ctx context.Context, id string) error
}
