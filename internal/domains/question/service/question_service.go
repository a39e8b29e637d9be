package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"questions-backend/internal/domains/question"
	"questions-backend/pkg/logger"
)

type questionServiceImpl struct {
	repository question.Repository
	now        func() time.Time
}

func NewQuestionService(repo question.Repository) question.Service {
	return NewQuestionServiceWithClock(repo, time.Now)
}

// NewQuestionServiceWithClock lets tests control created_at and updated_at.
func NewQuestionServiceWithClock(repo question.Repository, now func() time.Time) question.Service {
	return &questionServiceImpl{
		repository: repo,
		now:        now,
	}
}

// ========== CREATE ==========
func (s *questionServiceImpl) Create(ctx context.Context, req *question.CreateQuestionRequest) (*question.Question, error) {
	if req == nil {
		return nil, question.ErrInvalidInput
	}
	if err := req.Validate(); err != nil {
		logger.Info("Create: validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", question.ErrInvalidInput, err)
	}

	entity := question.NewQuestion(req.Title, req.Description, req.Category, s.now().UTC())

	created, err := s.repository.Create(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}

	logger.Info("question created", map[string]interface{}{
		"id": created.ID,
	})
	return created, nil
}

// ========== LIST ==========
func (s *questionServiceImpl) List(ctx context.Context, filter question.QuestionFilter) ([]question.Question, error) {
	questions, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	if questions == nil {
		questions = []question.Question{}
	}
	return questions, nil
}

// ========== GET BY ID ==========
func (s *questionServiceImpl) GetByID(ctx context.Context, id string) (*question.Question, error) {
	q, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, question.ErrQuestionNotFound) {
			return nil, question.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	return q, nil
}

// ========== UPDATE ==========
// Full replacement. The row must exist before anything is written.
func (s *questionServiceImpl) Update(ctx context.Context, id string, req *question.UpdateQuestionRequest) error {
	if req == nil {
		return question.ErrInvalidInput
	}
	if err := req.Validate(); err != nil {
		logger.Info("Update: validation failed", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return fmt.Errorf("%w: %v", question.ErrInvalidInput, err)
	}

	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, question.ErrQuestionNotFound) {
			return question.ErrQuestionNotFound
		}
		return fmt.Errorf("update question: %w", err)
	}

	existing.Replace(req.Title, req.Description, req.Category, s.now().UTC())

	if err := s.repository.Update(ctx, id, existing); err != nil {
		if errors.Is(err, question.ErrQuestionNotFound) {
			return question.ErrQuestionNotFound
		}
		return fmt.Errorf("update question: %w", err)
	}

	logger.Info("question updated", map[string]interface{}{
		"id": existing.ID,
	})
	return nil
}

// ========== DELETE ==========
func (s *questionServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		if errors.Is(err, question.ErrQuestionNotFound) {
			return question.ErrQuestionNotFound
		}
		return fmt.Errorf("delete question: %w", err)
	}

	logger.Info("question deleted", map[string]interface{}{
		"id": id,
	})
	return nil
}
