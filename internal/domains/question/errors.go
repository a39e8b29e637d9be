package question

import "errors"

var (
	// Validation Errors
	ErrInvalidInput = errors.New("missing or invalid question data")

	// Business Rule Errors
	ErrQuestionNotFound = errors.New("question not found")

	// Database Errors
	ErrDatabaseQuery = errors.New("database query error")
)
