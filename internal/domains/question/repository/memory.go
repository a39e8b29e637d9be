package repository

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"questions-backend/internal/domains/question"
)

// MemoryRepository is a mutex-guarded in-process store used with
// STORAGE_DRIVER=memory and in tests. Ids come from a counter and are
// never reused.
type MemoryRepository struct {
	mu        sync.RWMutex
	questions map[int64]question.Question
	nextID    int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		questions: make(map[int64]question.Question),
		nextID:    1,
	}
}

var _ question.Repository = (*MemoryRepository)(nil)

func (m *MemoryRepository) Create(ctx context.Context, q *question.Question) (*question.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	created := *q
	created.ID = m.nextID
	m.nextID++
	m.questions[created.ID] = created

	return &created, nil
}

func (m *MemoryRepository) List(ctx context.Context, filter question.QuestionFilter) ([]question.Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var title *regexp.Regexp
	if filter.Title != "" {
		title = ilikePattern("%" + filter.Title + "%")
	}

	result := make([]question.Question, 0)
	for _, q := range m.questions {
		if title != nil && !title.MatchString(q.Title) {
			continue
		}
		if filter.Category != "" && q.Category != filter.Category {
			continue
		}
		result = append(result, q)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MemoryRepository) GetByID(ctx context.Context, id string) (*question.Question, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	q, ok := m.questions[key]
	if !ok {
		return nil, question.ErrQuestionNotFound
	}
	return &q, nil
}

func (m *MemoryRepository) Update(ctx context.Context, id string, q *question.Question) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.questions[key]
	if !ok {
		return question.ErrQuestionNotFound
	}

	existing.Title = q.Title
	existing.Description = q.Description
	existing.Category = q.Category
	existing.UpdatedAt = q.UpdatedAt
	m.questions[key] = existing

	return nil
}

func (m *MemoryRepository) Delete(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.questions[key]; !ok {
		return question.ErrQuestionNotFound
	}
	delete(m.questions, key)

	return nil
}

// parseID rejects ids the way an integer primary key column would.
func parseID(id string) (int64, error) {
	key, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid input syntax for question id %q: %w", id, err)
	}
	return key, nil
}

// ilikePattern compiles a SQL ILIKE pattern: % is any run, _ is one
// character, a backslash escapes the next character.
func ilikePattern(pattern string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("(?is)^")

	escaped := false
	for _, r := range pattern {
		switch {
		case escaped:
			b.WriteString(regexp.QuoteMeta(string(r)))
			escaped = false
		case r == '\\':
			escaped = true
		case r == '%':
			b.WriteString(".*")
		case r == '_':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	if escaped {
		b.WriteString(regexp.QuoteMeta("\\"))
	}

	b.WriteString("$")
	return regexp.MustCompile(b.String())
}
