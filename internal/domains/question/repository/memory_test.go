package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questions-backend/internal/domains/question"
)

func seedMemory(t *testing.T, repo *MemoryRepository, rows ...[3]string) []*question.Question {
	t.Helper()
	now := time.Now()
	var out []*question.Question
	for _, r := range rows {
		created, err := repo.Create(context.Background(), question.NewQuestion(r[0], r[1], r[2], now))
		require.NoError(t, err)
		out = append(out, created)
	}
	return out
}

func TestMemoryRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	repo := NewMemoryRepository()
	created := seedMemory(t, repo, [3]string{"A", "a", "x"}, [3]string{"B", "b", "y"})

	assert.Equal(t, int64(1), created[0].ID)
	assert.Equal(t, int64(2), created[1].ID)

	// ids are never reused after a delete
	require.NoError(t, repo.Delete(context.Background(), "2"))
	again := seedMemory(t, repo, [3]string{"C", "c", "z"})
	assert.Equal(t, int64(3), again[0].ID)
}

func TestMemoryRepository_List(t *testing.T) {
	repo := NewMemoryRepository()
	seedMemory(t, repo,
		[3]string{"Foo basics", "d", "software"},
		[3]string{"Advanced FOO", "d", "science"},
		[3]string{"Bar", "d", "software"},
	)

	tests := []struct {
		name    string
		filter  question.QuestionFilter
		wantIDs []int64
	}{
		{name: "all", filter: question.QuestionFilter{}, wantIDs: []int64{1, 2, 3}},
		{name: "title case-insensitive substring", filter: question.QuestionFilter{Title: "foo"}, wantIDs: []int64{1, 2}},
		{name: "category exact", filter: question.QuestionFilter{Category: "software"}, wantIDs: []int64{1, 3}},
		{name: "category is case sensitive", filter: question.QuestionFilter{Category: "Software"}, wantIDs: []int64{}},
		{name: "both", filter: question.QuestionFilter{Title: "foo", Category: "software"}, wantIDs: []int64{1}},
		{name: "no match", filter: question.QuestionFilter{Title: "zzz"}, wantIDs: []int64{}},
		{name: "percent is a wildcard", filter: question.QuestionFilter{Title: "%"}, wantIDs: []int64{1, 2, 3}},
		{name: "underscore is one character", filter: question.QuestionFilter{Title: "f_o"}, wantIDs: []int64{1, 2}},
		{name: "percent inside the title", filter: question.QuestionFilter{Title: "adv%foo"}, wantIDs: []int64{2}},
		{name: "escaped percent is literal", filter: question.QuestionFilter{Title: `\%`}, wantIDs: []int64{}},
		{name: "regexp metacharacters are literal", filter: question.QuestionFilter{Title: "fo."}, wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(context.Background(), tt.filter)
			require.NoError(t, err)
			require.NotNil(t, got)

			ids := make([]int64, 0, len(got))
			for _, q := range got {
				ids = append(ids, q.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestMemoryRepository_GetUpdateDelete(t *testing.T) {
	repo := NewMemoryRepository()
	created := seedMemory(t, repo, [3]string{"Foo", "Bar", "software"})[0]
	ctx := context.Background()

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	later := created.CreatedAt.Add(time.Hour)
	err = repo.Update(ctx, "1", &question.Question{Title: "New", Description: "D", Category: "C", UpdatedAt: later})
	require.NoError(t, err)

	got, err = repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
	assert.Equal(t, later, got.UpdatedAt)

	require.NoError(t, repo.Delete(ctx, "1"))
	_, err = repo.GetByID(ctx, "1")
	assert.ErrorIs(t, err, question.ErrQuestionNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "1"), question.ErrQuestionNotFound)
	assert.ErrorIs(t, repo.Update(ctx, "1", &question.Question{}), question.ErrQuestionNotFound)
}

func TestMemoryRepository_InvalidID(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "abc")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, question.ErrQuestionNotFound)

	assert.Error(t, repo.Update(ctx, "abc", &question.Question{}))
	assert.Error(t, repo.Delete(ctx, "abc"))
}

func TestMemoryRepository_ListEscapedWildcards(t *testing.T) {
	repo := NewMemoryRepository()
	seedMemory(t, repo,
		[3]string{"100% coverage", "d", "testing"},
		[3]string{"1000 coverage", "d", "testing"},
		[3]string{"snake_case names", "d", "style"},
		[3]string{"snakeXcase names", "d", "style"},
	)

	tests := []struct {
		title   string
		wantIDs []int64
	}{
		{title: `100\%`, wantIDs: []int64{1}},
		{title: "100%", wantIDs: []int64{1, 2}},
		{title: `snake\_case`, wantIDs: []int64{3}},
		{title: "snake_case", wantIDs: []int64{3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got, err := repo.List(context.Background(), question.QuestionFilter{Title: tt.title})
			require.NoError(t, err)

			ids := make([]int64, 0, len(got))
			for _, q := range got {
				ids = append(ids, q.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
