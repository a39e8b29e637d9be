package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"questions-backend/internal/domains/question"
	"questions-backend/internal/infrastructure/database"
	"questions-backend/internal/shared/utils"
	"questions-backend/pkg/metrics"
)

const questionColumns = `id, title, description, category, created_at, updated_at`

// postgresRepository implements question.Repository with one
// parameterized statement per call on the shared pool.
type postgresRepository struct {
	db database.Querier
}

// NewPostgresRepository receives the pool (or any Querier) from the container.
func NewPostgresRepository(db database.Querier) question.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, q *question.Question) (*question.Question, error) {
	query := `
        INSERT INTO questions (title, description, category, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + questionColumns

	var created question.Question
	err := r.db.QueryRow(
		ctx,
		query,
		q.Title,
		q.Description,
		q.Category,
		q.CreatedAt,
		q.UpdatedAt,
	).Scan(
		&created.ID,
		&created.Title,
		&created.Description,
		&created.Category,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	metrics.ObserveQuery("insert", err)

	if err != nil {
		log.Error().Err(err).Msg("Create: database error")
		return nil, fmt.Errorf("failed to create question: %w: %w", question.ErrDatabaseQuery, err)
	}

	return &created, nil
}

func (r *postgresRepository) List(ctx context.Context, filter question.QuestionFilter) ([]question.Question, error) {
	where, args := utils.NewWhereBuilder().
		AddIf(filter.Title != "", "title ILIKE ?", "%"+filter.Title+"%").
		AddIf(filter.Category != "", "category = ?", filter.Category).
		Build()

	query := `SELECT ` + questionColumns + ` FROM questions` + where + ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	metrics.ObserveQuery("select", err)
	if err != nil {
		log.Error().Err(err).Msg("List: database error")
		return nil, fmt.Errorf("failed to query questions: %w: %w", question.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	questions := make([]question.Question, 0)
	for rows.Next() {
		var q question.Question
		if err := rows.Scan(
			&q.ID,
			&q.Title,
			&q.Description,
			&q.Category,
			&q.CreatedAt,
			&q.UpdatedAt,
		); err != nil {
			log.Error().Err(err).Msg("List: scan error")
			return nil, fmt.Errorf("failed to scan question: %w: %w", question.ErrDatabaseQuery, err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		log.Error().Err(err).Msg("List: rows error")
		return nil, fmt.Errorf("error iterating questions: %w: %w", question.ErrDatabaseQuery, err)
	}

	return questions, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*question.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`

	var q question.Question
	err := r.db.QueryRow(ctx, query, id).Scan(
		&q.ID,
		&q.Title,
		&q.Description,
		&q.Category,
		&q.CreatedAt,
		&q.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			metrics.ObserveQuery("select", nil)
			return nil, question.ErrQuestionNotFound
		}
		metrics.ObserveQuery("select", err)
		log.Error().Err(err).Str("id", id).Msg("GetByID: database error")
		return nil, fmt.Errorf("failed to get question by id: %w: %w", question.ErrDatabaseQuery, err)
	}
	metrics.ObserveQuery("select", nil)

	return &q, nil
}

func (r *postgresRepository) Update(ctx context.Context, id string, q *question.Question) error {
	query := `
        UPDATE questions
        SET title = $1, description = $2, category = $3, updated_at = $4
        WHERE id = $5`

	cmdTag, err := r.db.Exec(ctx, query, q.Title, q.Description, q.Category, q.UpdatedAt, id)
	metrics.ObserveQuery("update", err)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Update: database error")
		return fmt.Errorf("failed to update question: %w: %w", question.ErrDatabaseQuery, err)
	}

	// row vanished between the existence check and this statement
	if cmdTag.RowsAffected() == 0 {
		return question.ErrQuestionNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	metrics.ObserveQuery("delete", err)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Delete: database error")
		return fmt.Errorf("failed to delete question: %w: %w", question.ErrDatabaseQuery, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return question.ErrQuestionNotFound
	}

	return nil
}
