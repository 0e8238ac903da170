// Package answer implements the Answer repository using PostgreSQL.
package answer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/qaboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/qaboard-backend/internal/domain"
)

// Repo provides answer persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new answer repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const answerColumns = `id, question_id, content, author_id, author_name, is_accepted, accepted_at,
       vote_count, upvote_count, downvote_count, blinded_at, deleted_at, created_at, updated_at`

const getByIDSQL = `SELECT ` + answerColumns + ` FROM answers WHERE id = $1`

const getForUpdateSQL = `SELECT ` + answerColumns + ` FROM answers WHERE id = $1 FOR UPDATE`

const listByQuestionSQL = `
SELECT ` + answerColumns + `
FROM answers
WHERE question_id = $1 AND deleted_at IS NULL
ORDER BY is_accepted DESC, vote_count DESC, created_at ASC, id`

const listByQuestionsSQL = `
SELECT ` + answerColumns + `
FROM answers
WHERE question_id = ANY($1::uuid[]) AND deleted_at IS NULL
ORDER BY question_id, is_accepted DESC, vote_count DESC, created_at ASC, id`

const createSQL = `
INSERT INTO answers (id, question_id, content, author_id, author_name)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + answerColumns

const updateContentSQL = `
UPDATE answers SET content = $2, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + answerColumns

const setAcceptedSQL = `
UPDATE answers SET
    is_accepted = $2,
    accepted_at = CASE WHEN $2 THEN now() ELSE NULL END,
    updated_at  = now()
WHERE id = $1 AND deleted_at IS NULL`

const softDeleteSQL = `
UPDATE answers SET deleted_at = now(), is_accepted = false, accepted_at = NULL, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

const softDeleteByQuestionSQL = `
UPDATE answers SET deleted_at = now(), is_accepted = false, accepted_at = NULL, updated_at = now()
WHERE question_id = $1 AND deleted_at IS NULL`

const setVoteCountsSQL = `
UPDATE answers SET upvote_count = $2, downvote_count = $3, vote_count = $2 - $3
WHERE id = $1`

const setBlindedSQL = `
UPDATE answers SET blinded_at = CASE WHEN $2 THEN now() ELSE NULL END
WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an answer by primary key, including soft-deleted rows.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAnswer(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "answer", id)
	}

	return &a, nil
}

// GetForUpdate returns an answer and locks its row until the surrounding
// transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	if !postgres.InTx(ctx) {
		return nil, errors.New("answer repo: GetForUpdate requires a transaction")
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAnswer(querier.QueryRow(ctx, getForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "answer", id)
	}

	return &a, nil
}

// ListByQuestion returns the non-deleted answers of a question, the accepted
// answer first, then by vote count.
// Returns an empty slice (not nil) when there are no answers.
func (r *Repo) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]domain.Answer, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByQuestionSQL, questionID)
	if err != nil {
		return nil, fmt.Errorf("list answers by question: %w", err)
	}
	defer rows.Close()

	answers, err := scanAnswers(rows)
	if err != nil {
		return nil, fmt.Errorf("list answers by question: %w", err)
	}

	return answers, nil
}

// ListByQuestions returns the non-deleted answers of several questions in one
// query, grouped by question and ordered within a question like
// ListByQuestion.
func (r *Repo) ListByQuestions(ctx context.Context, questionIDs []uuid.UUID) ([]domain.Answer, error) {
	if len(questionIDs) == 0 {
		return []domain.Answer{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByQuestionsSQL, questionIDs)
	if err != nil {
		return nil, fmt.Errorf("list answers by questions: %w", err)
	}
	defer rows.Close()

	answers, err := scanAnswers(rows)
	if err != nil {
		return nil, fmt.Errorf("list answers by questions: %w", err)
	}

	return answers, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new answer and returns the persisted row.
// Returns domain.ErrNotFound if the question does not exist.
func (r *Repo) Create(ctx context.Context, a *domain.Answer) (*domain.Answer, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := a.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	created, err := scanAnswer(querier.QueryRow(ctx, createSQL,
		id, a.QuestionID, a.Content, a.AuthorID, a.AuthorName,
	))
	if err != nil {
		return nil, postgres.MapError(err, "answer", id)
	}

	return &created, nil
}

// UpdateContent replaces the answer body.
func (r *Repo) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*domain.Answer, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanAnswer(querier.QueryRow(ctx, updateContentSQL, id, content))
	if err != nil {
		return nil, postgres.MapError(err, "answer", id)
	}

	return &updated, nil
}

// SetAccepted sets or clears the accepted flag. A second accepted answer on
// the same question violates ux_answers_one_accepted and maps to
// domain.ErrAlreadyExists.
func (r *Repo) SetAccepted(ctx context.Context, id uuid.UUID, accepted bool) error {
	return r.exec(ctx, setAcceptedSQL, id, accepted)
}

// SoftDelete marks an answer deleted and drops its accepted flag.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.exec(ctx, softDeleteSQL, id)
}

// SoftDeleteByQuestion marks every live answer of a question deleted and
// returns how many were affected.
func (r *Repo) SoftDeleteByQuestion(ctx context.Context, questionID uuid.UUID) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, softDeleteByQuestionSQL, questionID)
	if err != nil {
		return 0, postgres.MapError(err, "question", questionID)
	}

	return tag.RowsAffected(), nil
}

// SetVoteCounts stores a recomputed vote tally.
func (r *Repo) SetVoteCounts(ctx context.Context, id uuid.UUID, tally domain.VoteTally) error {
	return r.exec(ctx, setVoteCountsSQL, id, tally.Up, tally.Down)
}

// SetBlinded sets or clears the moderation blind flag.
func (r *Repo) SetBlinded(ctx context.Context, id uuid.UUID, blinded bool) error {
	return r.exec(ctx, setBlindedSQL, id, blinded)
}

// exec runs a single-row UPDATE keyed by id and reports domain.ErrNotFound
// when nothing matched.
func (r *Repo) exec(ctx context.Context, sql string, id uuid.UUID, args ...any) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, sql, append([]any{id}, args...)...)
	if err != nil {
		return postgres.MapError(err, "answer", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("answer %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanAnswers scans multiple rows into a domain.Answer slice.
func scanAnswers(rows pgx.Rows) ([]domain.Answer, error) {
	var answers []domain.Answer
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if answers == nil {
		answers = []domain.Answer{}
	}

	return answers, nil
}

// scanAnswer scans a single answer row from pgx.Row or pgx.Rows.
func scanAnswer(row pgx.Row) (domain.Answer, error) {
	var a domain.Answer

	if err := row.Scan(&a.ID, &a.QuestionID, &a.Content, &a.AuthorID, &a.AuthorName,
		&a.IsAccepted, &a.AcceptedAt, &a.VoteCount, &a.UpvoteCount, &a.DownvoteCount,
		&a.BlindedAt, &a.DeletedAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return domain.Answer{}, err
	}

	return a, nil
}
