// Package question implements the Question repository using PostgreSQL.
// It owns the questions table: row locking for lifecycle transitions,
// derived counter recomputation and filtered listing.
package question

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/qaboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/qaboard-backend/internal/domain"
)

// errNoTx is returned by operations that must run inside TxManager.RunInTx.
var errNoTx = errors.New("question repo: operation requires a transaction")

// Repo provides question persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new question repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const questionColumns = `id, title, content, author_id, author_name, status, view_count,
       vote_count, upvote_count, downvote_count, answer_count, accepted_answer_id,
       tags, bounty_points, blinded_at, deleted_at, created_at, updated_at`

const getByIDSQL = `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`

const getForUpdateSQL = `SELECT ` + questionColumns + ` FROM questions WHERE id = $1 FOR UPDATE`

const createSQL = `
INSERT INTO questions (id, title, content, author_id, author_name, status, tags, bounty_points)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + questionColumns

const updateSQL = `
UPDATE questions SET
    title         = COALESCE($2, title),
    content       = COALESCE($3, content),
    tags          = COALESCE($4, tags),
    bounty_points = COALESCE($5, bounty_points),
    updated_at    = now()
WHERE id = $1
RETURNING ` + questionColumns

const saveStateSQL = `
UPDATE questions SET status = $2, accepted_answer_id = $3, updated_at = now()
WHERE id = $1`

const softDeleteSQL = `
UPDATE questions SET deleted_at = now(), updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

const recountAnswersSQL = `
UPDATE questions q SET answer_count = (
    SELECT count(*) FROM answers a WHERE a.question_id = q.id AND a.deleted_at IS NULL
)
WHERE q.id = $1
RETURNING q.answer_count`

const setVoteCountsSQL = `
UPDATE questions SET upvote_count = $2, downvote_count = $3, vote_count = $2 - $3
WHERE id = $1`

const incrementViewSQL = `
UPDATE questions SET view_count = view_count + 1
WHERE id = $1 AND deleted_at IS NULL
RETURNING view_count`

const setBlindedSQL = `
UPDATE questions SET blinded_at = CASE WHEN $2 THEN now() ELSE NULL END
WHERE id = $1`

// Hard delete runs as three statements in the caller's transaction. Votes and
// reports reference their targets polymorphically, so they are removed by hand;
// answers go with the question through ON DELETE CASCADE.
const deleteTargetsSQL = `
WITH targets AS (
    SELECT 'QUESTION'::target_kind AS kind, id FROM questions WHERE id = ANY($1::uuid[])
    UNION ALL
    SELECT 'ANSWER'::target_kind, id FROM answers WHERE question_id = ANY($1::uuid[])
), dv AS (
    DELETE FROM votes v USING targets t WHERE v.target_kind = t.kind AND v.target_id = t.id
)
DELETE FROM reports r USING targets t WHERE r.target_kind = t.kind AND r.target_id = t.id`

const clearAcceptedSQL = `
UPDATE questions SET accepted_answer_id = NULL WHERE id = ANY($1::uuid[])`

const hardDeleteSQL = `DELETE FROM questions WHERE id = ANY($1::uuid[])`

const purgeCandidatesSQL = `
SELECT id FROM questions
WHERE deleted_at IS NOT NULL AND deleted_at < $1
ORDER BY deleted_at
LIMIT $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a question by primary key, including soft-deleted and
// blinded rows. Visibility rules are applied by the caller.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q, err := scanQuestion(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "question", id)
	}

	return &q, nil
}

// GetForUpdate returns a question and locks its row until the surrounding
// transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	if !postgres.InTx(ctx) {
		return nil, errNoTx
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q, err := scanQuestion(querier.QueryRow(ctx, getForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "question", id)
	}

	return &q, nil
}

// List returns non-deleted questions matching the filter and the total count
// of matching rows ignoring pagination.
func (r *Repo) List(ctx context.Context, filter domain.QuestionFilter) ([]domain.Question, int, error) {
	f := normalizeFilter(filter)
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{sq.Eq{"deleted_at": nil}}
	if !f.IncludeBlinded {
		where = append(where, sq.Eq{"blinded_at": nil})
	}
	if f.Status != nil {
		where = append(where, sq.Eq{"status": string(*f.Status)})
	}
	if f.Tag != nil && *f.Tag != "" {
		where = append(where, sq.Expr("tags @> ARRAY[?]::text[]", *f.Tag))
	}
	if f.AuthorID != nil {
		where = append(where, sq.Eq{"author_id": *f.AuthorID})
	}

	countSQL, countArgs, err := psql.Select("count(*)").From("questions").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count questions: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count questions: %w", err)
	}

	listSQL, listArgs, err := psql.Select(questionColumns).
		From("questions").
		Where(where).
		OrderBy(orderBy(f.SortBy)...).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list questions: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	questions, err := scanQuestions(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list questions: %w", err)
	}

	return questions, total, nil
}

// ListPurgeable returns IDs of questions soft-deleted before the cutoff,
// oldest first.
func (r *Repo) ListPurgeable(ctx context.Context, before time.Time, limit int) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, purgeCandidatesSQL, before, limit)
	if err != nil {
		return nil, fmt.Errorf("list purgeable questions: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("list purgeable questions: %w", err)
	}

	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new question and returns the persisted row.
func (r *Repo) Create(ctx context.Context, q *domain.Question) (*domain.Question, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := q.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	tags := q.Tags
	if tags == nil {
		tags = []string{}
	}

	created, err := scanQuestion(querier.QueryRow(ctx, createSQL,
		id, q.Title, q.Content, q.AuthorID, q.AuthorName, string(domain.QuestionStatusOpen), tags, q.BountyPoints,
	))
	if err != nil {
		return nil, postgres.MapError(err, "question", id)
	}

	return &created, nil
}

// Update applies a partial update of the editable fields.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.QuestionUpdateParams) (*domain.Question, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var tags []string
	if params.Tags != nil {
		tags = *params.Tags
		if tags == nil {
			tags = []string{}
		}
	}

	updated, err := scanQuestion(querier.QueryRow(ctx, updateSQL,
		id, params.Title, params.Content, tags, params.BountyPoints,
	))
	if err != nil {
		return nil, postgres.MapError(err, "question", id)
	}

	return &updated, nil
}

// SaveState persists the lifecycle fields (status and accepted answer).
func (r *Repo) SaveState(ctx context.Context, q *domain.Question) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, saveStateSQL, q.ID, string(q.Status), q.AcceptedAnswerID)
	if err != nil {
		return postgres.MapError(err, "question", q.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", q.ID, domain.ErrNotFound)
	}

	return nil
}

// SoftDelete marks a question deleted.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, softDeleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "question", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// HardDelete removes questions with their answers, votes and reports.
// It returns the number of questions removed.
func (r *Repo) HardDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	if !postgres.InTx(ctx) {
		return 0, errNoTx
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteTargetsSQL, ids); err != nil {
		return 0, fmt.Errorf("hard delete question targets: %w", err)
	}
	if _, err := querier.Exec(ctx, clearAcceptedSQL, ids); err != nil {
		return 0, fmt.Errorf("hard delete clear accepted: %w", err)
	}

	tag, err := querier.Exec(ctx, hardDeleteSQL, ids)
	if err != nil {
		return 0, fmt.Errorf("hard delete questions: %w", err)
	}

	return tag.RowsAffected(), nil
}

// RecountAnswers recomputes answer_count from the answers table and returns it.
func (r *Repo) RecountAnswers(ctx context.Context, id uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, recountAnswersSQL, id).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "question", id)
	}

	return count, nil
}

// SetVoteCounts stores a recomputed vote tally.
func (r *Repo) SetVoteCounts(ctx context.Context, id uuid.UUID, tally domain.VoteTally) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setVoteCountsSQL, id, tally.Up, tally.Down)
	if err != nil {
		return postgres.MapError(err, "question", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// IncrementViewCount adds one view and returns the new count.
func (r *Repo) IncrementViewCount(ctx context.Context, id uuid.UUID) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var views int64
	if err := querier.QueryRow(ctx, incrementViewSQL, id).Scan(&views); err != nil {
		return 0, postgres.MapError(err, "question", id)
	}

	return views, nil
}

// SetBlinded sets or clears the moderation blind flag.
func (r *Repo) SetBlinded(ctx context.Context, id uuid.UUID, blinded bool) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setBlindedSQL, id, blinded)
	if err != nil {
		return postgres.MapError(err, "question", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanQuestions scans multiple rows into a domain.Question slice.
func scanQuestions(rows pgx.Rows) ([]domain.Question, error) {
	var questions []domain.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if questions == nil {
		questions = []domain.Question{}
	}

	return questions, nil
}

// scanQuestion scans a single question row from pgx.Row or pgx.Rows.
func scanQuestion(row pgx.Row) (domain.Question, error) {
	var (
		q      domain.Question
		status string
		tags   []string
	)

	if err := row.Scan(&q.ID, &q.Title, &q.Content, &q.AuthorID, &q.AuthorName, &status,
		&q.ViewCount, &q.VoteCount, &q.UpvoteCount, &q.DownvoteCount, &q.AnswerCount,
		&q.AcceptedAnswerID, &tags, &q.BountyPoints, &q.BlindedAt, &q.DeletedAt,
		&q.CreatedAt, &q.UpdatedAt); err != nil {
		return domain.Question{}, err
	}

	q.Status = domain.QuestionStatus(status)
	if tags == nil {
		tags = []string{}
	}
	q.Tags = tags

	return q, nil
}
