// Package vote implements the Vote repository using PostgreSQL.
// A voter has at most one row per target, enforced by ux_votes_target_voter.
package vote

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/qaboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/qaboard-backend/internal/domain"
)

// Repo provides vote persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vote repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const voteColumns = `id, target_kind, target_id, voter_id, direction, created_at, updated_at`

const getSQL = `
SELECT ` + voteColumns + `
FROM votes
WHERE target_kind = $1 AND target_id = $2 AND voter_id = $3`

const upsertSQL = `
INSERT INTO votes (target_kind, target_id, voter_id, direction)
VALUES ($1, $2, $3, $4)
ON CONFLICT (target_kind, target_id, voter_id)
DO UPDATE SET direction = EXCLUDED.direction, updated_at = now()
RETURNING ` + voteColumns

const deleteSQL = `
DELETE FROM votes
WHERE target_kind = $1 AND target_id = $2 AND voter_id = $3
RETURNING direction`

const tallySQL = `
SELECT
    count(*) FILTER (WHERE direction = 'UP'),
    count(*) FILTER (WHERE direction = 'DOWN')
FROM votes
WHERE target_kind = $1 AND target_id = $2`

const getManySQL = `
SELECT target_id, direction
FROM votes
WHERE target_kind = $1 AND voter_id = $2 AND target_id = ANY($3::uuid[])`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the voter's vote on a target.
// Returns domain.ErrNotFound if the voter has not voted.
func (r *Repo) Get(ctx context.Context, target domain.Target, voterID uuid.UUID) (*domain.Vote, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	v, err := scanVote(querier.QueryRow(ctx, getSQL, string(target.Kind), target.ID, voterID))
	if err != nil {
		return nil, postgres.MapError(err, "vote", target.ID)
	}

	return &v, nil
}

// Tally counts up and down votes of a target.
func (r *Repo) Tally(ctx context.Context, target domain.Target) (domain.VoteTally, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.VoteTally
	if err := querier.QueryRow(ctx, tallySQL, string(target.Kind), target.ID).Scan(&t.Up, &t.Down); err != nil {
		return domain.VoteTally{}, fmt.Errorf("tally votes %s: %w", target, err)
	}

	return t, nil
}

// GetMany returns the voter's directions for a batch of targets of one kind.
// Targets without a vote are absent from the map.
func (r *Repo) GetMany(ctx context.Context, kind domain.TargetKind, targetIDs []uuid.UUID, voterID uuid.UUID) (map[uuid.UUID]domain.VoteDirection, error) {
	result := make(map[uuid.UUID]domain.VoteDirection, len(targetIDs))
	if len(targetIDs) == 0 {
		return result, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getManySQL, string(kind), voterID, targetIDs)
	if err != nil {
		return nil, fmt.Errorf("get votes by targets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id  uuid.UUID
			dir string
		)
		if err := rows.Scan(&id, &dir); err != nil {
			return nil, fmt.Errorf("get votes by targets: %w", err)
		}
		result[id] = domain.VoteDirection(dir)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get votes by targets: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert records the voter's direction on a target, replacing an existing
// vote in place.
func (r *Repo) Upsert(ctx context.Context, target domain.Target, voterID uuid.UUID, dir domain.VoteDirection) (domain.Vote, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	v, err := scanVote(querier.QueryRow(ctx, upsertSQL, string(target.Kind), target.ID, voterID, string(dir)))
	if err != nil {
		return domain.Vote{}, postgres.MapError(err, "vote", target.ID)
	}

	return v, nil
}

// Delete removes the voter's vote and returns the direction it had.
// Returns domain.ErrNotFound if there was no vote.
func (r *Repo) Delete(ctx context.Context, target domain.Target, voterID uuid.UUID) (domain.VoteDirection, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var dir string
	if err := querier.QueryRow(ctx, deleteSQL, string(target.Kind), target.ID, voterID).Scan(&dir); err != nil {
		return "", postgres.MapError(err, "vote", target.ID)
	}

	return domain.VoteDirection(dir), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanVote(row pgx.Row) (domain.Vote, error) {
	var (
		v         domain.Vote
		kind, dir string
	)

	if err := row.Scan(&v.ID, &kind, &v.Target.ID, &v.VoterID, &dir, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return domain.Vote{}, err
	}

	v.Target.Kind = domain.TargetKind(kind)
	v.Direction = domain.VoteDirection(dir)

	return v, nil
}
