// Package report implements the moderation Report repository using PostgreSQL.
package report

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/qaboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/qaboard-backend/internal/domain"
)

// Repo provides report persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const defaultLimit = 50

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const reportColumns = `id, target_kind, target_id, reporter_id, reason, resolved_at, created_at`

const createSQL = `
INSERT INTO reports (id, target_kind, target_id, reporter_id, reason)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + reportColumns

const resolveSQL = `
UPDATE reports SET resolved_at = now()
WHERE id = $1 AND resolved_at IS NULL
RETURNING ` + reportColumns

// Create inserts a report.
// Returns domain.ErrAlreadyExists if the reporter already reported the target.
func (r *Repo) Create(ctx context.Context, rep domain.Report) (domain.Report, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if rep.ID == uuid.Nil {
		rep.ID = uuid.New()
	}

	created, err := scanReport(querier.QueryRow(ctx, createSQL,
		rep.ID, string(rep.Target.Kind), rep.Target.ID, rep.ReporterID, rep.Reason,
	))
	if err != nil {
		return domain.Report{}, postgres.MapError(err, "report", rep.ID)
	}

	return created, nil
}

// Resolve marks an open report resolved.
// Returns domain.ErrNotFound if the report does not exist or is already resolved.
func (r *Repo) Resolve(ctx context.Context, id uuid.UUID) (domain.Report, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rep, err := scanReport(querier.QueryRow(ctx, resolveSQL, id))
	if err != nil {
		return domain.Report{}, postgres.MapError(err, "report", id)
	}

	return rep, nil
}

// List returns reports newest first together with the total number of
// matching rows.
func (r *Repo) List(ctx context.Context, f domain.ReportFilter) ([]domain.Report, int, error) {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if f.OnlyOpen {
		where = append(where, sq.Eq{"resolved_at": nil})
	}
	if f.Kind != nil {
		where = append(where, sq.Eq{"target_kind": string(*f.Kind)})
	}

	countQuery := psql.Select("count(*)").From("reports")
	listQuery := psql.Select(reportColumns).From("reports")
	if len(where) > 0 {
		countQuery = countQuery.Where(where)
		listQuery = listQuery.Where(where)
	}

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count reports: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reports: %w", err)
	}

	listSQL, listArgs, err := listQuery.
		OrderBy("created_at DESC", "id").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list reports: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	reports := []domain.Report{}
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("list reports: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}

	return reports, total, nil
}

func scanReport(row pgx.Row) (domain.Report, error) {
	var (
		rep  domain.Report
		kind string
	)

	if err := row.Scan(&rep.ID, &kind, &rep.Target.ID, &rep.ReporterID, &rep.Reason, &rep.ResolvedAt, &rep.CreatedAt); err != nil {
		return domain.Report{}, err
	}
	rep.Target.Kind = domain.TargetKind(kind)

	return rep, nil
}
