package moderation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
	"github.com/heartmarshall/qaboard-backend/pkg/ctxutil"
)

// Report files a complaint about a question or an answer. Any authenticated
// user may report; each user reports a target at most once.
func (s *Service) Report(ctx context.Context, input ReportInput) (*domain.Report, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var rep domain.Report
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.liveTarget(txCtx, input.Target); err != nil {
			return err
		}

		var createErr error
		rep, createErr = s.reports.Create(txCtx, domain.Report{
			Target:     input.Target,
			ReporterID: userID,
			Reason:     strings.TrimSpace(input.Reason),
		})
		if createErr != nil {
			return fmt.Errorf("create report: %w", createErr)
		}

		return s.writeAudit(txCtx, userID, domain.EntityTypeReport, rep.ID, domain.AuditActionCreate, map[string]any{
			"target": input.Target.String(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "report filed",
		slog.String("user_id", userID.String()),
		slog.String("report_id", rep.ID.String()),
		slog.String("target", input.Target.String()),
	)

	return &rep, nil
}

// ListReports returns reports newest first and the total count (admin only).
func (s *Service) ListReports(ctx context.Context, input ListReportsInput) ([]domain.Report, int, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, 0, err
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	reports, total, err := s.reports.List(ctx, domain.ReportFilter{
		OnlyOpen: input.OnlyOpen,
		Kind:     input.Kind,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}

	return reports, total, nil
}

// ResolveReport closes an open report (admin only).
func (s *Service) ResolveReport(ctx context.Context, reportID uuid.UUID) (*domain.Report, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	var rep domain.Report
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var resolveErr error
		rep, resolveErr = s.reports.Resolve(txCtx, reportID)
		if resolveErr != nil {
			return fmt.Errorf("resolve report: %w", resolveErr)
		}

		return s.writeAudit(txCtx, adminID, domain.EntityTypeReport, rep.ID, domain.AuditActionUpdate, map[string]any{
			"resolved": map[string]any{"old": false, "new": true},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "report resolved",
		slog.String("admin_id", adminID.String()),
		slog.String("report_id", reportID.String()),
	)

	return &rep, nil
}
