package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
)

// Blind hides a question or an answer from non-administrators. Status,
// acceptance and counters are left alone.
func (s *Service) Blind(ctx context.Context, target domain.Target) error {
	return s.setBlinded(ctx, target, true)
}

// Unblind makes a blinded question or answer visible again.
func (s *Service) Unblind(ctx context.Context, target domain.Target) error {
	return s.setBlinded(ctx, target, false)
}

func (s *Service) setBlinded(ctx context.Context, target domain.Target, blinded bool) error {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return err
	}
	if errs := checkTarget(nil, target); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}

	action := domain.AuditActionBlind
	if !blinded {
		action = domain.AuditActionUnblind
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.liveTarget(txCtx, target); err != nil {
			return err
		}

		var setErr error
		if target.Kind == domain.TargetAnswer {
			setErr = s.answers.SetBlinded(txCtx, target.ID, blinded)
		} else {
			setErr = s.questions.SetBlinded(txCtx, target.ID, blinded)
		}
		if setErr != nil {
			return fmt.Errorf("set blinded: %w", setErr)
		}

		return s.writeAudit(txCtx, adminID, entityTypeOf(target.Kind), target.ID, action, nil)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "blind flag changed",
		slog.String("admin_id", adminID.String()),
		slog.String("target", target.String()),
		slog.Bool("blinded", blinded),
	)

	return nil
}
