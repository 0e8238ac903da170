package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
)

const defaultHistoryLimit = 50

// BatchDeleteQuestions permanently removes questions with their answers,
// votes and reports (admin only). Unknown ids are skipped. It returns the
// number of questions removed.
func (s *Service) BatchDeleteQuestions(ctx context.Context, input BatchDeleteInput) (int64, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return 0, err
	}
	if err := input.Validate(); err != nil {
		return 0, err
	}

	var deleted int64
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing := make([]uuid.UUID, 0, len(input.QuestionIDs))
		for _, id := range input.uniqueIDs() {
			if _, getErr := s.questions.GetByID(txCtx, id); getErr != nil {
				if errors.Is(getErr, domain.ErrNotFound) {
					continue
				}
				return fmt.Errorf("get question: %w", getErr)
			}
			existing = append(existing, id)
		}
		if len(existing) == 0 {
			return nil
		}

		var delErr error
		deleted, delErr = s.questions.HardDelete(txCtx, existing)
		if delErr != nil {
			return fmt.Errorf("hard delete questions: %w", delErr)
		}

		for _, id := range existing {
			if auditErr := s.writeAudit(txCtx, adminID, domain.EntityTypeQuestion, id, domain.AuditActionDelete, map[string]any{
				"hard":  true,
				"batch": true,
			}); auditErr != nil {
				return auditErr
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "questions hard deleted",
		slog.String("admin_id", adminID.String()),
		slog.Int("requested", len(input.QuestionIDs)),
		slog.Int64("deleted", deleted),
	)

	return deleted, nil
}

// EntityHistory returns the newest audit records of a question or an
// answer (admin only).
func (s *Service) EntityHistory(ctx context.Context, target domain.Target, limit int) ([]domain.AuditRecord, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if errs := checkTarget(nil, target); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}
	if limit <= 0 || limit > 200 {
		limit = defaultHistoryLimit
	}

	records, err := s.audit.GetByEntity(ctx, entityTypeOf(target.Kind), target.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	return records, nil
}
