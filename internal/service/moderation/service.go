// Package moderation implements administrator tools for the Q&A board:
// user reports, blinding of questions and answers, batch hard deletion and
// the audit history of an entity.
package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
	"github.com/heartmarshall/qaboard-backend/pkg/ctxutil"
)

type questionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	SetBlinded(ctx context.Context, id uuid.UUID, blinded bool) error
	HardDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type answerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error)
	SetBlinded(ctx context.Context, id uuid.UUID, blinded bool) error
}

type reportRepo interface {
	Create(ctx context.Context, rep domain.Report) (domain.Report, error)
	Resolve(ctx context.Context, id uuid.UUID) (domain.Report, error)
	List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, int, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements moderation operations.
type Service struct {
	questions questionRepo
	answers   answerRepo
	reports   reportRepo
	audit     auditRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new moderation service.
func NewService(
	log *slog.Logger,
	questions questionRepo,
	answers answerRepo,
	reports reportRepo,
	audit auditRepo,
	tx txManager,
) *Service {
	return &Service{
		questions: questions,
		answers:   answers,
		reports:   reports,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "moderation"),
	}
}

// requireAdmin returns the caller's ID if the caller is an administrator.
func requireAdmin(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}

// liveTarget checks that the question or answer exists and is not deleted.
// Blinded targets count as live.
func (s *Service) liveTarget(ctx context.Context, target domain.Target) error {
	var deleted bool
	switch target.Kind {
	case domain.TargetQuestion:
		q, err := s.questions.GetByID(ctx, target.ID)
		if err != nil {
			return fmt.Errorf("get question: %w", err)
		}
		deleted = q.IsDeleted()
	case domain.TargetAnswer:
		a, err := s.answers.GetByID(ctx, target.ID)
		if err != nil {
			return fmt.Errorf("get answer: %w", err)
		}
		deleted = a.IsDeleted()
	default:
		return domain.NewValidationError("target_kind", "must be QUESTION or ANSWER")
	}

	if deleted {
		return fmt.Errorf("%s: %w", target, domain.ErrNotFound)
	}
	return nil
}

func entityTypeOf(kind domain.TargetKind) domain.EntityType {
	if kind == domain.TargetAnswer {
		return domain.EntityTypeAnswer
	}
	return domain.EntityTypeQuestion
}

func (s *Service) writeAudit(ctx context.Context, userID uuid.UUID, entity domain.EntityType, id uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	entityID := id
	if err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     userID,
		EntityType: entity,
		EntityID:   &entityID,
		Action:     action,
		Changes:    changes,
	}); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}
