// Package qna is the question/answer lifecycle engine. Every mutation runs
// as one unit of work: lock the question row, check existence, authorization
// and status, mutate, recompute derived counters from the authoritative rows,
// write the audit record, commit.
package qna

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
	"github.com/heartmarshall/qaboard-backend/internal/service/vote"
	"github.com/heartmarshall/qaboard-backend/pkg/ctxutil"
)

type questionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	Create(ctx context.Context, q *domain.Question) (*domain.Question, error)
	Update(ctx context.Context, id uuid.UUID, params domain.QuestionUpdateParams) (*domain.Question, error)
	SaveState(ctx context.Context, q *domain.Question) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	HardDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
	RecountAnswers(ctx context.Context, id uuid.UUID) (int, error)
	SetVoteCounts(ctx context.Context, id uuid.UUID, tally domain.VoteTally) error
	IncrementViewCount(ctx context.Context, id uuid.UUID) (int64, error)
	List(ctx context.Context, filter domain.QuestionFilter) ([]domain.Question, int, error)
}

type answerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Answer, error)
	Create(ctx context.Context, a *domain.Answer) (*domain.Answer, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*domain.Answer, error)
	SetAccepted(ctx context.Context, id uuid.UUID, accepted bool) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	SoftDeleteByQuestion(ctx context.Context, questionID uuid.UUID) (int64, error)
	ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]domain.Answer, error)
	ListByQuestions(ctx context.Context, questionIDs []uuid.UUID) ([]domain.Answer, error)
	SetVoteCounts(ctx context.Context, id uuid.UUID, tally domain.VoteTally) error
}

type voteLedger interface {
	Cast(ctx context.Context, target domain.Target, voterID uuid.UUID, dir domain.VoteDirection) (vote.CastResult, error)
	Remove(ctx context.Context, target domain.Target, voterID uuid.UUID) (domain.VoteDirection, error)
	Get(ctx context.Context, target domain.Target, voterID uuid.UUID) (*domain.VoteDirection, error)
	Tally(ctx context.Context, target domain.Target) (domain.VoteTally, error)
	GetMany(ctx context.Context, kind domain.TargetKind, targetIDs []uuid.UUID, voterID uuid.UUID) (map[uuid.UUID]domain.VoteDirection, error)
}

type viewDeduper interface {
	IncrementIfNotDuplicate(questionID uuid.UUID, viewerKey string) bool
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the question/answer lifecycle operations.
type Service struct {
	questions questionRepo
	answers   answerRepo
	ledger    voteLedger
	views     viewDeduper
	audit     auditLogger
	tx        txManager
	policy    domain.BoardPolicy
	log       *slog.Logger
}

// NewService creates a new lifecycle engine.
func NewService(
	log *slog.Logger,
	questions questionRepo,
	answers answerRepo,
	ledger voteLedger,
	views viewDeduper,
	audit auditLogger,
	tx txManager,
	policy domain.BoardPolicy,
) *Service {
	return &Service{
		questions: questions,
		answers:   answers,
		ledger:    ledger,
		views:     views,
		audit:     audit,
		tx:        tx,
		policy:    policy.WithDefaults(),
		log:       log.With("service", "qna"),
	}
}

// actor is the identity a call runs under.
type actor struct {
	ID    uuid.UUID
	Name  string
	Admin bool
}

// requireActor returns the authenticated caller or domain.ErrUnauthorized.
func requireActor(ctx context.Context) (actor, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return actor{}, domain.ErrUnauthorized
	}
	return actor{
		ID:    userID,
		Name:  ctxutil.UserNameFromCtx(ctx),
		Admin: ctxutil.IsAdminCtx(ctx),
	}, nil
}

// optionalActor returns the caller if authenticated; read paths accept
// anonymous callers.
func optionalActor(ctx context.Context) actor {
	a, err := requireActor(ctx)
	if err != nil {
		return actor{}
	}
	return a
}

func (a actor) authenticated() bool { return a.ID != uuid.Nil }

// lockQuestion loads a live question and holds its row lock for the rest of
// the transaction.
func (s *Service) lockQuestion(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	q, err := s.questions.GetForUpdate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lock question: %w", err)
	}
	if q.IsDeleted() {
		return nil, fmt.Errorf("question %s: %w", id, domain.ErrNotFound)
	}
	return q, nil
}

// liveAnswer loads a non-deleted answer without locking it.
func (s *Service) liveAnswer(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	a, err := s.answers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get answer: %w", err)
	}
	if a.IsDeleted() {
		return nil, fmt.Errorf("answer %s: %w", id, domain.ErrNotFound)
	}
	return a, nil
}

// lockAnswer loads a non-deleted answer and holds its row lock.
func (s *Service) lockAnswer(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	a, err := s.answers.GetForUpdate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lock answer: %w", err)
	}
	if a.IsDeleted() {
		return nil, fmt.Errorf("answer %s: %w", id, domain.ErrNotFound)
	}
	return a, nil
}

// lockAnswerWithQuestion locks the owning question first, then the answer.
// All operations that need both rows take the locks in this order.
func (s *Service) lockAnswerWithQuestion(ctx context.Context, answerID uuid.UUID) (*domain.Question, *domain.Answer, error) {
	peek, err := s.liveAnswer(ctx, answerID)
	if err != nil {
		return nil, nil, err
	}

	q, err := s.lockQuestion(ctx, peek.QuestionID)
	if err != nil {
		return nil, nil, err
	}

	a, err := s.lockAnswer(ctx, answerID)
	if err != nil {
		return nil, nil, err
	}
	if a.QuestionID != q.ID {
		return nil, nil, fmt.Errorf("answer %s moved from question %s", a.ID, q.ID)
	}

	return q, a, nil
}

// writeAudit appends an audit record in the current transaction.
func (s *Service) writeAudit(ctx context.Context, who actor, entity domain.EntityType, id uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	entityID := id
	if err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     who.ID,
		EntityType: entity,
		EntityID:   &entityID,
		Action:     action,
		Changes:    changes,
	}); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}

// change builds an audit "old/new" pair.
func change(oldValue, newValue any) map[string]any {
	return map[string]any{"old": oldValue, "new": newValue}
}
