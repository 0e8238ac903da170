// Package vote implements the vote ledger: one reversible up/down vote per
// voter and target. It does not know about authorship or question state;
// the lifecycle engine checks those before calling in.
package vote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
)

type voteRepo interface {
	Get(ctx context.Context, target domain.Target, voterID uuid.UUID) (*domain.Vote, error)
	Upsert(ctx context.Context, target domain.Target, voterID uuid.UUID, dir domain.VoteDirection) (domain.Vote, error)
	Delete(ctx context.Context, target domain.Target, voterID uuid.UUID) (domain.VoteDirection, error)
	Tally(ctx context.Context, target domain.Target) (domain.VoteTally, error)
	GetMany(ctx context.Context, kind domain.TargetKind, targetIDs []uuid.UUID, voterID uuid.UUID) (map[uuid.UUID]domain.VoteDirection, error)
}

// Ledger records votes. It runs in the caller's transaction, if any.
type Ledger struct {
	votes voteRepo
	log   *slog.Logger
}

// NewLedger creates a new vote Ledger.
func NewLedger(log *slog.Logger, votes voteRepo) *Ledger {
	return &Ledger{
		votes: votes,
		log:   log.With("service", "vote"),
	}
}

// CastResult describes the ledger state around a Cast.
type CastResult struct {
	// Prior is the direction before the call, nil if the voter had not voted.
	Prior   *domain.VoteDirection
	Current domain.VoteDirection
}

// Changed reports whether Cast modified the ledger.
func (r CastResult) Changed() bool {
	return r.Prior == nil || *r.Prior != r.Current
}

// Cast records dir as the voter's vote on target. Casting the same direction
// again is a no-op; the opposite direction replaces the vote in place.
func (l *Ledger) Cast(ctx context.Context, target domain.Target, voterID uuid.UUID, dir domain.VoteDirection) (CastResult, error) {
	if err := validateTarget(target); err != nil {
		return CastResult{}, err
	}
	if !dir.IsValid() {
		return CastResult{}, domain.NewValidationError("direction", "must be UP or DOWN")
	}

	prior, err := l.Get(ctx, target, voterID)
	if err != nil {
		return CastResult{}, err
	}

	result := CastResult{Prior: prior, Current: dir}
	if !result.Changed() {
		return result, nil
	}

	if _, err := l.votes.Upsert(ctx, target, voterID, dir); err != nil {
		return CastResult{}, fmt.Errorf("upsert vote: %w", err)
	}

	l.log.DebugContext(ctx, "vote cast",
		slog.String("target", target.String()),
		slog.String("voter_id", voterID.String()),
		slog.String("direction", dir.String()),
	)

	return result, nil
}

// Remove deletes the voter's vote and returns the direction it had.
// Returns domain.ErrNotFound if the voter has not voted on target.
func (l *Ledger) Remove(ctx context.Context, target domain.Target, voterID uuid.UUID) (domain.VoteDirection, error) {
	if err := validateTarget(target); err != nil {
		return "", err
	}

	dir, err := l.votes.Delete(ctx, target, voterID)
	if err != nil {
		return "", fmt.Errorf("delete vote: %w", err)
	}

	l.log.DebugContext(ctx, "vote removed",
		slog.String("target", target.String()),
		slog.String("voter_id", voterID.String()),
	)

	return dir, nil
}

// Get returns the voter's current direction on target, or nil.
func (l *Ledger) Get(ctx context.Context, target domain.Target, voterID uuid.UUID) (*domain.VoteDirection, error) {
	v, err := l.votes.Get(ctx, target, voterID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vote: %w", err)
	}

	dir := v.Direction
	return &dir, nil
}

// Tally recounts the votes of target from the ledger rows.
func (l *Ledger) Tally(ctx context.Context, target domain.Target) (domain.VoteTally, error) {
	t, err := l.votes.Tally(ctx, target)
	if err != nil {
		return domain.VoteTally{}, fmt.Errorf("tally votes: %w", err)
	}
	return t, nil
}

// GetMany returns the voter's directions for targets of one kind. Targets
// the voter has not voted on are absent from the map.
func (l *Ledger) GetMany(ctx context.Context, kind domain.TargetKind, targetIDs []uuid.UUID, voterID uuid.UUID) (map[uuid.UUID]domain.VoteDirection, error) {
	if len(targetIDs) == 0 || voterID == uuid.Nil {
		return map[uuid.UUID]domain.VoteDirection{}, nil
	}

	m, err := l.votes.GetMany(ctx, kind, targetIDs, voterID)
	if err != nil {
		return nil, fmt.Errorf("get votes: %w", err)
	}
	return m, nil
}

func validateTarget(t domain.Target) error {
	var errs []domain.FieldError
	if !t.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target_kind", Message: "must be QUESTION or ANSWER"})
	}
	if t.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "target_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
