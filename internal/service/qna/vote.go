package qna

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
)

// VoteQuestion casts the caller's vote on a question and recomputes its tally.
func (s *Service) VoteQuestion(ctx context.Context, questionID uuid.UUID, dir domain.VoteDirection) (*VoteResult, error) {
	return s.voteOnQuestion(ctx, questionID, &dir)
}

// RemoveQuestionVote withdraws the caller's vote on a question.
func (s *Service) RemoveQuestionVote(ctx context.Context, questionID uuid.UUID) (*VoteResult, error) {
	return s.voteOnQuestion(ctx, questionID, nil)
}

// VoteAnswer casts the caller's vote on an answer and recomputes its tally.
func (s *Service) VoteAnswer(ctx context.Context, answerID uuid.UUID, dir domain.VoteDirection) (*VoteResult, error) {
	return s.voteOnAnswer(ctx, answerID, &dir)
}

// RemoveAnswerVote withdraws the caller's vote on an answer.
func (s *Service) RemoveAnswerVote(ctx context.Context, answerID uuid.UUID) (*VoteResult, error) {
	return s.voteOnAnswer(ctx, answerID, nil)
}

// voteOnQuestion casts dir, or removes the vote when dir is nil, under the
// question row lock.
func (s *Service) voteOnQuestion(ctx context.Context, questionID uuid.UUID, dir *domain.VoteDirection) (*VoteResult, error) {
	who, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateDirection(dir); err != nil {
		return nil, err
	}

	target := domain.QuestionTarget(questionID)

	var result *VoteResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		q, lockErr := s.lockQuestion(txCtx, questionID)
		if lockErr != nil {
			return lockErr
		}
		if dir != nil {
			if q.IsAuthor(who.ID) {
				return domain.ErrSelfVote
			}
			if q.IsClosed() {
				return domain.NewStateError(domain.ReasonQuestionClosed)
			}
		}

		var applyErr error
		result, applyErr = s.applyVote(txCtx, who, target, dir)
		if applyErr != nil {
			return applyErr
		}

		if setErr := s.questions.SetVoteCounts(txCtx, q.ID, result.Tally); setErr != nil {
			return fmt.Errorf("set question vote counts: %w", setErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logVote(ctx, who, result)
	return result, nil
}

// voteOnAnswer casts dir, or removes the vote when dir is nil, under the
// answer row lock. Casting also holds the question lock so a concurrent
// CloseQuestion cannot commit between the status check and the vote.
func (s *Service) voteOnAnswer(ctx context.Context, answerID uuid.UUID, dir *domain.VoteDirection) (*VoteResult, error) {
	who, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateDirection(dir); err != nil {
		return nil, err
	}

	target := domain.AnswerTarget(answerID)

	var result *VoteResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var a *domain.Answer
		if dir == nil {
			var lockErr error
			if a, lockErr = s.lockAnswer(txCtx, answerID); lockErr != nil {
				return lockErr
			}
		} else {
			q, locked, lockErr := s.lockAnswerWithQuestion(txCtx, answerID)
			if lockErr != nil {
				return lockErr
			}
			a = locked
			if a.IsAuthor(who.ID) {
				return domain.ErrSelfVote
			}
			if q.IsClosed() {
				return domain.NewStateError(domain.ReasonQuestionClosed)
			}
		}

		var applyErr error
		result, applyErr = s.applyVote(txCtx, who, target, dir)
		if applyErr != nil {
			return applyErr
		}

		if setErr := s.answers.SetVoteCounts(txCtx, a.ID, result.Tally); setErr != nil {
			return fmt.Errorf("set answer vote counts: %w", setErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logVote(ctx, who, result)
	return result, nil
}

// applyVote changes the ledger, audits the change and recounts the target.
func (s *Service) applyVote(ctx context.Context, who actor, target domain.Target, dir *domain.VoteDirection) (*VoteResult, error) {
	result := &VoteResult{Target: target}
	changed := true

	if dir != nil {
		cast, err := s.ledger.Cast(ctx, target, who.ID, *dir)
		if err != nil {
			return nil, fmt.Errorf("cast vote: %w", err)
		}
		current := cast.Current
		result.Prior = cast.Prior
		result.Current = &current
		changed = cast.Changed()
	} else {
		prior, err := s.ledger.Remove(ctx, target, who.ID)
		if err != nil {
			return nil, fmt.Errorf("remove vote: %w", err)
		}
		result.Prior = &prior
	}

	tally, err := s.ledger.Tally(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("recount votes: %w", err)
	}
	result.Tally = tally

	if !changed {
		return result, nil
	}

	action := domain.AuditActionUpdate
	switch {
	case result.Current == nil:
		action = domain.AuditActionDelete
	case result.Prior == nil:
		action = domain.AuditActionCreate
	}

	changes := map[string]any{
		"target_kind": target.Kind.String(),
		"direction":   change(dirValue(result.Prior), dirValue(result.Current)),
	}
	if err := s.writeAudit(ctx, who, domain.EntityTypeVote, target.ID, action, changes); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Service) logVote(ctx context.Context, who actor, r *VoteResult) {
	s.log.InfoContext(ctx, "vote recorded",
		slog.String("user_id", who.ID.String()),
		slog.String("target", r.Target.String()),
		slog.Any("direction", dirValue(r.Current)),
		slog.Int("score", r.Score()),
	)
}

func validateDirection(dir *domain.VoteDirection) error {
	if dir != nil && !dir.IsValid() {
		return domain.NewValidationError("direction", "must be UP or DOWN")
	}
	return nil
}

// dirValue renders an optional direction for audit records and logs.
func dirValue(d *domain.VoteDirection) any {
	if d == nil {
		return nil
	}
	return d.String()
}
