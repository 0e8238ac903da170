package qna

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
)

// CreateAnswer posts an answer by the caller. Answering does not change the
// question status.
func (s *Service) CreateAnswer(ctx context.Context, input CreateAnswerInput) (*domain.Answer, error) {
	who, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(s.policy); err != nil {
		return nil, err
	}

	var a *domain.Answer
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		q, lockErr := s.lockQuestion(txCtx, input.QuestionID)
		if lockErr != nil {
			return lockErr
		}
		if q.IsClosed() {
			return domain.NewStateError(domain.ReasonQuestionClosed)
		}

		var createErr error
		a, createErr = s.answers.Create(txCtx, &domain.Answer{
			QuestionID: q.ID,
			Content:    input.Content,
			AuthorID:   who.ID,
			AuthorName: who.Name,
		})
		if createErr != nil {
			return fmt.Errorf("create answer: %w", createErr)
		}

		if _, recountErr := s.questions.RecountAnswers(txCtx, q.ID); recountErr != nil {
			return fmt.Errorf("recount answers: %w", recountErr)
		}

		return s.writeAudit(txCtx, who, domain.EntityTypeAnswer, a.ID, domain.AuditActionCreate, map[string]any{
			"question_id": q.ID.String(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "answer created",
		slog.String("user_id", who.ID.String()),
		slog.String("question_id", input.QuestionID.String()),
		slog.String("answer_id", a.ID.String()),
	)

	return a, nil
}

// UpdateAnswer replaces the answer body. Author only.
func (s *Service) UpdateAnswer(ctx context.Context, input UpdateAnswerInput) (*domain.Answer, error) {
	who, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(s.policy); err != nil {
		return nil, err
	}

	var a *domain.Answer
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, lockErr := s.lockAnswer(txCtx, input.AnswerID)
		if lockErr != nil {
			return lockErr
		}
		if !current.IsAuthor(who.ID) {
			return domain.ErrForbidden
		}

		var updateErr error
		a, updateErr = s.answers.UpdateContent(txCtx, input.AnswerID, input.Content)
		if updateErr != nil {
			return fmt.Errorf("update answer: %w", updateErr)
		}

		return s.writeAudit(txCtx, who, domain.EntityTypeAnswer, a.ID, domain.AuditActionUpdate, map[string]any{
			"content": map[string]any{"changed": current.Content != a.Content},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "answer updated",
		slog.String("user_id", who.ID.String()),
		slog.String("answer_id", a.ID.String()),
	)

	return a, nil
}

// DeleteAnswer soft-deletes an answer. Author or administrator. Deleting the
// accepted answer clears the question's acceptance.
func (s *Service) DeleteAnswer(ctx context.Context, answerID uuid.UUID) error {
	who, err := requireActor(ctx)
	if err != nil {
		return err
	}

	var wasAccepted bool
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		q, a, lockErr := s.lockAnswerWithQuestion(txCtx, answerID)
		if lockErr != nil {
			return lockErr
		}
		if !a.IsAuthor(who.ID) && !who.Admin {
			return domain.ErrForbidden
		}

		if delErr := s.answers.SoftDelete(txCtx, a.ID); delErr != nil {
			return fmt.Errorf("delete answer: %w", delErr)
		}

		before := q.Status
		wasAccepted = q.ClearAccepted(a.ID)
		if wasAccepted {
			if saveErr := s.questions.SaveState(txCtx, q); saveErr != nil {
				return fmt.Errorf("save question state: %w", saveErr)
			}
		}

		if _, recountErr := s.questions.RecountAnswers(txCtx, q.ID); recountErr != nil {
			return fmt.Errorf("recount answers: %w", recountErr)
		}

		changes := map[string]any{"question_id": q.ID.String()}
		if wasAccepted {
			changes["question_status"] = change(before, q.Status)
		}
		return s.writeAudit(txCtx, who, domain.EntityTypeAnswer, a.ID, domain.AuditActionDelete, changes)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "answer deleted",
		slog.String("user_id", who.ID.String()),
		slog.String("answer_id", answerID.String()),
		slog.Bool("was_accepted", wasAccepted),
	)

	return nil
}

// AcceptAnswer marks an answer as the question's solution. Question author
// only. Fails with ALREADY_ACCEPTED while any answer is accepted; the author
// must unaccept first.
func (s *Service) AcceptAnswer(ctx context.Context, answerID uuid.UUID) (*AcceptanceResult, error) {
	return s.setAcceptance(ctx, answerID, true)
}

// UnacceptAnswer clears the accepted answer. Question author only.
func (s *Service) UnacceptAnswer(ctx context.Context, answerID uuid.UUID) (*AcceptanceResult, error) {
	return s.setAcceptance(ctx, answerID, false)
}

func (s *Service) setAcceptance(ctx context.Context, answerID uuid.UUID, accept bool) (*AcceptanceResult, error) {
	who, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	action := domain.AuditActionAccept
	if !accept {
		action = domain.AuditActionUnaccept
	}

	var result AcceptanceResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		q, a, lockErr := s.lockAnswerWithQuestion(txCtx, answerID)
		if lockErr != nil {
			return lockErr
		}
		if !q.IsAuthor(who.ID) {
			return domain.ErrForbidden
		}

		before := q.Status
		if accept {
			if markErr := q.MarkAccepted(a.ID); markErr != nil {
				return markErr
			}
			now := time.Now()
			a.IsAccepted = true
			a.AcceptedAt = &now
		} else {
			if !q.ClearAccepted(a.ID) && !a.IsAccepted {
				return domain.NewStateError(domain.ReasonNotAccepted)
			}
			a.IsAccepted = false
			a.AcceptedAt = nil
		}

		if setErr := s.answers.SetAccepted(txCtx, a.ID, accept); setErr != nil {
			return fmt.Errorf("set accepted: %w", setErr)
		}
		if saveErr := s.questions.SaveState(txCtx, q); saveErr != nil {
			return fmt.Errorf("save question state: %w", saveErr)
		}

		result = AcceptanceResult{Question: *q, Answer: *a}

		return s.writeAudit(txCtx, who, domain.EntityTypeAnswer, a.ID, action, map[string]any{
			"question_id":     q.ID.String(),
			"question_status": change(before, q.Status),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "answer acceptance changed",
		slog.String("user_id", who.ID.String()),
		slog.String("answer_id", answerID.String()),
		slog.String("action", action.String()),
		slog.String("question_status", result.Question.Status.String()),
	)

	return &result, nil
}
