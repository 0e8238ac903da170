package qna

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
)

// CreateQuestion posts a new OPEN question by the caller.
func (s *Service) CreateQuestion(ctx context.Context, input CreateQuestionInput) (*domain.Question, error) {
	who, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(s.policy); err != nil {
		return nil, err
	}

	draft := &domain.Question{
		Title:        strings.TrimSpace(input.Title),
		Content:      input.Content,
		AuthorID:     who.ID,
		AuthorName:   who.Name,
		Tags:         domain.NormalizeTags(input.Tags),
		BountyPoints: input.BountyPoints,
	}

	var q *domain.Question
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		q, createErr = s.questions.Create(txCtx, draft)
		if createErr != nil {
			return fmt.Errorf("create question: %w", createErr)
		}

		return s.writeAudit(txCtx, who, domain.EntityTypeQuestion, q.ID, domain.AuditActionCreate, map[string]any{
			"title": map[string]any{"new": q.Title},
			"tags":  map[string]any{"new": q.Tags},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "question created",
		slog.String("user_id", who.ID.String()),
		slog.String("question_id", q.ID.String()),
	)

	return q, nil
}

// UpdateQuestion edits the title, content, tags or bounty. Author only.
func (s *Service) UpdateQuestion(ctx context.Context, input UpdateQuestionInput) (*domain.Question, error) {
	who, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(s.policy); err != nil {
		return nil, err
	}

	params := domain.QuestionUpdateParams{
		Content:      input.Content,
		BountyPoints: input.BountyPoints,
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		params.Title = &title
	}
	if input.Tags != nil {
		tags := domain.NormalizeTags(*input.Tags)
		params.Tags = &tags
	}

	var q *domain.Question
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, lockErr := s.lockQuestion(txCtx, input.QuestionID)
		if lockErr != nil {
			return lockErr
		}
		if !current.IsAuthor(who.ID) {
			return domain.ErrForbidden
		}

		var updateErr error
		q, updateErr = s.questions.Update(txCtx, input.QuestionID, params)
		if updateErr != nil {
			return fmt.Errorf("update question: %w", updateErr)
		}

		return s.writeAudit(txCtx, who, domain.EntityTypeQuestion, q.ID, domain.AuditActionUpdate, questionChanges(current, q))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "question updated",
		slog.String("user_id", who.ID.String()),
		slog.String("question_id", q.ID.String()),
	)

	return q, nil
}

// DeleteQuestion removes a question. The author may soft-delete a question
// that has no answers. An administrator may soft-delete any question, taking
// its answers along, or hard-delete it.
func (s *Service) DeleteQuestion(ctx context.Context, input DeleteQuestionInput) error {
	who, err := requireActor(ctx)
	if err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return err
	}
	if input.Hard && !who.Admin {
		return domain.ErrForbidden
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Hard delete also purges questions that are already soft-deleted.
		q, lockErr := s.questions.GetForUpdate(txCtx, input.QuestionID)
		if lockErr != nil {
			return fmt.Errorf("lock question: %w", lockErr)
		}
		if q.IsDeleted() && !input.Hard {
			return fmt.Errorf("question %s: %w", q.ID, domain.ErrNotFound)
		}

		switch {
		case input.Hard:
			if _, delErr := s.questions.HardDelete(txCtx, []uuid.UUID{q.ID}); delErr != nil {
				return fmt.Errorf("hard delete question: %w", delErr)
			}
		case who.Admin:
			if q.AcceptedAnswerID != nil && q.ClearAccepted(*q.AcceptedAnswerID) {
				if saveErr := s.questions.SaveState(txCtx, q); saveErr != nil {
					return fmt.Errorf("save question state: %w", saveErr)
				}
			}
			if _, delErr := s.answers.SoftDeleteByQuestion(txCtx, q.ID); delErr != nil {
				return fmt.Errorf("delete answers: %w", delErr)
			}
			if _, recountErr := s.questions.RecountAnswers(txCtx, q.ID); recountErr != nil {
				return fmt.Errorf("recount answers: %w", recountErr)
			}
			if delErr := s.questions.SoftDelete(txCtx, q.ID); delErr != nil {
				return fmt.Errorf("delete question: %w", delErr)
			}
		default:
			if !q.IsAuthor(who.ID) {
				return domain.ErrForbidden
			}
			if q.AnswerCount > 0 {
				return fmt.Errorf("question %s has %d answers: %w", q.ID, q.AnswerCount, domain.ErrForbidden)
			}
			if delErr := s.questions.SoftDelete(txCtx, q.ID); delErr != nil {
				return fmt.Errorf("delete question: %w", delErr)
			}
		}

		return s.writeAudit(txCtx, who, domain.EntityTypeQuestion, q.ID, domain.AuditActionDelete, map[string]any{
			"title": map[string]any{"old": q.Title},
			"hard":  input.Hard,
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "question deleted",
		slog.String("user_id", who.ID.String()),
		slog.String("question_id", input.QuestionID.String()),
		slog.Bool("hard", input.Hard),
	)

	return nil
}

// CloseQuestion stops a question from taking new answers and votes. Author only.
func (s *Service) CloseQuestion(ctx context.Context, questionID uuid.UUID) (*domain.Question, error) {
	return s.transition(ctx, questionID, domain.AuditActionClose, (*domain.Question).Close)
}

// ReopenQuestion re-derives the status of a closed question from its
// accepted answer. Author only.
func (s *Service) ReopenQuestion(ctx context.Context, questionID uuid.UUID) (*domain.Question, error) {
	return s.transition(ctx, questionID, domain.AuditActionReopen, (*domain.Question).Reopen)
}

// transition applies an author-only status change.
func (s *Service) transition(ctx context.Context, questionID uuid.UUID, action domain.AuditAction, apply func(*domain.Question) error) (*domain.Question, error) {
	who, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	var q *domain.Question
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var lockErr error
		q, lockErr = s.lockQuestion(txCtx, questionID)
		if lockErr != nil {
			return lockErr
		}
		if !q.IsAuthor(who.ID) {
			return domain.ErrForbidden
		}

		before := q.Status
		if applyErr := apply(q); applyErr != nil {
			return applyErr
		}
		if saveErr := s.questions.SaveState(txCtx, q); saveErr != nil {
			return fmt.Errorf("save question state: %w", saveErr)
		}

		return s.writeAudit(txCtx, who, domain.EntityTypeQuestion, q.ID, action, map[string]any{
			"status": change(before, q.Status),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "question status changed",
		slog.String("user_id", who.ID.String()),
		slog.String("question_id", q.ID.String()),
		slog.String("action", action.String()),
		slog.String("status", q.Status.String()),
	)

	return q, nil
}

// ViewQuestion counts a view unless viewerKey already viewed the question
// recently. It reports whether the view was counted.
func (s *Service) ViewQuestion(ctx context.Context, questionID uuid.UUID, viewerKey string) (bool, error) {
	who := optionalActor(ctx)

	if _, err := s.visibleQuestion(ctx, questionID, who); err != nil {
		return false, err
	}

	if !s.views.IncrementIfNotDuplicate(questionID, viewerKey) {
		return false, nil
	}

	if _, err := s.questions.IncrementViewCount(ctx, questionID); err != nil {
		return false, fmt.Errorf("increment view count: %w", err)
	}

	return true, nil
}

// questionChanges lists the fields an update actually changed.
func questionChanges(before, after *domain.Question) map[string]any {
	changes := make(map[string]any)
	if before.Title != after.Title {
		changes["title"] = change(before.Title, after.Title)
	}
	if before.Content != after.Content {
		changes["content"] = map[string]any{"changed": true}
	}
	if strings.Join(before.Tags, ",") != strings.Join(after.Tags, ",") {
		changes["tags"] = change(before.Tags, after.Tags)
	}
	if before.BountyPoints != after.BountyPoints {
		changes["bounty_points"] = change(before.BountyPoints, after.BountyPoints)
	}
	return changes
}

// visible reports whether a question or answer may be shown to the caller.
func visible(deleted, blinded bool, who actor) bool {
	if deleted {
		return false
	}
	return !blinded || who.Admin
}
