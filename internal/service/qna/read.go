package qna

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
)

// GetQuestion returns a question with the caller's vote. Deleted questions,
// and blinded ones for non-administrators, are domain.ErrNotFound.
func (s *Service) GetQuestion(ctx context.Context, questionID uuid.UUID) (*QuestionView, error) {
	who := optionalActor(ctx)

	q, err := s.visibleQuestion(ctx, questionID, who)
	if err != nil {
		return nil, err
	}

	view := &QuestionView{Question: *q}
	if who.authenticated() {
		view.MyVote, err = s.ledger.Get(ctx, domain.QuestionTarget(q.ID), who.ID)
		if err != nil {
			return nil, fmt.Errorf("get my vote: %w", err)
		}
	}

	return view, nil
}

// ListQuestions returns a page of questions and the total number of matches.
// Blinded questions are listed for administrators only.
func (s *Service) ListQuestions(ctx context.Context, input ListQuestionsInput) ([]domain.Question, int, error) {
	who := optionalActor(ctx)

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	filter := domain.QuestionFilter{
		Status:         input.Status,
		AuthorID:       input.AuthorID,
		IncludeBlinded: who.Admin,
		SortBy:         input.Sort,
		Limit:          input.Limit,
		Offset:         input.Offset,
	}
	if input.Tag != nil {
		tag := domain.NormalizeText(*input.Tag)
		if tag != "" {
			filter.Tag = &tag
		}
	}

	questions, total, err := s.questions.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list questions: %w", err)
	}

	return questions, total, nil
}

// ListAnswers returns the live answers of a visible question, the accepted
// answer first. Blinded answers keep their place; non-administrators get
// them without content.
func (s *Service) ListAnswers(ctx context.Context, questionID uuid.UUID) ([]AnswerView, error) {
	who := optionalActor(ctx)

	if _, err := s.visibleQuestion(ctx, questionID, who); err != nil {
		return nil, err
	}

	answers, err := s.answers.ListByQuestion(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	var myVotes map[uuid.UUID]domain.VoteDirection
	if who.authenticated() && len(answers) > 0 {
		ids := make([]uuid.UUID, len(answers))
		for i := range answers {
			ids[i] = answers[i].ID
		}
		myVotes, err = s.ledger.GetMany(ctx, domain.TargetAnswer, ids, who.ID)
		if err != nil {
			return nil, fmt.Errorf("get my votes: %w", err)
		}
	}

	views := make([]AnswerView, len(answers))
	for i, a := range answers {
		v := answerView(a, who)
		if dir, ok := myVotes[a.ID]; ok {
			d := dir
			v.MyVote = &d
		}
		views[i] = v
	}

	return views, nil
}

// AnswersByQuestions returns the live answers of several questions at once,
// grouped by question id and ordered like ListAnswers. Question visibility is
// not checked here: the ids are expected to come from GetQuestion or
// ListQuestions. MyVote is left empty; use MyVotes for that.
func (s *Service) AnswersByQuestions(ctx context.Context, questionIDs []uuid.UUID) (map[uuid.UUID][]AnswerView, error) {
	who := optionalActor(ctx)

	out := make(map[uuid.UUID][]AnswerView, len(questionIDs))
	if len(questionIDs) == 0 {
		return out, nil
	}

	answers, err := s.answers.ListByQuestions(ctx, questionIDs)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	for _, a := range answers {
		out[a.QuestionID] = append(out[a.QuestionID], answerView(a, who))
	}

	return out, nil
}

// MyVotes returns the caller's votes on the given targets. Anonymous callers
// get an empty map.
func (s *Service) MyVotes(ctx context.Context, kind domain.TargetKind, targetIDs []uuid.UUID) (map[uuid.UUID]domain.VoteDirection, error) {
	who := optionalActor(ctx)
	if !who.authenticated() || len(targetIDs) == 0 {
		return map[uuid.UUID]domain.VoteDirection{}, nil
	}

	votes, err := s.ledger.GetMany(ctx, kind, targetIDs, who.ID)
	if err != nil {
		return nil, fmt.Errorf("get my votes: %w", err)
	}
	return votes, nil
}

func answerView(a domain.Answer, who actor) AnswerView {
	v := AnswerView{Answer: a, Blinded: a.IsBlinded()}
	if v.Blinded && !who.Admin {
		v.Answer.Content = ""
	}
	return v
}

func (s *Service) visibleQuestion(ctx context.Context, questionID uuid.UUID, who actor) (*domain.Question, error) {
	q, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}
	if !visible(q.IsDeleted(), q.IsBlinded(), who) {
		return nil, fmt.Errorf("question %s: %w", questionID, domain.ErrNotFound)
	}
	return q, nil
}
