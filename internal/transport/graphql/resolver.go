package graphql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
	"github.com/heartmarshall/qaboard-backend/internal/service/qna"
	"github.com/heartmarshall/qaboard-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/qaboard-backend/pkg/markdown"
)

type qnaService interface {
	GetQuestion(ctx context.Context, questionID uuid.UUID) (*qna.QuestionView, error)
	ListQuestions(ctx context.Context, input qna.ListQuestionsInput) ([]domain.Question, int, error)
	AnswersByQuestions(ctx context.Context, questionIDs []uuid.UUID) (map[uuid.UUID][]qna.AnswerView, error)
	MyVotes(ctx context.Context, kind domain.TargetKind, targetIDs []uuid.UUID) (map[uuid.UUID]domain.VoteDirection, error)

	CreateQuestion(ctx context.Context, input qna.CreateQuestionInput) (*domain.Question, error)
	CloseQuestion(ctx context.Context, questionID uuid.UUID) (*domain.Question, error)
	ReopenQuestion(ctx context.Context, questionID uuid.UUID) (*domain.Question, error)
	CreateAnswer(ctx context.Context, input qna.CreateAnswerInput) (*domain.Answer, error)
	AcceptAnswer(ctx context.Context, answerID uuid.UUID) (*qna.AcceptanceResult, error)
	UnacceptAnswer(ctx context.Context, answerID uuid.UUID) (*qna.AcceptanceResult, error)

	VoteQuestion(ctx context.Context, questionID uuid.UUID, dir domain.VoteDirection) (*qna.VoteResult, error)
	RemoveQuestionVote(ctx context.Context, questionID uuid.UUID) (*qna.VoteResult, error)
	VoteAnswer(ctx context.Context, answerID uuid.UUID, dir domain.VoteDirection) (*qna.VoteResult, error)
	RemoveAnswerVote(ctx context.Context, answerID uuid.UUID) (*qna.VoteResult, error)
}

// Resolver resolves the fields of every object type in the schema.
// Reads here never count views: only the REST GET of a question does.
type Resolver struct {
	svc qnaService
}

// questionNode is a Question as returned by a resolver. myVote is set when
// the service already returned the caller's vote; otherwise it is loaded.
type questionNode struct {
	q           domain.Question
	myVote      *domain.VoteDirection
	myVoteKnown bool
}

type answerNode struct {
	view qna.AnswerView
}

type pageNode struct {
	items  []domain.Question
	total  int
	limit  int
	offset int
}

// ---------------------------------------------------------------------------
// Query
// ---------------------------------------------------------------------------

func (r *Resolver) query(ctx context.Context, _ any, field string, args map[string]any) (any, error) {
	switch field {
	case "question":
		id, err := argUUID(args, "id")
		if err != nil {
			return nil, err
		}
		view, err := r.svc.GetQuestion(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &questionNode{q: view.Question, myVote: view.MyVote, myVoteKnown: true}, nil

	case "questions":
		input, err := listInput(args)
		if err != nil {
			return nil, err
		}
		items, total, err := r.svc.ListQuestions(ctx, input)
		if err != nil {
			return nil, err
		}
		return &pageNode{items: items, total: total, limit: input.Limit, offset: input.Offset}, nil
	}
	return nil, unknownField("Query", field)
}

func listInput(args map[string]any) (qna.ListQuestionsInput, error) {
	var (
		input qna.ListQuestionsInput
		err   error
	)
	if s, ok := args["status"].(string); ok {
		status := domain.QuestionStatus(s)
		input.Status = &status
	}
	if s, ok := args["tag"].(string); ok {
		input.Tag = &s
	}
	if _, ok := args["authorId"].(string); ok {
		id, err := argUUID(args, "authorId")
		if err != nil {
			return input, err
		}
		input.AuthorID = &id
	}
	if s, ok := args["sort"].(string); ok {
		input.Sort = strings.ToLower(s)
	}
	if input.Limit, err = argInt(args, "limit", 20); err != nil {
		return input, err
	}
	if input.Offset, err = argInt(args, "offset", 0); err != nil {
		return input, err
	}
	return input, nil
}

// ---------------------------------------------------------------------------
// Mutation
// ---------------------------------------------------------------------------

func (r *Resolver) mutation(ctx context.Context, _ any, field string, args map[string]any) (any, error) {
	v, err := r.mutate(ctx, field, args)
	if err != nil {
		return nil, err
	}
	dataloader.FromContext(ctx).Reset()
	return v, nil
}

func (r *Resolver) mutate(ctx context.Context, field string, args map[string]any) (any, error) {
	switch field {
	case "createQuestion":
		bounty, err := argInt(args, "bountyPoints", 0)
		if err != nil {
			return nil, err
		}
		q, err := r.svc.CreateQuestion(ctx, qna.CreateQuestionInput{
			Title:        argString(args, "title"),
			Content:      argString(args, "content"),
			Tags:         argStrings(args, "tags"),
			BountyPoints: bounty,
		})
		if err != nil {
			return nil, err
		}
		return &questionNode{q: *q}, nil

	case "createAnswer":
		questionID, err := argUUID(args, "questionId")
		if err != nil {
			return nil, err
		}
		a, err := r.svc.CreateAnswer(ctx, qna.CreateAnswerInput{
			QuestionID: questionID,
			Content:    argString(args, "content"),
		})
		if err != nil {
			return nil, err
		}
		return &answerNode{view: qna.AnswerView{Answer: *a}}, nil

	case "voteQuestion", "voteAnswer":
		id, err := argUUID(args, "id")
		if err != nil {
			return nil, err
		}
		dir := domain.VoteDirection(argString(args, "direction"))
		if field == "voteQuestion" {
			return r.svc.VoteQuestion(ctx, id, dir)
		}
		return r.svc.VoteAnswer(ctx, id, dir)

	case "removeQuestionVote", "removeAnswerVote":
		id, err := argUUID(args, "id")
		if err != nil {
			return nil, err
		}
		if field == "removeQuestionVote" {
			return r.svc.RemoveQuestionVote(ctx, id)
		}
		return r.svc.RemoveAnswerVote(ctx, id)

	case "acceptAnswer", "unacceptAnswer":
		id, err := argUUID(args, "id")
		if err != nil {
			return nil, err
		}
		if field == "acceptAnswer" {
			return r.svc.AcceptAnswer(ctx, id)
		}
		return r.svc.UnacceptAnswer(ctx, id)

	case "closeQuestion", "reopenQuestion":
		id, err := argUUID(args, "id")
		if err != nil {
			return nil, err
		}
		var q *domain.Question
		if field == "closeQuestion" {
			q, err = r.svc.CloseQuestion(ctx, id)
		} else {
			q, err = r.svc.ReopenQuestion(ctx, id)
		}
		if err != nil {
			return nil, err
		}
		return &questionNode{q: *q}, nil
	}
	return nil, unknownField("Mutation", field)
}

// ---------------------------------------------------------------------------
// Object types
// ---------------------------------------------------------------------------

func (r *Resolver) question(ctx context.Context, obj any, field string, _ map[string]any) (any, error) {
	n := obj.(*questionNode)
	q := &n.q

	switch field {
	case "id":
		return q.ID, nil
	case "title":
		return q.Title, nil
	case "content":
		return q.Content, nil
	case "contentHtml":
		return markdown.Render(q.Content), nil
	case "authorId":
		return q.AuthorID, nil
	case "authorName":
		return optString(q.AuthorName), nil
	case "status":
		return q.Status, nil
	case "viewCount":
		return q.ViewCount, nil
	case "voteCount":
		return q.VoteCount, nil
	case "upvoteCount":
		return q.UpvoteCount, nil
	case "downvoteCount":
		return q.DownvoteCount, nil
	case "answerCount":
		return q.AnswerCount, nil
	case "acceptedAnswerId":
		if q.AcceptedAnswerID == nil {
			return nil, nil
		}
		return *q.AcceptedAnswerID, nil
	case "tags":
		tags := make([]any, len(q.Tags))
		for i, t := range q.Tags {
			tags[i] = t
		}
		return tags, nil
	case "bountyPoints":
		return q.BountyPoints, nil
	case "blinded":
		return q.IsBlinded(), nil
	case "myVote":
		if n.myVoteKnown {
			return optVote(n.myVote), nil
		}
		dir, err := dataloader.FromContext(ctx).QuestionVotes.Load(ctx, q.ID)()
		if err != nil {
			return nil, fmt.Errorf("load my vote: %w", err)
		}
		return optVote(dir), nil
	case "answers":
		views, err := dataloader.FromContext(ctx).AnswersByQuestionID.Load(ctx, q.ID)()
		if err != nil {
			return nil, fmt.Errorf("load answers: %w", err)
		}
		out := make([]any, len(views))
		for i := range views {
			out[i] = &answerNode{view: views[i]}
		}
		return out, nil
	case "createdAt":
		return q.CreatedAt, nil
	case "updatedAt":
		return q.UpdatedAt, nil
	}
	return nil, unknownField("Question", field)
}

func (r *Resolver) answer(ctx context.Context, obj any, field string, _ map[string]any) (any, error) {
	n := obj.(*answerNode)
	a := &n.view.Answer

	switch field {
	case "id":
		return a.ID, nil
	case "questionId":
		return a.QuestionID, nil
	case "content":
		return a.Content, nil
	case "contentHtml":
		return markdown.Render(a.Content), nil
	case "authorId":
		return a.AuthorID, nil
	case "authorName":
		return optString(a.AuthorName), nil
	case "isAccepted":
		return a.IsAccepted, nil
	case "acceptedAt":
		if a.AcceptedAt == nil {
			return nil, nil
		}
		return *a.AcceptedAt, nil
	case "voteCount":
		return a.VoteCount, nil
	case "upvoteCount":
		return a.UpvoteCount, nil
	case "downvoteCount":
		return a.DownvoteCount, nil
	case "blinded":
		return n.view.Blinded || a.IsBlinded(), nil
	case "myVote":
		if n.view.MyVote != nil {
			return *n.view.MyVote, nil
		}
		dir, err := dataloader.FromContext(ctx).AnswerVotes.Load(ctx, a.ID)()
		if err != nil {
			return nil, fmt.Errorf("load my vote: %w", err)
		}
		return optVote(dir), nil
	case "createdAt":
		return a.CreatedAt, nil
	case "updatedAt":
		return a.UpdatedAt, nil
	}
	return nil, unknownField("Answer", field)
}

func (r *Resolver) questionPage(_ context.Context, obj any, field string, _ map[string]any) (any, error) {
	p := obj.(*pageNode)

	switch field {
	case "items":
		out := make([]any, len(p.items))
		for i := range p.items {
			out[i] = &questionNode{q: p.items[i]}
		}
		return out, nil
	case "total":
		return p.total, nil
	case "limit":
		return p.limit, nil
	case "offset":
		return p.offset, nil
	}
	return nil, unknownField("QuestionPage", field)
}

func (r *Resolver) voteResult(_ context.Context, obj any, field string, _ map[string]any) (any, error) {
	v := obj.(*qna.VoteResult)

	switch field {
	case "targetId":
		return v.Target.ID, nil
	case "prior":
		return optVote(v.Prior), nil
	case "current":
		return optVote(v.Current), nil
	case "upvoteCount":
		return v.Tally.Up, nil
	case "downvoteCount":
		return v.Tally.Down, nil
	case "score":
		return v.Score(), nil
	}
	return nil, unknownField("VoteResult", field)
}

func (r *Resolver) acceptance(_ context.Context, obj any, field string, _ map[string]any) (any, error) {
	res := obj.(*qna.AcceptanceResult)

	switch field {
	case "question":
		return &questionNode{q: res.Question}, nil
	case "answer":
		return &answerNode{view: qna.AnswerView{Answer: res.Answer, Blinded: res.Answer.IsBlinded()}}, nil
	}
	return nil, unknownField("Acceptance", field)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func unknownField(typeName, field string) error {
	return fmt.Errorf("unknown field %s.%s", typeName, field)
}

// optVote turns a nil pointer into an untyped nil.
func optVote(d *domain.VoteDirection) any {
	if d == nil {
		return nil
	}
	return *d
}

func optString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
