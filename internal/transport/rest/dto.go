package rest

import (
	"time"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
	"github.com/heartmarshall/qaboard-backend/internal/service/qna"
	"github.com/heartmarshall/qaboard-backend/pkg/markdown"
)

type questionResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	ContentHTML      string    `json:"contentHtml"`
	AuthorID         string    `json:"authorId"`
	AuthorName       string    `json:"authorName,omitempty"`
	Status           string    `json:"status"`
	ViewCount        int64     `json:"viewCount"`
	VoteCount        int       `json:"voteCount"`
	UpvoteCount      int       `json:"upvoteCount"`
	DownvoteCount    int       `json:"downvoteCount"`
	AnswerCount      int       `json:"answerCount"`
	AcceptedAnswerID *string   `json:"acceptedAnswerId,omitempty"`
	Tags             []string  `json:"tags"`
	BountyPoints     int       `json:"bountyPoints"`
	Blinded          bool      `json:"blinded,omitempty"`
	MyVote           *string   `json:"myVote,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type answerResponse struct {
	ID            string     `json:"id"`
	QuestionID    string     `json:"questionId"`
	Content       string     `json:"content"`
	ContentHTML   string     `json:"contentHtml"`
	AuthorID      string     `json:"authorId"`
	AuthorName    string     `json:"authorName,omitempty"`
	IsAccepted    bool       `json:"isAccepted"`
	AcceptedAt    *time.Time `json:"acceptedAt,omitempty"`
	VoteCount     int        `json:"voteCount"`
	UpvoteCount   int        `json:"upvoteCount"`
	DownvoteCount int        `json:"downvoteCount"`
	Blinded       bool       `json:"blinded,omitempty"`
	MyVote        *string    `json:"myVote,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type pageResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type acceptanceResponse struct {
	Question questionResponse `json:"question"`
	Answer   answerResponse   `json:"answer"`
}

type voteResponse struct {
	TargetType    string  `json:"targetType"`
	TargetID      string  `json:"targetId"`
	Prior         *string `json:"prior,omitempty"`
	Current       *string `json:"current,omitempty"`
	UpvoteCount   int     `json:"upvoteCount"`
	DownvoteCount int     `json:"downvoteCount"`
	Score         int     `json:"score"`
}

type reportResponse struct {
	ID         string     `json:"id"`
	TargetType string     `json:"targetType"`
	TargetID   string     `json:"targetId"`
	ReporterID string     `json:"reporterId"`
	Reason     string     `json:"reason"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type auditResponse struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	EntityType string         `json:"entityType"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toQuestionResponse(q domain.Question, myVote *domain.VoteDirection) questionResponse {
	resp := questionResponse{
		ID:            q.ID.String(),
		Title:         q.Title,
		Content:       q.Content,
		ContentHTML:   markdown.Render(q.Content),
		AuthorID:      q.AuthorID.String(),
		AuthorName:    q.AuthorName,
		Status:        q.Status.String(),
		ViewCount:     q.ViewCount,
		VoteCount:     q.VoteCount,
		UpvoteCount:   q.UpvoteCount,
		DownvoteCount: q.DownvoteCount,
		AnswerCount:   q.AnswerCount,
		Tags:          q.Tags,
		BountyPoints:  q.BountyPoints,
		Blinded:       q.IsBlinded(),
		MyVote:        directionPtr(myVote),
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if q.AcceptedAnswerID != nil {
		id := q.AcceptedAnswerID.String()
		resp.AcceptedAnswerID = &id
	}
	return resp
}

func toAnswerResponse(a domain.Answer, myVote *domain.VoteDirection) answerResponse {
	return answerResponse{
		ID:            a.ID.String(),
		QuestionID:    a.QuestionID.String(),
		Content:       a.Content,
		ContentHTML:   markdown.Render(a.Content),
		AuthorID:      a.AuthorID.String(),
		AuthorName:    a.AuthorName,
		IsAccepted:    a.IsAccepted,
		AcceptedAt:    a.AcceptedAt,
		VoteCount:     a.VoteCount,
		UpvoteCount:   a.UpvoteCount,
		DownvoteCount: a.DownvoteCount,
		Blinded:       a.IsBlinded(),
		MyVote:        directionPtr(myVote),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func toAcceptanceResponse(res *qna.AcceptanceResult) acceptanceResponse {
	return acceptanceResponse{
		Question: toQuestionResponse(res.Question, nil),
		Answer:   toAnswerResponse(res.Answer, nil),
	}
}

func toVoteResponse(res *qna.VoteResult) voteResponse {
	return voteResponse{
		TargetType:    res.Target.Kind.String(),
		TargetID:      res.Target.ID.String(),
		Prior:         directionPtr(res.Prior),
		Current:       directionPtr(res.Current),
		UpvoteCount:   res.Tally.Up,
		DownvoteCount: res.Tally.Down,
		Score:         res.Score(),
	}
}

func toReportResponse(r domain.Report) reportResponse {
	return reportResponse{
		ID:         r.ID.String(),
		TargetType: r.Target.Kind.String(),
		TargetID:   r.Target.ID.String(),
		ReporterID: r.ReporterID.String(),
		Reason:     r.Reason,
		ResolvedAt: r.ResolvedAt,
		CreatedAt:  r.CreatedAt,
	}
}

func toAuditResponse(rec domain.AuditRecord) auditResponse {
	return auditResponse{
		ID:         rec.ID.String(),
		UserID:     rec.UserID.String(),
		EntityType: rec.EntityType.String(),
		Action:     rec.Action.String(),
		Changes:    rec.Changes,
		CreatedAt:  rec.CreatedAt,
	}
}

func directionPtr(d *domain.VoteDirection) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
