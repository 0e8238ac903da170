package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
	"github.com/heartmarshall/qaboard-backend/internal/service/qna"
)

type qnaService interface {
	CreateQuestion(ctx context.Context, input qna.CreateQuestionInput) (*domain.Question, error)
	UpdateQuestion(ctx context.Context, input qna.UpdateQuestionInput) (*domain.Question, error)
	DeleteQuestion(ctx context.Context, input qna.DeleteQuestionInput) error
	CloseQuestion(ctx context.Context, questionID uuid.UUID) (*domain.Question, error)
	ReopenQuestion(ctx context.Context, questionID uuid.UUID) (*domain.Question, error)
	ViewQuestion(ctx context.Context, questionID uuid.UUID, viewerKey string) (bool, error)
	GetQuestion(ctx context.Context, questionID uuid.UUID) (*qna.QuestionView, error)
	ListQuestions(ctx context.Context, input qna.ListQuestionsInput) ([]domain.Question, int, error)

	CreateAnswer(ctx context.Context, input qna.CreateAnswerInput) (*domain.Answer, error)
	UpdateAnswer(ctx context.Context, input qna.UpdateAnswerInput) (*domain.Answer, error)
	DeleteAnswer(ctx context.Context, answerID uuid.UUID) error
	AcceptAnswer(ctx context.Context, answerID uuid.UUID) (*qna.AcceptanceResult, error)
	UnacceptAnswer(ctx context.Context, answerID uuid.UUID) (*qna.AcceptanceResult, error)
	ListAnswers(ctx context.Context, questionID uuid.UUID) ([]qna.AnswerView, error)

	VoteQuestion(ctx context.Context, questionID uuid.UUID, dir domain.VoteDirection) (*qna.VoteResult, error)
	RemoveQuestionVote(ctx context.Context, questionID uuid.UUID) (*qna.VoteResult, error)
	VoteAnswer(ctx context.Context, answerID uuid.UUID, dir domain.VoteDirection) (*qna.VoteResult, error)
	RemoveAnswerVote(ctx context.Context, answerID uuid.UUID) (*qna.VoteResult, error)
}

// QnAHandler serves question, answer and vote endpoints.
type QnAHandler struct {
	svc       qnaService
	viewerKey func(r *http.Request) string
	log       *slog.Logger
}

// NewQnAHandler creates a QnAHandler. viewerKey identifies the viewer for
// view-count deduplication.
func NewQnAHandler(svc qnaService, viewerKey func(r *http.Request) string, logger *slog.Logger) *QnAHandler {
	return &QnAHandler{
		svc:       svc,
		viewerKey: viewerKey,
		log:       logger.With("handler", "qna"),
	}
}

type createQuestionRequest struct {
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Tags         []string `json:"tags"`
	BountyPoints int      `json:"bountyPoints"`
}

type updateQuestionRequest struct {
	Title        *string   `json:"title"`
	Content      *string   `json:"content"`
	Tags         *[]string `json:"tags"`
	BountyPoints *int      `json:"bountyPoints"`
}

// ListQuestions handles GET /api/v1/questions.
// Query: status, tag, author, sort, limit, offset.
func (h *QnAHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := qna.ListQuestionsInput{Sort: q.Get("sort")}

	if v := q.Get("status"); v != "" {
		st := domain.QuestionStatus(v)
		input.Status = &st
	}
	if v := q.Get("tag"); v != "" {
		input.Tag = &v
	}
	if v := q.Get("author"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeServiceError(h.log, w, r, domain.NewValidationError("author", "must be a UUID"))
			return
		}
		input.AuthorID = &id
	}

	var err error
	if input.Limit, err = queryInt(r, "limit", 20); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	if input.Offset, err = queryInt(r, "offset", 0); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	questions, total, err := h.svc.ListQuestions(r.Context(), input)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	items := make([]questionResponse, len(questions))
	for i, question := range questions {
		items[i] = toQuestionResponse(question, nil)
	}
	writeJSON(w, http.StatusOK, pageResponse[questionResponse]{
		Items:  items,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
}

// CreateQuestion handles POST /api/v1/questions.
func (h *QnAHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	question, err := h.svc.CreateQuestion(r.Context(), qna.CreateQuestionInput{
		Title:        req.Title,
		Content:      req.Content,
		Tags:         req.Tags,
		BountyPoints: req.BountyPoints,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toQuestionResponse(*question, nil))
}

// GetQuestion handles GET /api/v1/questions/{id}. Each call counts as a
// view unless the same viewer saw the question recently.
func (h *QnAHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if _, err := h.svc.ViewQuestion(r.Context(), id, h.viewerKey(r)); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	view, err := h.svc.GetQuestion(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionResponse(view.Question, view.MyVote))
}

// UpdateQuestion handles PATCH /api/v1/questions/{id}.
func (h *QnAHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateQuestionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	question, err := h.svc.UpdateQuestion(r.Context(), qna.UpdateQuestionInput{
		QuestionID:   id,
		Title:        req.Title,
		Content:      req.Content,
		Tags:         req.Tags,
		BountyPoints: req.BountyPoints,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionResponse(*question, nil))
}

// DeleteQuestion handles DELETE /api/v1/questions/{id}[?hard=true].
func (h *QnAHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	input := qna.DeleteQuestionInput{QuestionID: id}
	if v := r.URL.Query().Get("hard"); v != "" {
		hard, err := strconv.ParseBool(v)
		if err != nil {
			writeServiceError(h.log, w, r, domain.NewValidationError("hard", "must be a boolean"))
			return
		}
		input.Hard = hard
	}

	if err := h.svc.DeleteQuestion(r.Context(), input); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CloseQuestion handles POST /api/v1/questions/{id}/close.
func (h *QnAHandler) CloseQuestion(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.CloseQuestion)
}

// ReopenQuestion handles POST /api/v1/questions/{id}/reopen.
func (h *QnAHandler) ReopenQuestion(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.ReopenQuestion)
}

func (h *QnAHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, questionID uuid.UUID) (*domain.Question, error),
) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	question, err := fn(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionResponse(*question, nil))
}
