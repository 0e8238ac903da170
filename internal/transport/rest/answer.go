package rest

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/qaboard-backend/internal/service/qna"
)

type answerRequest struct {
	Content string `json:"content"`
}

// ListAnswers handles GET /api/v1/questions/{id}/answers.
func (h *QnAHandler) ListAnswers(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	views, err := h.svc.ListAnswers(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	items := make([]answerResponse, len(views))
	for i, v := range views {
		items[i] = toAnswerResponse(v.Answer, v.MyVote)
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// CreateAnswer handles POST /api/v1/questions/{id}/answers.
func (h *QnAHandler) CreateAnswer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req answerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	answer, err := h.svc.CreateAnswer(r.Context(), qna.CreateAnswerInput{
		QuestionID: id,
		Content:    req.Content,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAnswerResponse(*answer, nil))
}

// UpdateAnswer handles PATCH /api/v1/answers/{id}.
func (h *QnAHandler) UpdateAnswer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req answerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	answer, err := h.svc.UpdateAnswer(r.Context(), qna.UpdateAnswerInput{
		AnswerID: id,
		Content:  req.Content,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnswerResponse(*answer, nil))
}

// DeleteAnswer handles DELETE /api/v1/answers/{id}.
func (h *QnAHandler) DeleteAnswer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteAnswer(r.Context(), id); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AcceptAnswer handles POST /api/v1/answers/{id}/accept.
func (h *QnAHandler) AcceptAnswer(w http.ResponseWriter, r *http.Request) {
	h.acceptance(w, r, h.svc.AcceptAnswer)
}

// UnacceptAnswer handles DELETE /api/v1/answers/{id}/accept.
func (h *QnAHandler) UnacceptAnswer(w http.ResponseWriter, r *http.Request) {
	h.acceptance(w, r, h.svc.UnacceptAnswer)
}

func (h *QnAHandler) acceptance(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, answerID uuid.UUID) (*qna.AcceptanceResult, error),
) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	res, err := fn(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAcceptanceResponse(res))
}
