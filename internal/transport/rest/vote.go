package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
	"github.com/heartmarshall/qaboard-backend/internal/service/qna"
)

type voteRequest struct {
	Direction string `json:"direction"`
}

// VoteQuestion handles PUT /api/v1/questions/{id}/vote.
func (h *QnAHandler) VoteQuestion(w http.ResponseWriter, r *http.Request) {
	h.castVote(w, r, h.svc.VoteQuestion)
}

// RemoveQuestionVote handles DELETE /api/v1/questions/{id}/vote.
func (h *QnAHandler) RemoveQuestionVote(w http.ResponseWriter, r *http.Request) {
	h.removeVote(w, r, h.svc.RemoveQuestionVote)
}

// VoteAnswer handles PUT /api/v1/answers/{id}/vote.
func (h *QnAHandler) VoteAnswer(w http.ResponseWriter, r *http.Request) {
	h.castVote(w, r, h.svc.VoteAnswer)
}

// RemoveAnswerVote handles DELETE /api/v1/answers/{id}/vote.
func (h *QnAHandler) RemoveAnswerVote(w http.ResponseWriter, r *http.Request) {
	h.removeVote(w, r, h.svc.RemoveAnswerVote)
}

func (h *QnAHandler) castVote(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id uuid.UUID, dir domain.VoteDirection) (*qna.VoteResult, error),
) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req voteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := fn(r.Context(), id, domain.VoteDirection(strings.ToUpper(req.Direction)))
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toVoteResponse(res))
}

func (h *QnAHandler) removeVote(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id uuid.UUID) (*qna.VoteResult, error),
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

	writeJSON(w, http.StatusOK, toVoteResponse(res))
}
