package rest

import (
	"net/http"

	"github.com/heartmarshall/qaboard-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health *HealthHandler
	QnA    *QnAHandler
	Admin  *AdminHandler
}

// NewRouter builds the route table. Global middleware (request id, auth,
// logging) is applied by the caller; admin routes get AdminOnly here.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/v1/me", Me)

	mux.HandleFunc("GET /api/v1/questions", h.QnA.ListQuestions)
	mux.HandleFunc("POST /api/v1/questions", h.QnA.CreateQuestion)
	mux.HandleFunc("GET /api/v1/questions/{id}", h.QnA.GetQuestion)
	mux.HandleFunc("PATCH /api/v1/questions/{id}", h.QnA.UpdateQuestion)
	mux.HandleFunc("DELETE /api/v1/questions/{id}", h.QnA.DeleteQuestion)
	mux.HandleFunc("POST /api/v1/questions/{id}/close", h.QnA.CloseQuestion)
	mux.HandleFunc("POST /api/v1/questions/{id}/reopen", h.QnA.ReopenQuestion)
	mux.HandleFunc("PUT /api/v1/questions/{id}/vote", h.QnA.VoteQuestion)
	mux.HandleFunc("DELETE /api/v1/questions/{id}/vote", h.QnA.RemoveQuestionVote)

	mux.HandleFunc("GET /api/v1/questions/{id}/answers", h.QnA.ListAnswers)
	mux.HandleFunc("POST /api/v1/questions/{id}/answers", h.QnA.CreateAnswer)
	mux.HandleFunc("PATCH /api/v1/answers/{id}", h.QnA.UpdateAnswer)
	mux.HandleFunc("DELETE /api/v1/answers/{id}", h.QnA.DeleteAnswer)
	mux.HandleFunc("POST /api/v1/answers/{id}/accept", h.QnA.AcceptAnswer)
	mux.HandleFunc("DELETE /api/v1/answers/{id}/accept", h.QnA.UnacceptAnswer)
	mux.HandleFunc("PUT /api/v1/answers/{id}/vote", h.QnA.VoteAnswer)
	mux.HandleFunc("DELETE /api/v1/answers/{id}/vote", h.QnA.RemoveAnswerVote)

	mux.HandleFunc("POST /api/v1/reports", h.Admin.Report)

	admin := func(fn http.HandlerFunc) http.Handler { return middleware.AdminOnly(fn) }
	mux.Handle("GET /api/v1/admin/reports", admin(h.Admin.ListReports))
	mux.Handle("POST /api/v1/admin/reports/{id}/resolve", admin(h.Admin.ResolveReport))
	mux.Handle("POST /api/v1/admin/questions/batch-delete", admin(h.Admin.BatchDeleteQuestions))
	mux.Handle("POST /api/v1/admin/{kind}/{id}/blind", admin(h.Admin.Blind))
	mux.Handle("DELETE /api/v1/admin/{kind}/{id}/blind", admin(h.Admin.Unblind))
	mux.Handle("GET /api/v1/admin/{kind}/{id}/history", admin(h.Admin.History))

	return mux
}
