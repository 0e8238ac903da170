package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
	"github.com/heartmarshall/qaboard-backend/internal/service/moderation"
)

type moderationService interface {
	Report(ctx context.Context, input moderation.ReportInput) (*domain.Report, error)
	ListReports(ctx context.Context, input moderation.ListReportsInput) ([]domain.Report, int, error)
	ResolveReport(ctx context.Context, reportID uuid.UUID) (*domain.Report, error)
	Blind(ctx context.Context, target domain.Target) error
	Unblind(ctx context.Context, target domain.Target) error
	BatchDeleteQuestions(ctx context.Context, input moderation.BatchDeleteInput) (int64, error)
	EntityHistory(ctx context.Context, target domain.Target, limit int) ([]domain.AuditRecord, error)
}

// AdminHandler serves reporting and moderation endpoints. Everything except
// Report is mounted behind the admin-only middleware; the service checks the
// role again.
type AdminHandler struct {
	svc moderationService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc moderationService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		svc: svc,
		log: logger.With("handler", "admin"),
	}
}

type reportRequest struct {
	TargetType string `json:"targetType"`
	TargetID   string `json:"targetId"`
	Reason     string `json:"reason"`
}

type batchDeleteRequest struct {
	QuestionIDs []uuid.UUID `json:"questionIds"`
}

// Report handles POST /api/v1/reports.
func (h *AdminHandler) Report(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		writeServiceError(h.log, w, r, domain.NewValidationError("targetId", "must be a UUID"))
		return
	}

	report, err := h.svc.Report(r.Context(), moderation.ReportInput{
		Target: domain.Target{Kind: domain.TargetKind(strings.ToUpper(req.TargetType)), ID: targetID},
		Reason: req.Reason,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReportResponse(*report))
}

// ListReports handles GET /api/v1/admin/reports?open=true&kind=ANSWER&limit=50&offset=0.
func (h *AdminHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := moderation.ListReportsInput{}

	if v := q.Get("open"); v != "" {
		open, err := strconv.ParseBool(v)
		if err != nil {
			writeServiceError(h.log, w, r, domain.NewValidationError("open", "must be a boolean"))
			return
		}
		input.OnlyOpen = open
	}
	if v := q.Get("kind"); v != "" {
		kind := domain.TargetKind(strings.ToUpper(v))
		input.Kind = &kind
	}

	var err error
	if input.Limit, err = queryInt(r, "limit", 50); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	if input.Offset, err = queryInt(r, "offset", 0); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	reports, total, err := h.svc.ListReports(r.Context(), input)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	items := make([]reportResponse, len(reports))
	for i, rep := range reports {
		items[i] = toReportResponse(rep)
	}
	writeJSON(w, http.StatusOK, pageResponse[reportResponse]{
		Items:  items,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
}

// ResolveReport handles POST /api/v1/admin/reports/{id}/resolve.
func (h *AdminHandler) ResolveReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	report, err := h.svc.ResolveReport(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(*report))
}

// Blind handles POST /api/v1/admin/{kind}/{id}/blind where kind is
// "questions" or "answers".
func (h *AdminHandler) Blind(w http.ResponseWriter, r *http.Request) {
	h.setBlinded(w, r, h.svc.Blind)
}

// Unblind handles DELETE /api/v1/admin/{kind}/{id}/blind.
func (h *AdminHandler) Unblind(w http.ResponseWriter, r *http.Request) {
	h.setBlinded(w, r, h.svc.Unblind)
}

func (h *AdminHandler) setBlinded(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, target domain.Target) error,
) {
	target, ok := h.pathTarget(w, r)
	if !ok {
		return
	}

	if err := fn(r.Context(), target); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BatchDeleteQuestions handles POST /api/v1/admin/questions/batch-delete.
func (h *AdminHandler) BatchDeleteQuestions(w http.ResponseWriter, r *http.Request) {
	var req batchDeleteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	deleted, err := h.svc.BatchDeleteQuestions(r.Context(), moderation.BatchDeleteInput{
		QuestionIDs: req.QuestionIDs,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

// History handles GET /api/v1/admin/{kind}/{id}/history?limit=50.
func (h *AdminHandler) History(w http.ResponseWriter, r *http.Request) {
	target, ok := h.pathTarget(w, r)
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	records, err := h.svc.EntityHistory(r.Context(), target, limit)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	items := make([]auditResponse, len(records))
	for i, rec := range records {
		items[i] = toAuditResponse(rec)
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *AdminHandler) pathTarget(w http.ResponseWriter, r *http.Request) (domain.Target, bool) {
	var kind domain.TargetKind
	switch r.PathValue("kind") {
	case "questions":
		kind = domain.TargetQuestion
	case "answers":
		kind = domain.TargetAnswer
	default:
		writeError(w, http.StatusNotFound, "NOT_FOUND", "not found")
		return domain.Target{}, false
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return domain.Target{}, false
	}
	return domain.Target{Kind: kind, ID: id}, true
}
