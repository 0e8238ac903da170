package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

const healthCheckTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type schemaChecker interface {
	Version(ctx context.Context) (int64, error)
	Pending(ctx context.Context) (bool, error)
}

// HealthHandler serves the probe endpoints. A replica is ready only when the
// database answers and every embedded migration has been applied.
type HealthHandler struct {
	db      dbPinger
	schema  schemaChecker
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, schema schemaChecker, version string) *HealthHandler {
	return &HealthHandler{db: db, schema: schema, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready returns 200 when the database is reachable and migrated, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())

	resp := HealthResponse{Status: "ok", Timestamp: time.Now()}
	status := http.StatusOK
	if !ok {
		resp.Status = "down"
		resp.Components = components
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

// Health reports every component with database latency, schema version and
// the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())

	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	}
	status := http.StatusOK
	if !ok {
		resp.Status = "down"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func (h *HealthHandler) check(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	components := make(map[string]CompStatus, 2)

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		components["database"] = CompStatus{Status: "down"}
		// Schema state is unknowable without a connection.
		return components, false
	}
	components["database"] = CompStatus{Status: "ok", Latency: time.Since(start).String()}

	schema, ok := h.checkSchema(ctx)
	components["schema"] = schema
	return components, ok
}

func (h *HealthHandler) checkSchema(ctx context.Context) (CompStatus, bool) {
	pending, err := h.schema.Pending(ctx)
	if err != nil {
		return CompStatus{Status: "down"}, false
	}

	version, err := h.schema.Version(ctx)
	if err != nil {
		return CompStatus{Status: "down"}, false
	}

	detail := "version " + strconv.FormatInt(version, 10)
	if pending {
		return CompStatus{Status: "pending", Detail: detail}, false
	}
	return CompStatus{Status: "ok", Detail: detail}, true
}
