package rest

import (
	"net/http"

	"github.com/heartmarshall/qaboard-backend/pkg/ctxutil"
)

type meResponse struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Role string `json:"role"`
}

// Me handles GET /api/v1/me. It echoes the identity carried by the access
// token; tokens are issued by the identity provider, not by this service.
func Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}

	writeJSON(w, http.StatusOK, meResponse{
		ID:   userID.String(),
		Name: ctxutil.UserNameFromCtx(r.Context()),
		Role: ctxutil.UserRoleFromCtx(r.Context()).String(),
	})
}
