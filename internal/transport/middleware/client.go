package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/heartmarshall/qaboard-backend/pkg/ctxutil"
)

// ClientKey identifies the caller: "user:<id>" when authenticated,
// otherwise "ip:<addr>" taken from X-Forwarded-For or RemoteAddr.
func ClientKey(r *http.Request) string {
	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + id.String()
	}
	return "ip:" + clientIP(r)
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
