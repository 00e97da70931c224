package daemon

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// authMiddleware guards the review API with a static bearer token from the
// config. An empty token disables authentication entirely; the health
// endpoint is registered without this wrapper so probes can reach a
// locked-down daemon.
func authMiddleware(token string, next http.HandlerFunc) http.HandlerFunc {
	if token == "" {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		presented, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
