package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
)

const APISecretParam = "api_secret"

// APISecret is a middleware factory that checks the api_secret query
// parameter. An empty secret accepts any non-empty value.
func APISecret(secret string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.URL.Query().Get(APISecretParam)
			if got == "" {
				logger.Warn("api secret missing from request", "remote_addr", r.RemoteAddr)
				http.Error(w, "Unauthorized: api_secret required", http.StatusUnauthorized)
				return
			}

			if secret != "" && subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				logger.Warn("invalid api secret provided", "remote_addr", r.RemoteAddr)
				http.Error(w, "Forbidden: invalid api_secret", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
