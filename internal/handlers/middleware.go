package handlers

import (
	"net/http"
	"strings"

	"github.com/myokyal/loopify/internal/token"
)

// AdminMiddleware requires a valid admin bearer token on the request.
func AdminMiddleware(tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				jsonError(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Validate(strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				jsonError(w, "invalid token", http.StatusUnauthorized)
				return
			}
			if claims.Role != "admin" {
				jsonError(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
