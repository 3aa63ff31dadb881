package router

import (
	"net/http"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := domain.UserIDFromContext(r.Context())
		if userID == "" {
			logger := domain.LoggerFromContext(r.Context())
			logger.ErrorContext(r.Context(), "attempt to use endpoint requiring auth without user ID")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func requireAdminMiddleware(next http.Handler) http.Handler {
	return requireAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !domain.IsAdminFromContext(r.Context()) {
			logger := domain.LoggerFromContext(r.Context())
			logger.WarnContext(r.Context(), "non-admin attempted admin endpoint",
				"user_id", domain.UserIDFromContext(r.Context()))
			w.WriteHeader(http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	}))
}
