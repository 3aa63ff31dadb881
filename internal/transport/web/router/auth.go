package router

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

const adminTokenAuthHeaderPrefix = "Bearer admin|"

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID string
	Method domain.AuthMethod
	Admin  bool
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = fmt.Fprintf(w, `{"message":"%s"}`, err.Error())
					return
				}

				ctx := domain.ContextWithUserID(r.Context(), result.UserID)
				ctx = domain.ContextWithAuthMethod(ctx, result.Method)
				ctx = domain.ContextWithAdmin(ctx, result.Admin)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// Anonymous shoppers still get recommendations.
			next.ServeHTTP(w, r)
		})
	}
}

// NewAdminTokenValidator creates a validator for the shared operator token used by scheduled jobs.
// Only the hex encoded SHA-256 hash of the token is configured.
func NewAdminTokenValidator(tokenHashHex string) (AuthValidator, error) {
	expected, err := hex.DecodeString(tokenHashHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode admin token hash: %w", err)
	}
	if len(expected) != sha256.Size {
		return nil, fmt.Errorf("admin token hash must be %d bytes, got %d", sha256.Size, len(expected))
	}

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, adminTokenAuthHeaderPrefix) {
			return nil, nil
		}

		hash := sha256.Sum256([]byte(authHeader[len(adminTokenAuthHeaderPrefix):]))
		if subtle.ConstantTimeCompare(hash[:], expected) != 1 {
			return nil, fmt.Errorf("invalid admin token")
		}

		return &AuthResult{
			UserID: "admin",
			Method: domain.AuthMethodAdminToken,
			Admin:  true,
		}, nil
	}, nil
}
