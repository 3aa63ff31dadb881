package domain

import (
	"context"
	"log/slog"
)

type contextKey string

const loggerContextKey contextKey = "logger"

func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := ctx.Value(loggerContextKey)
	if logger == nil {
		logger = slog.Default()
	}

	return logger.(*slog.Logger)
}

const userContextKey contextKey = "user"

func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userContextKey, userID)
}

func UserIDFromContext(ctx context.Context) string {
	userID := ctx.Value(userContextKey)
	if userID == nil {
		userID = ""
	}
	return userID.(string)
}

const authMethodContextKey contextKey = "auth_method"

// AuthMethod records which validator authenticated the request.
type AuthMethod string

const (
	AuthMethodAuth0      AuthMethod = "auth0"
	AuthMethodAdminToken AuthMethod = "admin_token"
)

func ContextWithAuthMethod(ctx context.Context, method AuthMethod) context.Context {
	return context.WithValue(ctx, authMethodContextKey, method)
}

func AuthMethodFromContext(ctx context.Context) AuthMethod {
	method, _ := ctx.Value(authMethodContextKey).(AuthMethod)
	return method
}

const adminContextKey contextKey = "admin"

// ContextWithAdmin marks the request as made by a caller allowed to run privileged operations,
// such as regenerating the product similarity table.
func ContextWithAdmin(ctx context.Context, admin bool) context.Context {
	return context.WithValue(ctx, adminContextKey, admin)
}

func IsAdminFromContext(ctx context.Context) bool {
	admin, _ := ctx.Value(adminContextKey).(bool)
	return admin
}
