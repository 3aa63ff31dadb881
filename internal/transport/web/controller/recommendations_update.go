package controller

import (
	"encoding/json"
	"net/http"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/command"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

// RecommendationsUpdate triggers a recomputation of the product similarity table.
// Callers must already be authorised as admins.
type RecommendationsUpdate struct {
	Command command.Command[command.UpdateRecommendationsRequest, command.UpdateRecommendationsResult]
}

func (c RecommendationsUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	if !domain.IsAdminFromContext(ctx) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	result, err := c.Command.Execute(ctx, command.UpdateRecommendationsRequest{})
	if err != nil {
		logger.ErrorContext(ctx, "unable to update recommendations", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.ErrorContext(ctx, "unable to write recommendations update result to response", "error", err)
	}
}
