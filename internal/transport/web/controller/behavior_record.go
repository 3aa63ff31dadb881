package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/command"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

// BehaviorRecord appends a shopper interaction with a product to the behavior log.
// Anonymous shoppers are recorded without a user ID.
type BehaviorRecord struct {
	Command command.Command[command.RecordBehaviorRequest, domain.BehaviorEvent]
}

func (c BehaviorRecord) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	vars := mux.Vars(r)
	productID := vars["product_id"]
	behaviorType := vars["behavior_type"]
	if productID == "" || behaviorType == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	event, err := c.Command.Execute(ctx, command.RecordBehaviorRequest{
		UserID:       domain.UserIDFromContext(ctx),
		ProductID:    productID,
		BehaviorType: domain.BehaviorType(behaviorType),
	})
	if errors.Is(err, domain.ErrInvalidBehaviorType) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "unable to record behavior", "error", err,
			"product_id", productID, "behavior_type", behaviorType)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(event); err != nil {
		logger.ErrorContext(ctx, "unable to write behavior event to response", "error", err)
	}
}
