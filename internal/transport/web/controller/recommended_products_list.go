package controller

import (
	"encoding/json"
	"net/http"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/command"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

// RecommendedProductsList serves recommendations for the caller, if signed in, and the
// product given by the product_id query parameter, if any.
type RecommendedProductsList struct {
	Command command.Command[command.RecommendProductsRequest, []domain.Product]
}

func (c RecommendedProductsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	limit, err := parseLimit(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse limit in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	products, err := c.Command.Execute(ctx, command.RecommendProductsRequest{
		UserID:    domain.UserIDFromContext(ctx),
		ProductID: r.URL.Query().Get("product_id"),
		Limit:     limit,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to get recommended products", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if products == nil {
		products = []domain.Product{}
	}

	w.Header().Set("Content-Type", "application/json")
	// Personalized responses must not be shared between shoppers.
	w.Header().Set("Cache-Control", "private, no-store")

	if err := json.NewEncoder(w).Encode(ProductsListResponse{
		Data:     products,
		Metadata: ProductsListMetadata{},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write recommended products to response", "error", err)
	}
}
