package command

import (
	"context"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

// Command is the generic interface for all commands.
// Req is the request type and Res is the result type.
type Command[Req, Res any] interface {
	Execute(ctx context.Context, req Req) (Res, error)
}

var (
	_ Command[RecommendProductsRequest, []domain.Product]                = (*RecommendProducts)(nil)
	_ Command[UpdateRecommendationsRequest, UpdateRecommendationsResult] = (*UpdateRecommendations)(nil)
	_ Command[RecordBehaviorRequest, domain.BehaviorEvent]               = (*RecordBehavior)(nil)
	_ Command[ListTrendingProductsRequest, []domain.Product]             = (*ListTrendingProducts)(nil)
	_ Strategy                                                           = (*UserCollaborativeFilter)(nil)
	_ Strategy                                                           = (*ItemCollaborativeFilter)(nil)
	_ Strategy                                                           = (*ContentFilter)(nil)
	_ Strategy                                                           = (*TrendingScorer)(nil)
	_ Strategy                                                           = (*FeaturedBoost)(nil)
)
