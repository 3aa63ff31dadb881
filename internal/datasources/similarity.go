package datasources

import (
	"context"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

// SimilarityRepository combines all similarity table operations.
type SimilarityRepository interface {
	SimilarityEdgeLister
	SimilarityEdgeReplacer
}

type SimilarityEdgeLister interface {
	ListSimilarityEdges(ctx context.Context, filter domain.SimilarityEdgeFilter) ([]domain.SimilarityEdge, error)
}

// SimilarityEdgeReplacer swaps every edge of one recommendation type for a new set.
// Implementations make the swap as atomic towards readers as the store allows.
type SimilarityEdgeReplacer interface {
	ReplaceSimilarityEdges(
		ctx context.Context,
		recommendationType domain.RecommendationType,
		edges []domain.SimilarityEdge,
	) error
}
