package command

import (
	"context"
	"fmt"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/datasources"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

// ItemCollaborativeFilterConfig holds configuration for item-based collaborative filtering.
type ItemCollaborativeFilterConfig struct {
	// ForwardLimit caps edges leaving the reference product.
	ForwardLimit int

	// BackwardLimit caps edges pointing at the reference product.
	BackwardLimit int

	// BackwardPenalty scales backward edge scores, as the reverse direction is a weaker signal.
	BackwardPenalty float64
}

// ItemCollaborativeFilter scores products through the precomputed similarity table,
// looking the reference product up in both columns.
type ItemCollaborativeFilter struct {
	Edges  datasources.SimilarityEdgeLister
	Config ItemCollaborativeFilterConfig
}

// NewItemCollaborativeFilter creates a properly initialized ItemCollaborativeFilter strategy.
func NewItemCollaborativeFilter(
	edges datasources.SimilarityEdgeLister,
	config ItemCollaborativeFilterConfig,
) *ItemCollaborativeFilter {
	return &ItemCollaborativeFilter{
		Edges:  edges,
		Config: config,
	}
}

func (c *ItemCollaborativeFilter) Name() domain.Strategy {
	return domain.StrategyItemCollaborative
}

func (c *ItemCollaborativeFilter) Score(ctx context.Context, req StrategyRequest) (StrategyResult, error) {
	if req.ProductID == "" {
		return StrategyResult{}, nil
	}

	forward, err := c.Edges.ListSimilarityEdges(ctx, domain.SimilarityEdgeFilter{
		ProductID: req.ProductID,
		Direction: domain.EdgeDirectionForward,
		Limit:     c.Config.ForwardLimit,
	})
	if err != nil {
		return StrategyResult{}, fmt.Errorf("listing forward similarity edges: %w", err)
	}

	backward, err := c.Edges.ListSimilarityEdges(ctx, domain.SimilarityEdgeFilter{
		ProductID: req.ProductID,
		Direction: domain.EdgeDirectionBackward,
		Limit:     c.Config.BackwardLimit,
	})
	if err != nil {
		return StrategyResult{}, fmt.Errorf("listing backward similarity edges: %w", err)
	}

	scores := make(map[string]float64)
	keepMax := func(productID string, score float64) {
		if productID == req.ProductID || req.excluded(productID) {
			return
		}
		if existing, ok := scores[productID]; !ok || score > existing {
			scores[productID] = score
		}
	}

	for _, e := range forward {
		keepMax(e.RecommendedProductID, e.Score)
	}
	for _, e := range backward {
		keepMax(e.ProductID, e.Score*c.Config.BackwardPenalty)
	}

	return StrategyResult{Scores: scores}, nil
}
