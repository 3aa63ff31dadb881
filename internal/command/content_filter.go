package command

import (
	"context"
	"fmt"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/datasources"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

// ContentFilterConfig holds configuration for attribute-based scoring.
type ContentFilterConfig struct {
	// CatalogLimit caps the active products compared against the reference product.
	CatalogLimit int

	Weights domain.ContentWeights
}

// ContentFilter scores active products by attribute overlap with the reference product.
type ContentFilter struct {
	Products datasources.ProductFetcher
	Catalog  datasources.ActiveProductLister
	Config   ContentFilterConfig
}

// NewContentFilter creates a properly initialized ContentFilter strategy.
func NewContentFilter(
	products datasources.ProductFetcher,
	catalog datasources.ActiveProductLister,
	config ContentFilterConfig,
) *ContentFilter {
	return &ContentFilter{
		Products: products,
		Catalog:  catalog,
		Config:   config,
	}
}

func (c *ContentFilter) Name() domain.Strategy {
	return domain.StrategyContent
}

func (c *ContentFilter) Score(ctx context.Context, req StrategyRequest) (StrategyResult, error) {
	if req.ProductID == "" {
		return StrategyResult{}, nil
	}

	references, err := c.Products.FetchProductsByID(ctx, []string{req.ProductID})
	if err != nil {
		return StrategyResult{}, fmt.Errorf("fetching reference product: %w", err)
	}

	var reference *domain.Product
	for i := range references {
		if references[i].ID == req.ProductID {
			reference = &references[i]
			break
		}
	}
	if reference == nil {
		return StrategyResult{}, nil
	}

	catalog, err := c.Catalog.ListActiveProducts(ctx, domain.ProductListOptions{
		Limit: c.Config.CatalogLimit,
	})
	if err != nil {
		return StrategyResult{}, fmt.Errorf("listing active products: %w", err)
	}

	scores := make(map[string]float64)
	for _, candidate := range catalog {
		if candidate.ID == reference.ID || req.excluded(candidate.ID) {
			continue
		}
		if score := domain.ContentScore(*reference, candidate, c.Config.Weights); score > 0 {
			scores[candidate.ID] = score
		}
	}

	return StrategyResult{Scores: scores}, nil
}
