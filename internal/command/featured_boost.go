package command

import (
	"context"
	"fmt"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/datasources"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

type FeaturedBoostConfig struct {
	Limit int
}

// FeaturedBoost gives every featured active product a flat score of 1.
type FeaturedBoost struct {
	Catalog datasources.ActiveProductLister
	Config  FeaturedBoostConfig
}

func NewFeaturedBoost(catalog datasources.ActiveProductLister, config FeaturedBoostConfig) *FeaturedBoost {
	return &FeaturedBoost{
		Catalog: catalog,
		Config:  config,
	}
}

func (c *FeaturedBoost) Name() domain.Strategy {
	return domain.StrategyFeatured
}

func (c *FeaturedBoost) Score(ctx context.Context, req StrategyRequest) (StrategyResult, error) {
	featured, err := c.Catalog.ListActiveProducts(ctx, domain.ProductListOptions{
		ExcludeIDs:   sortedKeys(req.Exclude),
		OnlyFeatured: true,
		Limit:        c.Config.Limit,
	})
	if err != nil {
		return StrategyResult{}, fmt.Errorf("listing featured products: %w", err)
	}

	scores := make(map[string]float64, len(featured))
	for _, p := range featured {
		if req.excluded(p.ID) {
			continue
		}
		scores[p.ID] = 1
	}

	return StrategyResult{Scores: scores}, nil
}
