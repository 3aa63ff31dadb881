package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/datasources"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

type ListTrendingProductsRequest struct {
	Limit int
}

// ListTrendingProducts lists the active products with the most recent engagement, best first.
type ListTrendingProducts struct {
	Trending       *TrendingScorer
	ProductFetcher datasources.ProductFetcher
}

func NewListTrendingProducts(trending *TrendingScorer, productFetcher datasources.ProductFetcher) *ListTrendingProducts {
	return &ListTrendingProducts{
		Trending:       trending,
		ProductFetcher: productFetcher,
	}
}

func (c *ListTrendingProducts) Execute(ctx context.Context, req ListTrendingProductsRequest) ([]domain.Product, error) {
	res, err := c.Trending.Score(ctx, StrategyRequest{})
	if err != nil {
		return nil, fmt.Errorf("scoring trending products: %w", err)
	}

	ids := sortedKeys(res.Scores)
	sort.SliceStable(ids, func(i, j int) bool {
		return res.Scores[ids[i]] > res.Scores[ids[j]]
	})

	// Inactive products are dropped after the lookup, so fetch them all before truncating.
	products, err := resolveRanked(ctx, c.ProductFetcher, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching trending products: %w", err)
	}

	if req.Limit > 0 && len(products) > req.Limit {
		products = products[:req.Limit]
	}
	return products, nil
}
