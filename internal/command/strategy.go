package command

import (
	"context"
	"sort"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/datasources"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

// StrategyRequest is the input every scoring strategy of one recommendation request receives.
type StrategyRequest struct {
	UserID    string
	ProductID string

	// Exclude holds product IDs that must not be scored. It is shared between
	// concurrently running strategies and must only be read.
	Exclude map[string]struct{}
}

func (r StrategyRequest) excluded(productID string) bool {
	_, ok := r.Exclude[productID]
	return ok
}

// StrategyResult is the raw output of a single strategy.
type StrategyResult struct {
	Scores map[string]float64

	// Exclude lists product IDs the strategy learned must be hidden from the shopper,
	// such as products they already interacted with.
	Exclude []string
}

// Strategy scores candidate products for a recommendation request.
type Strategy interface {
	Name() domain.Strategy
	Score(ctx context.Context, req StrategyRequest) (StrategyResult, error)
}

// normalizeScores divides every score by the largest one, flooring the divisor at 1.
func normalizeScores(scores map[string]float64) map[string]float64 {
	maxScore := 1.0
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}

	for id, s := range scores {
		scores[id] = s / maxScore
	}
	return scores
}

// sortedKeys returns the keys of a set-like map in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// resolveRanked fetches products for ranked IDs, drops unknown or inactive ones,
// and returns them in ranked order.
func resolveRanked(ctx context.Context, fetcher datasources.ProductFetcher, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	products, err := fetcher.FetchProductsByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	resolved := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok || !p.IsActive {
			continue
		}
		resolved = append(resolved, p)
	}
	return resolved, nil
}
