package command

import (
	"context"
	"fmt"
	"time"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/datasources"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

// TrendingScorerConfig holds configuration for trending scoring.
type TrendingScorerConfig struct {
	Window        time.Duration
	BehaviorLimit int

	// DecayRate is faster than the long-horizon rate so that trends fade quickly.
	DecayRate float64
}

// TrendingScorer scores products by recent storefront-wide engagement,
// anonymous shoppers included. It is not personalized.
type TrendingScorer struct {
	Behaviors datasources.BehaviorLister
	Weights   domain.BehaviorWeights
	Config    TrendingScorerConfig
	Now       func() time.Time
}

// NewTrendingScorer creates a properly initialized TrendingScorer strategy.
func NewTrendingScorer(
	behaviors datasources.BehaviorLister,
	weights domain.BehaviorWeights,
	config TrendingScorerConfig,
) *TrendingScorer {
	return &TrendingScorer{
		Behaviors: behaviors,
		Weights:   weights,
		Config:    config,
		Now:       time.Now,
	}
}

func (c *TrendingScorer) Name() domain.Strategy {
	return domain.StrategyTrending
}

func (c *TrendingScorer) Score(ctx context.Context, req StrategyRequest) (StrategyResult, error) {
	now := c.Now()

	events, err := c.Behaviors.ListBehaviors(ctx, domain.BehaviorFilter{
		Since: now.Add(-c.Config.Window),
		Limit: c.Config.BehaviorLimit,
	})
	if err != nil {
		return StrategyResult{}, fmt.Errorf("listing recent behaviors: %w", err)
	}

	scores := make(map[string]float64)
	for _, e := range events {
		if req.excluded(e.ProductID) {
			continue
		}
		scores[e.ProductID] += c.Weights.Weight(e.BehaviorType) * domain.Decay(e.CreatedAt, now, c.Config.DecayRate)
	}

	return StrategyResult{Scores: normalizeScores(scores)}, nil
}
