package app

import (
	"time"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/command"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

const (
	longHorizonDecayRate = 0.95
	trendingDecayRate    = 0.9
)

// DefaultUserCollaborativeFilterConfig returns the default config for user-based collaborative filtering.
func DefaultUserCollaborativeFilterConfig() command.UserCollaborativeFilterConfig {
	return command.UserCollaborativeFilterConfig{
		Window:              30 * 24 * time.Hour,
		HistoryLimit:        1000,
		PeerLimit:           1000,
		NeighbourLimit:      2000,
		SimilarityThreshold: 0.1,
		DecayRate:           longHorizonDecayRate,
	}
}

// DefaultItemCollaborativeFilterConfig returns the default config for similarity table lookups.
func DefaultItemCollaborativeFilterConfig() command.ItemCollaborativeFilterConfig {
	return command.ItemCollaborativeFilterConfig{
		ForwardLimit:    20,
		BackwardLimit:   10,
		BackwardPenalty: 0.8,
	}
}

// DefaultContentWeights returns the attribute weights used when serving recommendations.
func DefaultContentWeights() domain.ContentWeights {
	return domain.ContentWeights{
		Category:            0.4,
		Material:            0.3,
		SamePriceBucket:     0.2,
		AdjacentPriceBucket: 0.1,
		Featured:            0.1,
	}
}

func DefaultContentFilterConfig() command.ContentFilterConfig {
	return command.ContentFilterConfig{
		CatalogLimit: 5000,
		Weights:      DefaultContentWeights(),
	}
}

func DefaultTrendingScorerConfig() command.TrendingScorerConfig {
	return command.TrendingScorerConfig{
		Window:        7 * 24 * time.Hour,
		BehaviorLimit: 500,
		DecayRate:     trendingDecayRate,
	}
}

func DefaultFeaturedBoostConfig() command.FeaturedBoostConfig {
	return command.FeaturedBoostConfig{
		Limit: 50,
	}
}

// DefaultRecommendProductsConfig returns the default config for score fusion.
func DefaultRecommendProductsConfig() command.RecommendProductsConfig {
	return command.RecommendProductsConfig{
		Weights: map[domain.Strategy]float64{
			domain.StrategyUserCollaborative: 0.35,
			domain.StrategyItemCollaborative: 0.25,
			domain.StrategyContent:           0.20,
			domain.StrategyTrending:          0.15,
			domain.StrategyFeatured:          0.05,
		},
		StrategyTimeout: 2 * time.Second,
		DefaultLimit:    8,
		MaxLimit:        50,
		PadToLimit:      true,
	}
}

// DefaultUpdateRecommendationsConfig returns the default config for offline similarity recomputation.
// Content edges ignore the adjacent bucket and featured bonuses.
func DefaultUpdateRecommendationsConfig() command.UpdateRecommendationsConfig {
	return command.UpdateRecommendationsConfig{
		Window:                 90 * 24 * time.Hour,
		BehaviorLimit:          20000,
		CatalogLimit:           5000,
		DecayRate:              longHorizonDecayRate,
		CollaborativeThreshold: 0.05,
		ContentThreshold:       0.3,
		ContentWeights: domain.ContentWeights{
			Category:        0.4,
			Material:        0.3,
			SamePriceBucket: 0.2,
		},
	}
}
