package command

import (
	"context"
	"fmt"
	"time"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/datasources"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

// UserCollaborativeFilterConfig holds configuration for user-based collaborative filtering.
type UserCollaborativeFilterConfig struct {
	// Window is how far back behavior events are considered.
	Window time.Duration

	// HistoryLimit caps the target user's events.
	HistoryLimit int

	// PeerLimit caps other users' events on the target user's products.
	PeerLimit int

	// NeighbourLimit caps the recent events fetched for similar users.
	NeighbourLimit int

	// SimilarityThreshold is the cosine similarity a user must exceed to count as similar.
	SimilarityThreshold float64

	// DecayRate is the per-day recency multiplier applied to events.
	DecayRate float64
}

// UserCollaborativeFilter scores products through the weighted behavior of shoppers
// whose recent activity resembles the target user's.
type UserCollaborativeFilter struct {
	Behaviors datasources.BehaviorLister
	Weights   domain.BehaviorWeights
	Config    UserCollaborativeFilterConfig
	Now       func() time.Time
}

// NewUserCollaborativeFilter creates a properly initialized UserCollaborativeFilter strategy.
func NewUserCollaborativeFilter(
	behaviors datasources.BehaviorLister,
	weights domain.BehaviorWeights,
	config UserCollaborativeFilterConfig,
) *UserCollaborativeFilter {
	return &UserCollaborativeFilter{
		Behaviors: behaviors,
		Weights:   weights,
		Config:    config,
		Now:       time.Now,
	}
}

func (c *UserCollaborativeFilter) Name() domain.Strategy {
	return domain.StrategyUserCollaborative
}

// Score returns normalized scores for products similar users engaged with. The user's own
// products are reported in the result's Exclude list. Anonymous and cold-start users get
// an empty result. Once the history is read, the Exclude list is returned even alongside an error.
func (c *UserCollaborativeFilter) Score(ctx context.Context, req StrategyRequest) (StrategyResult, error) {
	if req.UserID == "" {
		return StrategyResult{}, nil
	}

	now := c.Now()
	since := now.Add(-c.Config.Window)

	history, err := c.Behaviors.ListBehaviors(ctx, domain.BehaviorFilter{
		UserIDs: []string{req.UserID},
		Since:   since,
		Limit:   c.Config.HistoryLimit,
	})
	if err != nil {
		return StrategyResult{}, fmt.Errorf("listing user behaviors: %w", err)
	}
	if len(history) == 0 {
		return StrategyResult{}, nil
	}

	target := c.profile(history, now)
	interacted := sortedKeys(target)

	peerEvents, err := c.Behaviors.ListBehaviors(ctx, domain.BehaviorFilter{
		ProductIDs:     interacted,
		ExcludeUserID:  req.UserID,
		IdentifiedOnly: true,
		Since:          since,
		Limit:          c.Config.PeerLimit,
	})
	if err != nil {
		return StrategyResult{Exclude: interacted}, fmt.Errorf("listing peer behaviors: %w", err)
	}

	similarities := c.similarUsers(target, peerEvents, now)
	if len(similarities) == 0 {
		return StrategyResult{Exclude: interacted}, nil
	}

	neighbourEvents, err := c.Behaviors.ListBehaviors(ctx, domain.BehaviorFilter{
		UserIDs: sortedKeys(similarities),
		Since:   since,
		Limit:   c.Config.NeighbourLimit,
	})
	if err != nil {
		return StrategyResult{Exclude: interacted}, fmt.Errorf("listing similar user behaviors: %w", err)
	}

	scores := make(map[string]float64)
	for _, e := range neighbourEvents {
		similarity, ok := similarities[e.UserID]
		if !ok {
			continue
		}
		if _, own := target[e.ProductID]; own || req.excluded(e.ProductID) {
			continue
		}
		scores[e.ProductID] += similarity * c.Weights.Weight(e.BehaviorType) *
			domain.Decay(e.CreatedAt, now, c.Config.DecayRate)
	}

	return StrategyResult{
		Scores:  normalizeScores(scores),
		Exclude: interacted,
	}, nil
}

// profile builds a product -> Σ(weight × decay) vector from events.
func (c *UserCollaborativeFilter) profile(events []domain.BehaviorEvent, now time.Time) map[string]float64 {
	profile := make(map[string]float64)
	for _, e := range events {
		profile[e.ProductID] += c.Weights.Weight(e.BehaviorType) * domain.Decay(e.CreatedAt, now, c.Config.DecayRate)
	}
	return profile
}

// similarUsers returns the users whose profiles exceed the similarity threshold against target.
func (c *UserCollaborativeFilter) similarUsers(
	target map[string]float64,
	peerEvents []domain.BehaviorEvent,
	now time.Time,
) map[string]float64 {
	byUser := make(map[string][]domain.BehaviorEvent)
	for _, e := range peerEvents {
		if e.UserID == "" {
			continue
		}
		byUser[e.UserID] = append(byUser[e.UserID], e)
	}

	similarities := make(map[string]float64)
	for userID, events := range byUser {
		similarity := domain.CosineSimilarity(target, c.profile(events, now))
		if similarity > c.Config.SimilarityThreshold {
			similarities[userID] = similarity
		}
	}
	return similarities
}
