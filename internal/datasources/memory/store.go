// Package memory provides an in-process implementation of every datasource the
// recommendation engine reads, for local development and tests.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/datasources"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

var _ datasources.DatasetRepository = (*Store)(nil)

// Store keeps behavior events, products and similarity edges in memory.
// It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	behaviors []domain.BehaviorEvent
	products  map[string]domain.Product
	edges     []domain.SimilarityEdge
}

func New() *Store {
	return &Store{products: make(map[string]domain.Product)}
}

// PutProducts inserts or replaces catalog entries.
func (s *Store) PutProducts(products ...domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range products {
		s.products[p.ID] = p
	}
}

func (s *Store) RecordBehavior(_ context.Context, event domain.BehaviorEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.behaviors = append(s.behaviors, event)
	return nil
}

func (s *Store) ListBehaviors(_ context.Context, filter domain.BehaviorFilter) ([]domain.BehaviorEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.BehaviorEvent
	for _, e := range s.behaviors {
		if matchesBehaviorFilter(e, filter) {
			result = append(result, e)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func matchesBehaviorFilter(e domain.BehaviorEvent, filter domain.BehaviorFilter) bool {
	if len(filter.UserIDs) > 0 && !slices.Contains(filter.UserIDs, e.UserID) {
		return false
	}
	if filter.ExcludeUserID != "" && e.UserID == filter.ExcludeUserID {
		return false
	}
	if len(filter.ProductIDs) > 0 && !slices.Contains(filter.ProductIDs, e.ProductID) {
		return false
	}
	if !filter.Since.IsZero() && e.CreatedAt.Before(filter.Since) {
		return false
	}
	if filter.IdentifiedOnly && e.UserID == "" {
		return false
	}
	return true
}

func (s *Store) FetchProductsByID(_ context.Context, ids []string) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func (s *Store) ListActiveProducts(
	_ context.Context, options domain.ProductListOptions,
) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Product
	for _, p := range s.products {
		if !p.IsActive || slices.Contains(options.ExcludeIDs, p.ID) {
			continue
		}
		if options.OnlyFeatured && !p.IsFeatured {
			continue
		}
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].IsFeatured != result[j].IsFeatured {
			return result[i].IsFeatured
		}
		return result[i].ID < result[j].ID
	})

	if options.Limit > 0 && len(result) > options.Limit {
		result = result[:options.Limit]
	}
	return result, nil
}

func (s *Store) ListSimilarityEdges(
	_ context.Context, filter domain.SimilarityEdgeFilter,
) ([]domain.SimilarityEdge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.SimilarityEdge
	for _, e := range s.edges {
		matchID := e.ProductID
		if filter.Direction == domain.EdgeDirectionBackward {
			matchID = e.RecommendedProductID
		}
		if matchID == filter.ProductID {
			result = append(result, e)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})

	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (s *Store) ReplaceSimilarityEdges(
	_ context.Context,
	recommendationType domain.RecommendationType,
	edges []domain.SimilarityEdge,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]domain.SimilarityEdge, 0, len(s.edges)+len(edges))
	for _, e := range s.edges {
		if e.RecommendationType != recommendationType {
			kept = append(kept, e)
		}
	}
	for _, e := range edges {
		e.RecommendationType = recommendationType
		kept = append(kept, e)
	}
	s.edges = kept
	return nil
}

// SimilarityEdges returns a copy of the whole similarity table.
func (s *Store) SimilarityEdges() []domain.SimilarityEdge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.edges)
}
