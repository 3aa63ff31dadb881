package command

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/datasources/memory"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/datasources/mocks"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func testStrategyWeights() map[domain.Strategy]float64 {
	return map[domain.Strategy]float64{
		domain.StrategyUserCollaborative: 0.35,
		domain.StrategyItemCollaborative: 0.25,
		domain.StrategyContent:           0.20,
		domain.StrategyTrending:          0.15,
		domain.StrategyFeatured:          0.05,
	}
}

func testRecommendProductsConfig() RecommendProductsConfig {
	return RecommendProductsConfig{
		Weights:         testStrategyWeights(),
		StrategyTimeout: time.Second,
		DefaultLimit:    8,
		MaxLimit:        50,
	}
}

// stubStrategy returns a fixed result, or blocks until its context ends when block is set.
type stubStrategy struct {
	name   domain.Strategy
	result StrategyResult
	err    error
	block  bool
}

func (s stubStrategy) Name() domain.Strategy { return s.name }

func (s stubStrategy) Score(ctx context.Context, _ StrategyRequest) (StrategyResult, error) {
	if s.block {
		<-ctx.Done()
		return StrategyResult{}, ctx.Err()
	}
	return s.result, s.err
}

func activeProducts(ids ...string) []domain.Product {
	products := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, domain.Product{ID: id, Name: "Product " + id, IsActive: true})
	}
	return products
}

func productIDs(products []domain.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestNewRecommendProducts_ValidatesWeights(t *testing.T) {
	strategies := []Strategy{
		stubStrategy{name: domain.StrategyUserCollaborative},
		stubStrategy{name: domain.StrategyTrending},
	}

	cases := []struct {
		name        string
		weights     map[domain.Strategy]float64
		errContains string
	}{
		{
			name: "valid",
			weights: map[domain.Strategy]float64{
				domain.StrategyUserCollaborative: 0.6,
				domain.StrategyTrending:          0.4,
			},
		},
		{
			name: "sum_exceeds_one",
			weights: map[domain.Strategy]float64{
				domain.StrategyUserCollaborative: 0.7,
				domain.StrategyTrending:          0.4,
			},
			errContains: "must not exceed 1",
		},
		{
			name: "missing_weight",
			weights: map[domain.Strategy]float64{
				domain.StrategyUserCollaborative: 0.7,
			},
			errContains: "no weight configured",
		},
		{
			name: "negative_weight",
			weights: map[domain.Strategy]float64{
				domain.StrategyUserCollaborative: 0.7,
				domain.StrategyTrending:          -0.1,
			},
			errContains: "must not be negative",
		},
		{
			name: "priority_inverted",
			weights: map[domain.Strategy]float64{
				domain.StrategyUserCollaborative: 0.2,
				domain.StrategyTrending:          0.5,
			},
			errContains: "higher priority",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := testRecommendProductsConfig()
			config.Weights = tc.weights

			cmd, err := NewRecommendProducts(strategies, memory.New(), memory.New(), config)

			if tc.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, cmd)
		})
	}
}

func TestRecommendProducts_Rank(t *testing.T) {
	cases := []struct {
		name       string
		strategies []Strategy
		req        RecommendProductsRequest
		limit      int
		expected   []ScoredProduct
	}{
		{
			name: "weighted_sum_with_contributors",
			strategies: []Strategy{
				stubStrategy{name: domain.StrategyTrending, result: StrategyResult{
					Scores: map[string]float64{"p1": 1, "p2": 1},
				}},
				stubStrategy{name: domain.StrategyItemCollaborative, result: StrategyResult{
					Scores: map[string]float64{"p2": 1},
				}},
			},
			limit: 10,
			expected: []ScoredProduct{
				{ProductID: "p2", Score: 0.40, Strategies: []domain.Strategy{
					domain.StrategyItemCollaborative, domain.StrategyTrending,
				}},
				{ProductID: "p1", Score: 0.15, Strategies: []domain.Strategy{domain.StrategyTrending}},
			},
		},
		{
			name: "ties_broken_by_id_and_truncated",
			strategies: []Strategy{
				stubStrategy{name: domain.StrategyFeatured, result: StrategyResult{
					Scores: map[string]float64{"p3": 1, "p1": 1, "p2": 1},
				}},
			},
			limit: 2,
			expected: []ScoredProduct{
				{ProductID: "p1", Score: 0.05, Strategies: []domain.Strategy{domain.StrategyFeatured}},
				{ProductID: "p2", Score: 0.05, Strategies: []domain.Strategy{domain.StrategyFeatured}},
			},
		},
		{
			name: "learned_and_reference_exclusions_dropped",
			strategies: []Strategy{
				stubStrategy{name: domain.StrategyUserCollaborative, result: StrategyResult{
					Scores:  map[string]float64{"p1": 1},
					Exclude: []string{"p2"},
				}},
				stubStrategy{name: domain.StrategyTrending, result: StrategyResult{
					Scores: map[string]float64{"p2": 1, "ref": 1, "p3": 0.5},
				}},
			},
			req:   RecommendProductsRequest{ProductID: "ref"},
			limit: 10,
			expected: []ScoredProduct{
				{ProductID: "p1", Score: 0.35, Strategies: []domain.Strategy{domain.StrategyUserCollaborative}},
				{ProductID: "p3", Score: 0.075, Strategies: []domain.Strategy{domain.StrategyTrending}},
			},
		},
		{
			name: "failing_strategy_contributes_nothing",
			strategies: []Strategy{
				stubStrategy{name: domain.StrategyUserCollaborative, err: errors.New("database error")},
				stubStrategy{name: domain.StrategyContent, result: StrategyResult{
					Scores: map[string]float64{"p1": 0.5},
				}},
			},
			limit: 10,
			expected: []ScoredProduct{
				{ProductID: "p1", Score: 0.1, Strategies: []domain.Strategy{domain.StrategyContent}},
			},
		},
		{
			name: "timed_out_strategy_contributes_nothing",
			strategies: []Strategy{
				stubStrategy{name: domain.StrategyUserCollaborative, block: true},
				stubStrategy{name: domain.StrategyFeatured, result: StrategyResult{
					Scores: map[string]float64{"p1": 1},
				}},
			},
			limit: 10,
			expected: []ScoredProduct{
				{ProductID: "p1", Score: 0.05, Strategies: []domain.Strategy{domain.StrategyFeatured}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := testRecommendProductsConfig()
			config.StrategyTimeout = 20 * time.Millisecond

			cmd, err := NewRecommendProducts(tc.strategies, memory.New(), memory.New(), config)
			require.NoError(t, err)

			ranked, _ := cmd.Rank(testContext(), tc.req, tc.limit)

			require.Len(t, ranked, len(tc.expected))
			for i := range tc.expected {
				assert.Equal(t, tc.expected[i].ProductID, ranked[i].ProductID, "product at %d", i)
				assert.InDelta(t, tc.expected[i].Score, ranked[i].Score, 1e-9, "score at %d", i)
				assert.Equal(t, tc.expected[i].Strategies, ranked[i].Strategies, "strategies at %d", i)
			}
		})
	}
}

func TestFuse_NeverReturnsExcludedAndSortsDescending(t *testing.T) {
	strategies := []Strategy{
		stubStrategy{name: domain.StrategyUserCollaborative},
		stubStrategy{name: domain.StrategyContent},
	}
	results := []StrategyResult{
		{Scores: map[string]float64{"a": 0.9, "b": 0.3, "c": 0.3, "x": 1}},
		{Scores: map[string]float64{"b": 0.2, "d": 1, "y": 1}},
	}
	exclude := map[string]struct{}{"x": {}, "y": {}}

	ranked := fuse(strategies, results, testStrategyWeights(), exclude, 10)

	require.NotEmpty(t, ranked)
	for i, sp := range ranked {
		_, excluded := exclude[sp.ProductID]
		assert.False(t, excluded, "excluded product %s returned", sp.ProductID)
		if i > 0 {
			prev := ranked[i-1]
			assert.True(t, prev.Score > sp.Score || (prev.Score == sp.Score && prev.ProductID < sp.ProductID),
				"ranking not strictly ordered at %d", i)
		}
	}
}

func TestRecommendProducts_Execute(t *testing.T) {
	cases := []struct {
		name       string
		products   []domain.Product
		strategies []Strategy
		req        RecommendProductsRequest
		padToLimit bool
		maxLimit   int
		expected   []string
	}{
		{
			name:     "no_ids_returns_every_active_product_once",
			products: activeProducts("p3", "p1", "p2"),
			req:      RecommendProductsRequest{Limit: 5},
			expected: []string{"p1", "p2", "p3"},
		},
		{
			name: "fallback_prefers_featured_and_skips_reference",
			products: append(activeProducts("p1", "p2", "p4"),
				domain.Product{ID: "p3", IsActive: true, IsFeatured: true},
				domain.Product{ID: "p5", IsActive: false},
			),
			req:      RecommendProductsRequest{ProductID: "p2", Limit: 3},
			expected: []string{"p3", "p1", "p4"},
		},
		{
			name:     "ranked_order_preserved_and_inactive_dropped",
			products: append(activeProducts("p1", "p2"), domain.Product{ID: "p3", IsActive: false}),
			strategies: []Strategy{
				stubStrategy{name: domain.StrategyTrending, result: StrategyResult{
					Scores: map[string]float64{"p1": 0.2, "p2": 0.9, "p3": 1},
				}},
			},
			req:      RecommendProductsRequest{Limit: 5},
			expected: []string{"p2", "p1"},
		},
		{
			name:     "short_result_padded_when_enabled",
			products: activeProducts("p1", "p2", "p3", "ref"),
			strategies: []Strategy{
				stubStrategy{name: domain.StrategyTrending, result: StrategyResult{
					Scores: map[string]float64{"p3": 1},
				}},
			},
			req:        RecommendProductsRequest{ProductID: "ref", Limit: 3},
			padToLimit: true,
			expected:   []string{"p3", "p1", "p2"},
		},
		{
			name:     "short_result_not_padded_when_disabled",
			products: activeProducts("p1", "p2", "p3"),
			strategies: []Strategy{
				stubStrategy{name: domain.StrategyTrending, result: StrategyResult{
					Scores: map[string]float64{"p3": 1},
				}},
			},
			req:      RecommendProductsRequest{Limit: 3},
			expected: []string{"p3"},
		},
		{
			name:     "limit_capped",
			products: activeProducts("p1", "p2", "p3"),
			req:      RecommendProductsRequest{Limit: 500},
			maxLimit: 2,
			expected: []string{"p1", "p2"},
		},
		{
			name:     "all_ranked_inactive_falls_back_to_catalog",
			products: append(activeProducts("a", "b"), domain.Product{ID: "gone", IsActive: false}),
			strategies: []Strategy{
				stubStrategy{name: domain.StrategyTrending, result: StrategyResult{
					Scores: map[string]float64{"gone": 1},
				}},
			},
			req:      RecommendProductsRequest{Limit: 2},
			expected: []string{"a", "b"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := memory.New()
			store.PutProducts(tc.products...)

			config := testRecommendProductsConfig()
			config.PadToLimit = tc.padToLimit
			if tc.maxLimit > 0 {
				config.MaxLimit = tc.maxLimit
			}

			cmd, err := NewRecommendProducts(tc.strategies, store, store, config)
			require.NoError(t, err)

			products, err := cmd.Execute(testContext(), tc.req)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, productIDs(products))
		})
	}
}

func TestRecommendProducts_Execute_FallbackError(t *testing.T) {
	catalog := mocks.NewMockActiveProductLister(t)
	catalog.EXPECT().
		ListActiveProducts(mock.Anything, mock.Anything).
		Return(nil, errors.New("database error"))

	cmd, err := NewRecommendProducts(nil, mocks.NewMockProductFetcher(t), catalog, testRecommendProductsConfig())
	require.NoError(t, err)

	_, err = cmd.Execute(testContext(), RecommendProductsRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing fallback products")
}

func TestRecommendProducts_Execute_ResolveError(t *testing.T) {
	fetcher := mocks.NewMockProductFetcher(t)
	fetcher.EXPECT().
		FetchProductsByID(mock.Anything, []string{"p1"}).
		Return(nil, errors.New("database error"))

	strategies := []Strategy{
		stubStrategy{name: domain.StrategyFeatured, result: StrategyResult{Scores: map[string]float64{"p1": 1}}},
	}
	cmd, err := NewRecommendProducts(strategies, fetcher, mocks.NewMockActiveProductLister(t), testRecommendProductsConfig())
	require.NoError(t, err)

	_, err = cmd.Execute(testContext(), RecommendProductsRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching ranked products")
}

// newTestEngine wires every real strategy against a memory store with a fixed clock.
func newTestEngine(t *testing.T, store *memory.Store, now time.Time) *RecommendProducts {
	t.Helper()
	weights := domain.DefaultBehaviorWeights()
	clock := func() time.Time { return now }

	userCF := NewUserCollaborativeFilter(store, weights, testUserCollaborativeFilterConfig())
	userCF.Now = clock
	trending := NewTrendingScorer(store, weights, testTrendingScorerConfig())
	trending.Now = clock

	cmd, err := NewRecommendProducts(
		[]Strategy{
			userCF,
			NewItemCollaborativeFilter(store, testItemCollaborativeFilterConfig()),
			NewContentFilter(store, store, testContentFilterConfig()),
			trending,
			NewFeaturedBoost(store, FeaturedBoostConfig{Limit: 50}),
		},
		store, store,
		testRecommendProductsConfig(),
	)
	require.NoError(t, err)
	return cmd
}

func TestRecommendProducts_Execute_ColdStartUser(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	ctx := testContext()

	store := memory.New()
	store.PutProducts(activeProducts("p1", "p2", "p7")...)
	require.NoError(t, store.RecordBehavior(ctx, domain.BehaviorEvent{
		ID: "e1", UserID: "u", ProductID: "p7", BehaviorType: domain.BehaviorTypePurchase, CreatedAt: now,
	}))

	cmd := newTestEngine(t, store, now)

	userCF := cmd.Strategies[0]
	require.Equal(t, domain.StrategyUserCollaborative, userCF.Name())
	res, err := userCF.Score(ctx, StrategyRequest{UserID: "u"})
	require.NoError(t, err)
	assert.Empty(t, res.Scores)

	products, err := cmd.Execute(ctx, RecommendProductsRequest{UserID: "u", Limit: 5})

	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, productIDs(products))
}

func TestRecommendProducts_Execute_BlendsStrategies(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	ctx := testContext()

	store := memory.New()
	store.PutProducts(
		domain.Product{ID: "ref", Category: "nhan", Material: "gold_18k", Price: 12_000_000, IsActive: true},
		domain.Product{ID: "same_category", Category: "nhan", Material: "silver", Price: 3_000_000, IsActive: true},
		domain.Product{ID: "bought_together", Category: "lac", Material: "pearl", Price: 80_000_000, IsActive: true},
		domain.Product{ID: "unrelated", Category: "vong", Material: "jade", Price: 90_000_000, IsActive: true},
	)
	require.NoError(t, store.ReplaceSimilarityEdges(ctx, domain.RecommendationTypeCollaborative, []domain.SimilarityEdge{
		{ProductID: "ref", RecommendedProductID: "bought_together", Score: 1},
		{ProductID: "bought_together", RecommendedProductID: "ref", Score: 1},
	}))

	cmd := newTestEngine(t, store, now)

	products, err := cmd.Execute(ctx, RecommendProductsRequest{ProductID: "ref", Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, []string{"bought_together", "same_category"}, productIDs(products))
}

// failingPeerStore fails every peer lookup, which user-based filtering issues after reading history.
type failingPeerStore struct {
	*memory.Store
}

func (s failingPeerStore) ListBehaviors(ctx context.Context, filter domain.BehaviorFilter) ([]domain.BehaviorEvent, error) {
	if filter.ExcludeUserID != "" {
		return nil, errors.New("database error")
	}
	return s.Store.ListBehaviors(ctx, filter)
}

func TestRecommendProducts_Rank_FailedUserFilterStillExcludesOwnProducts(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	ctx := testContext()

	store := memory.New()
	store.PutProducts(activeProducts("owned", "other")...)
	require.NoError(t, store.RecordBehavior(ctx, domain.BehaviorEvent{
		ID: "e1", UserID: "u1", ProductID: "owned", BehaviorType: domain.BehaviorTypePurchase, CreatedAt: now,
	}))
	behaviors := failingPeerStore{Store: store}
	clock := func() time.Time { return now }

	userCF := NewUserCollaborativeFilter(behaviors, domain.DefaultBehaviorWeights(), testUserCollaborativeFilterConfig())
	userCF.Now = clock
	trending := NewTrendingScorer(behaviors, domain.DefaultBehaviorWeights(), testTrendingScorerConfig())
	trending.Now = clock

	cmd, err := NewRecommendProducts([]Strategy{userCF, trending}, store, store, testRecommendProductsConfig())
	require.NoError(t, err)

	ranked, exclude := cmd.Rank(ctx, RecommendProductsRequest{UserID: "u1"}, 10)

	assert.Empty(t, ranked)
	assert.Contains(t, exclude, "owned")
}
