package command

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/datasources"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// strategyPriority is the order strategies are fused in, most personalized first.
// Configured weights must not increase along it.
var strategyPriority = []domain.Strategy{
	domain.StrategyUserCollaborative,
	domain.StrategyItemCollaborative,
	domain.StrategyContent,
	domain.StrategyTrending,
	domain.StrategyFeatured,
}

const weightSumTolerance = 1e-9

// RecommendProductsRequest is the request for the RecommendProducts command.
// Both IDs are optional.
type RecommendProductsRequest struct {
	UserID    string
	ProductID string
	Limit     int
}

// RecommendProductsConfig holds configuration for score fusion and ranking.
type RecommendProductsConfig struct {
	// Weights maps each strategy to its share of the fused score. Weights must sum to at most 1.
	Weights map[domain.Strategy]float64

	// StrategyTimeout bounds each strategy run. Zero disables the timeout.
	StrategyTimeout time.Duration

	DefaultLimit int
	MaxLimit     int

	// PadToLimit tops short results up with any active products other than the reference product.
	PadToLimit bool
}

// ScoredProduct is a fused candidate with the strategies that contributed to its score.
type ScoredProduct struct {
	ProductID  string
	Score      float64
	Strategies []domain.Strategy
}

// RecommendProducts blends every strategy's scores into one ranked product list.
type RecommendProducts struct {
	Strategies     []Strategy
	ProductFetcher datasources.ProductFetcher
	ActiveProducts datasources.ActiveProductLister
	Config         RecommendProductsConfig
}

// NewRecommendProducts creates a properly initialized RecommendProducts command.
// Strategies are reordered by priority, and the configured weights are validated.
func NewRecommendProducts(
	strategies []Strategy,
	productFetcher datasources.ProductFetcher,
	activeProducts datasources.ActiveProductLister,
	config RecommendProductsConfig,
) (*RecommendProducts, error) {
	if err := validateStrategyWeights(strategies, config.Weights); err != nil {
		return nil, err
	}

	ordered := make([]Strategy, len(strategies))
	copy(ordered, strategies)
	sort.SliceStable(ordered, func(i, j int) bool {
		return priorityOf(ordered[i].Name()) < priorityOf(ordered[j].Name())
	})

	return &RecommendProducts{
		Strategies:     ordered,
		ProductFetcher: productFetcher,
		ActiveProducts: activeProducts,
		Config:         config,
	}, nil
}

func priorityOf(strategy domain.Strategy) int {
	for i, s := range strategyPriority {
		if s == strategy {
			return i
		}
	}
	return len(strategyPriority)
}

func validateStrategyWeights(strategies []Strategy, weights map[domain.Strategy]float64) error {
	var sum float64
	for _, s := range strategies {
		w, ok := weights[s.Name()]
		if !ok {
			return fmt.Errorf("no weight configured for strategy %q", s.Name())
		}
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("weight for strategy %q must not be negative", s.Name())
		}
		sum += w
	}
	if sum > 1+weightSumTolerance {
		return fmt.Errorf("strategy weights sum to %.4f, must not exceed 1", sum)
	}

	previous := math.Inf(1)
	for _, name := range strategyPriority {
		w, ok := weights[name]
		if !ok {
			continue
		}
		if w > previous {
			return fmt.Errorf("weight for strategy %q exceeds the weight of a higher priority strategy", name)
		}
		previous = w
	}

	return nil
}

// Execute returns up to the requested number of active products, best first. It only fails
// when the fallback listing or the final product lookup fails.
func (c *RecommendProducts) Execute(ctx context.Context, req RecommendProductsRequest) ([]domain.Product, error) {
	logger := domain.LoggerFromContext(ctx)
	limit := c.limit(req.Limit)

	ranked, exclude := c.Rank(ctx, req, limit)

	var products []domain.Product
	if len(ranked) > 0 {
		ids := make([]string, 0, len(ranked))
		for _, sp := range ranked {
			ids = append(ids, sp.ProductID)
		}

		resolved, err := resolveRanked(ctx, c.ProductFetcher, ids)
		if err != nil {
			return nil, fmt.Errorf("fetching ranked products: %w", err)
		}
		products = resolved
	}

	// Ranked products may all have been deactivated since they were scored.
	if len(products) == 0 {
		metrics.RecordFallback("active_catalog")
		logger.DebugContext(ctx, "no resolvable candidates, falling back to active catalog",
			"user_id", req.UserID, "product_id", req.ProductID, "ranked_count", len(ranked))

		fallback, err := c.ActiveProducts.ListActiveProducts(ctx, domain.ProductListOptions{
			ExcludeIDs: sortedKeys(exclude),
			Limit:      limit,
		})
		if err != nil {
			return nil, fmt.Errorf("listing fallback products: %w", err)
		}
		products = fallback
	}

	if c.Config.PadToLimit && len(products) < limit {
		products = c.pad(ctx, req.ProductID, products, limit)
	}

	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// Rank runs every strategy concurrently and fuses their scores. It returns the ranked
// candidates, truncated to limit, along with the exclusion set used to filter them.
func (c *RecommendProducts) Rank(
	ctx context.Context,
	req RecommendProductsRequest,
	limit int,
) ([]ScoredProduct, map[string]struct{}) {
	exclude := make(map[string]struct{})
	if req.ProductID != "" {
		exclude[req.ProductID] = struct{}{}
	}

	results := c.runStrategies(ctx, StrategyRequest{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Exclude:   exclude,
	})

	// Exclusions learned by strategies only apply once every strategy has finished.
	for _, res := range results {
		for _, id := range res.Exclude {
			exclude[id] = struct{}{}
		}
	}

	return fuse(c.Strategies, results, c.Config.Weights, exclude, limit), exclude
}

// runStrategies fans out to every strategy and waits for all of them. A failing strategy
// is logged and contributes no scores, only whatever exclusions it reported.
func (c *RecommendProducts) runStrategies(ctx context.Context, req StrategyRequest) []StrategyResult {
	logger := domain.LoggerFromContext(ctx)
	results := make([]StrategyResult, len(c.Strategies))

	var g errgroup.Group
	for i, strategy := range c.Strategies {
		g.Go(func() error {
			strategyCtx := ctx
			if c.Config.StrategyTimeout > 0 {
				var cancel context.CancelFunc
				strategyCtx, cancel = context.WithTimeout(ctx, c.Config.StrategyTimeout)
				defer cancel()
			}

			start := time.Now()
			res, err := strategy.Score(strategyCtx, req)
			metrics.RecordStrategyRun(string(strategy.Name()), time.Since(start), err)
			if err != nil {
				logger.WarnContext(ctx, "recommendation strategy failed",
					"strategy", strategy.Name(),
					"timed_out", errors.Is(err, context.DeadlineExceeded),
					"error", err)
				// Exclusions learned before the failure still apply; the scores do not.
				results[i] = StrategyResult{Exclude: res.Exclude}
				return nil
			}

			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// fuse merges strategy scores by weight, drops excluded products, and ranks the rest
// by score descending with ties broken by product ID.
func fuse(
	strategies []Strategy,
	results []StrategyResult,
	weights map[domain.Strategy]float64,
	exclude map[string]struct{},
	limit int,
) []ScoredProduct {
	accumulated := make(map[string]*ScoredProduct)
	for i, strategy := range strategies {
		weight := weights[strategy.Name()]
		for _, id := range sortedKeys(results[i].Scores) {
			sp, ok := accumulated[id]
			if !ok {
				sp = &ScoredProduct{ProductID: id}
				accumulated[id] = sp
			}
			sp.Score += results[i].Scores[id] * weight
			sp.Strategies = append(sp.Strategies, strategy.Name())
		}
	}

	ranked := make([]ScoredProduct, 0, len(accumulated))
	for id, sp := range accumulated {
		if _, excluded := exclude[id]; excluded {
			continue
		}
		ranked = append(ranked, *sp)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ProductID < ranked[j].ProductID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// pad tops products up with any active products, excluding the reference product and
// those already chosen. Failures are logged and leave products as they are.
func (c *RecommendProducts) pad(
	ctx context.Context,
	referenceID string,
	products []domain.Product,
	limit int,
) []domain.Product {
	logger := domain.LoggerFromContext(ctx)

	excludeIDs := make([]string, 0, len(products)+1)
	if referenceID != "" {
		excludeIDs = append(excludeIDs, referenceID)
	}
	for _, p := range products {
		excludeIDs = append(excludeIDs, p.ID)
	}

	extra, err := c.ActiveProducts.ListActiveProducts(ctx, domain.ProductListOptions{
		ExcludeIDs: excludeIDs,
		Limit:      limit - len(products),
	})
	if err != nil {
		logger.WarnContext(ctx, "failed to pad recommendations", "error", err)
		return products
	}
	if len(extra) > 0 {
		metrics.RecordFallback("pad")
	}

	return append(products, extra...)
}

func (c *RecommendProducts) limit(requested int) int {
	if requested <= 0 {
		return c.Config.DefaultLimit
	}
	if c.Config.MaxLimit > 0 && requested > c.Config.MaxLimit {
		return c.Config.MaxLimit
	}
	return requested
}
