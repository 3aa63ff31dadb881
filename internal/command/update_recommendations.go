package command

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/datasources"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/metrics"
)

// UpdateRecommendationsRequest is the request for the UpdateRecommendations command.
// This command takes no parameters beyond context.
type UpdateRecommendationsRequest struct{}

// UpdateRecommendationsConfig holds configuration for offline similarity recomputation.
type UpdateRecommendationsConfig struct {
	// Window is how far back behavior events are considered.
	Window time.Duration

	// BehaviorLimit caps the identified behavior events read per run.
	BehaviorLimit int

	// CatalogLimit caps the active products compared for content edges.
	CatalogLimit int

	DecayRate float64

	// CollaborativeThreshold is the cosine similarity a product pair must exceed to get an edge.
	CollaborativeThreshold float64

	// ContentThreshold is the content score a product pair must exceed to get an edge.
	ContentThreshold float64

	ContentWeights domain.ContentWeights
}

// UpdateRecommendationsResult summarises one recomputation run.
type UpdateRecommendationsResult struct {
	RunID              string `json:"run_id"`
	CollaborativeEdges int    `json:"collaborative_edges"`
	ContentEdges       int    `json:"content_edges"`
}

// UpdateRecommendations regenerates the product similarity table from the behavior log
// and catalog attributes. Runs are serialised; every run replaces each edge type wholesale.
type UpdateRecommendations struct {
	Behaviors      datasources.BehaviorLister
	ActiveProducts datasources.ActiveProductLister
	EdgeReplacer   datasources.SimilarityEdgeReplacer
	Weights        domain.BehaviorWeights
	Config         UpdateRecommendationsConfig
	Now            func() time.Time

	mu sync.Mutex
}

// NewUpdateRecommendations creates a properly initialized UpdateRecommendations command.
func NewUpdateRecommendations(
	behaviors datasources.BehaviorLister,
	activeProducts datasources.ActiveProductLister,
	edgeReplacer datasources.SimilarityEdgeReplacer,
	weights domain.BehaviorWeights,
	config UpdateRecommendationsConfig,
) *UpdateRecommendations {
	return &UpdateRecommendations{
		Behaviors:      behaviors,
		ActiveProducts: activeProducts,
		EdgeReplacer:   edgeReplacer,
		Weights:        weights,
		Config:         config,
		Now:            time.Now,
	}
}

// Execute recomputes both edge types. Nothing is replaced if reading the inputs fails.
func (c *UpdateRecommendations) Execute(
	ctx context.Context, _ UpdateRecommendationsRequest,
) (UpdateRecommendationsResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	result, err := c.run(ctx)
	metrics.RecordRecompute(time.Since(start), map[string]int{
		string(domain.RecommendationTypeCollaborative): result.CollaborativeEdges,
		string(domain.RecommendationTypeContent):       result.ContentEdges,
	}, err)

	return result, err
}

func (c *UpdateRecommendations) run(ctx context.Context) (UpdateRecommendationsResult, error) {
	logger := domain.LoggerFromContext(ctx)
	result := UpdateRecommendationsResult{RunID: uuid.NewString()}
	logger = logger.With("run_id", result.RunID)

	now := c.Now()

	behaviors, err := c.Behaviors.ListBehaviors(ctx, domain.BehaviorFilter{
		Since:          now.Add(-c.Config.Window),
		IdentifiedOnly: true,
		Limit:          c.Config.BehaviorLimit,
	})
	if err != nil {
		return result, fmt.Errorf("listing behaviors: %w", err)
	}

	products, err := c.ActiveProducts.ListActiveProducts(ctx, domain.ProductListOptions{
		Limit: c.Config.CatalogLimit,
	})
	if err != nil {
		return result, fmt.Errorf("listing active products: %w", err)
	}

	logger.InfoContext(ctx, "starting similarity recomputation",
		"behavior_count", len(behaviors), "product_count", len(products))

	collaborative, err := c.collaborativeEdges(ctx, behaviors, now)
	if err != nil {
		return result, fmt.Errorf("computing collaborative edges: %w", err)
	}

	content, err := c.contentEdges(ctx, products)
	if err != nil {
		return result, fmt.Errorf("computing content edges: %w", err)
	}

	if err := c.EdgeReplacer.ReplaceSimilarityEdges(
		ctx, domain.RecommendationTypeCollaborative, collaborative,
	); err != nil {
		return result, fmt.Errorf("replacing collaborative edges: %w", err)
	}
	result.CollaborativeEdges = len(collaborative)

	if err := c.EdgeReplacer.ReplaceSimilarityEdges(ctx, domain.RecommendationTypeContent, content); err != nil {
		return result, fmt.Errorf("replacing content edges: %w", err)
	}
	result.ContentEdges = len(content)

	logger.InfoContext(ctx, "similarity recomputation complete",
		"collaborative_edges", result.CollaborativeEdges, "content_edges", result.ContentEdges)

	return result, nil
}

// collaborativeEdges compares the user-weight vectors of every pair of products sharing
// at least one user. Pairs without a shared user have zero cosine similarity and are skipped.
func (c *UpdateRecommendations) collaborativeEdges(
	ctx context.Context,
	behaviors []domain.BehaviorEvent,
	now time.Time,
) ([]domain.SimilarityEdge, error) {
	productUsers := make(map[string]map[string]float64)
	userProducts := make(map[string]map[string]struct{})
	for _, e := range behaviors {
		if e.UserID == "" {
			continue
		}

		users, ok := productUsers[e.ProductID]
		if !ok {
			users = make(map[string]float64)
			productUsers[e.ProductID] = users
		}
		users[e.UserID] += c.Weights.Weight(e.BehaviorType) * domain.Decay(e.CreatedAt, now, c.Config.DecayRate)

		if _, ok := userProducts[e.UserID]; !ok {
			userProducts[e.UserID] = make(map[string]struct{})
		}
		userProducts[e.UserID][e.ProductID] = struct{}{}
	}

	var edges []domain.SimilarityEdge
	for _, a := range sortedKeys(productUsers) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		partners := make(map[string]struct{})
		for userID := range productUsers[a] {
			for b := range userProducts[userID] {
				if b > a {
					partners[b] = struct{}{}
				}
			}
		}

		for _, b := range sortedKeys(partners) {
			similarity := domain.CosineSimilarity(productUsers[a], productUsers[b])
			if similarity > c.Config.CollaborativeThreshold {
				edges = appendBothDirections(edges, a, b, similarity, domain.RecommendationTypeCollaborative)
			}
		}
	}

	sortEdges(edges)
	return edges, nil
}

// contentEdges compares the attributes of every pair of active products.
func (c *UpdateRecommendations) contentEdges(
	ctx context.Context,
	products []domain.Product,
) ([]domain.SimilarityEdge, error) {
	sorted := make([]domain.Product, len(products))
	copy(sorted, products)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var edges []domain.SimilarityEdge
	for i := range sorted {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for j := i + 1; j < len(sorted); j++ {
			if sorted[i].ID == sorted[j].ID {
				continue
			}
			score := domain.ContentScore(sorted[i], sorted[j], c.Config.ContentWeights)
			if score > c.Config.ContentThreshold {
				edges = appendBothDirections(edges, sorted[i].ID, sorted[j].ID, score, domain.RecommendationTypeContent)
			}
		}
	}

	sortEdges(edges)
	return edges, nil
}

func appendBothDirections(
	edges []domain.SimilarityEdge,
	a, b string,
	score float64,
	recType domain.RecommendationType,
) []domain.SimilarityEdge {
	return append(edges,
		domain.SimilarityEdge{ProductID: a, RecommendedProductID: b, Score: score, RecommendationType: recType},
		domain.SimilarityEdge{ProductID: b, RecommendedProductID: a, Score: score, RecommendationType: recType},
	)
}

func sortEdges(edges []domain.SimilarityEdge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].ProductID != edges[j].ProductID {
			return edges[i].ProductID < edges[j].ProductID
		}
		return edges[i].RecommendedProductID < edges[j].RecommendedProductID
	})
}
