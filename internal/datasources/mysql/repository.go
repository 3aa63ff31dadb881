package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/datasources"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

var _ datasources.DatasetRepository = (*Repository)(nil)

// edgeInsertBatchSize bounds the number of rows per multi-row INSERT.
const edgeInsertBatchSize = 100

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ============================================
// Behavior Log
// ============================================

func (r *Repository) RecordBehavior(ctx context.Context, event domain.BehaviorEvent) error {
	ib := sqlbuilder.InsertInto("user_behaviors")
	ib.Cols("id", "user_id", "product_id", "behavior_type", "created_at")
	ib.Values(
		event.ID,
		sql.NullString{String: event.UserID, Valid: event.UserID != ""},
		event.ProductID,
		string(event.BehaviorType),
		event.CreatedAt,
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting behavior event: %w", err)
	}
	return nil
}

func (r *Repository) ListBehaviors(
	ctx context.Context,
	filter domain.BehaviorFilter,
) ([]domain.BehaviorEvent, error) {
	sb := sqlbuilder.Select("id", "user_id", "product_id", "behavior_type", "created_at")
	sb.From("user_behaviors")

	conds := buildBehaviorConditions(sb, filter)
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	sb.OrderBy("created_at DESC", "id")
	if filter.Limit > 0 {
		sb.Limit(filter.Limit)
	}

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running behaviors query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []domain.BehaviorEvent
	for rows.Next() {
		var (
			event        domain.BehaviorEvent
			userID       sql.NullString
			behaviorType string
		)
		if err := rows.Scan(&event.ID, &userID, &event.ProductID, &behaviorType, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning behaviors: %w", err)
		}
		event.UserID = userID.String
		event.BehaviorType = domain.BehaviorType(behaviorType)
		events = append(events, event)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("closing rows iterator: %w", err)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return events, nil
}

func buildBehaviorConditions(sb *sqlbuilder.SelectBuilder, filter domain.BehaviorFilter) []string {
	var conds []string

	if len(filter.UserIDs) > 0 {
		conds = append(conds, sb.In("user_id", stringsToArgs(filter.UserIDs)...))
	}

	if filter.ExcludeUserID != "" {
		// NULL user ids must survive the exclusion.
		conds = append(conds, sb.Or(
			sb.IsNull("user_id"),
			sb.NotEqual("user_id", filter.ExcludeUserID),
		))
	}

	if len(filter.ProductIDs) > 0 {
		conds = append(conds, sb.In("product_id", stringsToArgs(filter.ProductIDs)...))
	}

	if !filter.Since.IsZero() {
		conds = append(conds, sb.GreaterEqualThan("created_at", filter.Since))
	}

	if filter.IdentifiedOnly {
		conds = append(conds, sb.IsNotNull("user_id"))
	}

	return conds
}

// ============================================
// Catalog
// ============================================

const productColumns = "id, name, slug, category, material, price, is_featured, is_active, images, created_at"

func (r *Repository) FetchProductsByID(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sb := sqlbuilder.Select(productColumns)
	sb.From("products")
	sb.Where(sb.In("id", stringsToArgs(ids)...))

	query, args := sb.Build()
	products, err := r.queryProducts(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("fetching products by ID: %w", err)
	}
	return products, nil
}

func (r *Repository) ListActiveProducts(
	ctx context.Context,
	options domain.ProductListOptions,
) ([]domain.Product, error) {
	sb := sqlbuilder.Select(productColumns)
	sb.From("products")

	conds := []string{sb.Equal("is_active", true)}
	if options.OnlyFeatured {
		conds = append(conds, sb.Equal("is_featured", true))
	}
	if len(options.ExcludeIDs) > 0 {
		conds = append(conds, sb.NotIn("id", stringsToArgs(options.ExcludeIDs)...))
	}
	sb.Where(conds...)

	sb.OrderBy("is_featured DESC", "id")
	if options.Limit > 0 {
		sb.Limit(options.Limit)
	}

	query, args := sb.Build()
	products, err := r.queryProducts(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("listing active products: %w", err)
	}
	return products, nil
}

func (r *Repository) queryProducts(ctx context.Context, query string, args []interface{}) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running products query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var products []domain.Product
	for rows.Next() {
		var (
			p      domain.Product
			images []byte
		)
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Slug,
			&p.Category,
			&p.Material,
			&p.Price,
			&p.IsFeatured,
			&p.IsActive,
			&images,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning products: %w", err)
		}
		if len(images) > 0 {
			if err := json.Unmarshal(images, &p.Images); err != nil {
				return nil, fmt.Errorf("decoding images for product %s: %w", p.ID, err)
			}
		}
		products = append(products, p)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("closing rows iterator: %w", err)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return products, nil
}

// ============================================
// Similarity Table
// ============================================

func (r *Repository) ListSimilarityEdges(
	ctx context.Context,
	filter domain.SimilarityEdgeFilter,
) ([]domain.SimilarityEdge, error) {
	matchColumn, otherColumn := "product_id", "recommended_product_id"
	if filter.Direction == domain.EdgeDirectionBackward {
		matchColumn, otherColumn = otherColumn, matchColumn
	}

	sb := sqlbuilder.Select("product_id", "recommended_product_id", "score", "recommendation_type")
	sb.From("product_recommendations")
	sb.Where(sb.Equal(matchColumn, filter.ProductID))
	sb.OrderBy("score DESC", otherColumn)
	if filter.Limit > 0 {
		sb.Limit(filter.Limit)
	}

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running similarity edges query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var edges []domain.SimilarityEdge
	for rows.Next() {
		var (
			edge    domain.SimilarityEdge
			recType string
		)
		if err := rows.Scan(&edge.ProductID, &edge.RecommendedProductID, &edge.Score, &recType); err != nil {
			return nil, fmt.Errorf("scanning similarity edges: %w", err)
		}
		edge.RecommendationType = domain.RecommendationType(recType)
		edges = append(edges, edge)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("closing rows iterator: %w", err)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return edges, nil
}

// ReplaceSimilarityEdges deletes every edge of the type and inserts the new set in one
// transaction, so readers see either the old or the new table.
func (r *Repository) ReplaceSimilarityEdges(
	ctx context.Context,
	recommendationType domain.RecommendationType,
	edges []domain.SimilarityEdge,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	del := sqlbuilder.DeleteFrom("product_recommendations")
	del.Where(del.Equal("recommendation_type", string(recommendationType)))
	query, args := del.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting %s edges: %w", recommendationType, err)
	}

	for start := 0; start < len(edges); start += edgeInsertBatchSize {
		end := min(start+edgeInsertBatchSize, len(edges))

		ib := sqlbuilder.InsertInto("product_recommendations")
		ib.Cols("product_id", "recommended_product_id", "score", "recommendation_type")
		for _, e := range edges[start:end] {
			ib.Values(e.ProductID, e.RecommendedProductID, e.Score, string(recommendationType))
		}

		query, args := ib.Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting %s edges at offset %d: %w", recommendationType, start, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func stringsToArgs(values []string) []interface{} {
	args := make([]interface{}, 0, len(values))
	for _, v := range values {
		args = append(args, v)
	}
	return args
}
