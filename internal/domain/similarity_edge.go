package domain

// RecommendationType identifies which offline computation produced a similarity edge.
type RecommendationType string

const (
	RecommendationTypeCollaborative RecommendationType = "collaborative"
	RecommendationTypeContent       RecommendationType = "content"
)

// SimilarityEdge is a directed entry of the precomputed product-to-product table.
type SimilarityEdge struct {
	ProductID            string             `json:"product_id"`
	RecommendedProductID string             `json:"recommended_product_id"`
	Score                float64            `json:"score"`
	RecommendationType   RecommendationType `json:"recommendation_type"`
}

// EdgeDirection selects which column of the similarity table is matched against a product.
type EdgeDirection int

const (
	// EdgeDirectionForward matches edges whose ProductID is the reference product.
	EdgeDirectionForward EdgeDirection = iota
	// EdgeDirectionBackward matches edges whose RecommendedProductID is the reference product.
	EdgeDirectionBackward
)

// SimilarityEdgeFilter selects edges touching a product, ordered by score descending.
type SimilarityEdgeFilter struct {
	ProductID string
	Direction EdgeDirection
	Limit     int
}
