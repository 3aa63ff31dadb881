package domain

import "time"

// BehaviorType is the kind of interaction a shopper had with a product.
type BehaviorType string

const (
	BehaviorTypeView      BehaviorType = "view"
	BehaviorTypeAddToCart BehaviorType = "add_to_cart"
	BehaviorTypeWishlist  BehaviorType = "wishlist"
	BehaviorTypePurchase  BehaviorType = "purchase"
)

// BehaviorEvent is a single entry of the append-only behavior log.
// UserID is empty for anonymous shoppers.
type BehaviorEvent struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id,omitempty"`
	ProductID    string       `json:"product_id"`
	BehaviorType BehaviorType `json:"behavior_type"`
	CreatedAt    time.Time    `json:"created_at"`
}

// MaxBehaviorTypeLength is the longest behavior type the behavior log stores.
// Unknown types within it are accepted.
const MaxBehaviorTypeLength = 32

// Valid reports whether the type can be stored in the behavior log.
func (t BehaviorType) Valid() bool {
	return t != "" && len(t) <= MaxBehaviorTypeLength
}

// BehaviorWeights maps behavior types to how strongly they signal interest.
type BehaviorWeights map[BehaviorType]float64

// DefaultBehaviorWeights returns the storefront's tuned interest weights.
func DefaultBehaviorWeights() BehaviorWeights {
	return BehaviorWeights{
		BehaviorTypeView:      1,
		BehaviorTypeWishlist:  3,
		BehaviorTypeAddToCart: 4,
		BehaviorTypePurchase:  6,
	}
}

// Weight returns the weight of a behavior type. Unknown types weigh 1.
func (w BehaviorWeights) Weight(behaviorType BehaviorType) float64 {
	if weight, ok := w[behaviorType]; ok {
		return weight
	}
	return 1
}

// BehaviorFilter narrows a behavior log query. Zero-valued fields do not filter.
// Results are ordered newest first and never exceed Limit rows.
type BehaviorFilter struct {
	UserIDs       []string
	ExcludeUserID string
	ProductIDs    []string
	Since         time.Time

	// IdentifiedOnly drops anonymous events.
	IdentifiedOnly bool

	Limit int
}
