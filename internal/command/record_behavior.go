package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/datasources"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/metrics"
)

// RecordBehaviorRequest is the request for the RecordBehavior command.
// UserID is empty for anonymous shoppers.
type RecordBehaviorRequest struct {
	UserID       string
	ProductID    string
	BehaviorType domain.BehaviorType
}

// RecordBehavior appends a shopper interaction to the behavior log.
// Unknown behavior types are stored as given and weigh 1 when scored.
type RecordBehavior struct {
	Products datasources.ProductFetcher
	Recorder datasources.BehaviorRecorder
	Now      func() time.Time
}

// NewRecordBehavior creates a properly initialized RecordBehavior command.
func NewRecordBehavior(products datasources.ProductFetcher, recorder datasources.BehaviorRecorder) *RecordBehavior {
	return &RecordBehavior{
		Products: products,
		Recorder: recorder,
		Now:      time.Now,
	}
}

// Execute records the event. It returns domain.ErrInvalidBehaviorType for types the log cannot
// store, and domain.ErrNotFound if the product does not exist or is inactive.
func (c *RecordBehavior) Execute(ctx context.Context, req RecordBehaviorRequest) (domain.BehaviorEvent, error) {
	if !req.BehaviorType.Valid() {
		return domain.BehaviorEvent{}, fmt.Errorf("behavior type %q: %w", req.BehaviorType, domain.ErrInvalidBehaviorType)
	}

	products, err := c.Products.FetchProductsByID(ctx, []string{req.ProductID})
	if err != nil {
		return domain.BehaviorEvent{}, fmt.Errorf("fetching product: %w", err)
	}

	active := false
	for _, p := range products {
		if p.ID == req.ProductID && p.IsActive {
			active = true
			break
		}
	}
	if !active {
		return domain.BehaviorEvent{}, fmt.Errorf("product %q: %w", req.ProductID, domain.ErrNotFound)
	}

	event := domain.BehaviorEvent{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		ProductID:    req.ProductID,
		BehaviorType: req.BehaviorType,
		CreatedAt:    c.Now().UTC(),
	}
	if err := c.Recorder.RecordBehavior(ctx, event); err != nil {
		return domain.BehaviorEvent{}, fmt.Errorf("recording behavior: %w", err)
	}
	metrics.RecordBehavior(string(req.BehaviorType))

	return event, nil
}
