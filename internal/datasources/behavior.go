package datasources

import (
	"context"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
)

// BehaviorLister queries the behavior event log.
type BehaviorLister interface {
	ListBehaviors(ctx context.Context, filter domain.BehaviorFilter) ([]domain.BehaviorEvent, error)
}

// BehaviorRecorder appends an event to the behavior log.
type BehaviorRecorder interface {
	RecordBehavior(ctx context.Context, event domain.BehaviorEvent) error
}

// BehaviorRepository combines all behavior log operations.
type BehaviorRepository interface {
	BehaviorLister
	BehaviorRecorder
}
