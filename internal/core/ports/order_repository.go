package ports

import (
	"context"
	"time"

	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders together
// with their lines.
type OrderRepository interface {
	// Add persists a new order aggregate, including its lines.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate and its lines.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// rehydrated with its lines and its member.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUnpaidBefore retrieves orders still in Ordered status that were
	// created before the cutoff. Used by the unpaid-order cleanup sweep.
	GetAllUnpaidBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
