// Package ports defines repository and outbound service interfaces for the
// marketplace domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update performs an optimistic-concurrency check: the row is only written
// when its stored version matches the version the aggregate was loaded with.
// A lost race surfaces as errs.ConcurrencyConflictError.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, guarded by the
	// version the aggregate was loaded with.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllOverdue retrieves non-terminal orders whose delivery due date has
	// passed and no delivery has ever been submitted. Used by the overdue
	// notice job.
	GetAllOverdue(ctx context.Context) ([]*order.Order, error)
}
