package ports

import (
	"context"

	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"
)

// CustomOrderRepository defines the persistence contract for custom order
// proposals. Like OrderRepository, Update is guarded by the version the
// aggregate was loaded with and reports lost races as
// errs.ConcurrencyConflictError.
type CustomOrderRepository interface {
	// Add persists a new proposal to storage.
	Add(ctx context.Context, aggregate *customorder.CustomOrder) error

	// Update persists the resolution of an existing proposal.
	Update(ctx context.Context, aggregate *customorder.CustomOrder) error

	// Get retrieves a proposal by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customorder.CustomOrder, error)
}
