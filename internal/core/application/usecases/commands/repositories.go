// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomOrderRepoFactory provides access to custom order repository within a transaction.
	CustomOrderRepoFactory interface {
		CustomOrderRepository() ports.CustomOrderRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CustomOrderUoW manages transactions for proposal-only operations.
	// Used when commands only modify custom order aggregates.
	CustomOrderUoW interface {
		TxManager
		CustomOrderRepoFactory
	}

	// CustomOrderUoWFactory creates new custom order unit of work instances.
	CustomOrderUoWFactory interface {
		Create() CustomOrderUoW
	}

	// UoW manages transactions across both order and custom order aggregates.
	// Accepting a proposal resolves it and materializes the order in one
	// transaction, so neither write is ever visible without the other.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   customOrderRepo := uow.CustomOrderRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CustomOrderRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
