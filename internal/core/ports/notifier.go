package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// StatusChange describes a completed order lifecycle transition to be
// announced to both parties.
type StatusChange struct {
	OrderID     kernel.UUID
	OrderNumber string
	From        order.Status
	To          order.Status
	At          time.Time
}

// Notifier announces workflow events to interested users. Notification
// delivery is best-effort and happens after the state change is committed;
// a failed notification never rolls back a transition.
type Notifier interface {
	// StatusChanged announces an order lifecycle transition.
	StatusChanged(ctx context.Context, change StatusChange) error

	// DeliveryOverdue warns that an order passed its delivery due date with
	// nothing delivered. Informational only; no transition is triggered.
	DeliveryOverdue(ctx context.Context, aggregate *order.Order) error
}
