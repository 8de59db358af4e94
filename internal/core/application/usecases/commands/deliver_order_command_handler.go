package commands

import (
	"context"
	"time"

	"marketplace/internal/core/ports"
)

// DeliverOrderCommandHandler handles delivery submission.
// Loads the order, applies the seller's delivery, persists the transition
// under the order's optimistic-concurrency version, and announces the status
// change after commit.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewDeliverOrderCommandHandler creates a handler for delivery submission.
func NewDeliverOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the delivery command.
// Authorization, state checks, and the revision-loop semantics live on the
// aggregate; the handler only orchestrates load, apply, persist, notify.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	fromStatus := aggregate.Status()
	if err = aggregate.Deliver(cmd.CallerID(), cmd.Note(), cmd.Files()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best-effort: a failed notification never rolls back the transition.
	_ = h.notifier.StatusChanged(ctx, ports.StatusChange{
		OrderID:     aggregate.ID(),
		OrderNumber: aggregate.Number(),
		From:        fromStatus,
		To:          aggregate.Status(),
		At:          time.Now(),
	})

	return nil
}
