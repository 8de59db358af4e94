package commands

import (
	"context"
	"time"

	"marketplace/internal/core/ports"
)

// AcceptDeliveryCommandHandler handles buyer acceptance of delivered work.
// Acceptance is the single event that releases held escrow to the seller,
// so the status and escrow transition are persisted atomically.
type AcceptDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery acceptance.
func NewAcceptDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the acceptance command.
func (h *AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
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
	if err = aggregate.AcceptDelivery(cmd.CallerID(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.StatusChanged(ctx, ports.StatusChange{
		OrderID:     aggregate.ID(),
		OrderNumber: aggregate.Number(),
		From:        fromStatus,
		To:          aggregate.Status(),
		At:          time.Now(),
	})

	return nil
}
