package commands

import (
	"context"
	"time"

	"marketplace/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation.
// The caller's role is resolved through the RoleProvider rather than trusted
// from the request: an admin may cancel any non-terminal order, a party only
// an untouched in_progress one.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	roles      ports.RoleProvider
	notifier   ports.Notifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	roles ports.RoleProvider,
	notifier ports.Notifier,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		roles:      roles,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	callerRole, err := h.roles.GetRole(ctx, cmd.CallerID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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
	if err = aggregate.Cancel(cmd.CallerID(), callerRole); err != nil {
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
