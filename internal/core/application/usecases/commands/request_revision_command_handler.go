package commands

import (
	"context"
	"time"

	"marketplace/internal/core/ports"
)

// RequestRevisionCommandHandler handles revision requests on delivered work.
// The bounded revision loop lives on the aggregate: once the allowance is
// spent further requests fail and the buyer can only accept or escalate.
type RequestRevisionCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewRequestRevisionCommandHandler creates a handler for revision requests.
func NewRequestRevisionCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) RequestRevisionCommandHandler {
	return RequestRevisionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the revision request command.
func (h *RequestRevisionCommandHandler) Handle(ctx context.Context, cmd RequestRevisionCommand) error {
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
	if err = aggregate.RequestRevision(cmd.CallerID(), cmd.Note()); err != nil {
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
