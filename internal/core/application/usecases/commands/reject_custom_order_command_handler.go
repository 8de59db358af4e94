package commands

import (
	"context"
)

// RejectCustomOrderCommandHandler handles proposal rejection.
// Rejection is terminal and stores the recipient's reason; no order is
// created and no escrow is ever involved.
type RejectCustomOrderCommandHandler struct {
	uowFactory CustomOrderUoWFactory
}

// NewRejectCustomOrderCommandHandler creates a handler for proposal rejection.
func NewRejectCustomOrderCommandHandler(uowFactory CustomOrderUoWFactory) RejectCustomOrderCommandHandler {
	return RejectCustomOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
func (h RejectCustomOrderCommandHandler) Handle(ctx context.Context, cmd RejectCustomOrderCommand) error {
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

	customOrderRepo := uow.CustomOrderRepository()
	proposal, err := customOrderRepo.Get(ctx, cmd.CustomOrderID())
	if err != nil {
		return err
	}

	if err = proposal.Reject(cmd.CallerID(), cmd.Reason()); err != nil {
		return err
	}

	if err = customOrderRepo.Update(ctx, proposal); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
