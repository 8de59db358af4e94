package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// AcceptCustomOrderCommandHandler orchestrates proposal acceptance.
// Resolving the proposal and creating the materialized order are written in
// a single transaction: an accepted proposal must never be observable
// without its order, nor the order without the resolved proposal.
//
// Example:
//
//	handler := NewAcceptCustomOrderCommandHandler(uowFactory)
//	cmd, _ := NewAcceptCustomOrderCommand(proposalID, recipientID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("acceptance failed: %w", err)
//	}
type AcceptCustomOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAcceptCustomOrderCommandHandler creates a handler for proposal acceptance.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAcceptCustomOrderCommandHandler(uowFactory UoWFactory) AcceptCustomOrderCommandHandler {
	return AcceptCustomOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command.
// Loads the proposal, applies the recipient's acceptance which yields the
// materialized order, and persists both aggregates before committing.
func (h AcceptCustomOrderCommandHandler) Handle(ctx context.Context, cmd AcceptCustomOrderCommand) error {
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
	orderRepo := uow.OrderRepository()

	proposal, err := customOrderRepo.Get(ctx, cmd.CustomOrderID())
	if err != nil {
		return err
	}

	materialized, err := proposal.Accept(cmd.CallerID(), kernel.NewUUID(), time.Now())
	if err != nil {
		return err
	}

	if err = customOrderRepo.Update(ctx, proposal); err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, materialized); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
