package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ProposeCustomOrderCommandHandler handles custom order proposals.
// Only campaign managers may propose; the recipient's platform role is
// resolved here and captured on the proposal so acceptance later knows which
// side of the materialized order the recipient takes.
type ProposeCustomOrderCommandHandler struct {
	uowFactory CustomOrderUoWFactory
	roles      ports.RoleProvider
}

// NewProposeCustomOrderCommandHandler creates a handler for proposing custom orders.
func NewProposeCustomOrderCommandHandler(
	uowFactory CustomOrderUoWFactory,
	roles ports.RoleProvider,
) ProposeCustomOrderCommandHandler {
	return ProposeCustomOrderCommandHandler{
		uowFactory: uowFactory,
		roles:      roles,
	}
}

// Handle processes the proposal command.
// The proposal starts pending; nothing is committed on the order side until
// the recipient accepts.
func (h *ProposeCustomOrderCommandHandler) Handle(ctx context.Context, cmd ProposeCustomOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	managerRole, err := h.roles.GetRole(ctx, cmd.ManagerID())
	if err != nil {
		return err
	}
	if managerRole != kernel.RoleManager {
		return errs.NewForbiddenError(cmd.ManagerID().String(), "propose a custom order")
	}

	recipientRole, err := h.roles.GetRole(ctx, cmd.RecipientID())
	if err != nil {
		return err
	}

	proposal, err := customorder.NewCustomOrder(
		cmd.CustomOrderID(),
		order.NewOrderNumber(),
		cmd.ManagerID(),
		cmd.RecipientID(),
		recipientRole,
		cmd.Title(),
		cmd.Description(),
		cmd.Price(),
		cmd.DeliveryDays(),
		time.Now(),
	)
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

	if err = uow.CustomOrderRepository().Add(ctx, proposal); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
