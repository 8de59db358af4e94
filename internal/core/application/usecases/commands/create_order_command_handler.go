package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for placing a catalog
// order. Resolves the service package through the catalog, snapshots its
// terms onto the order, and persists it with escrow held.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ServiceCatalog
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and a
// ServiceCatalog to resolve package terms.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.ServiceCatalog,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the order placement command.
// Looks up the package terms, derives the terms snapshot and delivery due
// date, and creates the order in "in_progress" status with escrow held.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	packageTerms, err := h.catalog.GetPackageTerms(ctx, cmd.ServiceID(), cmd.Tier())
	if err != nil {
		return err
	}

	terms, err := order.NewTerms(
		packageTerms.Tier,
		packageTerms.Price,
		packageTerms.DeliveryDays,
		packageTerms.Features,
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

	orderRepo := uow.OrderRepository()
	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		order.NewOrderNumber(),
		cmd.ServiceID(),
		cmd.BuyerID(),
		packageTerms.SellerID,
		terms,
		cmd.Requirements(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
