package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// PackageTerms is the catalog's view of a purchasable service package: who
// sells it and what the tier promises. Orders snapshot these values at
// placement time so later catalog edits never affect running orders.
type PackageTerms struct {
	SellerID     kernel.UUID
	Tier         string
	Price        kernel.Money
	DeliveryDays int
	Features     []string
}

// ServiceCatalog resolves a service package at order placement time.
//
// GetPackageTerms returns errs.ObjectNotFoundError when the service or the
// requested tier does not exist.
type ServiceCatalog interface {
	GetPackageTerms(ctx context.Context, serviceID kernel.UUID, tier string) (PackageTerms, error)
}
