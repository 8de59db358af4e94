package servicerepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormServiceCatalog implements ServiceCatalog using GORM.
type GormServiceCatalog struct {
	db *gorm.DB
}

// NewGormServiceCatalog creates a new GORM service catalog.
func NewGormServiceCatalog(db *gorm.DB) *GormServiceCatalog {
	return &GormServiceCatalog{db: db}
}

// GetPackageTerms resolves the seller and tier terms for a service package.
func (c *GormServiceCatalog) GetPackageTerms(ctx context.Context, serviceID kernel.UUID, tier string) (ports.PackageTerms, error) {
	if err := serviceID.Validate(); err != nil {
		return ports.PackageTerms{}, err
	}
	if tier == "" {
		return ports.PackageTerms{}, errs.NewValueIsRequiredError("tier")
	}

	var service ServiceDTO
	if err := c.db.WithContext(ctx).First(&service, "id = ?", serviceID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.PackageTerms{}, errs.NewObjectNotFoundError("serviceId", serviceID.String())
		}
		return ports.PackageTerms{}, err
	}

	var pkg PackageDTO
	if err := c.db.WithContext(ctx).
		First(&pkg, "service_id = ? AND tier = ?", serviceID.Bytes(), tier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.PackageTerms{}, errs.NewObjectNotFoundError("tier", tier)
		}
		return ports.PackageTerms{}, err
	}

	sellerID, err := kernel.UUIDFromBytes(service.SellerID[:])
	if err != nil {
		return ports.PackageTerms{}, err
	}
	price, err := kernel.NewMoney(pkg.Price)
	if err != nil {
		return ports.PackageTerms{}, err
	}

	return ports.PackageTerms{
		SellerID:     sellerID,
		Tier:         pkg.Tier,
		Price:        price,
		DeliveryDays: pkg.DeliveryDays,
		Features:     pkg.Features,
	}, nil
}
