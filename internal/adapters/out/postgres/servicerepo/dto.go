// Package servicerepo provides read access to the service catalog: the
// services sellers publish and the tiered packages buyers purchase.
package servicerepo

import (
	"time"

	"github.com/google/uuid"
)

// ServiceDTO represents a published service listing.
type ServiceDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID uuid.UUID `gorm:"type:uuid;index"`

	Title       string
	Description string
	Category    string

	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "services".
func (ServiceDTO) TableName() string {
	return "services"
}

// PackageDTO represents one purchasable tier of a service.
type PackageDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceID uuid.UUID `gorm:"type:uuid;index:idx_service_tier,unique"`
	Tier      string    `gorm:"index:idx_service_tier,unique"`

	Price        float64
	DeliveryDays int
	Features     []string `gorm:"serializer:json"`
}

// TableName overrides GORM's default naming to use "service_packages".
func (PackageDTO) TableName() string {
	return "service_packages"
}
