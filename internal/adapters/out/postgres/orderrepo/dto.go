// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and escrow are stored by their lowercase names so that read-side
// queries and API payloads share one vocabulary. The version column carries
// the optimistic-concurrency token.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number        string     `gorm:"index"`
	ServiceID     *uuid.UUID `gorm:"type:uuid;index"`
	CustomOrderID *uuid.UUID `gorm:"type:uuid;index"`
	BuyerID       uuid.UUID  `gorm:"type:uuid;index"`
	SellerID      uuid.UUID  `gorm:"type:uuid;index"`

	Tier         string
	Price        float64
	DeliveryDays int
	Features     []string `gorm:"serializer:json"`
	Requirements string

	Status            string `gorm:"index"`
	Escrow            string
	RevisionsUsed     int
	RevisionAllowance int
	DeliveryNote      string
	DeliveryFiles     []string `gorm:"serializer:json"`
	EverDelivered     bool

	CreatedAt   time.Time
	DeliveryDue time.Time `gorm:"index"`
	CompletedAt *time.Time

	Version int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var serviceID *uuid.UUID
	if id := aggregate.ServiceID(); id != nil {
		raw := id.Bytes()
		serviceID = &raw
	}
	var customOrderID *uuid.UUID
	if id := aggregate.CustomOrderID(); id != nil {
		raw := id.Bytes()
		customOrderID = &raw
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Number:        aggregate.Number(),
		ServiceID:     serviceID,
		CustomOrderID: customOrderID,
		BuyerID:       aggregate.BuyerID().Bytes(),
		SellerID:      aggregate.SellerID().Bytes(),

		Tier:         aggregate.Terms().Tier(),
		Price:        aggregate.Terms().Price().Amount(),
		DeliveryDays: aggregate.Terms().DeliveryDays(),
		Features:     aggregate.Terms().Features(),
		Requirements: aggregate.Requirements(),

		Status:            aggregate.Status().String(),
		Escrow:            aggregate.Escrow().String(),
		RevisionsUsed:     aggregate.RevisionsUsed(),
		RevisionAllowance: aggregate.RevisionAllowance(),
		DeliveryNote:      aggregate.DeliveryNote(),
		DeliveryFiles:     aggregate.DeliveryFiles(),
		EverDelivered:     aggregate.EverDelivered(),

		CreatedAt:   aggregate.CreatedAt(),
		DeliveryDue: aggregate.DeliveryDue(),
		CompletedAt: aggregate.CompletedAt(),

		Version: aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	var serviceID *kernel.UUID
	if dto.ServiceID != nil {
		sID, sErr := kernel.UUIDFromBytes((*dto.ServiceID)[:])
		if sErr != nil {
			return nil, sErr
		}
		serviceID = &sID
	}
	var customOrderID *kernel.UUID
	if dto.CustomOrderID != nil {
		cID, cErr := kernel.UUIDFromBytes((*dto.CustomOrderID)[:])
		if cErr != nil {
			return nil, cErr
		}
		customOrderID = &cID
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	terms, err := order.NewTerms(dto.Tier, price, dto.DeliveryDays, dto.Features)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	escrow, err := order.EscrowStateFromString(dto.Escrow)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		serviceID,
		customOrderID,
		buyerID,
		sellerID,
		terms,
		dto.Requirements,
		status,
		escrow,
		dto.RevisionsUsed,
		dto.RevisionAllowance,
		dto.DeliveryNote,
		dto.DeliveryFiles,
		dto.EverDelivered,
		dto.CreatedAt,
		dto.DeliveryDue,
		dto.CompletedAt,
		dto.Version,
	)
}
