// Package customorderrepo provides data transfer objects and mapping
// functions for custom order proposal persistence.
package customorderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomOrderDTO represents the database structure for persisting custom
// order proposals. The order_id column is set only once the proposal has
// been accepted and its order materialized.
type CustomOrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number        string    `gorm:"index"`
	ManagerID     uuid.UUID `gorm:"type:uuid;index"`
	RecipientID   uuid.UUID `gorm:"type:uuid;index"`
	RecipientRole string

	Title        string
	Description  string
	Price        float64
	DeliveryDays int

	Status          string `gorm:"index"`
	RejectionReason string
	OrderID         *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time
	Version   int
}

// TableName overrides GORM's default naming to use "custom_orders".
func (CustomOrderDTO) TableName() string {
	return "custom_orders"
}

func fromDomain(aggregate *customorder.CustomOrder) CustomOrderDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return CustomOrderDTO{
		ID:            aggregate.ID().Bytes(),
		Number:        aggregate.Number(),
		ManagerID:     aggregate.ManagerID().Bytes(),
		RecipientID:   aggregate.RecipientID().Bytes(),
		RecipientRole: aggregate.RecipientRole().String(),

		Title:        aggregate.Title(),
		Description:  aggregate.Description(),
		Price:        aggregate.Price().Amount(),
		DeliveryDays: aggregate.DeliveryDays(),

		Status:          aggregate.Status().String(),
		RejectionReason: aggregate.RejectionReason(),
		OrderID:         orderID,

		CreatedAt: aggregate.CreatedAt(),
		Version:   aggregate.Version(),
	}
}

func toDomain(dto CustomOrderDTO) (*customorder.CustomOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	managerID, err := kernel.UUIDFromBytes(dto.ManagerID[:])
	if err != nil {
		return nil, err
	}
	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, oErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if oErr != nil {
			return nil, oErr
		}
		orderID = &oID
	}

	recipientRole, err := kernel.RoleFromString(dto.RecipientRole)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	status, err := customorder.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return customorder.RestoreCustomOrder(
		id,
		dto.Number,
		managerID,
		recipientID,
		recipientRole,
		dto.Title,
		dto.Description,
		price,
		dto.DeliveryDays,
		status,
		dto.RejectionReason,
		orderID,
		dto.CreatedAt,
		dto.Version,
	)
}
