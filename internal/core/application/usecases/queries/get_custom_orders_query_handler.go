package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomOrdersQueryHandler lists proposals where the user is the manager
// or the recipient, newest first.
type GetCustomOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomOrdersQueryHandler creates a handler for proposal listings.
func NewGetCustomOrdersQueryHandler(db *gorm.DB) GetCustomOrdersQueryHandler {
	return GetCustomOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
func (h GetCustomOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomOrdersQuery,
) ([]CustomOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			manager_id,
			recipient_id,
			recipient_role,
			title,
			description,
			price,
			delivery_days,
			status,
			rejection_reason,
			order_id,
			created_at
		FROM custom_orders
		WHERE manager_id = ? OR recipient_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Bytes(), query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	proposals := make([]CustomOrderResponse, 0)
	for rows.Next() {
		var (
			resp        CustomOrderResponse
			id          uuid.UUID
			managerID   uuid.UUID
			recipientID uuid.UUID
			orderID     *uuid.UUID
			createdAt   time.Time
		)

		if err = rows.Scan(
			&id,
			&resp.Number,
			&managerID,
			&recipientID,
			&resp.RecipientRole,
			&resp.Title,
			&resp.Description,
			&resp.Price,
			&resp.DeliveryDays,
			&resp.Status,
			&resp.RejectionReason,
			&orderID,
			&createdAt,
		); err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.ManagerID, err = kernel.UUIDFromBytes(managerID[:])
		if err != nil {
			return nil, err
		}
		resp.RecipientID, err = kernel.UUIDFromBytes(recipientID[:])
		if err != nil {
			return nil, err
		}
		if orderID != nil {
			linked, idErr := kernel.UUIDFromBytes(orderID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.OrderID = &linked
		}
		resp.CreatedAt = createdAt

		proposals = append(proposals, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return proposals, nil
}
