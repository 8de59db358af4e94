package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersForParticipantQueryHandler lists orders where the user is buyer
// or seller, newest first.
type GetOrdersForParticipantQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersForParticipantQueryHandler creates a handler for participant
// order listings. Requires a GORM database connection for query execution.
func NewGetOrdersForParticipantQueryHandler(db *gorm.DB) GetOrdersForParticipantQueryHandler {
	return GetOrdersForParticipantQueryHandler{db: db}
}

// Handle executes the listing query.
func (h GetOrdersForParticipantQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersForParticipantQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			buyer_id,
			seller_id,
			status,
			escrow,
			tier,
			price,
			revisions_used,
			revision_allowance,
			created_at,
			delivery_due
		FROM orders
		WHERE buyer_id = ? OR seller_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Bytes(), query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
