package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOverdueOrdersQueryHandler lists orders past their due date with no
// delivery ever made.
type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueOrdersQueryHandler creates a handler for overdue listings.
func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

// Handle executes the overdue listing query.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
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
		WHERE status = ?
		  AND ever_delivered = false
		  AND delivery_due < ?
		ORDER BY delivery_due
	`, order.StatusInProgress.String(), query.AsOf()).Rows()
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
