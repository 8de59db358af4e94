package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists all orders for platform oversight.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for admin order listings.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Non-admin callers get ForbiddenError.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if query.CallerRole() != kernel.RoleAdmin {
		return nil, errs.NewForbiddenError(query.CallerID().String(), "list all orders")
	}

	sql := `
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
	`
	args := []any{}
	if query.Status() != "" {
		sql += ` WHERE status = ?`
		args = append(args, query.Status())
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
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
