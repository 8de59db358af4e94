package queries

import (
	"database/sql"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// scanOrderResponse maps one row of the shared order projection into an
// OrderResponse. All order listing queries select the same column set in the
// same order.
func scanOrderResponse(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp        OrderResponse
		id          uuid.UUID
		buyerID     uuid.UUID
		sellerID    uuid.UUID
		createdAt   time.Time
		deliveryDue time.Time
	)

	if err := rows.Scan(
		&id,
		&resp.Number,
		&buyerID,
		&sellerID,
		&resp.Status,
		&resp.Escrow,
		&resp.Tier,
		&resp.Price,
		&resp.RevisionsUsed,
		&resp.RevisionAllowance,
		&createdAt,
		&deliveryDue,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	buyer, err := kernel.UUIDFromBytes(buyerID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	seller, err := kernel.UUIDFromBytes(sellerID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	resp.ID = orderID
	resp.BuyerID = buyer
	resp.SellerID = seller
	resp.CreatedAt = createdAt
	resp.DeliveryDue = deliveryDue
	return resp, nil
}
