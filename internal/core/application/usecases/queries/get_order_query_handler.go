package queries

import (
	"context"
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order's full detail.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError for unknown orders
// and ForbiddenError when the caller is neither a participant nor an admin.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
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
			delivery_due,
			requirements,
			delivery_note,
			delivery_files,
			features,
			delivery_days
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderDetailResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderDetailResponse{}, err
		}
		return OrderDetailResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	var (
		resp          OrderDetailResponse
		id            uuid.UUID
		buyerID       uuid.UUID
		sellerID      uuid.UUID
		createdAt     time.Time
		deliveryDue   time.Time
		deliveryFiles []byte
		features      []byte
	)

	if err = rows.Scan(
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
		&resp.Requirements,
		&resp.DeliveryNote,
		&deliveryFiles,
		&features,
		&resp.DeliveryDays,
	); err != nil {
		return OrderDetailResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderDetailResponse{}, err
	}
	resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:])
	if err != nil {
		return OrderDetailResponse{}, err
	}
	resp.SellerID, err = kernel.UUIDFromBytes(sellerID[:])
	if err != nil {
		return OrderDetailResponse{}, err
	}
	resp.CreatedAt = createdAt
	resp.DeliveryDue = deliveryDue

	if len(deliveryFiles) > 0 {
		if err = json.Unmarshal(deliveryFiles, &resp.DeliveryFiles); err != nil {
			return OrderDetailResponse{}, err
		}
	}
	if len(features) > 0 {
		if err = json.Unmarshal(features, &resp.Features); err != nil {
			return OrderDetailResponse{}, err
		}
	}

	isParty := query.CallerID().IsEqual(resp.BuyerID) || query.CallerID().IsEqual(resp.SellerID)
	if query.CallerRole() != kernel.RoleAdmin && !isParty {
		return OrderDetailResponse{}, errs.NewForbiddenError(query.CallerID().String(), "view this order")
	}

	return resp, nil
}
