// Package notifier delivers workflow notifications as system messages
// persisted to the users' inboxes. Delivery is best-effort: callers invoke it
// after their own transaction has committed, and a failure here is logged
// rather than propagated into the workflow.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageDTO represents a system message in a user's inbox.
type MessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID `gorm:"type:uuid;index"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Body        string
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "messages".
func (MessageDTO) TableName() string {
	return "messages"
}

// orderParties is the slice of the orders table the notifier needs to find
// who to address.
type orderParties struct {
	BuyerID  uuid.UUID
	SellerID uuid.UUID
}

// SystemMessageNotifier implements Notifier by writing a system message to
// both parties of an order.
type SystemMessageNotifier struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewSystemMessageNotifier creates a new system message notifier.
func NewSystemMessageNotifier(db *gorm.DB, logger *slog.Logger) *SystemMessageNotifier {
	return &SystemMessageNotifier{
		db:     db,
		logger: logger,
	}
}

// StatusChanged writes a transition announcement to both parties' inboxes.
func (n *SystemMessageNotifier) StatusChanged(ctx context.Context, change ports.StatusChange) error {
	var parties orderParties
	if err := n.db.WithContext(ctx).
		Table("orders").
		Select("buyer_id", "seller_id").
		Where("id = ?", change.OrderID.Bytes()).
		Take(&parties).Error; err != nil {
		n.logger.Warn("status change notification skipped",
			"orderId", change.OrderID.String(),
			"error", err)
		return err
	}

	body := fmt.Sprintf("Order %s moved from %s to %s",
		change.OrderNumber, change.From.String(), change.To.String())

	messages := []MessageDTO{
		{
			ID:          uuid.New(),
			RecipientID: parties.BuyerID,
			OrderID:     change.OrderID.Bytes(),
			Body:        body,
			CreatedAt:   change.At,
		},
		{
			ID:          uuid.New(),
			RecipientID: parties.SellerID,
			OrderID:     change.OrderID.Bytes(),
			Body:        body,
			CreatedAt:   change.At,
		},
	}

	if err := n.db.WithContext(ctx).Create(&messages).Error; err != nil {
		n.logger.Warn("status change notification failed",
			"orderId", change.OrderID.String(),
			"error", err)
		return err
	}

	n.logger.Info("status change announced",
		"orderId", change.OrderID.String(),
		"from", change.From.String(),
		"to", change.To.String())
	return nil
}

// DeliveryOverdue warns both parties that the delivery due date passed with
// nothing delivered.
func (n *SystemMessageNotifier) DeliveryOverdue(ctx context.Context, aggregate *order.Order) error {
	body := fmt.Sprintf("Order %s is past its delivery due date (%s)",
		aggregate.Number(), aggregate.DeliveryDue().Format("2006-01-02"))

	now := time.Now()
	messages := []MessageDTO{
		{
			ID:          uuid.New(),
			RecipientID: aggregate.BuyerID().Bytes(),
			OrderID:     aggregate.ID().Bytes(),
			Body:        body,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			RecipientID: aggregate.SellerID().Bytes(),
			OrderID:     aggregate.ID().Bytes(),
			Body:        body,
			CreatedAt:   now,
		},
	}

	if err := n.db.WithContext(ctx).Create(&messages).Error; err != nil {
		n.logger.Warn("overdue notification failed",
			"orderId", aggregate.ID().String(),
			"error", err)
		return err
	}

	n.logger.Info("overdue notice sent", "orderId", aggregate.ID().String())
	return nil
}
