package http

import "time"

// Error is the uniform error payload returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created is returned by endpoints that create a resource.
type Created struct {
	ID string `json:"id"`
}

// CreateOrderRequest places an order for a catalog service package.
type CreateOrderRequest struct {
	ServiceID    string `json:"serviceId"`
	Tier         string `json:"tier"`
	Requirements string `json:"requirements"`
}

// DeliverOrderRequest submits completed work on an order.
type DeliverOrderRequest struct {
	Note  string   `json:"note"`
	Files []string `json:"files"`
}

// RequestRevisionRequest sends delivered work back for rework.
type RequestRevisionRequest struct {
	Note string `json:"note"`
}

// ProposeCustomOrderRequest creates a custom order proposal.
type ProposeCustomOrderRequest struct {
	RecipientID  string  `json:"recipientId"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	DeliveryDays int     `json:"deliveryDays"`
}

// RejectCustomOrderRequest declines a custom order proposal.
type RejectCustomOrderRequest struct {
	Reason string `json:"reason"`
}

// Order is the list-view representation of an order.
type Order struct {
	ID                string    `json:"id"`
	Number            string    `json:"number"`
	BuyerID           string    `json:"buyerId"`
	SellerID          string    `json:"sellerId"`
	Status            string    `json:"status"`
	Escrow            string    `json:"escrow"`
	Tier              string    `json:"tier"`
	Price             float64   `json:"price"`
	RevisionsUsed     int       `json:"revisionsUsed"`
	RevisionAllowance int       `json:"revisionAllowance"`
	CreatedAt         time.Time `json:"createdAt"`
	DeliveryDue       time.Time `json:"deliveryDue"`
}

// OrderDetail is the full representation of an order, visible only to its
// parties and admins.
type OrderDetail struct {
	Order
	Requirements  string   `json:"requirements"`
	DeliveryNote  string   `json:"deliveryNote"`
	DeliveryFiles []string `json:"deliveryFiles"`
	Features      []string `json:"features"`
	DeliveryDays  int      `json:"deliveryDays"`
}

// CustomOrder is the representation of a custom order proposal.
type CustomOrder struct {
	ID              string    `json:"id"`
	Number          string    `json:"number"`
	ManagerID       string    `json:"managerId"`
	RecipientID     string    `json:"recipientId"`
	RecipientRole   string    `json:"recipientRole"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	DeliveryDays    int       `json:"deliveryDays"`
	Status          string    `json:"status"`
	RejectionReason string    `json:"rejectionReason,omitempty"`
	OrderID         *string   `json:"orderId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
