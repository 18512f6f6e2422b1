package helpers

import (
	"time"

	model "student-exchange/internal/models"
)

// Listing DTOs
type CreateItemRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

type UpdateItemRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
}

type OverrideStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	AcceptedBuyer string `json:"accepted_buyer"`
}

// Cart DTOs
type AddToCartRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

type CartResponse struct {
	Items []model.Item `json:"items"`
	Total float64      `json:"total"`
}

type CheckoutRequest struct {
	ContactEmail string `json:"contact_email" binding:"required,email"`
	ContactPhone string `json:"contact_phone" binding:"required"`
	Message      string `json:"message"`
}

// Buy-request DTOs
type SubmitBuyRequest struct {
	ItemID       string `json:"item_id" binding:"required"`
	ContactEmail string `json:"contact_email" binding:"required,email"`
	ContactPhone string `json:"contact_phone" binding:"required"`
	Message      string `json:"message"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BuyRequestResponse struct {
	RequestID       string `json:"request_id"`
	Buyer           string `json:"buyer"`
	ItemID          string `json:"item_id"`
	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone"`
	Message         string `json:"message,omitempty"`
	Status          string `json:"status"`
	ClearedByBuyer  bool   `json:"cleared_by_buyer"`
	ClearedBySeller bool   `json:"cleared_by_seller"`
	RequestedAt     string `json:"requested_at"`
}

// NewBuyRequestResponse converts a ledger row to its wire shape
func NewBuyRequestResponse(req model.BuyRequest) BuyRequestResponse {
	return BuyRequestResponse{
		RequestID:       req.RequestID,
		Buyer:           req.Buyer,
		ItemID:          req.ItemID,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		Message:         req.Message,
		Status:          string(req.Status),
		ClearedByBuyer:  req.ClearedByBuyer,
		ClearedBySeller: req.ClearedBySeller,
		RequestedAt:     req.RequestedAt.UTC().Format(time.RFC3339),
	}
}

type AcceptResponse struct {
	Accepted    BuyRequestResponse `json:"accepted"`
	RejectedIDs []string           `json:"rejected_ids"`
	Item        model.Item         `json:"item"`
}
