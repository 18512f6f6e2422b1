package models

import "time"

// ItemStatus is the availability state of a listed item.
type ItemStatus string

const (
	ItemAvailable ItemStatus = "Available"
	ItemOnHold    ItemStatus = "On Hold"
	ItemSold      ItemStatus = "Sold"
)

// ParseItemStatus maps a raw string to a canonical ItemStatus.
// Unknown values are rejected at the boundary rather than stored.
func ParseItemStatus(s string) (ItemStatus, bool) {
	switch ItemStatus(s) {
	case ItemAvailable, ItemOnHold, ItemSold:
		return ItemStatus(s), true
	}
	return "", false
}

// RequestStatus is the lifecycle state of a buy request.
type RequestStatus string

const (
	RequestPending   RequestStatus = "Pending"
	RequestAccepted  RequestStatus = "Accepted"
	RequestRejected  RequestStatus = "Rejected"
	RequestCancelled RequestStatus = "Cancelled"
)

// ParseRequestStatus maps a raw string to a canonical RequestStatus.
func ParseRequestStatus(s string) (RequestStatus, bool) {
	switch RequestStatus(s) {
	case RequestPending, RequestAccepted, RequestRejected, RequestCancelled:
		return RequestStatus(s), true
	}
	return "", false
}

// Terminal reports whether the status ends a request's lifecycle.
// Accepted counts as terminal even though the buyer may still cancel it.
func (s RequestStatus) Terminal() bool {
	return s == RequestAccepted || s == RequestRejected || s == RequestCancelled
}

// Item represents a listed good
type Item struct {
	ItemID        string     `json:"item_id"`
	Seller        string     `json:"seller"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Price         float64    `json:"price"`
	Category      string     `json:"category,omitempty"`
	Image         string     `json:"image,omitempty"`
	Status        ItemStatus `json:"status"`
	AcceptedBuyer string     `json:"accepted_buyer,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ItemPatch carries a partial item update; nil fields are left unchanged.
type ItemPatch struct {
	Title       *string
	Description *string
	Price       *float64
	Category    *string
	Image       *string
}

// ItemFilter narrows a listing query; zero values match everything.
type ItemFilter struct {
	Seller   string
	Category string
	Status   ItemStatus
}

// CartEntry stages one item in a buyer's cart
type CartEntry struct {
	Buyer   string    `json:"buyer"`
	ItemID  string    `json:"item_id"`
	AddedAt time.Time `json:"added_at"`
}

// Contact groups the buyer contact details carried by a buy request.
type Contact struct {
	Email   string
	Phone   string
	Message string
}

// BuyRequest records a buyer's intent to purchase one item
type BuyRequest struct {
	RequestID       string        `json:"request_id"`
	Buyer           string        `json:"buyer"`
	ItemID          string        `json:"item_id"`
	ContactEmail    string        `json:"contact_email"`
	ContactPhone    string        `json:"contact_phone"`
	Message         string        `json:"message,omitempty"`
	Status          RequestStatus `json:"status"`
	ClearedByBuyer  bool          `json:"cleared_by_buyer"`
	ClearedBySeller bool          `json:"cleared_by_seller"`
	RequestedAt     time.Time     `json:"requested_at"`
}

// RequestWithItem is a ledger row joined with its item for display.
type RequestWithItem struct {
	BuyRequest
	ItemTitle  string     `json:"item_title"`
	ItemImage  string     `json:"item_image,omitempty"`
	ItemStatus ItemStatus `json:"item_status"`
	ItemPrice  float64    `json:"item_price"`
}

// AcceptOutcome reports the effects of an arbitration accept: the winning
// request, the pending siblings that were rejected, and the held item.
type AcceptOutcome struct {
	Accepted    BuyRequest `json:"accepted"`
	RejectedIDs []string   `json:"rejected_ids"`
	Item        Item       `json:"item"`
}
