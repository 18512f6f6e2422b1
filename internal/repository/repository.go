package repository

import (
	"fmt"
	"sort"
	"sync"

	"student-exchange/internal/exchangeerrors"
	model "student-exchange/internal/models"
)

// ExchangeDB defines the storage interface for the marketplace core.
// The arbitration methods (AcceptRequest, DenyRequest, CancelRequest) and
// CheckoutCart each execute as a single atomic unit: either every row they
// touch is written, or none is.
type ExchangeDB interface {
	// items
	CreateItem(item model.Item) error
	GetItem(itemID string) (model.Item, error)
	GetItems(filter model.ItemFilter) ([]model.Item, error)
	UpdateItem(seller, itemID string, patch model.ItemPatch) (model.Item, error)
	SetItemStatus(seller, itemID string, status model.ItemStatus, acceptedBuyer string) (model.Item, error)
	DeleteItem(seller, itemID string) error

	// cart
	AddCartEntry(entry model.CartEntry) error
	GetCartItems(buyer string) ([]model.Item, error)
	RemoveCartEntry(buyer, itemID string) error
	ClearCart(buyer string) error
	CheckoutCart(buyer string, build func(item model.Item) model.BuyRequest) ([]model.BuyRequest, error)

	// buy requests
	CreateRequest(req model.BuyRequest) error
	GetRequest(requestID string) (model.BuyRequest, error)
	RequestsForSeller(seller string) ([]model.RequestWithItem, error)
	RequestsForBuyer(buyer string) ([]model.RequestWithItem, error)
	ClearForBuyer(requestID, buyer string) error
	ClearForSeller(requestID, seller string) error

	// arbitration
	AcceptRequest(seller, requestID string) (model.AcceptOutcome, error)
	DenyRequest(seller, requestID string, target model.RequestStatus) (model.BuyRequest, error)
	CancelRequest(buyer, requestID string) (model.BuyRequest, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of ExchangeDB
type MemoryRepo struct {
	mu       sync.RWMutex
	items    map[string]model.Item                 // key: itemID
	cart     map[string]map[string]model.CartEntry // key: buyer -> itemID
	requests map[string]model.BuyRequest           // key: requestID
	byItem   map[string][]string                   // key: itemID -> requestIDs in arrival order
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		items:    make(map[string]model.Item),
		cart:     make(map[string]map[string]model.CartEntry),
		requests: make(map[string]model.BuyRequest),
		byItem:   make(map[string][]string),
	}
}

// CreateItem stores a new listing
func (r *MemoryRepo) CreateItem(item model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ItemID] = item
	return nil
}

// GetItem returns a single item by id
func (r *MemoryRepo) GetItem(itemID string) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, exchangeerrors.ErrItemNotFound)
	}
	return item, nil
}

// GetItems returns listings matching the filter, newest first
func (r *MemoryRepo) GetItems(filter model.ItemFilter) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Item, 0, len(r.items))
	for _, item := range r.items {
		if filter.Seller != "" && item.Seller != filter.Seller {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// UpdateItem applies a partial patch to an item owned by seller
func (r *MemoryRepo) UpdateItem(seller, itemID string, patch model.ItemPatch) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("update item %s: %w", itemID, exchangeerrors.ErrItemNotFound)
	}
	if item.Seller != seller {
		return model.Item{}, fmt.Errorf("update item %s: %w", itemID, exchangeerrors.ErrForbidden)
	}

	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Image != nil {
		item.Image = *patch.Image
	}

	r.items[itemID] = item
	return item, nil
}

// SetItemStatus is a dumb status mutator with ownership and existence checks.
// Ledger consistency is the arbitration layer's job, not this method's.
func (r *MemoryRepo) SetItemStatus(seller, itemID string, status model.ItemStatus, acceptedBuyer string) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("set status for item %s: %w", itemID, exchangeerrors.ErrItemNotFound)
	}
	if item.Seller != seller {
		return model.Item{}, fmt.Errorf("set status for item %s: %w", itemID, exchangeerrors.ErrForbidden)
	}

	item.Status = status
	item.AcceptedBuyer = acceptedBuyer
	r.items[itemID] = item
	return item, nil
}

// DeleteItem removes an item owned by seller
func (r *MemoryRepo) DeleteItem(seller, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return fmt.Errorf("delete item %s: %w", itemID, exchangeerrors.ErrItemNotFound)
	}
	if item.Seller != seller {
		return fmt.Errorf("delete item %s: %w", itemID, exchangeerrors.ErrForbidden)
	}

	delete(r.items, itemID)
	return nil
}

// AddCartEntry inserts a cart entry; the duplicate check and the insert run
// under one lock so two racing adds cannot both succeed.
func (r *MemoryRepo) AddCartEntry(entry model.CartEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[entry.ItemID]; !ok {
		return fmt.Errorf("add to cart for item %s: %w", entry.ItemID, exchangeerrors.ErrItemNotFound)
	}

	entries, ok := r.cart[entry.Buyer]
	if !ok {
		entries = make(map[string]model.CartEntry)
		r.cart[entry.Buyer] = entries
	}
	if _, exists := entries[entry.ItemID]; exists {
		return fmt.Errorf("add to cart for item %s: %w", entry.ItemID, exchangeerrors.ErrDuplicateCartEntry)
	}

	entries[entry.ItemID] = entry
	return nil
}

// GetCartItems returns the buyer's staged items joined against the item store,
// oldest entry first
func (r *MemoryRepo) GetCartItems(buyer string) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.cartItemsLocked(buyer), nil
}

func (r *MemoryRepo) cartItemsLocked(buyer string) []model.Item {
	entries := make([]model.CartEntry, 0, len(r.cart[buyer]))
	for _, e := range r.cart[buyer] {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].AddedAt.Before(entries[j].AddedAt)
	})

	items := make([]model.Item, 0, len(entries))
	for _, e := range entries {
		if item, ok := r.items[e.ItemID]; ok {
			items = append(items, item)
		}
	}
	return items
}

// RemoveCartEntry deletes one cart entry; removing an absent entry is a no-op
func (r *MemoryRepo) RemoveCartEntry(buyer, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.cart[buyer], itemID)
	return nil
}

// ClearCart empties the buyer's cart
func (r *MemoryRepo) ClearCart(buyer string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.cart, buyer)
	return nil
}

// CheckoutCart converts every cart entry into a buy request built by the
// caller and empties the cart, all under one lock. If any entry cannot
// convert, nothing is written and the cart keeps all its entries.
func (r *MemoryRepo) CheckoutCart(buyer string, build func(item model.Item) model.BuyRequest) ([]model.BuyRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.cartItemsLocked(buyer)
	if len(items) == 0 {
		return nil, fmt.Errorf("checkout for buyer %s: %w", buyer, exchangeerrors.ErrEmptyCart)
	}

	reqs := make([]model.BuyRequest, 0, len(items))
	for _, item := range items {
		if r.hasPendingLocked(buyer, item.ItemID) {
			return nil, fmt.Errorf("checkout for item %s: %w", item.ItemID, exchangeerrors.ErrDuplicateRequest)
		}
		reqs = append(reqs, build(item))
	}

	for _, req := range reqs {
		r.requests[req.RequestID] = req
		r.byItem[req.ItemID] = append(r.byItem[req.ItemID], req.RequestID)
	}
	delete(r.cart, buyer)

	return reqs, nil
}

// CreateRequest records a direct buy-request submission. One pending request
// per (buyer, item) pair is allowed.
func (r *MemoryRepo) CreateRequest(req model.BuyRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[req.ItemID]; !ok {
		return fmt.Errorf("submit request for item %s: %w", req.ItemID, exchangeerrors.ErrItemNotFound)
	}
	if r.hasPendingLocked(req.Buyer, req.ItemID) {
		return fmt.Errorf("submit request for item %s: %w", req.ItemID, exchangeerrors.ErrDuplicateRequest)
	}

	r.requests[req.RequestID] = req
	r.byItem[req.ItemID] = append(r.byItem[req.ItemID], req.RequestID)
	return nil
}

func (r *MemoryRepo) hasPendingLocked(buyer, itemID string) bool {
	for _, id := range r.byItem[itemID] {
		req := r.requests[id]
		if req.Buyer == buyer && req.Status == model.RequestPending {
			return true
		}
	}
	return false
}

// GetRequest returns a single buy request by id
func (r *MemoryRepo) GetRequest(requestID string) (model.BuyRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[requestID]
	if !ok {
		return model.BuyRequest{}, fmt.Errorf("get request %s: %w", requestID, exchangeerrors.ErrRequestNotFound)
	}
	return req, nil
}

// RequestsForSeller returns requests for items owned by seller, joined with
// item data, excluding rows the seller has cleared, newest first
func (r *MemoryRepo) RequestsForSeller(seller string) ([]model.RequestWithItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([]model.RequestWithItem, 0)
	for _, req := range r.requests {
		item, ok := r.items[req.ItemID]
		if !ok || item.Seller != seller || req.ClearedBySeller {
			continue
		}
		rows = append(rows, joinRequest(req, item))
	}
	sortNewestFirst(rows)
	return rows, nil
}

// RequestsForBuyer is the buyer-side mirror of RequestsForSeller
func (r *MemoryRepo) RequestsForBuyer(buyer string) ([]model.RequestWithItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([]model.RequestWithItem, 0)
	for _, req := range r.requests {
		if req.Buyer != buyer || req.ClearedByBuyer {
			continue
		}
		item, ok := r.items[req.ItemID]
		if !ok {
			continue
		}
		rows = append(rows, joinRequest(req, item))
	}
	sortNewestFirst(rows)
	return rows, nil
}

func joinRequest(req model.BuyRequest, item model.Item) model.RequestWithItem {
	return model.RequestWithItem{
		BuyRequest: req,
		ItemTitle:  item.Title,
		ItemImage:  item.Image,
		ItemStatus: item.Status,
		ItemPrice:  item.Price,
	}
}

func sortNewestFirst(rows []model.RequestWithItem) {
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].RequestedAt.After(rows[j].RequestedAt)
	})
}

// ClearForBuyer hides a terminal request from the buyer's listing. The row
// itself and the seller's view of it are untouched.
func (r *MemoryRepo) ClearForBuyer(requestID, buyer string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[requestID]
	if !ok {
		return fmt.Errorf("clear request %s: %w", requestID, exchangeerrors.ErrRequestNotFound)
	}
	if req.Buyer != buyer {
		return fmt.Errorf("clear request %s: %w", requestID, exchangeerrors.ErrForbidden)
	}
	if !req.Status.Terminal() {
		return fmt.Errorf("clear request %s in status %s: %w", requestID, req.Status, exchangeerrors.ErrInvalidTransition)
	}

	req.ClearedByBuyer = true
	r.requests[requestID] = req
	return nil
}

// ClearForSeller hides a terminal request from the seller's listing,
// validating ownership through the referenced item
func (r *MemoryRepo) ClearForSeller(requestID, seller string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[requestID]
	if !ok {
		return fmt.Errorf("clear request %s: %w", requestID, exchangeerrors.ErrRequestNotFound)
	}
	item, ok := r.items[req.ItemID]
	if !ok || item.Seller != seller {
		return fmt.Errorf("clear request %s: %w", requestID, exchangeerrors.ErrForbidden)
	}
	if !req.Status.Terminal() {
		return fmt.Errorf("clear request %s in status %s: %w", requestID, req.Status, exchangeerrors.ErrInvalidTransition)
	}

	req.ClearedBySeller = true
	r.requests[requestID] = req
	return nil
}

// AcceptRequest accepts one pending request, rejects every other pending
// request for the same item, and puts the item on hold with the winning
// buyer recorded. The whole sequence runs inside one critical section, so
// of two concurrent accepts on the same item exactly one succeeds; the
// loser observes the winner's committed state and fails.
func (r *MemoryRepo) AcceptRequest(seller, requestID string) (model.AcceptOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[requestID]
	if !ok {
		return model.AcceptOutcome{}, fmt.Errorf("accept request %s: %w", requestID, exchangeerrors.ErrRequestNotFound)
	}
	item, ok := r.items[req.ItemID]
	if !ok || item.Seller != seller {
		return model.AcceptOutcome{}, fmt.Errorf("accept request %s: %w", requestID, exchangeerrors.ErrRequestNotFound)
	}
	if req.Status != model.RequestPending {
		return model.AcceptOutcome{}, fmt.Errorf("accept request %s in status %s: %w", requestID, req.Status, exchangeerrors.ErrInvalidTransition)
	}
	if item.Status != model.ItemAvailable {
		return model.AcceptOutcome{}, fmt.Errorf("accept request %s: item %s is %s: %w", requestID, item.ItemID, item.Status, exchangeerrors.ErrConflict)
	}
	for _, id := range r.byItem[req.ItemID] {
		if id != requestID && r.requests[id].Status == model.RequestAccepted {
			return model.AcceptOutcome{}, fmt.Errorf("accept request %s: %w", requestID, exchangeerrors.ErrConflict)
		}
	}

	req.Status = model.RequestAccepted
	r.requests[requestID] = req

	rejected := make([]string, 0)
	for _, id := range r.byItem[req.ItemID] {
		if id == requestID {
			continue
		}
		sibling := r.requests[id]
		if sibling.Status != model.RequestPending {
			continue
		}
		sibling.Status = model.RequestRejected
		r.requests[id] = sibling
		rejected = append(rejected, id)
	}

	item.Status = model.ItemOnHold
	item.AcceptedBuyer = req.Buyer
	r.items[item.ItemID] = item

	return model.AcceptOutcome{Accepted: req, RejectedIDs: rejected, Item: item}, nil
}

// DenyRequest moves a pending request to the target status (Rejected, or
// Pending as a no-op reset). Terminal requests cannot be denied.
func (r *MemoryRepo) DenyRequest(seller, requestID string, target model.RequestStatus) (model.BuyRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[requestID]
	if !ok {
		return model.BuyRequest{}, fmt.Errorf("deny request %s: %w", requestID, exchangeerrors.ErrRequestNotFound)
	}
	item, ok := r.items[req.ItemID]
	if !ok || item.Seller != seller {
		return model.BuyRequest{}, fmt.Errorf("deny request %s: %w", requestID, exchangeerrors.ErrRequestNotFound)
	}
	if req.Status != model.RequestPending {
		return model.BuyRequest{}, fmt.Errorf("deny request %s in status %s: %w", requestID, req.Status, exchangeerrors.ErrInvalidTransition)
	}

	req.Status = target
	r.requests[requestID] = req
	return req, nil
}

// CancelRequest is the buyer-initiated cancellation. Pending and Accepted
// requests may be cancelled; cancelling an accepted request releases the
// held item back to Available and clears its accepted buyer.
func (r *MemoryRepo) CancelRequest(buyer, requestID string) (model.BuyRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[requestID]
	if !ok {
		return model.BuyRequest{}, fmt.Errorf("cancel request %s: %w", requestID, exchangeerrors.ErrRequestNotFound)
	}
	if req.Buyer != buyer {
		return model.BuyRequest{}, fmt.Errorf("cancel request %s: %w", requestID, exchangeerrors.ErrRequestNotFound)
	}
	if req.Status != model.RequestPending && req.Status != model.RequestAccepted {
		return model.BuyRequest{}, fmt.Errorf("cancel request %s in status %s: %w", requestID, req.Status, exchangeerrors.ErrInvalidTransition)
	}

	wasAccepted := req.Status == model.RequestAccepted
	req.Status = model.RequestCancelled
	r.requests[requestID] = req

	if wasAccepted {
		if item, ok := r.items[req.ItemID]; ok && item.AcceptedBuyer == buyer {
			item.Status = model.ItemAvailable
			item.AcceptedBuyer = ""
			r.items[req.ItemID] = item
		}
	}

	return req, nil
}

// AddItem adds an item to the repository. This method is intended for tests
// and demo seeding only.
func (r *MemoryRepo) AddItem(item model.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ItemID] = item
}
