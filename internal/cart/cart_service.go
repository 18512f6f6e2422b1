package cart

import (
	"fmt"
	"time"

	"student-exchange/internal/exchangeerrors"
	"student-exchange/internal/metrics"
	"student-exchange/internal/models"
	"student-exchange/internal/repository"
	"student-exchange/utils"
)

// CartService defines the business logic for the buyer's staging cart
type CartService struct {
	repo repository.ExchangeDB
}

// NewCartService creates a new CartService instance
func NewCartService(repo repository.ExchangeDB) *CartService {
	return &CartService{
		repo: repo,
	}
}

// Add stages an item in the buyer's cart. Adding the same item twice fails;
// the item itself is not touched and stays visible to other buyers.
func (s *CartService) Add(buyer, itemID string) error {
	if buyer == "" || itemID == "" {
		return fmt.Errorf("service: %w - missing buyer or itemID", exchangeerrors.ErrInvalidInput)
	}

	entry := models.CartEntry{
		Buyer:   buyer,
		ItemID:  itemID,
		AddedAt: time.Now().UTC(),
	}

	if err := s.repo.AddCartEntry(entry); err != nil {
		return fmt.Errorf("service: failed to add item %s to cart for buyer %s: %w", itemID, buyer, err)
	}
	return nil
}

// View returns the buyer's staged items with the cart total computed from
// current item prices at read time.
func (s *CartService) View(buyer string) ([]models.Item, float64, error) {
	if buyer == "" {
		return nil, 0, fmt.Errorf("service: %w - empty buyer", exchangeerrors.ErrInvalidInput)
	}

	items, err := s.repo.GetCartItems(buyer)
	if err != nil {
		return nil, 0, fmt.Errorf("service: failed to get cart for buyer %s: %w", buyer, err)
	}

	var total float64
	for _, item := range items {
		total += item.Price
	}
	return items, total, nil
}

// Remove deletes one entry from the buyer's cart; removing an absent entry
// succeeds.
func (s *CartService) Remove(buyer, itemID string) error {
	if buyer == "" || itemID == "" {
		return fmt.Errorf("service: %w - missing buyer or itemID", exchangeerrors.ErrInvalidInput)
	}

	if err := s.repo.RemoveCartEntry(buyer, itemID); err != nil {
		return fmt.Errorf("service: failed to remove item %s from cart for buyer %s: %w", itemID, buyer, err)
	}
	return nil
}

// Clear empties the buyer's cart
func (s *CartService) Clear(buyer string) error {
	if buyer == "" {
		return fmt.Errorf("service: %w - empty buyer", exchangeerrors.ErrInvalidInput)
	}

	if err := s.repo.ClearCart(buyer); err != nil {
		return fmt.Errorf("service: failed to clear cart for buyer %s: %w", buyer, err)
	}
	return nil
}

// Checkout converts every cart entry into one pending buy request carrying
// the supplied contact info, then empties the cart. Either all entries
// convert or none do.
func (s *CartService) Checkout(buyer string, contact models.Contact) ([]models.BuyRequest, error) {
	if buyer == "" {
		return nil, fmt.Errorf("service: %w - empty buyer", exchangeerrors.ErrInvalidInput)
	}
	if contact.Email == "" || contact.Phone == "" {
		return nil, fmt.Errorf("service: %w - missing contact email or phone", exchangeerrors.ErrInvalidInput)
	}

	now := time.Now().UTC()
	reqs, err := s.repo.CheckoutCart(buyer, func(item models.Item) models.BuyRequest {
		return models.BuyRequest{
			RequestID:    utils.GenerateID(),
			Buyer:        buyer,
			ItemID:       item.ItemID,
			ContactEmail: contact.Email,
			ContactPhone: contact.Phone,
			Message:      contact.Message,
			Status:       models.RequestPending,
			RequestedAt:  now,
		}
	})
	metrics.Checkouts.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return nil, fmt.Errorf("service: checkout failed for buyer %s: %w", buyer, err)
	}

	return reqs, nil
}
