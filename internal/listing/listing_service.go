package listing

import (
	"fmt"
	"time"

	"student-exchange/internal/exchangeerrors"
	"student-exchange/internal/models"
	"student-exchange/internal/repository"
	"student-exchange/utils"
)

// ListingService defines the business logic for the item store
type ListingService struct {
	repo repository.ExchangeDB
}

// NewListingService creates a new ListingService instance
func NewListingService(repo repository.ExchangeDB) *ListingService {
	return &ListingService{
		repo: repo,
	}
}

// CreateItem validates and stores a new listing owned by seller
func (s *ListingService) CreateItem(seller, title, description string, price float64, category, image string) (models.Item, error) {
	if seller == "" || title == "" {
		return models.Item{}, fmt.Errorf("service: %w - missing seller or title", exchangeerrors.ErrInvalidInput)
	}
	if price <= 0 {
		return models.Item{}, fmt.Errorf("service: %w - non-positive price", exchangeerrors.ErrInvalidInput)
	}

	item := models.Item{
		ItemID:      utils.GenerateID(),
		Seller:      seller,
		Title:       title,
		Description: description,
		Price:       price,
		Category:    category,
		Image:       image,
		Status:      models.ItemAvailable,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.CreateItem(item); err != nil {
		return models.Item{}, fmt.Errorf("service: failed to create item for seller %s: %w", seller, err)
	}

	return item, nil
}

// GetItems returns listings matching the filter, newest first
func (s *ListingService) GetItems(filter models.ItemFilter) ([]models.Item, error) {
	items, err := s.repo.GetItems(filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get items: %w", err)
	}
	return items, nil
}

// GetItem returns a single listing
func (s *ListingService) GetItem(itemID string) (models.Item, error) {
	if itemID == "" {
		return models.Item{}, fmt.Errorf("service: %w - empty item ID", exchangeerrors.ErrInvalidInput)
	}

	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to get item %s: %w", itemID, err)
	}
	return item, nil
}

// UpdateItem applies a partial patch to a listing owned by seller.
// Omitted fields are left unchanged.
func (s *ListingService) UpdateItem(seller, itemID string, patch models.ItemPatch) (models.Item, error) {
	if seller == "" || itemID == "" {
		return models.Item{}, fmt.Errorf("service: %w - missing seller or itemID", exchangeerrors.ErrInvalidInput)
	}
	if patch.Price != nil && *patch.Price <= 0 {
		return models.Item{}, fmt.Errorf("service: %w - non-positive price", exchangeerrors.ErrInvalidInput)
	}
	if patch.Title != nil && *patch.Title == "" {
		return models.Item{}, fmt.Errorf("service: %w - empty title", exchangeerrors.ErrInvalidInput)
	}

	item, err := s.repo.UpdateItem(seller, itemID, patch)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to update item %s: %w", itemID, err)
	}
	return item, nil
}

// OverrideStatus is the direct seller override of an item's availability.
// An accepted buyer must accompany On Hold / Sold and is cleared on
// Available, keeping the accepted-buyer invariant intact.
func (s *ListingService) OverrideStatus(seller, itemID, rawStatus, acceptedBuyer string) (models.Item, error) {
	if seller == "" || itemID == "" {
		return models.Item{}, fmt.Errorf("service: %w - missing seller or itemID", exchangeerrors.ErrInvalidInput)
	}

	status, ok := models.ParseItemStatus(rawStatus)
	if !ok {
		return models.Item{}, fmt.Errorf("service: %w - %q", exchangeerrors.ErrInvalidStatus, rawStatus)
	}

	switch status {
	case models.ItemAvailable:
		acceptedBuyer = ""
	default:
		if acceptedBuyer == "" {
			current, err := s.repo.GetItem(itemID)
			if err != nil {
				return models.Item{}, fmt.Errorf("service: failed to load item %s: %w", itemID, err)
			}
			if current.AcceptedBuyer == "" {
				return models.Item{}, fmt.Errorf("service: %w - %s requires an accepted buyer", exchangeerrors.ErrInvalidInput, status)
			}
			acceptedBuyer = current.AcceptedBuyer
		}
	}

	item, err := s.repo.SetItemStatus(seller, itemID, status, acceptedBuyer)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to set status for item %s: %w", itemID, err)
	}
	return item, nil
}

// DeleteItem removes a listing owned by seller
func (s *ListingService) DeleteItem(seller, itemID string) error {
	if seller == "" || itemID == "" {
		return fmt.Errorf("service: %w - missing seller or itemID", exchangeerrors.ErrInvalidInput)
	}

	if err := s.repo.DeleteItem(seller, itemID); err != nil {
		return fmt.Errorf("service: failed to delete item %s: %w", itemID, err)
	}
	return nil
}
