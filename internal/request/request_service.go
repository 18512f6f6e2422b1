package request

import (
	"fmt"
	"time"

	"student-exchange/internal/exchangeerrors"
	"student-exchange/internal/metrics"
	"student-exchange/internal/models"
	"student-exchange/internal/repository"
	"student-exchange/utils"
)

// RequestService defines the query and submission surface of the
// buy-request ledger
type RequestService struct {
	repo repository.ExchangeDB
}

// NewRequestService creates a new RequestService instance
func NewRequestService(repo repository.ExchangeDB) *RequestService {
	return &RequestService{
		repo: repo,
	}
}

// Submit records a direct buy request for an item, bypassing the cart
func (s *RequestService) Submit(buyer, itemID string, contact models.Contact) (models.BuyRequest, error) {
	if buyer == "" || itemID == "" {
		return models.BuyRequest{}, fmt.Errorf("service: %w - missing buyer or itemID", exchangeerrors.ErrInvalidInput)
	}
	if contact.Email == "" || contact.Phone == "" {
		return models.BuyRequest{}, fmt.Errorf("service: %w - missing contact email or phone", exchangeerrors.ErrInvalidInput)
	}

	req := models.BuyRequest{
		RequestID:    utils.GenerateID(),
		Buyer:        buyer,
		ItemID:       itemID,
		ContactEmail: contact.Email,
		ContactPhone: contact.Phone,
		Message:      contact.Message,
		Status:       models.RequestPending,
		RequestedAt:  time.Now().UTC(),
	}

	err := s.repo.CreateRequest(req)
	metrics.RequestsSubmitted.WithLabelValues(metrics.Result(err), "direct").Inc()
	if err != nil {
		return models.BuyRequest{}, fmt.Errorf("service: failed to submit request for item %s by buyer %s: %w", itemID, buyer, err)
	}

	return req, nil
}

// ForSeller returns requests for items owned by seller, minus the ones the
// seller has cleared, newest first
func (s *RequestService) ForSeller(seller string) ([]models.RequestWithItem, error) {
	if seller == "" {
		return nil, fmt.Errorf("service: %w - empty seller", exchangeerrors.ErrInvalidInput)
	}

	rows, err := s.repo.RequestsForSeller(seller)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get requests for seller %s: %w", seller, err)
	}
	return rows, nil
}

// ForBuyer is the buyer-side mirror of ForSeller
func (s *RequestService) ForBuyer(buyer string) ([]models.RequestWithItem, error) {
	if buyer == "" {
		return nil, fmt.Errorf("service: %w - empty buyer", exchangeerrors.ErrInvalidInput)
	}

	rows, err := s.repo.RequestsForBuyer(buyer)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get requests for buyer %s: %w", buyer, err)
	}
	return rows, nil
}

// ClearForBuyer hides a settled request from the buyer's listing. The row
// keeps its status and stays visible to the seller.
func (s *RequestService) ClearForBuyer(requestID, buyer string) error {
	if requestID == "" || buyer == "" {
		return fmt.Errorf("service: %w - missing requestID or buyer", exchangeerrors.ErrInvalidInput)
	}

	if err := s.repo.ClearForBuyer(requestID, buyer); err != nil {
		return fmt.Errorf("service: failed to clear request %s for buyer %s: %w", requestID, buyer, err)
	}
	return nil
}

// ClearForSeller hides a settled request from the seller's listing
func (s *RequestService) ClearForSeller(requestID, seller string) error {
	if requestID == "" || seller == "" {
		return fmt.Errorf("service: %w - missing requestID or seller", exchangeerrors.ErrInvalidInput)
	}

	if err := s.repo.ClearForSeller(requestID, seller); err != nil {
		return fmt.Errorf("service: failed to clear request %s for seller %s: %w", requestID, seller, err)
	}
	return nil
}
