package arbitration

import (
	"fmt"

	"student-exchange/internal/exchangeerrors"
	"student-exchange/internal/metrics"
	"student-exchange/internal/models"
	"student-exchange/internal/repository"
)

// ArbitrationService enforces the buy-request state machine:
//
//	Pending -> Accepted | Rejected | Cancelled
//	Accepted -> Cancelled
//
// Every other transition fails. Accept is the only multi-row operation and
// runs as a single atomic unit inside the repository.
type ArbitrationService struct {
	repo repository.ExchangeDB
}

// NewArbitrationService creates a new ArbitrationService instance
func NewArbitrationService(repo repository.ExchangeDB) *ArbitrationService {
	return &ArbitrationService{
		repo: repo,
	}
}

// Accept grants the item to one pending request: the request becomes
// Accepted, every other pending request for the same item becomes Rejected,
// and the item goes On Hold with the winning buyer recorded.
func (s *ArbitrationService) Accept(seller, requestID string) (models.AcceptOutcome, error) {
	if seller == "" || requestID == "" {
		return models.AcceptOutcome{}, fmt.Errorf("service: %w - missing seller or requestID", exchangeerrors.ErrInvalidInput)
	}

	outcome, err := s.repo.AcceptRequest(seller, requestID)
	metrics.RequestsAccepted.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return models.AcceptOutcome{}, fmt.Errorf("service: failed to accept request %s: %w", requestID, err)
	}

	return outcome, nil
}

// Deny moves a pending request to Rejected, or back to Pending as a reset.
// Any other target status is rejected outright.
func (s *ArbitrationService) Deny(seller, requestID, rawStatus string) (models.BuyRequest, error) {
	if seller == "" || requestID == "" {
		return models.BuyRequest{}, fmt.Errorf("service: %w - missing seller or requestID", exchangeerrors.ErrInvalidInput)
	}

	target, ok := models.ParseRequestStatus(rawStatus)
	if !ok {
		return models.BuyRequest{}, fmt.Errorf("service: %w - %q", exchangeerrors.ErrInvalidStatus, rawStatus)
	}
	if target != models.RequestRejected && target != models.RequestPending {
		return models.BuyRequest{}, fmt.Errorf("service: %w - deny target must be Rejected or Pending, got %s", exchangeerrors.ErrInvalidInput, target)
	}

	req, err := s.repo.DenyRequest(seller, requestID, target)
	metrics.RequestsDenied.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return models.BuyRequest{}, fmt.Errorf("service: failed to deny request %s: %w", requestID, err)
	}

	return req, nil
}

// Cancel is the buyer-initiated cancellation, allowed from Pending and from
// Accepted. Cancelling an accepted request releases the held item back to
// Available instead of stranding it On Hold with no active holder.
func (s *ArbitrationService) Cancel(buyer, requestID string) (models.BuyRequest, error) {
	if buyer == "" || requestID == "" {
		return models.BuyRequest{}, fmt.Errorf("service: %w - missing buyer or requestID", exchangeerrors.ErrInvalidInput)
	}

	req, err := s.repo.CancelRequest(buyer, requestID)
	metrics.RequestsCancelled.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return models.BuyRequest{}, fmt.Errorf("service: failed to cancel request %s: %w", requestID, err)
	}

	return req, nil
}
