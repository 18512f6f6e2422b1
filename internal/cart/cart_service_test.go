package cart

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"student-exchange/internal/exchangeerrors"
	model "student-exchange/internal/models"
	"student-exchange/internal/repository"
)

// Tests Add
func TestCartService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockExchangeDB(ctrl)
	service := NewCartService(mockRepo)

	// Table-driven test cases
	tests := []struct {
		name          string
		buyer         string
		itemID        string
		mockSetup     func()
		expectError   bool
		expectedError error
	}{
		{
			name:   "valid_add",
			buyer:  "buyer1",
			itemID: "item1",
			mockSetup: func() {
				mockRepo.EXPECT().AddCartEntry(gomock.Any()).Return(nil)
			},
			expectError: false,
		},
		{
			name:          "empty_buyer",
			buyer:         "",
			itemID:        "item1",
			mockSetup:     func() {},
			expectError:   true,
			expectedError: exchangeerrors.ErrInvalidInput,
		},
		{
			name:          "empty_itemID",
			buyer:         "buyer1",
			itemID:        "",
			mockSetup:     func() {},
			expectError:   true,
			expectedError: exchangeerrors.ErrInvalidInput,
		},
		{
			name:   "duplicate_entry",
			buyer:  "buyer1",
			itemID: "item2",
			mockSetup: func() {
				mockRepo.EXPECT().AddCartEntry(gomock.Any()).Return(exchangeerrors.ErrDuplicateCartEntry)
			},
			expectError:   true,
			expectedError: exchangeerrors.ErrDuplicateCartEntry,
		},
		{
			name:   "unknown_item",
			buyer:  "buyer1",
			itemID: "missing",
			mockSetup: func() {
				mockRepo.EXPECT().AddCartEntry(gomock.Any()).Return(exchangeerrors.ErrItemNotFound)
			},
			expectError:   true,
			expectedError: exchangeerrors.ErrItemNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel() // Run tests concurrently

			tc.mockSetup()

			err := service.Add(tc.buyer, tc.itemID)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// Tests View, including the computed total
func TestCartService_View(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockExchangeDB(ctrl)
	service := NewCartService(mockRepo)

	cartItems := []model.Item{
		{ItemID: "item1", Seller: "seller1", Title: "Desk lamp", Price: 15},
		{ItemID: "item2", Seller: "seller2", Title: "Mini fridge", Price: 60},
	}

	tests := []struct {
		name          string
		buyer         string
		mockSetup     func()
		expectError   bool
		expectedError error
		expectedItems []model.Item
		expectedTotal float64
	}{
		{
			name:  "cart_with_items",
			buyer: "buyer1",
			mockSetup: func() {
				mockRepo.EXPECT().GetCartItems("buyer1").Return(cartItems, nil)
			},
			expectError:   false,
			expectedItems: cartItems,
			expectedTotal: 75,
		},
		{
			name:  "empty_cart",
			buyer: "buyer2",
			mockSetup: func() {
				mockRepo.EXPECT().GetCartItems("buyer2").Return([]model.Item{}, nil)
			},
			expectError:   false,
			expectedItems: []model.Item{},
			expectedTotal: 0,
		},
		{
			name:          "empty_buyer",
			buyer:         "",
			mockSetup:     func() {},
			expectError:   true,
			expectedError: exchangeerrors.ErrInvalidInput,
		},
		{
			name:  "repo_error",
			buyer: "buyer3",
			mockSetup: func() {
				mockRepo.EXPECT().GetCartItems("buyer3").Return(nil, errors.New("db failure"))
			},
			expectError:   true,
			expectedError: nil, // Service wraps repo error
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel() // Run tests concurrently

			tc.mockSetup()

			items, total, err := service.View(tc.buyer)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.expectedItems, items)
				require.Equal(t, tc.expectedTotal, total)
			}
		})
	}
}

// Tests Remove and Clear
func TestCartService_RemoveAndClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockExchangeDB(ctrl)
	service := NewCartService(mockRepo)

	t.Run("valid_remove", func(t *testing.T) {
		mockRepo.EXPECT().RemoveCartEntry("buyer1", "item1").Return(nil)
		require.NoError(t, service.Remove("buyer1", "item1"))
	})

	t.Run("remove_empty_itemID", func(t *testing.T) {
		err := service.Remove("buyer1", "")
		require.ErrorIs(t, err, exchangeerrors.ErrInvalidInput)
	})

	t.Run("valid_clear", func(t *testing.T) {
		mockRepo.EXPECT().ClearCart("buyer1").Return(nil)
		require.NoError(t, service.Clear("buyer1"))
	})

	t.Run("clear_empty_buyer", func(t *testing.T) {
		err := service.Clear("")
		require.ErrorIs(t, err, exchangeerrors.ErrInvalidInput)
	})

	t.Run("clear_repo_error", func(t *testing.T) {
		mockRepo.EXPECT().ClearCart("buyer1").Return(errors.New("db failure"))
		require.Error(t, service.Clear("buyer1"))
	})
}

// Tests Checkout
func TestCartService_Checkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockExchangeDB(ctrl)
	service := NewCartService(mockRepo)

	contact := model.Contact{Email: "buyer1@example.edu", Phone: "555-0100", Message: "after 5pm please"}

	// Table-driven test cases
	tests := []struct {
		name          string
		buyer         string
		contact       model.Contact
		mockSetup     func()
		expectError   bool
		expectedError error
	}{
		{
			name:    "valid_checkout",
			buyer:   "buyer1",
			contact: contact,
			mockSetup: func() {
				mockRepo.EXPECT().CheckoutCart("buyer1", gomock.Any()).
					DoAndReturn(func(buyer string, build func(model.Item) model.BuyRequest) ([]model.BuyRequest, error) {
						// Exercise the builder the way the repo would.
						reqs := []model.BuyRequest{
							build(model.Item{ItemID: "item1", Price: 15}),
							build(model.Item{ItemID: "item2", Price: 60}),
						}
						return reqs, nil
					})
			},
			expectError: false,
		},
		{
			name:          "empty_buyer",
			buyer:         "",
			contact:       contact,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: exchangeerrors.ErrInvalidInput,
		},
		{
			name:          "missing_email",
			buyer:         "buyer1",
			contact:       model.Contact{Phone: "555-0100"},
			mockSetup:     func() {},
			expectError:   true,
			expectedError: exchangeerrors.ErrInvalidInput,
		},
		{
			name:          "missing_phone",
			buyer:         "buyer1",
			contact:       model.Contact{Email: "buyer1@example.edu"},
			mockSetup:     func() {},
			expectError:   true,
			expectedError: exchangeerrors.ErrInvalidInput,
		},
		{
			name:    "empty_cart",
			buyer:   "buyer2",
			contact: contact,
			mockSetup: func() {
				mockRepo.EXPECT().CheckoutCart("buyer2", gomock.Any()).
					Return(nil, exchangeerrors.ErrEmptyCart)
			},
			expectError:   true,
			expectedError: exchangeerrors.ErrEmptyCart,
		},
		{
			name:    "duplicate_pending_request",
			buyer:   "buyer3",
			contact: contact,
			mockSetup: func() {
				mockRepo.EXPECT().CheckoutCart("buyer3", gomock.Any()).
					Return(nil, exchangeerrors.ErrDuplicateRequest)
			},
			expectError:   true,
			expectedError: exchangeerrors.ErrDuplicateRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			reqs, err := service.Checkout(tc.buyer, tc.contact)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)
				require.Len(t, reqs, 2)
				for _, req := range reqs {
					_, parseErr := uuid.Parse(req.RequestID)
					require.NoError(t, parseErr, "RequestID should be a valid UUID")
					require.Equal(t, tc.buyer, req.Buyer)
					require.Equal(t, tc.contact.Email, req.ContactEmail)
					require.Equal(t, tc.contact.Phone, req.ContactPhone)
					require.Equal(t, tc.contact.Message, req.Message)
					require.Equal(t, model.RequestPending, req.Status)
				}
			}
		})
	}
}
