package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"student-exchange/internal/exchangeerrors"
	model "student-exchange/internal/models"
	"student-exchange/services/helpers"
)

// identityAs injects a verified caller the way the auth middleware would.
func identityAs(user string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(helpers.IdentityKey, user)
		c.Next()
	}
}

// Test SubmitHandler
func TestSubmitHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRequests := NewMockRequestServiceInterface(ctrl)
	mockArbitrator := NewMockArbitrationServiceInterface(ctrl)
	handler := NewRequestHandler(mockRequests, mockArbitrator)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(identityAs("buyer1"))
	router.POST("/buyrequests", handler.SubmitHandler)

	now := time.Now().UTC()
	contact := model.Contact{Email: "buyer1@example.edu", Phone: "555-0100", Message: "weekday evenings"}

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_submit",
			requestBody: helpers.SubmitBuyRequest{
				ItemID:       "item1",
				ContactEmail: contact.Email,
				ContactPhone: contact.Phone,
				Message:      contact.Message,
			},
			mockSetup: func() {
				mockRequests.EXPECT().
					Submit("buyer1", "item1", contact).
					Return(model.BuyRequest{
						RequestID:    "req1",
						Buyer:        "buyer1",
						ItemID:       "item1",
						ContactEmail: contact.Email,
						ContactPhone: contact.Phone,
						Message:      contact.Message,
						Status:       model.RequestPending,
						RequestedAt:  now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "buy request submitted successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "req1", data["request_id"])
				require.Equal(t, "buyer1", data["buyer"])
				require.Equal(t, "item1", data["item_id"])
				require.Equal(t, "Pending", data["status"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_item_id",
			requestBody: helpers.SubmitBuyRequest{
				ContactEmail: contact.Email,
				ContactPhone: contact.Phone,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "malformed_email",
			requestBody: helpers.SubmitBuyRequest{
				ItemID:       "item1",
				ContactEmail: "not-an-email",
				ContactPhone: contact.Phone,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "duplicate_pending",
			requestBody: helpers.SubmitBuyRequest{
				ItemID:       "item2",
				ContactEmail: contact.Email,
				ContactPhone: contact.Phone,
				Message:      contact.Message,
			},
			mockSetup: func() {
				mockRequests.EXPECT().
					Submit("buyer1", "item2", contact).
					Return(model.BuyRequest{}, exchangeerrors.ErrDuplicateRequest)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "pending request already exists for item",
		},
		{
			name: "unknown_item",
			requestBody: helpers.SubmitBuyRequest{
				ItemID:       "missing",
				ContactEmail: contact.Email,
				ContactPhone: contact.Phone,
				Message:      contact.Message,
			},
			mockSetup: func() {
				mockRequests.EXPECT().
					Submit("buyer1", "missing", contact).
					Return(model.BuyRequest{}, exchangeerrors.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "item not found",
		},
		{
			name: "service_generic_error",
			requestBody: helpers.SubmitBuyRequest{
				ItemID:       "item3",
				ContactEmail: contact.Email,
				ContactPhone: contact.Phone,
				Message:      contact.Message,
			},
			mockSetup: func() {
				mockRequests.EXPECT().
					Submit("buyer1", "item3", contact).
					Return(model.BuyRequest{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/buyrequests", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test SellerRequestsHandler
func TestSellerRequestsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRequests := NewMockRequestServiceInterface(ctrl)
	mockArbitrator := NewMockArbitrationServiceInterface(ctrl)
	handler := NewRequestHandler(mockRequests, mockArbitrator)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(identityAs("seller1"))
	router.GET("/buyrequests/seller", handler.SellerRequestsHandler)

	tests := []struct {
		name           string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		expectedLen    int
	}{
		{
			name: "seller_with_requests",
			mockSetup: func() {
				mockRequests.EXPECT().ForSeller("seller1").Return([]model.RequestWithItem{
					{
						BuyRequest: model.BuyRequest{RequestID: "req1", Buyer: "buyer1", ItemID: "item1", Status: model.RequestPending},
						ItemTitle:  "Desk lamp",
						ItemStatus: model.ItemAvailable,
						ItemPrice:  15,
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "buy requests retrieved successfully",
			expectedLen:    1,
		},
		{
			name: "seller_no_requests",
			mockSetup: func() {
				mockRequests.EXPECT().ForSeller("seller1").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "buy requests retrieved successfully",
			expectedLen:    0,
		},
		{
			name: "service_generic_error",
			mockSetup: func() {
				mockRequests.EXPECT().ForSeller("seller1").Return(nil, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/buyrequests/seller", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if w.Code == http.StatusOK {
				data := resp["data"].([]any)
				require.Len(t, data, tc.expectedLen)
			}
		})
	}
}

// Test AcceptHandler
func TestAcceptHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRequests := NewMockRequestServiceInterface(ctrl)
	mockArbitrator := NewMockArbitrationServiceInterface(ctrl)
	handler := NewRequestHandler(mockRequests, mockArbitrator)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(identityAs("seller1"))
	router.PUT("/buyrequests/:request_id/accept", handler.AcceptHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestID      string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:      "success_accept",
			requestID: "req1",
			mockSetup: func() {
				mockArbitrator.EXPECT().Accept("seller1", "req1").Return(model.AcceptOutcome{
					Accepted: model.BuyRequest{
						RequestID: "req1", Buyer: "buyer1", ItemID: "item1",
						Status: model.RequestAccepted, RequestedAt: now,
					},
					RejectedIDs: []string{"req2", "req3"},
					Item: model.Item{
						ItemID: "item1", Seller: "seller1",
						Status: model.ItemOnHold, AcceptedBuyer: "buyer1",
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "buy request accepted",
			validateData: func(t *testing.T, data map[string]any) {
				accepted := data["accepted"].(map[string]any)
				require.Equal(t, "req1", accepted["request_id"])
				require.Equal(t, "Accepted", accepted["status"])

				rejected := data["rejected_ids"].([]any)
				require.Len(t, rejected, 2)

				item := data["item"].(map[string]any)
				require.Equal(t, "On Hold", item["status"])
				require.Equal(t, "buyer1", item["accepted_buyer"])
			},
		},
		{
			name:      "unknown_request",
			requestID: "missing",
			mockSetup: func() {
				mockArbitrator.EXPECT().Accept("seller1", "missing").
					Return(model.AcceptOutcome{}, exchangeerrors.ErrRequestNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "buy request not found",
		},
		{
			name:      "item_already_held",
			requestID: "req4",
			mockSetup: func() {
				mockArbitrator.EXPECT().Accept("seller1", "req4").
					Return(model.AcceptOutcome{}, exchangeerrors.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "item already taken",
		},
		{
			name:      "request_not_pending",
			requestID: "req5",
			mockSetup: func() {
				mockArbitrator.EXPECT().Accept("seller1", "req5").
					Return(model.AcceptOutcome{}, exchangeerrors.ErrInvalidTransition)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "status transition not permitted",
		},
		{
			name:      "not_the_owner",
			requestID: "req6",
			mockSetup: func() {
				mockArbitrator.EXPECT().Accept("seller1", "req6").
					Return(model.AcceptOutcome{}, exchangeerrors.ErrForbidden)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "not found or unauthorized",
		},
		{
			name:      "service_generic_error",
			requestID: "req7",
			mockSetup: func() {
				mockArbitrator.EXPECT().Accept("seller1", "req7").
					Return(model.AcceptOutcome{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPut, "/buyrequests/"+tc.requestID+"/accept", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test UpdateStatusHandler
func TestUpdateStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRequests := NewMockRequestServiceInterface(ctrl)
	mockArbitrator := NewMockArbitrationServiceInterface(ctrl)
	handler := NewRequestHandler(mockRequests, mockArbitrator)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(identityAs("seller1"))
	router.PUT("/buyrequests/:request_id/status", handler.UpdateStatusHandler)

	tests := []struct {
		name           string
		requestID      string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success_reject",
			requestID:   "req1",
			requestBody: helpers.UpdateRequestStatusRequest{Status: "Rejected"},
			mockSetup: func() {
				mockArbitrator.EXPECT().Deny("seller1", "req1", "Rejected").
					Return(model.BuyRequest{RequestID: "req1", Status: model.RequestRejected}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "request status updated successfully",
		},
		{
			name:           "missing_status",
			requestID:      "req1",
			requestBody:    helpers.UpdateRequestStatusRequest{},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "unknown_status_value",
			requestID:   "req1",
			requestBody: helpers.UpdateRequestStatusRequest{Status: "Vetoed"},
			mockSetup: func() {
				mockArbitrator.EXPECT().Deny("seller1", "req1", "Vetoed").
					Return(model.BuyRequest{}, exchangeerrors.ErrInvalidStatus)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "unknown status value",
		},
		{
			name:        "terminal_row",
			requestID:   "req2",
			requestBody: helpers.UpdateRequestStatusRequest{Status: "Rejected"},
			mockSetup: func() {
				mockArbitrator.EXPECT().Deny("seller1", "req2", "Rejected").
					Return(model.BuyRequest{}, exchangeerrors.ErrInvalidTransition)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "status transition not permitted",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			reqBody, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPut, "/buyrequests/"+tc.requestID+"/status", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test CancelHandler and the clear handlers
func TestCancelAndClearHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRequests := NewMockRequestServiceInterface(ctrl)
	mockArbitrator := NewMockArbitrationServiceInterface(ctrl)
	handler := NewRequestHandler(mockRequests, mockArbitrator)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(identityAs("user1"))
	router.DELETE("/buyrequests/:request_id", handler.CancelHandler)
	router.PUT("/buyrequests/clear/:request_id", handler.ClearBuyerHandler)
	router.PUT("/buyrequests/clear-seller/:request_id", handler.ClearSellerHandler)

	t.Run("cancel_success", func(t *testing.T) {
		mockArbitrator.EXPECT().Cancel("user1", "req1").
			Return(model.BuyRequest{RequestID: "req1", Status: model.RequestCancelled}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/buyrequests/req1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		require.Equal(t, "Cancelled", data["status"])
	})

	t.Run("cancel_terminal_row", func(t *testing.T) {
		mockArbitrator.EXPECT().Cancel("user1", "req2").
			Return(model.BuyRequest{}, exchangeerrors.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodDelete, "/buyrequests/req2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("clear_buyer_success", func(t *testing.T) {
		mockRequests.EXPECT().ClearForBuyer("req1", "user1").Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/buyrequests/clear/req1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("clear_buyer_pending_row", func(t *testing.T) {
		mockRequests.EXPECT().ClearForBuyer("req3", "user1").Return(exchangeerrors.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPut, "/buyrequests/clear/req3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("clear_seller_success", func(t *testing.T) {
		mockRequests.EXPECT().ClearForSeller("req1", "user1").Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/buyrequests/clear-seller/req1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("clear_seller_not_owner", func(t *testing.T) {
		mockRequests.EXPECT().ClearForSeller("req4", "user1").Return(exchangeerrors.ErrForbidden)

		req := httptest.NewRequest(http.MethodPut, "/buyrequests/clear-seller/req4", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
