package handler

import (
	"fmt"
	"net/http"

	model "student-exchange/internal/models"
	"student-exchange/services/helpers"
	"student-exchange/utils"

	"github.com/gin-gonic/gin"
)

type RequestServiceInterface interface {
	Submit(buyer, itemID string, contact model.Contact) (model.BuyRequest, error)
	ForSeller(seller string) ([]model.RequestWithItem, error)
	ForBuyer(buyer string) ([]model.RequestWithItem, error)
	ClearForBuyer(requestID, buyer string) error
	ClearForSeller(requestID, seller string) error
}

type ArbitrationServiceInterface interface {
	Accept(seller, requestID string) (model.AcceptOutcome, error)
	Deny(seller, requestID, rawStatus string) (model.BuyRequest, error)
	Cancel(buyer, requestID string) (model.BuyRequest, error)
}

type RequestHandler struct {
	requests   RequestServiceInterface
	arbitrator ArbitrationServiceInterface
}

func NewRequestHandler(requests RequestServiceInterface, arbitrator ArbitrationServiceInterface) *RequestHandler {
	return &RequestHandler{requests: requests, arbitrator: arbitrator}
}

// SubmitHandler handles POST /buyrequests
func (h *RequestHandler) SubmitHandler(c *gin.Context) {
	buyer := helpers.CurrentUser(c)

	var req helpers.SubmitBuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitHandler", err)
		return
	}

	contact := model.Contact{
		Email:   req.ContactEmail,
		Phone:   req.ContactPhone,
		Message: req.Message,
	}

	created, err := h.requests.Submit(buyer, req.ItemID, contact)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SubmitHandler: failed to submit buy request", map[string]any{
			"buyer":   buyer,
			"item_id": req.ItemID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBuyRequestResponse(created), "buy request submitted successfully")
	helpers.LogSuccess("SubmitHandler", "buy request submitted successfully", map[string]any{
		"request_id": created.RequestID,
		"buyer":      buyer,
		"item_id":    created.ItemID,
	})
}

// SellerRequestsHandler handles GET /buyrequests/seller
func (h *RequestHandler) SellerRequestsHandler(c *gin.Context) {
	seller := helpers.CurrentUser(c)

	rows, err := h.requests.ForSeller(seller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SellerRequestsHandler: error retrieving requests", map[string]any{"seller": seller, "error": err.Error()})
		return
	}

	if rows == nil {
		rows = []model.RequestWithItem{}
	}

	utils.JSONResponse(c, http.StatusOK, rows, "buy requests retrieved successfully")
}

// BuyerRequestsHandler handles GET /buyrequests/buyer
func (h *RequestHandler) BuyerRequestsHandler(c *gin.Context) {
	buyer := helpers.CurrentUser(c)

	rows, err := h.requests.ForBuyer(buyer)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("BuyerRequestsHandler: error retrieving requests", map[string]any{"buyer": buyer, "error": err.Error()})
		return
	}

	if rows == nil {
		rows = []model.RequestWithItem{}
	}

	utils.JSONResponse(c, http.StatusOK, rows, "buy requests retrieved successfully")
}

// AcceptHandler handles PUT /buyrequests/:request_id/accept
func (h *RequestHandler) AcceptHandler(c *gin.Context) {
	seller := helpers.CurrentUser(c)
	requestID := c.Param("request_id")

	outcome, err := h.arbitrator.Accept(seller, requestID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AcceptHandler: failed to accept request", map[string]any{
			"request_id": requestID,
			"seller":     seller,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.AcceptResponse{
		Accepted:    helpers.NewBuyRequestResponse(outcome.Accepted),
		RejectedIDs: outcome.RejectedIDs,
		Item:        outcome.Item,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "buy request accepted, item is now on hold")
	helpers.LogSuccess("AcceptHandler", "buy request accepted", map[string]any{
		"request_id":     requestID,
		"seller":         seller,
		"buyer":          outcome.Accepted.Buyer,
		"rejected_count": len(outcome.RejectedIDs),
	})
}

// UpdateStatusHandler handles PUT /buyrequests/:request_id/status
func (h *RequestHandler) UpdateStatusHandler(c *gin.Context) {
	seller := helpers.CurrentUser(c)
	requestID := c.Param("request_id")

	var req helpers.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateStatusHandler", err)
		return
	}

	updated, err := h.arbitrator.Deny(seller, requestID, req.Status)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateStatusHandler: failed to update request status", map[string]any{
			"request_id": requestID,
			"seller":     seller,
			"status":     req.Status,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBuyRequestResponse(updated), "request status updated successfully")
	helpers.LogSuccess("UpdateStatusHandler", "request status updated", map[string]any{
		"request_id": requestID,
		"seller":     seller,
		"status":     string(updated.Status),
	})
}

// CancelHandler handles DELETE /buyrequests/:request_id. The verb is a
// delete but the row survives: cancellation is a status change.
func (h *RequestHandler) CancelHandler(c *gin.Context) {
	buyer := helpers.CurrentUser(c)
	requestID := c.Param("request_id")

	cancelled, err := h.arbitrator.Cancel(buyer, requestID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CancelHandler: failed to cancel request", map[string]any{
			"request_id": requestID,
			"buyer":      buyer,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBuyRequestResponse(cancelled), "buy request cancelled")
	helpers.LogSuccess("CancelHandler", "buy request cancelled", map[string]any{
		"request_id": requestID,
		"buyer":      buyer,
	})
}

// ClearBuyerHandler handles PUT /buyrequests/clear/:request_id
func (h *RequestHandler) ClearBuyerHandler(c *gin.Context) {
	buyer := helpers.CurrentUser(c)
	requestID := c.Param("request_id")

	if err := h.requests.ClearForBuyer(requestID, buyer); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ClearBuyerHandler: failed to clear notification", map[string]any{
			"request_id": requestID,
			"buyer":      buyer,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONMessage(c, http.StatusOK, "notification cleared")
	helpers.LogSuccess("ClearBuyerHandler", "notification cleared", map[string]any{
		"request_id": requestID,
		"buyer":      buyer,
	})
}

// ClearSellerHandler handles PUT /buyrequests/clear-seller/:request_id
func (h *RequestHandler) ClearSellerHandler(c *gin.Context) {
	seller := helpers.CurrentUser(c)
	requestID := c.Param("request_id")

	if err := h.requests.ClearForSeller(requestID, seller); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ClearSellerHandler: failed to clear notification", map[string]any{
			"request_id": requestID,
			"seller":     seller,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONMessage(c, http.StatusOK, "notification cleared")
	helpers.LogSuccess("ClearSellerHandler", "notification cleared", map[string]any{
		"request_id": requestID,
		"seller":     seller,
	})
}
