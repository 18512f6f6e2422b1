package handler

import (
	"fmt"
	"net/http"

	model "student-exchange/internal/models"
	"student-exchange/services/helpers"
	"student-exchange/utils"

	"github.com/gin-gonic/gin"
)

type CartServiceInterface interface {
	Add(buyer, itemID string) error
	View(buyer string) ([]model.Item, float64, error)
	Remove(buyer, itemID string) error
	Clear(buyer string) error
	Checkout(buyer string, contact model.Contact) ([]model.BuyRequest, error)
}

type CartHandler struct {
	service CartServiceInterface
}

func NewCartHandler(service CartServiceInterface) *CartHandler {
	return &CartHandler{service: service}
}

// AddToCartHandler handles POST /cart/add
func (h *CartHandler) AddToCartHandler(c *gin.Context) {
	buyer := helpers.CurrentUser(c)

	var req helpers.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddToCartHandler", err)
		return
	}

	if err := h.service.Add(buyer, req.ItemID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddToCartHandler: failed to add to cart", map[string]any{
			"buyer":   buyer,
			"item_id": req.ItemID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONMessage(c, http.StatusCreated, "item added to cart")
	helpers.LogSuccess("AddToCartHandler", "item added to cart", map[string]any{
		"buyer":   buyer,
		"item_id": req.ItemID,
	})
}

// ViewCartHandler handles GET /cart
func (h *CartHandler) ViewCartHandler(c *gin.Context) {
	buyer := helpers.CurrentUser(c)

	items, total, err := h.service.View(buyer)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ViewCartHandler: error retrieving cart", map[string]any{"buyer": buyer, "error": err.Error()})
		return
	}

	if items == nil {
		items = []model.Item{}
	}

	utils.JSONResponse(c, http.StatusOK, helpers.CartResponse{Items: items, Total: total}, "cart retrieved successfully")
}

// RemoveFromCartHandler handles DELETE /cart/:item_id
func (h *CartHandler) RemoveFromCartHandler(c *gin.Context) {
	buyer := helpers.CurrentUser(c)
	itemID := c.Param("item_id")

	if err := h.service.Remove(buyer, itemID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RemoveFromCartHandler: failed to remove from cart", map[string]any{
			"buyer":   buyer,
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONMessage(c, http.StatusOK, "item removed from cart")
	helpers.LogSuccess("RemoveFromCartHandler", "item removed from cart", map[string]any{
		"buyer":   buyer,
		"item_id": itemID,
	})
}

// ClearCartHandler handles DELETE /cart/clear
func (h *CartHandler) ClearCartHandler(c *gin.Context) {
	buyer := helpers.CurrentUser(c)

	if err := h.service.Clear(buyer); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ClearCartHandler: failed to clear cart", map[string]any{"buyer": buyer, "error": err.Error()})
		return
	}

	utils.JSONMessage(c, http.StatusOK, "cart cleared")
	helpers.LogSuccess("ClearCartHandler", "cart cleared", map[string]any{"buyer": buyer})
}

// CheckoutHandler handles POST /cart/checkout
func (h *CartHandler) CheckoutHandler(c *gin.Context) {
	buyer := helpers.CurrentUser(c)

	var req helpers.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CheckoutHandler", err)
		return
	}

	contact := model.Contact{
		Email:   req.ContactEmail,
		Phone:   req.ContactPhone,
		Message: req.Message,
	}

	reqs, err := h.service.Checkout(buyer, contact)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CheckoutHandler: checkout failed", map[string]any{"buyer": buyer, "error": err.Error()})
		return
	}

	resp := make([]helpers.BuyRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		resp = append(resp, helpers.NewBuyRequestResponse(r))
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "checkout successful")
	helpers.LogSuccess("CheckoutHandler", "checkout successful", map[string]any{
		"buyer":          buyer,
		"requests_count": len(resp),
	})
}
