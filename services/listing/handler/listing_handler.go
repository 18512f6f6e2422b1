package handler

import (
	"fmt"
	"net/http"

	model "student-exchange/internal/models"
	"student-exchange/services/helpers"
	"student-exchange/utils"

	"github.com/gin-gonic/gin"
)

type ListingServiceInterface interface {
	CreateItem(seller, title, description string, price float64, category, image string) (model.Item, error)
	GetItems(filter model.ItemFilter) ([]model.Item, error)
	GetItem(itemID string) (model.Item, error)
	UpdateItem(seller, itemID string, patch model.ItemPatch) (model.Item, error)
	OverrideStatus(seller, itemID, rawStatus, acceptedBuyer string) (model.Item, error)
	DeleteItem(seller, itemID string) error
}

type ListingHandler struct {
	service ListingServiceInterface
}

func NewListingHandler(service ListingServiceInterface) *ListingHandler {
	return &ListingHandler{service: service}
}

// CreateItemHandler handles POST /items
func (h *ListingHandler) CreateItemHandler(c *gin.Context) {
	seller := helpers.CurrentUser(c)

	var req helpers.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateItemHandler", err)
		return
	}

	item, err := h.service.CreateItem(seller, req.Title, req.Description, req.Price, req.Category, req.Image)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateItemHandler: failed to create item", map[string]any{
			"seller": seller,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item, "item listed successfully")
	helpers.LogSuccess("CreateItemHandler", "item listed successfully", map[string]any{
		"item_id": item.ItemID,
		"seller":  seller,
		"price":   item.Price,
	})
}

// GetItemsHandler handles GET /items
func (h *ListingHandler) GetItemsHandler(c *gin.Context) {
	filter := model.ItemFilter{
		Seller:   c.Query("seller"),
		Category: c.Query("category"),
	}
	if raw := c.Query("status"); raw != "" {
		status, ok := model.ParseItemStatus(raw)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("unknown status value %q", raw), "unknown status value")
			return
		}
		filter.Status = status
	}

	items, err := h.service.GetItems(filter)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemsHandler: error retrieving items", map[string]any{"error": err.Error()})
		return
	}

	if items == nil {
		items = []model.Item{}
	}

	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
}

// UpdateItemHandler handles PUT /items/:item_id
func (h *ListingHandler) UpdateItemHandler(c *gin.Context) {
	seller := helpers.CurrentUser(c)
	itemID := c.Param("item_id")

	var req helpers.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateItemHandler", err)
		return
	}

	patch := model.ItemPatch{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
	}

	item, err := h.service.UpdateItem(seller, itemID, patch)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateItemHandler: failed to update item", map[string]any{
			"item_id": itemID,
			"seller":  seller,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "item updated successfully")
	helpers.LogSuccess("UpdateItemHandler", "item updated successfully", map[string]any{
		"item_id": itemID,
		"seller":  seller,
	})
}

// OverrideStatusHandler handles PUT /items/:item_id/status
func (h *ListingHandler) OverrideStatusHandler(c *gin.Context) {
	seller := helpers.CurrentUser(c)
	itemID := c.Param("item_id")

	var req helpers.OverrideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "OverrideStatusHandler", err)
		return
	}

	item, err := h.service.OverrideStatus(seller, itemID, req.Status, req.AcceptedBuyer)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("OverrideStatusHandler: failed to set item status", map[string]any{
			"item_id": itemID,
			"seller":  seller,
			"status":  req.Status,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "item status updated successfully")
	helpers.LogSuccess("OverrideStatusHandler", "item status updated successfully", map[string]any{
		"item_id": itemID,
		"seller":  seller,
		"status":  string(item.Status),
	})
}

// DeleteItemHandler handles DELETE /items/:item_id
func (h *ListingHandler) DeleteItemHandler(c *gin.Context) {
	seller := helpers.CurrentUser(c)
	itemID := c.Param("item_id")

	if err := h.service.DeleteItem(seller, itemID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteItemHandler: failed to delete item", map[string]any{
			"item_id": itemID,
			"seller":  seller,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONMessage(c, http.StatusOK, "item deleted successfully")
	helpers.LogSuccess("DeleteItemHandler", "item deleted successfully", map[string]any{
		"item_id": itemID,
		"seller":  seller,
	})
}
