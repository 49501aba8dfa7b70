package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appinventory "github.com/inventoria/backend/internal/application/inventory"
)

// ItemHandler handles item HTTP requests
type ItemHandler struct {
	BaseHandler
	itemService *appinventory.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *appinventory.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// RegisterRoutes registers item routes. Collection routes hang off the
// owning inventory, single-item routes use the item ID directly.
func (h *ItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/inventories/:id/items", h.List)
	rg.POST("/inventories/:id/items", h.Create)

	items := rg.Group("/items")
	{
		items.GET("/:id", h.GetByID)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}

// ItemRequest is the payload for creating or updating an item
type ItemRequest struct {
	CustomID    string                 `json:"custom_id"`
	FieldValues map[string]interface{} `json:"field_values"`
}

// ItemResponse is the API shape of an item
type ItemResponse struct {
	ID          uuid.UUID              `json:"id"`
	InventoryID uuid.UUID              `json:"inventory_id"`
	CustomID    string                 `json:"custom_id"`
	FieldValues map[string]interface{} `json:"field_values"`
	CreatedBy   uuid.UUID              `json:"created_by"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

func newItemResponse(info appinventory.ItemInfo) ItemResponse {
	return ItemResponse{
		ID:          info.ID,
		InventoryID: info.InventoryID,
		CustomID:    info.CustomID,
		FieldValues: info.FieldValues,
		CreatedBy:   info.CreatedBy,
		CreatedAt:   info.CreatedAt,
		UpdatedAt:   info.UpdatedAt,
	}
}

// Create godoc
// @Summary      Create an item
// @Description  Add an item to an inventory. An omitted custom_id is
// @Description  generated from the inventory's identifier format.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id path string true "Inventory ID"
// @Param        request body ItemRequest true "Item data"
// @Success      201 {object} dto.Response{data=ItemResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inventories/{id}/items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	inventoryID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid inventory ID")
		return
	}

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.itemService.CreateItem(c.Request.Context(), appinventory.CreateItemInput{
		Actor:       actor,
		InventoryID: inventoryID,
		CustomID:    req.CustomID,
		FieldValues: req.FieldValues,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newItemResponse(*info))
}

// List godoc
// @Summary      List items
// @Tags         items
// @Produce      json
// @Param        id path string true "Inventory ID"
// @Param        search query string false "Match against custom ID"
// @Success      200 {object} dto.Response{data=[]ItemResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inventories/{id}/items [get]
func (h *ItemHandler) List(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	inventoryID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid inventory ID")
		return
	}

	filter, ok := parseFilter(c)
	if !ok {
		h.BadRequest(c, "Invalid list parameters")
		return
	}

	infos, err := h.itemService.ListItems(c.Request.Context(), actor, inventoryID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]ItemResponse, 0, len(infos))
	for _, info := range infos {
		responses = append(responses, newItemResponse(info))
	}
	h.Success(c, responses)
}

// GetByID godoc
// @Summary      Get an item
// @Tags         items
// @Produce      json
// @Param        id path string true "Item ID"
// @Success      200 {object} dto.Response{data=ItemResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /items/{id} [get]
func (h *ItemHandler) GetByID(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	info, err := h.itemService.GetItem(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newItemResponse(*info))
}

// Update godoc
// @Summary      Update an item
// @Description  Replace an item's field values. A non-empty custom_id
// @Description  replaces the stored identifier.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id path string true "Item ID"
// @Param        request body ItemRequest true "Item data"
// @Success      200 {object} dto.Response{data=ItemResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /items/{id} [put]
func (h *ItemHandler) Update(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.itemService.UpdateItem(c.Request.Context(), appinventory.UpdateItemInput{
		Actor:       actor,
		ItemID:      id,
		CustomID:    req.CustomID,
		FieldValues: req.FieldValues,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newItemResponse(*info))
}

// Delete godoc
// @Summary      Delete an item
// @Tags         items
// @Param        id path string true "Item ID"
// @Success      204
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
