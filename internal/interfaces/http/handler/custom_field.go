package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appinventory "github.com/inventoria/backend/internal/application/inventory"
	"github.com/inventoria/backend/internal/domain/schema"
)

// CustomFieldHandler handles custom field HTTP requests
type CustomFieldHandler struct {
	BaseHandler
	fieldService *appinventory.CustomFieldService
}

// NewCustomFieldHandler creates a new custom field handler
func NewCustomFieldHandler(fieldService *appinventory.CustomFieldService) *CustomFieldHandler {
	return &CustomFieldHandler{fieldService: fieldService}
}

// RegisterRoutes registers custom field routes
func (h *CustomFieldHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/inventories/:id/fields", h.List)
	rg.POST("/inventories/:id/fields", h.Create)
	rg.PUT("/inventories/:id/fields/reorder", h.Reorder)

	fields := rg.Group("/fields")
	{
		fields.PUT("/:id", h.Update)
		fields.DELETE("/:id", h.Delete)
	}
}

// CreateFieldRequest is the payload for custom field creation
type CreateFieldRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	FieldType   string `json:"field_type" binding:"required"`
	ShowInTable bool   `json:"show_in_table"`
}

// UpdateFieldRequest is the payload for custom field update. The field
// type is fixed at creation.
type UpdateFieldRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ShowInTable bool   `json:"show_in_table"`
}

// ReorderFieldsRequest carries the full ordered field ID list
type ReorderFieldsRequest struct {
	FieldIDs []uuid.UUID `json:"field_ids" binding:"required,min=1"`
}

// FieldResponse is the API shape of a custom field
type FieldResponse struct {
	ID          uuid.UUID `json:"id"`
	InventoryID uuid.UUID `json:"inventory_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FieldType   string    `json:"field_type"`
	ShowInTable bool      `json:"show_in_table"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

func newFieldResponse(info appinventory.FieldInfo) FieldResponse {
	return FieldResponse{
		ID:          info.ID,
		InventoryID: info.InventoryID,
		Title:       info.Title,
		Description: info.Description,
		FieldType:   string(info.FieldType),
		ShowInTable: info.ShowInTable,
		SortOrder:   info.SortOrder,
		CreatedAt:   info.CreatedAt,
	}
}

// List godoc
// @Summary      List custom fields
// @Description  Fields are returned in display order.
// @Tags         fields
// @Produce      json
// @Param        id path string true "Inventory ID"
// @Success      200 {object} dto.Response{data=[]FieldResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inventories/{id}/fields [get]
func (h *CustomFieldHandler) List(c *gin.Context) {
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

	infos, err := h.fieldService.ListFields(c.Request.Context(), actor, inventoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]FieldResponse, 0, len(infos))
	for _, info := range infos {
		responses = append(responses, newFieldResponse(info))
	}
	h.Success(c, responses)
}

// Create godoc
// @Summary      Create a custom field
// @Description  Each inventory holds at most three fields of each type.
// @Tags         fields
// @Accept       json
// @Produce      json
// @Param        id path string true "Inventory ID"
// @Param        request body CreateFieldRequest true "Field data"
// @Success      201 {object} dto.Response{data=FieldResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inventories/{id}/fields [post]
func (h *CustomFieldHandler) Create(c *gin.Context) {
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

	var req CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.fieldService.CreateField(c.Request.Context(), appinventory.CreateFieldInput{
		Actor:       actor,
		InventoryID: inventoryID,
		Title:       req.Title,
		Description: req.Description,
		FieldType:   schema.FieldType(req.FieldType),
		ShowInTable: req.ShowInTable,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newFieldResponse(*info))
}

// Update godoc
// @Summary      Update a custom field
// @Tags         fields
// @Accept       json
// @Produce      json
// @Param        id path string true "Field ID"
// @Param        request body UpdateFieldRequest true "Field data"
// @Success      200 {object} dto.Response{data=FieldResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /fields/{id} [put]
func (h *CustomFieldHandler) Update(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid field ID")
		return
	}

	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.fieldService.UpdateField(c.Request.Context(), appinventory.UpdateFieldInput{
		Actor:       actor,
		FieldID:     id,
		Title:       req.Title,
		Description: req.Description,
		ShowInTable: req.ShowInTable,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newFieldResponse(*info))
}

// Delete godoc
// @Summary      Delete a custom field
// @Description  Removes the field definition and expunges its values from
// @Description  every item in the inventory.
// @Tags         fields
// @Param        id path string true "Field ID"
// @Success      204
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /fields/{id} [delete]
func (h *CustomFieldHandler) Delete(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid field ID")
		return
	}

	if err := h.fieldService.DeleteField(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Reorder godoc
// @Summary      Reorder custom fields
// @Description  Accepts the complete ordered list of the inventory's field
// @Description  IDs and rewrites their sort order.
// @Tags         fields
// @Accept       json
// @Produce      json
// @Param        id path string true "Inventory ID"
// @Param        request body ReorderFieldsRequest true "Ordered field IDs"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inventories/{id}/fields/reorder [put]
func (h *CustomFieldHandler) Reorder(c *gin.Context) {
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

	var req ReorderFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	err = h.fieldService.ReorderFields(c.Request.Context(), appinventory.ReorderFieldsInput{
		Actor:       actor,
		InventoryID: inventoryID,
		FieldIDs:    req.FieldIDs,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Fields reordered"})
}
