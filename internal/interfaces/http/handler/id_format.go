package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appinventory "github.com/inventoria/backend/internal/application/inventory"
	"github.com/inventoria/backend/internal/domain/customid"
)

// IDFormatHandler handles identifier format HTTP requests
type IDFormatHandler struct {
	BaseHandler
	formatService *appinventory.IDFormatService
}

// NewIDFormatHandler creates a new identifier format handler
func NewIDFormatHandler(formatService *appinventory.IDFormatService) *IDFormatHandler {
	return &IDFormatHandler{formatService: formatService}
}

// RegisterRoutes registers identifier format routes
func (h *IDFormatHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/inventories/:id/id-format", h.Get)
	rg.PUT("/inventories/:id/id-format", h.Update)
	rg.POST("/id-format/preview", h.Preview)
}

// IDFormatRequest carries the element list of an identifier format
type IDFormatRequest struct {
	Elements []customid.Element `json:"elements" binding:"required,min=1"`
}

// IDFormatResponse is the API shape of an identifier format
type IDFormatResponse struct {
	InventoryID uuid.UUID          `json:"inventory_id"`
	Elements    []customid.Element `json:"elements"`
	Preview     string             `json:"preview"`
	IsDefault   bool               `json:"is_default"`
}

// PreviewResponse carries a rendered sample identifier
type PreviewResponse struct {
	Preview string `json:"preview"`
}

func newIDFormatResponse(info appinventory.IDFormatInfo) IDFormatResponse {
	return IDFormatResponse{
		InventoryID: info.InventoryID,
		Elements:    info.Elements,
		Preview:     info.Preview,
		IsDefault:   info.IsDefault,
	}
}

// Get godoc
// @Summary      Get the identifier format
// @Description  Returns the stored format, or the default sequence format
// @Description  when none has been saved.
// @Tags         id-format
// @Produce      json
// @Param        id path string true "Inventory ID"
// @Success      200 {object} dto.Response{data=IDFormatResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inventories/{id}/id-format [get]
func (h *IDFormatHandler) Get(c *gin.Context) {
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

	info, err := h.formatService.GetFormat(c.Request.Context(), actor, inventoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newIDFormatResponse(*info))
}

// Update godoc
// @Summary      Replace the identifier format
// @Description  Only the owner or an admin may change the format. Existing
// @Description  item identifiers are not rewritten.
// @Tags         id-format
// @Accept       json
// @Produce      json
// @Param        id path string true "Inventory ID"
// @Param        request body IDFormatRequest true "Element list"
// @Success      200 {object} dto.Response{data=IDFormatResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inventories/{id}/id-format [put]
func (h *IDFormatHandler) Update(c *gin.Context) {
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

	var req IDFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.formatService.UpdateFormat(c.Request.Context(), appinventory.UpdateIDFormatInput{
		Actor:       actor,
		InventoryID: inventoryID,
		Elements:    req.Elements,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newIDFormatResponse(*info))
}

// Preview godoc
// @Summary      Preview an identifier format
// @Description  Renders a sample identifier from the submitted elements
// @Description  without saving anything.
// @Tags         id-format
// @Accept       json
// @Produce      json
// @Param        request body IDFormatRequest true "Element list"
// @Success      200 {object} dto.Response{data=PreviewResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /id-format/preview [post]
func (h *IDFormatHandler) Preview(c *gin.Context) {
	var req IDFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	preview, err := h.formatService.PreviewFormat(c.Request.Context(), appinventory.PreviewIDFormatInput{
		Elements: req.Elements,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, PreviewResponse{Preview: preview})
}
