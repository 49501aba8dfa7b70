package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appinventory "github.com/inventoria/backend/internal/application/inventory"
	"github.com/inventoria/backend/internal/domain/inventory"
)

// InventoryHandler handles inventory HTTP requests
type InventoryHandler struct {
	BaseHandler
	inventoryService *appinventory.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *appinventory.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inventories := rg.Group("/inventories")
	{
		inventories.POST("", h.Create)
		inventories.GET("", h.List)
		inventories.GET("/:id", h.GetByID)
		inventories.PUT("/:id", h.Update)
		inventories.DELETE("/:id", h.Delete)
		inventories.GET("/:id/access", h.ListAccess)
		inventories.POST("/:id/access", h.GrantAccess)
		inventories.DELETE("/:id/access/:user_id", h.RevokeAccess)
	}
}

// InventoryRequest is the payload for creating or updating an inventory
type InventoryRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	IsPublic    bool   `json:"is_public"`
}

// GrantAccessRequest identifies the user receiving a write grant
type GrantAccessRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

// AccessGrantResponse is the API shape of a write grant
type AccessGrantResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// InventoryResponse is the API shape of an inventory
type InventoryResponse struct {
	ID           uuid.UUID             `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Category     string                `json:"category"`
	IsPublic     bool                  `json:"is_public"`
	OwnerID      uuid.UUID             `json:"owner_id"`
	AccessGrants []AccessGrantResponse `json:"access_grants"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

func newInventoryResponse(info appinventory.InventoryInfo) InventoryResponse {
	grants := make([]AccessGrantResponse, 0, len(info.AccessGrants))
	for _, g := range info.AccessGrants {
		grants = append(grants, AccessGrantResponse{UserID: g.UserID, CreatedAt: g.CreatedAt})
	}
	return InventoryResponse{
		ID:           info.ID,
		Title:        info.Title,
		Description:  info.Description,
		Category:     string(info.Category),
		IsPublic:     info.IsPublic,
		OwnerID:      info.OwnerID,
		AccessGrants: grants,
		CreatedAt:    info.CreatedAt,
		UpdatedAt:    info.UpdatedAt,
	}
}

// Create godoc
// @Summary      Create an inventory
// @Tags         inventories
// @Accept       json
// @Produce      json
// @Param        request body InventoryRequest true "Inventory data"
// @Success      201 {object} dto.Response{data=InventoryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inventories [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req InventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.inventoryService.CreateInventory(c.Request.Context(), appinventory.CreateInventoryInput{
		Actor:       actor,
		Title:       req.Title,
		Description: req.Description,
		Category:    inventory.Category(req.Category),
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newInventoryResponse(*info))
}

// List godoc
// @Summary      List inventories
// @Description  Admins see everything, other users see public inventories
// @Description  plus those they own or hold a write grant on.
// @Tags         inventories
// @Produce      json
// @Param        search query string false "Match against title or description"
// @Param        category query string false "Filter by category"
// @Success      200 {object} dto.Response{data=[]InventoryResponse}
// @Security     BearerAuth
// @Router       /inventories [get]
func (h *InventoryHandler) List(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	filter, ok := parseFilter(c)
	if !ok {
		h.BadRequest(c, "Invalid list parameters")
		return
	}
	if category := c.Query("category"); category != "" {
		filter.Filters["category"] = category
	}

	infos, err := h.inventoryService.ListInventories(c.Request.Context(), actor, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]InventoryResponse, 0, len(infos))
	for _, info := range infos {
		responses = append(responses, newInventoryResponse(info))
	}
	h.Success(c, responses)
}

// GetByID godoc
// @Summary      Get an inventory
// @Tags         inventories
// @Produce      json
// @Param        id path string true "Inventory ID"
// @Success      200 {object} dto.Response{data=InventoryResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inventories/{id} [get]
func (h *InventoryHandler) GetByID(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid inventory ID")
		return
	}

	info, err := h.inventoryService.GetInventory(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newInventoryResponse(*info))
}

// Update godoc
// @Summary      Update an inventory
// @Description  Only the owner or an admin may change inventory settings.
// @Tags         inventories
// @Accept       json
// @Produce      json
// @Param        id path string true "Inventory ID"
// @Param        request body InventoryRequest true "Inventory data"
// @Success      200 {object} dto.Response{data=InventoryResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inventories/{id} [put]
func (h *InventoryHandler) Update(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid inventory ID")
		return
	}

	var req InventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.inventoryService.UpdateInventory(c.Request.Context(), appinventory.UpdateInventoryInput{
		Actor:       actor,
		InventoryID: id,
		Title:       req.Title,
		Description: req.Description,
		Category:    inventory.Category(req.Category),
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newInventoryResponse(*info))
}

// Delete godoc
// @Summary      Delete an inventory
// @Description  Removes the inventory with its items, fields, format and grants.
// @Tags         inventories
// @Param        id path string true "Inventory ID"
// @Success      204
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inventories/{id} [delete]
func (h *InventoryHandler) Delete(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid inventory ID")
		return
	}

	if err := h.inventoryService.DeleteInventory(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListAccess godoc
// @Summary      List write grants
// @Tags         inventories
// @Produce      json
// @Param        id path string true "Inventory ID"
// @Success      200 {object} dto.Response{data=[]AccessGrantResponse}
// @Security     BearerAuth
// @Router       /inventories/{id}/access [get]
func (h *InventoryHandler) ListAccess(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid inventory ID")
		return
	}

	grants, err := h.inventoryService.ListAccessGrants(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]AccessGrantResponse, 0, len(grants))
	for _, g := range grants {
		responses = append(responses, AccessGrantResponse{UserID: g.UserID, CreatedAt: g.CreatedAt})
	}
	h.Success(c, responses)
}

// GrantAccess godoc
// @Summary      Grant write access
// @Description  Gives a user write access to the inventory's items.
// @Tags         inventories
// @Accept       json
// @Param        id path string true "Inventory ID"
// @Param        request body GrantAccessRequest true "Grant target"
// @Success      204
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inventories/{id}/access [post]
func (h *InventoryHandler) GrantAccess(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid inventory ID")
		return
	}

	var req GrantAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	err = h.inventoryService.GrantAccess(c.Request.Context(), appinventory.AccessGrantInput{
		Actor:       actor,
		InventoryID: id,
		UserID:      req.UserID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RevokeAccess godoc
// @Summary      Revoke write access
// @Tags         inventories
// @Param        id path string true "Inventory ID"
// @Param        user_id path string true "User ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inventories/{id}/access/{user_id} [delete]
func (h *InventoryHandler) RevokeAccess(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid inventory ID")
		return
	}
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	err = h.inventoryService.RevokeAccess(c.Request.Context(), appinventory.AccessGrantInput{
		Actor:       actor,
		InventoryID: id,
		UserID:      userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
