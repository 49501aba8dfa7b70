package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appidentity "github.com/inventoria/backend/internal/application/identity"
	"github.com/inventoria/backend/internal/interfaces/http/middleware"
)

// UserHandler handles admin user management HTTP requests
type UserHandler struct {
	BaseHandler
	userService *appidentity.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *appidentity.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers user management routes. All of them require
// the admin role.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.RequireAdmin())
	{
		users.GET("", h.List)
		users.GET("/:id", h.GetByID)
		users.POST("/block", h.Block)
		users.POST("/unblock", h.Unblock)
		users.POST("/promote", h.Promote)
		users.POST("/demote", h.Demote)
		users.POST("/delete", h.Delete)
	}
}

// BulkUserRequest selects the users a bulk operation applies to
type BulkUserRequest struct {
	UserIDs []uuid.UUID `json:"user_ids" binding:"required,min=1"`
}

// BulkUserResponse reports the outcome of a bulk operation
type BulkUserResponse struct {
	Affected int `json:"affected"`
	Skipped  int `json:"skipped"`
}

// List godoc
// @Summary      List users
// @Description  List all users with optional search and status/role filters
// @Tags         users
// @Produce      json
// @Param        search query string false "Match against username or email"
// @Param        status query string false "Filter by status"
// @Param        role query string false "Filter by role"
// @Success      200 {object} dto.Response{data=[]UserResponse}
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		h.BadRequest(c, "Invalid list parameters")
		return
	}
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	if role := c.Query("role"); role != "" {
		filter.Filters["role"] = role
	}

	users, err := h.userService.ListUsers(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, newUserResponse(u))
	}
	h.Success(c, responses)
}

// GetByID godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} dto.Response{data=UserResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	info, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newUserResponse(*info))
}

// Block godoc
// @Summary      Block users
// @Description  Block the selected users and invalidate their sessions
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body BulkUserRequest true "User selection"
// @Success      200 {object} dto.Response{data=BulkUserResponse}
// @Security     BearerAuth
// @Router       /users/block [post]
func (h *UserHandler) Block(c *gin.Context) {
	h.bulk(c, h.userService.BlockUsers)
}

// Unblock godoc
// @Summary      Unblock users
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body BulkUserRequest true "User selection"
// @Success      200 {object} dto.Response{data=BulkUserResponse}
// @Security     BearerAuth
// @Router       /users/unblock [post]
func (h *UserHandler) Unblock(c *gin.Context) {
	h.bulk(c, h.userService.UnblockUsers)
}

// Promote godoc
// @Summary      Grant admin role to users
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body BulkUserRequest true "User selection"
// @Success      200 {object} dto.Response{data=BulkUserResponse}
// @Security     BearerAuth
// @Router       /users/promote [post]
func (h *UserHandler) Promote(c *gin.Context) {
	h.bulk(c, h.userService.PromoteUsers)
}

// Demote godoc
// @Summary      Remove admin role from users
// @Description  Admins may demote themselves; access is re-evaluated on
// @Description  the next token refresh.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body BulkUserRequest true "User selection"
// @Success      200 {object} dto.Response{data=BulkUserResponse}
// @Security     BearerAuth
// @Router       /users/demote [post]
func (h *UserHandler) Demote(c *gin.Context) {
	h.bulk(c, h.userService.DemoteUsers)
}

// Delete godoc
// @Summary      Delete users
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body BulkUserRequest true "User selection"
// @Success      200 {object} dto.Response{data=BulkUserResponse}
// @Security     BearerAuth
// @Router       /users/delete [post]
func (h *UserHandler) Delete(c *gin.Context) {
	h.bulk(c, h.userService.DeleteUsers)
}

func (h *UserHandler) bulk(c *gin.Context, op func(ctx context.Context, input appidentity.BulkUserInput) (*appidentity.BulkUserResult, error)) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req BulkUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := op(c.Request.Context(), appidentity.BulkUserInput{
		ActorID: actorID,
		UserIDs: req.UserIDs,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, BulkUserResponse{Affected: result.Affected, Skipped: result.Skipped})
}
