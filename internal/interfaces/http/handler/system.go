package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/inventoria/backend/internal/infrastructure/persistence"
)

// SystemHandler exposes health and readiness endpoints
type SystemHandler struct {
	BaseHandler
	db      *persistence.Database
	redis   *redis.Client
	appName string
	version string
}

// NewSystemHandler creates a new system handler. The redis client may be
// nil when no cache is configured.
func NewSystemHandler(db *persistence.Database, redisClient *redis.Client, appName, version string) *SystemHandler {
	return &SystemHandler{db: db, redis: redisClient, appName: appName, version: version}
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/ping", h.Ping)
}

// Ping godoc
// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response
// @Router       /ping [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, gin.H{"message": "pong"})
}

// Health godoc
// @Summary      Readiness probe
// @Description  Reports the state of the database and cache connections.
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response
// @Failure      503 {object} dto.Response
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	checks := gin.H{}
	healthy := true

	if err := h.db.Ping(); err != nil {
		checks["database"] = "down"
		healthy = false
	} else {
		checks["database"] = "up"
	}

	if h.redis != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.redis.Ping(ctx).Err(); err != nil {
			checks["cache"] = "down"
			healthy = false
		} else {
			checks["cache"] = "up"
		}
	}

	status := "ok"
	code := 200
	if !healthy {
		status = "degraded"
		code = 503
	}

	c.JSON(code, gin.H{
		"success": healthy,
		"data": gin.H{
			"app":     h.appName,
			"version": h.version,
			"status":  status,
			"checks":  checks,
			"time":    time.Now().UTC(),
		},
	})
}
