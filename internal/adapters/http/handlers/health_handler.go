package handlers

import (
	"context"
	"time"

	"promessas-api/internal/adapters/cache"
	"promessas-api/internal/config"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	cfg   *config.Config
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, appCache *cache.Cache, cfg *config.Config) *HealthHandler {
	return &HealthHandler{db: db, cache: appCache, cfg: cfg}
}

// Root handles root endpoint
// @Summary Root endpoint
// @Description Returns API status
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "🗳️ Promessas API v1.0 is running",
		"mode":    h.cfg.AppMode,
		"docs":    "/swagger/index.html",
	})
}

// HealthCheck handles health check
// @Summary Health check
// @Description Check database and cache backend
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if err := config.PingDatabase(ctx, h.db); err != nil {
		dbStatus = "unhealthy"
	}

	// cache failures degrade to repository reads, so they never fail the check
	cacheStatus := "healthy"
	if err := h.cache.Ping(ctx); err != nil {
		cacheStatus = "unhealthy"
	}

	status, code := "ok", fiber.StatusOK
	if dbStatus != "healthy" {
		status, code = "degraded", fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"checks": fiber.Map{
			"api":      "healthy",
			"database": dbStatus,
			"cache": fiber.Map{
				"backend": h.cache.Backend(),
				"status":  cacheStatus,
			},
		},
	})
}
