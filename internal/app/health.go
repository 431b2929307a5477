package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/localmaps-api/internal/config"
	"github.com/prperemyshlev/localmaps-api/internal/dto"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

const (
	statusUp   = "up"
	statusDown = "down"
)

// Pinger is satisfied by the database and cache handles
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthChecker struct {
	database Pinger
	cache    Pinger
	config   *config.Config
	logger   *zap.Logger
}

func NewHealthChecker(database, cache Pinger, cfg *config.Config, logger *zap.Logger) *HealthChecker {
	return &HealthChecker{
		database: database,
		cache:    cache,
		config:   cfg,
		logger:   logger,
	}
}

func (h *HealthChecker) check(ctx context.Context) (db, cache string) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	type result struct {
		name string
		err  error
	}
	results := make(chan result, 2)

	go func() { results <- result{"database", h.database.Ping(ctx)} }()
	go func() { results <- result{"cache", h.cache.Ping(ctx)} }()

	db, cache = statusUp, statusUp
	for range 2 {
		r := <-results
		if r.err == nil {
			continue
		}
		h.logger.Warn("health check failed", zap.String("dependency", r.name), zap.Error(r.err))
		if r.name == "database" {
			db = statusDown
		} else {
			cache = statusDown
		}
	}
	return db, cache
}

// Handler reports configuration and dependency status
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthChecker) Handler(c *gin.Context) {
	db, cache := h.check(c.Request.Context())

	resp := dto.HealthResponse{
		Status:                  "ok",
		Message:                 "Server is running",
		GoogleMapsAPIConfigured: h.config.Google.MapsAPIKey != "",
		GeminiAPIConfigured:     h.config.Gemini.APIKey != "",
		Database:                db,
		Cache:                   cache,
	}

	if db == statusDown || cache == statusDown {
		resp.Status = "degraded"
		resp.Message = "One or more dependencies are unavailable"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
