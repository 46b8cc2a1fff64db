package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"career-counsel/internal/domain"
	"career-counsel/internal/logger"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is anything the health check can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DBPinger is satisfied by *sqlx.DB.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

type dbPinger struct{ db DBPinger }

func (p dbPinger) Ping(ctx context.Context) error { return p.db.PingContext(ctx) }

// HealthResponse reports the state of each dependency
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler answers liveness probes
type HealthHandler struct {
	cache domain.Cache
	db    DBPinger
}

// NewHealthHandler creates a health handler. db may be nil when the ledger
// is disabled.
func NewHealthHandler(cache domain.Cache, db DBPinger) *HealthHandler {
	return &HealthHandler{cache: cache, db: db}
}

// Health godoc
// @Summary Health check
// @Description Reports redis and, when enabled, database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Checks: map[string]string{}}
	check := func(name string, p Pinger) {
		if p == nil {
			resp.Checks[name] = "disabled"
			return
		}
		if err := p.Ping(ctx); err != nil {
			logger.Get().Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			resp.Checks[name] = "down"
			resp.Status = "degraded"
			return
		}
		resp.Checks[name] = "up"
	}

	var cachePinger, databasePinger Pinger
	if h.cache != nil {
		cachePinger = h.cache
	}
	if h.db != nil {
		databasePinger = dbPinger{db: h.db}
	}
	check("redis", cachePinger)
	check("database", databasePinger)

	status := fiber.StatusOK
	if resp.Status != "ok" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}
