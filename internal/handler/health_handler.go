package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/school-services/internal/config"
	"github.com/noah-isme/school-services/internal/utils"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse represents the payload returned by the health endpoint.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
	Database    string    `json:"database"`
}

// HealthCheck returns a handler that reports service health. A failing
// database ping answers 503.
func HealthCheck(cfg config.Config, db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := HealthResponse{
			Status:      "ok",
			Timestamp:   time.Now().UTC(),
			Service:     cfg.AppName,
			Environment: cfg.AppEnv,
			Database:    "ok",
		}

		if db != nil {
			ctx, cancel := context.WithTimeout(withRequestContext(c), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				payload.Status = "degraded"
				payload.Database = err.Error()
				return c.Status(fiber.StatusServiceUnavailable).JSON(utils.APIResponse{
					Success: false,
					Data:    payload,
					Message: "service degraded",
				})
			}
		}

		return utils.SendSuccess(c, "service healthy", payload)
	}
}
