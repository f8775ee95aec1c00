package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-services/internal/config"
	"github.com/noah-isme/school-services/internal/handler"
)

type stubPinger struct {
	err error
}

func (s stubPinger) PingContext(context.Context) error {
	return s.err
}

func TestHealthCheckReportsDatabase(t *testing.T) {
	cfg := config.Config{AppName: "reservations", AppEnv: "test"}

	app := fiber.New()
	app.Get("/api/health", handler.HealthCheck(cfg, stubPinger{}))

	resp, body := doJSON(t, app, http.MethodGet, "/api/health", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var health handler.HealthResponse
	require.NoError(t, json.Unmarshal(body.Data, &health))
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "reservations", health.Service)
	require.Equal(t, "ok", health.Database)
}

func TestHealthCheckDegradesWhenDatabaseFails(t *testing.T) {
	app := fiber.New()
	app.Get("/api/health", handler.HealthCheck(config.Config{AppName: "roster"}, stubPinger{err: errors.New("sql: database is closed")}))

	resp, body := doJSON(t, app, http.MethodGet, "/api/health", "")
	require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	var health handler.HealthResponse
	require.NoError(t, json.Unmarshal(body.Data, &health))
	require.Equal(t, "degraded", health.Status)
	require.Equal(t, "sql: database is closed", health.Database)
}
