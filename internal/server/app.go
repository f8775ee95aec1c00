// Package server assembles the fiber application and the runtime
// dependencies shared by the three service binaries.
package server

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-services/internal/config"
	"github.com/noah-isme/school-services/internal/middleware"
	"github.com/noah-isme/school-services/internal/utils"
)

const shutdownTimeout = 5 * time.Second

// NewApp builds a fiber application with the shared middleware stack.
func NewApp(cfg config.Config, logger zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			message := "internal server error"
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
				message = fiberErr.Message
			}
			if status >= fiber.StatusInternalServerError {
				logger.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
			}
			return utils.SendError(c, status, message)
		},
	})

	middleware.Register(app, middleware.Config{Logger: logger})
	return app
}

// Run serves app on addr until ctx is cancelled, then shuts it down
// gracefully.
func Run(ctx context.Context, app *fiber.App, addr string, logger zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("http server listening")
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return err
	}

	logger.Info().Msg("server stopped")
	return nil
}
