package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/noah-isme/school-services/internal/config"
	"github.com/noah-isme/school-services/internal/handler"
	"github.com/noah-isme/school-services/internal/observability"
)

// Dependencies groups router dependencies for registration. Handlers left
// nil are not mounted, so each binary only fills in what it owns.
type Dependencies struct {
	StudentHandler     *handler.StudentHandler
	TeacherHandler     *handler.TeacherHandler
	ClassHandler       *handler.ClassHandler
	ActivityHandler    *handler.ActivityHandler
	GradeHandler       *handler.GradeHandler
	ReservationHandler *handler.ReservationHandler
	Database           handler.Pinger
	Gatherer           prometheus.Gatherer
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler(deps.Gatherer))

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg, deps.Database))

	// Roster
	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(api.Group("/students"))
	}
	if deps.TeacherHandler != nil {
		deps.TeacherHandler.Register(api.Group("/teachers"))
	}
	if deps.ClassHandler != nil {
		deps.ClassHandler.Register(api.Group("/classes"))
	}

	// Activities
	if deps.ActivityHandler != nil {
		deps.ActivityHandler.Register(api.Group("/activities"))
	}
	if deps.GradeHandler != nil {
		deps.GradeHandler.Register(api.Group("/grades"))
	}

	// Reservations
	if deps.ReservationHandler != nil {
		deps.ReservationHandler.Register(api.Group("/reservations"))
	}
}
