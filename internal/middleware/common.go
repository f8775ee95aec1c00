package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

// Config customises the middleware registration pipeline.
type Config struct {
	Logger zerolog.Logger
}

// Register attaches the middlewares shared by every service.
func Register(app *fiber.App, cfg Config) {
	app.Use(recover.New())
	app.Use(CorrelationID())
	app.Use(Observability(cfg.Logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, " + CorrelationHeader,
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
		ExposeHeaders: CorrelationHeader,
	}))
}
