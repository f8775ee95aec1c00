package observability

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler serves the scrape endpoint for the given gatherer, or for
// the default registry when gatherer is nil.
func MetricsHandler(gatherer prometheus.Gatherer) fiber.Handler {
	RegisterMetrics()
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}
