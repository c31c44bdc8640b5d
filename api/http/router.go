package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/careerpath/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	analysis *handlers.AnalysisHandler,
	charts *handlers.ChartsHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Career analyses: owner-scoped, admin sees everything
	ca := v1.Group("/career-analyses", authMW)
	ca.Post("/", analysis.Create)
	ca.Get("/", analysis.List)
	ca.Get("/:id", analysis.Get)
	ca.Delete("/:id", analysis.Delete)

	// Chart-ready projections of a stored report
	ca.Get("/:id/charts/radar", charts.Radar)
	ca.Get("/:id/charts/gaps", charts.Gaps)
	ca.Get("/:id/charts/trend", charts.Trend)
}
