package api

import (
	"cpu-scheduler/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rcrowley/go-metrics"
	"go.uber.org/zap"
)

// NewApp builds the fiber application with every scheduler route mounted.
func NewApp(config *config.SchedulerConfig, logger *zap.Logger, registry metrics.Registry) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cpu-scheduler",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New())

	RegisterRoutes(app, NewSchedulerHandlerImpl(config, logger, registry))
	return app
}

func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/health", handler.Health)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.PriorityScheduling)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/schedule/:policy", handler.Schedule)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/suggest", handler.SuggestAlgorithm)
	}
}
