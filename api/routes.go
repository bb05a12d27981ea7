package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"

	"sjf-simulator/config"
)

// NewApp builds the fiber app with every route registered.
func NewApp(cfg *config.SchedulerConfig, handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "sjf-simulator",
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{ContextKey: "requestid"}))
	app.Use(requestLogger())

	app.Get("/health", handler.Health)

	api := app.Group("/api")
	// path used by the browser front end
	api.Post("/simulate", handler.ShortestJobFirst)

	v1 := api.Group("/v1")
	{
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Get("/simulations", handler.ListSimulations)
		v1.Get("/simulations/:id", handler.GetSimulation)
	}

	return app
}

func requestLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		log.WithFields(log.Fields{
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     ctx.Response().StatusCode(),
			"duration":   time.Since(start),
			"request_id": ctx.Locals("requestid"),
		}).Debug("request")
		return err
	}
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	code := codeInternal

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		switch {
		case status == fiber.StatusNotFound:
			code = codeNotFound
		case status < fiber.StatusInternalServerError:
			code = codeBadRequest
		}
	}
	if status >= fiber.StatusInternalServerError {
		log.WithError(err).Error("request failed")
	}
	return respondError(ctx, status, code, err.Error())
}
