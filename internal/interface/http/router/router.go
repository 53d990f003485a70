package router

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RouteRegistrar is implemented by every feature handler.
type RouteRegistrar interface {
	RegisterPublicRoutes(app fiber.Router)
}

// Options configures the HTTP surface shared by all handlers.
type Options struct {
	CORSAllowOrigins string
	// StaticDir, when set, is served at "/" after the API routes.
	StaticDir string
}

// New builds the Fiber app: common middleware first, then each handler's
// routes in the order given, then the optional static front-end.
func New(opts Options, logger *slog.Logger, handlers ...RouteRegistrar) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "paint-shop-backend",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(requestLogger(logger))
	app.Use(recover.New())
	setupCORS(app, opts.CORSAllowOrigins)

	for _, h := range handlers {
		h.RegisterPublicRoutes(app)
	}

	if opts.StaticDir != "" {
		app.Static("/", opts.StaticDir)
	}

	return app
}

func setupCORS(app *fiber.App, origins string) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,HEAD,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

const msgInternal = "Error interno del servidor"

// errorHandler renders any error that escapes a handler (unknown routes,
// store failures, recovered panics) in the same {"error": ...} shape the
// handlers use. Only fiber errors carry their message to the client; the
// rest are logged by requestLogger and answered with a generic 500.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgInternal})
}

func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// the error handler has not written the response yet
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		attrs := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"remote_ip", c.IP(),
		}
		level := slog.LevelInfo
		if err != nil && status >= fiber.StatusInternalServerError {
			level = slog.LevelError
			attrs = append(attrs, "error", err.Error())
		}
		logger.Log(c.UserContext(), level, "request", attrs...)
		return err
	}
}
