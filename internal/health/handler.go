package health

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	now func() time.Time
}

func NewHandler() *Handler {
	return &Handler{now: time.Now}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/api/health", h.getHealth)
}

func (h *Handler) getHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"message":   "Servidor funcionando correctamente",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}
