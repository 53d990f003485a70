package order

import (
	"github.com/gofiber/fiber/v2"
)

// Handler exposes the order log read-only; orders are only created through
// checkout.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/api/orders", h.getOrders)
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	orders, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(orders)
}
