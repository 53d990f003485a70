package checkout

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/paint-shop-backend/internal/order"
)

const (
	msgEmptyCart   = "Carrito vacío"
	msgBadBody     = "Cuerpo de la solicitud inválido"
	msgOrderPlaced = "Compra procesada exitosamente"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Post("/api/cart/checkout", h.checkout)
}

type checkoutRequest struct {
	Items []Item `json:"items"`
}

type checkoutResponse struct {
	Success bool         `json:"success"`
	Order   order.Order  `json:"order"`
	Message string       `json:"message"`
	Lines   []LineResult `json:"lines"`
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	payload := new(checkoutRequest)
	// a body that is empty or not sent as JSON is read as a cart without
	// items, not as a malformed request
	if len(c.Body()) > 0 && c.Is("json") {
		if err := c.BodyParser(payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgBadBody})
		}
	}

	res, err := h.service.Checkout(c.UserContext(), payload.Items)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgEmptyCart})
		}
		return err
	}

	return c.JSON(checkoutResponse{
		Success: true,
		Order:   res.Order,
		Message: msgOrderPlaced,
		Lines:   res.Lines,
	})
}
