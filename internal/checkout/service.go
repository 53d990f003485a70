package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wichananm65/paint-shop-backend/internal/order"
	"github.com/wichananm65/paint-shop-backend/internal/product"
)

// StockKeeper is the part of the catalog checkout needs.
type StockKeeper interface {
	DecrementStock(ctx context.Context, id int, qty int) (product.Product, error)
	RestoreStock(ctx context.Context, id int, qty int) (product.Product, error)
}

// OrderPlacer records the order built from the accepted lines.
type OrderPlacer interface {
	Place(ctx context.Context, items []order.LineItem) (order.Order, error)
}

type Service struct {
	products StockKeeper
	orders   OrderPlacer
	logger   *slog.Logger
}

func NewService(products StockKeeper, orders OrderPlacer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{products: products, orders: orders, logger: logger}
}

// Checkout walks the cart in order. Each line is settled on its own: stock
// is taken as soon as the line is accepted and is not given back if a later
// line is skipped. Lines that cannot be served are left out of the order and
// reported in Result.Lines. An order is recorded even when no line was
// accepted.
//
// When the store itself fails, the stock already taken for this cart is
// given back before the error is returned, so no stock leaves the catalog
// without an order holding it.
func (s *Service) Checkout(ctx context.Context, items []Item) (Result, error) {
	if len(items) == 0 {
		return Result{}, ErrEmptyCart
	}

	accepted := make([]order.LineItem, 0, len(items))
	lines := make([]LineResult, 0, len(items))
	for _, it := range items {
		line := LineResult{ID: it.ID, Quantity: it.Quantity}

		if it.Quantity <= 0 {
			line.Reason = ReasonInvalidQuantity
			lines = append(lines, line)
			s.logger.WarnContext(ctx, "checkout line skipped", "product_id", it.ID, "quantity", it.Quantity, "reason", line.Reason)
			continue
		}

		p, err := s.products.DecrementStock(ctx, it.ID, it.Quantity)
		switch {
		case err == nil:
			line.Accepted = true
			accepted = append(accepted, order.LineItem{
				ProductID: p.ID,
				Name:      p.Name,
				Price:     p.Price,
				Quantity:  it.Quantity,
			})
		case errors.Is(err, product.ErrNotFound):
			line.Reason = ReasonNotFound
		case errors.Is(err, product.ErrInsufficientStock):
			line.Reason = ReasonInsufficientStock
		default:
			s.release(ctx, accepted)
			return Result{}, fmt.Errorf("checkout line for product %d: %w", it.ID, err)
		}

		if !line.Accepted {
			s.logger.WarnContext(ctx, "checkout line skipped", "product_id", it.ID, "quantity", it.Quantity, "reason", line.Reason)
		}
		lines = append(lines, line)
	}

	ord, err := s.orders.Place(ctx, accepted)
	if err != nil {
		s.release(ctx, accepted)
		return Result{}, fmt.Errorf("place order: %w", err)
	}
	s.logger.InfoContext(ctx, "order placed", "order_id", ord.ID, "lines", len(ord.Items), "total", ord.Total)

	return Result{Order: ord, Lines: lines}, nil
}

// release returns the stock of lines accepted by a checkout that then failed.
// It runs even if the request context is already cancelled.
func (s *Service) release(ctx context.Context, taken []order.LineItem) {
	ctx = context.WithoutCancel(ctx)
	for _, it := range taken {
		if _, err := s.products.RestoreStock(ctx, it.ProductID, it.Quantity); err != nil {
			s.logger.ErrorContext(ctx, "stock not restored after failed checkout",
				"product_id", it.ProductID, "quantity", it.Quantity, "error", err)
		}
	}
}
