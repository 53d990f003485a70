package checkout

import (
	"errors"

	"github.com/wichananm65/paint-shop-backend/internal/order"
)

// ErrEmptyCart is returned when a checkout carries no items at all.
var ErrEmptyCart = errors.New("empty cart")

// Reasons a line can be left out of the order.
const (
	ReasonNotFound          = "not_found"
	ReasonInsufficientStock = "insufficient_stock"
	ReasonInvalidQuantity   = "invalid_quantity"
)

// Item is one cart line as posted by the client. Any other fields the client
// sends alongside id and quantity are ignored.
type Item struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

// LineResult tells the caller what happened to one submitted line.
type LineResult struct {
	ID       int    `json:"id"`
	Quantity int    `json:"quantity"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

// Result is the outcome of a checkout: the order holding the accepted lines
// and one LineResult per submitted line, in submission order.
type Result struct {
	Order order.Order
	Lines []LineResult
}
