package order

import "time"

// StatusCompleted is the only status an order ever carries.
const StatusCompleted = "completed"

// LineItem is a snapshot of a product taken when the line was accepted; it
// does not follow later catalog changes.
type LineItem struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Order is immutable once created.
type Order struct {
	ID        int        `json:"id"`
	Items     []LineItem `json:"items"`
	Total     int        `json:"total"`
	CreatedAt time.Time  `json:"date"`
	Status    string     `json:"status"`
}
