package order

import (
	"context"
	"sync"
)

// Repository defines persistence operations for the order log.
type Repository interface {
	// Create appends ord to the log and returns it with its ID assigned.
	// IDs start at 1 and grow by one per call.
	Create(ctx context.Context, ord Order) (Order, error)
	// List returns all orders in creation order.
	List(ctx context.Context) ([]Order, error)
	Reset(ctx context.Context) error
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orders: make([]Order, 0)}
}

func (r *InMemoryRepository) Create(_ context.Context, ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ord.ID = len(r.orders) + 1
	items := make([]LineItem, len(ord.Items))
	copy(items, ord.Items)
	ord.Items = items
	r.orders = append(r.orders, ord)
	return ord, nil
}

func (r *InMemoryRepository) List(_ context.Context) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *InMemoryRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = make([]Order, 0)
	return nil
}
