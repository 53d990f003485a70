package order

import (
	"context"
	"time"
)

// Service provides business logic for the order log.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(r Repository) *Service {
	return &Service{repo: r, now: time.Now}
}

// Place records a completed order for the accepted lines. The total is
// derived from the lines, never taken from the caller.
func (s *Service) Place(ctx context.Context, items []LineItem) (Order, error) {
	total := 0
	for _, it := range items {
		total += it.Price * it.Quantity
	}
	if items == nil {
		items = []LineItem{}
	}
	return s.repo.Create(ctx, Order{
		Items:     items,
		Total:     total,
		CreatedAt: s.now().UTC(),
		Status:    StatusCompleted,
	})
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

// Reset empties the order log.
func (s *Service) Reset(ctx context.Context) error {
	return s.repo.Reset(ctx)
}
