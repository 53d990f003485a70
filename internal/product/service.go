package product

import "context"

// ServiceInterface is the catalog surface other packages depend on.
type ServiceInterface interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (Product, error)
	DecrementStock(ctx context.Context, id int, qty int) (Product, error)
	RestoreStock(ctx context.Context, id int, qty int) (Product, error)
}

type Service struct {
	repo Repository
}

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) DecrementStock(ctx context.Context, id int, qty int) (Product, error) {
	return s.repo.DecrementStock(ctx, id, qty)
}

func (s *Service) RestoreStock(ctx context.Context, id int, qty int) (Product, error) {
	return s.repo.RestoreStock(ctx, id, qty)
}

// ResetProducts replaces the catalog with the given list (used for seeding).
func (s *Service) ResetProducts(ctx context.Context, products []Product) error {
	return s.repo.Reset(ctx, products)
}
