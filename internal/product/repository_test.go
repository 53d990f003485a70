package product

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_ListKeepsSeedOrder(t *testing.T) {
	repo := NewInMemoryRepository(Seed())

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 6)
	for i, p := range products {
		assert.Equal(t, i+1, p.ID)
		assert.GreaterOrEqual(t, p.Stock, 0)
	}
}

func TestInMemoryRepository_ListReturnsCopy(t *testing.T) {
	repo := NewInMemoryRepository(Seed())

	products, _ := repo.List(context.Background())
	products[0].Stock = 0

	p, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 50, p.Stock)
}

func TestInMemoryRepository_GetByID(t *testing.T) {
	repo := NewInMemoryRepository(Seed())

	p, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Pintura Verde Concentrada", p.Name)

	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryRepository_DecrementStock(t *testing.T) {
	repo := NewInMemoryRepository([]Product{{ID: 1, Name: "A", Price: 10, Stock: 5}})
	ctx := context.Background()

	p, err := repo.DecrementStock(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Stock)

	_, err = repo.DecrementStock(ctx, 1, 4)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	p, err = repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Stock, "failed decrement must leave stock untouched")

	p, err = repo.DecrementStock(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)

	_, err = repo.DecrementStock(ctx, 7, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryRepository_DecrementStock_Concurrent(t *testing.T) {
	repo := NewInMemoryRepository([]Product{{ID: 1, Name: "A", Price: 10, Stock: 50}})
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.DecrementStock(ctx, 1, 1); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	p, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 50, accepted)
	assert.Equal(t, 0, p.Stock)
}

func TestInMemoryRepository_Reset(t *testing.T) {
	repo := NewInMemoryRepository(Seed())
	ctx := context.Background()

	_, err := repo.DecrementStock(ctx, 1, 10)
	require.NoError(t, err)

	require.NoError(t, repo.Reset(ctx, Seed()))
	p, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 50, p.Stock)
}

func TestInMemoryRepository_RestoreStock(t *testing.T) {
	repo := NewInMemoryRepository([]Product{{ID: 1, Name: "A", Price: 10, Stock: 5}})
	ctx := context.Background()

	_, err := repo.DecrementStock(ctx, 1, 4)
	require.NoError(t, err)
	p, err := repo.RestoreStock(ctx, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Stock)

	_, err = repo.RestoreStock(ctx, 7, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
