package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listProductsQuery = `
		SELECT id, name, price, image, description, stock
		FROM products
		ORDER BY id
	`
	getProductByIDQuery = `
		SELECT id, name, price, image, description, stock
		FROM products
		WHERE id = $1
	`
	// the stock guard and the subtraction happen in one statement so two
	// concurrent checkouts can never take the same unit
	decrementStockQuery = `
		UPDATE products
		SET stock = stock - $2
		WHERE id = $1 AND stock >= $2
		RETURNING id, name, price, image, description, stock
	`
	restoreStockQuery = `
		UPDATE products
		SET stock = stock + $2
		WHERE id = $1
		RETURNING id, name, price, image, description, stock
	`
	truncateProductsQuery = `TRUNCATE TABLE products`
	seedProductsQuery     = `
		INSERT INTO products (id, name, price, image, description, stock)
		SELECT * FROM unnest($1::int[], $2::text[], $3::int[], $4::text[], $5::text[], $6::int[])
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.Description, &p.Stock)
	return p, err
}

func (r *PostgresRepository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, listProductsQuery)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, getProductByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, fmt.Errorf("query product %d: %w", id, err)
	}
	return p, nil
}

func (r *PostgresRepository) DecrementStock(ctx context.Context, id int, qty int) (Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, decrementStockQuery, id, qty))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Product{}, fmt.Errorf("decrement stock of product %d: %w", id, err)
	}

	// no row updated: either the product is unknown or the guard failed
	if _, err := r.GetByID(ctx, id); err != nil {
		return Product{}, err
	}
	return Product{}, ErrInsufficientStock
}

func (r *PostgresRepository) RestoreStock(ctx context.Context, id int, qty int) (Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, restoreStockQuery, id, qty))
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, fmt.Errorf("restore stock of product %d: %w", id, err)
	}
	return p, nil
}

// Reset truncates the products table and bulk inserts the given catalog in a
// single transaction.
func (r *PostgresRepository) Reset(ctx context.Context, products []Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, truncateProductsQuery); err != nil {
		return fmt.Errorf("truncate products: %w", err)
	}

	if len(products) > 0 {
		var (
			ids    = make([]int64, len(products))
			names  = make([]string, len(products))
			prices = make([]int64, len(products))
			images = make([]string, len(products))
			descs  = make([]string, len(products))
			stocks = make([]int64, len(products))
		)
		for i, p := range products {
			ids[i] = int64(p.ID)
			names[i] = p.Name
			prices[i] = int64(p.Price)
			images[i] = p.Image
			descs[i] = p.Description
			stocks[i] = int64(p.Stock)
		}
		if _, err := tx.ExecContext(ctx, seedProductsQuery,
			pq.Array(ids), pq.Array(names), pq.Array(prices),
			pq.Array(images), pq.Array(descs), pq.Array(stocks)); err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
	}

	return tx.Commit()
}
