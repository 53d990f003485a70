package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	// writers queue on this lock so each one sees the previous id
	lockOrdersQuery  = `LOCK TABLE orders IN SHARE ROW EXCLUSIVE MODE`
	nextOrderIDQuery = `SELECT COALESCE(MAX(id), 0) + 1 FROM orders`
	insertOrderQuery = `
		INSERT INTO orders (id, items, total, created_at, status)
		VALUES ($1, $2, $3, $4, $5)
	`
	listOrdersQuery = `
		SELECT id, items, total, created_at, status
		FROM orders
		ORDER BY id
	`
	truncateOrdersQuery = `TRUNCATE TABLE orders`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, ord Order) (Order, error) {
	if ord.Items == nil {
		ord.Items = []LineItem{}
	}
	itemsJSON, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, fmt.Errorf("marshal order items: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return Order{}, fmt.Errorf("begin insert order: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, lockOrdersQuery); err != nil {
		return Order{}, fmt.Errorf("lock orders: %w", err)
	}
	// the id is taken inside the transaction, so a failed insert leaves no gap
	if err := tx.QueryRowContext(ctx, nextOrderIDQuery).Scan(&ord.ID); err != nil {
		return Order{}, fmt.Errorf("next order id: %w", err)
	}
	if _, err := tx.ExecContext(ctx, insertOrderQuery, ord.ID, itemsJSON, ord.Total, ord.CreatedAt, ord.Status); err != nil {
		return Order{}, fmt.Errorf("insert order: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Order{}, fmt.Errorf("commit order: %w", err)
	}
	return ord, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, listOrdersQuery)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var (
			ord       Order
			itemsJSON []byte
		)
		if err := rows.Scan(&ord.ID, &itemsJSON, &ord.Total, &ord.CreatedAt, &ord.Status); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if err := json.Unmarshal(itemsJSON, &ord.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items of order %d: %w", ord.ID, err)
		}
		orders = append(orders, ord)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, truncateOrdersQuery); err != nil {
		return fmt.Errorf("truncate orders: %w", err)
	}
	return nil
}
