package customer

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByPhone(ctx context.Context, phone string) (*Customer, error) {
	query := `
		SELECT id, name, phone, COALESCE(address, ''), created_at, updated_at
		FROM customers
		WHERE phone = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`
	row := r.db.QueryRow(ctx, query, phone)

	c := &Customer{}
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *Customer) error {
	query := `
		INSERT INTO customers (id, name, phone, address)
		VALUES ($1, $2, $3, NULLIF($4, ''))
	`
	_, err := r.db.Exec(ctx, query, c.ID, c.Name, c.Phone, c.Address)
	return err
}

func (r *PostgresRepository) UpdateAddress(ctx context.Context, id string, address string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE customers
		SET address = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`, address, id)
	return err
}

func (r *PostgresRepository) CountOrders(ctx context.Context, customerID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM orders WHERE customer_id = $1
	`, customerID).Scan(&n)
	return n, err
}

func (r *PostgresRepository) FavoriteProduct(ctx context.Context, customerID string) (string, int, error) {
	query := `
		SELECT ol.product, COUNT(*) AS times
		FROM order_lines ol
		JOIN orders o ON o.id = ol.order_id
		WHERE o.customer_id = $1
		GROUP BY ol.product
		ORDER BY times DESC
		LIMIT 1
	`
	var product string
	var count int
	err := r.db.QueryRow(ctx, query, customerID).Scan(&product, &count)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", 0, nil
	}
	if err != nil {
		return "", 0, err
	}
	return product, count, nil
}
