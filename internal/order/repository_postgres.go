package order

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) InsertOrder(ctx context.Context, rec *Record) error {
	query := `
		INSERT INTO orders (
			id, customer_id, delivery_type, delivery_fee, eta_label,
			pickup_time, payment_method, total, status
		)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		rec.ID, rec.CustomerID, rec.DeliveryType, rec.DeliveryFee, rec.ETALabel,
		rec.PickupTime, rec.PaymentMethod, rec.Total, rec.Status,
	)
	return err
}

func (r *PostgresRepository) InsertLine(ctx context.Context, line *LineRecord) error {
	query := `
		INSERT INTO order_lines (
			order_id, product, quantity, unit_price, line_total,
			modifications, extra_ingredients
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		line.OrderID, line.Product, line.Quantity, line.UnitPrice, line.LineTotal,
		line.Modifications, line.ExtraIngredients,
	)
	return err
}
