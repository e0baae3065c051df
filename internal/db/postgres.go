package db

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres(dsn string) *pgxpool.Pool {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates the tables the order pipeline writes to.
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	customersSQL := `
		CREATE TABLE IF NOT EXISTS customers (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			phone VARCHAR(20) UNIQUE NOT NULL,
			address TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, customersSQL); err != nil {
		return err
	}

	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			customer_id UUID NOT NULL REFERENCES customers(id),
			delivery_type VARCHAR(20) NOT NULL,
			delivery_fee NUMERIC(6,2) NOT NULL DEFAULT 0,
			eta_label VARCHAR(100),
			pickup_time VARCHAR(50),
			payment_method VARCHAR(20) NOT NULL,
			total NUMERIC(8,2) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	orderLinesSQL := `
		CREATE TABLE IF NOT EXISTS order_lines (
			id BIGSERIAL PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id),
			product VARCHAR(255) NOT NULL,
			quantity INT NOT NULL,
			unit_price NUMERIC(6,2) NOT NULL,
			line_total NUMERIC(8,2) NOT NULL,
			modifications TEXT[] NOT NULL DEFAULT '{}',
			extra_ingredients TEXT[] NOT NULL DEFAULT '{}'
		)
	`
	if _, err := pool.Exec(ctx, orderLinesSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
