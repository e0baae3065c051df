package customer

import "context"

type Repository interface {
	// FindByPhone returns the customer with that exact phone, or nil when
	// there is none.
	FindByPhone(ctx context.Context, phone string) (*Customer, error)
	Create(ctx context.Context, c *Customer) error
	UpdateAddress(ctx context.Context, id string, address string) error

	// CountOrders returns how many orders the customer has placed.
	CountOrders(ctx context.Context, customerID string) (int, error)
	// FavoriteProduct returns the product the customer has ordered most,
	// with its count. Empty product when the customer has no lines yet.
	FavoriteProduct(ctx context.Context, customerID string) (string, int, error)
}
