package customer

import (
	"context"

	"github.com/google/uuid"
)

// InMemoryRepository backs tests and keeps the same contract as the
// Postgres repository.
type InMemoryRepository struct {
	byPhone   map[string]*Customer
	Totals    map[string]int
	Favorites map[string]Favorite
}

type Favorite struct {
	Product string
	Count   int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byPhone:   make(map[string]*Customer),
		Totals:    make(map[string]int),
		Favorites: make(map[string]Favorite),
	}
}

func (r *InMemoryRepository) FindByPhone(_ context.Context, phone string) (*Customer, error) {
	c, ok := r.byPhone[phone]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *InMemoryRepository) Create(_ context.Context, c *Customer) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	copied := *c
	r.byPhone[c.Phone] = &copied
	return nil
}

func (r *InMemoryRepository) UpdateAddress(_ context.Context, id string, address string) error {
	for _, c := range r.byPhone {
		if c.ID == id {
			c.Address = address
		}
	}
	return nil
}

func (r *InMemoryRepository) CountOrders(_ context.Context, customerID string) (int, error) {
	return r.Totals[customerID], nil
}

func (r *InMemoryRepository) FavoriteProduct(_ context.Context, customerID string) (string, int, error) {
	f := r.Favorites[customerID]
	return f.Product, f.Count, nil
}
