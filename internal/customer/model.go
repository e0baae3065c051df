package customer

import "time"

type Customer struct {
	ID        string
	Name      string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile is the read-only view of a returning customer used to personalize
// the system prompt. It lives for a single request.
type Profile struct {
	Name                 string
	Phone                string
	Address              string
	TotalOrders          int
	FavoriteProduct      string
	FavoriteProductCount int
}
