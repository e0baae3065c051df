package customer

import (
	"context"
	"log"
	"regexp"
)

// Local phone numbers are nine contiguous digits.
var phoneRe = regexp.MustCompile(`\d{9}`)

type Lookup struct {
	repo Repository
}

func NewLookup(repo Repository) *Lookup {
	return &Lookup{repo: repo}
}

// Profile inspects the raw inbound message for a phone number and resolves
// the returning customer behind it. Every failure path degrades to an
// unknown customer: the chat must answer either way.
func (l *Lookup) Profile(ctx context.Context, message string) *Profile {
	phone := phoneRe.FindString(message)
	if phone == "" {
		return nil
	}

	c, err := l.repo.FindByPhone(ctx, phone)
	if err != nil {
		log.Printf("customer: lookup failed for %s: %v", phone, err)
		return nil
	}
	if c == nil {
		return nil
	}

	p := &Profile{
		Name:    c.Name,
		Phone:   c.Phone,
		Address: c.Address,
	}

	if n, err := l.repo.CountOrders(ctx, c.ID); err == nil {
		p.TotalOrders = n
	} else {
		log.Printf("customer: order count failed for %s: %v", c.ID, err)
	}

	if product, count, err := l.repo.FavoriteProduct(ctx, c.ID); err == nil {
		p.FavoriteProduct = product
		p.FavoriteProductCount = count
	} else {
		log.Printf("customer: favorite lookup failed for %s: %v", c.ID, err)
	}

	return p
}
