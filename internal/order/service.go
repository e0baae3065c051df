package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/larapitasantfrancesc-beep/giuseppe2.0/internal/customer"
)

// Persister records a confirmed order: find-or-create the customer by phone,
// then insert the order header and its line items.
type Persister struct {
	customers customer.Repository
	orders    Repository
}

func NewPersister(customers customer.Repository, orders Repository) *Persister {
	return &Persister{customers: customers, orders: orders}
}

// Persist is best-effort: the returned error is for the caller's log only
// and must never fail the chat response. A stored address that differs from
// the extracted one is overwritten, last write wins.
func (p *Persister) Persist(ctx context.Context, o *Order) error {
	c, err := p.customers.FindByPhone(ctx, o.Customer.Phone)
	if err != nil {
		return fmt.Errorf("find customer: %w", err)
	}

	var customerID string
	if c == nil {
		customerID = uuid.New().String()
		err := p.customers.Create(ctx, &customer.Customer{
			ID:      customerID,
			Name:    o.Customer.Name,
			Phone:   o.Customer.Phone,
			Address: o.Customer.Address,
		})
		if err != nil {
			return fmt.Errorf("create customer: %w", err)
		}
	} else {
		customerID = c.ID
		if o.Customer.Address != "" && o.Customer.Address != c.Address {
			if err := p.customers.UpdateAddress(ctx, c.ID, o.Customer.Address); err != nil {
				return fmt.Errorf("update address: %w", err)
			}
		}
	}

	rec := &Record{
		ID:            uuid.New().String(),
		CustomerID:    customerID,
		DeliveryType:  o.Delivery.Type,
		DeliveryFee:   o.Delivery.Fee,
		ETALabel:      o.Delivery.ETALabel,
		PickupTime:    o.Delivery.PickupTime,
		PaymentMethod: o.Payment,
		Total:         o.Total,
		Status:        StatusPending,
	}
	if err := p.orders.InsertOrder(ctx, rec); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, line := range o.Lines {
		unit := line.LineTotal
		if line.Quantity > 0 {
			unit = line.LineTotal / float64(line.Quantity)
		}
		lr := &LineRecord{
			OrderID:          rec.ID,
			Product:          line.Product,
			Quantity:         line.Quantity,
			UnitPrice:        unit,
			LineTotal:        line.LineTotal,
			Modifications:    line.Modifications,
			ExtraIngredients: line.ExtraIngredients,
		}
		if err := p.orders.InsertLine(ctx, lr); err != nil {
			return fmt.Errorf("insert line %q: %w", line.Product, err)
		}
	}

	return nil
}
