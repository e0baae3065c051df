package notify

import (
	"fmt"
	"strings"

	"github.com/larapitasantfrancesc-beep/giuseppe2.0/internal/order"
)

// FormatOrder renders the staff-facing summary of a confirmed order.
func FormatOrder(o *order.Order) string {
	var b strings.Builder

	b.WriteString("🍕 NOVA COMANDA - Pizzeria La Ràpita\n\n")

	b.WriteString("👤 CLIENT:\n")
	fmt.Fprintf(&b, "Nom: %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "Tel: %s\n", o.Customer.Phone)
	if o.Customer.Address != "" {
		fmt.Fprintf(&b, "Adreça: %s\n", o.Customer.Address)
	} else {
		b.WriteString("RECOLLIDA AL LOCAL\n")
	}

	b.WriteString("\n📋 COMANDA:\n")
	for _, line := range o.Lines {
		fmt.Fprintf(&b, "• %dx %s — %.2f€\n", line.Quantity, line.Product, line.LineTotal)
		if len(line.Modifications) > 0 {
			fmt.Fprintf(&b, "  Modificacions: %s\n", strings.Join(line.Modifications, ", "))
		}
		if len(line.ExtraIngredients) > 0 {
			fmt.Fprintf(&b, "  Extras: %s\n", strings.Join(line.ExtraIngredients, ", "))
		}
	}

	b.WriteString("\n🚚 ENTREGA:\n")
	if o.Delivery.Type == order.DeliveryHome {
		b.WriteString("Tipus: 🏠 Domicili\n")
	} else {
		b.WriteString("Tipus: 🏪 Recollida\n")
	}
	if o.Delivery.Fee > 0 {
		fmt.Fprintf(&b, "Cost entrega: %.2f€\n", o.Delivery.Fee)
	}
	fmt.Fprintf(&b, "Temps estimat: %s\n", o.Delivery.ETALabel)
	if o.Delivery.PickupTime != "" {
		fmt.Fprintf(&b, "Hora de recollida: %s\n", o.Delivery.PickupTime)
	}

	fmt.Fprintf(&b, "\n💳 PAGAMENT: %s\n", o.Payment)
	fmt.Fprintf(&b, "\n💰 TOTAL: %.2f€\n", o.Total)

	return b.String()
}
