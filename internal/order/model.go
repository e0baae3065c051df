package order

// Order is the structured payload Giuseppe emits once a customer confirms.
// The JSON tags are the wire contract the system prompt dictates.
type Order struct {
	Customer Customer `json:"client"`
	Lines    []Line   `json:"comanda"`
	Delivery Delivery `json:"entrega"`
	Payment  string   `json:"pagament"`
	Total    float64  `json:"total_comanda"`
}

type Customer struct {
	Name    string `json:"nom"`
	Phone   string `json:"telefon"`
	Address string `json:"adreça,omitempty"`
}

type Line struct {
	Product          string   `json:"pizza"`
	Quantity         int      `json:"quantitat"`
	Modifications    []string `json:"modificacions"`
	ExtraIngredients []string `json:"ingredients_extra"`
	LineTotal        float64  `json:"preu_total_pizza"`
}

type Delivery struct {
	Type       string  `json:"tipus"`
	Fee        float64 `json:"cost_entrega"`
	ETALabel   string  `json:"temps_estimacio"`
	PickupTime string  `json:"temps_recollida,omitempty"`
}

const (
	DeliveryHome   = "domicili"
	DeliveryPickup = "recollida"

	PaymentCash = "efectiu"
	PaymentCard = "targeta"

	StatusPending = "pending"
)

// Record is the persisted order header.
type Record struct {
	ID            string
	CustomerID    string
	DeliveryType  string
	DeliveryFee   float64
	ETALabel      string
	PickupTime    string
	PaymentMethod string
	Total         float64
	Status        string
}

// LineRecord is one persisted line item.
type LineRecord struct {
	OrderID          string
	Product          string
	Quantity         int
	UnitPrice        float64
	LineTotal        float64
	Modifications    []string
	ExtraIngredients []string
}
