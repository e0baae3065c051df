package catalog

import (
	"fmt"
	"strings"
)

// Static reference data for Pizzeria La Ràpita: the official carta, free
// modifications, extra-ingredient prices, delivery fees and current
// promotions. This is the single source the system prompt is rendered from.

type Pizza struct {
	Name        string
	Ingredients string
	Price       float64
}

type Extra struct {
	Name  string
	Price float64
}

type DeliveryZone struct {
	Name string
	Fee  float64
}

const MaxExtrasPerPizza = 4

var FreeModifications = []string{"Sense tomata", "Sense orenga", "Tallada"}

var Pizzas = []Pizza{
	{"BURRATA", "Burrata, tomata cherry, ruca fresca i salsa pesto", 12.90},
	{"LA RÀPITA", "Mozzarella, carxofa i llagostins de La Ràpita", 14.90},
	{"MORTADEL·LA", "Mortadel·la, burrata, salsa pesto i festucs picats", 12.90},
	{"ORÍGENS", "Mozzarella, escalivada i sardina fumada", 11.90},
	{"VULCANO PITA", "Pernil dolç, mozzarella, bacon i un ou al mig", 11.90},
	{"4 Formatges", "Emmental, mozzarella, gorgonzolla i parmesà", 12.90},
	{"Barbacoa", "Mozzarella, bacon, pollastre i salsa barbacoa", 12.70},
	{"Carbonara", "Mozzarella, bacon, ou batut i parmesà", 12.90},
	{"Capricciosa", "Pernil dolç, mozzarella, xampinyons i ou dur", 11.90},
	{"Prosciutto", "Pernil dolç i mozzarella", 10.70},
	{"4 Stagione", "Pernil dolç, mozzarella, xampinyons, carxofa i olives negres", 11.90},
	{"Bacon", "Mozzarella i bacó fumat", 10.70},
	{"Bolognesa", "Salsa bolognesa casolana amb carn picada, pernil dolç i emmental", 12.70},
	{"Búfala", "Mozzarella de búfala DOP Campana i alfàbrega fresca", 10.70},
	{"Calcio", "Mozzarella de búfala DOP Campana, tomata cherry i alfàbrega fresca", 11.20},
	{"Calzone Clàssic", "Mozzarella, pernil dolç i tomata natural", 10.70},
	{"Calzone Verde", "Mozzarella, espinacs i tomata natural", 10.20},
	{"Calzone Sicília", "Mozzarella, salami, anxoves, tàperes i picant", 11.70},
	{"Cherry", "Mozzarella, tomata cherry, pernil salat, parmesà i alfàbrega", 14.70},
	{"ETNA", "Salami, mozzarella, anxoves, un ou al mig i picant", 11.20},
	{"Francesco", "Mozzarella, pollastre, gorgonzolla i carxofa", 12.20},
	{"Giuseppe", "Salsa bolognesa casolana, mozzarella, xampinyons i ou dur", 12.90},
	{"Hawai", "Pernil dolç, mozzarella i pinya", 10.70},
	{"HORTA VELLA", "Espinacs, mozzarella, tomata cherry i formatge de cabra", 12.90},
	{"Margherita", "Tomata natural i mozzarella", 9.70},
	{"Mallorca", "Mozzarella i sobrassada", 10.20},
	{"MAX", "Salami, mozzarella, gorgonzolla, xampinyons, ceba i picant", 13.20},
	{"Messicana", "Salami, mozzarella, panís, ceba i picant", 11.20},
	{"Napoli", "Mozzarella, anxoves i tàperes", 11.70},
	{"Noruega", "Mozzarella, salmó fumat i gorgonzolla", 12.20},
	{"Parmigiana", "Pernil dolç, mozzarella, tomata, ou dur, parmesà i alfàbrega", 11.70},
	{"Pepperoni", "Pepperoni picant i mozzarella", 11.70},
	{"PIPPO", "Salami, mozzarella, carxofa, xampinyons i picant", 11.20},
	{"Pollo", "Mozzarella i pollastre", 11.20},
	{"RÚCULA", "Mozzarella, pernil serrà, ruca i parmesà", 13.70},
	{"Salami", "Salami i mozzarella", 10.70},
	{"Tonno", "Mozzarella, tonyina, ceba i olives negres", 11.20},
	{"Vegetariana", "Espinacs, mozzarella, tomata, carxofa, xampinyons i panís", 11.20},
}

var Extras = []Extra{
	{"Ou estrellat", 1.90},
	{"Bacó fumat", 2.20},
	{"Xampinyons", 1.90},
	{"Pernil dolç", 2.00},
	{"Gorgonzola DOP", 2.20},
	{"Pollastre", 1.90},
	{"Carxofa", 1.90},
	{"Ceba", 1.00},
	{"Pepperoni", 2.90},
	{"Llagostins de La Ràpita", 3.90},
	{"Parmesà", 2.20},
	{"Alfàbrega fresca", 1.00},
}

var DeliveryZones = []DeliveryZone{
	{"La Ràpita", 1.50},
	{"Alcanar Platja", 2.00},
}

// HasProduct reports whether name is on the official carta.
func HasProduct(name string) bool {
	for _, p := range Pizzas {
		if p.Name == name {
			return true
		}
	}
	return false
}

// euro renders a price the way the carta prints it: comma decimals.
func euro(price float64) string {
	return strings.ReplaceAll(fmt.Sprintf("%.2f €", price), ".", ",")
}

func MenuSection() string {
	var b strings.Builder
	b.WriteString("🟩 CARTA OFICIAL DE PIZZERIA LA RÀPITA\n\nPIZZES:\n")
	for _, p := range Pizzas {
		fmt.Fprintf(&b, "• %s: %s — %s\n", p.Name, p.Ingredients, euro(p.Price))
	}
	return b.String()
}

func ExtrasSection() string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔸 4. Ingredients extra (màxim %d per pizza)\nEls extras sempre sumen preu:\n", MaxExtrasPerPizza)
	for _, e := range Extras {
		fmt.Fprintf(&b, "• %s — %s\n", e.Name, euro(e.Price))
	}
	fmt.Fprintf(&b, "\nGiuseppe ha de validar sempre que no se superen %d extras.\n", MaxExtrasPerPizza)
	return b.String()
}

func DeliverySection() string {
	var b strings.Builder
	b.WriteString("🔸 5. Preus d'entrega\n")
	for _, z := range DeliveryZones {
		fmt.Fprintf(&b, "• %s: %s\n", z.Name, euro(z.Fee))
	}
	b.WriteString("Afegir-ho automàticament quan el client demane domicili.\n")
	return b.String()
}

func PromotionsSection() string {
	return `🟩 PROMOCIONS
TOTS ELS DIES – NOMÉS ONLINE:
• Qualsevol pizza + Gelat Lumalú — 16,90 €
• Encomana 3 pizzes i la tercera (la més econòmica) surt a meitat de preu
• Qualsevol pizza + Lambrusco — 14,90 €

ENTRE SETMANA (DILLUNS–DIJOUS) – NOMÉS ONLINE:
• Qualsevol pizza + beguda gratis
• Margherita + dos ingredients gratis (xampinyons, ceba, panís, olives, cherry, espinacs)
`
}
