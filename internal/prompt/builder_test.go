package prompt

import (
	"context"
	"strings"
	"testing"

	"github.com/larapitasantfrancesc-beep/giuseppe2.0/internal/customer"
)

func TestBuild_UnknownCustomer(t *testing.T) {
	p := Build(nil)

	for _, want := range []string{
		Marker,
		"Margherita",
		"1. Nom del client",
		"2. Telèfon de contacte",
		"màxim 4",
		"La Ràpita: 1,50 €",
		"PROMOCIONS",
	} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}

	if strings.Contains(p, "CLIENT CONEGUT") {
		t.Fatal("personalization block present without a profile")
	}
}

func TestBuild_ReturningCustomer(t *testing.T) {
	p := Build(&customer.Profile{
		Name:                 "Joan",
		Phone:                "600111222",
		Address:              "Carrer Major 1",
		TotalOrders:          7,
		FavoriteProduct:      "Margherita",
		FavoriteProductCount: 4,
	})

	if !strings.Contains(p, "CLIENT CONEGUT") {
		t.Fatal("personalization block missing")
	}
	if !strings.Contains(p, "Nom: Joan") {
		t.Fatal("known name missing from personalization block")
	}
	if !strings.Contains(p, "Margherita (4 vegades)") {
		t.Fatal("favorite product missing")
	}

	// Known fields must drop out of the intake question sequence.
	for _, gone := range []string{"Nom del client", "Telèfon de contacte", "Adreça (si és domicili)"} {
		if strings.Contains(p, gone) {
			t.Fatalf("prompt still asks for %q", gone)
		}
	}
	if !strings.Contains(p, "1. Pizzes i quantitats") {
		t.Fatal("intake sequence not renumbered")
	}
}

func TestBuild_ReturningCustomerWithoutAddress(t *testing.T) {
	p := Build(&customer.Profile{Name: "Joan", Phone: "600111222"})

	if !strings.Contains(p, "Adreça (si és domicili)") {
		t.Fatal("address question must stay when the address is unknown")
	}
}

// Round-trip: a message carrying a known phone number must yield a prompt
// that greets by name and stops asking for it.
func TestBuild_LookupRoundTrip(t *testing.T) {
	repo := customer.NewInMemoryRepository()
	_ = repo.Create(context.Background(), &customer.Customer{
		Name:  "Joan",
		Phone: "600111222",
	})

	profile := customer.NewLookup(repo).Profile(context.Background(), "Hola, 600111222 aquí!")
	p := Build(profile)

	if !strings.Contains(p, "Nom: Joan") {
		t.Fatal("prompt does not know the returning customer")
	}
	if strings.Contains(p, "Nom del client") || strings.Contains(p, "Telèfon de contacte") {
		t.Fatal("prompt still asks for name or phone")
	}
}
