package customer

import (
	"context"
	"testing"
)

func TestProfile_NoPhoneInMessage(t *testing.T) {
	lookup := NewLookup(NewInMemoryRepository())

	if p := lookup.Profile(context.Background(), "Vull una Margherita per recollir"); p != nil {
		t.Fatalf("expected no profile, got %+v", p)
	}
}

func TestProfile_UnknownPhone(t *testing.T) {
	lookup := NewLookup(NewInMemoryRepository())

	if p := lookup.Profile(context.Background(), "Sóc el 600111222"); p != nil {
		t.Fatalf("expected no profile for unknown phone, got %+v", p)
	}
}

func TestProfile_ReturningCustomer(t *testing.T) {
	repo := NewInMemoryRepository()
	c := &Customer{Name: "Joan", Phone: "600111222", Address: "Carrer Major 1"}
	_ = repo.Create(context.Background(), c)
	repo.Totals[c.ID] = 7
	repo.Favorites[c.ID] = Favorite{Product: "Margherita", Count: 4}

	lookup := NewLookup(repo)
	p := lookup.Profile(context.Background(), "Hola, sóc Joan, 600111222, la de sempre")

	if p == nil {
		t.Fatal("expected a profile")
	}
	if p.Name != "Joan" || p.Phone != "600111222" || p.Address != "Carrer Major 1" {
		t.Fatalf("wrong profile: %+v", p)
	}
	if p.TotalOrders != 7 {
		t.Fatalf("expected 7 orders, got %d", p.TotalOrders)
	}
	if p.FavoriteProduct != "Margherita" || p.FavoriteProductCount != 4 {
		t.Fatalf("wrong favorite: %+v", p)
	}
}

func TestProfile_PhoneEmbeddedInLongerText(t *testing.T) {
	repo := NewInMemoryRepository()
	_ = repo.Create(context.Background(), &Customer{Name: "Maria", Phone: "977123456"})

	lookup := NewLookup(repo)
	p := lookup.Profile(context.Background(), "comanda per al 977123456 si pot ser")

	if p == nil || p.Name != "Maria" {
		t.Fatalf("expected Maria, got %+v", p)
	}
}
