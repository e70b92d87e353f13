package services_test

import (
	"errors"
	"testing"

	"github.com/AV-automacoes/restaurante-bom-prato/entity"
	"github.com/AV-automacoes/restaurante-bom-prato/services"
	"go.uber.org/zap"
)

func cartEntry(id string, unit int64, qty int) entity.CartItem {
	return entity.CartItem{
		CartItemID: id,
		MenuItemID: 1,
		Name:       "Marmitex",
		Quantity:   qty,
		BasePrice:  unit,
		UnitPrice:  unit,
	}
}

func TestCartAddAndSubtotal(t *testing.T) {
	cart := services.NewCartService(zap.NewNop())
	cart.AddEntry("sess", cartEntry("a", 2100, 2))
	cart.AddEntry("sess", cartEntry("b", 400, 1))

	if got := cart.Subtotal("sess"); got != 4600 {
		t.Fatalf("subtotal = %d, want 4600", got)
	}
	if got := cart.TotalItems("sess"); got != 3 {
		t.Fatalf("total items = %d, want 3", got)
	}
	if got := cart.Subtotal("outra"); got != 0 {
		t.Fatalf("sessions must be isolated, got %d", got)
	}
}

func TestCartItemsReturnsCopy(t *testing.T) {
	cart := services.NewCartService(zap.NewNop())
	cart.AddEntry("sess", cartEntry("a", 2100, 1))

	items := cart.Items("sess")
	items[0].Quantity = 99

	again := cart.Items("sess")
	if again[0].Quantity != 1 {
		t.Fatal("mutating the returned slice must not affect the cart")
	}
}

func TestCartUpdateEntry(t *testing.T) {
	cart := services.NewCartService(zap.NewNop())
	cart.AddEntry("sess", cartEntry("a", 2100, 1))

	updated := cartEntry("a", 1800, 3)
	if err := cart.UpdateEntry("sess", updated); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := cart.FindEntry("sess", "a")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.UnitPrice != 1800 || got.Quantity != 3 {
		t.Fatalf("entry not replaced: %+v", got)
	}

	if err := cart.UpdateEntry("sess", cartEntry("zz", 100, 1)); !errors.Is(err, services.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestCartSetQuantityZeroRemoves(t *testing.T) {
	cart := services.NewCartService(zap.NewNop())
	cart.AddEntry("sess", cartEntry("a", 2100, 2))

	if err := cart.SetQuantity("sess", "a", 5); err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if got := cart.TotalItems("sess"); got != 5 {
		t.Fatalf("total items = %d, want 5", got)
	}

	if err := cart.SetQuantity("sess", "a", 0); err != nil {
		t.Fatalf("set quantity 0: %v", err)
	}
	if _, err := cart.FindEntry("sess", "a"); !errors.Is(err, services.ErrEntryNotFound) {
		t.Fatalf("expected entry removed, got %v", err)
	}
}

func TestCartClear(t *testing.T) {
	cart := services.NewCartService(zap.NewNop())
	cart.AddEntry("sess", cartEntry("a", 2100, 1))
	cart.Clear("sess")
	if got := len(cart.Items("sess")); got != 0 {
		t.Fatalf("expected empty cart, got %d entries", got)
	}
}
