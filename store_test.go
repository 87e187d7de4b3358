package resale

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// setupBook creates a book with two shipments, the second holding two unsold
// products. Shipment and product ids come from one shared sequence, so the
// created shipments are returned rather than assumed by id.
func setupBook(t *testing.T) (b *Book, first, second *Shipment) {
	t.Helper()
	b = NewBook()

	first, err := b.Add(MustParse("2024-01-01"), Expenses{}, []Product{
		mustProduct(t, 0, "Jacket", "100", "EUR", true, "150"),
	})
	if err != nil {
		t.Fatalf("Add() returned unexpected error: %v", err)
	}
	second, err = b.Add(MustParse("2024-02-01"), Expenses{ExpenseTransport: M(10, "EUR")}, []Product{
		mustProduct(t, 0, "Shirt", "50", "EUR", false, ""),
		mustProduct(t, 0, "Coat", "100", "USD", false, ""),
	})
	if err != nil {
		t.Fatalf("Add() returned unexpected error: %v", err)
	}
	return b, first, second
}

func TestBook_Add_Validation(t *testing.T) {
	b := NewBook()

	t.Run("missing date", func(t *testing.T) {
		_, err := b.Add(Date{}, Expenses{}, []Product{mustProduct(t, 0, "Jacket", "100", "EUR", false, "")})
		if _, ok := IsValidationError(err); !ok {
			t.Errorf("Add() error = %v, want a ValidationError", err)
		}
	})
	t.Run("no products", func(t *testing.T) {
		_, err := b.Add(MustParse("2024-01-01"), Expenses{}, nil)
		if _, ok := IsValidationError(err); !ok {
			t.Errorf("Add() error = %v, want a ValidationError", err)
		}
	})
	if b.Len() != 0 {
		t.Errorf("rejected Add() mutated the book, Len() = %d", b.Len())
	}
}

func TestBook_Add_AllocatesIDs(t *testing.T) {
	b, first, second := setupBook(t)

	// Shipments and products draw from one shared sequence: the first
	// shipment's product consumes an id, so the second shipment's id is
	// past it, not simply the next shipment number.
	if first.Products[0].ID <= first.ID {
		t.Errorf("product id %d not past shipment id %d", first.Products[0].ID, first.ID)
	}
	if second.ID <= first.Products[0].ID {
		t.Errorf("second shipment id %d not past product id %d", second.ID, first.Products[0].ID)
	}

	var seen = map[int64]bool{}
	for s := range b.Shipments() {
		if seen[s.ID] {
			t.Errorf("duplicate shipment id %d", s.ID)
		}
		seen[s.ID] = true
		for _, p := range s.Products {
			if p.ID == 0 {
				t.Errorf("product %q has no id", p.Name)
			}
			if seen[p.ID] {
				t.Errorf("duplicate product id %d", p.ID)
			}
			seen[p.ID] = true
		}
	}
}

func TestBook_Update(t *testing.T) {
	b, first, _ := setupBook(t)

	updated, err := b.Update(first.ID, MustParse("2024-01-15"), Expenses{}, []Product{
		mustProduct(t, 0, "Jacket", "120", "EUR", true, "180"),
	})
	if err != nil {
		t.Fatalf("Update() returned unexpected error: %v", err)
	}
	if updated.ID != first.ID {
		t.Errorf("Update() changed the shipment id to %d", updated.ID)
	}
	if want := eur(t, "60"); !updated.Profit.Equal(want) {
		t.Errorf("Profit after update = %s, want %s", updated.Profit, want)
	}

	if _, err := b.Update(99, MustParse("2024-01-15"), Expenses{}, []Product{
		mustProduct(t, 0, "Jacket", "120", "EUR", false, ""),
	}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(99) error = %v, want ErrNotFound", err)
	}
}

func TestBook_EditSession(t *testing.T) {
	b, first, second := setupBook(t)

	if _, open := b.Editing(); open {
		t.Fatal("a fresh book has an open edit session")
	}

	s, err := b.BeginEdit(first.ID)
	if err != nil {
		t.Fatalf("BeginEdit() returned unexpected error: %v", err)
	}
	if s.ID != first.ID {
		t.Fatalf("BeginEdit() returned shipment %d, want %d", s.ID, first.ID)
	}
	if id, open := b.Editing(); !open || id != first.ID {
		t.Fatalf("Editing() = %d,%v, want %d,true", id, open, first.ID)
	}

	// Submitting while the session is open replaces the shipment in place.
	replaced, err := b.Add(MustParse("2024-01-20"), Expenses{}, []Product{
		mustProduct(t, 0, "Jacket", "110", "EUR", false, ""),
	})
	if err != nil {
		t.Fatalf("Add() under edit returned unexpected error: %v", err)
	}
	if replaced.ID != first.ID {
		t.Errorf("Add() under edit created shipment %d, want in-place replace of %d", replaced.ID, first.ID)
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d after in-place edit, want 2", b.Len())
	}
	if _, open := b.Editing(); open {
		t.Error("edit session still open after submission")
	}

	// CancelEdit clears the pointer.
	if _, err := b.BeginEdit(second.ID); err != nil {
		t.Fatalf("BeginEdit(%d) returned unexpected error: %v", second.ID, err)
	}
	b.CancelEdit()
	if _, open := b.Editing(); open {
		t.Error("edit session still open after CancelEdit")
	}
}

func TestBook_Delete(t *testing.T) {
	b, first, _ := setupBook(t)

	if err := b.Delete(first.ID); err != nil {
		t.Fatalf("Delete() returned unexpected error: %v", err)
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d after delete, want 1", b.Len())
	}
	if err := b.Delete(first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete(%d) error = %v, want ErrNotFound", first.ID, err)
	}
}

func TestBook_DeleteProduct(t *testing.T) {
	b, _, s := setupBook(t)

	if err := b.DeleteProduct(s.ID, s.Products[0].ID); err != nil {
		t.Fatalf("DeleteProduct() returned unexpected error: %v", err)
	}
	if len(s.Products) != 1 {
		t.Fatalf("shipment has %d products after delete, want 1", len(s.Products))
	}
	// Totals are recomputed from the remaining product (100 USD -> 92 EUR,
	// plus 10 transport).
	if want := eur(t, "92"); !s.TotalProductCost.Equal(want) {
		t.Errorf("TotalProductCost = %s, want %s", s.TotalProductCost, want)
	}
	if want := eur(t, "102"); !s.TotalCost.Equal(want) {
		t.Errorf("TotalCost = %s, want %s", s.TotalCost, want)
	}

	// Removing the last product removes the shipment itself.
	if err := b.DeleteProduct(s.ID, s.Products[0].ID); err != nil {
		t.Fatalf("DeleteProduct() returned unexpected error: %v", err)
	}
	if _, err := b.Shipment(s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Shipment(%d) error = %v after cascade, want ErrNotFound", s.ID, err)
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d after cascade, want 1", b.Len())
	}
}

func TestBook_MarkSold(t *testing.T) {
	b, _, s := setupBook(t)
	productID := s.Products[0].ID

	t.Run("non-positive price is rejected and changes nothing", func(t *testing.T) {
		before := *s
		before.Products = append([]Product(nil), s.Products...)
		err := b.MarkSold(s.ID, productID, decimal.Zero)
		if _, ok := IsValidationError(err); !ok {
			t.Fatalf("MarkSold(0) error = %v, want a ValidationError", err)
		}
		if !s.Equal(before) {
			t.Error("rejected MarkSold mutated the shipment")
		}
	})

	t.Run("unknown ids", func(t *testing.T) {
		if err := b.MarkSold(99, productID, d("10")); !errors.Is(err, ErrNotFound) {
			t.Errorf("MarkSold(unknown shipment) error = %v, want ErrNotFound", err)
		}
		if err := b.MarkSold(s.ID, 9999, d("10")); !errors.Is(err, ErrNotFound) {
			t.Errorf("MarkSold(unknown product) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("valid sale recomputes the shipment", func(t *testing.T) {
		if err := b.MarkSold(s.ID, productID, d("60")); err != nil {
			t.Fatalf("MarkSold() returned unexpected error: %v", err)
		}
		p := s.Product(productID)
		if !p.Sold {
			t.Error("product not marked sold")
		}
		if want := eur(t, "10"); !p.Profit.Equal(want) {
			t.Errorf("product profit = %s, want %s", p.Profit, want)
		}
		if want := eur(t, "60"); !s.TotalSellPrice.Equal(want) {
			t.Errorf("TotalSellPrice = %s, want %s", s.TotalSellPrice, want)
		}
	})
}

func TestBook_Summary(t *testing.T) {
	b, _, _ := setupBook(t)
	got := b.Summary()

	// Shipment 1: cost 100, revenue 150, profit 50.
	// Shipment 2: products 50 + 92, transport 10, no revenue, profit -152.
	if want := eur(t, "252"); !got.TotalCost.Equal(want) {
		t.Errorf("TotalCost = %s, want %s", got.TotalCost, want)
	}
	if want := eur(t, "150"); !got.TotalRevenue.Equal(want) {
		t.Errorf("TotalRevenue = %s, want %s", got.TotalRevenue, want)
	}
	if want := eur(t, "-102"); !got.TotalProfit.Equal(want) {
		t.Errorf("TotalProfit = %s, want %s", got.TotalProfit, want)
	}
	if got.ShipmentCount != 2 {
		t.Errorf("ShipmentCount = %d, want 2", got.ShipmentCount)
	}
	if got.UnsoldProductCount != 2 {
		t.Errorf("UnsoldProductCount = %d, want 2", got.UnsoldProductCount)
	}
}
