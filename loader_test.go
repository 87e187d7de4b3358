package resale

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBook_MissingFile(t *testing.T) {
	book := LoadBook(filepath.Join(t.TempDir(), "nope.jsonl"))
	if book == nil || book.Len() != 0 {
		t.Fatalf("LoadBook(missing) = %v, want an empty book", book)
	}
}

func TestLoadBook_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.jsonl")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	book := LoadBook(path)
	if book == nil || book.Len() != 0 {
		t.Fatalf("LoadBook(corrupt) = %v, want an empty book", book)
	}
}

func TestSaveLoadBook_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books", "shipments.jsonl")

	book := NewBook()
	original, err := book.Add(MustParse("2024-01-01"), Expenses{ExpenseTransport: M(10, "EUR")}, []Product{
		mustProduct(t, 0, "Jacket", "100", "USD", true, "150"),
	})
	if err != nil {
		t.Fatalf("Add() returned unexpected error: %v", err)
	}

	// SaveBook creates the parent directory as needed.
	if err := SaveBook(path, book); err != nil {
		t.Fatalf("SaveBook() returned unexpected error: %v", err)
	}

	loaded := LoadBook(path)
	if loaded.Len() != 1 {
		t.Fatalf("loaded book has %d shipments, want 1", loaded.Len())
	}
	s, err := loaded.Shipment(original.ID)
	if err != nil {
		t.Fatalf("Shipment(%d) returned unexpected error: %v", original.ID, err)
	}
	if !s.Equal(*original) {
		t.Errorf("loaded shipment differs from original:\n got %+v\nwant %+v", s, original)
	}
}
