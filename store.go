package resale

import (
	"fmt"
	"iter"

	"github.com/shopspring/decimal"
)

// Book owns the whole shipment collection and is the only writer to it.
//
// All operations run to completion synchronously; there is exactly one
// logical actor mutating the book at a time, so no locking is needed. Every
// mutating operation recomputes the affected shipment before returning, and
// a rejected operation leaves the book untouched.
type Book struct {
	shipments []*Shipment
	rates     Rates
	editing   int64 // id of the shipment being edited, 0 when no session is open
}

// NewBook creates an empty book with the default rate table.
func NewBook() *Book {
	return &Book{rates: DefaultRates()}
}

// Rates returns the rate table used to convert entry amounts.
func (b *Book) Rates() Rates { return b.rates }

// Len returns the number of shipments.
func (b *Book) Len() int { return len(b.shipments) }

// Shipments iterates over shipments in insertion order.
func (b *Book) Shipments() iter.Seq[*Shipment] {
	return func(yield func(*Shipment) bool) {
		for _, s := range b.shipments {
			if !yield(s) {
				return
			}
		}
	}
}

// Shipment returns the shipment with this id.
func (b *Book) Shipment(id int64) (*Shipment, error) {
	for _, s := range b.shipments {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("shipment %d: %w", id, ErrNotFound)
}

// nextID returns an id greater than every shipment and product id in the
// book. Ids are numeric in the persisted layout, so they are allocated
// sequentially rather than generated.
func (b *Book) nextID() int64 {
	var max int64
	for _, s := range b.shipments {
		if s.ID > max {
			max = s.ID
		}
		for _, p := range s.Products {
			if p.ID > max {
				max = p.ID
			}
		}
	}
	return max + 1
}

// newShipment assembles and recomputes a shipment from validated parts,
// allocating ids for products that have none.
func (b *Book) newShipment(id int64, day Date, expenses Expenses, products []Product) *Shipment {
	s := &Shipment{ID: id, Date: day, Products: products, Expenses: expenses}
	if s.Expenses == nil {
		s.Expenses = Expenses{}
	}
	next := b.nextID()
	if id >= next {
		next = id + 1
	}
	for i := range s.Products {
		if s.Products[i].ID == 0 {
			s.Products[i].ID = next
			next++
		}
	}
	s.Recompute()
	return s
}

// Add records a new shipment, or replaces the shipment under edit when an
// edit session is open. The session is closed either way the submission
// ends. A shipment needs a date and at least one valid product; callers
// filter invalid product entries before submitting.
func (b *Book) Add(day Date, expenses Expenses, products []Product) (*Shipment, error) {
	if day.IsZero() {
		return nil, NewValidationError("invalid shipment", ValidationDetail{Field: "date", Message: "is required"})
	}
	if len(products) == 0 {
		return nil, NewValidationError("invalid shipment", ValidationDetail{Field: "products", Message: "at least one valid product is required"})
	}

	if b.editing != 0 {
		id := b.editing
		b.editing = 0
		return b.Update(id, day, expenses, products)
	}

	s := b.newShipment(b.nextID(), day, expenses, products)
	b.shipments = append(b.shipments, s)
	return s, nil
}

// Update replaces an existing shipment in place, preserving its id and its
// position in the collection.
func (b *Book) Update(id int64, day Date, expenses Expenses, products []Product) (*Shipment, error) {
	if day.IsZero() {
		return nil, NewValidationError("invalid shipment", ValidationDetail{Field: "date", Message: "is required"})
	}
	if len(products) == 0 {
		return nil, NewValidationError("invalid shipment", ValidationDetail{Field: "products", Message: "at least one valid product is required"})
	}
	for i, s := range b.shipments {
		if s.ID == id {
			b.shipments[i] = b.newShipment(id, day, expenses, products)
			return b.shipments[i], nil
		}
	}
	return nil, fmt.Errorf("shipment %d: %w", id, ErrNotFound)
}

// Delete removes a shipment. The caller owns the confirmation step: by the
// time Delete is called the destruction is already confirmed.
func (b *Book) Delete(id int64) error {
	for i, s := range b.shipments {
		if s.ID == id {
			b.shipments = append(b.shipments[:i], b.shipments[i+1:]...)
			if b.editing == id {
				b.editing = 0
			}
			return nil
		}
	}
	return fmt.Errorf("shipment %d: %w", id, ErrNotFound)
}

// DeleteProduct removes one product from a shipment and recomputes its
// totals. Removing the last product deletes the shipment itself.
func (b *Book) DeleteProduct(shipmentID, productID int64) error {
	s, err := b.Shipment(shipmentID)
	if err != nil {
		return err
	}
	if !s.removeProduct(productID) {
		return fmt.Errorf("product %d in shipment %d: %w", productID, shipmentID, ErrNotFound)
	}
	if len(s.Products) == 0 {
		return b.Delete(shipmentID)
	}
	s.Recompute()
	return nil
}

// MarkSold records the sale of a product at a base-currency price and
// recomputes the shipment totals. A price that is absent or not strictly
// positive rejects the operation without touching the product.
func (b *Book) MarkSold(shipmentID, productID int64, price decimal.Decimal) error {
	s, err := b.Shipment(shipmentID)
	if err != nil {
		return err
	}
	p := s.Product(productID)
	if p == nil {
		return fmt.Errorf("product %d in shipment %d: %w", productID, shipmentID, ErrNotFound)
	}
	if err := p.MarkSold(price); err != nil {
		return err
	}
	s.Recompute()
	return nil
}

// BeginEdit opens an edit session on a shipment and returns it so the caller
// can pre-load its entry form. At most one session is open at a time;
// beginning a new one replaces the previous pointer.
func (b *Book) BeginEdit(id int64) (*Shipment, error) {
	s, err := b.Shipment(id)
	if err != nil {
		return nil, err
	}
	b.editing = id
	return s, nil
}

// CancelEdit closes the edit session, if any.
func (b *Book) CancelEdit() { b.editing = 0 }

// Editing returns the id of the shipment under edit, if a session is open.
func (b *Book) Editing() (int64, bool) { return b.editing, b.editing != 0 }
