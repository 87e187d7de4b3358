package resale

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON implements the json.Marshaler interface for Product, keeping
// the field order canonical. Amounts are persisted with full digits so that
// decoding re-derives the exact same values.
func (p Product) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("name", p.Name)
	w.Append("size", p.Size)
	w.Append("currency", p.Currency)
	w.Append("rawCost", p.RawCost)
	w.Append("cost", p.Cost.Amount())
	w.Append("sold", p.Sold)
	w.Append("sellPrice", p.SellPrice.Amount())
	w.Append("profit", p.Profit.Amount())
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Shipment. The
// derived totals are persisted too: they make the file meaningful on its
// own, but decoding always recomputes them from the parts.
func (s Shipment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", s.ID)
	w.Append("date", s.Date)
	w.Append("products", s.Products)

	var ew jsonObjectWriter
	for _, c := range ExpenseCategories {
		ew.Append(string(c), s.Expenses.Get(c).Amount())
	}
	raw, err := ew.MarshalJSON()
	if err != nil {
		return nil, err
	}
	w.Embed(raw)

	w.Append("totalExpenses", s.TotalExpenses.Amount())
	w.Append("totalProductCost", s.TotalProductCost.Amount())
	w.Append("totalSellPrice", s.TotalSellPrice.Amount())
	w.Append("totalCost", s.TotalCost.Amount())
	w.Append("profit", s.Profit.Amount())
	return w.MarshalJSON()
}

// productRec is a specialized struct for decoding json. Only the raw entry
// fields are read; derived fields are recomputed.
type productRec struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Size      Size            `json:"size"`
	Currency  string          `json:"currency"`
	RawCost   decimal.Decimal `json:"rawCost"`
	Sold      bool            `json:"sold"`
	SellPrice decimal.Decimal `json:"sellPrice"`
}

// shipmentRec is a specialized struct for decoding json.
type shipmentRec struct {
	ID         int64           `json:"id"`
	Date       Date            `json:"date"`
	Products   []productRec    `json:"products"`
	Transport  decimal.Decimal `json:"transport"`
	VAT        decimal.Decimal `json:"vat"`
	Ads        decimal.Decimal `json:"ads"`
	Processing decimal.Decimal `json:"processing"`
}

func (r shipmentRec) expenses() Expenses {
	// Expense amounts are already in the base currency in the data file.
	return Expenses{
		ExpenseTransport:  M(r.Transport, BaseCurrency),
		ExpenseVAT:        M(r.VAT, BaseCurrency),
		ExpenseAds:        M(r.Ads, BaseCurrency),
		ExpenseProcessing: M(r.Processing, BaseCurrency),
	}
}

// EncodeShipment marshals a single shipment to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeShipment(w io.Writer, s *Shipment) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal shipment %d: %w", s.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write shipment %d: %w", s.ID, err)
	}
	return nil
}

// EncodeBook persists the whole collection to an io.Writer in canonical
// JSONL format, one shipment per line, in collection order.
func EncodeBook(w io.Writer, b *Book) error {
	for s := range b.Shipments() {
		if err := EncodeShipment(w, s); err != nil {
			return err
		}
	}
	return nil
}

// DecodeBook decodes a book from a stream of JSONL data. Each line holds one
// shipment; every derived field is recomputed from the raw entry fields, so
// decode(encode(book)) always yields an identical book.
func DecodeBook(r io.Reader) (*Book, error) {
	book := NewBook()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var rec shipmentRec
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("could not decode shipment line %q: %w", string(lineBytes), err)
		}
		// Same requirement as on creation: a shipment always has a date.
		if rec.Date.IsZero() {
			return nil, fmt.Errorf("shipment %d has no date", rec.ID)
		}

		products := make([]Product, 0, len(rec.Products))
		for _, pr := range rec.Products {
			p, err := NewProduct(pr.ID, pr.Name, pr.Size, pr.RawCost, pr.Currency, pr.Sold, pr.SellPrice, book.rates)
			if err != nil {
				return nil, fmt.Errorf("invalid product %d in shipment %d: %w", pr.ID, rec.ID, err)
			}
			products = append(products, p)
		}
		if len(products) == 0 {
			return nil, fmt.Errorf("shipment %d has no products", rec.ID)
		}

		s := book.newShipment(rec.ID, rec.Date, rec.expenses(), products)
		book.shipments = append(book.shipments, s)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	return book, nil
}
