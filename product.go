package resale

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Size is the garment size of a product.
type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

// Sizes lists the valid sizes in display order.
var Sizes = []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL}

// ParseSize validates a size label.
func ParseSize(s string) (Size, error) {
	for _, size := range Sizes {
		if Size(s) == size {
			return size, nil
		}
	}
	return "", NewValidationError("invalid size", ValidationDetail{
		Field:   "size",
		Message: "want one of XS, S, M, L, XL, XXL",
	})
}

// Product is one product line within a shipment.
//
// Cost, SellPrice and Profit are always in the base currency. SellPrice and
// Profit are derived from the sale state and are both zero while the product
// is unsold.
type Product struct {
	ID        int64
	Name      string
	Size      Size
	Currency  string          // entry currency of RawCost
	RawCost   decimal.Decimal // cost as entered, in Currency
	Cost      Money           // RawCost converted to the base currency
	Sold      bool
	SellPrice Money
	Profit    Money
}

// NewProduct validates the raw entry fields and returns a fully derived
// product. Negative costs and sell prices are normalized to zero before
// validation, matching the entry form behavior.
func NewProduct(id int64, name string, size Size, rawCost decimal.Decimal, currency string, sold bool, sellPrice decimal.Decimal, rates Rates) (Product, error) {
	var details []ValidationDetail

	name = strings.TrimSpace(name)
	if name == "" {
		details = append(details, ValidationDetail{Field: "name", Message: "must not be empty"})
	}
	if _, err := ParseSize(string(size)); err != nil {
		details = append(details, ValidationDetail{Field: "size", Message: "want one of XS, S, M, L, XL, XXL"})
	}
	if _, err := ParseCurrency(currency); err != nil {
		details = append(details, ValidationDetail{Field: "currency", Message: err.Error()})
	}

	if rawCost.IsNegative() {
		rawCost = decimal.Zero
	}
	if sellPrice.IsNegative() {
		sellPrice = decimal.Zero
	}

	cost := rates.Convert(rawCost, currency)
	if !cost.IsPositive() {
		details = append(details, ValidationDetail{Field: "cost", Message: "must be greater than zero"})
	}

	if len(details) > 0 {
		return Product{}, NewValidationError("invalid product", details...)
	}

	p := Product{
		ID:       id,
		Name:     name,
		Size:     size,
		Currency: currency,
		RawCost:  rawCost,
		Cost:     cost,
		Sold:     sold,
	}
	if sold {
		p.SellPrice = M(sellPrice, rates.Base())
	}
	p.deriveSale()
	return p, nil
}

// deriveSale recomputes the sale-dependent fields. Unsold products carry no
// sell price and no profit, whatever was entered.
func (p *Product) deriveSale() {
	if !p.Sold {
		p.SellPrice = M(0, p.Cost.Currency())
		p.Profit = M(0, p.Cost.Currency())
		return
	}
	p.Profit = p.SellPrice.Sub(p.Cost)
}

// MarkSold records a sale at the given base-currency price. The price must
// be strictly positive, otherwise the product is left unchanged.
func (p *Product) MarkSold(price decimal.Decimal) error {
	if !price.IsPositive() {
		return NewValidationError("invalid sell price", ValidationDetail{
			Field:   "sellPrice",
			Message: "must be greater than zero",
		})
	}
	p.Sold = true
	p.SellPrice = M(price, p.Cost.Currency())
	p.deriveSale()
	return nil
}

// MarkUnsold clears the sale state, zeroing sell price and profit.
func (p *Product) MarkUnsold() {
	p.Sold = false
	p.deriveSale()
}

// Loss reports whether the product sold below its converted cost.
func (p Product) Loss() bool { return p.Profit.IsNegative() }

// Equal reports field-by-field equality, comparing amounts by value.
func (p Product) Equal(o Product) bool {
	return p.ID == o.ID &&
		p.Name == o.Name &&
		p.Size == o.Size &&
		p.Currency == o.Currency &&
		p.RawCost.Equal(o.RawCost) &&
		p.Cost.Equal(o.Cost) &&
		p.Sold == o.Sold &&
		p.SellPrice.Equal(o.SellPrice) &&
		p.Profit.Equal(o.Profit)
}
