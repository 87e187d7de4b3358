package resale

// ExpenseCategory names one of the shipment-level expense fields.
type ExpenseCategory string

const (
	ExpenseTransport  ExpenseCategory = "transport"
	ExpenseVAT        ExpenseCategory = "vat"
	ExpenseAds        ExpenseCategory = "ads"
	ExpenseProcessing ExpenseCategory = "processing"
)

// ExpenseCategories lists the tracked categories in display and
// persistence order.
var ExpenseCategories = []ExpenseCategory{ExpenseTransport, ExpenseVAT, ExpenseAds, ExpenseProcessing}

// Expenses holds the shipment-level expense amounts, each already converted
// to the base currency.
type Expenses map[ExpenseCategory]Money

// Get returns the amount for a category, zero when unset.
func (e Expenses) Get(c ExpenseCategory) Money {
	if m, ok := e[c]; ok {
		return m
	}
	return M(0, BaseCurrency)
}

// Total sums all categories.
func (e Expenses) Total() Money {
	total := M(0, BaseCurrency)
	for _, c := range ExpenseCategories {
		total = total.Add(e.Get(c))
	}
	return total
}

// Equal compares category by category.
func (e Expenses) Equal(o Expenses) bool {
	for _, c := range ExpenseCategories {
		if !e.Get(c).Equal(o.Get(c)) {
			return false
		}
	}
	return true
}

// Shipment is a batch of products acquired together, sharing common expenses.
//
// All Total* fields and Profit are derived by Recompute and must never be set
// directly: every mutation of a product or expense goes through Recompute so
// the stored aggregates cannot drift from the fold.
type Shipment struct {
	ID       int64
	Date     Date
	Products []Product // insertion order preserved for display
	Expenses Expenses

	TotalExpenses    Money
	TotalProductCost Money
	TotalSellPrice   Money
	TotalCost        Money
	Profit           Money
}

// Recompute rebuilds every derived total from the product set and the
// expense fields, in dependency order: product totals, then shipment
// totals, then profit.
func (s *Shipment) Recompute() {
	totalProductCost := M(0, BaseCurrency)
	totalSellPrice := M(0, BaseCurrency)
	for i := range s.Products {
		s.Products[i].deriveSale()
		totalProductCost = totalProductCost.Add(s.Products[i].Cost)
		if s.Products[i].Sold {
			totalSellPrice = totalSellPrice.Add(s.Products[i].SellPrice)
		}
	}

	s.TotalProductCost = totalProductCost
	s.TotalSellPrice = totalSellPrice
	s.TotalExpenses = s.Expenses.Total()
	s.TotalCost = s.TotalProductCost.Add(s.TotalExpenses)
	s.Profit = s.TotalSellPrice.Sub(s.TotalCost)
}

// Product returns the product with this id, or nil if unknown.
func (s *Shipment) Product(id int64) *Product {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i]
		}
	}
	return nil
}

// removeProduct deletes the product with this id, preserving the order of
// the remaining products. It reports whether a product was removed.
func (s *Shipment) removeProduct(id int64) bool {
	for i := range s.Products {
		if s.Products[i].ID == id {
			s.Products = append(s.Products[:i], s.Products[i+1:]...)
			return true
		}
	}
	return false
}

// SoldProducts returns the sold products in insertion order.
func (s *Shipment) SoldProducts() []Product {
	var sold []Product
	for _, p := range s.Products {
		if p.Sold {
			sold = append(sold, p)
		}
	}
	return sold
}

// UnsoldProducts returns the unsold products in insertion order.
func (s *Shipment) UnsoldProducts() []Product {
	var unsold []Product
	for _, p := range s.Products {
		if !p.Sold {
			unsold = append(unsold, p)
		}
	}
	return unsold
}

// Equal reports deep equality, comparing amounts by value.
func (s Shipment) Equal(o Shipment) bool {
	if s.ID != o.ID || s.Date != o.Date || len(s.Products) != len(o.Products) {
		return false
	}
	for i := range s.Products {
		if !s.Products[i].Equal(o.Products[i]) {
			return false
		}
	}
	return s.Expenses.Equal(o.Expenses) &&
		s.TotalExpenses.Equal(o.TotalExpenses) &&
		s.TotalProductCost.Equal(o.TotalProductCost) &&
		s.TotalSellPrice.Equal(o.TotalSellPrice) &&
		s.TotalCost.Equal(o.TotalCost) &&
		s.Profit.Equal(o.Profit)
}
