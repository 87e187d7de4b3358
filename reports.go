package resale

import "sort"

// Summary provides an at-a-glance overview of the whole book. It is a pure
// fold over all shipments, recomputed on every call and never cached.
type Summary struct {
	TotalCost          Money
	TotalRevenue       Money
	TotalProfit        Money
	ShipmentCount      int
	UnsoldProductCount int
}

// Summary folds every shipment into the collection-level overview.
func (b *Book) Summary() Summary {
	s := Summary{
		TotalCost:    M(0, BaseCurrency),
		TotalRevenue: M(0, BaseCurrency),
		TotalProfit:  M(0, BaseCurrency),
	}
	for sh := range b.Shipments() {
		s.TotalCost = s.TotalCost.Add(sh.TotalCost)
		s.TotalRevenue = s.TotalRevenue.Add(sh.TotalSellPrice)
		s.TotalProfit = s.TotalProfit.Add(sh.Profit)
		s.ShipmentCount++
		s.UnsoldProductCount += len(sh.UnsoldProducts())
	}
	return s
}

// ProfitPoint is one shipment's profit plotted at its shipment date.
type ProfitPoint struct {
	Date   Date
	Profit Money
}

// ProfitHistory returns one point per shipment in chronological order, for
// the profit-over-time chart.
func (b *Book) ProfitHistory() []ProfitPoint {
	points := make([]ProfitPoint, 0, len(b.shipments))
	for s := range b.Shipments() {
		points = append(points, ProfitPoint{Date: s.Date, Profit: s.Profit})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// Breakdown opposes total cost to total profit for the cost-vs-profit
// chart. A net loss is floored at zero, as a share of a whole cannot be
// negative.
type Breakdown struct {
	Cost   Money
	Profit Money
}

// Breakdown folds the book into the cost-vs-profit split.
func (b *Book) Breakdown() Breakdown {
	summary := b.Summary()
	profit := summary.TotalProfit
	if profit.IsNegative() {
		profit = M(0, BaseCurrency)
	}
	return Breakdown{Cost: summary.TotalCost, Profit: profit}
}
