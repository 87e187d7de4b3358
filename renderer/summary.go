package renderer

import (
	"bytes"
	"fmt"

	"github.com/ivayloz/resale"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the collection-level overview.
func SummaryMarkdown(s resale.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Overview")

	table := md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total cost", amount(s.TotalCost)},
			{"Total revenue", amount(s.TotalRevenue)},
			{"Total profit", signed(s.TotalProfit)},
			{"Shipments", fmt.Sprintf("%d", s.ShipmentCount)},
			{"Unsold products", fmt.Sprintf("%d", s.UnsoldProductCount)},
		},
	}
	doc.Table(table)

	return doc.String()
}
