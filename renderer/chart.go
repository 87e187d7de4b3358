package renderer

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/ivayloz/resale"
	md "github.com/nao1215/markdown"
)

// chartWidth is the widest bar, in characters.
const chartWidth = 30

// ChartsMarkdown renders the profit-over-time series and the
// cost-vs-profit breakdown.
func ChartsMarkdown(points []resale.ProfitPoint, bd resale.Breakdown) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Charts")

	doc.H2("Profit over time")
	if len(points) == 0 {
		doc.PlainText("No shipments yet.")
	} else {
		doc.CodeBlocks(md.SyntaxHighlightText, profitBars(points))
	}

	doc.H2("Cost vs profit")
	doc.Table(md.TableSet{
		Header: []string{"Share", "Value"},
		Rows: [][]string{
			{"Cost", amount(bd.Cost)},
			{"Profit", amount(bd.Profit)},
		},
	})

	return doc.String()
}

// profitBars draws one horizontal bar per shipment, scaled to the largest
// absolute profit. Losses are drawn with a lighter block.
func profitBars(points []resale.ProfitPoint) string {
	var maxAbs float64
	for _, p := range points {
		if abs := math.Abs(p.Profit.AsFloat()); abs > maxAbs {
			maxAbs = abs
		}
	}

	lines := make([]string, 0, len(points))
	for _, p := range points {
		value := p.Profit.AsFloat()
		width := 0
		if maxAbs > 0 {
			width = int(math.Round(math.Abs(value) / maxAbs * chartWidth))
		}
		if width == 0 && value != 0 {
			width = 1
		}
		block := "█"
		if p.Profit.IsNegative() {
			block = "░"
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", p.Date, strings.Repeat(block, width), p.Profit.SignedString()))
	}
	return strings.Join(lines, "\n")
}
