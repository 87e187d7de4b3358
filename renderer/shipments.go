package renderer

import (
	"bytes"
	"fmt"

	"github.com/ivayloz/resale"
	md "github.com/nao1215/markdown"
)

// ShipmentsMarkdown renders every shipment as a card, newest last.
func ShipmentsMarkdown(shipments []*resale.Shipment) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Shipments")
	if len(shipments) == 0 {
		doc.PlainText("No shipments yet.")
		return doc.String()
	}

	for _, s := range shipments {
		writeShipment(doc, s)
	}
	return doc.String()
}

// ShipmentMarkdown renders a single shipment card.
func ShipmentMarkdown(s *resale.Shipment) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	writeShipment(doc, s)
	return doc.String()
}

func writeShipment(doc *md.Markdown, s *resale.Shipment) {
	doc.H2(fmt.Sprintf("Shipment %d — %s", s.ID, s.Date))

	if sold := s.SoldProducts(); len(sold) > 0 {
		doc.H3(fmt.Sprintf("Sold (%d)", len(sold)))
		rows := make([][]string, 0, len(sold))
		for _, p := range sold {
			rows = append(rows, []string{
				fmt.Sprintf("%d", p.ID),
				fmt.Sprintf("%s (%s)", p.Name, p.Size),
				amount(p.Cost),
				amount(p.SellPrice),
				signed(p.Profit),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Id", "Product", "Cost", "Sale", "Profit"},
			Rows:   rows,
		})
	}

	if unsold := s.UnsoldProducts(); len(unsold) > 0 {
		doc.H3(fmt.Sprintf("Unsold (%d)", len(unsold)))
		rows := make([][]string, 0, len(unsold))
		for _, p := range unsold {
			rows = append(rows, []string{
				fmt.Sprintf("%d", p.ID),
				fmt.Sprintf("%s (%s)", p.Name, p.Size),
				amount(p.Cost),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Id", "Product", "Cost"},
			Rows:   rows,
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"Total", "Value"},
		Rows: [][]string{
			{"Products", amount(s.TotalProductCost)},
			{"Transport", amount(s.Expenses.Get(resale.ExpenseTransport))},
			{"VAT", amount(s.Expenses.Get(resale.ExpenseVAT))},
			{"Ads", amount(s.Expenses.Get(resale.ExpenseAds))},
			{"Processing fee", amount(s.Expenses.Get(resale.ExpenseProcessing))},
			{"Expenses", amount(s.TotalExpenses)},
			{"Cost", amount(s.TotalCost)},
			{"Sale", amount(s.TotalSellPrice)},
			{"Profit", signed(s.Profit)},
		},
	})
}
