package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ivayloz/resale"
	"github.com/ivayloz/resale/renderer"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	id       int64
	date     string
	products productList
	expenses expenseFlags
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace an existing shipment in place" }
func (*editCmd) Usage() string {
	return `rsl edit -id <shipment> [-d <date>] [expense flags] [-p <product> ...]

  Re-submits a shipment: the new products and expenses replace the old ones,
  the shipment keeps its id and position. Without any -p flag the command
  only shows the shipment's current state, as a pre-load for the new entry.

`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the shipment to edit.")
	f.StringVar(&c.date, "d", "", "New shipment date (YYYY-MM-DD). Defaults to the current date of the shipment.")
	f.Var(&c.products, "p", `Product entry "name,size,cost,currency[,sold=price]". Repeatable.`)
	c.expenses.register(f)
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := loadBook()

	s, err := book.BeginEdit(c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if len(c.products) == 0 {
		// Show-only: render the pre-load state and leave the book untouched.
		book.CancelEdit()
		printMarkdown(renderer.ShipmentMarkdown(s))
		return subcommands.ExitSuccess
	}

	day := s.Date
	if c.date != "" {
		if day, err = resale.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	rates := book.Rates()
	// The open edit session routes this submission to the shipment in place.
	s, err = book.Add(day, c.expenses.expenses(rates), buildProducts(c.products, rates))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	saveBook(book)
	printMarkdown(renderer.ShipmentMarkdown(s))
	fmt.Fprintf(os.Stderr, "✅ Shipment %d updated.\n", s.ID)
	return subcommands.ExitSuccess
}
