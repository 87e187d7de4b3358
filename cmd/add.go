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

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	date     string
	products productList
	expenses expenseFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new shipment with its products and expenses" }
func (*addCmd) Usage() string {
	return `rsl add [-d <date>] [-transport <amount>] [-vat <amount>] [-ads <amount>] [-fee <amount>] -p <product> [-p <product> ...]

  Records a shipment. Each -p flag adds one product as
  "name,size,cost,currency[,sold=price]"; product costs and expenses entered
  in USD are converted to EUR at the fixed rate. Invalid product entries are
  skipped with a message; the shipment needs a date and at least one valid
  product.

Usage Examples:
# One sold jacket bought in USD, with transport costs.
$ rsl add -d 2024-01-01 -transport 10USD -p "Jacket,M,100,USD,sold=150"

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", resale.Today().String(), "Shipment date (YYYY-MM-DD).")
	f.Var(&c.products, "p", `Product entry "name,size,cost,currency[,sold=price]". Repeatable.`)
	c.expenses.register(f)
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := resale.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	book := loadBook()
	rates := book.Rates()

	s, err := book.Add(day, c.expenses.expenses(rates), buildProducts(c.products, rates))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	saveBook(book)
	printMarkdown(renderer.ShipmentMarkdown(s))
	fmt.Fprintf(os.Stderr, "✅ Shipment %d recorded.\n", s.ID)
	return subcommands.ExitSuccess
}
