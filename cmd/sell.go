package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ivayloz/resale/renderer"
	"github.com/shopspring/decimal"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	id      int64
	product int64
	price   string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "mark a product as sold at a price" }
func (*sellCmd) Usage() string {
	return `rsl sell -id <shipment> -p <product> -price <amount>

  Marks a product as sold at the given EUR price and recomputes the shipment
  totals. The price must be greater than zero.

`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the shipment.")
	f.Int64Var(&c.product, "p", 0, "Id of the product sold.")
	f.StringVar(&c.price, "price", "", "Sell price in EUR.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price %q: %v\n", c.price, err)
		return subcommands.ExitUsageError
	}

	book := loadBook()
	if err := book.MarkSold(c.id, c.product, price); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	saveBook(book)
	s, err := book.Shipment(c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ShipmentMarkdown(s))
	fmt.Fprintf(os.Stderr, "✅ Product %d sold.\n", c.product)
	return subcommands.ExitSuccess
}
