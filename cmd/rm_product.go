package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ivayloz/resale"
)

// rmProductCmd holds the flags for the 'rm-product' subcommand.
type rmProductCmd struct {
	id      int64
	product int64
	yes     bool
}

func (*rmProductCmd) Name() string     { return "rm-product" }
func (*rmProductCmd) Synopsis() string { return "delete one product from a shipment" }
func (*rmProductCmd) Usage() string {
	return `rsl rm-product -id <shipment> -p <product> [-y]

  Deletes one product and recomputes the shipment totals. Removing the last
  product deletes the shipment itself.

`
}

func (c *rmProductCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the shipment.")
	f.Int64Var(&c.product, "p", 0, "Id of the product to delete.")
	f.BoolVar(&c.yes, "y", false, "Delete without asking for confirmation.")
}

func (c *rmProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := loadBook()

	if !c.yes && !confirm(fmt.Sprintf("Delete product %d from shipment %d?", c.product, c.id)) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitSuccess
	}

	if err := book.DeleteProduct(c.id, c.product); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	saveBook(book)
	if _, err := book.Shipment(c.id); errors.Is(err, resale.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "🗑 Product %d deleted; shipment %d had no products left and was deleted too.\n", c.product, c.id)
	} else {
		fmt.Fprintf(os.Stderr, "🗑 Product %d deleted from shipment %d.\n", c.product, c.id)
	}
	return subcommands.ExitSuccess
}
