package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// rmCmd holds the flags for the 'rm' subcommand.
type rmCmd struct {
	id  int64
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a shipment and all its products" }
func (*rmCmd) Usage() string {
	return `rsl rm -id <shipment> [-y]

  Deletes a shipment. Asks for confirmation on the terminal unless -y is given.

`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the shipment to delete.")
	f.BoolVar(&c.yes, "y", false, "Delete without asking for confirmation.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := loadBook()

	s, err := book.Shipment(c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if !c.yes && !confirm(fmt.Sprintf("Delete shipment %d from %s with %d product(s)?", s.ID, s.Date, len(s.Products))) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitSuccess
	}

	if err := book.Delete(c.id); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	saveBook(book)
	fmt.Fprintf(os.Stderr, "🗑 Shipment %d deleted.\n", c.id)
	return subcommands.ExitSuccess
}
