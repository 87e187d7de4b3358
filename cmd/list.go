package cmd

import (
	"context"
	"flag"
	"slices"

	"github.com/google/subcommands"
	"github.com/ivayloz/resale/renderer"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display all shipments with their products and totals" }
func (*listCmd) Usage() string {
	return `rsl list

  Renders every shipment as a card: sold and unsold products, expenses and
  derived totals.

`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := loadBook()
	printMarkdown(renderer.ShipmentsMarkdown(slices.Collect(book.Shipments())))
	return subcommands.ExitSuccess
}
