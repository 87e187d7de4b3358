package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/ivayloz/resale/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the collection overview" }
func (*summaryCmd) Usage() string {
	return `rsl summary

  Displays total cost, total revenue, total profit, the shipment count and
  how many products are still unsold. Always recomputed from the book.

`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := loadBook()
	printMarkdown(renderer.SummaryMarkdown(book.Summary()))
	return subcommands.ExitSuccess
}
