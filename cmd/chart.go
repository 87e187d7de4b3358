package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/ivayloz/resale/renderer"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct{}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "display the profit-over-time and cost-vs-profit charts" }
func (*chartCmd) Usage() string {
	return `rsl chart

  Draws one profit bar per shipment in chronological order, and the
  cost-vs-profit breakdown of the whole book.

`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := loadBook()
	printMarkdown(renderer.ChartsMarkdown(book.ProfitHistory(), book.Breakdown()))
	return subcommands.ExitSuccess
}
