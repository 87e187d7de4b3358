package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ivayloz/resale"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite the book file in its canonical form"
}
func (*fmtCmd) Usage() string {
	return `rsl fmt

  Reads the whole book, re-derives every computed field and writes the file
  back in canonical JSONL format.

`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := loadBook()
	if err := resale.SaveBook(*bookFile, book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book file %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %q.\n", *bookFile)
	return subcommands.ExitSuccess
}
