// Package cmd implements the CLI application to manage the resale shipment book.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/ivayloz/resale"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "shipments")
	c.Register(&editCmd{}, "shipments")
	c.Register(&rmCmd{}, "shipments")
	c.Register(&fmtCmd{}, "shipments")

	c.Register(&sellCmd{}, "products")
	c.Register(&rmProductCmd{}, "products")

	c.Register(&listCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("f", "shipments.jsonl", "Path to the shipment book file (JSONL format)")

// loadBook opens the app book file. A missing or corrupt file degrades to
// an empty book with a warning.
func loadBook() *resale.Book {
	return resale.LoadBook(*bookFile)
}

// saveBook persists the book after a mutation. A write failure is only a
// warning: the in-memory state stays authoritative for the session.
func saveBook(b *resale.Book) {
	if err := resale.SaveBook(*bookFile, b); err != nil {
		log.Printf("warning: could not save book file %q: %v", *bookFile, err)
	}
}

// printMarkdown renders markdown content to the terminal.
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Print(content)
		return
	}
	fmt.Print(out)
}

// confirm asks the user on the terminal before a destructive operation.
func confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.TrimSpace(strings.ToLower(line))
	return line == "y" || line == "yes"
}
