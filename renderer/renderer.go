// Package renderer turns the resale book's reports into markdown. It only
// consumes core state, it never mutates it.
package renderer

import "github.com/ivayloz/resale"

// amount formats a money value for table cells.
func amount(m resale.Money) string { return m.String() }

// signed formats a profit value, tagging losses so they stay visually
// distinguishable once rendered.
func signed(m resale.Money) string {
	if m.IsNegative() {
		return m.String() + " (loss)"
	}
	return m.String()
}
