package resale

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BaseCurrency is the currency in which every aggregate is computed and stored.
const BaseCurrency = "EUR"

// Currencies lists the currencies accepted on entry forms.
var Currencies = []string{"EUR", "USD"}

// ParseCurrency validates an entry currency code.
func ParseCurrency(s string) (string, error) {
	for _, c := range Currencies {
		if s == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown currency %q, want one of %v", s, Currencies)
}

// Rates converts amounts from their entry currency into the base currency.
//
// The table is fixed: this tracker deliberately does not fetch market rates.
// The historical 0.92 USD factor is preserved as-is; see DESIGN.md.
type Rates struct {
	base   string
	toBase map[string]decimal.Decimal
}

// DefaultRates returns the rate table used by the tracker: EUR base,
// USD multiplied by 0.92.
func DefaultRates() Rates {
	return Rates{
		base: BaseCurrency,
		toBase: map[string]decimal.Decimal{
			"USD": decimal.RequireFromString("0.92"),
		},
	}
}

// Base returns the base currency of the table.
func (r Rates) Base() string { return r.base }

// Convert converts an amount in the given entry currency into base-currency
// money. The base currency passes through unchanged; a currency without a
// rate also passes through, callers validate currencies before converting.
func (r Rates) Convert(amount decimal.Decimal, currency string) Money {
	if currency == r.base {
		return M(amount, r.base)
	}
	if rate, ok := r.toBase[currency]; ok {
		return M(amount.Mul(rate), r.base)
	}
	return M(amount, r.base)
}

// ConvertMoney converts a money value into the base currency.
func (r Rates) ConvertMoney(m Money) Money {
	return r.Convert(m.Amount(), m.Currency())
}
