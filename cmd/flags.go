package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ivayloz/resale"
	"github.com/shopspring/decimal"
)

// productSpec holds one parsed -p flag. Validation of the fields themselves
// is left to resale.NewProduct, so that a CLI entry and a decoded file entry
// are rejected by the same rules.
type productSpec struct {
	name     string
	size     resale.Size
	cost     decimal.Decimal
	currency string
	sold     bool
	price    decimal.Decimal
}

// productList collects repeated -p flags.
type productList []productSpec

func (l *productList) String() string {
	return fmt.Sprintf("%d product(s)", len(*l))
}

// Set parses "name,size,cost,currency[,sold=price]".
func (l *productList) Set(v string) error {
	parts := strings.Split(v, ",")
	if len(parts) < 4 || len(parts) > 5 {
		return fmt.Errorf("want \"name,size,cost,currency[,sold=price]\", got %q", v)
	}

	cost, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
	if err != nil {
		return fmt.Errorf("invalid cost in %q: %w", v, err)
	}

	spec := productSpec{
		name:     strings.TrimSpace(parts[0]),
		size:     resale.Size(strings.ToUpper(strings.TrimSpace(parts[1]))),
		cost:     cost,
		currency: strings.ToUpper(strings.TrimSpace(parts[3])),
	}

	if len(parts) == 5 {
		priceStr, ok := strings.CutPrefix(strings.TrimSpace(parts[4]), "sold=")
		if !ok {
			return fmt.Errorf("want \"sold=price\" as fifth field, got %q", parts[4])
		}
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return fmt.Errorf("invalid sell price in %q: %w", v, err)
		}
		spec.sold = true
		spec.price = price
	}

	*l = append(*l, spec)
	return nil
}

// expenseFlag parses an expense entry "amount[currency]", e.g. "12.5" or
// "12.5USD". The currency defaults to the base currency.
type expenseFlag struct {
	amount   decimal.Decimal
	currency string
}

func (e *expenseFlag) String() string {
	if e.amount.IsZero() {
		return ""
	}
	return e.amount.String() + e.currency
}

func (e *expenseFlag) Set(v string) error {
	v = strings.TrimSpace(v)
	i := len(v)
	for i > 0 && isLetter(v[i-1]) {
		i--
	}

	currency := resale.BaseCurrency
	if i < len(v) {
		var err error
		if currency, err = resale.ParseCurrency(strings.ToUpper(v[i:])); err != nil {
			return err
		}
	}

	amount, err := decimal.NewFromString(v[:i])
	if err != nil {
		return fmt.Errorf("invalid amount in %q: %w", v, err)
	}
	if amount.IsNegative() {
		amount = decimal.Zero
	}

	e.amount = amount
	e.currency = currency
	return nil
}

// money returns the entered amount in its entry currency.
func (e *expenseFlag) money() resale.Money {
	return resale.M(e.amount, e.currency)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// expenseFlags groups the four expense categories entered on the command line.
type expenseFlags struct {
	transport expenseFlag
	vat       expenseFlag
	ads       expenseFlag
	fee       expenseFlag
}

func (e *expenseFlags) register(f *flag.FlagSet) {
	f.Var(&e.transport, "transport", `Transport cost, "amount[currency]".`)
	f.Var(&e.vat, "vat", `VAT cost, "amount[currency]".`)
	f.Var(&e.ads, "ads", `Advertising cost, "amount[currency]".`)
	f.Var(&e.fee, "fee", `Payment processing fee, "amount[currency]".`)
}

// expenses converts the entered amounts into base-currency expenses.
func (e *expenseFlags) expenses(rates resale.Rates) resale.Expenses {
	return resale.Expenses{
		resale.ExpenseTransport:  rates.ConvertMoney(e.transport.money()),
		resale.ExpenseVAT:        rates.ConvertMoney(e.vat.money()),
		resale.ExpenseAds:        rates.ConvertMoney(e.ads.money()),
		resale.ExpenseProcessing: rates.ConvertMoney(e.fee.money()),
	}
}

// buildProducts derives full products from the parsed specs. Invalid entries
// are reported and filtered out, matching the entry form behavior.
func buildProducts(specs productList, rates resale.Rates) []resale.Product {
	var products []resale.Product
	for _, spec := range specs {
		p, err := resale.NewProduct(0, spec.name, spec.size, spec.cost, spec.currency, spec.sold, spec.price, rates)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping product %q: %v\n", spec.name, err)
			continue
		}
		products = append(products, p)
	}
	return products
}
