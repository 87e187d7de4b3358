// Package resale tracks shipments of resale products: what each product
// cost in its entry currency, what it sold for in the base currency, and
// the profit left at product, shipment and collection level once the
// shipment expenses are paid.
//
// The package is the computation core of the rsl command line tool. The
// Book owns the shipment collection; every mutating operation recomputes
// the affected aggregates before returning, and the whole collection is
// persisted as canonical JSONL after each mutation.
package resale
