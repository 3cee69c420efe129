// Package networth implements the metrics engine of a personal-finance
// tracker: it normalizes account balances into a single reporting
// currency, computes progressive zoned interest, and aggregates
// portfolio-level figures for accounts, investment holdings and loans.
//
// The engine is pure: every aggregation is a function of the snapshot it
// is given and holds no state between calls. The package also provides
// the JSONL persistence of snapshots and the exchange rate fetcher that
// feed the engine.
package networth
