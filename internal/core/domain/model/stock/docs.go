// Package stock implements the inventory ledger domain: the append-only
// Movement log and the Balance aggregate that derives and owns each item's
// current quantity.
//
// The ledger is the sole writer of stock. Components needing a stock effect
// (ingestion reservations, restore credits, manual adjustments) load a
// Balance through the repository's locking read, call Reserve/Credit/Adjust,
// and persist the returned Movement together with the updated balance inside
// the caller's transaction. That keeps the cached balance and the log in
// lockstep and preserves the non-negative invariant under concurrency.
package stock
