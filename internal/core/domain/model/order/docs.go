// Package order implements the Order aggregate and its lifecycle state machine.
//
// An Order is created only by the ingestion pipeline (always in Waiting
// status, with material stock already reserved) and mutated only through the
// aggregate's transition methods, which all funnel through an explicit
// transition table. Restoring transitions (Preparing→Waiting and both
// cancellations) are coordinated with the stock ledger by the status change
// command handler; the aggregate contributes the stockRestored gate that
// makes restores idempotent.
package order
