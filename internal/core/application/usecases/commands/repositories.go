// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest interface covering the aggregates they
// touch, so tests can mock exactly what a command needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StockRepoFactory provides access to the stock repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// AllocationRepoFactory provides access to the allocation repository within a transaction.
	AllocationRepoFactory interface {
		AllocationRepository() ports.AllocationRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StockUoW manages transactions for ledger-only operations.
	StockUoW interface {
		TxManager
		StockRepoFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}

	// OrderStockUoW manages transactions that couple an order change with
	// its stock effect (ingestion reservations, restoring transitions).
	OrderStockUoW interface {
		TxManager
		OrderRepoFactory
		StockRepoFactory
	}

	// OrderStockUoWFactory creates new order+stock unit of work instances.
	OrderStockUoWFactory interface {
		Create() OrderStockUoW
	}

	// AllocationUoW manages transactions for allocation negotiations.
	AllocationUoW interface {
		TxManager
		AllocationRepoFactory
	}

	// AllocationUoWFactory creates new allocation unit of work instances.
	AllocationUoWFactory interface {
		Create() AllocationUoW
	}

	// UoW manages transactions across all aggregates. Used by the status
	// change command, whose ReadyToShip branch reads allocations for the
	// routing decision while writing orders and stock.
	UoW interface {
		TxManager
		OrderRepoFactory
		StockRepoFactory
		AllocationRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
