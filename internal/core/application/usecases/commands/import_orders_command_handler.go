package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// minAddressLength rejects addresses too short to be deliverable. Carrier
// uploads fail on such rows downstream anyway, so they are caught here.
const minAddressLength = 5

// ImportedOrder reports one row that became an order.
type ImportedOrder struct {
	RowIndex            int
	ExternalOrderNumber string
	OrderID             kernel.UUID
}

// RowFailure reports one row that did not become an order and why.
type RowFailure struct {
	RowIndex            int
	ExternalOrderNumber string
	Reason              string
}

// ImportOrdersResult is the per-row outcome report of one ingestion batch.
// Halted means nothing was committed: the batch needed a confirmation flag
// the operator did not set, and the failure lists tell them what to confirm.
type ImportOrdersResult struct {
	Created           []ImportedOrder
	Invalid           []RowFailure
	Duplicates        []RowFailure
	InsufficientStock []RowFailure
	Halted            bool
}

// ImportOrdersCommandHandler runs the bulk ingestion pipeline: row
// validation, duplicate detection against active orders, then per-row
// transactions that create the order and reserve its materials atomically.
// One failing row never takes down its siblings; each row commits or rolls
// back on its own.
type ImportOrdersCommandHandler struct {
	uowFactory OrderStockUoWFactory
	catalog    ports.ProductCatalog
	validate   *validator.Validate
}

// NewImportOrdersCommandHandler creates a handler for bulk order ingestion.
// Requires an OrderStockUoWFactory for per-row transactions and the product
// catalog for product and bill-of-materials lookups.
func NewImportOrdersCommandHandler(
	uowFactory OrderStockUoWFactory,
	catalog ports.ProductCatalog,
) ImportOrdersCommandHandler {
	return ImportOrdersCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Handle processes the ingestion batch.
//
// The pipeline has three phases:
//  1. classify every row: struct validation, format-specific checks,
//     product existence, in-batch duplicates
//  2. check surviving rows against active orders for duplicates
//  3. commit each remaining row in its own transaction, reserving material
//     stock under row locks; a row that cannot cover its materials is
//     reported and skipped
//
// Phases 1 and 2 can halt the whole batch when the matching confirmation
// flag is missing; a halted batch commits nothing.
func (h *ImportOrdersCommandHandler) Handle(ctx context.Context, cmd ImportOrdersCommand) (ImportOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return ImportOrdersResult{}, err
	}

	result := ImportOrdersResult{}
	candidates, err := h.classifyRows(ctx, cmd, &result)
	if err != nil {
		return ImportOrdersResult{}, err
	}

	if len(result.Invalid) > 0 && !cmd.ConfirmPartial() {
		result.Halted = true
		return result, nil
	}

	candidates, err = h.filterDuplicates(ctx, candidates, &result)
	if err != nil {
		return ImportOrdersResult{}, err
	}

	if len(result.Duplicates) > 0 && !cmd.ConfirmDuplicate() {
		result.Halted = true
		return result, nil
	}

	for _, row := range candidates {
		if err := h.commitRow(ctx, cmd, row, &result); err != nil {
			return ImportOrdersResult{}, err
		}
	}

	return result, nil
}

type importCandidate struct {
	index int
	row   ImportRow
}

// classifyRows runs the read-only validation pass and returns the rows that
// may proceed to the commit phase.
func (h *ImportOrdersCommandHandler) classifyRows(
	ctx context.Context,
	cmd ImportOrdersCommand,
	result *ImportOrdersResult,
) ([]importCandidate, error) {
	seen := make(map[string]bool, len(cmd.Rows()))
	candidates := make([]importCandidate, 0, len(cmd.Rows()))

	for i, row := range cmd.Rows() {
		if reason := h.validateRow(cmd, row); reason != "" {
			result.Invalid = append(result.Invalid, RowFailure{
				RowIndex:            i,
				ExternalOrderNumber: row.ExternalOrderNumber,
				Reason:              reason,
			})
			continue
		}

		exists, err := h.catalog.ProductExists(ctx, row.ProductCode)
		if err != nil {
			return nil, err
		}
		if !exists {
			result.Invalid = append(result.Invalid, RowFailure{
				RowIndex:            i,
				ExternalOrderNumber: row.ExternalOrderNumber,
				Reason:              fmt.Sprintf("unknown product code %q", row.ProductCode),
			})
			continue
		}

		if seen[row.ExternalOrderNumber] {
			result.Duplicates = append(result.Duplicates, RowFailure{
				RowIndex:            i,
				ExternalOrderNumber: row.ExternalOrderNumber,
				Reason:              "duplicated within the batch",
			})
			continue
		}
		seen[row.ExternalOrderNumber] = true

		candidates = append(candidates, importCandidate{index: i, row: row})
	}

	return candidates, nil
}

// validateRow applies the struct tags plus the format-specific checks.
// Returns an empty string when the row is acceptable.
func (h *ImportOrdersCommandHandler) validateRow(cmd ImportOrdersCommand, row ImportRow) string {
	if err := h.validate.Struct(row); err != nil {
		return err.Error()
	}

	if !cmd.SkipAddressValidation() {
		if len([]rune(row.RecipientAddress)) < minAddressLength {
			return "recipient address is too short"
		}
	}

	switch cmd.UploadFormat() {
	case UploadFormatPostOffice:
		if len(row.PostalCode) != 5 {
			return "post office uploads require a 5-digit postal code"
		}
	case UploadFormatLotte:
		if row.RecipientPhone == "" {
			return "lotte uploads require a recipient phone number"
		}
	}

	return ""
}

// filterDuplicates removes rows whose external order number already belongs
// to an active order, recording them in the duplicate report.
func (h *ImportOrdersCommandHandler) filterDuplicates(
	ctx context.Context,
	candidates []importCandidate,
	result *ImportOrdersResult,
) ([]importCandidate, error) {
	if len(candidates) == 0 {
		return candidates, nil
	}

	numbers := make([]string, 0, len(candidates))
	for _, c := range candidates {
		numbers = append(numbers, c.row.ExternalOrderNumber)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	active, err := uow.OrderRepository().GetActiveByExternalNumbers(ctx, numbers)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	fresh := candidates[:0]
	for _, c := range candidates {
		if active[c.row.ExternalOrderNumber] {
			result.Duplicates = append(result.Duplicates, RowFailure{
				RowIndex:            c.index,
				ExternalOrderNumber: c.row.ExternalOrderNumber,
				Reason:              "an active order with this number already exists",
			})
			continue
		}
		fresh = append(fresh, c)
	}

	return fresh, nil
}

// commitRow creates the order and reserves its materials in one
// transaction. Insufficient stock rolls the row back and records it; any
// other error aborts the batch.
func (h *ImportOrdersCommandHandler) commitRow(
	ctx context.Context,
	cmd ImportOrdersCommand,
	c importCandidate,
	result *ImportOrdersResult,
) error {
	materials, err := h.catalog.MaterialsFor(ctx, c.row.ProductCode)
	if err != nil {
		return err
	}

	err = withConflictRetry(func() error {
		return h.tryCommitRow(ctx, cmd, c, materials, result)
	})

	var insufficient *errs.InsufficientStockError
	if errors.As(err, &insufficient) {
		result.InsufficientStock = append(result.InsufficientStock, RowFailure{
			RowIndex:            c.index,
			ExternalOrderNumber: c.row.ExternalOrderNumber,
			Reason:              insufficient.Error(),
		})
		return nil
	}

	return err
}

func (h *ImportOrdersCommandHandler) tryCommitRow(
	ctx context.Context,
	cmd ImportOrdersCommand,
	c importCandidate,
	materials []ports.MaterialRequirement,
	result *ImportOrdersResult,
) error {
	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		c.row.ExternalOrderNumber,
		c.row.ProductCode,
		c.row.Quantity,
		order.ShippingDetails{
			OrdererName:      c.row.OrdererName,
			OrdererPhone:     c.row.OrdererPhone,
			RecipientName:    c.row.RecipientName,
			RecipientPhone:   c.row.RecipientPhone,
			RecipientAddress: c.row.RecipientAddress,
			PostalCode:       c.row.PostalCode,
			DeliveryMessage:  c.row.DeliveryMessage,
		},
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := reserveMaterials(ctx, uow.StockRepository(), newOrder, materials, cmd.ActorID()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	result.Created = append(result.Created, ImportedOrder{
		RowIndex:            c.index,
		ExternalOrderNumber: c.row.ExternalOrderNumber,
		OrderID:             newOrder.ID(),
	})
	return nil
}
