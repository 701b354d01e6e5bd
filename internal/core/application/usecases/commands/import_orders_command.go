package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrImportOrdersCommandIsNotConstructed = errors.New(
		"ImportOrdersCommand must be created via NewImportOrdersCommand constructor",
	)
	ErrRowsAreRequired    = errors.New("at least one row is required")
	ErrActorIDIsRequired  = errors.New("actor id is required")
	ErrUploadFormatIsBad  = errors.New("upload format is invalid")
	ErrTooManyRowsInBatch = errors.New("batch exceeds the maximum row count")
)

// maxImportRows caps one ingestion batch. Larger uploads are split by the
// caller before they reach the command layer.
const maxImportRows = 5000

// UploadFormat identifies the spreadsheet layout an order batch was
// uploaded in. The entrypoint maps columns accordingly before building the
// command; the format also selects carrier-specific row checks.
type UploadFormat int

const (
	UploadFormatUnknown UploadFormat = iota
	UploadFormatDefault
	UploadFormatPostOffice
	UploadFormatLotte
)

// UploadFormatFromString converts a string representation to an UploadFormat.
func UploadFormatFromString(s string) (UploadFormat, error) {
	switch s {
	case "", "default":
		return UploadFormatDefault, nil
	case "postoffice":
		return UploadFormatPostOffice, nil
	case "lotte":
		return UploadFormatLotte, nil
	default:
		return UploadFormatUnknown, errs.NewValueIsInvalidError("uploadFormat")
	}
}

// String returns the string representation of the upload format.
func (f UploadFormat) String() string {
	switch f {
	case UploadFormatDefault:
		return "default"
	case UploadFormatPostOffice:
		return "postoffice"
	case UploadFormatLotte:
		return "lotte"
	default:
		return "unknown"
	}
}

// Validate checks whether the format is one of the supported layouts.
func (f UploadFormat) Validate() error {
	switch f {
	case UploadFormatDefault, UploadFormatPostOffice, UploadFormatLotte:
		return nil
	default:
		return ErrUploadFormatIsBad
	}
}

// ImportRow is one order line of an uploaded batch, already mapped from the
// spreadsheet columns of the chosen format. Struct tags drive the row-level
// validation pass; a failing row becomes a reported outcome, never a
// command error.
type ImportRow struct {
	ExternalOrderNumber string `validate:"required"`
	ProductCode         string `validate:"required"`
	Quantity            int    `validate:"gt=0"`
	OrdererName         string
	OrdererPhone        string
	RecipientName       string `validate:"required"`
	RecipientPhone      string
	RecipientAddress    string `validate:"required"`
	PostalCode          string `validate:"omitempty,numeric"`
	DeliveryMessage     string
}

// ImportOrdersCommand represents one bulk ingestion request: the mapped
// rows plus the operator's confirmation flags.
//
// Flags:
//   - confirmPartial: commit the valid rows even when some rows fail
//     validation; without it a batch containing invalid rows is only
//     reported, nothing is committed
//   - confirmDuplicate: proceed past rows whose external order number
//     already belongs to an active order (the duplicates are skipped);
//     without it such a batch halts with a duplicate report
//   - skipAddressValidation: bypass the recipient address checks for rows
//     the operator vouches for manually
type ImportOrdersCommand struct { //nolint:recvcheck //using for validation
	rows                  []ImportRow
	uploadFormat          UploadFormat
	confirmPartial        bool
	confirmDuplicate      bool
	skipAddressValidation bool
	actorID               string

	guard guard.ConstructorGuard
}

// NewImportOrdersCommand creates a command to ingest a batch of order rows.
// Validates that the batch is non-empty and within the size cap, the format
// is supported, and the acting operator is identified.
func NewImportOrdersCommand(
	rows []ImportRow,
	uploadFormat UploadFormat,
	confirmPartial bool,
	confirmDuplicate bool,
	skipAddressValidation bool,
	actorID string,
) (ImportOrdersCommand, error) {
	cmd := ImportOrdersCommand{
		confirmPartial:        confirmPartial,
		confirmDuplicate:      confirmDuplicate,
		skipAddressValidation: skipAddressValidation,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRows(rows),
		cmd.setUploadFormat(uploadFormat),
		cmd.setActorID(actorID),
	); err != nil {
		return ImportOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportOrdersCommand) Validate() error {
	return c.guard.Validate(ErrImportOrdersCommandIsNotConstructed)
}

// Rows returns the mapped order rows of the batch.
func (c ImportOrdersCommand) Rows() []ImportRow {
	return c.rows
}

// UploadFormat returns the spreadsheet layout the batch was uploaded in.
func (c ImportOrdersCommand) UploadFormat() UploadFormat {
	return c.uploadFormat
}

// ConfirmPartial reports whether valid rows commit despite failing ones.
func (c ImportOrdersCommand) ConfirmPartial() bool {
	return c.confirmPartial
}

// ConfirmDuplicate reports whether duplicate rows are skipped instead of
// halting the batch.
func (c ImportOrdersCommand) ConfirmDuplicate() bool {
	return c.confirmDuplicate
}

// SkipAddressValidation reports whether recipient address checks are bypassed.
func (c ImportOrdersCommand) SkipAddressValidation() bool {
	return c.skipAddressValidation
}

// ActorID returns the identifier of the operator running the import.
func (c ImportOrdersCommand) ActorID() string {
	return c.actorID
}

func (c *ImportOrdersCommand) setRows(rows []ImportRow) error {
	if len(rows) == 0 {
		return ErrRowsAreRequired
	}
	if len(rows) > maxImportRows {
		return ErrTooManyRowsInBatch
	}

	c.rows = rows
	return nil
}

func (c *ImportOrdersCommand) setUploadFormat(f UploadFormat) error {
	if err := f.Validate(); err != nil {
		return err
	}

	c.uploadFormat = f
	return nil
}

func (c *ImportOrdersCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}
