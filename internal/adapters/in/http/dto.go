package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
)

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ImportRowRequest is one order line of an upload, already mapped from the
// spreadsheet columns of the chosen format.
type ImportRowRequest struct {
	ExternalOrderNumber string `json:"externalOrderNumber"`
	ProductCode         string `json:"productCode"`
	Quantity            int    `json:"quantity"`
	OrdererName         string `json:"ordererName,omitempty"`
	OrdererPhone        string `json:"ordererPhone,omitempty"`
	RecipientName       string `json:"recipientName"`
	RecipientPhone      string `json:"recipientPhone,omitempty"`
	RecipientAddress    string `json:"recipientAddress"`
	PostalCode          string `json:"postalCode,omitempty"`
	DeliveryMessage     string `json:"deliveryMessage,omitempty"`
}

// ImportOrdersRequest is one bulk ingestion request.
type ImportOrdersRequest struct {
	UploadFormat          string             `json:"uploadFormat,omitempty"`
	ConfirmPartial        bool               `json:"confirmPartial,omitempty"`
	ConfirmDuplicate      bool               `json:"confirmDuplicate,omitempty"`
	SkipAddressValidation bool               `json:"skipAddressValidation,omitempty"`
	Rows                  []ImportRowRequest `json:"rows"`
}

// ImportedOrderResponse reports one row that became an order.
type ImportedOrderResponse struct {
	RowIndex            int    `json:"rowIndex"`
	ExternalOrderNumber string `json:"externalOrderNumber"`
	OrderID             string `json:"orderId"`
}

// RowFailureResponse reports one row that did not become an order and why.
type RowFailureResponse struct {
	RowIndex            int    `json:"rowIndex"`
	ExternalOrderNumber string `json:"externalOrderNumber"`
	Reason              string `json:"reason"`
}

// ImportOrdersResponse is the per-row outcome report of one batch.
type ImportOrdersResponse struct {
	Created           []ImportedOrderResponse `json:"created"`
	Invalid           []RowFailureResponse    `json:"invalid"`
	Duplicates        []RowFailureResponse    `json:"duplicates"`
	InsufficientStock []RowFailureResponse    `json:"insufficientStock"`
	Halted            bool                    `json:"halted"`
}

// ChangeOrderStatusRequest moves a batch of orders to one target status.
type ChangeOrderStatusRequest struct {
	OrderIDs []string `json:"orderIds"`
	Target   string   `json:"target"`
}

// OrderFailureResponse reports one order a bulk operation skipped and why.
type OrderFailureResponse struct {
	OrderID string `json:"orderId"`
	Reason  string `json:"reason"`
}

// BatchOutcomeResponse is the per-order outcome report of a bulk operation.
type BatchOutcomeResponse struct {
	Succeeded []string               `json:"succeeded"`
	Failed    []OrderFailureResponse `json:"failed"`
}

// TrackingEntryRequest pairs one order with its carrier data.
type TrackingEntryRequest struct {
	OrderID        string `json:"orderId"`
	TrackingNumber string `json:"trackingNumber"`
	CourierCompany string `json:"courierCompany"`
}

// RegisterTrackingRequest attaches carrier tracking data to a batch of orders.
type RegisterTrackingRequest struct {
	Entries []TrackingEntryRequest `json:"entries"`
}

// OverrideRouteRequest rewrites the fulfillment route of one order.
type OverrideRouteRequest struct {
	FulfillmentType string  `json:"fulfillmentType"`
	VendorID        *string `json:"vendorId,omitempty"`
}

// AdjustStockRequest applies one manual correction to an item balance.
type AdjustStockRequest struct {
	ItemKind      string `json:"itemKind"`
	ItemCode      string `json:"itemCode"`
	Delta         int    `json:"delta"`
	Reason        string `json:"reason"`
	AllowNegative bool   `json:"allowNegative,omitempty"`
}

// StockBalanceResponse is the current balance of one item.
type StockBalanceResponse struct {
	ItemKind  string    `json:"itemKind"`
	ItemCode  string    `json:"itemCode"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StockMovementResponse is one row of the movement log listing.
type StockMovementResponse struct {
	ID             string    `json:"id"`
	ItemKind       string    `json:"itemKind"`
	ItemCode       string    `json:"itemCode"`
	Delta          int       `json:"delta"`
	BeforeBalance  int       `json:"beforeBalance"`
	AfterBalance   int       `json:"afterBalance"`
	ActionKind     string    `json:"actionKind"`
	Source         string    `json:"source"`
	RelatedOrderID *string   `json:"relatedOrderId,omitempty"`
	ActorID        string    `json:"actorId"`
	Reason         string    `json:"reason,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// StockMovementsResponse is one page of the movement log.
type StockMovementsResponse struct {
	Movements []StockMovementResponse `json:"movements"`
	Total     int64                   `json:"total"`
}

// ActiveOrderResponse is one in-flight order in the listing.
type ActiveOrderResponse struct {
	ID                  string    `json:"id"`
	ExternalOrderNumber string    `json:"externalOrderNumber"`
	ProductCode         string    `json:"productCode"`
	Quantity            int       `json:"quantity"`
	RecipientName       string    `json:"recipientName"`
	Status              string    `json:"status"`
	FulfillmentType     string    `json:"fulfillmentType"`
	VendorID            *string   `json:"vendorId,omitempty"`
	TrackingNumber      string    `json:"trackingNumber,omitempty"`
	CourierCompany      string    `json:"courierCompany,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

// RequestAllocationRequest opens a vendor allocation negotiation.
type RequestAllocationRequest struct {
	Date              string `json:"date"`
	ProductCode       string `json:"productCode"`
	VendorID          string `json:"vendorId"`
	RequestedQuantity int    `json:"requestedQuantity"`
}

// RequestAllocationResponse reports the negotiation opened (or reused) for
// a request and whether the vendor was reached.
type RequestAllocationResponse struct {
	AllocationID string `json:"allocationId"`
	Status       string `json:"status"`
}

// RespondAllocationRequest records a vendor's availability response.
type RespondAllocationRequest struct {
	AvailableQuantity int    `json:"availableQuantity"`
	Memo              string `json:"memo,omitempty"`
}

// AllocationResponse is one open negotiation in the listing.
type AllocationResponse struct {
	ID                string    `json:"id"`
	Date              time.Time `json:"date"`
	ProductCode       string    `json:"productCode"`
	VendorID          string    `json:"vendorId"`
	RequestedQuantity int       `json:"requestedQuantity"`
	ConfirmedQuantity int       `json:"confirmedQuantity"`
	Memo              string    `json:"memo,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
}

func toImportOrdersResponse(result commands.ImportOrdersResult) ImportOrdersResponse {
	created := make([]ImportedOrderResponse, len(result.Created))
	for i, row := range result.Created {
		created[i] = ImportedOrderResponse{
			RowIndex:            row.RowIndex,
			ExternalOrderNumber: row.ExternalOrderNumber,
			OrderID:             row.OrderID.String(),
		}
	}

	return ImportOrdersResponse{
		Created:           created,
		Invalid:           toRowFailures(result.Invalid),
		Duplicates:        toRowFailures(result.Duplicates),
		InsufficientStock: toRowFailures(result.InsufficientStock),
		Halted:            result.Halted,
	}
}

func toRowFailures(failures []commands.RowFailure) []RowFailureResponse {
	out := make([]RowFailureResponse, len(failures))
	for i, f := range failures {
		out[i] = RowFailureResponse{
			RowIndex:            f.RowIndex,
			ExternalOrderNumber: f.ExternalOrderNumber,
			Reason:              f.Reason,
		}
	}
	return out
}

func toBatchOutcomeResponse(succeeded []kernel.UUID, failed []commands.OrderFailure) BatchOutcomeResponse {
	out := BatchOutcomeResponse{
		Succeeded: make([]string, len(succeeded)),
		Failed:    make([]OrderFailureResponse, len(failed)),
	}
	for i, id := range succeeded {
		out.Succeeded[i] = id.String()
	}
	for i, f := range failed {
		out.Failed[i] = OrderFailureResponse{OrderID: f.OrderID.String(), Reason: f.Reason}
	}
	return out
}

func toStockMovementsResponse(result queries.GetStockMovementsQueryResponse) StockMovementsResponse {
	movements := make([]StockMovementResponse, len(result.Movements))
	for i, m := range result.Movements {
		var relatedOrderID *string
		if m.RelatedOrderID != nil {
			s := m.RelatedOrderID.String()
			relatedOrderID = &s
		}

		movements[i] = StockMovementResponse{
			ID:             m.ID.String(),
			ItemKind:       m.ItemKind,
			ItemCode:       m.ItemCode,
			Delta:          m.Delta,
			BeforeBalance:  m.BeforeBalance,
			AfterBalance:   m.AfterBalance,
			ActionKind:     m.ActionKind,
			Source:         m.Source,
			RelatedOrderID: relatedOrderID,
			ActorID:        m.ActorID,
			Reason:         m.Reason,
			CreatedAt:      m.CreatedAt,
		}
	}

	return StockMovementsResponse{Movements: movements, Total: result.Total}
}

func toActiveOrderResponses(orders []queries.GetActiveOrdersQueryResponse) []ActiveOrderResponse {
	out := make([]ActiveOrderResponse, len(orders))
	for i, o := range orders {
		var vendorID *string
		if o.VendorID != nil {
			s := o.VendorID.String()
			vendorID = &s
		}

		out[i] = ActiveOrderResponse{
			ID:                  o.ID.String(),
			ExternalOrderNumber: o.ExternalOrderNumber,
			ProductCode:         o.ProductCode,
			Quantity:            o.Quantity,
			RecipientName:       o.RecipientName,
			Status:              o.Status,
			FulfillmentType:     o.FulfillmentType,
			VendorID:            vendorID,
			TrackingNumber:      o.TrackingNumber,
			CourierCompany:      o.CourierCompany,
			CreatedAt:           o.CreatedAt,
		}
	}
	return out
}

func toAllocationResponses(allocations []queries.GetOpenAllocationsQueryResponse) []AllocationResponse {
	out := make([]AllocationResponse, len(allocations))
	for i, a := range allocations {
		out[i] = AllocationResponse{
			ID:                a.ID.String(),
			Date:              a.Date,
			ProductCode:       a.ProductCode,
			VendorID:          a.VendorID.String(),
			RequestedQuantity: a.RequestedQuantity,
			ConfirmedQuantity: a.ConfirmedQuantity,
			Memo:              a.Memo,
			Status:            a.Status,
			CreatedAt:         a.CreatedAt,
		}
	}
	return out
}
