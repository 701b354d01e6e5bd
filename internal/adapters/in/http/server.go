// Package http exposes the fulfillment use cases over an echo HTTP API.
// Handlers translate JSON requests into commands and queries, and map
// domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorIDHeader carries the operator identity resolved by the API gateway.
const actorIDHeader = "X-Actor-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	importOrdersHandler      commands.ImportOrdersCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	registerTrackingHandler  commands.RegisterTrackingCommandHandler
	overrideRouteHandler     commands.OverrideRouteCommandHandler
	adjustStockHandler       commands.AdjustStockCommandHandler
	requestAllocationHandler commands.RequestAllocationCommandHandler
	respondAllocationHandler commands.RespondAllocationCommandHandler
	confirmAllocationHandler commands.ConfirmAllocationCommandHandler
	rejectAllocationHandler  commands.RejectAllocationCommandHandler

	// Query handlers
	getStockMovementsHandler  queries.GetStockMovementsQueryHandler
	getStockBalanceHandler    queries.GetStockBalanceQueryHandler
	getActiveOrdersHandler    queries.GetActiveOrdersQueryHandler
	getOpenAllocationsHandler queries.GetOpenAllocationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	importOrdersHandler commands.ImportOrdersCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	registerTrackingHandler commands.RegisterTrackingCommandHandler,
	overrideRouteHandler commands.OverrideRouteCommandHandler,
	adjustStockHandler commands.AdjustStockCommandHandler,
	requestAllocationHandler commands.RequestAllocationCommandHandler,
	respondAllocationHandler commands.RespondAllocationCommandHandler,
	confirmAllocationHandler commands.ConfirmAllocationCommandHandler,
	rejectAllocationHandler commands.RejectAllocationCommandHandler,
	getStockMovementsHandler queries.GetStockMovementsQueryHandler,
	getStockBalanceHandler queries.GetStockBalanceQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOpenAllocationsHandler queries.GetOpenAllocationsQueryHandler,
) *Server {
	return &Server{
		importOrdersHandler:       importOrdersHandler,
		changeOrderStatusHandler:  changeOrderStatusHandler,
		registerTrackingHandler:   registerTrackingHandler,
		overrideRouteHandler:      overrideRouteHandler,
		adjustStockHandler:        adjustStockHandler,
		requestAllocationHandler:  requestAllocationHandler,
		respondAllocationHandler:  respondAllocationHandler,
		confirmAllocationHandler:  confirmAllocationHandler,
		rejectAllocationHandler:   rejectAllocationHandler,
		getStockMovementsHandler:  getStockMovementsHandler,
		getStockBalanceHandler:    getStockBalanceHandler,
		getActiveOrdersHandler:    getActiveOrdersHandler,
		getOpenAllocationsHandler: getOpenAllocationsHandler,
	}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders/import", s.ImportOrders)
	api.POST("/orders/status", s.ChangeOrderStatus)
	api.POST("/orders/tracking", s.RegisterTracking)
	api.POST("/orders/:id/route-override", s.OverrideRoute)
	api.GET("/orders", s.GetActiveOrders)

	api.POST("/stock/adjust", s.AdjustStock)
	api.GET("/stock/movements", s.GetStockMovements)
	api.GET("/stock/:itemCode", s.GetStockBalance)

	api.POST("/allocations", s.RequestAllocation)
	api.POST("/allocations/:id/respond", s.RespondAllocation)
	api.POST("/allocations/:id/confirm", s.ConfirmAllocation)
	api.POST("/allocations/:id/reject", s.RejectAllocation)
	api.GET("/allocations", s.GetOpenAllocations)
}

// ImportOrders handles POST /api/v1/orders/import - ingests a batch of order rows.
//
//	@Summary	Import a batch of orders
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		X-Actor-ID	header		string				true	"Operator identity"
//	@Param		request		body		ImportOrdersRequest	true	"Order rows and confirmation flags"
//	@Success	200			{object}	ImportOrdersResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/orders/import [post]
func (s *Server) ImportOrders(ctx echo.Context) error {
	var request ImportOrdersRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	format, err := commands.UploadFormatFromString(request.UploadFormat)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows := make([]commands.ImportRow, len(request.Rows))
	for i, row := range request.Rows {
		rows[i] = commands.ImportRow{
			ExternalOrderNumber: row.ExternalOrderNumber,
			ProductCode:         row.ProductCode,
			Quantity:            row.Quantity,
			OrdererName:         row.OrdererName,
			OrdererPhone:        row.OrdererPhone,
			RecipientName:       row.RecipientName,
			RecipientPhone:      row.RecipientPhone,
			RecipientAddress:    row.RecipientAddress,
			PostalCode:          row.PostalCode,
			DeliveryMessage:     row.DeliveryMessage,
		}
	}

	cmd, err := commands.NewImportOrdersCommand(
		rows,
		format,
		request.ConfirmPartial,
		request.ConfirmDuplicate,
		request.SkipAddressValidation,
		actorID(ctx),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.importOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toImportOrdersResponse(result))
}

// ChangeOrderStatus handles POST /api/v1/orders/status - moves a batch of
// orders to one target status.
//
//	@Summary	Change order statuses in bulk
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		X-Actor-ID	header		string						true	"Operator identity"
//	@Param		request		body		ChangeOrderStatusRequest	true	"Order ids and target status"
//	@Success	200			{object}	BatchOutcomeResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/orders/status [post]
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	var request ChangeOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderIDs, err := parseUUIDs(request.OrderIDs)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	target, err := order.StatusFromString(request.Target)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderIDs, target, actorID(ctx))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBatchOutcomeResponse(result.Succeeded, result.Failed))
}

// RegisterTracking handles POST /api/v1/orders/tracking - attaches carrier
// tracking data to a batch of orders.
//
//	@Summary	Register tracking numbers in bulk
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		X-Actor-ID	header		string					true	"Operator identity"
//	@Param		request		body		RegisterTrackingRequest	true	"Tracking entries"
//	@Success	200			{object}	BatchOutcomeResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/orders/tracking [post]
func (s *Server) RegisterTracking(ctx echo.Context) error {
	var request RegisterTrackingRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	entries := make([]commands.TrackingEntry, len(request.Entries))
	for i, entry := range request.Entries {
		id, err := kernel.UUIDFromString(entry.OrderID)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		entries[i] = commands.TrackingEntry{
			OrderID:        id,
			TrackingNumber: entry.TrackingNumber,
			CourierCompany: entry.CourierCompany,
		}
	}

	cmd, err := commands.NewRegisterTrackingCommand(entries, actorID(ctx))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.registerTrackingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBatchOutcomeResponse(result.Succeeded, result.Failed))
}

// OverrideRoute handles POST /api/v1/orders/{id}/route-override - rewrites
// the fulfillment route of one ready-to-ship order.
//
//	@Summary	Override the fulfillment route of an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		X-Actor-ID	header	string					true	"Operator identity"
//	@Param		id			path	string					true	"Order id"
//	@Param		request		body	OverrideRouteRequest	true	"New route"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id}/route-override [post]
func (s *Server) OverrideRoute(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var request OverrideRouteRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ft, err := order.FulfillmentTypeFromString(request.FulfillmentType)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var vendorID *kernel.UUID
	if request.VendorID != nil {
		id, idErr := kernel.UUIDFromString(*request.VendorID)
		if idErr != nil {
			return badRequest(ctx, idErr.Error())
		}
		vendorID = &id
	}

	cmd, err := commands.NewOverrideRouteCommand(orderID, ft, vendorID, actorID(ctx))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.overrideRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/orders - lists in-flight orders.
//
//	@Summary	List active orders
//	@Tags		orders
//	@Produce	json
//	@Param		status	query		string	false	"Filter by status"
//	@Success	200		{array}		ActiveOrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/orders [get]
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		status = &parsed
	}

	query, err := queries.NewGetActiveOrdersQuery(status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toActiveOrderResponses(orders))
}

// AdjustStock handles POST /api/v1/stock/adjust - applies one manual
// correction to an item balance.
//
//	@Summary	Adjust a stock balance
//	@Tags		stock
//	@Accept		json
//	@Produce	json
//	@Param		X-Actor-ID	header	string				true	"Operator identity"
//	@Param		request		body	AdjustStockRequest	true	"Correction"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/stock/adjust [post]
func (s *Server) AdjustStock(ctx echo.Context) error {
	var request AdjustStockRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := stock.ItemKindFromString(request.ItemKind)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAdjustStockCommand(
		kind,
		request.ItemCode,
		request.Delta,
		request.Reason,
		request.AllowNegative,
		actorID(ctx),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.adjustStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStockMovements handles GET /api/v1/stock/movements - lists the
// movement log, filtered and paginated.
//
//	@Summary	List stock movements
//	@Tags		stock
//	@Produce	json
//	@Param		itemKind	query		string	false	"Filter by item kind"
//	@Param		actionKind	query		string	false	"Filter by action kind"
//	@Param		source		query		string	false	"Filter by source"
//	@Param		actorId		query		string	false	"Filter by actor"
//	@Param		from		query		string	false	"Lower bound (RFC 3339)"
//	@Param		to			query		string	false	"Upper bound (RFC 3339)"
//	@Param		keyword		query		string	false	"Match item code or reason"
//	@Param		page		query		int		false	"Page number (1-based)"
//	@Param		pageSize	query		int		false	"Rows per page"
//	@Success	200			{object}	StockMovementsResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/stock/movements [get]
func (s *Server) GetStockMovements(ctx echo.Context) error {
	filter := queries.StockMovementFilter{
		ItemKind:   ctx.QueryParam("itemKind"),
		ActionKind: ctx.QueryParam("actionKind"),
		Source:     ctx.QueryParam("source"),
		ActorID:    ctx.QueryParam("actorId"),
		Keyword:    ctx.QueryParam("keyword"),
	}

	var err error
	if filter.From, err = parseTimeParam(ctx.QueryParam("from")); err != nil {
		return badRequest(ctx, err.Error())
	}
	if filter.To, err = parseTimeParam(ctx.QueryParam("to")); err != nil {
		return badRequest(ctx, err.Error())
	}

	page := intParam(ctx, "page", 1)
	pageSize := intParam(ctx, "pageSize", 50)

	query, err := queries.NewGetStockMovementsQuery(filter, page, pageSize)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getStockMovementsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStockMovementsResponse(result))
}

// GetStockBalance handles GET /api/v1/stock/{itemCode} - returns the
// current balance of one item.
//
//	@Summary	Get a stock balance
//	@Tags		stock
//	@Produce	json
//	@Param		itemCode	path		string	true	"Item code"
//	@Success	200			{object}	StockBalanceResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/stock/{itemCode} [get]
func (s *Server) GetStockBalance(ctx echo.Context) error {
	query, err := queries.NewGetStockBalanceQuery(ctx.Param("itemCode"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	balance, err := s.getStockBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StockBalanceResponse{
		ItemKind:  balance.ItemKind,
		ItemCode:  balance.ItemCode,
		Quantity:  balance.Quantity,
		UpdatedAt: balance.UpdatedAt,
	})
}

// RequestAllocation handles POST /api/v1/allocations - opens a vendor
// allocation negotiation.
//
//	@Summary	Request a vendor allocation
//	@Tags		allocations
//	@Accept		json
//	@Produce	json
//	@Param		X-Actor-ID	header		string						true	"Operator identity"
//	@Param		request		body		RequestAllocationRequest	true	"Allocation request"
//	@Success	200			{object}	RequestAllocationResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/allocations [post]
func (s *Server) RequestAllocation(ctx echo.Context) error {
	var request RequestAllocationRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	date, err := time.Parse(time.DateOnly, request.Date)
	if err != nil {
		return badRequest(ctx, "Invalid date, expected YYYY-MM-DD")
	}

	vendorID, err := kernel.UUIDFromString(request.VendorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRequestAllocationCommand(
		date,
		request.ProductCode,
		vendorID,
		request.RequestedQuantity,
		actorID(ctx),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.requestAllocationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RequestAllocationResponse{
		AllocationID: result.AllocationID.String(),
		Status:       result.Status.String(),
	})
}

// RespondAllocation handles POST /api/v1/allocations/{id}/respond - records
// a vendor's availability response.
//
//	@Summary	Record a vendor response
//	@Tags		allocations
//	@Accept		json
//	@Produce	json
//	@Param		X-Actor-ID	header	string						true	"Operator identity"
//	@Param		id			path	string						true	"Allocation id"
//	@Param		request		body	RespondAllocationRequest	true	"Vendor response"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/allocations/{id}/respond [post]
func (s *Server) RespondAllocation(ctx echo.Context) error {
	allocationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var request RespondAllocationRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRespondAllocationCommand(
		allocationID,
		request.AvailableQuantity,
		request.Memo,
		actorID(ctx),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.respondAllocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmAllocation handles POST /api/v1/allocations/{id}/confirm - accepts
// a vendor's response, closing the negotiation.
//
//	@Summary	Confirm a vendor response
//	@Tags		allocations
//	@Produce	json
//	@Param		X-Actor-ID	header	string	true	"Operator identity"
//	@Param		id			path	string	true	"Allocation id"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/allocations/{id}/confirm [post]
func (s *Server) ConfirmAllocation(ctx echo.Context) error {
	allocationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewConfirmAllocationCommand(allocationID, actorID(ctx))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.confirmAllocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectAllocation handles POST /api/v1/allocations/{id}/reject - turns
// down a vendor's response, closing the negotiation.
//
//	@Summary	Reject a vendor response
//	@Tags		allocations
//	@Produce	json
//	@Param		X-Actor-ID	header	string	true	"Operator identity"
//	@Param		id			path	string	true	"Allocation id"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/allocations/{id}/reject [post]
func (s *Server) RejectAllocation(ctx echo.Context) error {
	allocationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRejectAllocationCommand(allocationID, actorID(ctx))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.rejectAllocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOpenAllocations handles GET /api/v1/allocations - lists open
// negotiations, optionally for one vendor.
//
//	@Summary	List open allocations
//	@Tags		allocations
//	@Produce	json
//	@Param		vendorId	query		string	false	"Filter by vendor"
//	@Success	200			{array}		AllocationResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/allocations [get]
func (s *Server) GetOpenAllocations(ctx echo.Context) error {
	var vendorID *kernel.UUID
	if raw := ctx.QueryParam("vendorId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		vendorID = &id
	}

	query, err := queries.NewGetOpenAllocationsQuery(vendorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	allocations, err := s.getOpenAllocationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAllocationResponses(allocations))
}

func actorID(ctx echo.Context) string {
	return ctx.Request().Header.Get(actorIDHeader)
}

func parseUUIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, len(raw))
	for i, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func parseTimeParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func intParam(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps errors coming out of command and query handlers onto
// HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrencyConflict),
		errors.Is(err, errs.ErrInsufficientStock):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}
