// Package http exposes the booking use cases over a REST API.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"meethere/internal/core/application/usecases/commands"
	"meethere/internal/core/application/usecases/queries"
	"meethere/internal/core/domain/model/order"
	"meethere/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the request body for submitting or updating a reservation.
type NewOrder struct {
	VenueName string    `json:"venueName"`
	StartTime time.Time `json:"startTime"`
	Hours     int       `json:"hours"`
	UserID    string    `json:"userId"`
}

// Order is the JSON representation of a reservation order.
type Order struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	VenueID   int64     `json:"venueId"`
	StartTime time.Time `json:"startTime"`
	Hours     int       `json:"hours"`
	Total     int       `json:"total"`
	OrderTime time.Time `json:"orderTime"`
	Status    string    `json:"status"`
}

// PagedOrders is the JSON body of paged order listings.
type PagedOrders struct {
	Orders   []Order `json:"orders"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
	Total    int64   `json:"total"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitOrderHandler commands.SubmitOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	reviewOrderHandler commands.ReviewOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getVenueOrdersHandler    queries.GetVenueOrdersQueryHandler
	getUserOrdersHandler     queries.GetUserOrdersQueryHandler
	getPendingOrdersHandler  queries.GetPendingOrdersQueryHandler
	getReviewedOrdersHandler queries.GetReviewedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	reviewOrderHandler commands.ReviewOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getVenueOrdersHandler queries.GetVenueOrdersQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getReviewedOrdersHandler queries.GetReviewedOrdersQueryHandler,
) *Server {
	return &Server{
		submitOrderHandler:       submitOrderHandler,
		updateOrderHandler:       updateOrderHandler,
		reviewOrderHandler:       reviewOrderHandler,
		deleteOrderHandler:       deleteOrderHandler,
		getOrderHandler:          getOrderHandler,
		getVenueOrdersHandler:    getVenueOrdersHandler,
		getUserOrdersHandler:     getUserOrdersHandler,
		getPendingOrdersHandler:  getPendingOrdersHandler,
		getReviewedOrdersHandler: getReviewedOrdersHandler,
	}
}

// RegisterRoutes attaches every endpoint to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.SubmitOrder)
	api.GET("/orders", s.GetUserOrders)
	api.GET("/orders/pending", s.GetPendingOrders)
	api.GET("/orders/reviewed", s.GetReviewedOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/confirm", s.ConfirmOrder)
	api.POST("/orders/:id/finish", s.FinishOrder)
	api.POST("/orders/:id/reject", s.RejectOrder)
	api.GET("/venues/:venueId/orders", s.GetVenueOrders)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SubmitOrder handles POST /api/v1/orders - books a venue.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSubmitOrderCommand(body.VenueName, body.StartTime, body.Hours, body.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fromAggregate(created))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one reservation.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromResponse(resp))
}

// UpdateOrder handles PUT /api/v1/orders/:id - re-submits a reservation.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body NewOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(id, body.VenueName, body.StartTime, body.Hours, body.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes a reservation.
// Deleting an absent id succeeds, matching the idempotent delete semantics.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm - approves a reservation.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	return s.review(ctx, commands.NewConfirmOrderCommand)
}

// FinishOrder handles POST /api/v1/orders/:id/finish - marks a reservation completed.
func (s *Server) FinishOrder(ctx echo.Context) error {
	return s.review(ctx, commands.NewFinishOrderCommand)
}

// RejectOrder handles POST /api/v1/orders/:id/reject - declines a reservation.
func (s *Server) RejectOrder(ctx echo.Context) error {
	return s.review(ctx, commands.NewRejectOrderCommand)
}

func (s *Server) review(ctx echo.Context, newCommand func(int64) (commands.ReviewOrderCommand, error)) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := newCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.reviewOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUserOrders handles GET /api/v1/orders?userId=&page=&pageSize= -
// lists one page of a user's reservations, newest first.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	page, err := pageParams(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetUserOrdersQuery(ctx.QueryParam("userId"), page)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromPagedResponse(resp))
}

// GetPendingOrders handles GET /api/v1/orders/pending?page=&pageSize= -
// lists one page of the review queue, oldest first.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	page, err := pageParams(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetPendingOrdersQuery(page)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromPagedResponse(resp))
}

// GetReviewedOrders handles GET /api/v1/orders/reviewed - lists approved
// and completed reservations.
func (s *Server) GetReviewedOrders(ctx echo.Context) error {
	query := queries.NewGetReviewedOrdersQuery()

	resp, err := s.getReviewedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	result := make([]Order, len(resp))
	for i, r := range resp {
		result[i] = fromResponse(r)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetVenueOrders handles GET /api/v1/venues/:venueId/orders?from=&to= -
// lists a venue's reservations starting within the inclusive range.
// Range bounds are RFC 3339 timestamps.
func (s *Server) GetVenueOrders(ctx echo.Context) error {
	venueID, err := strconv.ParseInt(ctx.Param("venueId"), 10, 64)
	if err != nil {
		return badRequest(ctx, "Invalid venue id")
	}

	from, err := time.Parse(time.RFC3339, ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "Invalid 'from' timestamp")
	}

	to, err := time.Parse(time.RFC3339, ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "Invalid 'to' timestamp")
	}

	query, err := queries.NewGetVenueOrdersQuery(venueID, from, to)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getVenueOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	result := make([]Order, len(resp))
	for i, r := range resp {
		result[i] = fromResponse(r)
	}

	return ctx.JSON(http.StatusOK, result)
}

func orderIDParam(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

func pageParams(ctx echo.Context) (queries.PageRequest, error) {
	page := 1
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return queries.PageRequest{}, errs.NewValueIsInvalidErrorWithCause("page", err)
		}
		page = parsed
	}

	size := 0
	if raw := ctx.QueryParam("pageSize"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return queries.PageRequest{}, errs.NewValueIsInvalidErrorWithCause("pageSize", err)
		}
		size = parsed
	}

	return queries.NewPageRequest(page, size)
}

// writeError maps the error taxonomy onto HTTP status codes:
// validation errors become 400, unknown objects 404, foreign orders 403,
// anything else 500.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthorized):
		code = http.StatusForbidden
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func fromAggregate(o *order.Order) Order {
	return Order{
		ID:        o.ID(),
		UserID:    o.UserID(),
		VenueID:   o.VenueID(),
		StartTime: o.StartTime(),
		Hours:     o.Hours(),
		Total:     o.Total(),
		OrderTime: o.OrderTime(),
		Status:    o.Status().String(),
	}
}

func fromResponse(r queries.OrderResponse) Order {
	return Order{
		ID:        r.ID,
		UserID:    r.UserID,
		VenueID:   r.VenueID,
		StartTime: r.StartTime,
		Hours:     r.Hours,
		Total:     r.Total,
		OrderTime: r.OrderTime,
		Status:    r.Status,
	}
}

func fromPagedResponse(r queries.PagedOrdersResponse) PagedOrders {
	orders := make([]Order, len(r.Orders))
	for i, o := range r.Orders {
		orders[i] = fromResponse(o)
	}

	return PagedOrders{
		Orders:   orders,
		Page:     r.Page,
		PageSize: r.PageSize,
		Total:    r.Total,
	}
}
