package commands

import (
	"context"

	"meethere/internal/core/domain/model/order"
)

// SubmitOrderCommandHandler handles the business logic for booking submission.
// Resolves the venue by name, creates the order with its derived total cost
// and persists it in the "NoAudit" status awaiting an administrator verdict.
//
// Example:
//
//	handler := NewSubmitOrderCommandHandler(uowFactory)
//	cmd, _ := NewSubmitOrderCommand("Court A", startTime, 2, "user1")
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("booking failed: %w", err)
//	}
//	// created.ID() carries the store-assigned identifier
type SubmitOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewSubmitOrderCommandHandler creates a handler for booking submissions.
// Requires a UoWFactory for coordinating the venue lookup and order insert.
func NewSubmitOrderCommandHandler(uowFactory UoWFactory) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking submission and returns the created order.
// The total is computed from the requested hours and the venue's hourly price.
// Returns a not-found error when no venue carries the requested name.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookedVenue, err := uow.VenueRepository().GetByName(ctx, cmd.VenueName())
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(bookedVenue, cmd.StartTime(), cmd.Hours(), cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
