package commands

import (
	"context"
	"errors"

	"meethere/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles the business logic for order re-submission.
// Loads the existing order, verifies ownership, applies the new booking details
// and persists the refreshed aggregate within a single transaction.
//
// Example:
//
//	handler := NewUpdateOrderCommandHandler(uowFactory)
//	cmd, _ := NewUpdateOrderCommand(orderID, "Court B", startTime, 3, "user1")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order update failed: %w", err)
//	}
//	// Order is back in "NoAudit" status with a recomputed total
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
// Requires a UoWFactory for coordinating the venue lookup and order rewrite.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
// Returns a not-found error when the venue or order does not exist, and a
// not-authorized error when the order belongs to a different user.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookedVenue, err := uow.VenueRepository().GetByName(ctx, cmd.VenueName())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	existingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if existingOrder.UserID() != cmd.UserID() {
		return errs.NewNotAuthorizedErrorWithCause(
			cmd.UserID(), cmd.OrderID(), errors.New("order belongs to another user"),
		)
	}

	if err = existingOrder.Resubmit(bookedVenue, cmd.StartTime(), cmd.Hours(), cmd.UserID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existingOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
