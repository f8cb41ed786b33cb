package commands

import (
	"context"

	"meethere/internal/core/domain/model/order"
	"meethere/internal/pkg/errs"
)

// ReviewOrderCommandHandler handles administrator verdicts on orders.
// Applies the verdict through the aggregate and persists a status-only update,
// leaving every other column untouched.
//
// Example:
//
//	handler := NewReviewOrderCommandHandler(uowFactory)
//	cmd, _ := NewConfirmOrderCommand(orderID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("review failed: %w", err)
//	}
//	// Order is now in "Wait" status
type ReviewOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReviewOrderCommandHandler creates a handler for review verdict operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewReviewOrderCommandHandler(uowFactory OrderUoWFactory) ReviewOrderCommandHandler {
	return ReviewOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review verdict command.
// Returns a not-found error when no order exists for the command's id.
func (h *ReviewOrderCommandHandler) Handle(ctx context.Context, cmd ReviewOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	reviewedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.applyVerdict(reviewedOrder, cmd.Verdict()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, reviewedOrder.ID(), reviewedOrder.Status()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h *ReviewOrderCommandHandler) applyVerdict(reviewedOrder *order.Order, verdict order.Status) error {
	switch verdict {
	case order.Wait:
		return reviewedOrder.Confirm()
	case order.Finish:
		return reviewedOrder.Finish()
	case order.Reject:
		return reviewedOrder.Reject()
	default:
		return errs.NewValueIsInvalidError("verdict")
	}
}
