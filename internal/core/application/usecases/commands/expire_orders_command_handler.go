package commands

import (
	"context"
)

// ExpireOrdersCommandHandler rejects stale unreviewed orders in bulk.
// The whole sweep runs in one transaction so a partial failure rolls back
// every verdict.
//
// Example:
//
//	handler := NewExpireOrdersCommandHandler(uowFactory)
//	cmd, _ := NewExpireOrdersCommand(time.Now())
//
//	expired, err := handler.Handle(ctx, cmd)
//	// This would typically be called periodically by a scheduler
type ExpireOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewExpireOrdersCommandHandler creates a handler for the expiry sweep.
// Requires an OrderUoWFactory for transactional persistence.
func NewExpireOrdersCommandHandler(uowFactory OrderUoWFactory) ExpireOrdersCommandHandler {
	return ExpireOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle rejects every pending order starting before the command's cutoff
// and returns the number of orders expired.
func (h *ExpireOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	staleOrders, err := orderRepo.GetAllPendingBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	for _, staleOrder := range staleOrders {
		if err = staleOrder.Reject(); err != nil {
			return 0, err
		}

		if err = orderRepo.UpdateStatus(ctx, staleOrder.ID(), staleOrder.Status()); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(staleOrders), nil
}
