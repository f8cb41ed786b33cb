package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"meethere/internal/core/application/usecases/commands"
	"meethere/internal/core/domain/model/order"
	"meethere/internal/core/ports"
	"meethere/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReviewOrderRepository struct{ mock.Mock }

func (m *MockReviewOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockReviewOrderRepository) Update(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockReviewOrderRepository) UpdateStatus(ctx context.Context, id int64, status order.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockReviewOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockReviewOrderRepository) GetAllPendingBefore(_ context.Context, _ time.Time) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockReviewOrderRepository) Delete(_ context.Context, _ int64) error {
	return errors.New("not implemented in mock")
}

type MockReviewUoW struct{ mock.Mock }

func (m *MockReviewUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReviewUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReviewUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReviewUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func restorePendingOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	pending, err := order.RestoreOrder(
		id, "user1", 3, time.Now().Add(12*time.Hour), 2, 200, time.Now().Add(-time.Hour), order.NoAudit,
	)
	require.NoError(t, err)
	return pending
}

func TestReviewOrderCommandHandler_Handle_Confirm(t *testing.T) {
	ctx := t.Context()
	pending := restorePendingOrder(t, 7)
	cmd, _ := commands.NewConfirmOrderCommand(7)

	repo := new(MockReviewOrderRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(7)).Return(pending, nil).Once(),
		repo.On("UpdateStatus", mock.Anything, int64(7), order.Wait).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Wait, pending.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReviewOrderCommandHandler_Handle_Finish(t *testing.T) {
	ctx := t.Context()
	pending := restorePendingOrder(t, 7)
	cmd, _ := commands.NewFinishOrderCommand(7)

	repo := new(MockReviewOrderRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(7)).Return(pending, nil).Once(),
		repo.On("UpdateStatus", mock.Anything, int64(7), order.Finish).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Finish, pending.Status())
}

func TestReviewOrderCommandHandler_Handle_Reject(t *testing.T) {
	ctx := t.Context()
	pending := restorePendingOrder(t, 7)
	cmd, _ := commands.NewRejectOrderCommand(7)

	repo := new(MockReviewOrderRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(7)).Return(pending, nil).Once(),
		repo.On("UpdateStatus", mock.Anything, int64(7), order.Reject).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Reject, pending.Status())
}

func TestReviewOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewConfirmOrderCommand(99)

	repo := new(MockReviewOrderRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(99)).
			Return(nil, errs.NewObjectNotFoundError("orderID", int64(99))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReviewOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ReviewOrderCommand{} // not constructed properly
	factory := new(MockReviewUoWFactory)
	h := commands.NewReviewOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
