package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"meethere/internal/core/application/usecases/commands"
	"meethere/internal/core/domain/model/order"
	"meethere/internal/core/domain/model/venue"
	"meethere/internal/core/ports"
	"meethere/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSubmitOrderRepository struct{ mock.Mock }

func (m *MockSubmitOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockSubmitOrderRepository) Update(_ context.Context, _ *order.Order) error { return nil }
func (m *MockSubmitOrderRepository) UpdateStatus(_ context.Context, _ int64, _ order.Status) error {
	return errors.New("not implemented in mock")
}
func (m *MockSubmitOrderRepository) Get(_ context.Context, _ int64) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockSubmitOrderRepository) GetAllPendingBefore(_ context.Context, _ time.Time) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockSubmitOrderRepository) Delete(_ context.Context, _ int64) error {
	return errors.New("not implemented in mock")
}

type MockSubmitVenueRepository struct{ mock.Mock }

func (m *MockSubmitVenueRepository) Add(_ context.Context, _ *venue.Venue) error {
	return errors.New("not implemented in mock")
}
func (m *MockSubmitVenueRepository) GetByName(ctx context.Context, name string) (*venue.Venue, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venue.Venue), args.Error(1)
}

type MockSubmitUoW struct{ mock.Mock }

func (m *MockSubmitUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSubmitUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSubmitUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSubmitUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockSubmitUoW) VenueRepository() ports.VenueRepository {
	args := m.Called()
	return args.Get(0).(ports.VenueRepository)
}

type MockSubmitUoWFactory struct{ mock.Mock }

func (m *MockSubmitUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func TestSubmitOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	bookedVenue, err := venue.RestoreVenue(3, "Court A", 100)
	require.NoError(t, err)
	cmd, _ := commands.NewSubmitOrderCommand("Court A", time.Now().Add(24*time.Hour), 2, "user1")

	orderRepo := new(MockSubmitOrderRepository)
	venueRepo := new(MockSubmitVenueRepository)
	uow := new(MockSubmitUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VenueRepository").Return(venueRepo).Once(),
		venueRepo.On("GetByName", mock.Anything, "Court A").Return(bookedVenue, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSubmitUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "user1", created.UserID())
	assert.Equal(t, int64(3), created.VenueID())
	assert.Equal(t, 200, created.Total())
	assert.Equal(t, order.NoAudit, created.Status())
	orderRepo.AssertExpectations(t)
	venueRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SubmitOrderCommand{} // not constructed properly
	factory := new(MockSubmitUoWFactory)
	h := commands.NewSubmitOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestSubmitOrderCommandHandler_Handle_UnknownVenue(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSubmitOrderCommand("No Such Hall", time.Now().Add(24*time.Hour), 2, "user1")

	venueRepo := new(MockSubmitVenueRepository)
	uow := new(MockSubmitUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VenueRepository").Return(venueRepo).Once(),
		venueRepo.On("GetByName", mock.Anything, "No Such Hall").
			Return(nil, errs.NewObjectNotFoundError("venueName", "No Such Hall")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSubmitUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	venueRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSubmitOrderCommand("Court A", time.Now().Add(24*time.Hour), 2, "user1")

	uow := new(MockSubmitUoW)
	factory := new(MockSubmitUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewSubmitOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestSubmitOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	bookedVenue, err := venue.RestoreVenue(3, "Court A", 100)
	require.NoError(t, err)
	cmd, _ := commands.NewSubmitOrderCommand("Court A", time.Now().Add(24*time.Hour), 2, "user1")

	orderRepo := new(MockSubmitOrderRepository)
	venueRepo := new(MockSubmitVenueRepository)
	uow := new(MockSubmitUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VenueRepository").Return(venueRepo).Once(),
		venueRepo.On("GetByName", mock.Anything, "Court A").Return(bookedVenue, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSubmitUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	orderRepo.AssertExpectations(t)
	venueRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
