package commands_test

import (
	"testing"

	"meethere/internal/core/application/usecases/commands"
	"meethere/internal/core/domain/model/order"
	"meethere/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmOrderCommand(t *testing.T) {
	cmd, err := commands.NewConfirmOrderCommand(42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cmd.OrderID())
	assert.Equal(t, order.Wait, cmd.Verdict())
	assert.NoError(t, cmd.Validate())
}

func TestNewFinishOrderCommand(t *testing.T) {
	cmd, err := commands.NewFinishOrderCommand(42)
	require.NoError(t, err)
	assert.Equal(t, order.Finish, cmd.Verdict())
}

func TestNewRejectOrderCommand(t *testing.T) {
	cmd, err := commands.NewRejectOrderCommand(42)
	require.NoError(t, err)
	assert.Equal(t, order.Reject, cmd.Verdict())
}

func TestNewReviewOrderCommand_NonPositiveOrderID(t *testing.T) {
	for _, orderID := range []int64{0, -5} {
		_, err := commands.NewConfirmOrderCommand(orderID)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestReviewOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.ReviewOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReviewOrderCommandIsNotConstructed)
}
