package commands_test

import (
	"testing"

	"meethere/internal/core/application/usecases/commands"
	"meethere/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewDeleteOrderCommand(5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cmd.OrderID())
	assert.NoError(t, cmd.Validate())
}

func TestNewDeleteOrderCommand_NonPositiveOrderID(t *testing.T) {
	_, err := commands.NewDeleteOrderCommand(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDeleteOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.DeleteOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeleteOrderCommandIsNotConstructed)
}
