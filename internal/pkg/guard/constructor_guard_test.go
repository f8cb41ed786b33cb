package guard_test

import (
	"errors"
	"testing"

	"meethere/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates the pattern used by the
// command and query value objects in this codebase.
func TestConstructorGuardUsageExample(t *testing.T) {
	type booking struct {
		venueName string
		hours     int
		guard     guard.ConstructorGuard
	}

	var errBookingNotConstructed = errors.New("booking must be created via newBooking")

	newBooking := func(venueName string, hours int) (booking, error) {
		if venueName == "" {
			return booking{}, errors.New("venue name is required")
		}
		if hours <= 0 {
			return booking{}, errors.New("hours must be positive")
		}
		return booking{
			venueName: venueName,
			hours:     hours,
			guard:     guard.NewConstructorGuard(),
		}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		b, err := newBooking("Court A", 2)

		require.NoError(t, err)
		require.NoError(t, b.guard.Validate(errBookingNotConstructed))
		assert.Equal(t, "Court A", b.venueName)
		assert.Equal(t, 2, b.hours)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var b booking

		err := b.guard.Validate(errBookingNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errBookingNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newBooking("", 2)
		require.Error(t, err)

		_, err = newBooking("Court A", 0)
		require.Error(t, err)
	})
}

func TestConstructorGuard_PassedByValue(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("test error")

	gCopy := g

	require.NoError(t, g.Validate(testError))
	require.NoError(t, gCopy.Validate(testError))
}
