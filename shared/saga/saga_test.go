package saga

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCompensations_ReverseOrder(t *testing.T) {
	comp := NewCompensations()

	var order []string
	comp.Add("first", func(ctx context.Context) error {
		order = append(order, "first")
		return nil
	})
	comp.Add("second", func(ctx context.Context) error {
		order = append(order, "second")
		return nil
	})
	comp.Add("third", func(ctx context.Context) error {
		order = append(order, "third")
		return nil
	})

	err := comp.Compensate(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"third", "second", "first"}, order)
}

func TestCompensations_FailureDoesNotBlockRest(t *testing.T) {
	comp := NewCompensations()

	var ran []string
	comp.Add("reverse-payment", func(ctx context.Context) error {
		ran = append(ran, "reverse-payment")
		return nil
	})
	comp.Add("release-stock", func(ctx context.Context) error {
		return errors.New("warehouse unavailable")
	})

	err := comp.Compensate(context.Background())

	var compErr *CompensationError
	assert.ErrorAs(t, err, &compErr)
	assert.Len(t, compErr.Errors, 1)
	assert.Contains(t, compErr.Error(), "release-stock")
	// The earlier registration still ran despite the failure above it.
	assert.Equal(t, []string{"reverse-payment"}, ran)
}

func TestCompensations_EmptyLedgerIsNoop(t *testing.T) {
	comp := NewCompensations()

	assert.Equal(t, 0, comp.Len())
	assert.NoError(t, comp.Compensate(context.Background()))
}

func TestCompensations_SecondCompensateIsNoop(t *testing.T) {
	comp := NewCompensations()

	calls := 0
	comp.Add("reverse-payment", func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, comp.Compensate(context.Background()))
	assert.NoError(t, comp.Compensate(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestCompensations_RunsUnderCancelledContext(t *testing.T) {
	// Cleanup is detached from the triggering cancellation; the ledger
	// itself must not refuse to run just because ctx is done.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	comp := NewCompensations()
	ran := false
	comp.Add("reverse-payment", func(ctx context.Context) error {
		ran = true
		return nil
	})

	assert.NoError(t, comp.Compensate(ctx))
	assert.True(t, ran)
}
