package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatus_HappyPath(t *testing.T) {
	steps := []struct {
		trigger StatusTrigger
		want    OrderStatus
	}{
		{TriggerCreateRecord, OrderStatusOrderCreated},
		{TriggerPrice, OrderStatusPriced},
		{TriggerDebitPayment, OrderStatusPaid},
		{TriggerConfirmInventory, OrderStatusInventoryConfirmed},
		{TriggerShip, OrderStatusShipped},
		{TriggerComplete, OrderStatusCompleted},
	}

	status := OrderStatusReceived
	for _, step := range steps {
		next, err := NextStatus(status, step.trigger)
		require.NoError(t, err, "trigger %s from %s", step.trigger, status)
		assert.Equal(t, step.want, next)
		status = next
	}
}

func TestNextStatus_FailFromAnyNonTerminal(t *testing.T) {
	for _, status := range []OrderStatus{
		OrderStatusReceived,
		OrderStatusOrderCreated,
		OrderStatusPriced,
		OrderStatusPaid,
		OrderStatusInventoryConfirmed,
		OrderStatusShipped,
	} {
		next, err := NextStatus(status, TriggerFail)
		require.NoError(t, err, "fail from %s", status)
		assert.Equal(t, OrderStatusFailed, next)
	}
}

func TestNextStatus_CancelFromAnyNonTerminal(t *testing.T) {
	for _, status := range []OrderStatus{
		OrderStatusReceived,
		OrderStatusOrderCreated,
		OrderStatusPriced,
		OrderStatusPaid,
		OrderStatusInventoryConfirmed,
		OrderStatusShipped,
	} {
		next, err := NextStatus(status, TriggerCancel)
		require.NoError(t, err, "cancel from %s", status)
		assert.Equal(t, OrderStatusCancelled, next)
	}
}

func TestNextStatus_RejectsSkippedSteps(t *testing.T) {
	tests := []struct {
		current OrderStatus
		trigger StatusTrigger
	}{
		{OrderStatusReceived, TriggerDebitPayment},
		{OrderStatusReceived, TriggerComplete},
		{OrderStatusOrderCreated, TriggerShip},
		{OrderStatusPriced, TriggerConfirmInventory},
		{OrderStatusPaid, TriggerComplete},
	}

	for _, tt := range tests {
		_, err := NextStatus(tt.current, tt.trigger)
		assert.Error(t, err, "trigger %s from %s must be rejected", tt.trigger, tt.current)
	}
}

func TestNextStatus_TerminalStatesPermitNothing(t *testing.T) {
	allTriggers := []StatusTrigger{
		TriggerCreateRecord,
		TriggerPrice,
		TriggerDebitPayment,
		TriggerConfirmInventory,
		TriggerShip,
		TriggerComplete,
		TriggerFail,
		TriggerCancel,
	}

	for _, status := range []OrderStatus{OrderStatusCompleted, OrderStatusFailed, OrderStatusCancelled} {
		for _, trigger := range allTriggers {
			_, err := NextStatus(status, trigger)
			assert.Error(t, err, "trigger %s from terminal %s must be rejected", trigger, status)
		}
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusFailed.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())

	assert.False(t, OrderStatusReceived.IsTerminal())
	assert.False(t, OrderStatusPaid.IsTerminal())
	assert.False(t, OrderStatusShipped.IsTerminal())
}
