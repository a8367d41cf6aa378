package domain

import (
	"context"

	"github.com/pkg/errors"
	"github.com/qmuntal/stateless"
)

// OrderStatus mirrors the order-record lifecycle.
type OrderStatus string

const (
	OrderStatusReceived           OrderStatus = "received"
	OrderStatusOrderCreated       OrderStatus = "order_created"
	OrderStatusPriced             OrderStatus = "priced"
	OrderStatusPaid               OrderStatus = "paid"
	OrderStatusInventoryConfirmed OrderStatus = "inventory_confirmed"
	OrderStatusShipped            OrderStatus = "shipped"
	OrderStatusCompleted          OrderStatus = "completed"
	OrderStatusFailed             OrderStatus = "failed"
	OrderStatusCancelled          OrderStatus = "cancelled"
)

// IsTerminal reports whether no further transition leaves the status.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusFailed, OrderStatusCancelled:
		return true
	}
	return false
}

// StatusTrigger advances an order through its lifecycle.
type StatusTrigger string

const (
	TriggerCreateRecord     StatusTrigger = "create_record"
	TriggerPrice            StatusTrigger = "price"
	TriggerDebitPayment     StatusTrigger = "debit_payment"
	TriggerConfirmInventory StatusTrigger = "confirm_inventory"
	TriggerShip             StatusTrigger = "ship"
	TriggerComplete         StatusTrigger = "complete"
	TriggerFail             StatusTrigger = "fail"
	TriggerCancel           StatusTrigger = "cancel"
)

// NextStatus computes the status an order moves to when a trigger fires.
// It is a pure function of current status and trigger — the orchestrator
// keeps all branching replay-safe by routing every status change through
// here. Firing a trigger a state does not permit returns an error and
// leaves the status unchanged; terminal states permit nothing.
func NextStatus(current OrderStatus, trigger StatusTrigger) (OrderStatus, error) {
	state := current

	sm := stateless.NewStateMachineWithExternalStorage(
		func(_ context.Context) (stateless.State, error) {
			return state, nil
		},
		func(_ context.Context, s stateless.State) error {
			state = s.(OrderStatus)
			return nil
		},
		stateless.FiringImmediate,
	)

	sm.Configure(OrderStatusReceived).
		Permit(TriggerCreateRecord, OrderStatusOrderCreated).
		Permit(TriggerFail, OrderStatusFailed).
		Permit(TriggerCancel, OrderStatusCancelled)

	sm.Configure(OrderStatusOrderCreated).
		Permit(TriggerPrice, OrderStatusPriced).
		Permit(TriggerFail, OrderStatusFailed).
		Permit(TriggerCancel, OrderStatusCancelled)

	sm.Configure(OrderStatusPriced).
		Permit(TriggerDebitPayment, OrderStatusPaid).
		Permit(TriggerFail, OrderStatusFailed).
		Permit(TriggerCancel, OrderStatusCancelled)

	sm.Configure(OrderStatusPaid).
		Permit(TriggerConfirmInventory, OrderStatusInventoryConfirmed).
		Permit(TriggerFail, OrderStatusFailed).
		Permit(TriggerCancel, OrderStatusCancelled)

	sm.Configure(OrderStatusInventoryConfirmed).
		Permit(TriggerShip, OrderStatusShipped).
		Permit(TriggerFail, OrderStatusFailed).
		Permit(TriggerCancel, OrderStatusCancelled)

	sm.Configure(OrderStatusShipped).
		Permit(TriggerComplete, OrderStatusCompleted).
		Permit(TriggerFail, OrderStatusFailed).
		Permit(TriggerCancel, OrderStatusCancelled)

	if err := sm.Fire(trigger); err != nil {
		return current, errors.Wrapf(err, "invalid transition from %s on %s", current, trigger)
	}
	return state, nil
}
