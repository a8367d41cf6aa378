package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/petstore/order-system/shared/events"
	"github.com/petstore/order-system/shared/models"
	"github.com/pkg/errors"
)

// Order aggregate root. The persisted record is a projection of the saga's
// progress: it is created as order_created when the saga starts and settles
// into exactly one terminal status.
type Order struct {
	ID              models.ID
	OrderNumber     string
	TransactionID   models.ID
	CustomerEmail   string
	OrderDate       time.Time
	RequestedByHost string
	RequestedByUser string
	Products        []Product
	OrderTotal      models.Money
	TrackingNumber  string
	Status          OrderStatus
	FailureReason   FailureReason
	Timestamps      models.Timestamps
	Version         models.Version

	events []*events.Event
}

// CreateOrder factory method
func CreateOrder(transactionID models.ID, customerEmail string, orderDate time.Time, requestedByHost, requestedByUser string, products []Product) (*Order, error) {
	if transactionID.IsZero() {
		return nil, errors.New("transaction ID is required")
	}
	if customerEmail == "" {
		return nil, errors.New("customer email is required")
	}
	if len(products) == 0 {
		return nil, errors.New("at least one product is required")
	}

	order := &Order{
		ID:              models.GenerateUUID(),
		OrderNumber:     newOrderNumber(),
		TransactionID:   transactionID,
		CustomerEmail:   customerEmail,
		OrderDate:       orderDate,
		RequestedByHost: requestedByHost,
		RequestedByUser: requestedByUser,
		Products:        products,
		Status:          OrderStatusOrderCreated,
		Timestamps:      models.NewTimestamps(),
		Version:         models.NewVersion(),
	}

	event := events.NewEvent(order.ID, events.OrderReceivedEvent, OrderReceivedData{
		OrderNumber:   order.OrderNumber,
		TransactionID: order.TransactionID,
		CustomerEmail: order.CustomerEmail,
		OrderDate:     order.OrderDate,
		Products:      order.Products,
	})

	order.recordEvent(event)
	return order, nil
}

// Complete marks the order as completed with its final total and tracking number.
func (o *Order) Complete(total models.Money, trackingNumber string) error {
	if o.Status.IsTerminal() {
		return errors.Errorf("cannot complete order in terminal status %s", o.Status)
	}

	o.OrderTotal = total
	o.TrackingNumber = trackingNumber
	o.Status = OrderStatusCompleted
	o.Timestamps = o.Timestamps.Update()
	o.Version = o.Version.Update()

	event := events.NewEvent(o.ID, events.OrderCompletedEvent, OrderCompletedData{
		OrderNumber:    o.OrderNumber,
		TransactionID:  o.TransactionID,
		OrderTotal:     o.OrderTotal,
		TrackingNumber: o.TrackingNumber,
		CompletedAt:    time.Now(),
	})

	o.recordEvent(event)
	return nil
}

// Fail marks the order as failed with a business failure reason.
func (o *Order) Fail(reason FailureReason) error {
	if o.Status == OrderStatusCompleted {
		return errors.New("cannot fail a completed order")
	}

	o.Status = OrderStatusFailed
	o.FailureReason = reason
	o.Timestamps = o.Timestamps.Update()
	o.Version = o.Version.Update()

	event := events.NewEvent(o.ID, events.OrderFailedEvent, OrderFailedData{
		OrderNumber:   o.OrderNumber,
		TransactionID: o.TransactionID,
		Reason:        reason,
		FailedAt:      time.Now(),
	})

	o.recordEvent(event)
	return nil
}

// Events returns recorded domain events
func (o *Order) Events() []*events.Event {
	return o.events
}

// ClearEvents clears recorded events after they are published
func (o *Order) ClearEvents() {
	o.events = nil
}

func (o *Order) recordEvent(event *events.Event) {
	o.events = append(o.events, event)
}

// newOrderNumber derives a customer-facing order number.
func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}

// OrderRepository persists order records
type OrderRepository interface {
	Save(ctx context.Context, order *Order) error
	FindByNumber(ctx context.Context, orderNumber string) (*Order, error)
	FindByTransactionID(ctx context.Context, transactionID models.ID) (*Order, error)
}

// OrderReceivedData represents data for the order received event
type OrderReceivedData struct {
	OrderNumber   string    `json:"order_number"`
	TransactionID models.ID `json:"transaction_id"`
	CustomerEmail string    `json:"customer_email"`
	OrderDate     time.Time `json:"order_date"`
	Products      []Product `json:"products"`
}

// OrderCompletedData represents data for the order completed event
type OrderCompletedData struct {
	OrderNumber    string       `json:"order_number"`
	TransactionID  models.ID    `json:"transaction_id"`
	OrderTotal     models.Money `json:"order_total"`
	TrackingNumber string       `json:"tracking_number"`
	CompletedAt    time.Time    `json:"completed_at"`
}

// OrderFailedData represents data for the order failed event
type OrderFailedData struct {
	OrderNumber   string        `json:"order_number"`
	TransactionID models.ID     `json:"transaction_id"`
	Reason        FailureReason `json:"reason"`
	FailedAt      time.Time     `json:"failed_at"`
}
