package handlers

import (
	"context"
	"log"

	"github.com/petstore/order-system/order-service/application"
	"github.com/petstore/order-system/order-service/domain"
	"github.com/petstore/order-system/shared/events"
	"github.com/pkg/errors"
)

// OrderEventHandlers handles order placement requests arriving over the
// order request queue instead of HTTP.
type OrderEventHandlers struct {
	placeOrder *application.PlaceOrder
}

// NewOrderEventHandlers creates new order event handlers
func NewOrderEventHandlers(placeOrder *application.PlaceOrder) *OrderEventHandlers {
	return &OrderEventHandlers{placeOrder: placeOrder}
}

// HandlerID returns the unique identifier for this event handler
func (h *OrderEventHandlers) HandlerID() string {
	return "order-service-event-handler"
}

// Handle implements the events.EventHandler interface
func (h *OrderEventHandlers) Handle(ctx context.Context, event *events.Event) error {
	switch event.EventType {
	case events.OrderPlacementRequestedEvent:
		return h.HandleOrderPlacementRequested(ctx, event)
	default:
		// Unknown event type, ignore
		return nil
	}
}

// HandleOrderPlacementRequested runs the placement saga for a queued
// request. A saga that failed has already compensated and finalized, so
// the message is not returned for redelivery; only malformed payloads and
// validation failures are surfaced.
func (h *OrderEventHandlers) HandleOrderPlacementRequested(ctx context.Context, event *events.Event) error {
	var data OrderPlacementRequestedData
	if err := event.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to parse order placement request")
	}

	cmd := &application.PlaceOrderCommand{
		CustomerEmail:   data.CustomerEmail,
		Products:        data.Products,
		CreditCard:      data.CreditCard,
		RequestedByHost: data.RequestedByHost,
		RequestedByUser: data.RequestedByUser,
	}

	if _, err := h.placeOrder.Execute(ctx, cmd); err != nil {
		log.Printf("queued order placement failed: %v", err)
	}
	return nil
}

// OrderPlacementRequestedData represents a queued order placement request
type OrderPlacementRequestedData struct {
	CustomerEmail   string            `json:"customer_email"`
	Products        []domain.Product  `json:"products"`
	CreditCard      domain.CreditCard `json:"credit_card"`
	RequestedByHost string            `json:"requested_by_host"`
	RequestedByUser string            `json:"requested_by_user"`
}
