package infrastructure

import (
	"context"
	"log"

	"github.com/petstore/order-system/order-service/activities"
	"github.com/petstore/order-system/order-service/domain"
	"github.com/petstore/order-system/shared/events"
	"github.com/pkg/errors"
)

var _ activities.OrderRecordService = (*OrderRecordStore)(nil)

// OrderRecordStore implements the OrderRecord capability on the service's
// own Postgres store. Lifecycle changes append to the order's event stream
// and publish the aggregate's recorded events for downstream consumers.
type OrderRecordStore struct {
	repository     domain.OrderRepository
	eventStore     events.EventStore
	eventPublisher events.Publisher
}

// NewOrderRecordStore creates a new OrderRecordStore
func NewOrderRecordStore(repository domain.OrderRepository, eventStore events.EventStore, eventPublisher events.Publisher) *OrderRecordStore {
	return &OrderRecordStore{
		repository:     repository,
		eventStore:     eventStore,
		eventPublisher: eventPublisher,
	}
}

// CreateOrder creates the initial order record and returns its order number.
func (s *OrderRecordStore) CreateOrder(ctx context.Context, req *activities.CreateOrderRequest) (*activities.CreateOrderResponse, error) {
	order, err := domain.CreateOrder(req.TransactionID, req.CustomerEmail, req.OrderDate, req.RequestedByHost, req.RequestedByUser, req.Products)
	if err != nil {
		return nil, errors.Wrap(err, "invalid order")
	}

	if err := s.repository.Save(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to save order")
	}

	s.publishEvents(ctx, order)

	return &activities.CreateOrderResponse{
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
	}, nil
}

// MarkOrderAsComplete finalizes a successfully placed order.
func (s *OrderRecordStore) MarkOrderAsComplete(ctx context.Context, req *activities.MarkOrderCompleteRequest) error {
	order, err := s.repository.FindByNumber(ctx, req.OrderNumber)
	if err != nil {
		return errors.Wrap(err, "failed to find order")
	}
	if order == nil {
		return errors.Errorf("order %s not found", req.OrderNumber)
	}

	if err := order.Complete(req.OrderTotal, req.TrackingNumber); err != nil {
		return errors.Wrap(err, "failed to complete order")
	}

	if err := s.repository.Save(ctx, order); err != nil {
		return errors.Wrap(err, "failed to save order")
	}

	s.publishEvents(ctx, order)
	return nil
}

// MarkOrderAsFailed finalizes a failed order with its business reason.
// A failure before the record was created leaves nothing to mark.
func (s *OrderRecordStore) MarkOrderAsFailed(ctx context.Context, req *activities.MarkOrderFailedRequest) error {
	var order *domain.Order
	var err error

	if req.OrderNumber != "" {
		order, err = s.repository.FindByNumber(ctx, req.OrderNumber)
	} else {
		order, err = s.repository.FindByTransactionID(ctx, req.TransactionID)
	}
	if err != nil {
		return errors.Wrap(err, "failed to find order")
	}
	if order == nil {
		log.Printf("no order record to mark failed for transaction %s", req.TransactionID)
		return nil
	}

	if err := order.Fail(req.Reason); err != nil {
		return errors.Wrap(err, "failed to fail order")
	}

	if err := s.repository.Save(ctx, order); err != nil {
		return errors.Wrap(err, "failed to save order")
	}

	s.publishEvents(ctx, order)
	return nil
}

// publishEvents appends the order's new events to its audit stream and
// publishes them. Both are best effort: a lost event must not fail the
// record operation that already committed.
func (s *OrderRecordStore) publishEvents(ctx context.Context, order *domain.Order) {
	evts := order.Events()
	if len(evts) == 0 {
		return
	}

	// Each lifecycle operation records one event, so the stream version
	// trails the aggregate version by exactly one.
	if err := s.eventStore.SaveEvents(ctx, order.ID, evts, order.Version.Value-1); err != nil {
		log.Printf("failed to store order events for %s: %v", order.OrderNumber, err)
	}

	if err := s.eventPublisher.Publish(ctx, evts...); err != nil {
		log.Printf("failed to publish order events for %s: %v", order.OrderNumber, err)
		return
	}
	order.ClearEvents()
}
