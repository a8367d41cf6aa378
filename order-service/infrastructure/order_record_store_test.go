package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/petstore/order-system/order-service/activities"
	"github.com/petstore/order-system/order-service/domain"
	"github.com/petstore/order-system/order-service/mocks"
	"github.com/petstore/order-system/shared/events"
	"github.com/petstore/order-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordStoreFixture struct {
	repository *mocks.MockOrderRepository
	eventStore *mocks.MockEventStore
	publisher  *mocks.MockPublisher
	store      *OrderRecordStore
}

func newRecordStoreFixture(t *testing.T) *recordStoreFixture {
	f := &recordStoreFixture{
		repository: mocks.NewMockOrderRepository(t),
		eventStore: mocks.NewMockEventStore(t),
		publisher:  mocks.NewMockPublisher(t),
	}
	f.store = NewOrderRecordStore(f.repository, f.eventStore, f.publisher)
	return f
}

func storedOrder(t *testing.T) *domain.Order {
	t.Helper()

	order, err := domain.CreateOrder(
		models.GenerateUUID(),
		"jane@example.com",
		time.Now(),
		"api-gw-1",
		"jane",
		[]domain.Product{{SKU: "DOG-FOOD-1KG", Quantity: 2, UnitPrice: models.NewMoney(1000, "USD")}},
	)
	require.NoError(t, err)
	order.ClearEvents()
	return order
}

func TestOrderRecordStore_CreateOrder(t *testing.T) {
	f := newRecordStoreFixture(t)

	f.repository.EXPECT().Save(mock.Anything, mock.MatchedBy(func(order *domain.Order) bool {
		return order.CustomerEmail == "jane@example.com" && order.Status == domain.OrderStatusOrderCreated
	})).Return(nil).Once()
	f.eventStore.EXPECT().SaveEvents(mock.Anything, mock.Anything, mock.MatchedBy(func(evts []*events.Event) bool {
		return len(evts) == 1 && evts[0].EventType == events.OrderReceivedEvent
	}), 0).Return(nil).Once()
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	resp, err := f.store.CreateOrder(context.Background(), &activities.CreateOrderRequest{
		TransactionID: models.GenerateUUID(),
		CustomerEmail: "jane@example.com",
		OrderDate:     time.Now(),
		Products:      []domain.Product{{SKU: "DOG-FOOD-1KG", Quantity: 2, UnitPrice: models.NewMoney(1000, "USD")}},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.OrderNumber)
	assert.Equal(t, domain.OrderStatusOrderCreated, resp.Status)
}

func TestOrderRecordStore_CreateOrder_InvalidRequest(t *testing.T) {
	f := newRecordStoreFixture(t)

	_, err := f.store.CreateOrder(context.Background(), &activities.CreateOrderRequest{
		TransactionID: models.GenerateUUID(),
		CustomerEmail: "",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order")
}

func TestOrderRecordStore_MarkOrderAsComplete(t *testing.T) {
	f := newRecordStoreFixture(t)
	order := storedOrder(t)

	f.repository.EXPECT().FindByNumber(mock.Anything, order.OrderNumber).Return(order, nil).Once()
	f.repository.EXPECT().Save(mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
		return o.Status == domain.OrderStatusCompleted && o.TrackingNumber == "TRACK-123"
	})).Return(nil).Once()
	f.eventStore.EXPECT().SaveEvents(mock.Anything, order.ID, mock.Anything, 1).Return(nil).Once()
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	err := f.store.MarkOrderAsComplete(context.Background(), &activities.MarkOrderCompleteRequest{
		OrderNumber:    order.OrderNumber,
		TransactionID:  order.TransactionID,
		OrderTotal:     models.NewMoney(2000, "USD"),
		TrackingNumber: "TRACK-123",
	})

	require.NoError(t, err)
}

func TestOrderRecordStore_MarkOrderAsComplete_NotFound(t *testing.T) {
	f := newRecordStoreFixture(t)

	f.repository.EXPECT().FindByNumber(mock.Anything, "ORD-MISSING").Return(nil, nil).Once()

	err := f.store.MarkOrderAsComplete(context.Background(), &activities.MarkOrderCompleteRequest{
		OrderNumber: "ORD-MISSING",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestOrderRecordStore_MarkOrderAsFailed(t *testing.T) {
	f := newRecordStoreFixture(t)
	order := storedOrder(t)

	f.repository.EXPECT().FindByNumber(mock.Anything, order.OrderNumber).Return(order, nil).Once()
	f.repository.EXPECT().Save(mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
		return o.Status == domain.OrderStatusFailed && o.FailureReason == domain.FailureReasonOutOfStockItems
	})).Return(nil).Once()
	f.eventStore.EXPECT().SaveEvents(mock.Anything, order.ID, mock.Anything, 1).Return(nil).Once()
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	err := f.store.MarkOrderAsFailed(context.Background(), &activities.MarkOrderFailedRequest{
		OrderNumber:   order.OrderNumber,
		TransactionID: order.TransactionID,
		Reason:        domain.FailureReasonOutOfStockItems,
	})

	require.NoError(t, err)
}

func TestOrderRecordStore_MarkOrderAsFailed_FallsBackToTransactionID(t *testing.T) {
	f := newRecordStoreFixture(t)
	order := storedOrder(t)

	f.repository.EXPECT().FindByTransactionID(mock.Anything, order.TransactionID).Return(order, nil).Once()
	f.repository.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
	f.eventStore.EXPECT().SaveEvents(mock.Anything, order.ID, mock.Anything, 1).Return(nil).Once()
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	err := f.store.MarkOrderAsFailed(context.Background(), &activities.MarkOrderFailedRequest{
		TransactionID: order.TransactionID,
		Reason:        domain.FailureReasonSystemError,
	})

	require.NoError(t, err)
}

func TestOrderRecordStore_MarkOrderAsFailed_NoRecordIsNoOp(t *testing.T) {
	f := newRecordStoreFixture(t)
	transactionID := models.GenerateUUID()

	f.repository.EXPECT().FindByTransactionID(mock.Anything, transactionID).Return(nil, nil).Once()

	err := f.store.MarkOrderAsFailed(context.Background(), &activities.MarkOrderFailedRequest{
		TransactionID: transactionID,
		Reason:        domain.FailureReasonSystemError,
	})

	assert.NoError(t, err)
	f.repository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestOrderRecordStore_PublishFailureDoesNotFailOperation(t *testing.T) {
	f := newRecordStoreFixture(t)

	f.repository.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
	f.eventStore.EXPECT().SaveEvents(mock.Anything, mock.Anything, mock.Anything, 0).Return(assert.AnError).Once()
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(assert.AnError).Once()

	resp, err := f.store.CreateOrder(context.Background(), &activities.CreateOrderRequest{
		TransactionID: models.GenerateUUID(),
		CustomerEmail: "jane@example.com",
		OrderDate:     time.Now(),
		Products:      []domain.Product{{SKU: "DOG-FOOD-1KG", Quantity: 1, UnitPrice: models.NewMoney(1000, "USD")}},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.OrderNumber)
}
