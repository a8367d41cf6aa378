package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/petstore/order-system/order-service/activities"
	"github.com/petstore/order-system/order-service/application"
	"github.com/petstore/order-system/order-service/domain"
	"github.com/petstore/order-system/order-service/mocks"
	"github.com/petstore/order-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	notifications *mocks.MockNotificationService
	orderRecords  *mocks.MockOrderRecordService
	warehouse     *mocks.MockWarehouseService
	shipper       *mocks.MockShipperService
	payments      *mocks.MockPaymentService
	repository    *mocks.MockOrderRepository
	router        chi.Router
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	f := &handlerFixture{
		notifications: mocks.NewMockNotificationService(t),
		orderRecords:  mocks.NewMockOrderRecordService(t),
		warehouse:     mocks.NewMockWarehouseService(t),
		shipper:       mocks.NewMockShipperService(t),
		payments:      mocks.NewMockPaymentService(t),
		repository:    mocks.NewMockOrderRepository(t),
	}

	placeOrder := application.NewPlaceOrder(f.notifications, f.orderRecords, f.warehouse, f.shipper, f.payments)
	getOrder := application.NewGetOrder(f.repository)

	f.router = chi.NewRouter()
	NewOrderHandlers(placeOrder, getOrder).RegisterRoutes(f.router)
	return f
}

const placeOrderBody = `{
	"customer_email": "jane@example.com",
	"products": [
		{"sku": "DOG-FOOD-1KG", "quantity": 2, "unit_price": {"amount": 1000, "currency": "USD"}}
	],
	"credit_card": {
		"holder_name": "Jane Doe",
		"number": "4111111111111111",
		"expiration": "12/30",
		"cvv": "123"
	}
}`

func (f *handlerFixture) expectHappyPathUpToPayment() {
	f.notifications.EXPECT().SendOrderReceivedEmail(mock.Anything, mock.Anything).Return(nil).Once()
	f.orderRecords.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		Return(&activities.CreateOrderResponse{OrderNumber: "ORD-AB12CD34", Status: domain.OrderStatusOrderCreated}, nil).Once()
}

func (f *handlerFixture) expectFailureFinalization() {
	f.orderRecords.EXPECT().MarkOrderAsFailed(mock.Anything, mock.Anything).Return(nil).Once()
	f.notifications.EXPECT().SendOrderErrorEmail(mock.Anything, mock.Anything).Return(nil).Once()
}

func TestPlaceOrderHandler_Created(t *testing.T) {
	f := newHandlerFixture(t)

	f.expectHappyPathUpToPayment()
	f.payments.EXPECT().DebitCreditCard(mock.Anything, mock.Anything).
		Return(&activities.DebitCreditCardResponse{AuthorizationCode: "AUTH-1"}, nil).Once()
	f.warehouse.EXPECT().CheckInventory(mock.Anything, mock.Anything).Return(nil).Once()
	f.shipper.EXPECT().CreateTrackingNumber(mock.Anything, mock.Anything).Return("TRACK-123", nil).Once()
	f.orderRecords.EXPECT().MarkOrderAsComplete(mock.Anything, mock.Anything).Return(nil).Once()
	f.notifications.EXPECT().SendOrderSuccessEmail(mock.Anything, mock.Anything).Return(nil).Once()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(placeOrderBody)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp application.PlaceOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ORD-AB12CD34", resp.OrderNumber)
	assert.Equal(t, "TRACK-123", resp.TrackingNumber)
	assert.Equal(t, models.NewMoney(2000, "USD"), resp.OrderTotal)
	assert.Equal(t, domain.OrderStatusCompleted, resp.Status)
}

func TestPlaceOrderHandler_MalformedBody(t *testing.T) {
	f := newHandlerFixture(t)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlaceOrderHandler_InvalidCommand(t *testing.T) {
	f := newHandlerFixture(t)

	body := `{"customer_email": "", "products": [], "credit_card": {}}`
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid command")
}

func TestPlaceOrderHandler_PaymentDeclined(t *testing.T) {
	f := newHandlerFixture(t)

	f.expectHappyPathUpToPayment()
	f.payments.EXPECT().DebitCreditCard(mock.Anything, mock.Anything).
		Return(nil, domain.NewPaymentDeclinedError("insufficient funds", nil)).Once()
	f.payments.EXPECT().ReversePaymentTransactions(mock.Anything, mock.Anything).Return(nil).Once()
	f.expectFailureFinalization()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(placeOrderBody)))

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
}

func TestPlaceOrderHandler_OutOfStock(t *testing.T) {
	f := newHandlerFixture(t)

	f.expectHappyPathUpToPayment()
	f.payments.EXPECT().DebitCreditCard(mock.Anything, mock.Anything).
		Return(&activities.DebitCreditCardResponse{AuthorizationCode: "AUTH-1"}, nil).Once()
	f.warehouse.EXPECT().CheckInventory(mock.Anything, mock.Anything).
		Return(domain.NewOutOfStockError("DOG-FOOD-1KG out of stock", nil)).Once()
	f.payments.EXPECT().ReversePaymentTransactions(mock.Anything, mock.Anything).Return(nil).Once()
	f.expectFailureFinalization()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(placeOrderBody)))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPlaceOrderHandler_SystemError(t *testing.T) {
	f := newHandlerFixture(t)

	f.notifications.EXPECT().SendOrderReceivedEmail(mock.Anything, mock.Anything).Return(nil).Once()
	f.orderRecords.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		Return(nil, assert.AnError).Once()
	f.expectFailureFinalization()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(placeOrderBody)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetOrderHandler_Found(t *testing.T) {
	f := newHandlerFixture(t)

	order, err := domain.CreateOrder(
		models.GenerateUUID(),
		"jane@example.com",
		time.Now(),
		"api-gw-1",
		"jane",
		[]domain.Product{{SKU: "DOG-FOOD-1KG", Quantity: 2, UnitPrice: models.NewMoney(1000, "USD")}},
	)
	require.NoError(t, err)

	f.repository.EXPECT().FindByNumber(mock.Anything, order.OrderNumber).Return(order, nil).Once()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/"+order.OrderNumber, nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp application.GetOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, order.OrderNumber, resp.OrderNumber)
	assert.Equal(t, "jane@example.com", resp.CustomerEmail)
}

func TestGetOrderHandler_NotFound(t *testing.T) {
	f := newHandlerFixture(t)

	f.repository.EXPECT().FindByNumber(mock.Anything, "ORD-MISSING").Return(nil, nil).Once()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/ORD-MISSING", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
