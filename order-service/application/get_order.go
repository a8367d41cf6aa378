package application

import (
	"context"
	"time"

	"github.com/petstore/order-system/order-service/domain"
	"github.com/petstore/order-system/shared/models"
	"github.com/pkg/errors"
)

// GetOrderQuery represents the query to retrieve an order record
type GetOrderQuery struct {
	OrderNumber string `json:"order_number"`
}

// GetOrderResponse represents the order record returned to the caller
type GetOrderResponse struct {
	OrderNumber    string               `json:"order_number"`
	TransactionID  models.ID            `json:"transaction_id"`
	CustomerEmail  string               `json:"customer_email"`
	OrderDate      time.Time            `json:"order_date"`
	Products       []domain.Product     `json:"products"`
	OrderTotal     models.Money         `json:"order_total"`
	TrackingNumber string               `json:"tracking_number,omitempty"`
	Status         domain.OrderStatus   `json:"status"`
	FailureReason  domain.FailureReason `json:"failure_reason,omitempty"`
}

// GetOrder use case retrieves a persisted order record
type GetOrder struct {
	orderRepository domain.OrderRepository
}

// NewGetOrder creates a new GetOrder use case
func NewGetOrder(orderRepository domain.OrderRepository) *GetOrder {
	return &GetOrder{orderRepository: orderRepository}
}

// Execute retrieves an order by its order number
func (uc *GetOrder) Execute(ctx context.Context, query *GetOrderQuery) (*GetOrderResponse, error) {
	if query == nil || query.OrderNumber == "" {
		return nil, errors.New("order number is required")
	}

	order, err := uc.orderRepository.FindByNumber(ctx, query.OrderNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	if order == nil {
		return nil, errors.New("order not found")
	}

	return &GetOrderResponse{
		OrderNumber:    order.OrderNumber,
		TransactionID:  order.TransactionID,
		CustomerEmail:  order.CustomerEmail,
		OrderDate:      order.OrderDate,
		Products:       order.Products,
		OrderTotal:     order.OrderTotal,
		TrackingNumber: order.TrackingNumber,
		Status:         order.Status,
		FailureReason:  order.FailureReason,
	}, nil
}
