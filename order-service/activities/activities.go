// Package activities declares the capability contracts the order saga
// consumes. Each contract is an external collaborator with its own
// transport, retry and timeout handling; the orchestrator only decides
// what to do once a call has definitively failed.
package activities

import (
	"context"
	"time"

	"github.com/petstore/order-system/order-service/domain"
	"github.com/petstore/order-system/shared/models"
)

// NotificationService sends customer-facing emails.
type NotificationService interface {
	SendOrderReceivedEmail(ctx context.Context, req *OrderReceivedEmailRequest) error
	SendOrderSuccessEmail(ctx context.Context, req *OrderSuccessEmailRequest) error
	SendOrderErrorEmail(ctx context.Context, req *OrderErrorEmailRequest) error
}

// OrderRecordService owns the persisted order record. Failed orders are
// never deleted; they transition to a failed status, which is why the saga
// registers no compensation for record creation.
type OrderRecordService interface {
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*CreateOrderResponse, error)
	MarkOrderAsComplete(ctx context.Context, req *MarkOrderCompleteRequest) error
	MarkOrderAsFailed(ctx context.Context, req *MarkOrderFailedRequest) error
}

// WarehouseService checks stock. Checks are reservation-free: a successful
// check commits nothing and needs no compensation.
type WarehouseService interface {
	CheckInventory(ctx context.Context, req *CheckInventoryRequest) error
}

// ShipperService issues shipment tracking numbers.
type ShipperService interface {
	CreateTrackingNumber(ctx context.Context, req *CreateTrackingNumberRequest) (string, error)
}

// PaymentService debits cards and reverses transactions.
// ReversePaymentTransactions must be idempotent and a safe no-op for a
// transaction that never committed — the saga registers the reversal
// before attempting the debit.
type PaymentService interface {
	DebitCreditCard(ctx context.Context, req *DebitCreditCardRequest) (*DebitCreditCardResponse, error)
	ReversePaymentTransactions(ctx context.Context, req *ReversePaymentTransactionsRequest) error
}

type OrderReceivedEmailRequest struct {
	TransactionID models.ID        `json:"transaction_id"`
	CustomerEmail string           `json:"customer_email"`
	OrderDate     time.Time        `json:"order_date"`
	Products      []domain.Product `json:"products"`
}

type OrderSuccessEmailRequest struct {
	TransactionID  models.ID        `json:"transaction_id"`
	OrderNumber    string           `json:"order_number"`
	CustomerEmail  string           `json:"customer_email"`
	OrderDate      time.Time        `json:"order_date"`
	Products       []domain.Product `json:"products"`
	TrackingNumber string           `json:"tracking_number"`
	OrderTotal     models.Money     `json:"order_total"`
}

type OrderErrorEmailRequest struct {
	TransactionID models.ID `json:"transaction_id"`
	OrderNumber   string    `json:"order_number,omitempty"` // empty when failure precedes record creation
	CustomerEmail string    `json:"customer_email"`
	OrderDate     time.Time `json:"order_date"`
}

type CreateOrderRequest struct {
	CustomerEmail   string           `json:"customer_email"`
	OrderDate       time.Time        `json:"order_date"`
	TransactionID   models.ID        `json:"transaction_id"`
	RequestedByHost string           `json:"requested_by_host"`
	RequestedByUser string           `json:"requested_by_user"`
	Products        []domain.Product `json:"products"`
}

type CreateOrderResponse struct {
	OrderNumber string             `json:"order_number"`
	Status      domain.OrderStatus `json:"status"`
}

type MarkOrderCompleteRequest struct {
	OrderNumber    string           `json:"order_number"`
	TransactionID  models.ID        `json:"transaction_id"`
	Products       []domain.Product `json:"products"`
	OrderDate      time.Time        `json:"order_date"`
	CustomerEmail  string           `json:"customer_email"`
	OrderTotal     models.Money     `json:"order_total"`
	TrackingNumber string           `json:"tracking_number"`
}

type MarkOrderFailedRequest struct {
	OrderNumber   string               `json:"order_number,omitempty"`
	TransactionID models.ID            `json:"transaction_id"`
	Reason        domain.FailureReason `json:"reason"`
}

type CheckInventoryRequest struct {
	Products []domain.Product `json:"products"`
}

type CreateTrackingNumberRequest struct {
	Products []domain.Product `json:"products"`
}

type DebitCreditCardRequest struct {
	TransactionID   models.ID         `json:"transaction_id"`
	Amount          models.Money      `json:"amount"`
	CreditCard      domain.CreditCard `json:"credit_card"`
	CustomerEmail   string            `json:"customer_email"`
	RequestedByHost string            `json:"requested_by_host"`
	RequestedByUser string            `json:"requested_by_user"`
}

type DebitCreditCardResponse struct {
	AuthorizationCode string `json:"authorization_code"`
}

type ReversePaymentTransactionsRequest struct {
	TransactionID   models.ID `json:"transaction_id"`
	RequestedByHost string    `json:"requested_by_host"`
	RequestedByUser string    `json:"requested_by_user"`
}
