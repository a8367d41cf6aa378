package application

import (
	"context"
	"log"
	"time"

	"github.com/petstore/order-system/order-service/activities"
	"github.com/petstore/order-system/order-service/domain"
	"github.com/petstore/order-system/shared/models"
	"github.com/petstore/order-system/shared/saga"
	"github.com/petstore/order-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

// PlaceOrderCommand represents the command to place a product order
type PlaceOrderCommand struct {
	CustomerEmail   string            `json:"customer_email"`
	Products        []domain.Product  `json:"products"`
	CreditCard      domain.CreditCard `json:"credit_card"`
	RequestedByHost string            `json:"requested_by_host"`
	RequestedByUser string            `json:"requested_by_user"`
}

// PlaceOrderResponse represents the outcome of a completed order placement
type PlaceOrderResponse struct {
	TransactionID  models.ID          `json:"transaction_id"`
	OrderNumber    string             `json:"order_number"`
	OrderTotal     models.Money       `json:"order_total"`
	TrackingNumber string             `json:"tracking_number"`
	Status         domain.OrderStatus `json:"status"`
}

// PlaceOrder drives one order placement through the saga:
//
//  1. Send the order-received acknowledgement
//  2. Create the initial order record
//  3. Compute the order total
//  4. Debit the credit card (registering the reversal first)
//  5. Check warehouse inventory
//  6. Obtain a shipment tracking number
//  7. Finalize the record and send the success email
//
// On any failure the compensation ledger unwinds in reverse order, the
// failure is classified, the record is marked failed and an error email
// goes out — then the original failure is returned to the caller.
type PlaceOrder struct {
	notifications activities.NotificationService
	orderRecords  activities.OrderRecordService
	warehouse     activities.WarehouseService
	shipper       activities.ShipperService
	payments      activities.PaymentService
}

// NewPlaceOrder creates a new PlaceOrder use case
func NewPlaceOrder(
	notifications activities.NotificationService,
	orderRecords activities.OrderRecordService,
	warehouse activities.WarehouseService,
	shipper activities.ShipperService,
	payments activities.PaymentService,
) *PlaceOrder {
	return &PlaceOrder{
		notifications: notifications,
		orderRecords:  orderRecords,
		warehouse:     warehouse,
		shipper:       shipper,
		payments:      payments,
	}
}

// Execute runs the order placement saga for one validated request.
func (uc *PlaceOrder) Execute(ctx context.Context, cmd *PlaceOrderCommand) (*PlaceOrderResponse, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, errors.Wrap(err, "invalid command")
	}

	octx := domain.NewOrderContext(cmd.CustomerEmail, cmd.Products, cmd.CreditCard, cmd.RequestedByHost, cmd.RequestedByUser)

	ctx, span := telemetry.StartSpan(ctx, "saga.place_order")
	defer span.End()
	span.SetAttributes(attribute.String("transaction_id", octx.TransactionID.String()))

	started := time.Now()
	comp := saga.NewCompensations()

	octx, err := uc.placeOrder(ctx, comp, octx)
	if err != nil {
		// Cleanup must survive the cancellation that may have caused the
		// failure, so it runs detached from the in-flight context.
		uc.cleanup(context.WithoutCancel(ctx), err, comp, octx)

		telemetry.RecordCounter(ctx, "orders_placed_total", "Order placement attempts", 1,
			attribute.String("outcome", "failed"),
			attribute.String("reason", string(domain.ClassifyFailure(err))),
		)
		return nil, err
	}

	telemetry.RecordCounter(ctx, "orders_placed_total", "Order placement attempts", 1,
		attribute.String("outcome", "completed"),
	)
	telemetry.RecordHistogram(ctx, "order_saga_duration_seconds", "Order saga duration", time.Since(started).Seconds())

	return &PlaceOrderResponse{
		TransactionID:  octx.TransactionID,
		OrderNumber:    octx.OrderNumber,
		OrderTotal:     octx.OrderTotal,
		TrackingNumber: octx.TrackingNumber,
		Status:         octx.Status,
	}, nil
}

// placeOrder runs the forward steps. It returns the most recent context
// alongside any error so cleanup sees everything the saga learned before
// failing.
func (uc *PlaceOrder) placeOrder(ctx context.Context, comp *saga.Compensations, octx domain.OrderContext) (domain.OrderContext, error) {
	// 1. Acknowledge the order request. Not a committing side effect, so
	// no compensation is registered.
	if err := uc.sendOrderReceivedEmail(ctx, octx); err != nil {
		return octx, err
	}

	// 2. Create the initial order record. Its compensation is a status
	// transition performed during failure finalization, not a delete.
	newOrder, err := uc.createOrderRecord(ctx, octx)
	if err != nil {
		return octx, err
	}
	octx = octx.WithOrderNumber(newOrder.OrderNumber)
	if octx, err = uc.advance(octx, domain.TriggerCreateRecord); err != nil {
		return octx, err
	}

	// 3. Compute the order total. Pure, no I/O.
	total, err := octx.TotalPrice()
	if err != nil {
		return octx, err
	}
	octx = octx.WithOrderTotal(total)
	if octx, err = uc.advance(octx, domain.TriggerPrice); err != nil {
		return octx, err
	}

	// 4. Debit the credit card. The reversal is registered before the
	// debit is attempted; the payment service treats reversing an unknown
	// transaction as a no-op.
	if err := uc.debitCreditCard(ctx, comp, octx); err != nil {
		return octx, err
	}
	if octx, err = uc.advance(octx, domain.TriggerDebitPayment); err != nil {
		return octx, err
	}

	// 5. Check inventory. Any failure from here on unwinds the debit.
	// Checking after payment preserves the compensation boundary the
	// sequence was validated against.
	invReq := &activities.CheckInventoryRequest{Products: octx.Products}
	if err := uc.warehouse.CheckInventory(ctx, invReq); err != nil {
		return octx, errors.Wrap(err, "inventory check failed")
	}
	if octx, err = uc.advance(octx, domain.TriggerConfirmInventory); err != nil {
		return octx, err
	}

	// 6. Obtain the shipment tracking number.
	trackReq := &activities.CreateTrackingNumberRequest{Products: octx.Products}
	trackingNumber, err := uc.shipper.CreateTrackingNumber(ctx, trackReq)
	if err != nil {
		return octx, errors.Wrap(err, "failed to create tracking number")
	}
	octx = octx.WithTrackingNumber(trackingNumber)
	if octx, err = uc.advance(octx, domain.TriggerShip); err != nil {
		return octx, err
	}

	// 7. Finalize the record and notify the customer.
	if err := uc.completeOrder(ctx, octx); err != nil {
		return octx, err
	}
	if octx, err = uc.advance(octx, domain.TriggerComplete); err != nil {
		return octx, err
	}

	return octx, nil
}

// advance routes every status change through the order state machine so
// the saga's branching stays a pure function of context and trigger.
func (uc *PlaceOrder) advance(octx domain.OrderContext, trigger domain.StatusTrigger) (domain.OrderContext, error) {
	next, err := domain.NextStatus(octx.Status, trigger)
	if err != nil {
		return octx, err
	}
	return octx.WithStatus(next), nil
}

func (uc *PlaceOrder) sendOrderReceivedEmail(ctx context.Context, octx domain.OrderContext) error {
	req := &activities.OrderReceivedEmailRequest{
		TransactionID: octx.TransactionID,
		CustomerEmail: octx.CustomerEmail,
		OrderDate:     octx.RequestDate,
		Products:      octx.Products,
	}

	if err := uc.notifications.SendOrderReceivedEmail(ctx, req); err != nil {
		return errors.Wrap(err, "failed to send order received email")
	}
	return nil
}

func (uc *PlaceOrder) createOrderRecord(ctx context.Context, octx domain.OrderContext) (*activities.CreateOrderResponse, error) {
	log.Printf("generating new order record for transaction %s", octx.TransactionID)

	req := &activities.CreateOrderRequest{
		CustomerEmail:   octx.CustomerEmail,
		OrderDate:       octx.RequestDate,
		TransactionID:   octx.TransactionID,
		RequestedByHost: octx.RequestedByHost,
		RequestedByUser: octx.RequestedByUser,
		Products:        octx.Products,
	}

	resp, err := uc.orderRecords.CreateOrder(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create order record")
	}
	return resp, nil
}

func (uc *PlaceOrder) debitCreditCard(ctx context.Context, comp *saga.Compensations, octx domain.OrderContext) error {
	reverseReq := &activities.ReversePaymentTransactionsRequest{
		TransactionID:   octx.TransactionID,
		RequestedByHost: octx.RequestedByHost,
		RequestedByUser: octx.RequestedByUser,
	}

	comp.Add("reverse-payment-transactions", func(ctx context.Context) error {
		return uc.payments.ReversePaymentTransactions(ctx, reverseReq)
	})

	debitReq := &activities.DebitCreditCardRequest{
		TransactionID:   octx.TransactionID,
		Amount:          octx.OrderTotal,
		CreditCard:      octx.CreditCard,
		CustomerEmail:   octx.CustomerEmail,
		RequestedByHost: octx.RequestedByHost,
		RequestedByUser: octx.RequestedByUser,
	}

	if _, err := uc.payments.DebitCreditCard(ctx, debitReq); err != nil {
		return errors.Wrap(err, "failed to debit credit card")
	}
	return nil
}

func (uc *PlaceOrder) completeOrder(ctx context.Context, octx domain.OrderContext) error {
	log.Printf("marking order %s as complete for transaction %s", octx.OrderNumber, octx.TransactionID)

	completeReq := &activities.MarkOrderCompleteRequest{
		OrderNumber:    octx.OrderNumber,
		TransactionID:  octx.TransactionID,
		Products:       octx.Products,
		OrderDate:      octx.RequestDate,
		CustomerEmail:  octx.CustomerEmail,
		OrderTotal:     octx.OrderTotal,
		TrackingNumber: octx.TrackingNumber,
	}

	if err := uc.orderRecords.MarkOrderAsComplete(ctx, completeReq); err != nil {
		return errors.Wrap(err, "failed to mark order as complete")
	}

	emailReq := &activities.OrderSuccessEmailRequest{
		TransactionID:  octx.TransactionID,
		OrderNumber:    octx.OrderNumber,
		CustomerEmail:  octx.CustomerEmail,
		OrderDate:      octx.RequestDate,
		Products:       octx.Products,
		TrackingNumber: octx.TrackingNumber,
		OrderTotal:     octx.OrderTotal,
	}

	if err := uc.notifications.SendOrderSuccessEmail(ctx, emailReq); err != nil {
		return errors.Wrap(err, "failed to send order success email")
	}
	return nil
}

// cleanup is the single catch point: it unwinds the compensation ledger
// and, unless the failure is a cancellation, finalizes the order as
// failed. Compensation failures are logged, never re-raised.
func (uc *PlaceOrder) cleanup(ctx context.Context, trigger error, comp *saga.Compensations, octx domain.OrderContext) {
	log.Printf("performing cleanup operations for transaction %s: %v", octx.TransactionID, trigger)

	if err := comp.Compensate(ctx); err != nil {
		log.Printf("failed to complete compensations for transaction %s: %v", octx.TransactionID, err)
	}

	telemetry.RecordCounter(ctx, "order_saga_compensations_total", "Saga compensation unwinds", 1)

	// A cancelled placement is not a business failure: the record keeps
	// the status of its last completed step and no error email goes out.
	if domain.IsCancellation(trigger) {
		log.Printf("placement cancelled for transaction %s, skipping failure finalization", octx.TransactionID)
		return
	}

	uc.failOrder(ctx, trigger, octx)

	log.Printf("finished cleanup operations for transaction %s", octx.TransactionID)
}

func (uc *PlaceOrder) failOrder(ctx context.Context, trigger error, octx domain.OrderContext) {
	reason := domain.ClassifyFailure(trigger)

	log.Printf("marking order as failed for transaction %s with reason %s", octx.TransactionID, reason)

	failReq := &activities.MarkOrderFailedRequest{
		OrderNumber:   octx.OrderNumber,
		TransactionID: octx.TransactionID,
		Reason:        reason,
	}
	if err := uc.orderRecords.MarkOrderAsFailed(ctx, failReq); err != nil {
		log.Printf("failed to mark order as failed for transaction %s: %v", octx.TransactionID, err)
	}

	emailReq := &activities.OrderErrorEmailRequest{
		TransactionID: octx.TransactionID,
		OrderNumber:   octx.OrderNumber,
		CustomerEmail: octx.CustomerEmail,
		OrderDate:     octx.RequestDate,
	}
	if err := uc.notifications.SendOrderErrorEmail(ctx, emailReq); err != nil {
		log.Printf("failed to send order error email for transaction %s: %v", octx.TransactionID, err)
	}
}

// validateCommand validates the place order command
func (uc *PlaceOrder) validateCommand(cmd *PlaceOrderCommand) error {
	if cmd == nil {
		return errors.New("command is required")
	}

	if cmd.CustomerEmail == "" {
		return errors.New("customer email is required")
	}

	if len(cmd.Products) == 0 {
		return errors.New("at least one product is required")
	}

	for _, product := range cmd.Products {
		if product.SKU == "" {
			return errors.New("product SKU is required")
		}
		if product.Quantity <= 0 {
			return errors.Errorf("product %s quantity must be positive", product.SKU)
		}
		if product.UnitPrice.Amount < 0 {
			return errors.Errorf("product %s unit price cannot be negative", product.SKU)
		}
		if product.UnitPrice.Currency == "" {
			return errors.Errorf("product %s currency is required", product.SKU)
		}
	}

	if cmd.CreditCard.Number == "" {
		return errors.New("credit card number is required")
	}

	return nil
}
