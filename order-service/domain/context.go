package domain

import (
	"time"

	"github.com/petstore/order-system/shared/models"
	"github.com/pkg/errors"
)

// Product is a single order line.
type Product struct {
	SKU       string       `json:"sku"`
	Quantity  int64        `json:"quantity"`
	UnitPrice models.Money `json:"unit_price"`
}

// LineTotal returns quantity times unit price.
func (p Product) LineTotal() models.Money {
	return p.UnitPrice.Multiply(p.Quantity)
}

// CreditCard is the payment credential supplied with the order request.
// It is forwarded to the payment service as-is and must never be logged;
// String masks everything but the last four digits.
type CreditCard struct {
	HolderName string `json:"holder_name"`
	Number     string `json:"number"`
	Expiration string `json:"expiration"` // MM/YY
	CVV        string `json:"cvv"`
}

func (c CreditCard) String() string {
	last4 := c.Number
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}
	return "CreditCard(****" + last4 + ")"
}

// OrderContext is the record threaded through every saga step. It is a
// value type: steps that learn something new return a copy with the new
// field overlaid instead of mutating in place. Fields are appended
// monotonically — OrderNumber, OrderTotal and TrackingNumber are each
// set at most once and never cleared; a failed run simply discards its
// context.
type OrderContext struct {
	TransactionID   models.ID
	CustomerEmail   string
	RequestDate     time.Time
	RequestedByHost string
	RequestedByUser string
	Products        []Product
	CreditCard      CreditCard
	OrderNumber     string
	OrderTotal      models.Money
	TrackingNumber  string
	Status          OrderStatus
}

// NewOrderContext assigns the transaction ID and request date and captures
// the provenance of the request. The transaction ID correlates every
// downstream call and compensation for this placement attempt.
func NewOrderContext(customerEmail string, products []Product, card CreditCard, requestedByHost, requestedByUser string) OrderContext {
	return OrderContext{
		TransactionID:   models.GenerateUUID(),
		CustomerEmail:   customerEmail,
		RequestDate:     time.Now(),
		RequestedByHost: requestedByHost,
		RequestedByUser: requestedByUser,
		Products:        products,
		CreditCard:      card,
		Status:          OrderStatusReceived,
	}
}

// WithOrderNumber returns a copy with the order number overlaid.
func (c OrderContext) WithOrderNumber(orderNumber string) OrderContext {
	c.OrderNumber = orderNumber
	return c
}

// WithOrderTotal returns a copy with the computed total overlaid.
func (c OrderContext) WithOrderTotal(total models.Money) OrderContext {
	c.OrderTotal = total
	return c
}

// WithTrackingNumber returns a copy with the tracking number overlaid.
func (c OrderContext) WithTrackingNumber(trackingNumber string) OrderContext {
	c.TrackingNumber = trackingNumber
	return c
}

// WithStatus returns a copy with the status overlaid.
func (c OrderContext) WithStatus(status OrderStatus) OrderContext {
	c.Status = status
	return c
}

// TotalPrice sums the line totals of every product. All products must
// share one currency.
func (c OrderContext) TotalPrice() (models.Money, error) {
	if len(c.Products) == 0 {
		return models.Money{}, errors.New("order has no products")
	}

	total := models.NewMoney(0, c.Products[0].UnitPrice.Currency)
	for _, product := range c.Products {
		var err error
		total, err = total.Add(product.LineTotal())
		if err != nil {
			return models.Money{}, errors.Wrapf(err, "product %s", product.SKU)
		}
	}
	return total, nil
}
