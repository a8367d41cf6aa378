package infrastructure

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/petstore/order-system/order-service/domain"
	"github.com/petstore/order-system/shared/events"
	"github.com/petstore/order-system/shared/models"
	"github.com/pkg/errors"
)

// PostgresOrderRepository implements domain.OrderRepository using PostgreSQL
type PostgresOrderRepository struct {
	db *sqlx.DB
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository
func NewPostgresOrderRepository(db *sqlx.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// postgresOrder represents an order record in the database
type postgresOrder struct {
	ID              string     `db:"id"`
	OrderNumber     string     `db:"order_number"`
	TransactionID   string     `db:"transaction_id"`
	CustomerEmail   string     `db:"customer_email"`
	OrderDate       time.Time  `db:"order_date"`
	RequestedByHost string     `db:"requested_by_host"`
	RequestedByUser string     `db:"requested_by_user"`
	Products        []byte     `db:"products"`
	TotalAmount     int64      `db:"total_amount"`
	TotalCurrency   string     `db:"total_currency"`
	TrackingNumber  string     `db:"tracking_number"`
	Status          string     `db:"status"`
	FailureReason   string     `db:"failure_reason"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
	Version         int        `db:"version"`
}

// Save persists an order. Recorded events decide whether this is the
// initial insert or a lifecycle update.
func (r *PostgresOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	for _, event := range order.Events() {
		switch event.EventType {
		case events.OrderReceivedEvent:
			return r.insertOrder(ctx, order)
		case events.OrderCompletedEvent, events.OrderFailedEvent:
			return r.updateOrder(ctx, order)
		}
	}
	return nil
}

func (r *PostgresOrderRepository) insertOrder(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (
			id, order_number, transaction_id, customer_email, order_date,
			requested_by_host, requested_by_user, products,
			total_amount, total_currency, tracking_number, status,
			failure_reason, created_at, updated_at, version
		) VALUES (
			:id, :order_number, :transaction_id, :customer_email, :order_date,
			:requested_by_host, :requested_by_user, :products,
			:total_amount, :total_currency, :tracking_number, :status,
			:failure_reason, :created_at, :updated_at, :version
		)`

	pgOrder, err := r.toPostgres(order)
	if err != nil {
		return err
	}

	if _, err := r.db.NamedExecContext(ctx, query, pgOrder); err != nil {
		return errors.Wrap(err, "failed to insert order")
	}
	return nil
}

func (r *PostgresOrderRepository) updateOrder(ctx context.Context, order *domain.Order) error {
	query := `
		UPDATE orders
		SET status = :status, total_amount = :total_amount,
			total_currency = :total_currency, tracking_number = :tracking_number,
			failure_reason = :failure_reason, updated_at = :updated_at,
			version = :version
		WHERE id = :id AND version = :old_version`

	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":              order.ID.String(),
		"status":          string(order.Status),
		"total_amount":    order.OrderTotal.Amount,
		"total_currency":  order.OrderTotal.Currency,
		"tracking_number": order.TrackingNumber,
		"failure_reason":  string(order.FailureReason),
		"updated_at":      order.Timestamps.UpdatedAt,
		"version":         order.Version.Value,
		"old_version":     order.Version.Value - 1, // Optimistic locking
	})
	if err != nil {
		return errors.Wrap(err, "failed to update order")
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return errors.Errorf("order %s was modified concurrently", order.OrderNumber)
	}
	return nil
}

// FindByNumber finds an order by its customer-facing order number
func (r *PostgresOrderRepository) FindByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	var pgOrder postgresOrder
	query := `SELECT * FROM orders WHERE order_number = $1 AND deleted_at IS NULL`

	if err := r.db.GetContext(ctx, &pgOrder, query, orderNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find order by number")
	}

	return r.toDomain(&pgOrder)
}

// FindByTransactionID finds an order by its saga transaction ID
func (r *PostgresOrderRepository) FindByTransactionID(ctx context.Context, transactionID models.ID) (*domain.Order, error) {
	var pgOrder postgresOrder
	query := `SELECT * FROM orders WHERE transaction_id = $1 AND deleted_at IS NULL`

	if err := r.db.GetContext(ctx, &pgOrder, query, transactionID.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find order by transaction id")
	}

	return r.toDomain(&pgOrder)
}

func (r *PostgresOrderRepository) toPostgres(order *domain.Order) (*postgresOrder, error) {
	products, err := json.Marshal(order.Products)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal products")
	}

	return &postgresOrder{
		ID:              order.ID.String(),
		OrderNumber:     order.OrderNumber,
		TransactionID:   order.TransactionID.String(),
		CustomerEmail:   order.CustomerEmail,
		OrderDate:       order.OrderDate,
		RequestedByHost: order.RequestedByHost,
		RequestedByUser: order.RequestedByUser,
		Products:        products,
		TotalAmount:     order.OrderTotal.Amount,
		TotalCurrency:   order.OrderTotal.Currency,
		TrackingNumber:  order.TrackingNumber,
		Status:          string(order.Status),
		FailureReason:   string(order.FailureReason),
		CreatedAt:       order.Timestamps.CreatedAt,
		UpdatedAt:       order.Timestamps.UpdatedAt,
		DeletedAt:       order.Timestamps.DeletedAt,
		Version:         order.Version.Value,
	}, nil
}

func (r *PostgresOrderRepository) toDomain(pgOrder *postgresOrder) (*domain.Order, error) {
	var products []domain.Product
	if len(pgOrder.Products) > 0 {
		if err := json.Unmarshal(pgOrder.Products, &products); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal products")
		}
	}

	return &domain.Order{
		ID:              models.ID(pgOrder.ID),
		OrderNumber:     pgOrder.OrderNumber,
		TransactionID:   models.ID(pgOrder.TransactionID),
		CustomerEmail:   pgOrder.CustomerEmail,
		OrderDate:       pgOrder.OrderDate,
		RequestedByHost: pgOrder.RequestedByHost,
		RequestedByUser: pgOrder.RequestedByUser,
		Products:        products,
		OrderTotal:      models.NewMoney(pgOrder.TotalAmount, pgOrder.TotalCurrency),
		TrackingNumber:  pgOrder.TrackingNumber,
		Status:          domain.OrderStatus(pgOrder.Status),
		FailureReason:   domain.FailureReason(pgOrder.FailureReason),
		Timestamps: models.Timestamps{
			CreatedAt: pgOrder.CreatedAt,
			UpdatedAt: pgOrder.UpdatedAt,
			DeletedAt: pgOrder.DeletedAt,
		},
		Version: models.Version{Value: pgOrder.Version},
	}, nil
}
