package config

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/petstore/order-system/order-service/application"
	"github.com/petstore/order-system/order-service/handlers"
	"github.com/petstore/order-system/order-service/infrastructure"
	sharedinfra "github.com/petstore/order-system/shared/infrastructure"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	OrderRepository *infrastructure.PostgresOrderRepository
	EventStore      *sharedinfra.PostgresEventStore

	// Activity implementations
	OrderRecords  *infrastructure.OrderRecordStore
	Notifications *infrastructure.SNSNotificationService
	Payments      *infrastructure.PaymentHTTPClient
	Warehouse     *infrastructure.WarehouseHTTPClient
	Shipper       *infrastructure.ShipperHTTPClient

	// Use Cases
	PlaceOrder *application.PlaceOrder
	GetOrder   *application.GetOrder

	// Handlers
	OrderHandlers      *handlers.OrderHandlers
	OrderEventHandlers *handlers.OrderEventHandlers

	// Infrastructure
	NotificationPublisher *sharedinfra.SNSPublisherAdapter
	OrderEventPublisher   *sharedinfra.SNSPublisherAdapter
	OrderRequestsConsumer *sharedinfra.SQSSubscriberAdapter
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	// Initialize database
	db, err := sqlx.Connect("postgres", config.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	deps.DB = db

	// Initialize AWS infrastructure
	notificationPublisher, err := sharedinfra.NewSNSPublisherAdapter(ctx, config.AWS.NotificationsTopic)
	if err != nil {
		return nil, fmt.Errorf("failed to create notifications publisher: %w", err)
	}
	deps.NotificationPublisher = notificationPublisher

	orderEventPublisher, err := sharedinfra.NewSNSPublisherAdapter(ctx, config.AWS.OrderEventsTopic)
	if err != nil {
		return nil, fmt.Errorf("failed to create order events publisher: %w", err)
	}
	deps.OrderEventPublisher = orderEventPublisher

	orderRequestsConsumer, err := sharedinfra.NewSQSSubscriberAdapter(config.AWS.OrderRequestsQueue)
	if err != nil {
		return nil, fmt.Errorf("failed to create order requests consumer: %w", err)
	}
	deps.OrderRequestsConsumer = orderRequestsConsumer

	// Initialize repositories
	deps.OrderRepository = infrastructure.NewPostgresOrderRepository(db)
	deps.EventStore = sharedinfra.NewPostgresEventStore(db)

	// Initialize activity implementations
	deps.OrderRecords = infrastructure.NewOrderRecordStore(deps.OrderRepository, deps.EventStore, orderEventPublisher)
	deps.Notifications = infrastructure.NewSNSNotificationService(notificationPublisher)
	deps.Payments = infrastructure.NewPaymentHTTPClient(config.Services.PaymentURL)
	deps.Warehouse = infrastructure.NewWarehouseHTTPClient(config.Services.WarehouseURL)
	deps.Shipper = infrastructure.NewShipperHTTPClient(config.Services.ShipperURL)

	// Initialize use cases
	deps.PlaceOrder = application.NewPlaceOrder(
		deps.Notifications,
		deps.OrderRecords,
		deps.Warehouse,
		deps.Shipper,
		deps.Payments,
	)
	deps.GetOrder = application.NewGetOrder(deps.OrderRepository)

	// Initialize handlers
	deps.OrderHandlers = handlers.NewOrderHandlers(deps.PlaceOrder, deps.GetOrder)
	deps.OrderEventHandlers = handlers.NewOrderEventHandlers(deps.PlaceOrder)

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.OrderRequestsConsumer != nil {
		if err := d.OrderRequestsConsumer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close order requests consumer: %w", err))
		}
	}

	if d.NotificationPublisher != nil {
		if err := d.NotificationPublisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close notifications publisher: %w", err))
		}
	}

	if d.OrderEventPublisher != nil {
		if err := d.OrderEventPublisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close order events publisher: %w", err))
		}
	}

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}
	return nil
}
