package infrastructure

import (
	"context"

	"github.com/petstore/order-system/order-service/activities"
	"github.com/petstore/order-system/shared/events"
	"github.com/pkg/errors"
)

var _ activities.NotificationService = (*SNSNotificationService)(nil)

// SNSNotificationService implements the Notification capability by
// publishing email commands to the notification topic; the mailer service
// consumes the topic and does the actual delivery.
type SNSNotificationService struct {
	eventPublisher events.Publisher
}

// NewSNSNotificationService creates a new SNSNotificationService
func NewSNSNotificationService(eventPublisher events.Publisher) *SNSNotificationService {
	return &SNSNotificationService{eventPublisher: eventPublisher}
}

// SendOrderReceivedEmail publishes the order acknowledgement email command.
func (s *SNSNotificationService) SendOrderReceivedEmail(ctx context.Context, req *activities.OrderReceivedEmailRequest) error {
	event := events.NewEvent(req.TransactionID, events.OrderReceivedEmailEvent, req)
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish order received email")
	}
	return nil
}

// SendOrderSuccessEmail publishes the order confirmation email command.
func (s *SNSNotificationService) SendOrderSuccessEmail(ctx context.Context, req *activities.OrderSuccessEmailRequest) error {
	event := events.NewEvent(req.TransactionID, events.OrderSuccessEmailEvent, req)
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish order success email")
	}
	return nil
}

// SendOrderErrorEmail publishes the order failure email command.
func (s *SNSNotificationService) SendOrderErrorEmail(ctx context.Context, req *activities.OrderErrorEmailRequest) error {
	event := events.NewEvent(req.TransactionID, events.OrderErrorEmailEvent, req)
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish order error email")
	}
	return nil
}
