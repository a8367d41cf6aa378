package infrastructure

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/petstore/order-system/shared/events"
	"github.com/pkg/errors"
)

// SNSPublisherAdapter wires an SNSEventPublisher from ambient AWS config.
// Works against LocalStack when AWS_ENDPOINT_URL is set.
type SNSPublisherAdapter struct {
	publisher *SNSEventPublisher
}

// NewSNSPublisherAdapter creates a new SNS publisher adapter
func NewSNSPublisherAdapter(ctx context.Context, topicArn string) (*SNSPublisherAdapter, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	return &SNSPublisherAdapter{
		publisher: NewSNSEventPublisher(sns.NewFromConfig(cfg), topicArn),
	}, nil
}

// Publish implements events.Publisher
func (p *SNSPublisherAdapter) Publish(ctx context.Context, evts ...*events.Event) error {
	return p.publisher.Publish(ctx, evts...)
}

// Close closes the publisher
func (p *SNSPublisherAdapter) Close() error {
	return nil
}

// SQSSubscriberAdapter wires an SQSEventSubscriber from ambient AWS config.
type SQSSubscriberAdapter struct {
	subscriber *SQSEventSubscriber
	queueURL   string
}

// NewSQSSubscriberAdapter creates a new SQS subscriber adapter
func NewSQSSubscriberAdapter(queueURL string) (*SQSSubscriberAdapter, error) {
	return &SQSSubscriberAdapter{queueURL: queueURL}, nil
}

// Subscribe implements events.Subscriber. The eventType argument is unused:
// the queue carries every event type and the handler dispatches on it.
func (s *SQSSubscriberAdapter) Subscribe(ctx context.Context, eventType string, handler events.EventHandler) error {
	if s.subscriber != nil {
		return errors.New("subscriber is already running")
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load AWS config")
	}

	s.subscriber = NewSQSEventSubscriber(sqs.NewFromConfig(cfg), s.queueURL, handler)

	if err := s.subscriber.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start SQS subscriber")
	}
	return nil
}

// Close stops the subscriber
func (s *SQSSubscriberAdapter) Close() error {
	if s.subscriber == nil {
		return nil
	}
	if err := s.subscriber.Stop(context.Background()); err != nil {
		return errors.Wrap(err, "failed to stop SQS subscriber")
	}
	s.subscriber = nil
	return nil
}
