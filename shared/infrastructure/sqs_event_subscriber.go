package infrastructure

import (
	"context"
	"encoding/json"
	"log"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/petstore/order-system/shared/events"
	"github.com/pkg/errors"
)

const (
	SQSMessageIDKey     = "sqs_message_id"
	SQSReceiptHandleKey = "sqs_receipt_handle"
)

type sqsMessage struct {
	Message types.Message
	Event   *events.Event
	Err     error
}

// SQSEventSubscriber drains an SQS queue and dispatches each message to a
// single handler. Readers pull batches, workers handle, cleaners ack
// successes and leave failures to redeliver after their visibility
// timeout expires.
type SQSEventSubscriber struct {
	client   *sqs.Client
	queueURL string
	handler  events.EventHandler

	inbound  chan *sqsMessage
	outbound chan *sqsMessage
	cancel   context.CancelFunc
	running  atomic.Bool
	options  sqsSubscriberOptions
}

type sqsSubscriberOptions struct {
	workers                    int
	readers                    int
	cleaners                   int
	maxNumberOfMessages        int32
	waitTimeSeconds            int32
	visibilityTimeout          int32
	sleepTimeAfterEmptyReceive time.Duration
	sleepTimeAfterError        time.Duration
}

// SQSSubscriberOption customizes subscriber behaviour
type SQSSubscriberOption func(*sqsSubscriberOptions)

// WithWorkers sets the number of concurrent handler goroutines
func WithWorkers(workers int) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.workers = workers
	}
}

// WithVisibilityTimeout sets the per-message visibility timeout in seconds
func WithVisibilityTimeout(timeout int32) SQSSubscriberOption {
	return func(o *sqsSubscriberOptions) {
		o.visibilityTimeout = timeout
	}
}

// NewSQSEventSubscriber creates a new SQS event subscriber
func NewSQSEventSubscriber(client *sqs.Client, queueURL string, handler events.EventHandler, opts ...SQSSubscriberOption) *SQSEventSubscriber {
	options := sqsSubscriberOptions{
		workers:                    10,
		readers:                    1,
		cleaners:                   2,
		maxNumberOfMessages:        5,
		waitTimeSeconds:            15,
		visibilityTimeout:          60,
		sleepTimeAfterEmptyReceive: 5 * time.Second,
		sleepTimeAfterError:        20 * time.Second,
	}

	for _, opt := range opts {
		opt(&options)
	}

	return &SQSEventSubscriber{
		client:   client,
		queueURL: queueURL,
		handler:  handler,
		inbound:  make(chan *sqsMessage, 10),
		outbound: make(chan *sqsMessage, 10),
		options:  options,
	}
}

// Start launches the reader, worker and cleaner goroutines.
func (s *SQSEventSubscriber) Start(ctx context.Context) error {
	if s.running.Swap(true) {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for i := 0; i < s.options.workers; i++ {
		go s.runWorker(ctx)
	}
	for i := 0; i < s.options.readers; i++ {
		go s.runReader(ctx)
	}
	for i := 0; i < s.options.cleaners; i++ {
		go s.runCleaner(ctx)
	}

	return nil
}

// Stop stops all subscriber goroutines.
func (s *SQSEventSubscriber) Stop(ctx context.Context) error {
	if !s.running.Swap(false) {
		return nil
	}
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

func (s *SQSEventSubscriber) runReader(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			if err := s.read(ctx); err != nil {
				log.Printf("sqs reader error: %v", err)
				time.Sleep(s.options.sleepTimeAfterError)
			}
		}
	}
}

func (s *SQSEventSubscriber) runWorker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case message := <-s.inbound:
			if message == nil {
				continue
			}
			message.Err = s.handler.Handle(ctx, message.Event)

			select {
			case s.outbound <- message:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (s *SQSEventSubscriber) runCleaner(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case message := <-s.outbound:
			if message == nil {
				continue
			}
			if err := s.clean(ctx, message); err != nil {
				log.Printf("sqs cleaner error: %v", err)
			}
		}
	}
}

func (s *SQSEventSubscriber) read(ctx context.Context) error {
	output, err := s.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:              aws.String(s.queueURL),
		MaxNumberOfMessages:   s.options.maxNumberOfMessages,
		WaitTimeSeconds:       s.options.waitTimeSeconds,
		VisibilityTimeout:     s.options.visibilityTimeout,
		MessageAttributeNames: []string{"All"},
	})
	if err != nil {
		return errors.Wrap(err, "failed to receive messages from SQS")
	}

	if len(output.Messages) == 0 {
		time.Sleep(s.options.sleepTimeAfterEmptyReceive)
		return nil
	}

	for _, message := range output.Messages {
		event, err := decodeSQSMessage(message)
		if err != nil {
			log.Printf("skipping malformed sqs message %s: %v", aws.ToString(message.MessageId), err)
			continue
		}

		select {
		case s.inbound <- &sqsMessage{Message: message, Event: event}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

// clean acks handled messages. A failed message is left alone so SQS
// redelivers it once its visibility timeout lapses.
func (s *SQSEventSubscriber) clean(ctx context.Context, message *sqsMessage) error {
	if message.Err != nil {
		return nil
	}

	_, err := s.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(s.queueURL),
		ReceiptHandle: message.Message.ReceiptHandle,
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete message from SQS")
	}
	return nil
}

// decodeSQSMessage handles both raw events and the SNS envelope a
// topic-subscribed queue receives. Inside the envelope the message is
// either a full event or the compact shape SNSEventPublisher emits.
func decodeSQSMessage(message types.Message) (*events.Event, error) {
	body := []byte(aws.ToString(message.Body))

	var envelope struct {
		Message string `json:"Message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		body = []byte(envelope.Message)
	}

	event, err := events.FromJSON(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode event")
	}
	if event.Data == nil {
		var compact snsMessage
		if err := json.Unmarshal(body, &compact); err == nil && len(compact.Payload) > 0 {
			event.Data = compact.Payload
			if event.Metadata == nil {
				event.Metadata = compact.Metadata
			}
		}
	}

	if event.Metadata == nil {
		event.Metadata = make(events.Metadata)
	}
	event.Metadata.Set(SQSMessageIDKey, aws.ToString(message.MessageId))
	if message.ReceiptHandle != nil {
		event.Metadata.Set(SQSReceiptHandleKey, aws.ToString(message.ReceiptHandle))
	}

	return event, nil
}
