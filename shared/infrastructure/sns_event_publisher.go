package infrastructure

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/petstore/order-system/shared/events"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var _ events.Publisher = (*SNSEventPublisher)(nil)

const maxBatchSize = 10

type snsMessage struct {
	ID        string          `json:"id"`
	Metadata  events.Metadata `json:"metadata"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// SNSEventPublisher implements events.Publisher using AWS SNS
type SNSEventPublisher struct {
	client   *sns.Client
	topicArn string
}

// NewSNSEventPublisher creates a new SNSEventPublisher
func NewSNSEventPublisher(client *sns.Client, topicArn string) *SNSEventPublisher {
	return &SNSEventPublisher{
		client:   client,
		topicArn: topicArn,
	}
}

// Publish publishes events to SNS in batches of at most ten, the SNS
// publish-batch limit.
func (p *SNSEventPublisher) Publish(ctx context.Context, evts ...*events.Event) error {
	if len(evts) == 0 {
		return nil
	}

	gr, ctx := errgroup.WithContext(ctx)

	for start := 0; start < len(evts); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(evts) {
			end = len(evts)
		}
		batch := evts[start:end]

		gr.Go(func() error {
			return p.publishBatch(ctx, batch)
		})
	}

	return gr.Wait()
}

func (p *SNSEventPublisher) publishBatch(ctx context.Context, batch []*events.Event) error {
	entries := make([]types.PublishBatchRequestEntry, len(batch))

	for i, event := range batch {
		payload, err := event.MarshalPayload()
		if err != nil {
			return errors.Wrap(err, "failed to marshal payload")
		}

		message := &snsMessage{
			ID:        event.ID.String(),
			Metadata:  event.Metadata,
			EventType: event.EventType,
			Payload:   payload,
			Timestamp: event.Timestamp,
		}

		body, err := json.Marshal(message)
		if err != nil {
			return errors.Wrap(err, "failed to marshal message")
		}

		entries[i] = types.PublishBatchRequestEntry{
			Id:      aws.String(event.ID.String()),
			Message: aws.String(string(body)),
			MessageAttributes: map[string]types.MessageAttributeValue{
				"event_type": {
					DataType:    aws.String("String"),
					StringValue: aws.String(event.EventType),
				},
			},
		}
	}

	_, err := p.client.PublishBatch(ctx, &sns.PublishBatchInput{
		TopicArn:                   aws.String(p.topicArn),
		PublishBatchRequestEntries: entries,
	})
	if err != nil {
		return errors.Wrap(err, "failed to publish batch to SNS")
	}
	return nil
}
