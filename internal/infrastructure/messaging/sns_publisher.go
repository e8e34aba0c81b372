package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"payler_gateway/internal/domain/entities"
	"payler_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"go.uber.org/zap"
)

// SNSAPI is the part of the SNS client the publisher uses.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSEventPublisher sends payment events as JSON to one topic. The event type
// travels as a message attribute so subscribers can filter on it.
type SNSEventPublisher struct {
	client   SNSAPI
	topicArn string
	log      *zap.Logger
}

var _ interfaces.IEventPublisher = (*SNSEventPublisher)(nil)

func NewSNSEventPublisher(cfg aws.Config, topicArn string, log *zap.Logger) *SNSEventPublisher {
	return NewSNSEventPublisherWithClient(sns.NewFromConfig(cfg), topicArn, log)
}

func NewSNSEventPublisherWithClient(client SNSAPI, topicArn string, log *zap.Logger) *SNSEventPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &SNSEventPublisher{client: client, topicArn: topicArn, log: log}
}

func (p *SNSEventPublisher) PublishPaymentEvent(ctx context.Context, event entities.PaymentEvent) error {
	if p.topicArn == "" {
		return fmt.Errorf("empty topicArn")
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.log.Debug("sns publish", zap.String("topic_arn", p.topicArn), zap.Int("message_len", len(body)), zap.String("order_id", event.OrderID))
	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicArn),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"event_type": {DataType: aws.String("String"), StringValue: aws.String(event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("sns publish failed for topic %s: %w", p.topicArn, err)
	}
	return nil
}
