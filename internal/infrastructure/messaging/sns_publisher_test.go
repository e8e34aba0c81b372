package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"payler_gateway/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

type fakeSNS struct {
	input *sns.PublishInput
	err   error
}

func (f *fakeSNS) Publish(_ context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("m-1")}, nil
}

func TestSNSEventPublisher_PublishPaymentEvent(t *testing.T) {
	event := entities.PaymentEvent{Type: "payment.status_changed", OrderID: "42", State: "authorized", Status: "processing", Amount: 2500, Currency: "USD", Timestamp: time.Unix(0, 0).UTC()}

	t.Run("publishes json with type attribute", func(t *testing.T) {
		client := &fakeSNS{}
		p := NewSNSEventPublisherWithClient(client, "arn:aws:sns:us-east-1:000000000000:payments", nil)
		if err := p.PublishPaymentEvent(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if aws.ToString(client.input.TopicArn) != "arn:aws:sns:us-east-1:000000000000:payments" {
			t.Fatalf("unexpected topic: %v", aws.ToString(client.input.TopicArn))
		}
		var got entities.PaymentEvent
		if err := json.Unmarshal([]byte(aws.ToString(client.input.Message)), &got); err != nil || got.OrderID != "42" || got.Amount != 2500 {
			t.Fatalf("unexpected message: %s", aws.ToString(client.input.Message))
		}
		if aws.ToString(client.input.MessageAttributes["event_type"].StringValue) != "payment.status_changed" {
			t.Fatalf("missing event_type attribute")
		}
	})

	t.Run("empty topic", func(t *testing.T) {
		p := NewSNSEventPublisherWithClient(&fakeSNS{}, "", nil)
		if err := p.PublishPaymentEvent(context.Background(), event); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("client error", func(t *testing.T) {
		boom := errors.New("throttled")
		p := NewSNSEventPublisherWithClient(&fakeSNS{err: boom}, "arn:topic", nil)
		if err := p.PublishPaymentEvent(context.Background(), event); !errors.Is(err, boom) {
			t.Fatalf("expected wrapped client error, got %v", err)
		}
	})
}
