package publishers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/TodayWantLook/Crawler/internal/domain"
)

type fakeSQSClient struct {
	input *sqs.SendMessageInput
	err   error
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-123")}, nil
}

func TestSQSPublisherSendsEventWithAttributes(t *testing.T) {
	client := &fakeSQSClient{}
	pub := &sqsPublisher{
		id:       "queue-1",
		typ:      TypeSQS,
		queueURL: "https://sqs/queue-1",
		client:   client,
		log:      noopLogger{},
	}

	evt := NewEvent("kakao", "inserted", domain.Media{Title: "Alpha", WebtoonID: "k-1"})
	if err := pub.Publish(context.Background(), evt); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if client.input == nil {
		t.Fatalf("client was not called")
	}
	if got := aws.ToString(client.input.QueueUrl); got != "https://sqs/queue-1" {
		t.Fatalf("QueueUrl = %s", got)
	}

	attr, ok := client.input.MessageAttributes["action"]
	if !ok || aws.ToString(attr.StringValue) != ActionInserted {
		t.Fatalf("action attribute missing or wrong: %#v", attr)
	}
	if !strings.Contains(aws.ToString(client.input.MessageBody), `"webtoonId":"k-1"`) {
		t.Fatalf("body missing document: %s", aws.ToString(client.input.MessageBody))
	}
}

func TestSQSPublisherSendError(t *testing.T) {
	pub := &sqsPublisher{
		id:       "queue-1",
		typ:      TypeSQS,
		queueURL: "https://sqs/queue-1",
		client:   &fakeSQSClient{err: errors.New("boom")},
		log:      noopLogger{},
	}
	if err := pub.Publish(context.Background(), Event{}); err == nil {
		t.Fatalf("expected error from Publish")
	}
}
