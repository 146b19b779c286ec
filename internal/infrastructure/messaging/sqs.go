package messaging

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SQSAPI is the subset of the SQS client used by the publisher.
type SQSAPI interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

type sqsPublisher struct {
	client   SQSAPI
	queueURL string
}

// NewSQSPublisher resolves the queue URL once and publishes to it.
func NewSQSPublisher(ctx context.Context, client SQSAPI, queueName string) (Publisher, error) {
	resp, err := client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(queueName)})
	if err != nil {
		return nil, fmt.Errorf("failed to get SQS queue URL for %s: %w", queueName, err)
	}
	return &sqsPublisher{client: client, queueURL: aws.ToString(resp.QueueUrl)}, nil
}

func (p *sqsPublisher) PublishAlert(ctx context.Context, event AlertEvent) error {
	payload, err := encode(event)
	if err != nil {
		return err
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(payload)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"type": {DataType: aws.String("String"), StringValue: aws.String(EventAlertCreated)},
		},
	})
	if err != nil {
		return fmt.Errorf("send SQS message: %w", err)
	}
	return nil
}

func (p *sqsPublisher) Close() error {
	return nil
}
