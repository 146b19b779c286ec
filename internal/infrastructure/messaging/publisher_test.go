package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func sampleEvent() AlertEvent {
	return AlertEvent{
		AlertID:   uuid.New(),
		PatientID: uuid.New(),
		Message:   "fall detected",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestKafkaPublisher_PublishAlert(t *testing.T) {
	writer := &fakeWriter{}
	p := &kafkaPublisher{writer: writer}
	event := sampleEvent()

	require.NoError(t, p.PublishAlert(context.Background(), event))
	require.Len(t, writer.msgs, 1)
	assert.Equal(t, event.PatientID.String(), string(writer.msgs[0].Key))

	var got AlertEvent
	require.NoError(t, json.Unmarshal(writer.msgs[0].Value, &got))
	assert.Equal(t, EventAlertCreated, got.Type)
	assert.Equal(t, event.AlertID, got.AlertID)

	require.NoError(t, p.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := &kafkaPublisher{writer: &fakeWriter{err: errors.New("broker down")}}

	err := p.PublishAlert(context.Background(), sampleEvent())

	assert.ErrorContains(t, err, "broker down")
}

type fakeSQS struct {
	sent []*sqs.SendMessageInput
}

func (f *fakeSQS) GetQueueUrl(_ context.Context, params *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	if aws.ToString(params.QueueName) != "patient-alerts" {
		return nil, errors.New("queue does not exist")
	}
	return &sqs.GetQueueUrlOutput{QueueUrl: aws.String("https://sqs.local/123/patient-alerts")}, nil
}

func (f *fakeSQS) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.sent = append(f.sent, params)
	return &sqs.SendMessageOutput{MessageId: aws.String("1")}, nil
}

func TestSQSPublisher_PublishAlert(t *testing.T) {
	client := &fakeSQS{}
	p, err := NewSQSPublisher(context.Background(), client, "patient-alerts")
	require.NoError(t, err)

	require.NoError(t, p.PublishAlert(context.Background(), sampleEvent()))
	require.Len(t, client.sent, 1)
	assert.Equal(t, "https://sqs.local/123/patient-alerts", aws.ToString(client.sent[0].QueueUrl))
	assert.Contains(t, aws.ToString(client.sent[0].MessageBody), `"type":"alert.created"`)
}

func TestSQSPublisher_UnknownQueue(t *testing.T) {
	_, err := NewSQSPublisher(context.Background(), &fakeSQS{}, "nope")

	assert.Error(t, err)
}
