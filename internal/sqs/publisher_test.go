package sqs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSQSClient struct {
	lastInput *sqs.SendMessageInput
	err       error
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.lastInput = params
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{}, nil
}

func TestPublishProductMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes product change", func(t *testing.T) {
		client := &fakeSQSClient{}
		publisher := &Publisher{client: client, queueURL: "http://localhost:4566/queue/products"}

		msg := ProductMessage{
			Action:    ActionCreated,
			ProductID: 42,
			Name:      "Pen",
			Price:     1.50,
		}
		require.NoError(t, publisher.PublishProductMessage(ctx, msg))

		require.NotNil(t, client.lastInput)
		assert.Equal(t, "http://localhost:4566/queue/products", *client.lastInput.QueueUrl)

		var sent ProductMessage
		require.NoError(t, json.Unmarshal([]byte(*client.lastInput.MessageBody), &sent))
		assert.Equal(t, msg, sent)
	})

	t.Run("propagates client error", func(t *testing.T) {
		client := &fakeSQSClient{err: errors.New("queue unavailable")}
		publisher := &Publisher{client: client, queueURL: "url"}

		err := publisher.PublishProductMessage(ctx, ProductMessage{Action: ActionDeleted, ProductID: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send message to SQS")
	})
}
