package eventbridge

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"zookeepr/domain/core/entities"
	"zookeepr/domain/core/valueobjects"
	"zookeepr/domain/events"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockEventBridge is a mock implementation of API
type MockEventBridge struct {
	mock.Mock
}

func (m *MockEventBridge) PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*eventbridge.PutEventsOutput), args.Error(1)
}

func animalCreated() events.AnimalCreated {
	animal := entities.NewAnimal(valueobjects.NewAnimalIDFromIndex(3), "Rex", "dog", "carnivore", []string{"loyal"})
	return events.NewAnimalCreated(animal, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
}

func TestEventBridgePublisher_Publish(t *testing.T) {
	// Arrange
	client := new(MockEventBridge)
	var sent *eventbridge.PutEventsInput
	client.On("PutEvents", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*eventbridge.PutEventsInput) }).
		Return(&eventbridge.PutEventsOutput{}, nil)
	publisher := NewEventBridgePublisher(client, "zoo-bus", zap.NewNop())

	// Act
	err := publisher.Publish(context.Background(), animalCreated())

	// Assert
	require.NoError(t, err)
	require.NotNil(t, sent)
	require.Len(t, sent.Entries, 1)
	entry := sent.Entries[0]
	assert.Equal(t, "zoo-bus", aws.ToString(entry.EventBusName))
	assert.Equal(t, events.SourceCatalog, aws.ToString(entry.Source))
	assert.Equal(t, events.TypeAnimalCreated, aws.ToString(entry.DetailType))

	var detail struct {
		AggregateID string          `json:"aggregate_id"`
		Animal      entities.Animal `json:"animal"`
	}
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(entry.Detail)), &detail))
	assert.Equal(t, "3", detail.AggregateID)
	assert.Equal(t, "Rex", detail.Animal.Name)
}

func TestEventBridgePublisher_Failures(t *testing.T) {
	t.Run("client error", func(t *testing.T) {
		client := new(MockEventBridge)
		client.On("PutEvents", mock.Anything, mock.Anything).Return(nil, errors.New("no route"))
		publisher := NewEventBridgePublisher(client, "zoo-bus", zap.NewNop())

		assert.ErrorContains(t, publisher.Publish(context.Background(), animalCreated()), "no route")
	})

	t.Run("rejected entry", func(t *testing.T) {
		client := new(MockEventBridge)
		client.On("PutEvents", mock.Anything, mock.Anything).Return(&eventbridge.PutEventsOutput{
			FailedEntryCount: 1,
			Entries: []types.PutEventsResultEntry{
				{ErrorCode: aws.String("InternalFailure"), ErrorMessage: aws.String("try again")},
			},
		}, nil)
		publisher := NewEventBridgePublisher(client, "zoo-bus", zap.NewNop())

		assert.ErrorContains(t, publisher.Publish(context.Background(), animalCreated()), "1 events failed")
	})
}
