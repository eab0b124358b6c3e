package dynamodb

import (
	"context"
	"errors"
	"testing"

	"zookeepr/domain/core/entities"
	"zookeepr/domain/core/valueobjects"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeDynamoDB keeps a single item the way the table would
type fakeDynamoDB struct {
	item   map[string]types.AttributeValue
	puts   int
	putErr error
	tables []string
}

func (f *fakeDynamoDB) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.tables = append(f.tables, aws.ToString(params.TableName))
	return &dynamodb.GetItemOutput{Item: f.item}, nil
}

func (f *fakeDynamoDB) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.tables = append(f.tables, aws.ToString(params.TableName))
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.item = params.Item
	f.puts++
	return &dynamodb.PutItemOutput{}, nil
}

func TestStore_LoadWithoutItem(t *testing.T) {
	s := New(&fakeDynamoDB{}, "zookeepr", zap.NewNop())

	animals, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, animals)
}

func TestStore_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	fake := &fakeDynamoDB{}
	s := New(fake, "zookeepr", zap.NewNop())
	animals := []entities.Animal{
		entities.NewAnimal(valueobjects.NewAnimalIDFromIndex(0), "Erica", "bear", "omnivore", []string{"playful", "quirky"}),
	}

	require.NoError(t, s.Save(ctx, animals))
	loaded, err := s.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, animals, loaded)
	assert.Equal(t, 1, fake.puts)
	assert.Equal(t, []string{"zookeepr", "zookeepr"}, fake.tables)

	pk, ok := fake.item["PK"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "CATALOG#animals", pk.Value)
}

func TestStore_SaveError(t *testing.T) {
	s := New(&fakeDynamoDB{putErr: errors.New("throttled")}, "zookeepr", zap.NewNop())

	err := s.Save(context.Background(), nil)

	assert.ErrorContains(t, err, "throttled")
}
