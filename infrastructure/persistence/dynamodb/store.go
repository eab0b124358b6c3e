// Package dynamodb keeps the catalog document in a single DynamoDB item.
package dynamodb

import (
	"context"
	"fmt"
	"time"

	"zookeepr/domain/core/entities"
	"zookeepr/infrastructure/persistence/snapshot"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// API is the subset of the DynamoDB client the store uses
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Single-table keys for the snapshot item
const (
	snapshotPK = "CATALOG#animals"
	snapshotSK = "SNAPSHOT"
)

type itemKey struct {
	PK string `dynamodbav:"PK"`
	SK string `dynamodbav:"SK"`
}

// snapshotItem is the stored item; Payload holds the same pretty-printed
// document the file driver writes.
type snapshotItem struct {
	PK        string `dynamodbav:"PK"`
	SK        string `dynamodbav:"SK"`
	Payload   string `dynamodbav:"Payload"`
	Count     int    `dynamodbav:"Count"`
	UpdatedAt string `dynamodbav:"UpdatedAt"`
}

// Store reads and overwrites the snapshot item
type Store struct {
	client    API
	tableName string
	logger    *zap.Logger
}

// New creates a store backed by tableName
func New(client API, tableName string, logger *zap.Logger) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

func (s *Store) Driver() string { return snapshot.DriverDynamoDB }

func (s *Store) key() (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(itemKey{PK: snapshotPK, SK: snapshotSK})
}

func (s *Store) Load(ctx context.Context) ([]entities.Animal, error) {
	key, err := s.key()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal key: %w", err)
	}

	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot item: %w", err)
	}
	if len(result.Item) == 0 {
		s.logger.Info("No catalog snapshot stored yet", zap.String("table", s.tableName))
		return []entities.Animal{}, nil
	}

	var item snapshotItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot item: %w", err)
	}
	return snapshot.Decode([]byte(item.Payload))
}

func (s *Store) Save(ctx context.Context, animals []entities.Animal) error {
	payload, err := snapshot.Encode(animals)
	if err != nil {
		return err
	}

	item, err := attributevalue.MarshalMap(snapshotItem{
		PK:        snapshotPK,
		SK:        snapshotSK,
		Payload:   string(payload),
		Count:     len(animals),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot item: %w", err)
	}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("failed to put snapshot item: %w", err)
	}

	s.logger.Debug("Stored catalog snapshot",
		zap.String("table", s.tableName),
		zap.Int("count", len(animals)),
	)
	return nil
}
