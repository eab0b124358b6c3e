// Package s3 keeps the catalog document as one object in an S3-compatible
// bucket (AWS S3 or MinIO).
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"zookeepr/domain/core/entities"
	"zookeepr/infrastructure/persistence/snapshot"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"
)

// DefaultKey is used when no object key is configured
const DefaultKey = "zookeepr/animals.json"

// API is the subset of the S3 client the store uses
type API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Store reads and overwrites a single object
type Store struct {
	client API
	bucket string
	key    string
	logger *zap.Logger
}

// New creates a store writing to bucket/key
func New(client API, bucket, key string, logger *zap.Logger) (*Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	if key == "" {
		key = DefaultKey
	}
	return &Store{client: client, bucket: bucket, key: key, logger: logger}, nil
}

// NewClient builds an S3 client, pointing it at endpoint with path-style
// addressing when one is given.
func NewClient(cfg aws.Config, endpoint string) *s3.Client {
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}

func (s *Store) Driver() string { return snapshot.DriverS3 }

func (s *Store) Load(ctx context.Context) ([]entities.Animal, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var missing *types.NoSuchKey
		if errors.As(err, &missing) {
			s.logger.Info("No catalog object stored yet",
				zap.String("bucket", s.bucket),
				zap.String("key", s.key),
			)
			return []entities.Animal{}, nil
		}
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", s.bucket, s.key, err)
	}
	return snapshot.Decode(data)
}

func (s *Store) Save(ctx context.Context, animals []entities.Animal) error {
	payload, err := snapshot.Encode(animals)
	if err != nil {
		return err
	}

	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return fmt.Errorf("failed to put s3://%s/%s: %w", s.bucket, s.key, err)
	}
	return nil
}
