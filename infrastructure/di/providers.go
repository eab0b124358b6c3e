package di

import (
	"context"
	"fmt"

	"zookeepr/application/commands"
	"zookeepr/application/commands/bus"
	"zookeepr/application/ports"
	"zookeepr/application/queries"
	querybus "zookeepr/application/queries/bus"
	"zookeepr/infrastructure/config"
	"zookeepr/infrastructure/messaging"
	"zookeepr/infrastructure/messaging/eventbridge"
	"zookeepr/infrastructure/persistence/catalog"
	"zookeepr/infrastructure/persistence/dynamodb"
	"zookeepr/infrastructure/persistence/file"
	"zookeepr/infrastructure/persistence/s3"
	"zookeepr/infrastructure/persistence/snapshot"
	"zookeepr/infrastructure/persistence/sqlite"
	"zookeepr/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

// MetricsNamespace prefixes every exported metric
const MetricsNamespace = "zookeepr"

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if cfg.LogLevel != "" {
		level, err := zap.ParseAtomicLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
		}
		zapCfg.Level = level
	}

	return zapCfg.Build()
}

// ProvideMetrics creates the prometheus collector, or nil when metrics are disabled
func ProvideMetrics(cfg *config.Config) *observability.Collector {
	if !cfg.EnableMetrics {
		return nil
	}
	return observability.NewCollector(MetricsNamespace)
}

// ProvideAWSConfig creates AWS configuration. Nothing is loaded when no
// configured component talks to AWS.
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	if !cfg.NeedsAWS() {
		return aws.Config{}, nil
	}
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideSnapshotStore opens the durable store selected by STORAGE_DRIVER
func ProvideSnapshotStore(
	ctx context.Context,
	cfg *config.Config,
	awsCfg aws.Config,
	metrics *observability.Collector,
	logger *zap.Logger,
) (ports.SnapshotStore, func(), error) {
	var store ports.SnapshotStore
	cleanup := func() {}

	switch cfg.StorageDriver {
	case config.DriverFile:
		fileStore, err := file.New(cfg.DataFile)
		if err != nil {
			return nil, nil, err
		}
		store = fileStore
	case config.DriverSQLite:
		sqliteStore, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		store = sqliteStore
		cleanup = func() {
			if err := sqliteStore.Close(); err != nil {
				logger.Warn("Failed to close sqlite store", zap.Error(err))
			}
		}
	case config.DriverDynamoDB:
		store = dynamodb.New(awsdynamodb.NewFromConfig(awsCfg), cfg.DynamoDBTable, logger)
	case config.DriverS3:
		s3Store, err := s3.New(s3.NewClient(awsCfg, cfg.S3Endpoint), cfg.S3Bucket, cfg.S3Key, logger)
		if err != nil {
			return nil, nil, err
		}
		store = s3Store
	case config.DriverMemory:
		store = snapshot.NewMemory()
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	logger.Info("Snapshot store ready", zap.String("driver", store.Driver()))
	return snapshot.Instrument(store, metrics, logger), cleanup, nil
}

// ProvideAnimalRepository loads the catalog from the snapshot store
func ProvideAnimalRepository(
	ctx context.Context,
	store ports.SnapshotStore,
	metrics *observability.Collector,
	logger *zap.Logger,
) (ports.AnimalRepository, error) {
	repo, err := catalog.Open(ctx, store, logger)
	if err != nil {
		return nil, err
	}
	if metrics != nil {
		metrics.SetCatalogSize(repo.Count(ctx))
	}
	return repo, nil
}

// ProvideEventPublisher publishes to EventBridge when EVENT_BUS_NAME is set
// and only logs events otherwise
func ProvideEventPublisher(cfg *config.Config, awsCfg aws.Config, logger *zap.Logger) ports.EventPublisher {
	if cfg.EventBusName == "" {
		return messaging.NewLogPublisher(logger)
	}
	return eventbridge.NewEventBridgePublisher(
		awseventbridge.NewFromConfig(awsCfg),
		cfg.EventBusName,
		logger,
	)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	repo ports.AnimalRepository,
	publisher ports.EventPublisher,
	metrics *observability.Collector,
	logger *zap.Logger,
) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus(bus.LoggingMiddleware(logger))

	createAnimalHandler := commands.NewCreateAnimalHandler(repo, publisher, metrics, logger)
	if err := commandBus.Register(commands.CreateAnimalCommand{}, bus.Typed(createAnimalHandler.Handle)); err != nil {
		return nil, err
	}

	return commandBus, nil
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(repo ports.AnimalRepository, logger *zap.Logger) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus(querybus.LoggingMiddleware(logger))

	listAnimalsHandler := queries.NewListAnimalsHandler(repo)
	if err := queryBus.Register(queries.ListAnimalsQuery{}, querybus.Typed(listAnimalsHandler.Handle)); err != nil {
		return nil, err
	}

	getAnimalHandler := queries.NewGetAnimalHandler(repo)
	if err := queryBus.Register(queries.GetAnimalQuery{}, querybus.Typed(getAnimalHandler.Handle)); err != nil {
		return nil, err
	}

	return queryBus, nil
}
