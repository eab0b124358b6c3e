package di

import (
	"zookeepr/application/commands/bus"
	"zookeepr/application/ports"
	querybus "zookeepr/application/queries/bus"
	"zookeepr/infrastructure/config"
	"zookeepr/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Metrics    *observability.Collector
	Snapshots  ports.SnapshotStore
	Animals    ports.AnimalRepository
	Publisher  ports.EventPublisher
	CommandBus *bus.CommandBus
	QueryBus   *querybus.QueryBus
}
