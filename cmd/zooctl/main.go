package main

import (
	"context"
	"fmt"
	"os"

	"zookeepr/infrastructure/config"
	"zookeepr/infrastructure/di"
	"zookeepr/interfaces/cli"
)

func main() {
	load := func(ctx context.Context) (*di.Container, func(), error) {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, nil, err
		}
		// keep command output clean; only problems are logged
		if os.Getenv("LOG_LEVEL") == "" {
			cfg.LogLevel = "warn"
		}
		cfg.EnableMetrics = false
		return di.InitializeContainer(ctx, cfg)
	}

	if err := cli.NewRootCommand(load).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
