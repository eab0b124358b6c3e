// Package cli implements zooctl, an operator tool that reads and extends
// the catalog through the same buses the HTTP API uses.
package cli

import (
	"context"
	"fmt"

	"zookeepr/infrastructure/di"

	"github.com/spf13/cobra"
)

// ContainerLoader builds the dependency container for a command run
type ContainerLoader func(ctx context.Context) (*di.Container, func(), error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "json" | "text"

	load      ContainerLoader
	container *di.Container
	cleanup   func()
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for zooctl.
func NewRootCommand(load ContainerLoader) *cobra.Command {
	opts := &RootOptions{load: load}

	cmd := &cobra.Command{
		Use:   "zooctl",
		Short: "Inspect and extend the zookeepr animal catalog",
		Long: `zooctl works directly against the configured catalog storage.

Storage is selected with the same environment variables as the API server
(STORAGE_DRIVER, DATA_FILE, SQLITE_PATH, DYNAMODB_TABLE, S3_BUCKET, ...).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			container, cleanup, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			opts.container = container
			opts.cleanup = cleanup
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.cleanup != nil {
				opts.cleanup()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
