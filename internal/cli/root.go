// Package cli implements the recctl command line tool.
package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tarantool/go-recstore/driver"
	"github.com/tarantool/go-recstore/internal/config"
	"github.com/tarantool/go-recstore/internal/logging"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"} //nolint:gochecknoglobals

// Opener opens the driver described by cfg. The returned function releases
// it.
type Opener func(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (driver.Driver, func() error, error)

// Deps are the collaborators commands are built with.
type Deps struct {
	LoadConfig func() (*config.Config, error)
	Open       Opener
}

// DefaultDeps reads the configuration from the environment and opens the
// configured driver.
func DefaultDeps() Deps {
	return Deps{
		LoadConfig: config.Init,
		Open:       OpenDriver,
	}
}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "json" | "text"
	deps   Deps
}

// NewRootCommand creates the root command of recctl.
func NewRootCommand(deps Deps) *cobra.Command {
	opts := &RootOptions{Format: "text", deps: deps}

	cmd := &cobra.Command{
		Use:   "recctl",
		Short: "recctl - record store client",
		Long:  "Render record store predicates and run queries against the configured store.",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewLoadCommand(opts))
	cmd.AddCommand(NewKeysCommand(opts))
	cmd.AddCommand(NewContainsCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))

	return cmd
}

// session is an opened driver together with the configuration it was
// opened with.
type session struct {
	cfg    *config.Config
	driver driver.Driver
	logger zerolog.Logger
	close  func() error
}

func (o *RootOptions) open(ctx context.Context) (*session, error) {
	cfg, err := o.deps.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	drv, closeFn, err := o.deps.Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, driver: drv, logger: logger, close: closeFn}, nil
}
