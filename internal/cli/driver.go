package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	etcd "go.etcd.io/etcd/client/v3"

	"github.com/tarantool/go-recstore/driver"
	"github.com/tarantool/go-recstore/driver/dummy"
	etcddriver "github.com/tarantool/go-recstore/driver/etcd"
	"github.com/tarantool/go-recstore/driver/tcs"
	"github.com/tarantool/go-recstore/internal/config"
	"github.com/tarantool/go-recstore/marshaller"
)

// OpenDriver opens the driver selected by cfg.App.Driver.
func OpenDriver(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (driver.Driver, func() error, error) {
	switch cfg.App.Driver {
	case config.DriverDummy:
		logger.Warn().Msg("using the in-memory driver, nothing is persisted")
		return dummy.New(), func() error { return nil }, nil

	case config.DriverEtcd:
		codec, ok := marshaller.CodecByName(cfg.Etcd.Codec)
		if !ok {
			return nil, nil, fmt.Errorf("unknown etcd codec %q", cfg.Etcd.Codec)
		}

		client, err := etcd.New(etcd.Config{ //nolint:exhaustruct
			Endpoints:   cfg.Etcd.Endpoints,
			DialTimeout: cfg.Etcd.DialTimeout,
			Context:     ctx,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to etcd: %w", err)
		}

		logger.Debug().Strs("endpoints", cfg.Etcd.Endpoints).Str("codec", codec.Name()).Msg("connected to etcd")

		return etcddriver.New(client, etcddriver.WithPrefix(cfg.Etcd.Prefix), etcddriver.WithCodec(codec)), client.Close, nil

	case config.DriverTarantool:
		connectCtx, cancel := context.WithTimeout(ctx, cfg.Tarantool.Timeout)
		defer cancel()

		drv, err := tcs.Connect(connectCtx, tcs.Config{
			Addresses: cfg.Tarantool.Addresses,
			User:      cfg.Tarantool.User,
			Password:  cfg.Tarantool.Password,
		}, tcs.WithFunction(cfg.Tarantool.Function))
		if err != nil {
			return nil, nil, err //nolint:wrapcheck
		}

		logger.Debug().Strs("addresses", cfg.Tarantool.Addresses).Msg("connected to tarantool")

		return drv, drv.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.App.Driver)
	}
}
