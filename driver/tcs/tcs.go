// Package tcs provides a Tarantool implementation of the driver interface.
// Every request is delivered as the single argument of a stored function
// which answers with the response envelope.
package tcs

import (
	"context"
	"errors"
	"fmt"

	"github.com/tarantool/go-tarantool/v2"
	"github.com/tarantool/go-tarantool/v2/pool"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tarantool/go-recstore/driver"
	"github.com/tarantool/go-recstore/internal/options"
	"github.com/tarantool/go-recstore/wire"
)

// DefaultFunction is the stored function called when none is configured.
const DefaultFunction = "recstore.execute"

// ErrEmptyResult is returned when the stored function returned nothing.
var ErrEmptyResult = errors.New("stored function returned no response")

// Caller calls a stored function and decodes its results into result.
type Caller interface {
	Call(ctx context.Context, function string, args []any, result any) error
}

// DoerCaller adapts a tarantool.Doer, such as a connection or a pool
// adapter, to the Caller interface.
type DoerCaller struct {
	Doer tarantool.Doer
}

var (
	_ driver.Driver = &Driver{} //nolint:exhaustruct
	_ Caller        = DoerCaller{Doer: nil}
)

// Call implements Caller.
func (c DoerCaller) Call(ctx context.Context, function string, args []any, result any) error {
	req := tarantool.NewCallRequest(function).Args(args).Context(ctx)
	fut := c.Doer.Do(req)

	if _, err := fut.GetResponse(); err != nil {
		return fmt.Errorf("failed to call %s: %w", function, err)
	}

	return NewResponseDecodingError(function, fut.GetTyped(result))
}

type driverOptions struct {
	function string
}

// WithFunction sets the stored function requests are sent to.
func WithFunction(function string) options.OptionCallback[driverOptions] {
	return func(opts *driverOptions) {
		opts.function = function
	}
}

// Driver is a Tarantool implementation of the driver interface.
type Driver struct {
	caller   Caller
	function string
	close    func() error
}

// New creates a driver over caller.
func New(caller Caller, opts ...options.OptionCallback[driverOptions]) *Driver {
	o := options.ApplyOptions[driverOptions](func() driverOptions {
		return driverOptions{function: DefaultFunction}
	}, opts)

	return &Driver{
		caller:   caller,
		function: o.function,
		close:    func() error { return nil },
	}
}

// Config describes the Tarantool instances a pooled driver connects to.
type Config struct {
	Addresses []string
	User      string
	Password  string
}

// Connect establishes a connection pool to the configured instances and
// returns a driver sending requests to a writable instance.
func Connect(
	ctx context.Context,
	cfg Config,
	opts ...options.OptionCallback[driverOptions],
) (*Driver, error) {
	instances := make([]pool.Instance, 0, len(cfg.Addresses))
	for i, addr := range cfg.Addresses {
		instances = append(instances, pool.Instance{
			Name: fmt.Sprintf("instance-%d", i),
			Dialer: &tarantool.NetDialer{
				Address:  addr,
				User:     cfg.User,
				Password: cfg.Password,
				RequiredProtocolInfo: tarantool.ProtocolInfo{
					Auth:     tarantool.AutoAuth,
					Version:  tarantool.ProtocolVersion(0),
					Features: nil,
				},
			},
			Opts: tarantool.Opts{
				Timeout:       0,
				Reconnect:     0,
				MaxReconnects: 0,
				RateLimit:     0,
				RLimitAction:  tarantool.RLimitAction(0),
				Concurrency:   0,
				SkipSchema:    false,
				Notify:        nil,
				Handle:        nil,
				Logger:        nil,
			},
		})
	}

	conn, err := pool.Connect(ctx, instances)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to tarantool pool: %w", err)
	}

	adapter := pool.NewConnectorAdapter(conn, pool.RW)

	d := New(DoerCaller{Doer: adapter}, opts...)
	d.close = adapter.Close

	return d, nil
}

// Close releases the connections opened by Connect.
func (d *Driver) Close() error {
	return d.close()
}

// Execute implements driver.Driver.
func (d *Driver) Execute(ctx context.Context, req wire.Request) (wire.Response, error) {
	if err := req.Validate(); err != nil {
		return wire.Nack(wire.InvalidRequestCode, err.Error()), nil
	}

	encoded, err := msgpack.Marshal(req)
	if err != nil {
		return wire.Response{}, NewRequestEncodingError(req.Query.String(), err)
	}

	var out []wire.Response

	err = d.caller.Call(ctx, d.function, []any{msgpack.RawMessage(encoded)}, &out)
	if err != nil {
		return wire.Response{}, err //nolint:wrapcheck
	}

	if len(out) == 0 {
		return wire.Response{}, NewResponseDecodingError(d.function, ErrEmptyResult)
	}

	return out[0], nil
}
