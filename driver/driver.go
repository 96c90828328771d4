// Package driver defines the transport boundary of the record store client.
// A driver delivers a request envelope to a store and returns its response
// envelope; failures reported by the store travel inside the response, the
// returned error is reserved for transport failures.
package driver

import (
	"context"

	"github.com/tarantool/go-recstore/wire"
)

// Driver is the interface that store drivers must implement.
type Driver interface {
	// Execute sends req and waits for the store's response.
	Execute(ctx context.Context, req wire.Request) (wire.Response, error)
}

// Func adapts a function to the Driver interface.
type Func func(ctx context.Context, req wire.Request) (wire.Response, error)

// Execute implements Driver.
func (f Func) Execute(ctx context.Context, req wire.Request) (wire.Response, error) {
	return f(ctx, req)
}
