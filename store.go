package recstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tarantool/go-recstore/driver"
	"github.com/tarantool/go-recstore/internal/options"
	"github.com/tarantool/go-recstore/marshaller"
	"github.com/tarantool/go-recstore/order"
	"github.com/tarantool/go-recstore/predicate"
	"github.com/tarantool/go-recstore/record"
	"github.com/tarantool/go-recstore/wire"
)

var (
	// ErrUnexpectedPayload is returned when an acknowledged response carries
	// a payload of the wrong shape.
	ErrUnexpectedPayload = errors.New("unexpected response payload")
	// ErrNilRecord is returned when a nil record is passed to the store.
	ErrNilRecord = errors.New("nil record")
)

type storeOptions struct {
	app        string
	key        string
	logger     zerolog.Logger
	marshaller *marshaller.Marshaller
}

// WithCredentials sets the application id and key sent with every request.
func WithCredentials(app, key string) options.OptionCallback[storeOptions] {
	return func(opts *storeOptions) {
		opts.app = app
		opts.key = key
	}
}

// WithLogger sets the logger requests are traced with. It is also passed to
// the default marshaller.
func WithLogger(logger zerolog.Logger) options.OptionCallback[storeOptions] {
	return func(opts *storeOptions) {
		opts.logger = logger
	}
}

// WithMarshaller replaces the marshaller built over the registry.
func WithMarshaller(m *marshaller.Marshaller) options.OptionCallback[storeOptions] {
	return func(opts *storeOptions) {
		opts.marshaller = m
	}
}

// Store is a record store client.
type Store struct {
	driver     driver.Driver
	registry   *record.Registry
	marshaller *marshaller.Marshaller
	app        string
	key        string
	logger     zerolog.Logger
}

// New creates a store sending requests through drv. Records passed to the
// store must be registered in registry.
func New(drv driver.Driver, registry *record.Registry, opts ...options.OptionCallback[storeOptions]) *Store {
	o := options.ApplyOptions[storeOptions](func() storeOptions {
		return storeOptions{
			app:        "",
			key:        "",
			logger:     zerolog.Nop(),
			marshaller: nil,
		}
	}, opts)

	m := o.marshaller
	if m == nil {
		m = marshaller.New(registry, marshaller.WithLogger(o.logger))
	}

	return &Store{
		driver:     drv,
		registry:   registry,
		marshaller: m,
		app:        o.app,
		key:        o.key,
		logger:     o.logger,
	}
}

// Marshaller returns the marshaller records are converted with.
func (s *Store) Marshaller() *marshaller.Marshaller {
	return s.marshaller
}

// Load fills rec, a pointer to a registered struct, with the stored record
// sharing its primary key. It reports false when no such record exists.
func (s *Store) Load(ctx context.Context, rec any) (bool, error) {
	typeID, pk, err := s.identify(rec)
	if err != nil {
		return false, err
	}

	resp, err := s.send(ctx, s.request(wire.QueryLoad, typeID, pk))
	if err != nil {
		return false, err
	}

	if resp.NotFound() {
		return false, nil
	}

	if !resp.Acked() {
		return false, resp.Err() //nolint:wrapcheck
	}

	payload, ok := resp.Record()
	if !ok {
		return false, fmt.Errorf("%w: LOAD returned %T", ErrUnexpectedPayload, resp.Payload)
	}

	if err := s.marshaller.FromWire(payload, rec); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", typeID, err)
	}

	return true, nil
}

// Save writes rec, replacing a stored record with the same primary key.
func (s *Store) Save(ctx context.Context, rec any) error {
	return s.write(ctx, wire.QuerySave, rec)
}

// Insert writes rec. The store rejects it when the primary key is taken.
func (s *Store) Insert(ctx context.Context, rec any) error {
	return s.write(ctx, wire.QueryInsert, rec)
}

func (s *Store) write(ctx context.Context, query wire.QueryType, rec any) error {
	typeID, pk, err := s.identify(rec)
	if err != nil {
		return err
	}

	payload, err := s.marshaller.ToWire(rec)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", typeID, err)
	}

	req := s.request(query, typeID, pk)
	req.Payload = payload

	resp, err := s.send(ctx, req)
	if err != nil {
		return err
	}

	return resp.Err() //nolint:wrapcheck
}

// Remove deletes the stored record sharing the primary key of rec. It
// reports false when no such record exists.
func (s *Store) Remove(ctx context.Context, rec any) (bool, error) {
	typeID, pk, err := s.identify(rec)
	if err != nil {
		return false, err
	}

	resp, err := s.send(ctx, s.request(wire.QueryRemove, typeID, pk))
	if err != nil {
		return false, err
	}

	if resp.NotFound() {
		return false, nil
	}

	return resp.Acked(), resp.Err() //nolint:wrapcheck
}

// Contains reports whether a record with the primary key of rec is stored.
func (s *Store) Contains(ctx context.Context, rec any) (bool, error) {
	typeID, pk, err := s.identify(rec)
	if err != nil {
		return false, err
	}

	resp, err := s.send(ctx, s.request(wire.QueryContains, typeID, pk))
	if err != nil {
		return false, err
	}

	if resp.NotFound() {
		return false, nil
	}

	if !resp.Acked() {
		return false, resp.Err() //nolint:wrapcheck
	}

	found, ok := resp.Bool()
	if !ok {
		return false, fmt.Errorf("%w: CONTAINS returned %T", ErrUnexpectedPayload, resp.Payload)
	}

	return found, nil
}

// SelectAll returns the primary keys of every record of typeID.
func (s *Store) SelectAll(ctx context.Context, typeID string) ([]any, error) {
	if _, err := s.registry.Describe(typeID); err != nil {
		return nil, err //nolint:wrapcheck
	}

	resp, err := s.send(ctx, s.request(wire.QuerySelectAll, typeID, nil))
	if err != nil {
		return nil, err
	}

	if !resp.Acked() {
		return nil, resp.Err() //nolint:wrapcheck
	}

	return keys(resp), nil
}

// Search returns the primary keys of the records of typeID matching where,
// ordered by terms. A nil where matches every record.
func (s *Store) Search(
	ctx context.Context,
	typeID string,
	where *predicate.Predicate,
	terms ...order.Term,
) ([]any, error) {
	if _, err := s.registry.Describe(typeID); err != nil {
		return nil, err //nolint:wrapcheck
	}

	req := s.request(wire.QuerySearch, typeID, nil)
	req.Order = order.WireAll(terms...)

	if where != nil {
		encoded, err := where.Wire()
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		req.Where = encoded
	}

	resp, err := s.send(ctx, req)
	if err != nil {
		return nil, err
	}

	if !resp.Acked() {
		return nil, resp.Err() //nolint:wrapcheck
	}

	return keys(resp), nil
}

func keys(resp wire.Response) []any {
	if resp.Keys == nil {
		return []any{}
	}

	return resp.Keys
}

// identify returns the type id and primary key of a registered record.
func (s *Store) identify(rec any) (string, any, error) {
	if rec == nil {
		return "", nil, ErrNilRecord
	}

	desc, err := s.registry.DescriptorOf(rec)
	if err != nil {
		return "", nil, err //nolint:wrapcheck
	}

	pk, ok, err := s.marshaller.PrimaryKey(rec)
	if err != nil {
		return "", nil, err //nolint:wrapcheck
	}

	if !ok {
		return "", nil, marshaller.PrimaryKeyNotFoundError{TypeID: desc.TypeID()}
	}

	return desc.TypeID(), pk, nil
}

func (s *Store) request(query wire.QueryType, typeID string, pk any) wire.Request {
	return wire.Request{
		App:        s.app,
		Key:        s.key,
		Table:      typeID,
		Query:      query,
		PrimaryKey: pk,
		Payload:    nil,
		Where:      nil,
		Order:      nil,
	}
}

func (s *Store) send(ctx context.Context, req wire.Request) (wire.Response, error) {
	logger := s.logger.With().
		Str("request_id", uuid.NewString()).
		Str("table", req.Table).
		Stringer("query", req.Query).
		Logger()

	logger.Debug().Interface("pk", req.PrimaryKey).Msg("sending request")

	resp, err := s.driver.Execute(ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("request failed")
		return wire.Response{}, fmt.Errorf("failed to execute %s on %s: %w", req.Query, req.Table, err)
	}

	if !resp.Acked() {
		logger.Debug().Str("code", resp.Code).Str("cause", resp.Cause).Msg("request rejected")
	} else {
		logger.Debug().Msg("request acknowledged")
	}

	return resp, nil
}

// LoadByKey loads the record of type T with primary key pk.
func LoadByKey[T any](ctx context.Context, s *Store, pk any) (*T, bool, error) {
	out := new(T)

	if err := s.marshaller.SetPrimaryKey(out, pk); err != nil {
		return nil, false, err //nolint:wrapcheck
	}

	found, err := s.Load(ctx, out)
	if err != nil || !found {
		return nil, found, err
	}

	return out, true, nil
}

// ContainsKey reports whether a record of type T with primary key pk is
// stored.
func ContainsKey[T any](ctx context.Context, s *Store, pk any) (bool, error) {
	target := new(T)

	if err := s.marshaller.SetPrimaryKey(target, pk); err != nil {
		return false, err //nolint:wrapcheck
	}

	return s.Contains(ctx, target)
}
