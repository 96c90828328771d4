// Package etcd provides an etcd implementation of the driver interface.
// Each record is stored under <prefix><table>/<primary key> as a document
// holding the primary key and the wire record, encoded with a codec.
package etcd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	etcd "go.etcd.io/etcd/client/v3"

	"github.com/tarantool/go-recstore/driver"
	"github.com/tarantool/go-recstore/internal/match"
	"github.com/tarantool/go-recstore/internal/options"
	"github.com/tarantool/go-recstore/marshaller"
	"github.com/tarantool/go-recstore/wire"
)

// DefaultPrefix is the key prefix used when none is configured.
const DefaultPrefix = "/recstore/"

// Client defines the minimal interface needed for etcd operations.
// This allows for easier testing and mock implementations.
type Client interface {
	Get(ctx context.Context, key string, opts ...etcd.OpOption) (*etcd.GetResponse, error)
	Put(ctx context.Context, key, val string, opts ...etcd.OpOption) (*etcd.PutResponse, error)
	Delete(ctx context.Context, key string, opts ...etcd.OpOption) (*etcd.DeleteResponse, error)
	Txn(ctx context.Context) etcd.Txn
}

var (
	_ driver.Driver = &Driver{} //nolint:exhaustruct
	_ Client        = (*etcd.Client)(nil)

	errEmptyDocument = errors.New("stored document has no record")
)

// document is the stored form of a record.
type document struct {
	PrimaryKey any          `json:"pk" msgpack:"pk" yaml:"pk"`
	Record     *wire.Record `json:"p"  msgpack:"p"  yaml:"p"`
}

type driverOptions struct {
	prefix string
	codec  marshaller.Codec
}

// WithPrefix sets the key prefix all tables are stored under.
func WithPrefix(prefix string) options.OptionCallback[driverOptions] {
	return func(opts *driverOptions) {
		opts.prefix = prefix
	}
}

// WithCodec sets the codec stored documents are encoded with.
func WithCodec(codec marshaller.Codec) options.OptionCallback[driverOptions] {
	return func(opts *driverOptions) {
		opts.codec = codec
	}
}

// Driver is an etcd implementation of the driver interface.
type Driver struct {
	client Client
	prefix string
	codec  marshaller.TypedCodec[document]
}

// New creates a driver over client. An *etcd.Client satisfies Client.
func New(client Client, opts ...options.OptionCallback[driverOptions]) *Driver {
	o := options.ApplyOptions[driverOptions](func() driverOptions {
		return driverOptions{prefix: DefaultPrefix, codec: marshaller.NewMsgpackCodec()}
	}, opts)

	prefix := o.prefix
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return &Driver{
		client: client,
		prefix: prefix,
		codec:  marshaller.NewTypedCodec[document](o.codec),
	}
}

// Execute implements driver.Driver.
func (d *Driver) Execute(ctx context.Context, req wire.Request) (wire.Response, error) {
	if err := req.Validate(); err != nil {
		return wire.Nack(wire.InvalidRequestCode, err.Error()), nil
	}

	switch req.Query {
	case wire.QueryLoad:
		return d.load(ctx, req)
	case wire.QuerySave:
		return d.save(ctx, req)
	case wire.QueryInsert:
		return d.insert(ctx, req)
	case wire.QueryRemove:
		return d.remove(ctx, req)
	case wire.QueryContains:
		return d.contains(ctx, req)
	case wire.QuerySelectAll:
		return d.selectAll(ctx, req)
	case wire.QuerySearch:
		return d.search(ctx, req)
	default:
		return wire.Nack(wire.UnsupportedCode, req.Query.String()), nil
	}
}

func (d *Driver) tablePrefix(table string) string {
	return d.prefix + table + "/"
}

func (d *Driver) key(table string, pk any) string {
	return d.tablePrefix(table) + fmt.Sprint(pk)
}

func (d *Driver) encode(req wire.Request) (string, *wire.Response, error) {
	if req.PrimaryKey == nil {
		nack := wire.Nack(wire.InvalidRequestCode, fmt.Sprintf("%s: %s", req.Query, wire.ErrMissingPrimaryKey))
		return "", &nack, nil
	}

	data, err := d.codec.Marshal(document{PrimaryKey: req.PrimaryKey, Record: req.Payload})
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode record: %w", err)
	}

	return string(data), nil, nil
}

func (d *Driver) decode(value []byte) (document, error) {
	doc, err := d.codec.Unmarshal(value)
	if err != nil {
		return document{}, fmt.Errorf("failed to decode record: %w", err)
	}

	if doc.Record == nil {
		return document{}, errEmptyDocument
	}

	doc.PrimaryKey = wire.NormalizeNumbers(doc.PrimaryKey)

	return doc, nil
}

func (d *Driver) load(ctx context.Context, req wire.Request) (wire.Response, error) {
	resp, err := d.client.Get(ctx, d.key(req.Table, req.PrimaryKey))
	if err != nil {
		return wire.Response{}, fmt.Errorf("failed to get: %w", err)
	}

	if len(resp.Kvs) == 0 {
		return wire.NotFoundResponse(), nil
	}

	doc, err := d.decode(resp.Kvs[0].Value)
	if err != nil {
		return wire.Response{}, err
	}

	return wire.Ack(doc.Record), nil
}

func (d *Driver) save(ctx context.Context, req wire.Request) (wire.Response, error) {
	value, nack, err := d.encode(req)
	if nack != nil || err != nil {
		return unwrapNack(nack), err
	}

	if _, err := d.client.Put(ctx, d.key(req.Table, req.PrimaryKey), value); err != nil {
		return wire.Response{}, fmt.Errorf("failed to put: %w", err)
	}

	return wire.Ack(nil), nil
}

func (d *Driver) insert(ctx context.Context, req wire.Request) (wire.Response, error) {
	value, nack, err := d.encode(req)
	if nack != nil || err != nil {
		return unwrapNack(nack), err
	}

	key := d.key(req.Table, req.PrimaryKey)

	resp, err := d.client.Txn(ctx).
		If(etcd.Compare(etcd.CreateRevision(key), "=", 0)).
		Then(etcd.OpPut(key, value)).
		Commit()
	if err != nil {
		return wire.Response{}, fmt.Errorf("transaction failed: %w", err)
	}

	if !resp.Succeeded {
		return wire.Nack(wire.DuplicateKeyCode, fmt.Sprintf("record %v already exists in %s", req.PrimaryKey, req.Table)), nil
	}

	return wire.Ack(nil), nil
}

func (d *Driver) remove(ctx context.Context, req wire.Request) (wire.Response, error) {
	resp, err := d.client.Delete(ctx, d.key(req.Table, req.PrimaryKey))
	if err != nil {
		return wire.Response{}, fmt.Errorf("failed to delete: %w", err)
	}

	if resp.Deleted == 0 {
		return wire.NotFoundResponse(), nil
	}

	return wire.Ack(nil), nil
}

func (d *Driver) contains(ctx context.Context, req wire.Request) (wire.Response, error) {
	resp, err := d.client.Get(ctx, d.key(req.Table, req.PrimaryKey), etcd.WithCountOnly())
	if err != nil {
		return wire.Response{}, fmt.Errorf("failed to get: %w", err)
	}

	return wire.Ack(resp.Count > 0), nil
}

// scan returns every document of table in key order.
func (d *Driver) scan(ctx context.Context, table string) ([]match.Entry, error) {
	resp, err := d.client.Get(ctx, d.tablePrefix(table),
		etcd.WithPrefix(),
		etcd.WithSort(etcd.SortByKey, etcd.SortAscend),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get range: %w", err)
	}

	entries := make([]match.Entry, 0, len(resp.Kvs))

	for _, kv := range resp.Kvs {
		doc, err := d.decode(kv.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kv.Key, err)
		}

		entries = append(entries, match.Entry{PrimaryKey: doc.PrimaryKey, Record: doc.Record})
	}

	return entries, nil
}

func (d *Driver) selectAll(ctx context.Context, req wire.Request) (wire.Response, error) {
	entries, err := d.scan(ctx, req.Table)
	if err != nil {
		return wire.Response{}, err
	}

	keys := make([]any, 0, len(entries))
	for _, entry := range entries {
		keys = append(keys, entry.PrimaryKey)
	}

	return wire.AckKeys(keys), nil
}

func (d *Driver) search(ctx context.Context, req wire.Request) (wire.Response, error) {
	entries, err := d.scan(ctx, req.Table)
	if err != nil {
		return wire.Response{}, err
	}

	keys, err := match.Search(req.Where, req.Order, entries)
	if err != nil {
		return wire.Nack(wire.InvalidRequestCode, err.Error()), nil
	}

	return wire.AckKeys(keys), nil
}

func unwrapNack(nack *wire.Response) wire.Response {
	if nack == nil {
		return wire.Response{}
	}

	return *nack
}
