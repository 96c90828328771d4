// Package dummy provides an in-memory implementation of the driver
// interface for demonstration and tests.
package dummy

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/tarantool/go-option"

	"github.com/tarantool/go-recstore/internal/match"
	"github.com/tarantool/go-recstore/wire"
)

type storedRecord struct {
	pk       any
	record   *wire.Record
	revision int64
}

// dummyStorage is a thread-safe structure that holds the tables.
type dummyStorage struct {
	tables   map[string]map[string]storedRecord
	revision int64
	mu       sync.RWMutex
}

// Driver is an in-memory store. Records are kept per table and addressed by
// the primary key carried in the request.
type Driver struct {
	data dummyStorage
}

// New creates an empty store.
func New() *Driver {
	return &Driver{
		data: dummyStorage{
			tables:   make(map[string]map[string]storedRecord),
			revision: 1,
			mu:       sync.RWMutex{},
		},
	}
}

// Execute implements driver.Driver.
func (d *Driver) Execute(ctx context.Context, req wire.Request) (wire.Response, error) {
	if err := ctx.Err(); err != nil {
		return wire.Response{}, fmt.Errorf("dummy: %w", err)
	}

	if err := req.Validate(); err != nil {
		return wire.Nack(wire.InvalidRequestCode, err.Error()), nil
	}

	switch req.Query {
	case wire.QuerySave, wire.QueryInsert, wire.QueryRemove:
		d.data.mu.Lock()
		defer d.data.mu.Unlock()
	default:
		d.data.mu.RLock()
		defer d.data.mu.RUnlock()
	}

	switch req.Query {
	case wire.QueryLoad:
		return d.load(req), nil
	case wire.QuerySave, wire.QueryInsert:
		return d.write(req), nil
	case wire.QueryRemove:
		return d.remove(req), nil
	case wire.QueryContains:
		return wire.Ack(d.lookup(req.Table, req.PrimaryKey).IsSome()), nil
	case wire.QuerySelectAll:
		return d.selectAll(req), nil
	case wire.QuerySearch:
		return d.search(req), nil
	default:
		return wire.Nack(wire.UnsupportedCode, req.Query.String()), nil
	}
}

// Len returns the number of records stored in table.
func (d *Driver) Len(table string) int {
	d.data.mu.RLock()
	defer d.data.mu.RUnlock()

	return len(d.data.tables[table])
}

func (d *Driver) lookup(table string, pk any) option.Generic[storedRecord] {
	stored, ok := d.data.tables[table][match.Key(pk)]
	if !ok {
		return option.None[storedRecord]()
	}

	return option.Some(stored)
}

func (d *Driver) load(req wire.Request) wire.Response {
	found := d.lookup(req.Table, req.PrimaryKey)
	if !found.IsSome() {
		return wire.NotFoundResponse()
	}

	stored := found.UnwrapOr(storedRecord{}) //nolint:exhaustruct

	return wire.Ack(stored.record.Clone())
}

func (d *Driver) write(req wire.Request) wire.Response {
	if req.PrimaryKey == nil {
		return wire.Nack(wire.InvalidRequestCode, fmt.Sprintf("%s: %s", req.Query, wire.ErrMissingPrimaryKey))
	}

	if req.Query == wire.QueryInsert && d.lookup(req.Table, req.PrimaryKey).IsSome() {
		return wire.Nack(wire.DuplicateKeyCode, fmt.Sprintf("record %v already exists in %s", req.PrimaryKey, req.Table))
	}

	table, ok := d.data.tables[req.Table]
	if !ok {
		table = make(map[string]storedRecord)
		d.data.tables[req.Table] = table
	}

	d.data.revision++

	table[match.Key(req.PrimaryKey)] = storedRecord{
		pk:       req.PrimaryKey,
		record:   req.Payload.Clone(),
		revision: d.data.revision,
	}

	return wire.Ack(nil)
}

func (d *Driver) remove(req wire.Request) wire.Response {
	key := match.Key(req.PrimaryKey)

	if _, ok := d.data.tables[req.Table][key]; !ok {
		return wire.NotFoundResponse()
	}

	delete(d.data.tables[req.Table], key)
	d.data.revision++

	return wire.Ack(nil)
}

// sorted returns the records of table in write order.
func (d *Driver) sorted(table string) []storedRecord {
	out := make([]storedRecord, 0, len(d.data.tables[table]))
	for _, stored := range d.data.tables[table] {
		out = append(out, stored)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].revision < out[j].revision
	})

	return out
}

func (d *Driver) selectAll(req wire.Request) wire.Response {
	records := d.sorted(req.Table)

	keys := make([]any, 0, len(records))
	for _, stored := range records {
		keys = append(keys, stored.pk)
	}

	return wire.AckKeys(keys)
}

func (d *Driver) search(req wire.Request) wire.Response {
	records := d.sorted(req.Table)

	entries := make([]match.Entry, 0, len(records))
	for _, stored := range records {
		entries = append(entries, match.Entry{PrimaryKey: stored.pk, Record: stored.record})
	}

	keys, err := match.Search(req.Where, req.Order, entries)
	if err != nil {
		return wire.Nack(wire.InvalidRequestCode, err.Error())
	}

	return wire.AckKeys(keys)
}
