package dummy_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-recstore/driver/dummy"
	"github.com/tarantool/go-recstore/order"
	"github.com/tarantool/go-recstore/predicate"
	"github.com/tarantool/go-recstore/wire"
)

const table = "User"

func user(id string, age int, status string) *wire.Record {
	rec := wire.NewRecord()
	rec.Set("id", id)
	rec.Set("age", age)
	rec.Set("status", status)

	return rec
}

func save(ctx context.Context, t *testing.T, driver *dummy.Driver, rec *wire.Record) {
	t.Helper()

	pk, _ := rec.Get("id")

	resp, err := driver.Execute(ctx, wire.Request{
		Table:      table,
		Query:      wire.QuerySave,
		PrimaryKey: pk,
		Payload:    rec,
	})
	require.NoError(t, err)
	require.True(t, resp.Acked(), resp.Cause)
}

func seed(ctx context.Context, t *testing.T) *dummy.Driver {
	t.Helper()

	driver := dummy.New()

	save(ctx, t, driver, user("u1", 17, "active"))
	save(ctx, t, driver, user("u2", 42, "active"))
	save(ctx, t, driver, user("u3", 30, "blocked"))
	save(ctx, t, driver, user("u4", 65, "active"))

	return driver
}

func TestDummyDriver_LoadSaveRemove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	driver := dummy.New()

	save(ctx, t, driver, user("u1", 30, "active"))

	resp, err := driver.Execute(ctx, wire.Request{Table: table, Query: wire.QueryLoad, PrimaryKey: "u1"})
	require.NoError(t, err)
	require.True(t, resp.Acked())

	rec, ok := resp.Record()
	require.True(t, ok)
	assert.Equal(t, []string{"id", "age", "status"}, rec.Keys())

	save(ctx, t, driver, user("u1", 31, "blocked"))
	assert.Equal(t, 1, driver.Len(table))

	resp, err = driver.Execute(ctx, wire.Request{Table: table, Query: wire.QueryRemove, PrimaryKey: "u1"})
	require.NoError(t, err)
	assert.True(t, resp.Acked())

	resp, err = driver.Execute(ctx, wire.Request{Table: table, Query: wire.QueryRemove, PrimaryKey: "u1"})
	require.NoError(t, err)
	assert.True(t, resp.NotFound())

	resp, err = driver.Execute(ctx, wire.Request{Table: table, Query: wire.QueryLoad, PrimaryKey: "u1"})
	require.NoError(t, err)
	assert.True(t, resp.NotFound())
}

func TestDummyDriver_StoredRecordIsCopied(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	driver := dummy.New()

	rec := user("u1", 30, "active")
	save(ctx, t, driver, rec)
	rec.Set("age", 99)

	resp, err := driver.Execute(ctx, wire.Request{Table: table, Query: wire.QueryLoad, PrimaryKey: "u1"})
	require.NoError(t, err)

	loaded, ok := resp.Record()
	require.True(t, ok)

	age, _ := loaded.Get("age")
	assert.Equal(t, 30, age)
}

func TestDummyDriver_Insert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	driver := dummy.New()

	req := wire.Request{Table: table, Query: wire.QueryInsert, PrimaryKey: "u1", Payload: user("u1", 1, "x")}

	resp, err := driver.Execute(ctx, req)
	require.NoError(t, err)
	assert.True(t, resp.Acked())

	resp, err = driver.Execute(ctx, req)
	require.NoError(t, err)
	assert.False(t, resp.Acked())
	assert.Equal(t, wire.DuplicateKeyCode, resp.Code)
}

func TestDummyDriver_Contains(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	driver := seed(ctx, t)

	for pk, expected := range map[string]bool{"u1": true, "u9": false} {
		resp, err := driver.Execute(ctx, wire.Request{Table: table, Query: wire.QueryContains, PrimaryKey: pk})
		require.NoError(t, err)

		found, ok := resp.Bool()
		require.True(t, ok)
		assert.Equal(t, expected, found, pk)
	}
}

func TestDummyDriver_SelectAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	driver := seed(ctx, t)

	resp, err := driver.Execute(ctx, wire.Request{Table: table, Query: wire.QuerySelectAll})
	require.NoError(t, err)
	assert.Equal(t, []any{"u1", "u2", "u3", "u4"}, resp.Keys)

	resp, err = driver.Execute(ctx, wire.Request{Table: "Empty", Query: wire.QuerySelectAll})
	require.NoError(t, err)
	assert.Equal(t, []any{}, resp.Keys)
}

func TestDummyDriver_Search(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	driver := seed(ctx, t)

	tests := []struct {
		name     string
		where    *predicate.Predicate
		order    []order.Term
		expected []any
	}{
		{
			"no predicate",
			nil,
			nil,
			[]any{"u1", "u2", "u3", "u4"},
		},
		{
			"and",
			predicate.New("age").Greater(18).And(predicate.New("status").Equal("active")),
			nil,
			[]any{"u2", "u4"},
		},
		{
			"left to right",
			predicate.New("status").Equal("blocked").
				Or(predicate.New("age").Less(18)).
				And(predicate.New("age").GreaterOrEqual(30)),
			nil,
			[]any{"u3"},
		},
		{
			"between",
			predicate.New("age").Between(30, 42),
			[]order.Term{order.Desc("age")},
			[]any{"u2", "u3"},
		},
		{
			"in",
			predicate.New("id").In("u4", "u1", "u7"),
			[]order.Term{order.Asc("id")},
			[]any{"u1", "u4"},
		},
		{
			"not equal ordered",
			predicate.New("status").NotEqual("blocked"),
			[]order.Term{order.Desc("age")},
			[]any{"u4", "u2", "u1"},
		},
		{
			"less or equal with float operand",
			predicate.New("age").LessOrEqual(30.0),
			[]order.Term{order.Asc("status"), order.Desc("id")},
			[]any{"u1", "u3"},
		},
		{
			"unknown field",
			predicate.New("email").Equal("x"),
			nil,
			[]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := wire.Request{Table: table, Query: wire.QuerySearch, Order: order.WireAll(tt.order...)}

			if tt.where != nil {
				where, err := tt.where.Wire()
				require.NoError(t, err)

				req.Where = where
			}

			resp, err := driver.Execute(ctx, req)
			require.NoError(t, err)
			require.True(t, resp.Acked(), resp.Cause)
			assert.Equal(t, tt.expected, resp.Keys)
		})
	}
}

func TestDummyDriver_InvalidRequests(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	driver := dummy.New()

	tests := []struct {
		name    string
		request wire.Request
	}{
		{"no table", wire.Request{Query: wire.QuerySelectAll}},
		{"load without key", wire.Request{Table: table, Query: wire.QueryLoad}},
		{"save without key", wire.Request{Table: table, Query: wire.QuerySave, Payload: wire.NewRecord()}},
		{"bad predicate", wire.Request{Table: table, Query: wire.QuerySearch, Where: []any{"age"}}},
		{"bad order", wire.Request{Table: table, Query: wire.QuerySearch, Order: []map[string]string{{"age": "UP"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp, err := driver.Execute(ctx, tt.request)
			require.NoError(t, err)
			assert.False(t, resp.Acked())
			assert.Equal(t, wire.InvalidRequestCode, resp.Code)
		})
	}
}

func TestDummyDriver_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dummy.New().Execute(ctx, wire.Request{Table: table, Query: wire.QuerySelectAll})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDummyDriver_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	driver := dummy.New()

	var wg sync.WaitGroup

	for i := range 32 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			id := fmt.Sprintf("u%d", i)

			resp, err := driver.Execute(ctx, wire.Request{
				Table:      table,
				Query:      wire.QueryInsert,
				PrimaryKey: id,
				Payload:    user(id, i, "active"),
			})
			assert.NoError(t, err)
			assert.True(t, resp.Acked())
		}()
	}

	wg.Wait()
	assert.Equal(t, 32, driver.Len(table))
}
