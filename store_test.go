package recstore_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-recstore"
	"github.com/tarantool/go-recstore/driver"
	"github.com/tarantool/go-recstore/driver/dummy"
	"github.com/tarantool/go-recstore/marshaller"
	"github.com/tarantool/go-recstore/order"
	"github.com/tarantool/go-recstore/predicate"
	"github.com/tarantool/go-recstore/record"
	"github.com/tarantool/go-recstore/wire"
)

type Plan int

const (
	PlanFree Plan = iota
	PlanPro
)

func (p Plan) String() string {
	switch p {
	case PlanFree:
		return "FREE"
	case PlanPro:
		return "PRO"
	default:
		return "UNKNOWN"
	}
}

type Account struct {
	ID    string   `record:"id,pk"`
	Name  string   `record:"name"`
	Age   int      `record:"age"`
	Plan  Plan     `record:"plan"`
	Tags  []string `record:"tags"`
	Notes string   `record:"-"`
}

type AuditEntry struct {
	Message string `record:"message"`
}

func newRegistry(t *testing.T) *record.Registry {
	t.Helper()

	reg := record.NewRegistry(record.WithEnum(PlanFree, PlanPro))

	_, err := reg.Register(Account{})
	require.NoError(t, err)

	_, err = reg.Register(AuditEntry{})
	require.NoError(t, err)

	return reg
}

func newStore(t *testing.T) (*recstore.Store, *dummy.Driver) {
	t.Helper()

	drv := dummy.New()

	return recstore.New(drv, newRegistry(t), recstore.WithCredentials("app", "secret")), drv
}

func TestStore_SaveLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, drv := newStore(t)

	in := Account{ID: "a1", Name: "Ann", Age: 30, Plan: PlanPro, Tags: []string{"x", "y"}, Notes: "local"}
	require.NoError(t, store.Save(ctx, &in))
	assert.Equal(t, 1, drv.Len("Account"))

	out := Account{ID: "a1"} //nolint:exhaustruct
	found, err := store.Load(ctx, &out)
	require.NoError(t, err)
	require.True(t, found)

	in.Notes = ""
	assert.Equal(t, in, out)
}

func TestStore_SaveReplaces(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, drv := newStore(t)

	require.NoError(t, store.Save(ctx, &Account{ID: "a1", Name: "Ann", Age: 30, Tags: []string{"x"}}))
	require.NoError(t, store.Save(ctx, &Account{ID: "a1", Name: "Bob", Age: 41, Tags: []string{"x"}}))
	assert.Equal(t, 1, drv.Len("Account"))

	loaded, found, err := recstore.LoadByKey[Account](ctx, store, "a1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Bob", loaded.Name)
	assert.Equal(t, 41, loaded.Age)
}

func TestStore_LoadMissing(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)

	out := Account{ID: "nobody", Name: "kept"} //nolint:exhaustruct
	found, err := store.Load(context.Background(), &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "kept", out.Name)

	loaded, found, err := recstore.LoadByKey[Account](context.Background(), store, "nobody")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, loaded)
}

func TestStore_InsertDuplicate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newStore(t)

	rec := Account{ID: "a1", Name: "Ann", Tags: []string{"x"}} //nolint:exhaustruct
	require.NoError(t, store.Insert(ctx, &rec))

	err := store.Insert(ctx, &rec)

	var opErr wire.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, wire.DuplicateKeyCode, opErr.Code)
}

func TestStore_Remove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, drv := newStore(t)

	rec := Account{ID: "a1", Name: "Ann", Tags: []string{"x"}} //nolint:exhaustruct
	require.NoError(t, store.Save(ctx, &rec))

	removed, err := store.Remove(ctx, &rec)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 0, drv.Len("Account"))

	removed, err = store.Remove(ctx, &rec)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestStore_Contains(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newStore(t)

	require.NoError(t, store.Save(ctx, &Account{ID: "a1", Name: "Ann", Tags: []string{"x"}}))

	found, err := store.Contains(ctx, Account{ID: "a1"}) //nolint:exhaustruct
	require.NoError(t, err)
	assert.True(t, found)

	found, err = recstore.ContainsKey[Account](ctx, store, "a2")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_SelectAllAndSearch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newStore(t)

	accounts := []Account{
		{ID: "a1", Name: "Carl", Age: 17, Plan: PlanFree, Tags: []string{"x"}},
		{ID: "a2", Name: "Ann", Age: 30, Plan: PlanPro, Tags: []string{"x"}},
		{ID: "a3", Name: "Bob", Age: 45, Plan: PlanFree, Tags: []string{"x"}},
	}

	for i := range accounts {
		require.NoError(t, store.Save(ctx, &accounts[i]))
	}

	all, err := store.SelectAll(ctx, "Account")
	require.NoError(t, err)
	assert.Equal(t, []any{"a1", "a2", "a3"}, all)

	adults, err := store.Search(ctx, "Account", predicate.New("age").GreaterOrEqual(18), order.Asc("name"))
	require.NoError(t, err)
	assert.Equal(t, []any{"a2", "a3"}, adults)

	// Flat chain: (plan = PRO OR age < 18) AND name <> "Carl".
	where := predicate.New("plan").Equal("PRO").
		Or(predicate.New("age").Less(18)).
		And(predicate.New("name").NotEqual("Carl"))

	matched, err := store.Search(ctx, "Account", where)
	require.NoError(t, err)
	assert.Equal(t, []any{"a2"}, matched)

	everyone, err := store.Search(ctx, "Account", nil, order.Desc("age"))
	require.NoError(t, err)
	assert.Equal(t, []any{"a3", "a2", "a1"}, everyone)

	empty, err := store.SelectAll(ctx, "AuditEntry")
	require.NoError(t, err)
	assert.Equal(t, []any{}, empty)
}

func TestStore_SearchMalformedPredicate(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)

	_, err := store.Search(context.Background(), "Account", predicate.New("age"))
	require.ErrorIs(t, err, predicate.ErrMissingOperator)
}

func TestStore_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newStore(t)

	tests := []struct {
		name  string
		call  func() error
		check func(t *testing.T, err error)
	}{
		{
			name: "no primary key",
			call: func() error { return store.Save(ctx, &AuditEntry{Message: "hi"}) },
			check: func(t *testing.T, err error) {
				t.Helper()

				var pkErr marshaller.PrimaryKeyNotFoundError
				require.ErrorAs(t, err, &pkErr)
				assert.Equal(t, "AuditEntry", pkErr.TypeID)
			},
		},
		{
			name: "unregistered type",
			call: func() error {
				_, err := store.Load(ctx, &struct{ ID string }{ID: "x"})
				return err
			},
			check: func(t *testing.T, err error) {
				t.Helper()
				require.ErrorIs(t, err, record.ErrNotRegistered)
			},
		},
		{
			name: "nil record",
			call: func() error { return store.Save(ctx, nil) },
			check: func(t *testing.T, err error) {
				t.Helper()
				require.ErrorIs(t, err, recstore.ErrNilRecord)
			},
		},
		{
			name: "unknown table",
			call: func() error {
				_, err := store.SelectAll(ctx, "Missing")
				return err
			},
			check: func(t *testing.T, err error) {
				t.Helper()
				require.ErrorIs(t, err, record.ErrNotRegistered)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.check(t, tt.call())
		})
	}
}

func TestStore_OperationError(t *testing.T) {
	t.Parallel()

	drv := driver.Func(func(context.Context, wire.Request) (wire.Response, error) {
		return wire.Nack("DB500", "disk full"), nil
	})
	store := recstore.New(drv, newRegistry(t))

	_, err := store.Load(context.Background(), &Account{ID: "a1"}) //nolint:exhaustruct

	var opErr wire.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "DB500", opErr.Code)
	assert.Equal(t, "disk full", opErr.Cause)

	_, err = store.Remove(context.Background(), &Account{ID: "a1"}) //nolint:exhaustruct
	require.ErrorAs(t, err, &opErr)
}

func TestStore_UnexpectedPayload(t *testing.T) {
	t.Parallel()

	drv := driver.Func(func(context.Context, wire.Request) (wire.Response, error) {
		return wire.Ack("yes"), nil
	})
	store := recstore.New(drv, newRegistry(t))

	_, err := store.Load(context.Background(), &Account{ID: "a1"}) //nolint:exhaustruct
	require.ErrorIs(t, err, recstore.ErrUnexpectedPayload)

	_, err = store.Contains(context.Background(), &Account{ID: "a1"}) //nolint:exhaustruct
	require.ErrorIs(t, err, recstore.ErrUnexpectedPayload)
}

func TestStore_TransportError(t *testing.T) {
	t.Parallel()

	transportErr := errors.New("connection reset")
	drv := driver.Func(func(context.Context, wire.Request) (wire.Response, error) {
		return wire.Response{}, transportErr
	})
	store := recstore.New(drv, newRegistry(t))

	err := store.Save(context.Background(), &Account{ID: "a1", Tags: []string{"x"}}) //nolint:exhaustruct
	require.ErrorIs(t, err, transportErr)
	assert.Contains(t, err.Error(), "failed to execute SAVE on Account")
}

func TestStore_RequestEnvelope(t *testing.T) {
	t.Parallel()

	var (
		buf  bytes.Buffer
		sent wire.Request
	)

	drv := driver.Func(func(_ context.Context, req wire.Request) (wire.Response, error) {
		sent = req
		return wire.Ack(nil), nil
	})

	store := recstore.New(drv, newRegistry(t),
		recstore.WithCredentials("billing", "k3y"),
		recstore.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)),
	)

	require.NoError(t, store.Insert(context.Background(), &Account{ID: "a9", Plan: PlanPro, Tags: []string{"x"}}))

	assert.Equal(t, "billing", sent.App)
	assert.Equal(t, "k3y", sent.Key)
	assert.Equal(t, "Account", sent.Table)
	assert.Equal(t, wire.QueryInsert, sent.Query)
	assert.Equal(t, "a9", sent.PrimaryKey)
	require.NotNil(t, sent.Payload)

	plan, ok := sent.Payload.Get("plan")
	require.True(t, ok)
	assert.Equal(t, "PRO", plan)

	assert.Contains(t, buf.String(), `"request_id"`)
	assert.Contains(t, buf.String(), `"query":"INSERT"`)
}

func TestStore_CanceledContext(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Contains(ctx, &Account{ID: "a1"}) //nolint:exhaustruct
	require.ErrorIs(t, err, context.Canceled)
}
