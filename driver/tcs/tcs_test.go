package tcs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tarantool/go-recstore/driver/tcs"
	"github.com/tarantool/go-recstore/internal/mocks"
	"github.com/tarantool/go-recstore/wire"
)

var _ tcs.Caller = (*mocks.CallerMock)(nil)

// server answers stored procedure calls with fixed responses and keeps the
// requests it decoded.
type server struct {
	t         *testing.T
	function  string
	responses []wire.Response
	requests  []wire.Request
}

func newServer(t *testing.T, function string, responses ...wire.Response) *server {
	t.Helper()

	return &server{t: t, function: function, responses: responses, requests: nil}
}

func (s *server) call(_ context.Context, function string, args []any, result any) error {
	assert.Equal(s.t, s.function, function)
	require.Len(s.t, args, 1)

	raw, ok := args[0].(msgpack.RawMessage)
	require.True(s.t, ok)

	var req wire.Request
	require.NoError(s.t, msgpack.Unmarshal(raw, &req))

	s.requests = append(s.requests, req)

	out, ok := result.(*[]wire.Response)
	require.True(s.t, ok)

	*out = s.responses

	return nil
}

func TestDriver_ExecuteLoad(t *testing.T) {
	t.Parallel()

	rec := wire.NewRecord()
	rec.Set("id", "u1")

	mc := minimock.NewController(t)
	srv := newServer(t, tcs.DefaultFunction, wire.Ack(map[string]any{"id": "u1"}))

	d := tcs.New(mocks.NewCallerMock(mc).CallMock.Set(srv.call))

	resp, err := d.Execute(context.Background(), wire.Request{
		App: "app", Key: "secret", Table: "User", Query: wire.QueryLoad, PrimaryKey: "u1",
	})
	require.NoError(t, err)
	assert.True(t, resp.Acked())

	got, ok := resp.Record()
	require.True(t, ok)
	assert.Equal(t, rec.Map(), got.Map())

	require.Len(t, srv.requests, 1)

	sent := srv.requests[0]
	assert.Equal(t, "app", sent.App)
	assert.Equal(t, "secret", sent.Key)
	assert.Equal(t, "User", sent.Table)
	assert.Equal(t, wire.QueryLoad, sent.Query)
	assert.Equal(t, "u1", sent.PrimaryKey)
}

func TestDriver_ExecuteSaveSendsPayload(t *testing.T) {
	t.Parallel()

	rec := wire.NewRecord()
	rec.Set("id", "u1")
	rec.Set("age", int64(30))

	mc := minimock.NewController(t)
	srv := newServer(t, "app.store", wire.Ack(nil))

	d := tcs.New(mocks.NewCallerMock(mc).CallMock.Set(srv.call), tcs.WithFunction("app.store"))

	resp, err := d.Execute(context.Background(), wire.Request{
		Table: "User", Query: wire.QuerySave, PrimaryKey: "u1", Payload: rec,
	})
	require.NoError(t, err)
	assert.True(t, resp.Acked())

	require.Len(t, srv.requests, 1)
	require.NotNil(t, srv.requests[0].Payload)
	assert.Equal(t, []string{"id", "age"}, srv.requests[0].Payload.Keys())
}

func TestDriver_ExecutePassesNack(t *testing.T) {
	t.Parallel()

	srv := newServer(t, tcs.DefaultFunction, wire.NotFoundResponse())
	caller := mocks.NewCallerMock(minimock.NewController(t)).CallMock.Set(srv.call)

	resp, err := tcs.New(caller).Execute(context.Background(), wire.Request{
		Table: "User", Query: wire.QueryRemove, PrimaryKey: 7,
	})
	require.NoError(t, err)
	assert.True(t, resp.NotFound())
}

func TestDriver_ExecuteInvalidRequest(t *testing.T) {
	t.Parallel()

	caller := mocks.NewCallerMock(minimock.NewController(t))

	resp, err := tcs.New(caller).Execute(context.Background(), wire.Request{
		Table: "User", Query: wire.QueryLoad,
	})
	require.NoError(t, err)
	assert.False(t, resp.Acked())
	assert.Equal(t, wire.InvalidRequestCode, resp.Code)
	assert.Zero(t, caller.CallBeforeCounter())
}

func TestDriver_ExecuteCallError(t *testing.T) {
	t.Parallel()

	callErr := errors.New("connection refused")

	caller := mocks.NewCallerMock(minimock.NewController(t)).CallMock.
		ExpectFunctionParam2(tcs.DefaultFunction).
		Return(callErr)

	_, err := tcs.New(caller).Execute(context.Background(), wire.Request{
		Table: "User", Query: wire.QuerySelectAll,
	})
	require.ErrorIs(t, err, callErr)
}

func TestDriver_ExecuteEmptyResult(t *testing.T) {
	t.Parallel()

	srv := newServer(t, tcs.DefaultFunction)
	caller := mocks.NewCallerMock(minimock.NewController(t)).CallMock.Set(srv.call)

	_, err := tcs.New(caller).Execute(context.Background(), wire.Request{
		Table: "User", Query: wire.QuerySelectAll,
	})
	require.ErrorIs(t, err, tcs.ErrEmptyResult)

	var decodingErr tcs.DecodingError
	require.ErrorAs(t, err, &decodingErr)
	assert.Equal(t, tcs.DefaultFunction, decodingErr.Text)
}

func TestDriver_ExecuteEncodingError(t *testing.T) {
	t.Parallel()

	rec := wire.NewRecord()
	rec.Set("ch", make(chan int))

	caller := mocks.NewCallerMock(minimock.NewController(t))

	_, err := tcs.New(caller).Execute(context.Background(), wire.Request{
		Table: "User", Query: wire.QueryInsert, PrimaryKey: 1, Payload: rec,
	})

	var encodingErr tcs.EncodingError
	require.ErrorAs(t, err, &encodingErr)
	assert.Equal(t, "INSERT", encodingErr.Text)
	assert.Zero(t, caller.CallBeforeCounter())
}

func TestDriver_CloseWithoutPool(t *testing.T) {
	t.Parallel()

	require.NoError(t, tcs.New(mocks.NewCallerMock(minimock.NewController(t))).Close())
}
