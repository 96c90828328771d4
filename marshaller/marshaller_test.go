package marshaller_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-recstore/marshaller"
	"github.com/tarantool/go-recstore/record"
	"github.com/tarantool/go-recstore/wire"
)

type Status int

const (
	StatusActive Status = iota
	StatusBlocked
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "ACTIVE"
	case StatusBlocked:
		return "BLOCKED"
	default:
		return "UNKNOWN"
	}
}

type Address struct {
	City string
	Zip  int
}

type User struct {
	ID       string   `record:"id,pk"`
	Name     string   `record:"name"`
	Age      int      `record:"age"`
	Score    float64  `record:"score"`
	Status   Status   `record:"status"`
	History  []Status `record:"history"`
	Tags     []string `record:"tags"`
	Counts   []int    `record:"counts"`
	Address  Address  `record:"address"`
	Internal string   `record:"-"`
}

type Secret struct {
	ID    string `record:"id,pk"`
	token string `record:"token"`
}

type Event struct {
	Name string `record:"name"`
}

type Counter struct {
	ID    int64   `record:"id,pk"`
	Small int8    `record:"small"`
	Count int     `record:"count"`
	Hits  uint16  `record:"hits"`
	Ratio float32 `record:"ratio"`
}

func newMarshaller(t *testing.T) *marshaller.Marshaller {
	t.Helper()

	reg := record.NewRegistry(record.WithEnum(StatusActive, StatusBlocked))

	for _, proto := range []any{User{}, Secret{}, Event{}, Counter{}} {
		_, err := reg.Register(proto)
		require.NoError(t, err)
	}

	return marshaller.New(reg)
}

func newLoggedMarshaller(t *testing.T, buf *bytes.Buffer) *marshaller.Marshaller {
	t.Helper()

	m := newMarshaller(t)

	return marshaller.New(m.Registry(), marshaller.WithLogger(zerolog.New(buf).Level(zerolog.DebugLevel)))
}

func sampleUser() User {
	return User{
		ID:       "u1",
		Name:     "Ann",
		Age:      30,
		Score:    4.5,
		Status:   StatusBlocked,
		History:  []Status{StatusActive, StatusBlocked},
		Tags:     nil,
		Counts:   []int{1, 2},
		Address:  Address{City: "Paris", Zip: 75000},
		Internal: "cache",
	}
}

func TestToWire(t *testing.T) {
	t.Parallel()

	m := newMarshaller(t)

	rec, err := m.ToWire(sampleUser())
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"id", "name", "age", "score", "status", "history", "tags", "counts", "address"},
		rec.Keys())

	expected := map[string]any{
		"id":      "u1",
		"name":    "Ann",
		"age":     30,
		"score":   4.5,
		"status":  "BLOCKED",
		"history": []any{"ACTIVE", "BLOCKED"},
		"tags":    wire.EmptyListSentinel,
		"counts":  []int{1, 2},
		"address": Address{City: "Paris", Zip: 75000},
	}
	assert.Equal(t, expected, rec.Map())
}

func TestToWire_Errors(t *testing.T) {
	t.Parallel()

	m := newMarshaller(t)

	_, err := m.ToWire(&Secret{ID: "s", token: "t"})

	var accessErr marshaller.ReflectionAccessError
	require.ErrorAs(t, err, &accessErr)
	assert.Equal(t, "token", accessErr.Field)
	require.ErrorIs(t, err, marshaller.ErrUnexportedField)

	_, err = m.ToWire((*User)(nil))
	require.ErrorIs(t, err, marshaller.ErrNilRecord)

	_, err = m.ToWire(struct{ A int }{A: 1})
	require.ErrorIs(t, err, record.ErrNotRegistered)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	m := newMarshaller(t)

	in := sampleUser()

	rec, err := m.ToWire(&in)
	require.NoError(t, err)

	var out User
	require.NoError(t, m.FromWire(rec, &out))

	in.Internal = ""
	in.Tags = []string{}

	assert.Equal(t, in, out)
}

func TestFromWire_Priority(t *testing.T) {
	t.Parallel()

	m := newMarshaller(t)

	rec := wire.NewRecord()
	rec.Set("id", "u2")
	rec.Set("status", "blocked")
	rec.Set("history", []any{"active", "Blocked"})
	rec.Set("tags", "")
	rec.Set("counts", []any{float64(1), float64(2), float64(3)})
	rec.Set("age", float64(41))
	rec.Set("score", int8(3))
	rec.Set("address", map[string]any{"City": "Oslo", "Zip": 150})

	var out User
	require.NoError(t, m.FromWire(rec, &out))

	assert.Equal(t, User{
		ID:      "u2",
		Age:     41,
		Score:   3,
		Status:  StatusBlocked,
		History: []Status{StatusActive, StatusBlocked},
		Tags:    []string{},
		Counts:  []int{1, 2, 3},
		Address: Address{City: "Oslo", Zip: 150},
	}, out)
}

func TestFromWire_PartialSuccess(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	m := newLoggedMarshaller(t, &buf)

	rec := wire.NewRecord()
	rec.Set("id", "u3")
	rec.Set("name", "Bob")
	rec.Set("age", "forty")
	rec.Set("status", "SUSPENDED")

	out := User{Age: 7, Status: StatusActive}
	require.NoError(t, m.FromWire(rec, &out))

	assert.Equal(t, "u3", out.ID)
	assert.Equal(t, "Bob", out.Name)
	assert.Equal(t, 7, out.Age)
	assert.Equal(t, StatusActive, out.Status)

	logs := buf.String()
	assert.Contains(t, logs, `"field":"age"`)
	assert.Contains(t, logs, `"declared_type":"int"`)
	assert.Contains(t, logs, `"received_type":"string"`)
	assert.Contains(t, logs, `"field":"status"`)
	assert.Contains(t, logs, "unknown enum constant")
	assert.Contains(t, logs, "field is missing from wire record")
}

func TestFromWire_NumericRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field string
		value any
	}{
		{"int8 overflow", "small", 300},
		{"int8 underflow", "small", int64(-129)},
		{"int8 from large uint", "small", uint64(1 << 63)},
		{"int fraction", "count", 41.9},
		{"int from huge float", "count", 1e300},
		{"int from NaN", "count", math.NaN()},
		{"int fraction as json number", "count", json.Number("41.9")},
		{"uint negative", "hits", -1},
		{"uint16 overflow", "hits", 70000},
		{"uint negative float", "hits", -2.0},
		{"float32 overflow", "ratio", 1e300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			m := newLoggedMarshaller(t, &buf)

			rec := wire.NewRecord()
			rec.Set(tt.field, tt.value)

			before := Counter{ID: 1, Small: 5, Count: 6, Hits: 7, Ratio: 0.5}
			out := before
			require.NoError(t, m.FromWire(rec, &out))

			assert.Equal(t, before, out)

			logs := buf.String()
			assert.Contains(t, logs, "failed to set field")
			assert.Contains(t, logs, `"field":"`+tt.field+`"`)
			assert.Contains(t, logs, "wire value does not match field type")
		})
	}
}

func TestFromWire_NumericInRange(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	m := newLoggedMarshaller(t, &buf)

	rec := wire.NewRecord()
	rec.Set("id", json.Number("12"))
	rec.Set("small", float64(-128))
	rec.Set("count", uint64(41))
	rec.Set("hits", int64(65535))
	rec.Set("ratio", 2)

	var out Counter
	require.NoError(t, m.FromWire(rec, &out))

	assert.Equal(t, Counter{ID: 12, Small: -128, Count: 41, Hits: 65535, Ratio: 2}, out)
	assert.NotContains(t, buf.String(), "failed to set field")
}

func TestFromWire_ListElementOutOfRange(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	m := newLoggedMarshaller(t, &buf)

	rec := wire.NewRecord()
	rec.Set("counts", []any{1, 2.5})

	out := User{Counts: []int{9}}
	require.NoError(t, m.FromWire(rec, &out))

	assert.Equal(t, []int{9}, out.Counts)
	assert.Contains(t, buf.String(), `"field":"counts"`)
}

func TestRoundTrip_JSONLargeKey(t *testing.T) {
	t.Parallel()

	m := newMarshaller(t)

	in := Counter{ID: 9007199254740993, Small: -3, Count: 1 << 40, Hits: 9, Ratio: 0.25}

	rec, err := m.ToWire(&in)
	require.NoError(t, err)

	data, err := rec.MarshalJSON()
	require.NoError(t, err)

	decoded := wire.NewRecord()
	require.NoError(t, decoded.UnmarshalJSON(data))

	pk, ok := decoded.Get("id")
	require.True(t, ok)
	assert.Equal(t, int64(9007199254740993), pk)

	var out Counter
	require.NoError(t, m.FromWire(decoded, &out))

	assert.Equal(t, in, out)
}

func TestFromWire_NilValueResetsField(t *testing.T) {
	t.Parallel()

	m := newMarshaller(t)

	rec := wire.NewRecord()
	rec.Set("name", nil)
	rec.Set("counts", nil)

	out := User{Name: "Ann", Counts: []int{1}, Age: 5}
	require.NoError(t, m.FromWire(rec, &out))

	assert.Empty(t, out.Name)
	assert.Nil(t, out.Counts)
	assert.Equal(t, 5, out.Age)
}

func TestFromWire_InvalidTarget(t *testing.T) {
	t.Parallel()

	m := newMarshaller(t)
	rec := wire.NewRecord()

	tests := []struct {
		name   string
		target any
	}{
		{"nil", nil},
		{"non pointer", User{}},
		{"nil pointer", (*User)(nil)},
		{"pointer to non struct", new(int)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.ErrorIs(t, m.FromWire(rec, tt.target), marshaller.ErrInvalidTarget)
		})
	}

	require.ErrorIs(t, m.FromWire(rec, &struct{ A int }{}), record.ErrNotRegistered)
}

func TestPrimaryKey(t *testing.T) {
	t.Parallel()

	m := newMarshaller(t)

	pk, ok, err := m.PrimaryKey(sampleUser())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "u1", pk)

	pk, ok, err = m.PrimaryKey(&Event{Name: "boot"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, pk)

	var u User
	require.NoError(t, m.SetPrimaryKey(&u, "u9"))
	assert.Equal(t, "u9", u.ID)

	err = m.SetPrimaryKey(&Event{}, "x")

	var pkErr marshaller.PrimaryKeyNotFoundError
	require.ErrorAs(t, err, &pkErr)
	assert.Equal(t, "Event", pkErr.TypeID)

	err = m.SetPrimaryKey(&u, 12)

	var fieldErr marshaller.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "id", fieldErr.Field)

	require.ErrorIs(t, m.SetPrimaryKey(u, "x"), marshaller.ErrInvalidTarget)
}

func TestTyped(t *testing.T) {
	t.Parallel()

	typed := marshaller.NewTyped[User](newMarshaller(t))

	rec, err := typed.ToWire(sampleUser())
	require.NoError(t, err)

	out, err := typed.FromWire(rec)
	require.NoError(t, err)
	assert.Equal(t, "Ann", out.Name)
	assert.Equal(t, StatusBlocked, out.Status)

	pk, ok, err := typed.PrimaryKey(out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "u1", pk)

	assert.Equal(t, &User{}, typed.New())
}
