package wire_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/tarantool/go-recstore/wire"
)

func sampleRecord() *wire.Record {
	rec := wire.NewRecord()
	rec.Set("id", "u1")
	rec.Set("name", "Ann")
	rec.Set("age", 30)
	rec.Set("tags", []any{"a", "b"})

	return rec
}

func TestRecord_Order(t *testing.T) {
	t.Parallel()

	rec := sampleRecord()
	rec.Set("name", "Bob")

	assert.Equal(t, []string{"id", "name", "age", "tags"}, rec.Keys())
	assert.Equal(t, 4, rec.Len())

	v, ok := rec.Get("name")
	require.True(t, ok)
	assert.Equal(t, "Bob", v)

	rec.Delete("name")
	rec.Delete("missing")
	assert.Equal(t, []string{"id", "age", "tags"}, rec.Keys())

	_, ok = rec.Get("name")
	assert.False(t, ok)
}

func TestRecordFromMap(t *testing.T) {
	t.Parallel()

	rec := wire.RecordFromMap(map[string]any{"b": 2, "a": 1, "c": 3})
	assert.Equal(t, []string{"a", "b", "c"}, rec.Keys())
	assert.Equal(t, map[string]any{"a": 1, "b": 2, "c": 3}, rec.Map())
}

func TestRecord_NilSafe(t *testing.T) {
	t.Parallel()

	var rec *wire.Record

	assert.Equal(t, 0, rec.Len())
	assert.Nil(t, rec.Keys())
	assert.Empty(t, rec.Map())

	_, ok := rec.Get("x")
	assert.False(t, ok)

	var zero wire.Record
	zero.Set("x", 1)
	assert.Equal(t, []string{"x"}, zero.Keys())
}

func TestRecord_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(sampleRecord())
	require.NoError(t, err)
	assert.Equal(t, `{"id":"u1","name":"Ann","age":30,"tags":["a","b"]}`, string(data))

	var decoded wire.Record
	require.NoError(t, json.Unmarshal([]byte(`{"z":1,"a":"x","m":[1,2]}`), &decoded))
	assert.Equal(t, []string{"z", "a", "m"}, decoded.Keys())

	v, _ := decoded.Get("z")
	assert.Equal(t, int64(1), v)

	m, _ := decoded.Get("m")
	assert.Equal(t, []any{int64(1), int64(2)}, m)

	require.Error(t, json.Unmarshal([]byte(`[1,2]`), &decoded))
}

func TestRecord_Msgpack(t *testing.T) {
	t.Parallel()

	data, err := msgpack.Marshal(sampleRecord())
	require.NoError(t, err)

	var decoded wire.Record
	require.NoError(t, msgpack.Unmarshal(data, &decoded))
	assert.Equal(t, []string{"id", "name", "age", "tags"}, decoded.Keys())

	name, _ := decoded.Get("name")
	assert.Equal(t, "Ann", name)

	tags, _ := decoded.Get("tags")
	assert.Equal(t, []any{"a", "b"}, tags)
}

func TestRecord_YAML(t *testing.T) {
	t.Parallel()

	data, err := yaml.Marshal(sampleRecord())
	require.NoError(t, err)
	assert.Equal(t, "id: u1\nname: Ann\nage: 30\ntags:\n    - a\n    - b\n", string(data))

	var decoded wire.Record
	require.NoError(t, yaml.Unmarshal([]byte("b: 1\na: two\n"), &decoded))
	assert.Equal(t, []string{"b", "a"}, decoded.Keys())

	require.Error(t, yaml.Unmarshal([]byte("- 1\n- 2\n"), &decoded))
}
