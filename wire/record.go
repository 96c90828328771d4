package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// EmptyListSentinel is written in place of an empty list field.
const EmptyListSentinel = ""

var (
	_ json.Marshaler        = (*Record)(nil)
	_ json.Unmarshaler      = (*Record)(nil)
	_ msgpack.CustomEncoder = (*Record)(nil)
	_ msgpack.CustomDecoder = (*Record)(nil)
	_ yaml.Marshaler        = (*Record)(nil)
	_ yaml.Unmarshaler      = (*Record)(nil)
)

var (
	errRecordNotObject        = errors.New("record must be an object")
	errRecordKeyNotString     = errors.New("record key must be a string")
	errRecordUnexpectedLength = errors.New("unexpected record length")
)

// Record is the wire form of a record: field names mapped to values, kept in
// insertion order.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{
		keys:   nil,
		values: make(map[string]any),
	}
}

// RecordFromMap creates a record from m with keys in sorted order.
func RecordFromMap(m map[string]any) *Record {
	r := NewRecord()

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	for _, k := range keys {
		r.Set(k, m[k])
	}

	return r
}

// Set stores value under key. A new key is appended, an existing key keeps
// its position.
func (r *Record) Set(key string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}

	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}

	r.values[key] = value
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}

	v, ok := r.values[key]

	return v, ok
}

// Delete removes key.
func (r *Record) Delete(key string) {
	if _, ok := r.values[key]; !ok {
		return
	}

	delete(r.values, key)
	r.keys = slices.DeleteFunc(r.keys, func(k string) bool { return k == key })
}

// Keys returns the keys in order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}

	return slices.Clone(r.keys)
}

// Len returns the number of keys.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}

	return len(r.keys)
}

// Clone returns a copy of the record. Values are shared.
func (r *Record) Clone() *Record {
	out := NewRecord()
	for _, k := range r.Keys() {
		out.Set(k, r.values[k])
	}

	return out
}

// Map returns the record as a plain map.
func (r *Record) Map() map[string]any {
	out := make(map[string]any, r.Len())
	if r == nil {
		return out
	}

	for _, k := range r.keys {
		out[k] = r.values[k]
	}

	return out
}

// MarshalJSON implements json.Marshaler. Keys are written in order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range r.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal key %q: %w", k, err)
		}

		val, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal value of %q: %w", k, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. Keys keep document order.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read record: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errRecordNotObject
	}

	*r = *NewRecord()

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read record key: %w", err)
		}

		key, ok := tok.(string)
		if !ok {
			return errRecordKeyNotString
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("failed to read value of %q: %w", key, err)
		}

		r.Set(key, NormalizeNumbers(value))
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to read record end: %w", err)
	}

	return nil
}

// NormalizeNumbers replaces the json.Number values of a decoded document with
// int64, or uint64 past the int64 range, and float64 for everything else.
func NormalizeNumbers(value any) any {
	switch v := value.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}

		if u, err := strconv.ParseUint(v.String(), 10, 64); err == nil {
			return u
		}

		if f, err := v.Float64(); err == nil {
			return f
		}

		return v.String()
	case []any:
		for i := range v {
			v[i] = NormalizeNumbers(v[i])
		}

		return v
	case map[string]any:
		for k := range v {
			v[k] = NormalizeNumbers(v[k])
		}

		return v
	default:
		return value
	}
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (r *Record) EncodeMsgpack(encoder *msgpack.Encoder) error {
	if err := encoder.EncodeMapLen(r.Len()); err != nil {
		return err //nolint:wrapcheck
	}

	for _, k := range r.Keys() {
		if err := encoder.EncodeString(k); err != nil {
			return err //nolint:wrapcheck
		}

		if err := encoder.Encode(r.values[k]); err != nil {
			return fmt.Errorf("failed to encode value of %q: %w", k, err)
		}
	}

	return nil
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (r *Record) DecodeMsgpack(decoder *msgpack.Decoder) error {
	n, err := decoder.DecodeMapLen()
	if err != nil {
		return err //nolint:wrapcheck
	}

	*r = *NewRecord()

	for range max(n, 0) {
		key, err := decoder.DecodeString()
		if err != nil {
			return fmt.Errorf("failed to decode record key: %w", err)
		}

		value, err := decoder.DecodeInterface()
		if err != nil {
			return fmt.Errorf("failed to decode value of %q: %w", key, err)
		}

		r.Set(key, value)
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"} //nolint:exhaustruct

	for _, k := range r.Keys() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k} //nolint:exhaustruct

		value := &yaml.Node{} //nolint:exhaustruct
		if err := value.Encode(r.values[k]); err != nil {
			return nil, fmt.Errorf("failed to encode value of %q: %w", k, err)
		}

		node.Content = append(node.Content, key, value)
	}

	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errRecordNotObject
	}

	if len(node.Content)%2 != 0 {
		return errRecordUnexpectedLength
	}

	*r = *NewRecord()

	for i := 0; i < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("failed to decode record key: %w", err)
		}

		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("failed to decode value of %q: %w", key, err)
		}

		r.Set(key, value)
	}

	return nil
}
