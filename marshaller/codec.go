package marshaller

import (
	"bytes"
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Codec turns values into bytes and back. Drivers that persist records use a
// Codec to choose the stored format.
type Codec interface {
	Name() string
	Marshal(data any) ([]byte, error)
	Unmarshal(data []byte, out any) error
}

// JSONCodec encodes values as JSON.
type JSONCodec struct{}

// NewJSONCodec creates a JSON codec.
func NewJSONCodec() Codec {
	return JSONCodec{}
}

// Name implements Codec.
func (JSONCodec) Name() string {
	return "json"
}

// Marshal implements Codec.
func (c JSONCodec) Marshal(data any) ([]byte, error) {
	marshalled, err := json.Marshal(data)
	if err != nil {
		return nil, errMarshal(c.Name(), err)
	}

	return marshalled, nil
}

// Unmarshal implements Codec. Numbers decoded into untyped values are
// json.Number; see wire.NormalizeNumbers.
func (c JSONCodec) Unmarshal(data []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	return errUnmarshal(c.Name(), dec.Decode(out))
}

// MsgpackCodec encodes values as MessagePack.
type MsgpackCodec struct{}

// NewMsgpackCodec creates a MessagePack codec.
func NewMsgpackCodec() Codec {
	return MsgpackCodec{}
}

// Name implements Codec.
func (MsgpackCodec) Name() string {
	return "msgpack"
}

// Marshal implements Codec.
func (c MsgpackCodec) Marshal(data any) ([]byte, error) {
	marshalled, err := msgpack.Marshal(data)
	if err != nil {
		return nil, errMarshal(c.Name(), err)
	}

	return marshalled, nil
}

// Unmarshal implements Codec.
func (c MsgpackCodec) Unmarshal(data []byte, out any) error {
	return errUnmarshal(c.Name(), msgpack.Unmarshal(data, out))
}

// YAMLCodec encodes values as YAML.
type YAMLCodec struct{}

// NewYAMLCodec creates a YAML codec.
func NewYAMLCodec() Codec {
	return YAMLCodec{}
}

// Name implements Codec.
func (YAMLCodec) Name() string {
	return "yaml"
}

// Marshal implements Codec.
func (c YAMLCodec) Marshal(data any) ([]byte, error) {
	marshalled, err := yaml.Marshal(data)
	if err != nil {
		return nil, errMarshal(c.Name(), err)
	}

	return marshalled, nil
}

// Unmarshal implements Codec.
func (c YAMLCodec) Unmarshal(data []byte, out any) error {
	return errUnmarshal(c.Name(), yaml.Unmarshal(data, out))
}

// CodecByName returns the codec registered under name.
func CodecByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return NewJSONCodec(), true
	case "msgpack":
		return NewMsgpackCodec(), true
	case "yaml":
		return NewYAMLCodec(), true
	default:
		return nil, false
	}
}

// TypedCodec is a Codec bound to a single type.
type TypedCodec[T any] struct {
	codec Codec
}

// NewTypedCodec binds codec to T.
func NewTypedCodec[T any](codec Codec) TypedCodec[T] {
	return TypedCodec[T]{codec: codec}
}

// Marshal serializes data.
func (c TypedCodec[T]) Marshal(data T) ([]byte, error) {
	return c.codec.Marshal(data) //nolint:wrapcheck
}

// Unmarshal deserializes data into a new T.
func (c TypedCodec[T]) Unmarshal(data []byte) (T, error) {
	var out T

	if err := c.codec.Unmarshal(data, &out); err != nil {
		return zero[T](), err //nolint:wrapcheck
	}

	return out, nil
}

func zero[T any]() T {
	var out T
	return out
}
