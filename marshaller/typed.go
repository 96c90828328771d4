package marshaller

import "github.com/tarantool/go-recstore/wire"

// Typed is a Marshaller bound to the record struct type T.
type Typed[T any] struct {
	m *Marshaller
}

// NewTyped binds m to T. T must be a struct type registered in m's registry.
func NewTyped[T any](m *Marshaller) Typed[T] {
	return Typed[T]{m: m}
}

// New returns a pointer to a zero T.
func (t Typed[T]) New() *T {
	return new(T)
}

// ToWire encodes rec.
func (t Typed[T]) ToWire(rec T) (*wire.Record, error) {
	return t.m.ToWire(&rec)
}

// FromWire decodes in into a new T.
func (t Typed[T]) FromWire(in *wire.Record) (T, error) {
	out := t.New()

	if err := t.m.FromWire(in, out); err != nil {
		return zero[T](), err
	}

	return *out, nil
}

// PrimaryKey returns the primary key value of rec.
func (t Typed[T]) PrimaryKey(rec T) (any, bool, error) {
	return t.m.PrimaryKey(&rec)
}
