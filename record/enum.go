package record

import (
	"fmt"
	"reflect"
	"strings"
)

// Enum is the closed set of constants of an enumeration type. Constants are
// identified on the wire by their String() name.
type Enum struct {
	typ       reflect.Type
	constants []reflect.Value
	names     []string
}

func newEnum[T fmt.Stringer](constants []T) *Enum {
	enum := &Enum{
		typ:       reflect.TypeOf((*T)(nil)).Elem(),
		constants: make([]reflect.Value, 0, len(constants)),
		names:     make([]string, 0, len(constants)),
	}

	for _, c := range constants {
		enum.constants = append(enum.constants, reflect.ValueOf(c))
		enum.names = append(enum.names, c.String())
	}

	return enum
}

// Type returns the enumeration type.
func (e *Enum) Type() reflect.Type {
	return e.typ
}

// Names returns the constant names in registration order.
func (e *Enum) Names() []string {
	return append([]string(nil), e.names...)
}

// Resolve returns the constant whose name matches text, ignoring case.
func (e *Enum) Resolve(text string) (reflect.Value, bool) {
	for i, name := range e.names {
		if strings.EqualFold(name, text) {
			return e.constants[i], true
		}
	}

	return reflect.Value{}, false
}

// Name returns the constant name of v.
func (e *Enum) Name(v reflect.Value) (string, bool) {
	if !v.IsValid() || v.Type() != e.typ {
		return "", false
	}

	for i, c := range e.constants {
		if c.Equal(v) {
			return e.names[i], true
		}
	}

	return "", false
}
