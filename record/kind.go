package record

import "reflect"

// Kind classifies how a field travels on the wire.
type Kind int

const (
	// KindScalar is a bool, number or string field written as-is.
	KindScalar Kind = iota
	// KindEnum is a field of a registered enumeration type, written as the
	// constant name.
	KindEnum
	// KindList is a slice field. An empty list is written as the empty-string
	// sentinel.
	KindList
	// KindOther is any other field type, written as-is.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindEnum:
		return "Enum"
	case KindList:
		return "List"
	case KindOther:
		return "Other"
	default:
		return "Unknown"
	}
}

func classify(typ reflect.Type, enums map[reflect.Type]*Enum) Kind {
	if _, ok := enums[typ]; ok {
		return KindEnum
	}

	//nolint:exhaustive
	switch typ.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindScalar
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 {
			return KindOther
		}

		return KindList
	default:
		return KindOther
	}
}
