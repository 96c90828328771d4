package predicate

import (
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Char is a single character operand. It renders single-quoted in the text
// form and travels as a one-character string on the wire.
type Char rune

var (
	_ msgpack.CustomEncoder = Char(0)
)

// String returns the character as a string.
func (c Char) String() string {
	return string(rune(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Char) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (c Char) EncodeMsgpack(encoder *msgpack.Encoder) error {
	return encoder.EncodeString(c.String()) //nolint:wrapcheck
}

// literal renders an operand as a text-query literal. Strings are wrapped in
// double quotes and characters in single quotes; an embedded quote of the
// same kind is doubled.
func literal(value any) string {
	switch val := value.(type) {
	case nil:
		return "null"
	case string:
		return `"` + strings.ReplaceAll(val, `"`, `""`) + `"`
	case Char:
		return "'" + strings.ReplaceAll(val.String(), "'", "''") + "'"
	default:
		return fmt.Sprint(val)
	}
}

func literals(values []any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, literal(v))
	}

	return strings.Join(parts, ",")
}
