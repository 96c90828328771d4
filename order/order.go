// Package order describes how search results are sorted.
package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	// ErrEmptyField is returned when an order term has no field name.
	ErrEmptyField = errors.New("empty field name")
	// ErrUnknownDirection is returned when a direction code is unknown.
	ErrUnknownDirection = errors.New("unknown direction")
)

// Direction is the sort direction of a term.
type Direction int

const (
	// Ascending sorts from the smallest value.
	Ascending Direction = iota
	// Descending sorts from the largest value.
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ASC"
	case Descending:
		return "DESC"
	default:
		return "Unknown"
	}
}

// Code returns the wire code of the direction.
func (d Direction) Code() string {
	return d.String()
}

// ParseDirection returns the direction for a wire code. Matching is case
// insensitive.
func ParseDirection(code string) (Direction, error) {
	switch strings.ToUpper(code) {
	case "ASC":
		return Ascending, nil
	case "DESC":
		return Descending, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, code)
	}
}

var (
	_ msgpack.CustomEncoder = Term{} //nolint:exhaustruct
	_ json.Marshaler        = Term{} //nolint:exhaustruct
)

// Term orders results by a single field.
type Term struct {
	field     string
	direction Direction
}

// NewTerm creates an order term. The field name must not be empty.
func NewTerm(field string, direction Direction) (Term, error) {
	if field == "" {
		return Term{}, ErrEmptyField
	}

	if direction != Ascending && direction != Descending {
		return Term{}, fmt.Errorf("%w: %d", ErrUnknownDirection, direction)
	}

	return Term{field: field, direction: direction}, nil
}

// Asc orders by field ascending.
func Asc(field string) Term {
	return Term{field: field, direction: Ascending}
}

// Desc orders by field descending.
func Desc(field string) Term {
	return Term{field: field, direction: Descending}
}

// Field returns the field name.
func (t Term) Field() string {
	return t.field
}

// Direction returns the sort direction.
func (t Term) Direction() Direction {
	return t.direction
}

// Wire returns the wire form, a single-entry map from field to direction.
func (t Term) Wire() map[string]string {
	return map[string]string{t.field: t.direction.Code()}
}

// Text returns the text form, e.g. `name ASC`.
func (t Term) Text() string {
	return t.field + " " + t.direction.Code()
}

// MarshalJSON implements json.Marshaler.
func (t Term) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Wire()) //nolint:wrapcheck
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (t Term) EncodeMsgpack(encoder *msgpack.Encoder) error {
	return encoder.Encode(t.Wire()) //nolint:wrapcheck
}

// WireAll returns the wire forms of terms in order.
func WireAll(terms ...Term) []map[string]string {
	out := make([]map[string]string, 0, len(terms))
	for _, t := range terms {
		out = append(out, t.Wire())
	}

	return out
}

// TextAll returns the comma joined text forms of terms, usable as an
// ORDER BY body.
func TextAll(terms ...Term) string {
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		parts = append(parts, t.Text())
	}

	return strings.Join(parts, ", ")
}

// FromWire rebuilds terms from their wire form. Each entry must hold
// exactly one field.
func FromWire(wire []map[string]string) ([]Term, error) {
	out := make([]Term, 0, len(wire))

	for i, entry := range wire {
		if len(entry) != 1 {
			return nil, fmt.Errorf("order term %d: expected one field, got %d", i, len(entry))
		}

		for field, code := range entry {
			dir, err := ParseDirection(code)
			if err != nil {
				return nil, fmt.Errorf("order term %d: %w", i, err)
			}

			term, err := NewTerm(field, dir)
			if err != nil {
				return nil, fmt.Errorf("order term %d: %w", i, err)
			}

			out = append(out, term)
		}
	}

	return out, nil
}
