package predicate

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingOperator is returned when a condition is rendered before any
	// operator was set on it.
	ErrMissingOperator = errors.New("no operator set")
	// ErrArityMismatch is returned when the operand count does not match
	// the operator.
	ErrArityMismatch = errors.New("operand count mismatch")
	// ErrEmptyField is returned when a condition has no field name.
	ErrEmptyField = errors.New("empty field name")
	// ErrUnknownOperator is returned when the operator is unknown.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrUnknownConnective is returned when the connective is unknown.
	ErrUnknownConnective = errors.New("unknown connective")
)

// MalformedPredicateError is returned when a condition cannot be rendered
// into its wire or text form.
type MalformedPredicateError struct {
	Field  string
	Op     string
	Reason string
	parent error
}

func errMalformed(field, op, reason string, parent error) error {
	return MalformedPredicateError{
		Field:  field,
		Op:     op,
		Reason: reason,
		parent: parent,
	}
}

// Error returns a string representation of the error.
func (e MalformedPredicateError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("malformed predicate on field %q (%s): %s", e.Field, e.Op, e.parent)
	}

	return fmt.Sprintf("malformed predicate on field %q (%s): %s, %s", e.Field, e.Op, e.parent, e.Reason)
}

// Unwrap returns the sentinel error describing the problem.
func (e MalformedPredicateError) Unwrap() error {
	return e.parent
}

func errUnknownOperator(code string) error {
	return fmt.Errorf("%w: %q", ErrUnknownOperator, code)
}

func errUnknownConnective(code string) error {
	return fmt.Errorf("%w: %q", ErrUnknownConnective, code)
}

// WireDecodingError is returned when a wire form cannot be decoded back
// into a predicate.
type WireDecodingError struct {
	Position int
	Text     string
	Err      error
}

// Error returns the error message.
func (e WireDecodingError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to decode predicate at position %d: %s", e.Position, e.Text)
	}

	return fmt.Sprintf("failed to decode predicate at position %d, %s: %s", e.Position, e.Text, e.Err)
}

// Unwrap returns the underlying error.
func (e WireDecodingError) Unwrap() error {
	return e.Err
}

func errWireDecoding(position int, text string, err error) error {
	return WireDecodingError{
		Position: position,
		Text:     text,
		Err:      err,
	}
}
