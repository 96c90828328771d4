package predicate

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/tarantool/go-option"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = (*Condition)(nil)
	_ msgpack.CustomEncoder = (*Predicate)(nil)
	_ json.Marshaler        = (*Condition)(nil)
	_ json.Marshaler        = (*Predicate)(nil)
)

const (
	wireFieldKey    = "c"
	wireOperatorKey = "x"
	wireValuesKey   = "v"
)

// EncodeMsgpack implements msgpack.CustomEncoder.
func (c *Condition) EncodeMsgpack(encoder *msgpack.Encoder) error {
	w, err := c.Wire()
	if err != nil {
		return err
	}

	return encoder.Encode(w) //nolint:wrapcheck
}

// MarshalJSON implements json.Marshaler.
func (c *Condition) MarshalJSON() ([]byte, error) {
	w, err := c.Wire()
	if err != nil {
		return nil, err
	}

	return json.Marshal(w) //nolint:wrapcheck
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (p *Predicate) EncodeMsgpack(encoder *msgpack.Encoder) error {
	w, err := p.Wire()
	if err != nil {
		return err
	}

	return encoder.Encode(w) //nolint:wrapcheck
}

// MarshalJSON implements json.Marshaler.
func (p *Predicate) MarshalJSON() ([]byte, error) {
	w, err := p.Wire()
	if err != nil {
		return nil, err
	}

	return json.Marshal(w) //nolint:wrapcheck
}

// FromWire rebuilds a predicate from its wire form. Condition nodes may be
// ConditionWire values or generic maps as produced by JSON and msgpack
// decoders.
func FromWire(wire []any) (*Predicate, error) {
	return fromWire(wire, 0)
}

func fromWire(wire []any, position int) (*Predicate, error) {
	if len(wire) == 0 {
		return nil, errWireDecoding(position, "empty predicate", nil)
	}

	head, err := conditionFromWire(wire[0])
	if err != nil {
		return nil, errWireDecoding(position, "head condition", err)
	}

	out := &Predicate{head: head, links: nil}

	rest := wire[1:]
	if len(rest)%2 != 0 {
		return nil, errWireDecoding(position+len(wire)-1, "connective without predicate", nil)
	}

	for i := 0; i < len(rest); i += 2 {
		pos := position + 1 + i

		code, ok := rest[i].(string)
		if !ok {
			return nil, errWireDecoding(pos, fmt.Sprintf("connective must be a string, got %T", rest[i]), nil)
		}

		connective, err := ParseConnective(code)
		if err != nil {
			return nil, errWireDecoding(pos, "connective", err)
		}

		subWire, ok := rest[i+1].([]any)
		if !ok {
			return nil, errWireDecoding(pos+1, fmt.Sprintf("linked predicate must be a list, got %T", rest[i+1]), nil)
		}

		sub, err := fromWire(subWire, pos+1)
		if err != nil {
			return nil, err
		}

		out.links = append(out.links, Link{Connective: connective, Predicate: sub})
	}

	return out, nil
}

func conditionFromWire(node any) (*Condition, error) {
	var w ConditionWire

	switch n := node.(type) {
	case ConditionWire:
		w = n
	case *ConditionWire:
		if n == nil {
			return nil, ErrMissingOperator
		}

		w = *n
	case map[string]any:
		field, _ := n[wireFieldKey].(string)
		code, _ := n[wireOperatorKey].(string)
		values, _ := n[wireValuesKey].([]any)
		w = ConditionWire{Field: field, Op: code, Values: values}
	default:
		return nil, fmt.Errorf("%w: unsupported condition node %T", ErrMissingOperator, node)
	}

	op, err := ParseOp(w.Op)
	if err != nil {
		return nil, err
	}

	c := &Condition{
		field:    w.Field,
		op:       option.Some(op),
		operands: slices.Clone(w.Values),
	}

	return c, c.Validate()
}
