package predicate

import (
	"fmt"
	"slices"

	"github.com/tarantool/go-option"
)

// ConditionWire is the wire form of a single condition.
type ConditionWire struct {
	Field  string `json:"c" msgpack:"c" yaml:"c"`
	Op     string `json:"x" msgpack:"x" yaml:"x"`
	Values []any  `json:"v" msgpack:"v" yaml:"v"`
}

// Condition is a single comparison of a named field against one or more
// operands. The setters mutate the node they are called on and return it,
// so a condition is a builder until it is attached to a Predicate, which
// keeps its own copy.
type Condition struct {
	field    string
	op       option.Generic[Op]
	operands []any
}

// NewCondition creates a condition on the given field with no operator set.
func NewCondition(field string) *Condition {
	return &Condition{
		field:    field,
		op:       option.None[Op](),
		operands: nil,
	}
}

func (c *Condition) set(op Op, operands []any) *Condition {
	c.op = option.Some(op)
	c.operands = slices.Clone(operands)

	return c
}

// Equal sets the condition to field = value.
func (c *Condition) Equal(value any) *Condition {
	return c.set(OpEqual, []any{value})
}

// NotEqual sets the condition to field <> value.
func (c *Condition) NotEqual(value any) *Condition {
	return c.set(OpNotEqual, []any{value})
}

// Less sets the condition to field < value.
func (c *Condition) Less(value any) *Condition {
	return c.set(OpLess, []any{value})
}

// LessOrEqual sets the condition to field <= value.
func (c *Condition) LessOrEqual(value any) *Condition {
	return c.set(OpLessOrEqual, []any{value})
}

// Greater sets the condition to field > value.
func (c *Condition) Greater(value any) *Condition {
	return c.set(OpGreater, []any{value})
}

// GreaterOrEqual sets the condition to field >= value.
func (c *Condition) GreaterOrEqual(value any) *Condition {
	return c.set(OpGreaterOrEqual, []any{value})
}

// Between sets the condition to an inclusive range from low to high.
func (c *Condition) Between(low, high any) *Condition {
	return c.set(OpBetween, []any{low, high})
}

// In sets the condition to membership in values.
func (c *Condition) In(values ...any) *Condition {
	return c.set(OpIn, values)
}

// Field returns the field name the condition applies to.
func (c *Condition) Field() string {
	return c.field
}

// Op returns the operation and whether one was set.
func (c *Condition) Op() (Op, bool) {
	return c.op.UnwrapOr(OpEqual), c.op.IsSome()
}

// Operands returns a copy of the operands.
func (c *Condition) Operands() []any {
	return slices.Clone(c.operands)
}

func (c *Condition) clone() *Condition {
	if c == nil {
		return nil
	}

	return &Condition{
		field:    c.field,
		op:       c.op,
		operands: slices.Clone(c.operands),
	}
}

// Validate checks that an operator is set, the field is named and the
// operand count matches the operator.
func (c *Condition) Validate() error {
	if !c.op.IsSome() {
		return errMalformed(c.field, "none", "", ErrMissingOperator)
	}

	op := c.op.UnwrapOr(OpEqual)

	switch {
	case c.field == "":
		return errMalformed(c.field, op.String(), "", ErrEmptyField)
	case !op.Valid():
		return errMalformed(c.field, op.String(), "", ErrUnknownOperator)
	case !op.CheckArity(len(c.operands)):
		reason := fmt.Sprintf("expected %s, got %d", op.arity(), len(c.operands))
		return errMalformed(c.field, op.String(), reason, ErrArityMismatch)
	}

	return nil
}

// Wire returns the wire form of the condition. Operands keep their types.
func (c *Condition) Wire() (ConditionWire, error) {
	if err := c.Validate(); err != nil {
		return ConditionWire{}, err
	}

	return ConditionWire{
		Field:  c.field,
		Op:     c.op.UnwrapOr(OpEqual).Code(),
		Values: slices.Clone(c.operands),
	}, nil
}

// Text returns the text-query form of the condition, e.g. `age > 18`,
// `price between (10,20)` or `id in (1,2,3)`.
func (c *Condition) Text() (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	op := c.op.UnwrapOr(OpEqual)

	switch op {
	case OpBetween, OpIn:
		return c.field + " " + op.Token() + " (" + literals(c.operands) + ")", nil
	default:
		return c.field + " " + op.Token() + " " + literal(c.operands[0]), nil
	}
}
