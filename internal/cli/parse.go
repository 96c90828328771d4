package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tarantool/go-recstore/order"
	"github.com/tarantool/go-recstore/predicate"
)

var (
	// ErrInvalidCondition is returned for a condition argument that is not
	// of the form field:OP:value.
	ErrInvalidCondition = errors.New("invalid condition")
	// ErrDanglingConnective is returned when a chain starts or ends with a
	// connective, or has two in a row.
	ErrDanglingConnective = errors.New("connective without condition")
)

// parseValue reads an operand. Integers, finite floats and booleans are typed,
// 'c' is a character, "..." a string with the quotes removed, anything else
// a plain string.
func parseValue(text string) any {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i
	}

	if f, err := strconv.ParseFloat(text, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}

	runes := []rune(text)

	switch {
	case text == "true", text == "false":
		return text == "true"
	case text == "null":
		return nil
	case len(runes) == 3 && runes[0] == '\'' && runes[2] == '\'':
		return predicate.Char(runes[1])
	case len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"':
		return text[1 : len(text)-1]
	default:
		return text
	}
}

// parseCondition reads field:OP:value. BETWEEN and IN take comma separated
// values.
func parseCondition(arg string) (*predicate.Predicate, error) {
	parts := strings.SplitN(arg, ":", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w %q: expected field:OP:value", ErrInvalidCondition, arg)
	}

	op, err := predicate.ParseOp(strings.ToUpper(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidCondition, arg, err)
	}

	p := predicate.New(parts[0])

	if op == predicate.OpBetween || op == predicate.OpIn {
		raw := strings.Split(parts[2], ",")

		values := make([]any, 0, len(raw))
		for _, v := range raw {
			values = append(values, parseValue(v))
		}

		if op == predicate.OpIn {
			return p.In(values...), nil
		}

		if len(values) != 2 {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidCondition, arg, predicate.ErrArityMismatch)
		}

		return p.Between(values[0], values[1]), nil
	}

	value := parseValue(parts[2])

	switch op {
	case predicate.OpNotEqual:
		p.NotEqual(value)
	case predicate.OpLess:
		p.Less(value)
	case predicate.OpLessOrEqual:
		p.LessOrEqual(value)
	case predicate.OpGreater:
		p.Greater(value)
	case predicate.OpGreaterOrEqual:
		p.GreaterOrEqual(value)
	default:
		p.Equal(value)
	}

	return p, nil
}

// parseWhere reads a chain of conditions separated by and/or. Adjacent
// conditions without a connective are joined with and. No arguments yield
// a nil predicate.
func parseWhere(args []string) (*predicate.Predicate, error) {
	var (
		head    *predicate.Predicate
		pending = predicate.And
		linked  = true
	)

	for _, arg := range args {
		if connective, err := predicate.ParseConnective(strings.ToUpper(arg)); err == nil {
			if head == nil || linked {
				return nil, fmt.Errorf("%w: %q", ErrDanglingConnective, arg)
			}

			pending = connective
			linked = true

			continue
		}

		p, err := parseCondition(arg)
		if err != nil {
			return nil, err
		}

		switch {
		case head == nil:
			head = p
		case pending == predicate.Or:
			head.Or(p)
		default:
			head.And(p)
		}

		pending = predicate.And
		linked = false
	}

	if head != nil && linked {
		return nil, fmt.Errorf("%w: chain ends with a connective", ErrDanglingConnective)
	}

	return head, nil
}

// parseOrder reads field or field:DIRECTION terms.
func parseOrder(specs []string) ([]order.Term, error) {
	terms := make([]order.Term, 0, len(specs))

	for _, raw := range specs {
		field, dir, found := strings.Cut(raw, ":")

		direction := order.Ascending

		if found {
			parsed, err := order.ParseDirection(dir)
			if err != nil {
				return nil, err //nolint:wrapcheck
			}

			direction = parsed
		}

		term, err := order.NewTerm(field, direction)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		terms = append(terms, term)
	}

	return terms, nil
}
