// Package match evaluates search requests over wire records for drivers
// whose backend cannot run them natively.
package match

import (
	"cmp"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/tarantool/go-recstore/order"
	"github.com/tarantool/go-recstore/predicate"
	"github.com/tarantool/go-recstore/wire"
)

// normalize brings numbers to float64 and characters to strings, so values
// decoded from different wire formats compare equal.
func normalize(value any) any {
	switch v := value.(type) {
	case predicate.Char:
		return v.String()
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}

		return v.String()
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case float32:
		return float64(v)
	default:
		return value
	}
}

// compareValues orders two values of the same kind. It reports false when
// the values cannot be ordered.
func compareValues(a, b any) (int, bool) {
	a, b = normalize(a), normalize(b)

	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			return cmp.Compare(av, bv), true
		}
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv), true
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0, true
			case !av:
				return -1, true
			default:
				return 1, true
			}
		}
	}

	if reflect.DeepEqual(a, b) {
		return 0, true
	}

	return 0, false
}

func equal(a, b any) bool {
	c, ok := compareValues(a, b)
	return ok && c == 0
}

func ordered(a, b any, accept func(int) bool) bool {
	c, ok := compareValues(a, b)
	return ok && accept(c)
}

func evalCondition(c *predicate.Condition, rec *wire.Record) bool {
	value, ok := rec.Get(c.Field())
	if !ok {
		return false
	}

	op, _ := c.Op()
	operands := c.Operands()

	switch op {
	case predicate.OpEqual:
		return equal(value, operands[0])
	case predicate.OpNotEqual:
		return !equal(value, operands[0])
	case predicate.OpLess:
		return ordered(value, operands[0], func(c int) bool { return c < 0 })
	case predicate.OpLessOrEqual:
		return ordered(value, operands[0], func(c int) bool { return c <= 0 })
	case predicate.OpGreater:
		return ordered(value, operands[0], func(c int) bool { return c > 0 })
	case predicate.OpGreaterOrEqual:
		return ordered(value, operands[0], func(c int) bool { return c >= 0 })
	case predicate.OpBetween:
		return ordered(value, operands[0], func(c int) bool { return c >= 0 }) &&
			ordered(value, operands[1], func(c int) bool { return c <= 0 })
	case predicate.OpIn:
		for _, operand := range operands {
			if equal(value, operand) {
				return true
			}
		}

		return false
	default:
		return false
	}
}

// Matches evaluates where against rec. A nil predicate matches everything.
func Matches(where *predicate.Predicate, rec *wire.Record) (bool, error) {
	if where == nil {
		return true, nil
	}

	return predicate.Fold(where,
		func(c *predicate.Condition) (bool, error) {
			return evalCondition(c, rec), nil
		},
		func(conn predicate.Connective, left, right bool) bool {
			if conn == predicate.Or {
				return left || right
			}

			return left && right
		},
	)
}

// CompareByTerms orders records by terms. Records missing a field sort
// before those that have it.
func CompareByTerms(terms []order.Term, a, b *wire.Record) int {
	for _, term := range terms {
		av, aok := a.Get(term.Field())
		bv, bok := b.Get(term.Field())

		var c int

		switch {
		case !aok && !bok:
			c = 0
		case !aok:
			c = -1
		case !bok:
			c = 1
		default:
			var ok bool
			if c, ok = compareValues(av, bv); !ok {
				c = strings.Compare(fmt.Sprint(av), fmt.Sprint(bv))
			}
		}

		if term.Direction() == order.Descending {
			c = -c
		}

		if c != 0 {
			return c
		}
	}

	return 0
}

// Key returns a string identity of a primary key. Numbers of any width map
// to the same key.
func Key(pk any) string {
	v := normalize(pk)
	return fmt.Sprintf("%T:%v", v, v)
}

// Entry is a stored record with its primary key.
type Entry struct {
	PrimaryKey any
	Record     *wire.Record
}

// Search returns the primary keys of the entries matching the wire
// predicate, ordered by the wire order terms. Entries keep their relative
// order where the terms do not decide.
func Search(where []any, terms []map[string]string, entries []Entry) ([]any, error) {
	var p *predicate.Predicate

	if len(where) > 0 {
		decoded, err := predicate.FromWire(where)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		p = decoded
	}

	orderBy, err := order.FromWire(terms)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	matched := make([]Entry, 0, len(entries))

	for _, entry := range entries {
		ok, err := Matches(p, entry.Record)
		if err != nil {
			return nil, err
		}

		if ok {
			matched = append(matched, entry)
		}
	}

	slices.SortStableFunc(matched, func(a, b Entry) int {
		return CompareByTerms(orderBy, a.Record, b.Record)
	})

	keys := make([]any, 0, len(matched))
	for _, entry := range matched {
		keys = append(keys, entry.PrimaryKey)
	}

	return keys, nil
}
