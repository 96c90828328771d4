// Package sqlpred renders predicates and order terms as parameterized SQL
// through squirrel. Operands become placeholder arguments, so string
// operands never need quoting.
package sqlpred

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"

	"github.com/tarantool/go-recstore/internal/options"
	"github.com/tarantool/go-recstore/order"
	"github.com/tarantool/go-recstore/predicate"
)

type translatorOptions struct {
	columns map[string]string
	logger  zerolog.Logger
}

// WithColumns maps field names to column names. Fields missing from the
// mapping are used as column names unchanged.
func WithColumns(columns map[string]string) options.OptionCallback[translatorOptions] {
	return func(opts *translatorOptions) {
		opts.columns = columns
	}
}

// WithLogger sets the logger that reports fields missing from the column
// mapping.
func WithLogger(logger zerolog.Logger) options.OptionCallback[translatorOptions] {
	return func(opts *translatorOptions) {
		opts.logger = logger
	}
}

// Translator turns predicates into squirrel expressions.
type Translator struct {
	columns map[string]string
	logger  zerolog.Logger
}

// New creates a translator.
func New(opts ...options.OptionCallback[translatorOptions]) *Translator {
	o := options.ApplyOptions[translatorOptions](func() translatorOptions {
		return translatorOptions{columns: nil, logger: zerolog.Nop()}
	}, opts)

	return &Translator{
		columns: o.columns,
		logger:  o.logger,
	}
}

// ToSqlizer translates p. The chain is grouped strictly left to right, so
// `a AND b OR c` becomes `((a AND b) OR c)`.
func (t *Translator) ToSqlizer(p *predicate.Predicate) (sq.Sqlizer, error) {
	return predicate.Fold(p, t.condition, join) //nolint:wrapcheck
}

// OrderBy returns ORDER BY expressions for SelectBuilder.OrderBy.
func (t *Translator) OrderBy(terms ...order.Term) []string {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		out = append(out, t.col(term.Field())+" "+term.Direction().Code())
	}

	return out
}

// Apply adds the WHERE clause of where, when not nil, and the ORDER BY
// clause of terms to builder.
func (t *Translator) Apply(
	builder sq.SelectBuilder,
	where *predicate.Predicate,
	terms ...order.Term,
) (sq.SelectBuilder, error) {
	if where != nil {
		cond, err := t.ToSqlizer(where)
		if err != nil {
			return builder, err
		}

		builder = builder.Where(cond)
	}

	if len(terms) > 0 {
		builder = builder.OrderBy(t.OrderBy(terms...)...)
	}

	return builder, nil
}

func (t *Translator) condition(c *predicate.Condition) (sq.Sqlizer, error) {
	col := t.col(c.Field())
	operands := c.Operands()

	for i, v := range operands {
		if ch, ok := v.(predicate.Char); ok {
			operands[i] = ch.String()
		}
	}

	op, _ := c.Op()

	switch op {
	case predicate.OpEqual:
		return sq.Eq{col: operands[0]}, nil
	case predicate.OpNotEqual:
		return sq.NotEq{col: operands[0]}, nil
	case predicate.OpLess:
		return sq.Lt{col: operands[0]}, nil
	case predicate.OpLessOrEqual:
		return sq.LtOrEq{col: operands[0]}, nil
	case predicate.OpGreater:
		return sq.Gt{col: operands[0]}, nil
	case predicate.OpGreaterOrEqual:
		return sq.GtOrEq{col: operands[0]}, nil
	case predicate.OpBetween:
		return sq.Expr(col+" BETWEEN ? AND ?", operands[0], operands[1]), nil
	case predicate.OpIn:
		return sq.Eq{col: operands}, nil
	default:
		return nil, fmt.Errorf("%w: %s", predicate.ErrUnknownOperator, op)
	}
}

func join(connective predicate.Connective, acc, next sq.Sqlizer) sq.Sqlizer {
	switch connective {
	case predicate.Or:
		if or, ok := acc.(sq.Or); ok {
			return append(or, next)
		}

		return sq.Or{acc, next}
	default:
		if and, ok := acc.(sq.And); ok {
			return append(and, next)
		}

		return sq.And{acc, next}
	}
}

func (t *Translator) col(field string) string {
	if t.columns == nil {
		return field
	}

	if col, ok := t.columns[field]; ok {
		return col
	}

	t.logger.Warn().Str("field", field).Msg("field has no column mapping, using it as is")

	return field
}

// ToSqlizer translates p with a translator built from opts.
func ToSqlizer(p *predicate.Predicate, opts ...options.OptionCallback[translatorOptions]) (sq.Sqlizer, error) {
	return New(opts...).ToSqlizer(p)
}

// OrderBy returns ORDER BY expressions for terms with a translator built
// from opts.
func OrderBy(terms []order.Term, opts ...options.OptionCallback[translatorOptions]) []string {
	return New(opts...).OrderBy(terms...)
}
