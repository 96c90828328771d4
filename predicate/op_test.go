package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-recstore/predicate"
)

func TestOpString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		op       predicate.Op
		expected string
	}{
		{"OpEqual", predicate.OpEqual, "Equal"},
		{"OpNotEqual", predicate.OpNotEqual, "NotEqual"},
		{"OpLess", predicate.OpLess, "Less"},
		{"OpLessOrEqual", predicate.OpLessOrEqual, "LessOrEqual"},
		{"OpGreater", predicate.OpGreater, "Greater"},
		{"OpGreaterOrEqual", predicate.OpGreaterOrEqual, "GreaterOrEqual"},
		{"OpBetween", predicate.OpBetween, "Between"},
		{"OpIn", predicate.OpIn, "In"},
		{"UnknownOp", predicate.Op(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := tt.op.String()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestOpCodeAndToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		op    predicate.Op
		code  string
		token string
	}{
		{predicate.OpEqual, "EQ", "="},
		{predicate.OpNotEqual, "NOT_EQ", "<>"},
		{predicate.OpLess, "LT", "<"},
		{predicate.OpLessOrEqual, "LT_EQ", "<="},
		{predicate.OpGreater, "GT", ">"},
		{predicate.OpGreaterOrEqual, "GT_EQ", ">="},
		{predicate.OpBetween, "BETWEEN", "between"},
		{predicate.OpIn, "IN", "in"},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.code, tt.op.Code())
			assert.Equal(t, tt.token, tt.op.Token())
			assert.True(t, tt.op.Valid())

			parsed, err := predicate.ParseOp(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.op, parsed)
		})
	}
}

func TestParseOp_Unknown(t *testing.T) {
	t.Parallel()

	_, err := predicate.ParseOp("LIKE")
	require.ErrorIs(t, err, predicate.ErrUnknownOperator)
	assert.False(t, predicate.Op(42).Valid())
	assert.Empty(t, predicate.Op(42).Code())
}

func TestOpCheckArity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		op       predicate.Op
		operands int
		expected bool
	}{
		{"equal one", predicate.OpEqual, 1, true},
		{"equal none", predicate.OpEqual, 0, false},
		{"equal two", predicate.OpEqual, 2, false},
		{"greater or equal one", predicate.OpGreaterOrEqual, 1, true},
		{"between two", predicate.OpBetween, 2, true},
		{"between one", predicate.OpBetween, 1, false},
		{"between three", predicate.OpBetween, 3, false},
		{"in one", predicate.OpIn, 1, true},
		{"in many", predicate.OpIn, 10, true},
		{"in none", predicate.OpIn, 0, false},
		{"unknown", predicate.Op(99), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.op.CheckArity(tt.operands))
		})
	}
}

func TestConnective(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "AND", predicate.And.String())
	assert.Equal(t, "OR", predicate.Or.Code())
	assert.Equal(t, "Unknown", predicate.Connective(7).String())

	conn, err := predicate.ParseConnective("OR")
	require.NoError(t, err)
	assert.Equal(t, predicate.Or, conn)

	_, err = predicate.ParseConnective("XOR")
	require.ErrorIs(t, err, predicate.ErrUnknownConnective)
}
