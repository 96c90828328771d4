package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-recstore/predicate"
)

func TestCondition_WireArity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		condition *predicate.Condition
		code      string
		operands  int
	}{
		{"equal", predicate.NewCondition("f").Equal(1), "EQ", 1},
		{"not equal", predicate.NewCondition("f").NotEqual(1), "NOT_EQ", 1},
		{"less", predicate.NewCondition("f").Less(1), "LT", 1},
		{"less or equal", predicate.NewCondition("f").LessOrEqual(1), "LT_EQ", 1},
		{"greater", predicate.NewCondition("f").Greater(1), "GT", 1},
		{"greater or equal", predicate.NewCondition("f").GreaterOrEqual(1), "GT_EQ", 1},
		{"between", predicate.NewCondition("f").Between(1, 2), "BETWEEN", 2},
		{"in single", predicate.NewCondition("f").In(1), "IN", 1},
		{"in many", predicate.NewCondition("f").In(1, 2, 3, 4), "IN", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wire, err := tt.condition.Wire()
			require.NoError(t, err)
			assert.Equal(t, "f", wire.Field)
			assert.Equal(t, tt.code, wire.Op)
			assert.Len(t, wire.Values, tt.operands)
		})
	}
}

func TestCondition_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		condition *predicate.Condition
		sentinel  error
		op        string
	}{
		{"no operator", predicate.NewCondition("age"), predicate.ErrMissingOperator, "none"},
		{"empty field", predicate.NewCondition("").Equal(1), predicate.ErrEmptyField, "Equal"},
		{"in without values", predicate.NewCondition("id").In(), predicate.ErrArityMismatch, "In"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.condition.Wire()
			require.ErrorIs(t, err, tt.sentinel)

			_, err = tt.condition.Text()
			require.ErrorIs(t, err, tt.sentinel)

			var malformed predicate.MalformedPredicateError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.condition.Field(), malformed.Field)
			assert.Equal(t, tt.op, malformed.Op)
		})
	}
}

func TestCondition_ArityMismatchFromWire(t *testing.T) {
	t.Parallel()

	_, err := predicate.FromWire([]any{
		predicate.ConditionWire{Field: "price", Op: "BETWEEN", Values: []any{10}},
	})
	require.ErrorIs(t, err, predicate.ErrArityMismatch)

	var malformed predicate.MalformedPredicateError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "price", malformed.Field)
	assert.Equal(t, "Between", malformed.Op)
	assert.Equal(t,
		`malformed predicate on field "price" (Between): operand count mismatch, expected exactly 2 operands, got 1`,
		malformed.Error())
}

func TestCondition_Text(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		condition *predicate.Condition
		expected  string
	}{
		{"in numbers", predicate.NewCondition("id").In(1, 2, 3), "id in (1,2,3)"},
		{"between numbers", predicate.NewCondition("price").Between(10, 20), "price between (10,20)"},
		{"greater", predicate.NewCondition("age").Greater(18), "age > 18"},
		{"not equal string", predicate.NewCondition("status").NotEqual("gone"), `status <> "gone"`},
		{"less or equal float", predicate.NewCondition("ratio").LessOrEqual(0.5), "ratio <= 0.5"},
		{"greater or equal", predicate.NewCondition("n").GreaterOrEqual(int64(7)), "n >= 7"},
		{"less", predicate.NewCondition("n").Less(-1), "n < -1"},
		{"bool", predicate.NewCondition("active").Equal(true), "active = true"},
		{"char", predicate.NewCondition("grade").Equal(predicate.Char('A')), "grade = 'A'"},
		{"nil", predicate.NewCondition("deleted").Equal(nil), "deleted = null"},
		{"in strings", predicate.NewCondition("tag").In("a", "b"), `tag in ("a","b")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			text, err := tt.condition.Text()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}

// Embedded quotes are doubled so they cannot terminate the literal.
func TestCondition_TextEscapesEmbeddedQuotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		condition *predicate.Condition
		expected  string
	}{
		{
			"double quote in string",
			predicate.NewCondition("name").Equal(`say "hi"`),
			`name = "say ""hi"""`,
		},
		{
			"injection attempt",
			predicate.NewCondition("name").Equal(`x" OR "1"="1`),
			`name = "x"" OR ""1""=""1"`,
		},
		{
			"single quote char",
			predicate.NewCondition("c").Equal(predicate.Char('\'')),
			`c = ''''`,
		},
		{
			"single quote in string is untouched",
			predicate.NewCondition("name").Equal("O'Brien"),
			`name = "O'Brien"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			text, err := tt.condition.Text()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestCondition_SetterReplacesOperator(t *testing.T) {
	t.Parallel()

	cond := predicate.NewCondition("age")
	same := cond.Greater(18).Between(1, 2)

	assert.Same(t, cond, same)

	op, ok := cond.Op()
	require.True(t, ok)
	assert.Equal(t, predicate.OpBetween, op)
	assert.Equal(t, []any{1, 2}, cond.Operands())
}

func TestCondition_OperandsPreserveType(t *testing.T) {
	t.Parallel()

	wire, err := predicate.NewCondition("f").In("s", 1, 2.5, true, predicate.Char('x')).Wire()
	require.NoError(t, err)

	assert.IsType(t, "", wire.Values[0])
	assert.IsType(t, 0, wire.Values[1])
	assert.IsType(t, 0.0, wire.Values[2])
	assert.IsType(t, true, wire.Values[3])
	assert.IsType(t, predicate.Char(0), wire.Values[4])
}

func TestCondition_OperandsIsCopy(t *testing.T) {
	t.Parallel()

	values := []any{1, 2}
	cond := predicate.NewCondition("id").In(values...)
	values[0] = 100

	operands := cond.Operands()
	operands[1] = 200

	assert.Equal(t, []any{1, 2}, cond.Operands())
}
