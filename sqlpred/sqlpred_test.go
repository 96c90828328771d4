package sqlpred_test

import (
	"bytes"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-recstore/order"
	"github.com/tarantool/go-recstore/predicate"
	"github.com/tarantool/go-recstore/sqlpred"
)

func TestToSqlizer_Conditions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		predicate *predicate.Predicate
		sql       string
		args      []any
	}{
		{"equal", predicate.New("status").Equal("active"), "status = ?", []any{"active"}},
		{"equal null", predicate.New("deleted").Equal(nil), "deleted IS NULL", nil},
		{"not equal", predicate.New("status").NotEqual("gone"), "status <> ?", []any{"gone"}},
		{"less", predicate.New("age").Less(18), "age < ?", []any{18}},
		{"less or equal", predicate.New("age").LessOrEqual(18), "age <= ?", []any{18}},
		{"greater", predicate.New("age").Greater(18), "age > ?", []any{18}},
		{"greater or equal", predicate.New("age").GreaterOrEqual(18), "age >= ?", []any{18}},
		{"between", predicate.New("price").Between(10, 20), "price BETWEEN ? AND ?", []any{10, 20}},
		{"in", predicate.New("id").In(1, 2, 3), "id IN (?,?,?)", []any{1, 2, 3}},
		{"char", predicate.New("grade").Equal(predicate.Char('A')), "grade = ?", []any{"A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cond, err := sqlpred.ToSqlizer(tt.predicate)
			require.NoError(t, err)

			sql, args, err := cond.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.sql, sql)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestToSqlizer_Chains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		predicate *predicate.Predicate
		sql       string
		args      []any
	}{
		{
			name:      "and",
			predicate: predicate.New("age").Greater(18).And(predicate.New("status").Equal("active")),
			sql:       "(age > ? AND status = ?)",
			args:      []any{18, "active"},
		},
		{
			name: "same connective stays in one group",
			predicate: predicate.New("a").Equal(1).
				Or(predicate.New("b").Equal(2)).
				Or(predicate.New("c").Equal(3)),
			sql:  "(a = ? OR b = ? OR c = ?)",
			args: []any{1, 2, 3},
		},
		{
			name: "mixed chain groups left to right",
			predicate: predicate.New("price").Between(10, 20).
				Or(predicate.New("id").In(1, 2, 3)).
				And(predicate.New("name").NotEqual(`say "hi"`)),
			sql:  "((price BETWEEN ? AND ? OR id IN (?,?,?)) AND name <> ?)",
			args: []any{10, 20, 1, 2, 3, `say "hi"`},
		},
		{
			name: "nested link is flattened in text order",
			predicate: predicate.New("a").Equal(1).
				And(predicate.New("b").Equal(2).Or(predicate.New("c").Equal(3))),
			sql:  "((a = ? AND b = ?) OR c = ?)",
			args: []any{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cond, err := sqlpred.ToSqlizer(tt.predicate)
			require.NoError(t, err)

			sql, args, err := cond.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.sql, sql)
			assert.Equal(t, tt.args, args)
		})
	}
}

// String operands travel as arguments, never inside the statement.
func TestToSqlizer_InjectionStaysInArgs(t *testing.T) {
	t.Parallel()

	cond, err := sqlpred.ToSqlizer(predicate.New("name").Equal(`x" OR "1"="1`))
	require.NoError(t, err)

	sql, args, err := cond.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "name = ?", sql)
	assert.Equal(t, []any{`x" OR "1"="1`}, args)
}

func TestToSqlizer_Malformed(t *testing.T) {
	t.Parallel()

	_, err := sqlpred.ToSqlizer(predicate.New("age"))
	require.ErrorIs(t, err, predicate.ErrMissingOperator)

	_, err = sqlpred.ToSqlizer(predicate.New("id").In())
	require.ErrorIs(t, err, predicate.ErrArityMismatch)
}

func TestTranslator_Columns(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	translator := sqlpred.New(
		sqlpred.WithColumns(map[string]string{"createdAt": "created_at"}),
		sqlpred.WithLogger(zerolog.New(&buf)),
	)

	cond, err := translator.ToSqlizer(
		predicate.New("createdAt").Greater("2024-01-01").And(predicate.New("brand").Equal("Apple")),
	)
	require.NoError(t, err)

	sql, _, err := cond.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "(created_at > ? AND brand = ?)", sql)
	assert.Contains(t, buf.String(), `"field":"brand"`)

	assert.Equal(t, []string{"created_at DESC"}, translator.OrderBy(order.Desc("createdAt")))
}

func TestOrderBy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"name ASC", "age DESC"}, sqlpred.OrderBy([]order.Term{order.Asc("name"), order.Desc("age")}))
	assert.Empty(t, sqlpred.OrderBy(nil))
}

func TestTranslator_Apply(t *testing.T) {
	t.Parallel()

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	translator := sqlpred.New()

	builder, err := translator.Apply(
		psql.Select("id").From("accounts"),
		predicate.New("age").Greater(18).And(predicate.New("status").Equal("active")),
		order.Asc("name"), order.Desc("age"),
	)
	require.NoError(t, err)

	sql, args, err := builder.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM accounts WHERE (age > $1 AND status = $2) ORDER BY name ASC, age DESC", sql)
	assert.Equal(t, []any{18, "active"}, args)

	builder, err = translator.Apply(psql.Select("id").From("accounts"), nil)
	require.NoError(t, err)

	sql, args, err = builder.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM accounts", sql)
	assert.Empty(t, args)

	_, err = translator.Apply(psql.Select("id").From("accounts"), predicate.New("age"))
	require.ErrorIs(t, err, predicate.ErrMissingOperator)
}
