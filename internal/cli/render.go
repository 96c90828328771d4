package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tarantool/go-recstore/order"
	"github.com/tarantool/go-recstore/sqlpred"
)

// RenderResult is the JSON output of the render command.
type RenderResult struct {
	Text  string   `json:"text"`
	Wire  []any    `json:"wire"`
	SQL   string   `json:"sql"`
	Args  []any    `json:"args"`
	Order []string `json:"order,omitempty"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	var orderSpecs []string

	cmd := &cobra.Command{
		Use:   "render <field:OP:value> [and|or <field:OP:value>]...",
		Short: "Render a predicate in its text, wire and SQL forms",
		Long: `Build a predicate from conditions and print its text-query form, its
wire form and a parameterized SQL rendering.

Operators are wire codes: EQ, NOT_EQ, LT, LT_EQ, GT, GT_EQ, BETWEEN, IN.
BETWEEN and IN take comma separated values, e.g. price:BETWEEN:10,20.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(rootOpts, cmd, args, orderSpecs)
		},
	}

	cmd.Flags().StringSliceVarP(&orderSpecs, "order", "o", nil, "order terms as field[:ASC|DESC]")

	return cmd
}

func runRender(opts *RootOptions, cmd *cobra.Command, args, orderSpecs []string) error {
	where, err := parseWhere(args)
	if err != nil {
		return err
	}

	terms, err := parseOrder(orderSpecs)
	if err != nil {
		return err
	}

	text, err := where.Text()
	if err != nil {
		return err //nolint:wrapcheck
	}

	wireForm, err := where.Wire()
	if err != nil {
		return err //nolint:wrapcheck
	}

	cond, err := sqlpred.ToSqlizer(where)
	if err != nil {
		return err //nolint:wrapcheck
	}

	sql, sqlArgs, err := cond.ToSql()
	if err != nil {
		return fmt.Errorf("failed to render SQL: %w", err)
	}

	encoded, err := where.MarshalJSON()
	if err != nil {
		return err //nolint:wrapcheck
	}

	result := RenderResult{
		Text:  text,
		Wire:  wireForm,
		SQL:   sql,
		Args:  sqlArgs,
		Order: sqlpred.OrderBy(terms),
	}

	lines := []string{
		"text:  " + text,
		"wire:  " + string(encoded),
		"sql:   " + sql,
		fmt.Sprintf("args:  %v", sqlArgs),
	}

	if len(terms) > 0 {
		lines = append(lines, "order: "+order.TextAll(terms...))
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	return formatter.Print(strings.Join(lines, "\n"), result)
}
