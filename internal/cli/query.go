package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tarantool/go-recstore/order"
	"github.com/tarantool/go-recstore/wire"
)

// execute sends req through the configured driver. Failures reported by the
// store other than a missing record are returned as errors.
func (o *RootOptions) execute(cmd *cobra.Command, req wire.Request) (wire.Response, error) {
	s, err := o.open(cmd.Context())
	if err != nil {
		return wire.Response{}, err
	}

	defer func() {
		if err := s.close(); err != nil {
			s.logger.Warn().Err(err).Msg("failed to close driver")
		}
	}()

	req.App = s.cfg.App.ID
	req.Key = s.cfg.App.Key

	resp, err := s.driver.Execute(cmd.Context(), req)
	if err != nil {
		return wire.Response{}, fmt.Errorf("failed to execute %s: %w", req.Query, err)
	}

	s.logger.Debug().
		Str("table", req.Table).
		Stringer("query", req.Query).
		Str("ack", resp.Ack).
		Str("code", resp.Code).
		Msg("request done")

	if !resp.Acked() && !resp.NotFound() {
		return resp, resp.Err() //nolint:wrapcheck
	}

	return resp, nil
}

func keyRequest(query wire.QueryType, table, pk string) wire.Request {
	return wire.Request{
		App:        "",
		Key:        "",
		Table:      table,
		Query:      query,
		PrimaryKey: parseValue(pk),
		Payload:    nil,
		Where:      nil,
		Order:      nil,
	}
}

// NewLoadCommand creates the load command.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "load <table> <pk>",
		Short: "Print a stored record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := rootOpts.execute(cmd, keyRequest(wire.QueryLoad, args[0], args[1]))
			if err != nil {
				return err
			}

			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

			if resp.NotFound() {
				return formatter.Print("not found", map[string]any{"found": false})
			}

			rec, ok := resp.Record()
			if !ok {
				return fmt.Errorf("unexpected LOAD payload %T", resp.Payload)
			}

			text, err := yaml.Marshal(rec)
			if err != nil {
				return fmt.Errorf("failed to render record: %w", err)
			}

			return formatter.Print(strings.TrimRight(string(text), "\n"), map[string]any{"found": true, "record": rec})
		},
	}
}

// NewKeysCommand creates the keys command.
func NewKeysCommand(rootOpts *RootOptions) *cobra.Command {
	var orderSpecs []string

	cmd := &cobra.Command{
		Use:   "keys <table> [<field:OP:value> [and|or <field:OP:value>]...]",
		Short: "List primary keys, optionally filtered by a predicate",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			where, err := parseWhere(args[1:])
			if err != nil {
				return err
			}

			terms, err := parseOrder(orderSpecs)
			if err != nil {
				return err
			}

			req := wire.Request{
				App:        "",
				Key:        "",
				Table:      args[0],
				Query:      wire.QuerySelectAll,
				PrimaryKey: nil,
				Payload:    nil,
				Where:      nil,
				Order:      nil,
			}

			if where != nil || len(terms) > 0 {
				req.Query = wire.QuerySearch
				req.Order = order.WireAll(terms...)

				if where != nil {
					if req.Where, err = where.Wire(); err != nil {
						return err //nolint:wrapcheck
					}
				}
			}

			resp, err := rootOpts.execute(cmd, req)
			if err != nil {
				return err
			}

			lines := make([]string, 0, len(resp.Keys))
			for _, key := range resp.Keys {
				lines = append(lines, fmt.Sprint(key))
			}

			keys := resp.Keys
			if keys == nil {
				keys = []any{}
			}

			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

			return formatter.Print(strings.Join(lines, "\n"), map[string]any{"keys": keys})
		},
	}

	cmd.Flags().StringSliceVarP(&orderSpecs, "order", "o", nil, "order terms as field[:ASC|DESC]")

	return cmd
}

// NewContainsCommand creates the contains command.
func NewContainsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "contains <table> <pk>",
		Short: "Check whether a record is stored",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := rootOpts.execute(cmd, keyRequest(wire.QueryContains, args[0], args[1]))
			if err != nil {
				return err
			}

			found, _ := resp.Bool()

			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

			return formatter.Print(fmt.Sprint(found), map[string]any{"found": found})
		},
	}
}

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <table> <pk>",
		Short: "Remove a stored record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := rootOpts.execute(cmd, keyRequest(wire.QueryRemove, args[0], args[1]))
			if err != nil {
				return err
			}

			removed := resp.Acked()

			text := "removed"
			if !removed {
				text = "not found"
			}

			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

			return formatter.Print(text, map[string]any{"removed": removed})
		},
	}
}
