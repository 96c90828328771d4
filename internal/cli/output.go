package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Print writes text in the text format and data as a JSON line otherwise.
func (f *OutputFormatter) Print(text string, data any) error {
	if f.Format != "json" {
		_, err := fmt.Fprintln(f.Writer, text)
		return err //nolint:wrapcheck
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	_, err = fmt.Fprintln(f.Writer, string(encoded))

	return err //nolint:wrapcheck
}
