package cli

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// emit writes v as indented JSON when format is "json"; otherwise it calls text.
func emit(w io.Writer, format string, v any, text func(io.Writer) error) error {
	if format != "json" {
		return text(w)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
