// Package render writes conversion results in the formats the roman CLI
// supports.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roman/numeral"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for a format other than text, json or yaml.
var ErrUnknownFormat = errors.New("render: unknown format")

// IsFormat reports whether name is a supported output format.
func IsFormat(name string) bool {
	switch name {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// Renderer writes conversions to an io.Writer.
type Renderer struct {
	// Format is one of FormatText, FormatJSON or FormatYAML.
	Format string

	// ShowValues adds the input value column to text output.
	// Structured formats always carry both fields.
	ShowValues bool
}

// Write renders items to w.
func (r Renderer) Write(w io.Writer, items []numeral.Conversion) error {
	switch r.Format {
	case FormatText:
		return r.writeText(w, items)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(nonNil(items)); err != nil {
			return fmt.Errorf("render json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nonNil(items)); err != nil {
			return fmt.Errorf("render yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("render yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, r.Format)
	}
}

func (r Renderer) writeText(w io.Writer, items []numeral.Conversion) error {
	if !r.ShowValues {
		for _, it := range items {
			if _, err := fmt.Fprintln(w, it.Numeral); err != nil {
				return fmt.Errorf("render text: %w", err)
			}
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, it := range items {
		if _, err := fmt.Fprintf(tw, "%d\t%s\n", it.Value, it.Numeral); err != nil {
			return fmt.Errorf("render text: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render text: %w", err)
	}

	return nil
}

// nonNil keeps empty results rendered as [] rather than null.
func nonNil(items []numeral.Conversion) []numeral.Conversion {
	if items == nil {
		return []numeral.Conversion{}
	}

	return items
}
