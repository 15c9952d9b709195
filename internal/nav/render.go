package nav

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/pagenav/internal/pagination"
)

// Format selects how a result is rendered.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for unsupported output formats.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{FormatText, FormatHTML, FormatJSON, FormatYAML}
}

// ParseFormat parses a format name, case-insensitively. "table" is accepted
// as an alias for text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatHTML, FormatJSON, FormatYAML:
		return f, nil
	case "table", "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q (want one of text, html, json, yaml)", ErrUnknownFormat, s)
	}
}

// Render writes r to w in the given format. Text output is styled when w is a
// terminal. link is only used by FormatHTML.
func Render(w io.Writer, r pagination.Result, link URLFunc, format Format) error {
	switch format {
	case FormatText:
		if IsTerminal(w) {
			return RenderStyled(w, r)
		}
		return RenderText(w, r)
	case FormatHTML:
		if err := RenderHTML(w, r, link); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r.Meta())
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.Meta()); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
