package nav

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/pagenav/internal/pagination"
)

// Labels shared by the text renderers.
const (
	prevLabel = "‹ Prev"
	nextLabel = "Next ›"
	gapLabel  = "…"

	// arrowSep sets the arrows apart from the single-spaced page tokens.
	// Styled gets the same effect from cell padding.
	arrowSep = "  "
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Text returns the plain navigation line for r, for example
// "‹ Prev  1 … 5 [6] 7 … 13  Next ›". Missing arrows are left out and an
// empty listing yields an empty string.
func Text(r pagination.Result) string {
	if r.TotalPages == 0 {
		return ""
	}

	tokens := make([]string, 0, len(r.Series))
	for _, item := range r.Series {
		tokens = append(tokens, item.String())
	}

	parts := make([]string, 0, 3)
	if r.HasPrevious() {
		parts = append(parts, prevLabel)
	}
	parts = append(parts, strings.Join(tokens, " "))
	if r.HasNext() {
		parts = append(parts, nextLabel)
	}
	return strings.Join(parts, arrowSep)
}

// RenderText writes Text(r) followed by a newline.
func RenderText(w io.Writer, r pagination.Result) error {
	_, err := fmt.Fprintln(w, Text(r))
	return err
}

// Styles holds the lipgloss styles of the styled navigation bar.
type Styles struct {
	Page     lipgloss.Style
	Current  lipgloss.Style
	Gap      lipgloss.Style
	Arrow    lipgloss.Style
	Disabled lipgloss.Style
}

// DefaultStyles builds the navigation styles for the given renderer.
func DefaultStyles(re *lipgloss.Renderer) Styles {
	return Styles{
		Page:     re.NewStyle().Padding(0, 1),
		Current:  re.NewStyle().Padding(0, 1).Bold(true).Reverse(true),
		Gap:      re.NewStyle().Padding(0, 1).Faint(true),
		Arrow:    re.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("12")),
		Disabled: re.NewStyle().Padding(0, 1).Faint(true),
	}
}

// Styled returns the navigation bar for r using styles. Unlike Text, missing
// arrows are kept and drawn disabled so the bar does not shift between pages.
func Styled(r pagination.Result, styles Styles) string {
	if r.TotalPages == 0 {
		return ""
	}

	cells := make([]string, 0, len(r.Series)+2)
	if r.HasPrevious() {
		cells = append(cells, styles.Arrow.Render(prevLabel))
	} else {
		cells = append(cells, styles.Disabled.Render(prevLabel))
	}
	for _, item := range r.Series {
		switch it := item.(type) {
		case pagination.Page:
			cells = append(cells, styles.Page.Render(strconv.Itoa(int(it))))
		case pagination.Current:
			cells = append(cells, styles.Current.Render(strconv.Itoa(int(it))))
		case pagination.Gap:
			cells = append(cells, styles.Gap.Render(gapLabel))
		}
	}
	if r.HasNext() {
		cells = append(cells, styles.Arrow.Render(nextLabel))
	} else {
		cells = append(cells, styles.Disabled.Render(nextLabel))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

// RenderStyled writes the styled navigation bar for r, using a lipgloss
// renderer bound to w so color support follows the destination.
func RenderStyled(w io.Writer, r pagination.Result) error {
	styles := DefaultStyles(lipgloss.NewRenderer(w))
	_, err := fmt.Fprintln(w, Styled(r, styles))
	return err
}

// Summary describes the current page in words, for example
// "Showing 9-16 of 1,234 items". Numbers are grouped according to tag.
func Summary(r pagination.Result, tag language.Tag) string {
	p := message.NewPrinter(tag)

	switch {
	case r.TotalCount == 0:
		return p.Sprintf("No items")
	case r.OutOfRange():
		return p.Sprintf("Page %d is past the last page (%d)", r.CurrentPage, r.TotalPages)
	case r.TotalCount == 1:
		return p.Sprintf("Showing 1 of 1 item")
	default:
		return p.Sprintf("Showing %d-%d of %d items", r.From(), r.To(), r.TotalCount)
	}
}
