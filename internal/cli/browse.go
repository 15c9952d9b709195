package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/catalog"
	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/nav"
	"github.com/rshade/pagenav/internal/pagination"
	"github.com/rshade/pagenav/internal/tui"
)

// ErrNotTerminal is returned by interactive commands run without a terminal.
var ErrNotTerminal = errors.New("an interactive terminal is required")

// NewBrowseCmd creates the browse command, an interactive catalog pager.
func NewBrowseCmd() *cobra.Command {
	var (
		source catalogSource
		search string
		sort   string
		page   string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through a product catalog interactively",
		Long: `Opens a terminal browser over the catalog.

Keys: ←/h and →/l move between pages, g/home and G/end jump to the first and
last page, / searches, s cycles the sort order, ? shows all keys and q quits.`,
		Example: `  # Browse the configured catalog
  pagenav browse

  # Browse a seeded catalog starting on page 4
  pagenav browse --seed 500 --page 4`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !nav.IsTerminal(cmd.OutOrStdout()) {
				return fmt.Errorf("browse: %w; use `pagenav catalog list` instead", ErrNotTerminal)
			}

			c, err := source.load(cmd)
			if err != nil {
				return err
			}

			pcfg := config.GetPaginationConfig()
			model := tui.NewBrowserModel(c, catalog.Query{
				Search:      search,
				Sort:        catalog.ParseSort(sort),
				Page:        pagination.ParsePage(page),
				PageSize:    pcfg.PageSize,
				SeriesWidth: pcfg.SeriesWidth,
			}, resolveLanguage())

			p := tea.NewProgram(model,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run interactive browser: %w", err)
			}
			return nil
		},
	}

	source.addFlags(cmd)
	cmd.Flags().StringVar(&search, "search", "", "initial search")
	cmd.Flags().StringVar(&sort, "sort", string(catalog.SortNewest), "initial sort order")
	cmd.Flags().StringVar(&page, "page", "1", "initial page")

	return cmd
}
