package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/logging"
	"github.com/rshade/pagenav/internal/nav"
	"github.com/rshade/pagenav/internal/pagination"
)

// seriesParams holds the flags of the series command.
type seriesParams struct {
	total    int
	pageSize int
	page     string
	width    int
	url      string
	output   string
}

// NewSeriesCmd creates the series command, which prints the page window for
// one page of a listing.
func NewSeriesCmd() *cobra.Command {
	var params seriesParams

	cmd := &cobra.Command{
		Use:   "series",
		Short: "Print the page series for one page of a listing",
		Long: `Computes the pagination of a listing of --total items and prints the
navigation for --page.

The page is read like an untrusted query parameter: empty, non-numeric and
values below 1 select page 1. A page past the end is reported but not changed.

Page size and series width default to pagination.page_size and
pagination.series_width from the configuration.`,
		Example: `  # Page 6 of 100 items
  pagenav series --total 100 --page 6

  # HTML links that keep the other query parameters
  pagenav series --total 100 --page 6 --url "/products?sort=newest" --output html

  # Window metadata as JSON
  pagenav series --total 250 --page-size 25 --page 3 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeries(cmd, params)
		},
	}

	cmd.Flags().IntVar(&params.total, "total", 0, "total number of items (required)")
	cmd.Flags().IntVar(&params.pageSize, "page-size", 0, "items per page (default pagination.page_size)")
	cmd.Flags().StringVar(&params.page, "page", "1", "requested page, as received from a query string")
	cmd.Flags().IntVar(&params.width, "width", 0, "number of series slots (default pagination.series_width)")
	cmd.Flags().StringVar(&params.url, "url", "", "base URL for HTML links")
	cmd.Flags().StringVarP(&params.output, "output", "o", "", "output format: text, html, json, yaml")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

func runSeries(cmd *cobra.Command, params seriesParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	pcfg := config.GetPaginationConfig()

	if !cmd.Flags().Changed("page-size") {
		params.pageSize = pcfg.PageSize
	}
	if !cmd.Flags().Changed("width") {
		params.width = pcfg.SeriesWidth
	}

	format, err := resolveFormat(params.output)
	if err != nil {
		return err
	}

	page := pagination.ParsePage(params.page)
	r, err := pagination.Compute(params.total, params.pageSize, page, params.width)
	if err != nil {
		return fmt.Errorf("computing series: %w", err)
	}

	log.Debug().Ctx(ctx).
		Int("total", r.TotalCount).
		Int("page_size", r.PageSize).
		Int("page", r.CurrentPage).
		Int("total_pages", r.TotalPages).
		Msg("series computed")
	if r.OutOfRange() {
		log.Warn().Ctx(ctx).
			Int("page", r.CurrentPage).
			Int("last_page", r.LastPage()).
			Msg("requested page is past the last page")
	}

	link, err := nav.QueryURL(params.url, pcfg.PageParam)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := nav.Render(out, r, link, format); err != nil {
		return fmt.Errorf("rendering series: %w", err)
	}
	if format == nav.FormatText {
		_, err = fmt.Fprintln(out, nav.Summary(r, resolveLanguage()))
	}
	return err
}
