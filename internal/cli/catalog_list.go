package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagenav/internal/catalog"
	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/logging"
	"github.com/rshade/pagenav/internal/nav"
	"github.com/rshade/pagenav/internal/pagination"
)

const tabPadding = 2

// catalogListParams holds the flags of the catalog list command.
type catalogListParams struct {
	source   catalogSource
	search   string
	sort     string
	page     string
	pageSize int
	output   string
}

// catalogPage is the structured output of catalog list.
type catalogPage struct {
	Items      []catalog.Product `json:"items"      yaml:"items"`
	Pagination pagination.Meta   `json:"pagination" yaml:"pagination"`
}

// NewCatalogListCmd creates the catalog list command.
func NewCatalogListCmd() *cobra.Command {
	var params catalogListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of products",
		Long: `Filters the catalog by --search, orders it by --sort and prints one page.

Search matches a case-insensitive substring of the product name or
description. Sort is one of newest, price_low_high or price_high_low;
unknown values fall back to newest.`,
		Example: `  # First page of the configured catalog
  pagenav catalog list

  # Cheapest cameras, second page
  pagenav catalog list --search camera --sort price_low_high --page 2

  # A page of a file-backed catalog as YAML
  pagenav catalog list --file products.yaml --page 3 --output yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalogList(cmd, params)
		},
	}

	params.source.addFlags(cmd)
	cmd.Flags().StringVar(&params.search, "search", "", "filter by name or description")
	cmd.Flags().StringVar(&params.sort, "sort", string(catalog.SortNewest), "newest, price_low_high or price_high_low")
	cmd.Flags().StringVar(&params.page, "page", "1", "requested page")
	cmd.Flags().IntVar(&params.pageSize, "page-size", 0, "products per page (default pagination.page_size)")
	cmd.Flags().StringVarP(&params.output, "output", "o", "", "output format: text, html, json, yaml")

	return cmd
}

func runCatalogList(cmd *cobra.Command, params catalogListParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	pcfg := config.GetPaginationConfig()

	format, err := resolveFormat(params.output)
	if err != nil {
		return err
	}

	c, err := params.source.load(cmd)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("page-size") {
		params.pageSize = pcfg.PageSize
	}
	listing, err := c.List(catalog.Query{
		Search:      params.search,
		Sort:        catalog.ParseSort(params.sort),
		Page:        pagination.ParsePage(params.page),
		PageSize:    params.pageSize,
		SeriesWidth: pcfg.SeriesWidth,
	})
	if err != nil {
		return fmt.Errorf("listing catalog: %w", err)
	}

	log.Debug().Ctx(ctx).
		Str("search", params.search).
		Str("sort", string(catalog.ParseSort(params.sort))).
		Int("matches", listing.Result.TotalCount).
		Int("page", listing.Result.CurrentPage).
		Msg("catalog listed")

	out := cmd.OutOrStdout()
	switch format {
	case nav.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(newCatalogPage(listing))
	case nav.FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(newCatalogPage(listing)); err != nil {
			return err
		}
		return enc.Close()
	case nav.FormatHTML:
		link, err := nav.QueryURL("", pcfg.PageParam)
		if err != nil {
			return err
		}
		return nav.Render(out, listing.Result, link, nav.FormatHTML)
	default:
		return renderCatalogTable(out, listing)
	}
}

func newCatalogPage(listing catalog.Listing) catalogPage {
	items := listing.Items
	if items == nil {
		items = []catalog.Product{}
	}
	return catalogPage{Items: items, Pagination: listing.Result.Meta()}
}

func renderCatalogTable(out io.Writer, listing catalog.Listing) error {
	w := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)

	fmt.Fprintln(w, "Name\tOpen Price\tPer Bid\tListed")
	fmt.Fprintln(w, "----\t----------\t-------\t------")
	for _, p := range listing.Items {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%s\n",
			p.Name, p.OpenPrice, p.PricePerBid, p.CreatedAt.Format("2006-01-02"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(listing.Items) == 0 {
		fmt.Fprintln(out, "No products found.")
	}
	fmt.Fprintln(out)
	if err := nav.Render(out, listing.Result, nil, nav.FormatText); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, nav.Summary(listing.Result, resolveLanguage()))
	return err
}
