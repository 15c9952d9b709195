package cli

import (
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/logging"
	"github.com/rshade/pagenav/internal/nav"
	"github.com/rshade/pagenav/internal/pagination"
)

// maxSweepPages bounds the number of pages a sweep will compute.
const maxSweepPages = 1_000_000

// sweepLine is the outcome for one page of a sweep.
type sweepLine struct {
	page   int
	series string
	err    error
}

// NewSweepCmd creates the sweep command, which computes and checks the series
// of every page of a listing.
func NewSweepCmd() *cobra.Command {
	var (
		total    int
		pageSize int
		width    int
		workers  int
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compute and check the series of every page",
		Long: `Computes the navigation for every page of a listing of --total items on
--workers goroutines and checks each result: page count, series length,
first and last page, a single current marker and the previous/next links.

One line is printed per page, in page order. The command fails when any page
is inconsistent.`,
		Example: `  # Every page of 100 items, 8 per page
  pagenav sweep --total 100 --page-size 8

  # Only report problems for a large listing
  pagenav sweep --total 250000 --page-size 25 --workers 16 --quiet`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pcfg := config.GetPaginationConfig()
			if !cmd.Flags().Changed("page-size") {
				pageSize = pcfg.PageSize
			}
			if !cmd.Flags().Changed("width") {
				width = pcfg.SeriesWidth
			}
			return runSweep(cmd, total, pageSize, width, workers, quiet)
		},
	}

	cmd.Flags().IntVar(&total, "total", 0, "total number of items (required)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "items per page (default pagination.page_size)")
	cmd.Flags().IntVar(&width, "width", 0, "number of series slots (default pagination.series_width)")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of concurrent workers")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print inconsistent pages")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

func runSweep(cmd *cobra.Command, total, pageSize, width, workers int, quiet bool) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if workers < 1 {
		return fmt.Errorf("--workers must be >= 1, got %d", workers)
	}

	// Computing the first page validates the configuration once.
	first, err := pagination.Compute(total, pageSize, 1, width)
	if err != nil {
		return fmt.Errorf("computing series: %w", err)
	}
	pages := first.TotalPages
	if pages > maxSweepPages {
		return fmt.Errorf("listing has %d pages, sweep is limited to %d", pages, maxSweepPages)
	}

	log.Info().Ctx(ctx).
		Int("pages", pages).
		Int("workers", workers).
		Msg("sweep started")

	lines := make([]sweepLine, pages)
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range lines {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			page := i + 1
			r, err := pagination.Compute(total, pageSize, page, width)
			if err != nil {
				return err
			}
			lines[i] = sweepLine{page: page, series: nav.Text(r), err: r.Verify(width)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("sweep interrupted: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	failed := 0
	for _, line := range lines {
		status := "ok"
		if line.err != nil {
			failed++
			status = "FAIL: " + line.err.Error()
		} else if quiet {
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", line.page, status, line.series)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	log.Info().Ctx(ctx).
		Int("pages", pages).
		Int("failed", failed).
		Msg("sweep finished")

	fmt.Fprintf(cmd.OutOrStdout(), "%d pages checked, %d inconsistent\n", pages, failed)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d pages", pagination.ErrInconsistent, failed, pages)
	}
	return nil
}
