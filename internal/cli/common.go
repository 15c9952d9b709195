package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/rshade/pagenav/internal/catalog"
	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/logging"
	"github.com/rshade/pagenav/internal/nav"
)

// resolveFormat returns the --output flag, falling back to the configured
// default format.
func resolveFormat(flag string) (nav.Format, error) {
	if flag == "" {
		flag = config.GetDefaultOutputFormat()
	}
	return nav.ParseFormat(flag)
}

// resolveLanguage returns the configured language for summaries, or English
// when the configured tag cannot be parsed.
func resolveLanguage() language.Tag {
	tag, err := language.Parse(config.GetGlobalConfig().Output.Language)
	if err != nil {
		return language.English
	}
	return tag
}

// catalogSource holds the flags selecting a catalog.
type catalogSource struct {
	file string
	seed int
}

func (s *catalogSource) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.file, "file", "", "catalog file (.yaml, .yml or .json); defaults to catalog.file")
	cmd.Flags().IntVar(&s.seed, "seed", 0, "use a generated catalog of N products; defaults to catalog.seed_count")
	cmd.MarkFlagsMutuallyExclusive("file", "seed")
}

// load opens the catalog named by the flags, then by the configuration, and
// finally generates a seeded one.
func (s *catalogSource) load(cmd *cobra.Command) (*catalog.Catalog, error) {
	log := logging.FromContext(cmd.Context())
	cfg := config.GetGlobalConfig()

	file := s.file
	if file == "" && !cmd.Flags().Changed("seed") {
		file = cfg.Catalog.File
	}

	if file != "" {
		c, err := catalog.Load(file)
		if err != nil {
			return nil, err
		}
		log.Debug().Ctx(cmd.Context()).Str("file", file).Int("products", c.Len()).Msg("catalog loaded")
		return c, nil
	}

	n := cfg.Catalog.SeedCount
	if cmd.Flags().Changed("seed") {
		n = s.seed
	}
	if n < 0 {
		return nil, fmt.Errorf("--seed must be >= 0, got %d", n)
	}
	log.Debug().Ctx(cmd.Context()).Int("products", n).Msg("using seeded catalog")
	return catalog.Seed(n), nil
}
