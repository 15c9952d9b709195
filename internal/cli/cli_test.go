package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagenav/internal/cli"
	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/nav"
	"github.com/rshade/pagenav/internal/pagination"
)

// setupCLITest isolates configuration and logging for one test and returns
// the config home directory.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("PAGENAV_HOME", home)
	t.Setenv("PAGENAV_LOG_LEVEL", "error")
	for _, key := range []string{"PAGENAV_PAGE_SIZE", "PAGENAV_SERIES_WIDTH", "PAGENAV_OUTPUT", "PAGENAV_CATALOG_FILE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestSeriesCmd(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		setupCLITest(t)
		out, err := execute(t, "series", "--total", "100", "--page-size", "8", "--page", "6")
		require.NoError(t, err)
		assert.Contains(t, out, "‹ Prev  1 … 5 [6] 7 … 13  Next ›")
		assert.Contains(t, out, "Showing 41-48 of 100 items")
	})

	t.Run("untrusted page falls back to first", func(t *testing.T) {
		setupCLITest(t)
		out, err := execute(t, "series", "--total", "100", "--page", "abc")
		require.NoError(t, err)
		assert.Contains(t, out, "[1] 2 3 4 5 … 13  Next ›")
	})

	t.Run("stale page", func(t *testing.T) {
		setupCLITest(t)
		out, err := execute(t, "series", "--total", "100", "--page", "20")
		require.NoError(t, err)
		assert.Contains(t, out, "‹ Prev  1 … 9 10 11 12 13")
		assert.Contains(t, out, "Page 20 is past the last page (13)")
	})

	t.Run("max total", func(t *testing.T) {
		setupCLITest(t)
		out, err := execute(t, "series", "--total", "9223372036854775807", "--page-size", "2")
		require.NoError(t, err)
		assert.Contains(t, out, "[1] 2 3 4 5 … 4611686018427387904  Next ›")
		assert.Contains(t, out, "Showing 1-2 of 9,223,372,036,854,775,807 items")
	})

	t.Run("html keeps query parameters", func(t *testing.T) {
		setupCLITest(t)
		out, err := execute(t, "series", "--total", "100", "--page", "6",
			"--url", "/products?sort=newest", "--output", "html")
		require.NoError(t, err)
		assert.Contains(t, out, `<nav class="pagy-nav">`)
		assert.Contains(t, out, `href="/products?page=5&amp;sort=newest"`)
		assert.Contains(t, out, `<li class="page active"><span>6</span></li>`)
	})

	t.Run("json", func(t *testing.T) {
		setupCLITest(t)
		out, err := execute(t, "series", "--total", "16", "--page", "2", "-o", "json")
		require.NoError(t, err)

		var meta pagination.Meta
		require.NoError(t, json.Unmarshal([]byte(out), &meta))
		assert.Equal(t, 2, meta.CurrentPage)
		assert.Equal(t, 2, meta.TotalPages)
		assert.Nil(t, meta.NextPage)
		require.NotNil(t, meta.PreviousPage)
		assert.Equal(t, 1, *meta.PreviousPage)
	})

	t.Run("yaml", func(t *testing.T) {
		setupCLITest(t)
		out, err := execute(t, "series", "--total", "0", "-o", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "total_pages: 0")
	})

	t.Run("zero page size is a configuration error", func(t *testing.T) {
		setupCLITest(t)
		_, err := execute(t, "series", "--total", "10", "--page-size", "0")
		require.Error(t, err)
		assert.ErrorIs(t, err, pagination.ErrConfiguration)

		var cfgErr *pagination.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "page_size", cfgErr.Field)
	})

	t.Run("unknown output format", func(t *testing.T) {
		setupCLITest(t)
		_, err := execute(t, "series", "--total", "10", "--output", "xml")
		assert.ErrorIs(t, err, nav.ErrUnknownFormat)
	})

	t.Run("total is required", func(t *testing.T) {
		setupCLITest(t)
		_, err := execute(t, "series")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "total")
	})

	t.Run("defaults come from the environment", func(t *testing.T) {
		setupCLITest(t)
		t.Setenv("PAGENAV_PAGE_SIZE", "50")
		out, err := execute(t, "series", "--total", "100")
		require.NoError(t, err)
		assert.Contains(t, out, "[1] 2  Next ›")
	})

	t.Run("defaults come from the config overlay", func(t *testing.T) {
		setupCLITest(t)
		overlay := filepath.Join(t.TempDir(), "overlay.yaml")
		require.NoError(t, os.WriteFile(overlay, []byte("pagination:\n  page_size: 25\noutput:\n  default_format: yaml\n"), 0o600))

		out, err := execute(t, "--config", overlay, "series", "--total", "100")
		require.NoError(t, err)
		assert.Contains(t, out, "total_pages: 4")
	})
}

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
products:
  - id: lamp
    name: Brass Lamp
    description: A heavy brass desk lamp.
    open_price: 40
    price_per_bid: 2
    created_at: 2025-01-01T00:00:00Z
  - id: table
    name: Oak Table
    description: Solid oak dining table.
    open_price: 300
    price_per_bid: 10
    created_at: 2025-01-02T00:00:00Z
  - id: camera
    name: Vintage Camera
    description: Working rangefinder camera.
    open_price: 120
    price_per_bid: 5
    created_at: 2025-01-03T00:00:00Z
`), 0o600))
	return path
}

func TestCatalogListCmd(t *testing.T) {
	t.Run("seeded text", func(t *testing.T) {
		setupCLITest(t)
		out, err := execute(t, "catalog", "list", "--seed", "20", "--page", "2")
		require.NoError(t, err)
		assert.Contains(t, out, "Open Price")
		assert.Contains(t, out, "‹ Prev  1 [2] 3  Next ›")
		assert.Contains(t, out, "Showing 9-16 of 20 items")
	})

	t.Run("max int page lists nothing", func(t *testing.T) {
		setupCLITest(t)
		out, err := execute(t, "catalog", "list", "--seed", "20", "--page", "9223372036854775807", "-o", "json")
		require.NoError(t, err)

		var page struct {
			Items      []json.RawMessage `json:"items"`
			Pagination pagination.Meta   `json:"pagination"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &page))
		assert.Empty(t, page.Items)
		assert.Equal(t, 3, page.Pagination.TotalPages)
		assert.Equal(t, 0, page.Pagination.From)
	})

	t.Run("file sorted by price", func(t *testing.T) {
		setupCLITest(t)
		path := writeCatalog(t)
		out, err := execute(t, "catalog", "list", "--file", path, "--sort", "price_high_low")
		require.NoError(t, err)

		table := out
		oak := strings.Index(table, "Oak Table")
		camera := strings.Index(table, "Vintage Camera")
		lamp := strings.Index(table, "Brass Lamp")
		require.True(t, oak >= 0 && camera >= 0 && lamp >= 0)
		assert.Less(t, oak, camera)
		assert.Less(t, camera, lamp)
		assert.Contains(t, out, "Showing 1-3 of 3 items")
	})

	t.Run("json", func(t *testing.T) {
		setupCLITest(t)
		path := writeCatalog(t)
		out, err := execute(t, "catalog", "list", "--file", path, "--page-size", "2", "--page", "2", "-o", "json")
		require.NoError(t, err)

		var page struct {
			Items []struct {
				ID string `json:"id"`
			} `json:"items"`
			Pagination pagination.Meta `json:"pagination"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &page))
		require.Len(t, page.Items, 1)
		assert.Equal(t, "lamp", page.Items[0].ID)
		assert.Equal(t, 2, page.Pagination.TotalPages)
	})

	t.Run("search without matches", func(t *testing.T) {
		setupCLITest(t)
		out, err := execute(t, "catalog", "list", "--file", writeCatalog(t), "--search", "submarine")
		require.NoError(t, err)
		assert.Contains(t, out, "No products found.")
		assert.Contains(t, out, "No items")
	})

	t.Run("search json has empty items", func(t *testing.T) {
		setupCLITest(t)
		out, err := execute(t, "catalog", "list", "--file", writeCatalog(t), "--search", "submarine", "-o", "json")
		require.NoError(t, err)
		assert.Contains(t, out, `"items": []`)
	})

	t.Run("catalog file from configuration", func(t *testing.T) {
		setupCLITest(t)
		t.Setenv("PAGENAV_CATALOG_FILE", writeCatalog(t))
		out, err := execute(t, "catalog", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "Oak Table")
	})

	t.Run("file and seed are exclusive", func(t *testing.T) {
		setupCLITest(t)
		_, err := execute(t, "catalog", "list", "--file", "x.yaml", "--seed", "3")
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		setupCLITest(t)
		_, err := execute(t, "catalog", "list", "--file", filepath.Join(t.TempDir(), "none.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestSweepCmd(t *testing.T) {
	t.Run("every page in order", func(t *testing.T) {
		setupCLITest(t)
		out, err := execute(t, "sweep", "--total", "100", "--page-size", "8", "--workers", "4")
		require.NoError(t, err)
		assert.Contains(t, out, "13 pages checked, 0 inconsistent")

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 14)
		assert.True(t, strings.HasPrefix(lines[0], "1 "))
		assert.Contains(t, lines[0], "[1] 2 3 4 5 … 13")
		assert.True(t, strings.HasPrefix(lines[12], "13 "))
	})

	t.Run("quiet prints only the summary", func(t *testing.T) {
		setupCLITest(t)
		out, err := execute(t, "sweep", "--total", "1000", "--page-size", "3", "--width", "9", "--quiet")
		require.NoError(t, err)
		assert.Equal(t, "334 pages checked, 0 inconsistent\n", out)
	})

	t.Run("empty listing", func(t *testing.T) {
		setupCLITest(t)
		out, err := execute(t, "sweep", "--total", "0")
		require.NoError(t, err)
		assert.Contains(t, out, "0 pages checked")
	})

	t.Run("invalid workers", func(t *testing.T) {
		setupCLITest(t)
		_, err := execute(t, "sweep", "--total", "10", "--workers", "0")
		require.Error(t, err)
	})

	t.Run("invalid width", func(t *testing.T) {
		setupCLITest(t)
		_, err := execute(t, "sweep", "--total", "10", "--width", "-1")
		assert.ErrorIs(t, err, pagination.ErrConfiguration)
	})
}

func TestBrowseCmd_RequiresTerminal(t *testing.T) {
	setupCLITest(t)
	_, err := execute(t, "browse", "--seed", "10")
	assert.ErrorIs(t, err, cli.ErrNotTerminal)
}

func TestConfigCmds(t *testing.T) {
	home := setupCLITest(t)
	path := filepath.Join(home, "config.yaml")

	out, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.FileExists(t, path)

	_, err = execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)

	out, err = execute(t, "config", "set", "pagination.page_size", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "Set pagination.page_size = 20")

	out, err = execute(t, "config", "get", "pagination.page_size")
	require.NoError(t, err)
	assert.Equal(t, "20\n", out)

	_, err = execute(t, "config", "set", "pagination.page_size", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to save")

	_, err = execute(t, "config", "get", "no.such.key")
	assert.ErrorIs(t, err, config.ErrUnknownKey)

	out, err = execute(t, "config", "list")
	require.NoError(t, err)
	for _, key := range config.Keys() {
		assert.Contains(t, out, key)
	}

	out, err = execute(t, "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Page size: 20")

	require.NoError(t, os.WriteFile(path, []byte("schema_version: 2.0.0\n"), 0o600))
	_, err = execute(t, "config", "validate")
	assert.ErrorIs(t, err, config.ErrUnsupportedSchema)
}

func TestRootCmd(t *testing.T) {
	setupCLITest(t)
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "test")

	out, err = execute(t, "--help")
	require.NoError(t, err)
	for _, sub := range []string{"series", "catalog", "browse", "sweep", "config"} {
		assert.Contains(t, out, sub)
	}
}
