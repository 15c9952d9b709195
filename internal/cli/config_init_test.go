package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagenav/internal/cli"
	"github.com/rshade/pagenav/internal/config"
)

// setupConfigInitTest sets common env vars and registers cleanup for global
// state. It returns the config file path.
func setupConfigInitTest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("PAGENAV_HOME", home)
	t.Setenv("PAGENAV_LOG_LEVEL", "error")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return filepath.Join(home, "config.yaml")
}

func runConfigInit(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"config", "init"}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

// TestConfigInit_CreatesDefaults verifies that "config init" writes a valid
// default configuration under PAGENAV_HOME.
func TestConfigInit_CreatesDefaults(t *testing.T) {
	configPath := setupConfigInitTest(t)

	output, err := runConfigInit(t)
	require.NoError(t, err)
	assert.Contains(t, output, "Configuration initialized successfully")
	assert.Contains(t, output, configPath)

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.Default().Pagination, cfg.Pagination)

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

// TestConfigInit_ExistingFileRequiresForce verifies that an existing file is
// only replaced with --force.
func TestConfigInit_ExistingFileRequiresForce(t *testing.T) {
	configPath := setupConfigInitTest(t)
	custom := []byte("pagination:\n  page_size: 42\n")
	require.NoError(t, os.WriteFile(configPath, custom, 0o600))

	_, err := runConfigInit(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use --force to overwrite")

	data, readErr := os.ReadFile(configPath)
	require.NoError(t, readErr)
	assert.Equal(t, custom, data, "existing file must be left untouched")

	_, err = runConfigInit(t, "--force")
	require.NoError(t, err)

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Pagination.PageSize, cfg.Pagination.PageSize)
}

// TestConfigInit_DoesNotPersistEnvironment verifies that environment
// overrides active during init are not written to the file.
func TestConfigInit_DoesNotPersistEnvironment(t *testing.T) {
	configPath := setupConfigInitTest(t)
	t.Setenv("PAGENAV_PAGE_SIZE", "77")

	_, err := runConfigInit(t)
	require.NoError(t, err)

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Pagination.PageSize, cfg.Pagination.PageSize)
}
