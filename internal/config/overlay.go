package config

import (
	"context"
	"os"

	"github.com/rshade/pagenav/internal/logging"
)

// NewWithOverlay loads the global configuration and shallow-merges the file at
// overlayPath on top of it. An empty or missing overlay yields New(). A broken
// overlay is logged and ignored.
func NewWithOverlay(ctx context.Context, overlayPath string) *Config {
	cfg := New()
	if overlayPath == "" {
		return cfg
	}

	if _, err := os.Stat(overlayPath); err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("config overlay not found, using global config")
		return cfg
	}

	merged := New()
	if err := ShallowMergeYAML(merged, overlayPath); err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Str("operation", "merge_overlay").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge config overlay, using global config")
		return cfg
	}

	// Environment overrides still win over the overlay.
	if err := merged.ApplyEnv(os.Environ()); err != nil {
		merged.loadErr = err
	}
	return merged
}
