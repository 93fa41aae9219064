package testsupport

import (
	"path/filepath"
	"testing"

	"hlsmill/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.SSH.Host = "transcode.test"
	cfg.SSH.Username = "media"
	cfg.SSH.KeyPath = filepath.Join(base, "id_ed25519")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithUploadDir overrides the remote upload root on the test config.
func WithUploadDir(dir string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Transcode.UploadDir = dir
	}
}

// WithCommandTimeout sets the per-step command timeout in seconds.
func WithCommandTimeout(seconds int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.SSH.CommandTimeout = seconds
	}
}
