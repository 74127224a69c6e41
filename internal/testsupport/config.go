package testsupport

import (
	"path/filepath"
	"testing"

	"lstmosaic/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Platform.Project = "test-project"
	cfgVal.Platform.AccessToken = "test-token"
	cfgVal.VRT.TerraDir = filepath.Join(base, "terra")
	cfgVal.VRT.AquaDir = filepath.Join(base, "aqua")
	cfgVal.VRT.Output = filepath.Join(base, "out", "temporal.vrt")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithMode sets the band-selection mode on the test config.
func WithMode(mode string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.VRT.Mode = mode
	}
}

// WithPlatformEndpoint points the test config at a local fake platform.
func WithPlatformEndpoint(baseURL string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Platform.BaseURL = baseURL
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.VRT.TerraDir)
}
