package testsupport

import (
	"path/filepath"
	"testing"

	"recordgroup/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config whose log directory lives in a unique
// temp directory per test, then applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Logging.Dir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return builder.cfg
}

// WithTrace toggles group ID trace records on the test config.
func WithTrace(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Trace.Enabled = enabled
	}
}

// WithLogLevel overrides the configured log level.
func WithLogLevel(level string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Level = level
	}
}

// WithLogFormat overrides the configured log format.
func WithLogFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Format = format
	}
}

// WithoutLogDir disables the file log sink.
func WithoutLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Dir = ""
	}
}

// BaseDir returns the root temp directory backing the generated config. It
// relies on the default log directory and is meaningless after WithoutLogDir.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Logging.Dir)
}
