package quotegen

import (
	"time"

	"go.uber.org/zap"
)

// exporterConfig holds internal configuration for an Exporter.
type exporterConfig struct {
	chromePath   string
	timeout      time.Duration
	assetTimeout time.Duration
	renderScale  float64
	jpegQuality  int
	noSandbox    bool
	autoDownload bool
	headless     string
	logger       *zap.Logger
}

func defaultConfig() exporterConfig {
	return exporterConfig{
		timeout:      60 * time.Second,
		assetTimeout: 8 * time.Second,
		renderScale:  DefaultRenderScale,
		jpegQuality:  98,
		headless:     "new",
		logger:       zap.NewNop(),
	}
}

// Option configures an [Exporter].
type Option func(*exporterConfig)

// WithChromePath sets the path to the Chrome or Chromium executable.
// By default the library searches standard locations automatically.
func WithChromePath(path string) Option {
	return func(c *exporterConfig) {
		c.chromePath = path
	}
}

// WithTimeout sets the maximum duration for a single export.
// Defaults to 60 seconds. A zero or negative value disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *exporterConfig) {
		c.timeout = d
	}
}

// WithAssetTimeout bounds how long an export waits for fonts and images
// before capturing anyway. Defaults to 8 seconds.
func WithAssetTimeout(d time.Duration) Option {
	return func(c *exporterConfig) {
		c.assetTimeout = d
	}
}

// WithRenderScale sets the device pixel multiplier requested from the
// rasterizer. Defaults to 2 for print sharpness.
func WithRenderScale(scale float64) Option {
	return func(c *exporterConfig) {
		if scale > 0 {
			c.renderScale = scale
		}
	}
}

// WithNoSandbox disables the Chrome sandbox. This is required when
// running as root, for example inside Docker containers.
func WithNoSandbox() Option {
	return func(c *exporterConfig) {
		c.noSandbox = true
	}
}

// WithAutoDownload downloads a compatible Chromium binary when none is
// found locally. The binary is cached between runs.
func WithAutoDownload() Option {
	return func(c *exporterConfig) {
		c.autoDownload = true
	}
}

// WithLogger attaches a logger to the export pipeline. The default
// discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *exporterConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
