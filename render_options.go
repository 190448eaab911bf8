package markup

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	capacity       int
	strictCapacity bool
	frontMatter    bool
	skipValidation bool
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{frontMatter: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithCapacity bounds the produced fragment to n bytes. Output beyond the bound
// is clipped. Zero or a negative value selects a capacity that never clips.
func WithCapacity(n int) RenderOption {
	return func(cfg *renderConfig) {
		cfg.capacity = n
	}
}

// WithStrictCapacity makes clipped output an ErrClipped failure.
func WithStrictCapacity(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.strictCapacity = enabled
	}
}

// WithFrontMatter enables or disables stripping a leading front matter block.
// It is enabled by default.
func WithFrontMatter(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.frontMatter = enabled
	}
}

// WithValidation enables or disables the UTF-8 and binary input checks.
// It is enabled by default.
func WithValidation(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.skipValidation = !enabled
	}
}
