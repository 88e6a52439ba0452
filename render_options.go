package mdh

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	strict bool
}

// WithStrictInput rejects input that is not valid UTF-8 text before
// converting. The conversion itself is total; this only guards the boundary.
func WithStrictInput(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.strict = enabled
	}
}
