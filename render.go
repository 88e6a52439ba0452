package mdh

import (
	"fmt"
	"io"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Options []RenderOption
}

// Convert renders a markdown-dialect string as an HTML fragment. It is a
// pure function with no state shared between calls; concurrent conversions
// need no synchronization.
func Convert(src string) string {
	return resolveDocument(Tokenize(src))
}

// Render reads the whole markdown source from req.Reader and writes the HTML
// fragment to req.Writer.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: Reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: Writer is nil")
	}
	cfg := renderConfig{}
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read input: %w", err)
	}
	if cfg.strict {
		if err := ValidateInput(src); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	if _, err := io.WriteString(req.Writer, Convert(string(src))); err != nil {
		return fmt.Errorf("render: write output: %w", err)
	}
	return nil
}
