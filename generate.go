package flume

import (
	"context"
	"io"
	"strings"
)

// ProgressFunc observes streaming progress. It receives the full text
// accumulated so far and the current tokens-per-second estimate; each call
// fully supersedes the previous one, so renderers should redraw rather
// than append.
type ProgressFunc func(text string, tokensPerSec float64)

// GenerateOption configures a single Generate invocation.
type GenerateOption func(*generateConfig)

type generateConfig struct {
	onProgress ProgressFunc
}

// WithProgress sets a callback invoked once per streamed record with the
// accumulated text and current rate. If nil or not set, progress is
// silently discarded.
func WithProgress(fn ProgressFunc) GenerateOption {
	return func(c *generateConfig) {
		c.onProgress = fn
	}
}

// Generate performs one streaming invocation against the provider and
// returns the fully accumulated text when the stream ends.
//
// Every decoded record counts as one tick, even when its delta is empty.
// On any stream error the accumulated text is not returned: the result is
// an empty string and a non-nil error, so a failed call is always
// distinguishable from a successful one.
func Generate(ctx context.Context, provider Provider, req Request, opts ...GenerateOption) (string, error) {
	var cfg generateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	stream, err := provider.Stream(ctx, req)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	meter := NewMeter()
	var text strings.Builder
	for {
		evt, err := stream.Next()
		if err == io.EOF {
			return text.String(), nil
		}
		if err != nil {
			return "", err
		}

		if delta, ok := evt.(EventTextDelta); ok {
			text.WriteString(delta.Delta)
		}
		meter.Tick()
		if cfg.onProgress != nil {
			cfg.onProgress(text.String(), meter.Rate())
		}
	}
}
