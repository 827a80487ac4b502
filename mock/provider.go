// Package mock provides test doubles for flume interfaces using function fields.
package mock

import (
	"context"

	"github.com/flumekit/flume"
)

// Interface compliance checks.
var (
	_ flume.Provider = (*Provider)(nil)
	_ flume.Stream   = (*Stream)(nil)
)

// Provider is a test double for flume.Provider.
// Set the function field for each method you call.
type Provider struct {
	StreamFn   func(ctx context.Context, req flume.Request) (flume.Stream, error)
	CompleteFn func(ctx context.Context, req flume.Request) (flume.Completion, error)
}

// Stream delegates to StreamFn.
func (p *Provider) Stream(ctx context.Context, req flume.Request) (flume.Stream, error) {
	return p.StreamFn(ctx, req)
}

// Complete delegates to CompleteFn.
func (p *Provider) Complete(ctx context.Context, req flume.Request) (flume.Completion, error) {
	return p.CompleteFn(ctx, req)
}
