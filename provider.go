package flume

import "context"

// Provider is a strategy pattern interface for inference endpoints.
//
// Stream opens a token-streaming invocation. Complete performs a single
// synchronous invocation and returns the fully assembled response.
type Provider interface {
	Stream(ctx context.Context, req Request) (Stream, error)
	Complete(ctx context.Context, req Request) (Completion, error)
}
