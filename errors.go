package flume

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrDecode indicates a streamed record could not be decoded. Malformed
	// protocol data is not recoverable locally, so the whole streaming call
	// aborts when this is returned.
	ErrDecode = errors.New("decode error")

	// ErrStreamNotReady indicates Text() was called before Next().
	ErrStreamNotReady = errors.New("stream not ready: call Next() first")

	// ErrStreamClosed indicates an operation on a closed stream.
	ErrStreamClosed = errors.New("stream closed")
)
