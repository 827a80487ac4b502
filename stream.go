package flume

// StreamState indicates the current state of a Stream.
type StreamState int

const (
	StreamStateNew       StreamState = iota // Before Next() is ever called.
	StreamStateStreaming                    // Mid-stream, receiving deltas.
	StreamStateComplete                     // Next() returned io.EOF.
	StreamStateError                        // Next() returned non-EOF error.
	StreamStateClosed                       // Close() called before terminal state.
)

// Stream uses a pull-based iterator pattern. Cancellation flows through the
// context passed to Provider.Stream(). A Stream is single-use: once it
// reaches a terminal state, a new invocation requires a new Stream.
//
// State() returns the current StreamState. Callers can use it to determine
// whether Text() will return partial or complete output.
//
// Text() returns the text accumulated from deltas so far. Behavior by state:
//   - StreamStateComplete: complete text, nil error.
//   - StreamStateStreaming: partial text, nil error.
//   - StreamStateError, StreamStateClosed: partial text, nil error.
//   - StreamStateNew: empty string, non-nil error.
type Stream interface {
	Next() (Event, error)
	State() StreamState
	Text() (string, error)
	Close() error
}
