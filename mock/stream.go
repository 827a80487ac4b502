package mock

import (
	"io"
	"strings"

	"github.com/flumekit/flume"
)

// Stream is a test double for flume.Stream.
// Set the function fields for the methods you need. NextFn and TextFn
// panic when nil to catch missing setup. CloseFn and StateFn are nil-safe
// (no-op and zero value) because test code commonly calls defer
// stream.Close() and these methods rarely need custom behavior.
type Stream struct {
	NextFn  func() (flume.Event, error)
	StateFn func() flume.StreamState
	TextFn  func() (string, error)
	CloseFn func() error
}

// Next delegates to NextFn.
func (s *Stream) Next() (flume.Event, error) {
	return s.NextFn()
}

// State delegates to StateFn. Returns StreamStateNew when StateFn is nil.
func (s *Stream) State() flume.StreamState {
	if s.StateFn == nil {
		return flume.StreamStateNew
	}
	return s.StateFn()
}

// Text delegates to TextFn.
func (s *Stream) Text() (string, error) {
	return s.TextFn()
}

// Close delegates to CloseFn. Returns nil when CloseFn is not set.
func (s *Stream) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}

// ScriptStream returns a Stream that plays back the given deltas as
// EventTextDelta events in order, then io.EOF. Text() returns the
// concatenation of the deltas emitted so far.
func ScriptStream(deltas ...string) *Stream {
	var (
		pos  int
		text strings.Builder
	)
	return &Stream{
		NextFn: func() (flume.Event, error) {
			if pos >= len(deltas) {
				return nil, io.EOF
			}
			d := deltas[pos]
			pos++
			text.WriteString(d)
			return flume.EventTextDelta{Delta: d}, nil
		},
		StateFn: func() flume.StreamState {
			if pos >= len(deltas) {
				return flume.StreamStateComplete
			}
			return flume.StreamStateStreaming
		},
		TextFn: func() (string, error) {
			return text.String(), nil
		},
	}
}
