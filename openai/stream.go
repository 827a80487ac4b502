package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/flumekit/flume"
	"github.com/flumekit/flume/framing"
)

// stream implements [flume.Stream] over the records assembled from a
// streaming HTTP response body.
type stream struct {
	body         io.ReadCloser
	asm          *framing.Assembler
	ctx          context.Context
	state        flume.StreamState
	text         strings.Builder
	finishReason string
	err          error // terminal error, if any
}

// Interface compliance check.
var _ flume.Stream = (*stream)(nil)

func newStream(ctx context.Context, body io.ReadCloser, log zerolog.Logger) *stream {
	return &stream{
		body:  body,
		asm:   framing.New(framing.NewReaderSource(body), framing.WithLogger(log)),
		ctx:   ctx,
		state: flume.StreamStateNew,
	}
}

// Next returns the next semantic event from the record stream.
// Returns io.EOF when the stream completes normally.
func (s *stream) Next() (flume.Event, error) {
	switch s.state {
	case flume.StreamStateComplete:
		return nil, io.EOF
	case flume.StreamStateError:
		return nil, s.err
	case flume.StreamStateClosed:
		return nil, fmt.Errorf("openai: %w", flume.ErrStreamClosed)
	}

	for {
		record, err := s.asm.Next()
		if err == io.EOF {
			s.state = flume.StreamStateComplete
			return nil, io.EOF
		}
		if err != nil {
			s.terminate(err)
			return nil, s.err
		}

		s.state = flume.StreamStateStreaming

		// Records are SSE data lines. Everything before the first '{' is
		// framing ("data: " prefixes); records with no '{' at all carry no
		// object and are skipped: blank keep-alive lines, "data: [DONE]".
		i := bytes.IndexByte(record, '{')
		if i < 0 {
			continue
		}

		var chunk chatChunk
		if err := json.Unmarshal(record[i:], &chunk); err != nil {
			s.terminate(fmt.Errorf("openai: malformed record: %v: %w", err, flume.ErrDecode))
			return nil, s.err
		}

		// A decoded record is one tick even when it carries no content;
		// a missing delta.content field is an empty contribution.
		var delta string
		if len(chunk.Choices) > 0 {
			delta = chunk.Choices[0].Delta.Content
			if fr := chunk.Choices[0].FinishReason; fr != nil {
				s.finishReason = *fr
			}
		}
		s.text.WriteString(delta)
		return flume.EventTextDelta{Delta: delta}, nil
	}
}

// State returns the current stream state.
func (s *stream) State() flume.StreamState {
	return s.state
}

// Text returns the text accumulated from deltas so far.
func (s *stream) Text() (string, error) {
	if s.state == flume.StreamStateNew {
		return "", fmt.Errorf("openai: %w", flume.ErrStreamNotReady)
	}
	return s.text.String(), nil
}

// FinishReason returns the raw finish_reason reported by the endpoint, or
// an empty string if none was seen.
func (s *stream) FinishReason() string {
	return s.finishReason
}

// Close closes the underlying HTTP response body.
func (s *stream) Close() error {
	if s.state != flume.StreamStateComplete && s.state != flume.StreamStateError {
		s.state = flume.StreamStateClosed
	}
	return s.body.Close()
}

// terminate records a terminal error, distinguishing caller cancellation
// from transport/protocol failure.
func (s *stream) terminate(err error) {
	s.state = flume.StreamStateError
	if s.ctx.Err() != nil {
		s.err = fmt.Errorf("openai: aborted: %w", s.ctx.Err())
		return
	}
	s.err = err
}
