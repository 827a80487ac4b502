// Package framing assembles newline-delimited records from a chunked byte
// transport. Transports deliver arbitrarily sized fragments with no
// relationship to record boundaries; the Assembler buffers fragments and
// surfaces complete records one at a time, pull-driven by the consumer.
package framing

import (
	"bytes"
	"io"

	"github.com/rs/zerolog"
)

// Envelope is one frame delivered by the transport. HasBytes reports
// whether the frame carried the expected byte-payload field; frames of
// other shapes are skipped by the Assembler with a diagnostic log entry.
type Envelope struct {
	Bytes    []byte
	HasBytes bool
}

// Source yields transport envelopes in arrival order.
// Next returns io.EOF once the transport is exhausted.
type Source interface {
	Next() (Envelope, error)
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithLogger sets the logger used for transport anomaly diagnostics.
// The default discards them.
func WithLogger(log zerolog.Logger) Option {
	return func(a *Assembler) { a.log = log }
}

// Assembler turns a Source of arbitrarily chunked bytes into a sequence of
// complete newline-terminated records. The internal buffer is append-only
// for the lifetime of the Assembler; only the read cursor advances, so
// memory grows in proportion to the total bytes received in one
// invocation. An Assembler is single-use and not restartable.
type Assembler struct {
	src    Source
	log    zerolog.Logger
	buf    []byte
	cursor int
	done   bool
}

// New creates an Assembler reading from src.
func New(src Source, opts ...Option) *Assembler {
	a := &Assembler{
		src: src,
		log: zerolog.Nop(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Next returns the next complete record: the bytes up to but excluding the
// next unconsumed newline. It pulls from the underlying Source as needed
// and blocks only while the Source does.
//
// At end of transport, any unconsumed bytes not followed by a newline are
// discarded: a record without a trailing newline is never surfaced, even
// at end of stream. Next returns io.EOF on normal exhaustion.
func (a *Assembler) Next() ([]byte, error) {
	for {
		if i := bytes.IndexByte(a.buf[a.cursor:], '\n'); i >= 0 {
			record := a.buf[a.cursor : a.cursor+i]
			a.cursor += i + 1
			return record, nil
		}

		if a.done {
			return nil, io.EOF
		}

		env, err := a.src.Next()
		if err == io.EOF {
			a.done = true
			if a.cursor < len(a.buf) {
				a.log.Debug().
					Int("bytes", len(a.buf)-a.cursor).
					Msg("discarding unterminated trailing data at end of stream")
			}
			return nil, io.EOF
		}
		if err != nil {
			return nil, err
		}

		if !env.HasBytes {
			a.log.Warn().Msg("unknown event type, skipping")
			continue
		}
		a.buf = append(a.buf, env.Bytes...)
	}
}
