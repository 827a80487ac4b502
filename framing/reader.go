package framing

import "io"

// readSize is the per-pull read size for ReaderSource. Chunk boundaries
// carry no meaning to the Assembler, so the value only affects syscall
// frequency.
const readSize = 4096

// ReaderSource adapts an io.Reader (typically a streaming HTTP response
// body) into a Source. Every envelope it yields is payload-bearing; each
// Next performs at most one Read.
type ReaderSource struct {
	r   io.Reader
	err error // deferred read error, returned after its data
}

// Interface compliance check.
var _ Source = (*ReaderSource)(nil)

// NewReaderSource creates a ReaderSource reading from r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

// Next reads one chunk from the underlying reader. When a Read returns
// both data and an error, the data is delivered first and the error on
// the following call, per the io.Reader contract.
func (s *ReaderSource) Next() (Envelope, error) {
	if s.err != nil {
		return Envelope{}, s.err
	}

	buf := make([]byte, readSize)
	n, err := s.r.Read(buf)
	if err != nil {
		s.err = err
	}
	if n > 0 {
		return Envelope{Bytes: buf[:n], HasBytes: true}, nil
	}
	if s.err != nil {
		return Envelope{}, s.err
	}
	// Zero-byte read without error; try again on the next pull.
	return Envelope{Bytes: nil, HasBytes: true}, nil
}
