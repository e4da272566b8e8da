package eventstream

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// DefaultReadSize is the read request size for framed sources, sized for
// the producer's typical message burst.
const DefaultReadSize = 65536

// Source is one transport session. Open establishes the session, Read
// returns the next chunk (framed sources) or the next record (line
// sources), and io.EOF marks a clean end of stream.
type Source interface {
	Open() error
	Read() ([]byte, error)
	Close() error

	// Framed reports whether reads are raw byte chunks that need
	// newline reframing, as opposed to pre-split records.
	Framed() bool

	// Name identifies the transport in logs and errors.
	Name() string
}

// LineSource reads pre-split, newline-terminated records from an io.Reader,
// typically the producer's stdout piped to our stdin.
type LineSource struct {
	r      io.Reader
	closer io.Closer
	br     *bufio.Reader
}

// NewLineSource creates a line source over r.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{r: r}
}

// NewStdinSource creates a line source over the process's standard input.
// Closing the source closes stdin, which unblocks a pending read.
func NewStdinSource() *LineSource {
	return &LineSource{r: os.Stdin, closer: os.Stdin}
}

// Open never fails: the underlying reader is already open.
func (s *LineSource) Open() error {
	s.br = bufio.NewReader(s.r)
	return nil
}

// Read returns the next line without its delimiter, or io.EOF at end of
// stream. A line is as large as the producer emits, matching the pipe
// transport's unbounded default: an oversized record must never end the
// session on one transport while the other dispatches it.
func (s *LineSource) Read() ([]byte, error) {
	line, err := s.br.ReadBytes('\n')
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	return line, err
}

// Close closes the underlying reader when the source owns it.
func (s *LineSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Framed reports false: the text layer already split the records.
func (s *LineSource) Framed() bool {
	return false
}

// Name implements Source.
func (s *LineSource) Name() string {
	return "stdin"
}

// PipeSource reads raw chunks from a named pipe. Chunk boundaries carry no
// meaning; the stream reframes them on newlines.
type PipeSource struct {
	path     string
	readSize int
	file     *os.File
	buf      []byte
}

// NewPipeSource creates a pipe source for the given pipe path. readSize
// is the per-read request size; zero selects DefaultReadSize.
func NewPipeSource(path string, readSize int) *PipeSource {
	if readSize <= 0 {
		readSize = DefaultReadSize
	}
	return &PipeSource{path: path, readSize: readSize}
}

// Open opens the pipe read-only. On a FIFO this blocks until the producer
// opens its end for writing. An open failure is startup-fatal.
func (s *PipeSource) Open() error {
	f, err := os.OpenFile(s.path, os.O_RDONLY, 0)
	if err != nil {
		return fmt.Errorf("opening pipe %s: %w", s.path, err)
	}
	s.file = f
	s.buf = make([]byte, s.readSize)
	return nil
}

// Read blocks until the next chunk arrives and returns it. The returned
// slice is only valid until the next Read call. io.EOF means the producer
// closed its end.
func (s *PipeSource) Read() ([]byte, error) {
	n, err := s.file.Read(s.buf)
	return s.buf[:n], err
}

// Close closes the pipe handle.
func (s *PipeSource) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}

// Framed reports true: pipe reads are arbitrary byte chunks.
func (s *PipeSource) Framed() bool {
	return true
}

// Name implements Source.
func (s *PipeSource) Name() string {
	return fmt.Sprintf("pipe %s", s.path)
}
