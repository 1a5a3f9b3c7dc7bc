// Package datasets streams labeled sentence files, one token sequence per line
package datasets

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// ErrSourceUnavailable is returned when a dataset file cannot be opened
var ErrSourceUnavailable = errors.New("source unavailable")

// maxLine bounds a single sentence
const maxLine = 1 << 20

// Reader yields the token sequence of each line of a text source
type Reader struct {
	closer  io.Closer
	scanner *bufio.Scanner
	tokens  []string
}

// Open opens the file at path for reading. The caller must Close the Reader.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithMessagef(ErrSourceUnavailable, "%s: %v", path, err)
	}
	r := NewReader(file)
	r.closer = file
	return r, nil
}

// NewReader reads lines from an already open source
func NewReader(in io.Reader) *Reader {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &Reader{scanner: scanner}
}

// Next advances to the next line, reporting false at end of source or on error
func (r *Reader) Next() bool {
	if !r.scanner.Scan() {
		r.tokens = nil
		return false
	}
	r.tokens = Split(r.scanner.Text())
	return true
}

// Tokens returns the token sequence of the current line
func (r *Reader) Tokens() []string {
	return r.tokens
}

// Err returns the first read error, nil at a clean end of source
func (r *Reader) Err() error {
	if err := r.scanner.Err(); err != nil {
		return errors.Wrap(err, "read line")
	}
	return nil
}

// Close releases the underlying file, if any
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// Loop calls do with the tokens of each line of the file at path, stopping
// after limit lines when limit is positive. It returns the number of lines
// handed to do.
func Loop(path string, limit int, do func(tokens []string) error) (n int, err error) {
	r, err := Open(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	for (limit <= 0 || n < limit) && r.Next() {
		if err := do(r.Tokens()); err != nil {
			return n, err
		}
		n++
	}
	return n, r.Err()
}
