package catalog

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

const maxLineSize = 1 << 20

// Load reads a catalog file from disk. A missing file is an empty catalog.
// Malformed lines are skipped and returned alongside the decoded books.
func Load(path string) ([]Book, []*ParseError, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Book{}, nil, nil
		}
		return nil, nil, fmt.Errorf("reading catalog: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Parse decodes catalog bytes.
func Parse(data []byte) ([]Book, []*ParseError, error) {
	return Read(bytes.NewReader(data))
}

// Read decodes one book per non-empty line, preserving order.
func Read(r io.Reader) ([]Book, []*ParseError, error) {
	books := []Book{}
	var bad []*ParseError

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if line == "" {
			continue
		}
		b, err := Decode(line)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = n
				bad = append(bad, pe)
				continue
			}
			return nil, nil, err
		}
		books = append(books, b)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading catalog: %w", err)
	}
	return books, bad, nil
}
