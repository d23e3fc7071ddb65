package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Delimiter separates the fields of an encoded book line.
const Delimiter = "|"

// ErrMalformedLine is wrapped by every ParseError.
var ErrMalformedLine = errors.New("malformed catalog line")

// ParseError describes a catalog line that could not be decoded.
type ParseError struct {
	Line   int // 1-based line number, 0 when unknown
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Text)
}

func (e *ParseError) Unwrap() error { return ErrMalformedLine }

// Encode renders b as a single line without the trailing newline:
// id|title|author|year|flag, where flag is 1 for available and 0 otherwise.
func (b Book) Encode() string {
	flag := "0"
	if b.Available {
		flag = "1"
	}
	return strings.Join([]string{
		strconv.Itoa(b.ID),
		b.Title,
		b.Author,
		strconv.Itoa(b.Year),
		flag,
	}, Delimiter)
}

// Decode parses one encoded line. The first four delimiters split the
// fields; whatever follows the fourth is the availability flag, and only
// "1" means available.
func Decode(line string) (Book, error) {
	line = strings.TrimSuffix(line, "\r")

	parts := strings.SplitN(line, Delimiter, 5)
	if len(parts) < 5 {
		return Book{}, &ParseError{Text: line, Reason: fmt.Sprintf("expected 5 fields, got %d", len(parts))}
	}

	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return Book{}, &ParseError{Text: line, Reason: fmt.Sprintf("invalid id %q", parts[0])}
	}
	year, err := strconv.Atoi(parts[3])
	if err != nil {
		return Book{}, &ParseError{Text: line, Reason: fmt.Sprintf("invalid year %q", parts[3])}
	}

	b := NewBook(id, parts[1], parts[2], year)
	b.Available = parts[4] == "1"
	return b, nil
}
