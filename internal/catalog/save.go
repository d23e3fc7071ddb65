package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kjk/common/atomicfile"
)

// Marshal encodes a book list, one line per book, each ending in "\n".
func Marshal(books []Book) []byte {
	var buf bytes.Buffer
	for _, b := range books {
		buf.WriteString(b.Encode())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Save replaces the file at path with the encoded book list. The new
// content is written to a temporary file and renamed over path, so a
// failed write leaves the previous file untouched.
func Save(path string, books []Book) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating catalog dir: %w", err)
		}
	}

	w, err := atomicfile.New(path)
	if err != nil {
		return fmt.Errorf("opening catalog for write: %w", err)
	}
	defer w.RemoveIfNotClosed()

	if _, err := w.Write(Marshal(books)); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}

// Append adds a book to the end of the list.
func Append(books []Book, b Book) []Book {
	return append(books, b)
}

// Remove drops every book with the given ID, keeping the others in order.
// Returns the updated slice and how many books were removed.
func Remove(books []Book, id int) ([]Book, int) {
	out := make([]Book, 0, len(books))
	removed := 0
	for _, b := range books {
		if b.ID == id {
			removed++
			continue
		}
		out = append(out, b)
	}
	return out, removed
}
