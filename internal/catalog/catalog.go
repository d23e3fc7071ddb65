package catalog

import (
	"fmt"

	"go.uber.org/zap"
)

// Messages printed for empty results and plain acknowledgements.
const (
	MsgEmpty         = "No books in library"
	MsgNoneAvailable = "No available books"
	MsgNoMatches     = "No books found"
	MsgDeleted       = "Book deleted"
)

// Status is the outcome of a borrow or return request.
type Status int

const (
	StatusNotFound Status = iota
	StatusBorrowed
	StatusAlreadyBorrowed
	StatusReturned
	StatusNotBorrowed
)

func (s Status) String() string {
	switch s {
	case StatusBorrowed:
		return "Book borrowed successfully"
	case StatusAlreadyBorrowed:
		return "Book is already borrowed"
	case StatusReturned:
		return "Book returned successfully"
	case StatusNotBorrowed:
		return "Book is not borrowed"
	default:
		return "Book not found"
	}
}

// OK reports whether the request changed the book.
func (s Status) OK() bool {
	return s == StatusBorrowed || s == StatusReturned
}

// Catalog is the in-memory book list backed by a single file.
// Every mutation rewrites the whole file before returning.
type Catalog struct {
	path    string
	books   []Book
	skipped []*ParseError
	log     *zap.Logger
}

// Open loads the catalog stored at path. A missing file yields an empty
// catalog; malformed lines are logged and skipped.
func Open(path string, log *zap.Logger) (*Catalog, error) {
	if log == nil {
		log = zap.NewNop()
	}
	books, bad, err := Load(path)
	if err != nil {
		return nil, err
	}
	for _, pe := range bad {
		log.Warn("skipping malformed catalog line",
			zap.String("path", path),
			zap.Int("line", pe.Line),
			zap.String("reason", pe.Reason))
	}
	log.Debug("catalog loaded",
		zap.String("path", path),
		zap.Int("books", len(books)),
		zap.Int("skipped", len(bad)))

	return &Catalog{
		path:    path,
		books:   books,
		skipped: bad,
		log:     log,
	}, nil
}

// Path returns the backing file.
func (c *Catalog) Path() string { return c.path }

// Len returns the number of books.
func (c *Catalog) Len() int { return len(c.books) }

// Skipped returns the lines that could not be decoded at load time.
func (c *Catalog) Skipped() []*ParseError { return c.skipped }

// Stats counts books by state.
func (c *Catalog) Stats() Stats {
	s := Stats{Total: len(c.books)}
	for _, b := range c.books {
		if b.Available {
			s.Available++
		} else {
			s.Borrowed++
		}
	}
	return s
}

// Save rewrites the backing file from memory. Lines skipped at load time
// are not written back.
func (c *Catalog) Save() error {
	if err := c.update(func(books []Book) []Book { return books }); err != nil {
		return err
	}
	c.skipped = nil
	return nil
}

// update applies fn to a copy of the list and persists the result. Memory
// is only replaced once the file has been written.
func (c *Catalog) update(fn func([]Book) []Book) error {
	next := fn(append([]Book(nil), c.books...))
	if err := Save(c.path, next); err != nil {
		c.log.Error("catalog save failed", zap.String("path", c.path), zap.Error(err))
		return fmt.Errorf("saving catalog: %w", err)
	}
	c.books = next
	c.log.Debug("catalog saved", zap.String("path", c.path), zap.Int("books", len(next)))
	return nil
}

// nextID is one past the last book's ID, or 1 for an empty catalog.
func (c *Catalog) nextID() int {
	if len(c.books) == 0 {
		return 1
	}
	return c.books[len(c.books)-1].ID + 1
}

// Add appends a new available book and returns it with its assigned ID.
func (c *Catalog) Add(title, author string, year int) (Book, error) {
	b := NewBook(c.nextID(), title, author, year)
	if err := Validate(b); err != nil {
		return Book{}, err
	}
	if err := c.update(func(books []Book) []Book { return Append(books, b) }); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Delete removes every book with the given ID and returns how many were
// removed. The file is rewritten even when nothing matched.
func (c *Catalog) Delete(id int) (int, error) {
	removed := 0
	err := c.update(func(books []Book) []Book {
		var out []Book
		out, removed = Remove(books, id)
		return out
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// Borrow marks the first book with the given ID as checked out.
func (c *Catalog) Borrow(id int) (Status, error) {
	return c.setAvailable(id, false)
}

// Return marks the first book with the given ID as available again.
func (c *Catalog) Return(id int) (Status, error) {
	return c.setAvailable(id, true)
}

func (c *Catalog) setAvailable(id int, available bool) (Status, error) {
	b := ByID(c.books, id)
	if b == nil {
		return StatusNotFound, nil
	}
	if b.Available == available {
		if available {
			return StatusNotBorrowed, nil
		}
		return StatusAlreadyBorrowed, nil
	}

	err := c.update(func(books []Book) []Book {
		ByID(books, id).Available = available
		return books
	})
	if err != nil {
		return StatusNotFound, err
	}
	if available {
		return StatusReturned, nil
	}
	return StatusBorrowed, nil
}

// Get returns the first book with the given ID.
func (c *Catalog) Get(id int) (Book, bool) {
	if b := ByID(c.books, id); b != nil {
		return *b, true
	}
	return Book{}, false
}

// ListAll returns every book in catalog order.
func (c *Catalog) ListAll() []Book {
	return Filter{}.Apply(c.books)
}

// ListAvailable returns the books that can be borrowed, in catalog order.
func (c *Catalog) ListAvailable() []Book {
	return Filter{AvailableOnly: true}.Apply(c.books)
}

// SearchByTitle returns books whose title contains query, ignoring case.
func (c *Catalog) SearchByTitle(query string) []Book {
	return c.search(Filter{Title: query}, query)
}

// SearchByAuthor returns books whose author contains query, ignoring case.
func (c *Catalog) SearchByAuthor(query string) []Book {
	return c.search(Filter{Author: query}, query)
}

func (c *Catalog) search(f Filter, query string) []Book {
	out := f.Apply(c.books)
	c.log.Debug("catalog search", zap.String("query", query), zap.Int("matches", len(out)))
	return out
}
