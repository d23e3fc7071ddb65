package catalog

import "fmt"

// Book is one entry in the catalog file.
type Book struct {
	ID        int    `yaml:"id" json:"id"`
	Title     string `yaml:"title" json:"title" validate:"notblank,excludesall=0x7C,singleline"`
	Author    string `yaml:"author" json:"author" validate:"notblank,excludesall=0x7C,singleline"`
	Year      int    `yaml:"year" json:"year"`
	Available bool   `yaml:"available" json:"available"`
}

// NewBook returns a book that can be borrowed.
func NewBook(id int, title, author string, year int) Book {
	return Book{
		ID:        id,
		Title:     title,
		Author:    author,
		Year:      year,
		Available: true,
	}
}

// State returns "Available" or "Borrowed".
func (b Book) State() string {
	if b.Available {
		return "Available"
	}
	return "Borrowed"
}

// String formats a book for console listings.
func (b Book) String() string {
	return fmt.Sprintf("ID: %d | %s by %s (%d) - %s", b.ID, b.Title, b.Author, b.Year, b.State())
}

// Stats summarizes the catalog contents.
type Stats struct {
	Total     int
	Available int
	Borrowed  int
}
