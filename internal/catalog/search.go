package catalog

import "strings"

// Filter applies all non-empty criteria and returns matching books.
type Filter struct {
	Title         string // case-insensitive substring of the title
	Author        string // case-insensitive substring of the author
	AvailableOnly bool
}

// Apply returns the subset of books matching every set field, in order.
func (f Filter) Apply(books []Book) []Book {
	out := []Book{}
	for _, b := range books {
		if f.AvailableOnly && !b.Available {
			continue
		}
		if f.Title != "" && !containsFold(b.Title, f.Title) {
			continue
		}
		if f.Author != "" && !containsFold(b.Author, f.Author) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// ByID returns the first book with the given ID, or nil.
func ByID(books []Book, id int) *Book {
	for i := range books {
		if books[i].ID == id {
			return &books[i]
		}
	}
	return nil
}

func containsFold(s, q string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(q))
}
