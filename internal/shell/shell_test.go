package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/blackwell-systems/libcat/internal/catalog"
	"github.com/blackwell-systems/libcat/internal/shell"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func run(t *testing.T, c *catalog.Catalog, input ...string) string {
	t.Helper()
	var out bytes.Buffer
	sh := shell.New(c, strings.NewReader(strings.Join(input, "\n")+"\n"), &out, zap.NewNop())
	require.NoError(t, sh.Run(context.Background()))
	return out.String()
}

func newCatalog(t *testing.T) (*catalog.Catalog, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "library.txt")
	c, err := catalog.Open(path, zap.NewNop())
	require.NoError(t, err)
	return c, path
}

func TestShell_MenuAndExit(t *testing.T) {
	c, _ := newCatalog(t)
	out := run(t, c, "9")

	require.Contains(t, out, "=== Library Management System ===")
	require.Contains(t, out, "1. Add Book")
	require.Contains(t, out, "8. List Available Books")
	require.Contains(t, out, "9. Exit")
	require.Contains(t, out, "Enter choice: ")
}

func TestShell_EOFEndsLoop(t *testing.T) {
	c, _ := newCatalog(t)
	var out bytes.Buffer
	sh := shell.New(c, strings.NewReader(""), &out, nil)
	require.NoError(t, sh.Run(context.Background()))
}

func TestShell_CancelledContext(t *testing.T) {
	c, _ := newCatalog(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sh := shell.New(c, strings.NewReader("5\n"), &bytes.Buffer{}, nil)
	require.ErrorIs(t, sh.Run(ctx), context.Canceled)
}

func TestShell_InvalidChoice(t *testing.T) {
	c, _ := newCatalog(t)
	out := run(t, c, "0", "abc", "10", "9")
	require.Equal(t, 3, strings.Count(out, "Invalid choice"))
}

func TestShell_AddBorrowReturnDelete(t *testing.T) {
	c, path := newCatalog(t)
	out := run(t, c,
		"1", "Dune", "Herbert", "1965",
		"3", "1",
		"3", "1",
		"4", "1",
		"4", "1",
		"3", "99",
		"2", "1",
		"9",
	)

	require.Contains(t, out, "Title: ")
	require.Contains(t, out, "Author: ")
	require.Contains(t, out, "Year: ")
	require.Contains(t, out, "Book added with ID: 1")
	require.Contains(t, out, "Book borrowed successfully")
	require.Contains(t, out, "Book is already borrowed")
	require.Contains(t, out, "Book returned successfully")
	require.Contains(t, out, "Book is not borrowed")
	require.Contains(t, out, "Book not found")
	require.Contains(t, out, "Book deleted")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Empty(t, string(data))
}

func TestShell_ListAndSearch(t *testing.T) {
	c, _ := newCatalog(t)
	out := run(t, c, "5", "8", "6", "dune", "9")
	require.Contains(t, out, "No books in library")
	require.Contains(t, out, "No available books")
	require.Contains(t, out, "No books found")

	_, err := c.Add("Dune", "Frank Herbert", 1965)
	require.NoError(t, err)
	_, err = c.Add("Emma", "Jane Austen", 1815)
	require.NoError(t, err)
	_, err = c.Borrow(2)
	require.NoError(t, err)

	out = run(t, c, "5", "9")
	require.Contains(t, out, "ID: 1 | Dune by Frank Herbert (1965) - Available")
	require.Contains(t, out, "ID: 2 | Emma by Jane Austen (1815) - Borrowed")

	out = run(t, c, "8", "9")
	require.Contains(t, out, "ID: 1 | Dune")
	require.NotContains(t, out, "ID: 2 | Emma")

	out = run(t, c, "6", "DUN", "9")
	require.Contains(t, out, "ID: 1 | Dune")
	require.NotContains(t, out, "Emma")

	out = run(t, c, "7", "austen", "9")
	require.Contains(t, out, "ID: 2 | Emma")
	require.NotContains(t, out, "ID: 1")
}

func TestShell_InvalidNumbers(t *testing.T) {
	c, _ := newCatalog(t)
	out := run(t, c, "1", "Dune", "Herbert", "soon", "3", "one", "9")
	require.Equal(t, 2, strings.Count(out, "Invalid number"))
	require.Equal(t, 0, c.Len())
}

func TestShell_AddRejectsDelimiter(t *testing.T) {
	c, _ := newCatalog(t)
	out := run(t, c, "1", "A|B", "Herbert", "1965", "9")
	require.Contains(t, out, "Error: invalid book")
	require.Equal(t, 0, c.Len())
}

func TestShell_AddTrimsTypedFields(t *testing.T) {
	c, path := newCatalog(t)
	run(t, c, "1", "  Dune ", "\tFrank Herbert  ", " 1965 ", "9")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "1|Dune|Frank Herbert|1965|1\n", string(data))
}

func TestShell_EOFMidPrompt(t *testing.T) {
	c, _ := newCatalog(t)
	var out bytes.Buffer
	sh := shell.New(c, strings.NewReader("1\nDune\n"), &out, nil)
	require.NoError(t, sh.Run(context.Background()))
	require.Equal(t, 0, c.Len())
}

func TestParseChoice(t *testing.T) {
	cases := []struct {
		in     string
		want   shell.Action
		wantOK bool
	}{
		{"1", shell.ActionAdd, true},
		{" 6 ", shell.ActionSearchTitle, true},
		{"9", shell.ActionQuit, true},
		{"0", "", false},
		{"10", "", false},
		{"x", "", false},
	}
	for _, c := range cases {
		got, ok := shell.ParseChoice(c.in)
		require.Equal(t, c.wantOK, ok, "ParseChoice(%q)", c.in)
		require.Equal(t, c.want, got, "ParseChoice(%q)", c.in)
	}
}

func TestDispatch_Quit(t *testing.T) {
	c, _ := newCatalog(t)
	sh := shell.New(c, strings.NewReader(""), &bytes.Buffer{}, nil)
	require.False(t, sh.Dispatch(shell.ActionQuit))
	require.True(t, sh.Dispatch(shell.ActionList))
}

func TestPause(t *testing.T) {
	c, _ := newCatalog(t)
	var out bytes.Buffer
	sh := shell.New(c, strings.NewReader("\n"), &out, nil)
	require.True(t, sh.Pause())
	require.False(t, sh.Pause())
	require.Contains(t, out.String(), "Press Enter to continue...")
}
