package app_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/libcat/internal/app"
	"github.com/blackwell-systems/libcat/internal/catalog"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type env struct {
	dir     string
	catalog string
	config  string
}

func newEnv(t *testing.T) env {
	t.Helper()
	dir := t.TempDir()
	return env{
		dir:     dir,
		catalog: filepath.Join(dir, "library.txt"),
		config:  filepath.Join(dir, "config.yml"),
	}
}

// run executes the root command with the env's catalog and config files.
func (e env) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := app.NewRootCmd()
	cmd.SetArgs(append([]string{"--no-color", "--no-interactive", "--config", e.config, "--file", e.catalog}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func (e env) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, "", args...)
	require.NoError(t, err, out)
	return out
}

func (e env) file(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(e.catalog)
	require.NoError(t, err)
	return string(data)
}

func TestAddBorrowReturnDelete(t *testing.T) {
	e := newEnv(t)

	out := e.mustRun(t, "add", "Dune", "Herbert", "1965")
	require.Contains(t, out, "Book added with ID: 1")
	require.Equal(t, "1|Dune|Herbert|1965|1\n", e.file(t))

	out = e.mustRun(t, "borrow", "1")
	require.Contains(t, out, "Book borrowed successfully")
	require.Equal(t, "1|Dune|Herbert|1965|0\n", e.file(t))

	out = e.mustRun(t, "borrow", "1")
	require.Contains(t, out, "Book is already borrowed")

	out = e.mustRun(t, "return", "1")
	require.Contains(t, out, "Book returned successfully")

	out = e.mustRun(t, "return", "1")
	require.Contains(t, out, "Book is not borrowed")

	out = e.mustRun(t, "delete", "1")
	require.Contains(t, out, "Book deleted")
	require.Equal(t, "", e.file(t))
}

func TestAdd_NegativeYearAfterDoubleDash(t *testing.T) {
	e := newEnv(t)
	e.mustRun(t, "add", "--no-color", "--", "The Odyssey", "Homer", "-700")
	require.Equal(t, "1|The Odyssey|Homer|-700|1\n", e.file(t))
}

func TestAdd_FlagsAfterArguments(t *testing.T) {
	e := newEnv(t)
	other := filepath.Join(e.dir, "books.txt")

	var out bytes.Buffer
	cmd := app.NewRootCmd()
	cmd.SetArgs([]string{"--config", e.config, "add", "Dune", "Herbert", "1965", "--file", other, "--no-color"})
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute(), out.String())
	require.Contains(t, out.String(), "Book added with ID: 1")

	data, err := os.ReadFile(other)
	require.NoError(t, err)
	require.Equal(t, "1|Dune|Herbert|1965|1\n", string(data))
}

func TestAdd_Errors(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "", "add", "Dune", "Herbert", "soon")
	require.ErrorContains(t, err, "invalid year")

	_, err = e.run(t, "", "add", "A|B", "Herbert", "1965")
	require.ErrorIs(t, err, catalog.ErrInvalidBook)

	_, err = e.run(t, "", "add", "Dune")
	require.Error(t, err)

	_, statErr := os.Stat(e.catalog)
	require.True(t, os.IsNotExist(statErr))
}

func TestBorrow_UnknownIDFails(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "", "borrow", "42")
	require.ErrorContains(t, err, "book 42 not found")

	_, err = e.run(t, "", "return", "x")
	require.ErrorContains(t, err, "invalid id")
}

func TestList(t *testing.T) {
	e := newEnv(t)

	out := e.mustRun(t, "list")
	require.Contains(t, out, "No books in library")
	out = e.mustRun(t, "list", "--available")
	require.Contains(t, out, "No available books")

	e.mustRun(t, "add", "Dune", "Frank Herbert", "1965")
	e.mustRun(t, "add", "Emma", "Jane Austen", "1815")
	e.mustRun(t, "borrow", "2")

	out = e.mustRun(t, "list")
	require.Equal(t,
		"ID: 1 | Dune by Frank Herbert (1965) - Available\n"+
			"ID: 2 | Emma by Jane Austen (1815) - Borrowed\n", out)

	out = e.mustRun(t, "list", "-a")
	require.Equal(t, "ID: 1 | Dune by Frank Herbert (1965) - Available\n", out)

	out = e.mustRun(t, "list", "--json")
	var books []catalog.Book
	require.NoError(t, json.Unmarshal([]byte(out), &books))
	require.Len(t, books, 2)
	require.False(t, books[1].Available)
}

func TestList_EmptyJSONIsArray(t *testing.T) {
	e := newEnv(t)
	out := e.mustRun(t, "list", "--json")
	require.JSONEq(t, "[]", out)
}

func TestSearch(t *testing.T) {
	e := newEnv(t)
	e.mustRun(t, "add", "Dune", "Frank Herbert", "1965")
	e.mustRun(t, "add", "Neuromancer", "William Gibson", "1984")

	out := e.mustRun(t, "search", "--title", "DUN")
	require.Contains(t, out, "ID: 1 | Dune")
	require.NotContains(t, out, "Neuromancer")

	out = e.mustRun(t, "search", "--author", "gibson")
	require.Contains(t, out, "ID: 2 | Neuromancer")

	out = e.mustRun(t, "search", "--author", "tolkien")
	require.Contains(t, out, "No books found")

	_, err := e.run(t, "", "search")
	require.Error(t, err)

	_, err = e.run(t, "", "search", "--title", "a", "--author", "b")
	require.Error(t, err)
}

func TestStatus(t *testing.T) {
	e := newEnv(t)

	out := e.mustRun(t, "status")
	require.Contains(t, out, "not written yet")

	require.NoError(t, os.WriteFile(e.catalog, []byte("1|Dune|Herbert|1965|0\ngarbage\n"), 0o644))
	out = e.mustRun(t, "status")
	require.Contains(t, out, "books:")
	require.Contains(t, out, "sha256:")
	require.Contains(t, out, "1 malformed line(s) were skipped")
	require.Contains(t, out, "line 2:")
}

func TestShow(t *testing.T) {
	e := newEnv(t)
	e.mustRun(t, "add", "Dune", "Frank Herbert", "1965")

	out := e.mustRun(t, "show", "1")
	require.Equal(t, "ID: 1 | Dune by Frank Herbert (1965) - Available\n", out)

	out = e.mustRun(t, "show", "1", "--json")
	var books []catalog.Book
	require.NoError(t, json.Unmarshal([]byte(out), &books))
	require.Equal(t, "Dune", books[0].Title)

	_, err := e.run(t, "", "show", "2")
	require.ErrorContains(t, err, "book 2 not found")
}

func TestTidyDropsMalformedLines(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, os.WriteFile(e.catalog, []byte("1|Dune|Herbert|1965|0\ngarbage\n2|Emma|Austen|1815|1\n"), 0o644))

	out := e.mustRun(t, "tidy")
	require.Contains(t, out, "2 books, 1 malformed line(s) dropped")
	require.Equal(t, "1|Dune|Herbert|1965|0\n2|Emma|Austen|1815|1\n", e.file(t))

	out = e.mustRun(t, "status")
	require.NotContains(t, out, "malformed")
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newEnv(t)
	src.mustRun(t, "add", "Dune", "Frank Herbert", "1965")
	src.mustRun(t, "add", "Emma", "Jane Austen", "1815")
	src.mustRun(t, "borrow", "2")

	exported := filepath.Join(src.dir, "books.yml")
	src.mustRun(t, "export", "-o", exported)

	dst := newEnv(t)
	dst.mustRun(t, "add", "Existing", "Someone", "2000")
	out := dst.mustRun(t, "import", exported)
	require.Contains(t, out, "Imported 2 of 2 books")
	require.Equal(t,
		"1|Existing|Someone|2000|1\n"+
			"2|Dune|Frank Herbert|1965|1\n"+
			"3|Emma|Jane Austen|1815|0\n", dst.file(t))
}

func TestExport_Formats(t *testing.T) {
	e := newEnv(t)
	e.mustRun(t, "add", "Dune", "Herbert", "1965")

	out := e.mustRun(t, "export")
	require.Contains(t, out, "title: Dune")

	out = e.mustRun(t, "export", "--format", "json")
	require.Contains(t, out, `"title": "Dune"`)

	_, err := e.run(t, "", "export", "--format", "xml")
	require.ErrorContains(t, err, "unknown format")
}

func TestShellCommand(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "1\nDune\nHerbert\n1965\n5\n9\n", "shell")
	require.NoError(t, err)
	require.Contains(t, out, "=== Library Management System ===")
	require.Contains(t, out, "Book added with ID: 1")
	require.Contains(t, out, "ID: 1 | Dune by Herbert (1965) - Available")
}

func TestRootFallsBackToShell(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "9\n")
	require.NoError(t, err)
	require.Contains(t, out, "Enter choice: ")
}

func TestConfigInitAndShow(t *testing.T) {
	e := newEnv(t)

	out := e.mustRun(t, "config", "init")
	require.Contains(t, out, "Wrote "+e.config)
	_, err := os.Stat(e.config)
	require.NoError(t, err)

	_, err = e.run(t, "", "config", "init")
	require.ErrorContains(t, err, "already exists")
	e.mustRun(t, "config", "init", "--force")

	out = e.mustRun(t, "config", "show")
	require.Contains(t, out, e.catalog)

	_, err = os.Stat(e.catalog)
	require.True(t, os.IsNotExist(err), "config commands must not touch the catalog")
}

func TestVersionAndCompletion(t *testing.T) {
	e := newEnv(t)
	app.SetVersion("1.2.3")
	require.Equal(t, "libcat 1.2.3\n", e.mustRun(t, "version"))

	out := e.mustRun(t, "completion", "bash")
	require.Contains(t, out, "libcat")
}

func TestCatalogPathFromConfigFile(t *testing.T) {
	e := newEnv(t)
	other := filepath.Join(e.dir, "other.txt")
	require.NoError(t, os.WriteFile(e.config, []byte("catalog:\n  path: "+other+"\n"), 0o644))

	var out bytes.Buffer
	cmd := app.NewRootCmd()
	cmd.SetArgs([]string{"--no-color", "--config", e.config, "add", "Dune", "Herbert", "1965"})
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(other)
	require.NoError(t, err)
	require.Equal(t, "1|Dune|Herbert|1965|1\n", string(data))
}
