// Package shell implements the numbered console menu over a catalog.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/blackwell-systems/libcat/internal/catalog"
	"github.com/fatih/color"
	"go.uber.org/zap"
)

// Action identifies one menu entry.
type Action string

const (
	ActionAdd           Action = "add"
	ActionDelete        Action = "delete"
	ActionBorrow        Action = "borrow"
	ActionReturn        Action = "return"
	ActionList          Action = "list"
	ActionSearchTitle   Action = "search-title"
	ActionSearchAuthor  Action = "search-author"
	ActionListAvailable Action = "list-available"
	ActionQuit          Action = "quit"
)

// MenuItem is one numbered entry of the menu.
type MenuItem struct {
	Action      Action
	Label       string
	Description string
}

// Menu lists the entries in display order; entry i is chosen with i+1.
var Menu = []MenuItem{
	{ActionAdd, "Add Book", "Add a new book to the catalog"},
	{ActionDelete, "Delete Book", "Remove a book by ID"},
	{ActionBorrow, "Borrow Book", "Check out an available book"},
	{ActionReturn, "Return Book", "Check a borrowed book back in"},
	{ActionList, "List All Books", "Show every book in the catalog"},
	{ActionSearchTitle, "Search by Title", "Case-insensitive title search"},
	{ActionSearchAuthor, "Search by Author", "Case-insensitive author search"},
	{ActionListAvailable, "List Available Books", "Show books that can be borrowed"},
	{ActionQuit, "Exit", "Leave the program"},
}

const menuTitle = "=== Library Management System ==="

// Shell reads menu choices and field values from in and prints results to out.
type Shell struct {
	cat *catalog.Catalog
	sc  *bufio.Scanner
	out io.Writer
	log *zap.Logger
}

// New creates a shell over cat.
func New(cat *catalog.Catalog, in io.Reader, out io.Writer, log *zap.Logger) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	return &Shell{
		cat: cat,
		sc:  bufio.NewScanner(in),
		out: out,
		log: log,
	}
}

// Run shows the menu until Exit is chosen, input ends, or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		line, ok := s.prompt("\nEnter choice: ")
		if !ok {
			return nil
		}

		action, valid := ParseChoice(line)
		if !valid {
			s.println("Invalid choice")
			continue
		}
		if !s.Dispatch(action) {
			return nil
		}
	}
}

// ParseChoice maps a 1-based menu number to its action.
func ParseChoice(s string) (Action, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > len(Menu) {
		return "", false
	}
	return Menu[n-1].Action, true
}

// Dispatch prompts for the inputs of one action and performs it. It
// returns false when the shell should stop.
func (s *Shell) Dispatch(action Action) bool {
	s.log.Debug("shell action", zap.String("action", string(action)))

	switch action {
	case ActionAdd:
		return s.handleAdd()
	case ActionDelete:
		return s.withID(s.handleDelete)
	case ActionBorrow:
		return s.withID(func(id int) { s.printStatus(s.cat.Borrow(id)) })
	case ActionReturn:
		return s.withID(func(id int) { s.printStatus(s.cat.Return(id)) })
	case ActionList:
		s.printBooks(s.cat.ListAll(), catalog.MsgEmpty)
	case ActionSearchTitle:
		q, ok := s.prompt("Search title: ")
		if !ok {
			return false
		}
		s.printBooks(s.cat.SearchByTitle(strings.TrimSpace(q)), catalog.MsgNoMatches)
	case ActionSearchAuthor:
		q, ok := s.prompt("Search author: ")
		if !ok {
			return false
		}
		s.printBooks(s.cat.SearchByAuthor(strings.TrimSpace(q)), catalog.MsgNoMatches)
	case ActionListAvailable:
		s.printBooks(s.cat.ListAvailable(), catalog.MsgNoneAvailable)
	case ActionQuit:
		return false
	default:
		s.println("Invalid choice")
	}
	return true
}

// Pause waits for the user to press Enter. It returns false at end of input.
func (s *Shell) Pause() bool {
	_, ok := s.prompt("\nPress Enter to continue...")
	return ok
}

func (s *Shell) handleAdd() bool {
	title, ok := s.prompt("Title: ")
	if !ok {
		return false
	}
	author, ok := s.prompt("Author: ")
	if !ok {
		return false
	}
	year, ok, valid := s.promptInt("Year: ")
	if !ok {
		return false
	}
	if !valid {
		return true
	}

	b, err := s.cat.Add(strings.TrimSpace(title), strings.TrimSpace(author), year)
	if err != nil {
		s.printErr(err)
		return true
	}
	s.println(color.GreenString("Book added with ID: %d", b.ID))
	return true
}

func (s *Shell) handleDelete(id int) {
	if _, err := s.cat.Delete(id); err != nil {
		s.printErr(err)
		return
	}
	s.println(catalog.MsgDeleted)
}

func (s *Shell) withID(fn func(id int)) bool {
	id, ok, valid := s.promptInt("Book ID: ")
	if !ok {
		return false
	}
	if valid {
		fn(id)
	}
	return true
}

func (s *Shell) printStatus(st catalog.Status, err error) {
	if err != nil {
		s.printErr(err)
		return
	}
	if st.OK() {
		s.println(color.GreenString("%s", st))
		return
	}
	s.println(color.YellowString("%s", st))
}

func (s *Shell) printBooks(books []catalog.Book, empty string) {
	if len(books) == 0 {
		s.println(empty)
		return
	}
	for _, b := range books {
		s.println(b.String())
	}
}

func (s *Shell) printMenu() {
	s.println("\n" + color.CyanString(menuTitle))
	for i, item := range Menu {
		s.println(fmt.Sprintf("%d. %s", i+1, item.Label))
	}
}

// prompt writes label and reads one line. ok is false at end of input.
func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.sc.Scan() {
		return "", false
	}
	return s.sc.Text(), true
}

// promptInt reads an integer. valid is false (and a message printed) when
// the line is not a number.
func (s *Shell) promptInt(label string) (n int, ok, valid bool) {
	line, ok := s.prompt(label)
	if !ok {
		return 0, false, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		s.println("Invalid number")
		return 0, true, false
	}
	return n, true, true
}

func (s *Shell) printErr(err error) {
	s.log.Debug("shell action failed", zap.Error(err))
	s.println(color.RedString("Error: %v", err))
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}
