package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuItem is one selectable action in the hub.
type MenuItem struct {
	Key         string
	Label       string
	Description string
}

// FilterValue implements list.Item
func (m MenuItem) FilterValue() string {
	return m.Label + " " + m.Description
}

// HubContext is the catalog summary shown above the menu.
type HubContext struct {
	Path      string
	BookCount int
	Available int
}

// StatusLine summarizes the catalog for the hub header.
func (c HubContext) StatusLine() string {
	if c.BookCount == 0 {
		return fmt.Sprintf("  %s · empty", c.Path)
	}
	return fmt.Sprintf("  %s · %d books · %d available", c.Path, c.BookCount, c.Available)
}

// menuDelegate renders menu items one per line with a blank line between.
type menuDelegate struct{}

func (menuDelegate) Height() int                               { return 1 }
func (menuDelegate) Spacing() int                              { return 1 }
func (menuDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (menuDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	menuItem, ok := item.(MenuItem)
	if !ok {
		return
	}

	label := fmt.Sprintf("%d. %s", index+1, menuItem.Label)
	display := fmt.Sprintf("%-26s %s", label, styleHelp.Render(menuItem.Description))

	if index == m.Index() {
		_, _ = fmt.Fprint(w, styleSelected.Render("› "+display))
	} else {
		_, _ = fmt.Fprint(w, "  "+styleItem.Render(display))
	}
}

type hubModel struct {
	list     list.Model
	keys     hubKeys
	quitKey  string
	quitting bool
	action   string // key of the chosen item
	context  HubContext
}

func (m hubModel) Init() tea.Cmd {
	return nil
}

func (m hubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Don't handle keys when filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.choose(m.quitKey)

		case key.Matches(msg, m.keys.Select):
			if item, ok := m.list.SelectedItem().(MenuItem); ok {
				return m.choose(item.Key)
			}

		case key.Matches(msg, m.keys.Jump):
			n := int(msg.String()[0] - '0')
			if n <= len(m.list.Items()) {
				if item, ok := m.list.Items()[n-1].(MenuItem); ok {
					return m.choose(item.Key)
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		const outerPaddingH = 4 * 2
		const outerPaddingV = 2 * 2
		const innerPaddingH = 1 + 2
		const headerLines = 4
		h, v := styleFrame.GetFrameSize()

		listWidth := msg.Width - outerPaddingH - innerPaddingH - h
		listHeight := msg.Height - outerPaddingV - v - headerLines

		if listWidth < 40 {
			listWidth = 40
		}
		if listHeight < 5 {
			listHeight = 5
		}

		m.list.SetSize(listWidth, listHeight)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m hubModel) choose(action string) (tea.Model, tea.Cmd) {
	m.action = action
	m.quitting = true
	return m, tea.Quit
}

func (m hubModel) View() string {
	if m.quitting {
		return ""
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styleTitle.Render("libcat - Library Catalog"),
		styleStatus.Render(m.context.StatusLine()),
		m.list.View(),
	)

	inner := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return lipgloss.NewStyle().Padding(2, 4).Render(styleFrame.Render(inner.Render(content)))
}

func newHubModel(ctx HubContext, items []MenuItem, quitKey string) hubModel {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	keys := newHubKeys()
	l := list.New(listItems, menuDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.HelpStyle = styleHelp
	l.AdditionalShortHelpKeys = keys.ShortHelp

	return hubModel{
		list:    l,
		keys:    keys,
		quitKey: quitKey,
		context: ctx,
	}
}

// RunHub shows the menu and returns the key of the chosen item. Quitting
// with q/esc returns quitKey.
func RunHub(ctx HubContext, items []MenuItem, quitKey string) (string, error) {
	p := tea.NewProgram(newHubModel(ctx, items, quitKey), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running hub: %w", err)
	}

	fm, ok := finalModel.(hubModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}
	if fm.action == "" {
		return quitKey, nil
	}
	return fm.action, nil
}
