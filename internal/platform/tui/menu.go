package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fruit-catcher/internal/storage"
)

// MenuChoice is what the player picked on the title menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

type menuItem struct {
	label  string
	choice MenuChoice
}

var menuItems = []menuItem{
	{"Play", ChoicePlay},
	{"High Scores", ChoiceScores},
	{"Quit", ChoiceQuit},
}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffd700")).
			Background(lipgloss.Color("#228b22")).
			Padding(0, 2)
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the title menu of a game.
type MenuModel struct {
	title     string
	cursor    int
	width     int
	height    int
	highScore int
	keys      MenuKeyMap
	help      help.Model
	embedded  bool
	choice    MenuChoice
}

// NewMenuModel creates the title menu for gameID.
func NewMenuModel(store *storage.Store, gameID, title string, width, height int) MenuModel {
	m := MenuModel{
		title:  title,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
	if store != nil {
		//nolint:errcheck // A missing high score only hides the line
		m.highScore, _ = store.HighScore(gameID)
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.choose(ChoiceQuit)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		return m.choose(menuItems[m.cursor].choice)
	case key.Matches(msg, m.keys.Scores):
		return m.choose(ChoiceScores)
	}
	return m, nil
}

func (m MenuModel) choose(c MenuChoice) (tea.Model, tea.Cmd) {
	m.choice = c
	if m.embedded {
		return m, nil
	}
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != ChoiceNone && !m.embedded {
		return ""
	}

	var b strings.Builder
	top := max((m.height-len(menuItems)-10)/2, 1)
	b.WriteString(strings.Repeat("\n", top))

	b.WriteString(centerText(menuTitleStyle.Render(strings.ToUpper(m.title)), m.width))
	b.WriteString("\n\n")

	if m.highScore > 0 {
		b.WriteString(centerText(menuDimStyle.Render(fmt.Sprintf("Best score: %d", m.highScore)), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range menuItems {
		line := "  " + item.label + "  "
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.label + " <")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the selected entry, or ChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// centerText centers text within the given width, ignoring escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
