// Package tui hosts the interactive expense entry screen: the entry form on
// top, the session ledger below it.
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jchery25/expense-tracker-next/internal/model"
	"github.com/jchery25/expense-tracker-next/internal/tui/components"
	"github.com/jchery25/expense-tracker-next/internal/tui/themes"
)

// Config holds the TUI configuration.
type Config struct {
	Theme themes.Theme
}

// Model holds the main TUI state. It is the "parent" of the form: it receives
// each submitted payload, assigns the next ID, and renders the ledger.
type Model struct {
	theme    themes.Theme
	form     components.ExpenseFormModel
	ledger   components.ExpenseListModel
	keymap   KeyMap
	help     help.Model
	nextID   int
	width    int
	height   int
	quitting bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	return Model{
		theme:  cfg.Theme,
		form:   components.NewExpenseForm(cfg.Theme),
		ledger: components.NewExpenseList(cfg.Theme),
		keymap: DefaultKeyMap(),
		help:   help.New(),
		nextID: 1,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.form.Init(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.Quit) || key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form.Resize(msg.Width, msg.Height)
		m.ledger.Resize(msg.Width, msg.Height)
		return m, nil

	case components.ExpenseSubmittedMsg:
		expense := model.NewExpense(m.nextID, msg.Payload)
		m.nextID++
		m.ledger.Append(expense)
		slog.Debug("expense recorded",
			"id", expense.ID,
			"category", expense.Category,
			"amount", expense.Amount,
		)
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// View renders the screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.form.View(),
		m.ledger.View(),
		"",
		m.help.View(m.keymap),
	)

	return m.theme.Box.Render(content)
}

// Expenses returns the expenses recorded this session.
func (m Model) Expenses() []model.Expense {
	return m.ledger.Expenses()
}
