package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jchery25/expense-tracker-next/internal/model"
	"github.com/jchery25/expense-tracker-next/internal/tui/themes"
)

// ExpenseListModel renders the expenses recorded this session.
type ExpenseListModel struct {
	theme    themes.Theme
	expenses []model.Expense
	table    table.Model
	width    int
	height   int
}

// NewExpenseList creates an empty session ledger.
func NewExpenseList(theme themes.Theme) ExpenseListModel {
	columns := []table.Column{
		{Title: "Date", Width: 10},
		{Title: "Description", Width: 28},
		{Title: "Category", Width: 16},
		{Title: "Amount", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Normal
	t.SetStyles(s)

	return ExpenseListModel{
		theme: theme,
		table: t,
	}
}

// Update handles messages.
func (m ExpenseListModel) Update(msg tea.Msg) (ExpenseListModel, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}
	return m, nil
}

// Append adds an expense to the ledger and refreshes the table rows.
func (m *ExpenseListModel) Append(e model.Expense) {
	m.expenses = append(m.expenses, e)

	rows := make([]table.Row, 0, len(m.expenses))
	for _, exp := range m.expenses {
		rows = append(rows, table.Row{
			exp.Date,
			exp.Description,
			fmt.Sprintf("%s %s", themes.GetCategoryIcon(exp.Category), exp.Category),
			fmt.Sprintf("$%.2f", exp.Amount),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoBottom()
}

// Expenses returns the recorded expenses in insertion order.
func (m ExpenseListModel) Expenses() []model.Expense {
	return m.expenses
}

// Total returns the sum of all recorded amounts.
func (m ExpenseListModel) Total() float64 {
	var total float64
	for _, e := range m.expenses {
		total += e.Amount
	}
	return total
}

// View renders the ledger.
func (m ExpenseListModel) View() string {
	title := m.theme.Subtitle.Render(fmt.Sprintf("This session (%d)", len(m.expenses)))

	if len(m.expenses) == 0 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			m.theme.Help.Render("No expenses recorded yet."),
		)
	}

	total := m.theme.StatusSuccess.Render(fmt.Sprintf("Total: $%.2f", m.Total()))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.table.View(),
		total,
	)
}

// Resize updates the component size.
func (m *ExpenseListModel) Resize(width, height int) {
	m.width = width
	m.height = height
}
