package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jchery25/expense-tracker-next/internal/form"
	"github.com/jchery25/expense-tracker-next/internal/model"
	"github.com/jchery25/expense-tracker-next/internal/tui/themes"
)

func testClock(date string) form.Option {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return form.WithClock(func() time.Time { return t })
}

// typeString sends each rune as a key press.
func typeString(m ExpenseFormModel, s string) ExpenseFormModel {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func pressKey(m ExpenseFormModel, keyType tea.KeyType) (ExpenseFormModel, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: keyType})
}

// collectMsgs runs a command tree and gathers every message it produces.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, sub := range batch {
			msgs = append(msgs, collectMsgs(sub)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func findSubmittedMsg(cmd tea.Cmd) (ExpenseSubmittedMsg, bool) {
	for _, msg := range collectMsgs(cmd) {
		if submitted, ok := msg.(ExpenseSubmittedMsg); ok {
			return submitted, true
		}
	}
	return ExpenseSubmittedMsg{}, false
}

func TestNewExpenseForm(t *testing.T) {
	m := NewExpenseForm(themes.Default, testClock("2024-06-15"))

	s := m.State()
	assert.Equal(t, "", s.Description)
	assert.Equal(t, "", s.Amount)
	assert.Equal(t, model.CategoryFood, s.Category)
	assert.Equal(t, "2024-06-15", s.Date)
	assert.Empty(t, m.Errors())

	assert.Equal(t, 0, m.focus, "description is focused first")
	assert.True(t, m.description.Focused())
	assert.Equal(t, "2024-06-15", m.date.Value(), "date widget is prefilled")
}

func TestTypingUpdatesController(t *testing.T) {
	m := NewExpenseForm(themes.Default, testClock("2024-06-15"))

	m = typeString(m, "Coffee")
	m, _ = pressKey(m, tea.KeyTab)
	m = typeString(m, "3.50")

	s := m.State()
	assert.Equal(t, "Coffee", s.Description)
	assert.Equal(t, "3.50", s.Amount)
}

func TestFieldNavigationWraps(t *testing.T) {
	m := NewExpenseForm(themes.Default)
	require.Equal(t, 0, m.focus)

	for i := 1; i < len(form.Fields); i++ {
		m, _ = pressKey(m, tea.KeyTab)
		assert.Equal(t, i, m.focus)
	}

	m, _ = pressKey(m, tea.KeyTab)
	assert.Equal(t, 0, m.focus, "tab wraps to the first field")

	m, _ = pressKey(m, tea.KeyShiftTab)
	assert.Equal(t, len(form.Fields)-1, m.focus, "shift+tab wraps to the last field")
}

func TestCategorySelection(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want model.Category
	}{
		{
			name: "right arrow advances",
			keys: []tea.KeyMsg{{Type: tea.KeyRight}},
			want: model.CategoryTransportation,
		},
		{
			name: "left arrow wraps backwards",
			keys: []tea.KeyMsg{{Type: tea.KeyLeft}},
			want: model.CategoryOther,
		},
		{
			name: "quick select by number",
			keys: []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'4'}}},
			want: model.CategoryShopping,
		},
		{
			name: "full cycle returns to start",
			keys: []tea.KeyMsg{
				{Type: tea.KeyRight}, {Type: tea.KeyRight}, {Type: tea.KeyRight},
				{Type: tea.KeyRight}, {Type: tea.KeyRight},
			},
			want: model.CategoryFood,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewExpenseForm(themes.Default)
			// Focus the category selector.
			m, _ = pressKey(m, tea.KeyTab)
			m, _ = pressKey(m, tea.KeyTab)
			require.Equal(t, form.FieldCategory, form.Fields[m.focus])

			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}

			assert.Equal(t, tt.want, m.State().Category)
		})
	}
}

func TestLettersDoNotLeakIntoCategory(t *testing.T) {
	m := NewExpenseForm(themes.Default)
	m, _ = pressKey(m, tea.KeyTab)
	m, _ = pressKey(m, tea.KeyTab)
	require.Equal(t, form.FieldCategory, form.Fields[m.focus])

	m = typeString(m, "zz")

	assert.Equal(t, model.CategoryFood, m.State().Category)
	assert.Equal(t, "", m.State().Description)
}

func TestSubmitInvalidRendersErrors(t *testing.T) {
	m := NewExpenseForm(themes.Default, testClock("2024-06-15"))

	m, cmd := pressKey(m, tea.KeyEnter)

	_, submitted := findSubmittedMsg(cmd)
	assert.False(t, submitted, "no submission message on invalid form")
	assert.Equal(t, form.Errors{
		form.FieldDescription: "Description is required",
		form.FieldAmount:      "Amount must be a positive number",
	}, m.Errors())

	view := m.View()
	assert.Contains(t, view, "Description is required")
	assert.Contains(t, view, "Amount must be a positive number")
}

func TestEditClearsRenderedError(t *testing.T) {
	m := NewExpenseForm(themes.Default)
	m, _ = pressKey(m, tea.KeyEnter)
	require.Contains(t, m.View(), "Description is required")

	m = typeString(m, "C")

	assert.NotContains(t, m.View(), "Description is required")
	assert.Contains(t, m.View(), "Amount must be a positive number",
		"other fields keep their errors")
}

func TestSubmitValidEmitsAndResetsWidgets(t *testing.T) {
	m := NewExpenseForm(themes.Default, testClock("2024-06-15"))

	m = typeString(m, "Coffee")
	m, _ = pressKey(m, tea.KeyTab)
	m = typeString(m, "3.50")
	m, _ = pressKey(m, tea.KeyTab) // category
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := pressKey(m, tea.KeyEnter)

	submitted, ok := findSubmittedMsg(cmd)
	require.True(t, ok)
	assert.Equal(t, model.SubmittedExpense{
		Description: "Coffee",
		Amount:      3.5,
		Category:    model.CategoryTransportation,
		Date:        "2024-06-15",
	}, submitted.Payload)

	// Widgets reflect the reset controller state.
	assert.Equal(t, "", m.description.Value())
	assert.Equal(t, "", m.amount.Value())
	assert.Equal(t, "2024-06-15", m.date.Value())
	assert.Equal(t, 0, m.category, "category selector back to Food")
	assert.Equal(t, 0, m.focus, "focus returns to description")
	assert.Empty(t, m.Errors())
}

func TestSubmitTrimsDescription(t *testing.T) {
	m := NewExpenseForm(themes.Default, testClock("2024-06-15"))

	m = typeString(m, "  Coffee  ")
	m, _ = pressKey(m, tea.KeyTab)
	m = typeString(m, "2")
	m, cmd := pressKey(m, tea.KeyEnter)

	submitted, ok := findSubmittedMsg(cmd)
	require.True(t, ok)
	assert.Equal(t, "Coffee", submitted.Payload.Description)
	assert.Equal(t, "", m.description.Value(), "form reset after commit")
}

func TestSubmitInvalidKeepsEnteredValues(t *testing.T) {
	m := NewExpenseForm(themes.Default)

	m = typeString(m, "Taxi")
	m, _ = pressKey(m, tea.KeyTab)
	m = typeString(m, "abc")
	m, cmd := pressKey(m, tea.KeyEnter)

	_, submitted := findSubmittedMsg(cmd)
	assert.False(t, submitted)
	assert.Equal(t, "Taxi", m.description.Value())
	assert.Equal(t, "abc", m.amount.Value())
}

func TestViewShowsCategoryOptions(t *testing.T) {
	m := NewExpenseForm(themes.Default)

	view := m.View()
	for _, c := range model.Categories {
		assert.Contains(t, view, string(c))
	}
}
