package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jchery25/expense-tracker-next/internal/form"
	"github.com/jchery25/expense-tracker-next/internal/model"
	"github.com/jchery25/expense-tracker-next/internal/tui/themes"
)

// ExpenseFormModel renders the expense entry form. Field values live in the
// form controller, not in the widgets: every edit routes through
// Controller.UpdateField so the inputs stay controlled and stale errors clear
// on touch.
type ExpenseFormModel struct {
	controller  *form.Controller
	sink        *submitSink
	theme       themes.Theme
	description textinput.Model
	amount      textinput.Model
	date        textinput.Model
	focus       int
	category    int
	width       int
	height      int
}

// submitSink captures the payload the controller emits during a synchronous
// Submit call. It is shared by pointer across model copies.
type submitSink struct {
	payload *model.SubmittedExpense
}

func (s *submitSink) capture(p model.SubmittedExpense) {
	s.payload = &p
}

func (s *submitSink) take() (model.SubmittedExpense, bool) {
	if s.payload == nil {
		return model.SubmittedExpense{}, false
	}
	p := *s.payload
	s.payload = nil
	return p, true
}

// NewExpenseForm creates the form with freshly initialized state.
func NewExpenseForm(theme themes.Theme, opts ...form.Option) ExpenseFormModel {
	sink := &submitSink{}
	controller := form.NewController(sink.capture, opts...)

	description := textinput.New()
	description.Placeholder = "What was it for?"
	description.CharLimit = 100
	description.Focus()

	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 20

	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.CharLimit = 10
	date.SetValue(controller.State().Date)

	return ExpenseFormModel{
		controller:  controller,
		sink:        sink,
		theme:       theme,
		description: description,
		amount:      amount,
		date:        date,
	}
}

// Init returns initial commands.
func (m ExpenseFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m ExpenseFormModel) Update(msg tea.Msg) (ExpenseFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			cmd := m.focusField((m.focus + 1) % len(form.Fields))
			return m, cmd

		case "shift+tab", "up":
			cmd := m.focusField((m.focus - 1 + len(form.Fields)) % len(form.Fields))
			return m, cmd

		case "enter":
			return m.submit()

		default:
			if form.Fields[m.focus] == form.FieldCategory {
				m.handleCategoryKey(msg.String())
				return m, nil
			}
			cmd := m.updateFocusedInput(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	// Cursor blink and other widget-level messages go to the focused input.
	cmd := m.updateFocusedInput(msg)
	return m, cmd
}

// focusField moves focus to the field at index i.
func (m *ExpenseFormModel) focusField(i int) tea.Cmd {
	m.focus = i
	m.description.Blur()
	m.amount.Blur()
	m.date.Blur()

	if input := m.inputFor(form.Fields[i]); input != nil {
		input.Focus()
		return textinput.Blink
	}
	return nil
}

// inputFor returns the text input backing a field, or nil for the category
// selector.
func (m *ExpenseFormModel) inputFor(field form.Field) *textinput.Model {
	switch field {
	case form.FieldDescription:
		return &m.description
	case form.FieldAmount:
		return &m.amount
	case form.FieldDate:
		return &m.date
	default:
		return nil
	}
}

// updateFocusedInput forwards a message to the focused text input and, when
// the visible value changed, pushes it into the controller verbatim.
func (m *ExpenseFormModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	field := form.Fields[m.focus]
	input := m.inputFor(field)
	if input == nil {
		return nil
	}

	before := input.Value()
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	if input.Value() != before {
		m.controller.UpdateField(field, input.Value())
	}
	return cmd
}

// handleCategoryKey handles key presses while the category selector has
// focus. The selector cycles the closed category set, so an out-of-range
// category is never reachable from the UI.
func (m *ExpenseFormModel) handleCategoryKey(k string) {
	switch k {
	case "right", "l":
		m.selectCategory(m.category + 1)

	case "left", "h":
		m.selectCategory(m.category - 1)

	case "1", "2", "3", "4", "5":
		if idx := int(k[0] - '1'); idx < len(model.Categories) {
			m.selectCategory(idx)
		}
	}
}

// selectCategory moves the cursor (wrapping) and records the selection as a
// field change.
func (m *ExpenseFormModel) selectCategory(i int) {
	n := len(model.Categories)
	m.category = (i%n + n) % n
	m.controller.UpdateField(form.FieldCategory, string(model.Categories[m.category]))
}

// submit runs the controller's submit cycle. On success the emitted payload
// becomes an ExpenseSubmittedMsg and the widgets re-sync to the reset state;
// on failure the controller's errors render on the next View and the entered
// values stay put.
func (m ExpenseFormModel) submit() (ExpenseFormModel, tea.Cmd) {
	if !m.controller.Submit() {
		return m, nil
	}

	payload, ok := m.sink.take()
	if !ok {
		return m, nil
	}

	m.syncFromController()
	cmd := m.focusField(0)
	return m, tea.Batch(cmd, func() tea.Msg {
		return ExpenseSubmittedMsg{Payload: payload}
	})
}

// syncFromController refreshes every widget from the controller's state.
func (m *ExpenseFormModel) syncFromController() {
	s := m.controller.State()
	m.description.SetValue(s.Description)
	m.amount.SetValue(s.Amount)
	m.date.SetValue(s.Date)
	for i, cat := range model.Categories {
		if cat == s.Category {
			m.category = i
			break
		}
	}
}

// View renders the form.
func (m ExpenseFormModel) View() string {
	sections := []string{
		m.theme.Title.Render("Add Expense"),
		m.renderInputField("Description", form.FieldDescription, m.description),
		m.renderInputField("Amount", form.FieldAmount, m.amount),
		m.renderCategoryField(),
		m.renderInputField("Date", form.FieldDate, m.date),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderInputField renders a labeled text input with its error, if any.
func (m ExpenseFormModel) renderInputField(label string, field form.Field, input textinput.Model) string {
	lines := []string{
		m.theme.FieldLabel.Render(label),
		input.View(),
	}
	if msg, ok := m.controller.Error(field); ok {
		lines = append(lines, m.theme.FieldError.Render(msg))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// renderCategoryField renders the category selector row.
func (m ExpenseFormModel) renderCategoryField() string {
	focused := form.Fields[m.focus] == form.FieldCategory

	options := make([]string, 0, len(model.Categories))
	for i, cat := range model.Categories {
		label := fmt.Sprintf("%s %s", themes.GetCategoryIcon(cat), cat)
		switch {
		case i == m.category && focused:
			label = m.theme.Selected.Render(" " + label + " ")
		case i == m.category:
			label = m.theme.Bold.Render(label)
		default:
			label = m.theme.Help.Render(label)
		}
		options = append(options, label)
	}

	lines := []string{
		m.theme.FieldLabel.Render("Category"),
		strings.Join(options, "  "),
	}
	if msg, ok := m.controller.Error(form.FieldCategory); ok {
		lines = append(lines, m.theme.FieldError.Render(msg))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// State exposes the controller's current field values.
func (m ExpenseFormModel) State() form.State {
	return m.controller.State()
}

// Errors exposes the controller's current validation errors.
func (m ExpenseFormModel) Errors() form.Errors {
	return m.controller.Errors()
}

// Resize updates the component size.
func (m *ExpenseFormModel) Resize(width, height int) {
	m.width = width
	m.height = height
}
