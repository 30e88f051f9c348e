package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jchery25/expense-tracker-next/internal/model"
)

// Run starts the expense entry screen and blocks until the user quits. It
// returns the expenses recorded during the session.
func Run(ctx context.Context, cfg Config) ([]model.Expense, error) {
	p := tea.NewProgram(
		newModel(cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running expense entry: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected final model type %T", final)
	}
	return m.Expenses(), nil
}
