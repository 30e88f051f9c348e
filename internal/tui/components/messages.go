package components

import "github.com/jchery25/expense-tracker-next/internal/model"

// ExpenseSubmittedMsg is sent when the form commits a valid expense. The
// receiver owns the payload from here on; ID assignment is its job.
type ExpenseSubmittedMsg struct {
	Payload model.SubmittedExpense
}
