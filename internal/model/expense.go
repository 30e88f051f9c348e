// Package model defines the core domain types shared across the application.
package model

// Category represents a valid expense category. The set is closed: inputs
// select from it rather than typing free text, so an out-of-range value is
// unrepresentable in normal use.
type Category string

// Expense category constants.
const (
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryEntertainment  Category = "Entertainment"
	CategoryShopping       Category = "Shopping"
	CategoryOther          Category = "Other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransportation,
	CategoryEntertainment,
	CategoryShopping,
	CategoryOther,
}

// IsValid reports whether c is a member of the closed category set.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// SubmittedExpense is the normalized payload a successful form submission
// emits. Description is trimmed and non-empty, Amount is a positive finite
// number, and Date is an ISO (YYYY-MM-DD) date string. ID assignment belongs
// to whoever receives the payload.
type SubmittedExpense struct {
	Description string
	Date        string
	Category    Category
	Amount      float64
}

// Expense represents a recorded expense.
type Expense struct {
	Description string
	Date        string
	Category    Category
	ID          int
	Amount      float64
}

// NewExpense builds an Expense from a submitted payload and an assigned ID.
func NewExpense(id int, s SubmittedExpense) Expense {
	return Expense{
		ID:          id,
		Description: s.Description,
		Amount:      s.Amount,
		Category:    s.Category,
		Date:        s.Date,
	}
}
