package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryIsValid(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		want     bool
	}{
		{name: "food", category: CategoryFood, want: true},
		{name: "transportation", category: CategoryTransportation, want: true},
		{name: "entertainment", category: CategoryEntertainment, want: true},
		{name: "shopping", category: CategoryShopping, want: true},
		{name: "other", category: CategoryOther, want: true},
		{name: "empty string", category: Category(""), want: false},
		{name: "unknown value", category: Category("Groceries"), want: false},
		{name: "wrong case", category: Category("food"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.IsValid())
		})
	}
}

func TestCategoriesCoversEveryConstant(t *testing.T) {
	assert.Len(t, Categories, 5)
	seen := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		assert.True(t, c.IsValid())
		assert.False(t, seen[c], "duplicate category %q", c)
		seen[c] = true
	}
}

func TestNewExpense(t *testing.T) {
	submitted := SubmittedExpense{
		Description: "Coffee",
		Amount:      3.5,
		Category:    CategoryFood,
		Date:        "2024-01-01",
	}

	got := NewExpense(7, submitted)

	assert.Equal(t, 7, got.ID)
	assert.Equal(t, "Coffee", got.Description)
	assert.InDelta(t, 3.5, got.Amount, 0.0001)
	assert.Equal(t, CategoryFood, got.Category)
	assert.Equal(t, "2024-01-01", got.Date)
}
