// Package form implements the expense entry form state machine: it owns the
// live field values and per-field validation errors, validates on submit, and
// hands a normalized expense payload to its caller on success.
package form

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jchery25/expense-tracker-next/internal/model"
)

// Field identifies a form field.
type Field string

// Form fields.
const (
	FieldDescription Field = "description"
	FieldAmount      Field = "amount"
	FieldCategory    Field = "category"
	FieldDate        Field = "date"
)

// Fields lists the form fields in display order.
var Fields = []Field{FieldDescription, FieldAmount, FieldCategory, FieldDate}

// Validation messages, fixed per failure condition.
const (
	msgDescriptionRequired = "Description is required"
	msgAmountPositive      = "Amount must be a positive number"
	msgCategoryRequired    = "Category is required"
	msgDateRequired        = "Date is required"
)

// State holds the raw, editable field values for one editing session. Amount
// stays text while editing so partial input like "12." is representable; all
// trimming and coercion is deferred to submit time.
type State struct {
	Description string
	Amount      string
	Date        string
	Category    model.Category
}

// Errors maps a field to its validation failure message. A missing key means
// the field has no error; an empty map means the whole form is valid. Empty
// messages are never stored.
type Errors map[Field]string

// Controller owns the form state and drives the edit/validate/submit cycle.
// All transitions happen synchronously on the caller's goroutine.
type Controller struct {
	onSubmit func(model.SubmittedExpense)
	now      func() time.Time
	errors   Errors
	state    State
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the clock used for the default date. Tests use this to
// pin "today".
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController creates a controller with freshly initialized state. onSubmit
// receives the normalized payload of each successful submission; it may be nil
// when the caller only inspects state.
func NewController(onSubmit func(model.SubmittedExpense), opts ...Option) *Controller {
	c := &Controller{
		onSubmit: onSubmit,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Reset()
	return c
}

// Reset returns the form to its initial state: empty description and amount,
// Food category, today's date, no errors. Called on construction and after
// every successful submit; the date is recomputed at reset time.
func (c *Controller) Reset() {
	c.state = State{
		Description: "",
		Amount:      "",
		Category:    model.CategoryFood,
		Date:        c.now().Format("2006-01-02"),
	}
	c.errors = Errors{}
}

// State returns a copy of the current field values.
func (c *Controller) State() State {
	return c.state
}

// Errors returns a copy of the current per-field errors.
func (c *Controller) Errors() Errors {
	out := make(Errors, len(c.errors))
	for f, msg := range c.errors {
		out[f] = msg
	}
	return out
}

// Error returns the message for a field, if one is set.
func (c *Controller) Error(field Field) (string, bool) {
	msg, ok := c.errors[field]
	return msg, ok
}

// UpdateField stores the verbatim raw value for a field and clears that
// field's stale error, if any. No other field's error is touched, and the new
// value is not re-validated until the next submit attempt.
func (c *Controller) UpdateField(field Field, raw string) {
	switch field {
	case FieldDescription:
		c.state.Description = raw
	case FieldAmount:
		c.state.Amount = raw
	case FieldCategory:
		c.state.Category = model.Category(raw)
	case FieldDate:
		c.state.Date = raw
	default:
		return
	}
	delete(c.errors, field)
}

// Validate checks every field of a state and returns whether the form is
// valid along with the full error mapping. It is a pure function: it never
// touches controller state.
func Validate(s State) (bool, Errors) {
	errs := Errors{}

	if strings.TrimSpace(s.Description) == "" {
		errs[FieldDescription] = msgDescriptionRequired
	}

	if amount, ok := parseLeadingNumber(s.Amount); !ok || amount <= 0 {
		errs[FieldAmount] = msgAmountPositive
	}

	// Unreachable through the selector widget, kept for defensive coverage.
	if s.Category == "" {
		errs[FieldCategory] = msgCategoryRequired
	}

	if s.Date == "" {
		errs[FieldDate] = msgDateRequired
	}

	return len(errs) == 0, errs
}

// Submit validates the current state. On failure it replaces the error
// mapping wholesale and reports false; the entered values stay intact. On
// success it clears all errors, emits the normalized payload to the submit
// callback exactly once, then resets the form with a fresh date.
func (c *Controller) Submit() bool {
	ok, errs := Validate(c.state)
	if !ok {
		c.errors = errs
		return false
	}

	c.errors = Errors{}

	amount, _ := parseLeadingNumber(c.state.Amount)
	payload := model.SubmittedExpense{
		Description: strings.TrimSpace(c.state.Description),
		Amount:      amount,
		Category:    c.state.Category,
		Date:        c.state.Date,
	}
	if c.onSubmit != nil {
		c.onSubmit(payload)
	}

	c.Reset()
	return true
}

// parseLeadingNumber parses the longest numeric prefix of raw, ignoring any
// trailing garbage, so "12abc" yields 12. The leniency is deliberate; see
// DESIGN.md before tightening it. Non-finite results are rejected so emitted
// amounts are always finite.
func parseLeadingNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)

	var (
		value float64
		found bool
	)
	for i := 1; i <= len(s); i++ {
		v, err := strconv.ParseFloat(s[:i], 64)
		if err != nil {
			continue
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			break
		}
		value, found = v, true
	}
	return value, found
}
