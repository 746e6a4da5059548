// Package entry implements the transaction-entry workflow: a form state
// controller holding an in-progress transaction draft, an account resolver
// that seeds the draft with the user's default account, and a submission
// pipeline that sends a validated draft to the moolah API. The package is
// independent of any rendering layer; the TUI and CLI bind to it.
package entry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Field names used by SetField and as keys of FieldErrors. They match the
// API's request fields.
const (
	FieldAccount     = "accountId"
	FieldType        = "type"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldDate        = "date"
	FieldAmount      = "amount"
	FieldNotes       = "notes"
)

const dateLayout = "2006-01-02"

// minDate is the earliest date the form accepts.
var minDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Draft is the in-progress, not-yet-persisted transaction a user is editing.
type Draft struct {
	AccountID   string
	Type        TransactionType
	Description string
	Category    string
	Date        time.Time
	Amount      float64
	Notes       string
}

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

// Controller owns a draft and its validation state. One controller exists per
// open form; it is not safe for concurrent use.
type Controller struct {
	draft Draft
	errs  FieldErrors
}

// NewController creates a controller seeded with the given draft. A zero
// Draft starts a blank expense form dated today.
func NewController(initial Draft) *Controller {
	c := &Controller{}
	c.Reset(initial)
	return c
}

// Reset replaces the draft and clears all validation state. Edit mode uses
// this to prefill the form from an existing transaction.
func (c *Controller) Reset(initial Draft) {
	if initial.Type == "" {
		initial.Type = TypeExpense
	}
	if initial.Date.IsZero() {
		now := time.Now()
		initial.Date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	c.draft = initial
	c.errs = FieldErrors{}
}

// Draft returns a copy of the current draft.
func (c *Controller) Draft() Draft {
	return c.draft
}

// Errors returns the field errors recorded by the last Validate call.
func (c *Controller) Errors() FieldErrors {
	return c.errs
}

// Categories returns the selectable category set for the draft's current
// type. Setting a different type swaps this set; it does not clear a category
// chosen under the other type (see Known limitations in the README).
func (c *Controller) Categories() []Category {
	return CategoriesFor(c.draft.Type)
}

// SetField assigns a single draft field by name. Values must match the
// field's type; date accepts time.Time or a YYYY-MM-DD string, amount accepts
// float64 or a decimal string, type accepts TransactionType or string.
func (c *Controller) SetField(name string, value any) error {
	switch name {
	case FieldAccount:
		s, ok := value.(string)
		if !ok {
			return fieldTypeError(name, value)
		}
		c.draft.AccountID = s
	case FieldType:
		switch v := value.(type) {
		case TransactionType:
			c.draft.Type = v
		case string:
			c.draft.Type = TransactionType(v)
		default:
			return fieldTypeError(name, value)
		}
	case FieldDescription:
		s, ok := value.(string)
		if !ok {
			return fieldTypeError(name, value)
		}
		c.draft.Description = s
	case FieldCategory:
		s, ok := value.(string)
		if !ok {
			return fieldTypeError(name, value)
		}
		c.draft.Category = s
	case FieldDate:
		switch v := value.(type) {
		case time.Time:
			c.draft.Date = v
		case string:
			d, err := ParseDate(v)
			if err != nil {
				return err
			}
			c.draft.Date = d
		default:
			return fieldTypeError(name, value)
		}
	case FieldAmount:
		switch v := value.(type) {
		case float64:
			c.draft.Amount = v
		case string:
			a, err := ParseAmount(v)
			if err != nil {
				return err
			}
			c.draft.Amount = a
		default:
			return fieldTypeError(name, value)
		}
	case FieldNotes:
		s, ok := value.(string)
		if !ok {
			return fieldTypeError(name, value)
		}
		c.draft.Notes = s
	default:
		return fmt.Errorf("unknown field: %s", name)
	}

	return nil
}

func fieldTypeError(name string, value any) error {
	return fmt.Errorf("field %s: unsupported value type %T", name, value)
}

// Validate checks every rule atomically. It returns true with an empty error
// set when the draft is submittable, otherwise false with one message per
// offending field. Category consistency with the type is deliberately not
// checked here; only presence is.
func (c *Controller) Validate() (bool, FieldErrors) {
	errs := FieldErrors{}

	if strings.TrimSpace(c.draft.AccountID) == "" {
		errs[FieldAccount] = "account is required"
	}
	if !c.draft.Type.Valid() {
		errs[FieldType] = "type must be expense or income"
	}
	if strings.TrimSpace(c.draft.Description) == "" {
		errs[FieldDescription] = "description is required"
	}
	if strings.TrimSpace(c.draft.Category) == "" {
		errs[FieldCategory] = "category is required"
	}
	if err := validateDate(c.draft.Date); err != nil {
		errs[FieldDate] = err.Error()
	}
	if err := validateAmount(c.draft.Amount); err != nil {
		errs[FieldAmount] = err.Error()
	}

	c.errs = errs
	return len(errs) == 0, errs
}

func validateDate(d time.Time) error {
	if d.IsZero() {
		return fmt.Errorf("date is required")
	}
	if d.Before(minDate) {
		return fmt.Errorf("date must be on or after %s", minDate.Format(dateLayout))
	}
	// parsed dates carry UTC midnight; bound them by the end of the
	// current local day so today's date is accepted in every timezone
	now := time.Now()
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
	if d.After(endOfToday) {
		return fmt.Errorf("date must not be in the future")
	}
	return nil
}

func validateAmount(a float64) error {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return fmt.Errorf("amount must be a valid number")
	}
	if a <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD string and applies the form's date range.
// Presentation layers use it for inline field validation.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	if err := validateDate(d); err != nil {
		return time.Time{}, err
	}
	return d, nil
}

// ParseAmount parses a positive decimal amount string.
func ParseAmount(s string) (float64, error) {
	a, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("amount must be a valid number")
	}
	if err := validateAmount(a); err != nil {
		return 0, err
	}
	return a, nil
}
