package forms

import (
	"math"
	"strconv"

	"invoice-dashboard-backend/internal/models"
)

// maxAmountMajor bounds the major-unit amount so round(amount*100) always
// fits in int64. ParseFloat also accepts NaN, Inf and huge exponents; the
// amount rule rejects all of them.
const maxAmountMajor = 1e15

// InvoiceValues is the typed output of a successful validation.
type InvoiceValues struct {
	ID          string
	CustomerID  string
	AmountCents int64
	Status      string
	Date        string
}

// Result is either a valid value set or a per-field error collection,
// never both.
type Result struct {
	Values InvoiceValues
	Errors map[string][]string
}

func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Rule validates one field. Apply writes the coerced value into out and
// reports whether the raw value passed.
type Rule struct {
	Field   string
	Message string
	Apply   func(raw string, out *InvoiceValues) bool
}

// Shape is an ordered rule table evaluated exhaustively: every failing
// field contributes its message, validation never short-circuits.
type Shape struct {
	rules []Rule
}

// Omit derives a new shape without rules for the named fields.
func (s Shape) Omit(fields ...string) Shape {
	omitted := make(map[string]bool, len(fields))
	for _, f := range fields {
		omitted[f] = true
	}
	var kept []Rule
	for _, r := range s.rules {
		if !omitted[r.Field] {
			kept = append(kept, r)
		}
	}
	return Shape{rules: kept}
}

// Validate runs every rule of the shape against the flat form values.
// It is pure: no side effects, no storage access.
func (s Shape) Validate(form map[string]string) Result {
	res := Result{Errors: map[string][]string{}}
	for _, r := range s.rules {
		if !r.Apply(form[r.Field], &res.Values) {
			res.Errors[r.Field] = append(res.Errors[r.Field], r.Message)
		}
	}
	if len(res.Errors) == 0 {
		res.Errors = nil
		return res
	}
	res.Values = InvoiceValues{}
	return res
}

// InvoiceShape is the base shape; the create and update shapes are derived
// from it by field omission below.
var InvoiceShape = Shape{rules: []Rule{
	{
		Field:   "id",
		Message: "Missing invoice id.",
		Apply: func(raw string, out *InvoiceValues) bool {
			out.ID = raw
			return raw != ""
		},
	},
	{
		Field:   "customerId",
		Message: "Please select a customer.",
		Apply: func(raw string, out *InvoiceValues) bool {
			out.CustomerID = raw
			return raw != ""
		},
	},
	{
		Field:   "amount",
		Message: "Please enter an amount greater than $0.",
		Apply: func(raw string, out *InvoiceValues) bool {
			amount, err := strconv.ParseFloat(raw, 64)
			if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
				return false
			}
			if amount <= 0 || amount > maxAmountMajor {
				return false
			}
			out.AmountCents = int64(math.Round(amount * 100))
			return true
		},
	},
	{
		Field:   "status",
		Message: "Please select an invoice status.",
		Apply: func(raw string, out *InvoiceValues) bool {
			out.Status = raw
			return raw == models.InvoiceStatusPending || raw == models.InvoiceStatusPaid
		},
	},
	{
		Field:   "date",
		Message: "Missing invoice date.",
		Apply: func(raw string, out *InvoiceValues) bool {
			out.Date = raw
			return raw != ""
		},
	},
}}

// CreateInvoice omits id and date: both are system-assigned by the pipeline.
var CreateInvoice = InvoiceShape.Omit("id", "date")

// UpdateInvoice omits only date; the id arrives from route context and is
// injected into the candidate before validation.
var UpdateInvoice = InvoiceShape.Omit("date")
