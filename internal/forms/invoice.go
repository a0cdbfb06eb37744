package forms

import "github.com/finboard/dashboard/pkg/money"

// Messages surfaced to the form when an invoice field is rejected.
const (
	MsgSelectCustomer = "Please select a customer."
	MsgAmountGtZero   = "Please enter an amount greater than $0."
	MsgSelectStatus   = "Please select an invoice status."
)

// InvoiceForm carries the raw invoice form fields. The id and date are
// system-assigned and never part of the submitted form, so the same schema
// serves both create and update.
type InvoiceForm struct {
	CustomerID string `form:"customerId" validate:"required"`
	Amount     string `form:"amount"`
	Status     string `form:"status" validate:"required,oneof=pending paid"`
}

// InvoiceFields is the coerced output of a successful validation. Amount is
// converted to minor units here so the mutation layer never handles floats.
type InvoiceFields struct {
	CustomerID  string
	AmountCents int64
	Status      string
}

var invoiceMessages = map[string]string{
	"customerId": MsgSelectCustomer,
	"status":     MsgSelectStatus,
}

// Validate checks the schema rules and coerces the amount. On failure it
// returns the per-field violation messages and a zero InvoiceFields.
func (f InvoiceForm) Validate() (InvoiceFields, FieldErrors) {
	errs := FieldErrors{}
	if err := validate.Struct(f); err != nil {
		for _, fe := range violations(err) {
			field := fe.Field()
			errs[field] = append(errs[field], invoiceMessages[field])
		}
	}
	cents, err := money.ParseCents(f.Amount)
	if err != nil || cents <= 0 {
		errs["amount"] = append(errs["amount"], MsgAmountGtZero)
	}
	if len(errs) > 0 {
		return InvoiceFields{}, errs
	}
	return InvoiceFields{CustomerID: f.CustomerID, AmountCents: cents, Status: f.Status}, nil
}
