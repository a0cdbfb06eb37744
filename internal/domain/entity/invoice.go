package entity

import "time"

// Invoice statuses accepted by the form schema and stored in the invoices table.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Invoice is a billing record tied to a customer.
// Amount is stored in minor currency units (cents) to avoid float rounding.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64
	Status     string
	Date       time.Time
}

// InvoiceWithCustomer is the row shape of the filtered invoices table,
// joined with the owning customer's display fields.
type InvoiceWithCustomer struct {
	ID       string
	Amount   int64
	Date     time.Time
	Status   string
	Name     string
	Email    string
	ImageURL string
}
