package entity

// Customer is a billable party. ImageURL points at the avatar shown in
// dashboard tables; when no upload was supplied it holds the placeholder path.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

// CustomerField is the minimal projection used to populate select inputs.
type CustomerField struct {
	ID   string
	Name string
}

// CustomerStats annotates a customer with invoice aggregates. The pending and
// paid totals are raw minor units; display formatting happens in the
// application layer.
type CustomerStats struct {
	Customer
	TotalInvoices int64
	TotalPending  int64
	TotalPaid     int64
}
