package application

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/finboard/dashboard/internal/domain/entity"
)

var errStore = errors.New("connection refused")

// fakeInvoiceRepo is an in-memory InvoiceRepository. Any method whose name
// appears in failOn returns errStore instead.
type fakeInvoiceRepo struct {
	invoices []entity.Invoice
	failOn   map[string]bool
	nextID   int

	createCalls int
	updateCalls int
	deleteCalls int
}

func (f *fakeInvoiceRepo) fails(op string) bool { return f.failOn[op] }

func (f *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	f.createCalls++
	if f.fails("Create") {
		return errStore
	}
	f.nextID++
	inv.ID = "inv-" + strconv.Itoa(f.nextID)
	f.invoices = append(f.invoices, *inv)
	return nil
}

func (f *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	f.updateCalls++
	if f.fails("Update") {
		return errStore
	}
	for i := range f.invoices {
		if f.invoices[i].ID == inv.ID {
			f.invoices[i].CustomerID = inv.CustomerID
			f.invoices[i].Amount = inv.Amount
			f.invoices[i].Status = inv.Status
			return nil
		}
	}
	// zero affected rows is still success
	return nil
}

func (f *fakeInvoiceRepo) Delete(_ context.Context, id string) error {
	f.deleteCalls++
	if f.fails("Delete") {
		return errStore
	}
	for i := range f.invoices {
		if f.invoices[i].ID == id {
			f.invoices = append(f.invoices[:i], f.invoices[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	if f.fails("GetByID") {
		return nil, errStore
	}
	for i := range f.invoices {
		if f.invoices[i].ID == id {
			inv := f.invoices[i]
			return &inv, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) ListLatest(_ context.Context, limit int) ([]entity.InvoiceWithCustomer, error) {
	if f.fails("ListLatest") {
		return nil, errStore
	}
	out := make([]entity.InvoiceWithCustomer, 0, limit)
	for i := range f.invoices {
		if len(out) == limit {
			break
		}
		inv := f.invoices[i]
		out = append(out, entity.InvoiceWithCustomer{ID: inv.ID, Amount: inv.Amount, Date: inv.Date, Status: inv.Status})
	}
	return out, nil
}

func (f *fakeInvoiceRepo) ListFiltered(_ context.Context, _ string, limit, offset int) ([]entity.InvoiceWithCustomer, error) {
	if f.fails("ListFiltered") {
		return nil, errStore
	}
	var out []entity.InvoiceWithCustomer
	for i := offset; i < len(f.invoices) && len(out) < limit; i++ {
		inv := f.invoices[i]
		out = append(out, entity.InvoiceWithCustomer{ID: inv.ID, Amount: inv.Amount, Date: inv.Date, Status: inv.Status})
	}
	return out, nil
}

func (f *fakeInvoiceRepo) CountFiltered(_ context.Context, _ string) (int64, error) {
	if f.fails("CountFiltered") {
		return 0, errStore
	}
	return int64(len(f.invoices)), nil
}

func (f *fakeInvoiceRepo) Count(_ context.Context) (int64, error) {
	if f.fails("Count") {
		return 0, errStore
	}
	return int64(len(f.invoices)), nil
}

func (f *fakeInvoiceRepo) TotalsByStatus(_ context.Context) (int64, int64, error) {
	if f.fails("TotalsByStatus") {
		return 0, 0, errStore
	}
	var paid, pending int64
	for _, inv := range f.invoices {
		switch inv.Status {
		case entity.InvoiceStatusPaid:
			paid += inv.Amount
		case entity.InvoiceStatusPending:
			pending += inv.Amount
		}
	}
	return paid, pending, nil
}

// fakeCustomerRepo is an in-memory CustomerRepository.
type fakeCustomerRepo struct {
	customers []entity.Customer
	stats     []entity.CustomerStats
	failOn    map[string]bool
	nextID    int

	createCalls int
	updateCalls int
	deleteCalls int
}

func (f *fakeCustomerRepo) fails(op string) bool { return f.failOn[op] }

func (f *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	f.createCalls++
	if f.fails("Create") {
		return errStore
	}
	f.nextID++
	c.ID = "cust-" + strconv.Itoa(f.nextID)
	f.customers = append(f.customers, *c)
	return nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	f.updateCalls++
	if f.fails("Update") {
		return errStore
	}
	for i := range f.customers {
		if f.customers[i].ID == c.ID {
			f.customers[i] = *c
			return nil
		}
	}
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id string) error {
	f.deleteCalls++
	if f.fails("Delete") {
		return errStore
	}
	for i := range f.customers {
		if f.customers[i].ID == id {
			f.customers = append(f.customers[:i], f.customers[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	if f.fails("GetByID") {
		return nil, errStore
	}
	for i := range f.customers {
		if f.customers[i].ID == id {
			c := f.customers[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) List(_ context.Context) ([]entity.CustomerField, error) {
	if f.fails("List") {
		return nil, errStore
	}
	out := make([]entity.CustomerField, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, entity.CustomerField{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

func (f *fakeCustomerRepo) ListFiltered(_ context.Context, _ string, limit, offset int) ([]entity.CustomerStats, error) {
	if f.fails("ListFiltered") {
		return nil, errStore
	}
	var out []entity.CustomerStats
	for i := offset; i < len(f.stats) && len(out) < limit; i++ {
		out = append(out, f.stats[i])
	}
	return out, nil
}

func (f *fakeCustomerRepo) CountFiltered(_ context.Context, _ string) (int64, error) {
	if f.fails("CountFiltered") {
		return 0, errStore
	}
	return int64(len(f.customers)), nil
}

func (f *fakeCustomerRepo) Count(_ context.Context) (int64, error) {
	if f.fails("Count") {
		return 0, errStore
	}
	return int64(len(f.customers)), nil
}

// fakeRevenueRepo returns a fixed revenue report.
type fakeRevenueRepo struct {
	rows []entity.Revenue
	err  error
}

func (f *fakeRevenueRepo) List(context.Context) ([]entity.Revenue, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

// fakeUserRepo resolves users by email.
type fakeUserRepo struct {
	users map[string]entity.User
	err   error
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[email]; ok {
		return &u, nil
	}
	return nil, nil
}

// recordingInvalidator captures the routes signaled for re-render.
type recordingInvalidator struct {
	paths []string
	err   error
}

func (r *recordingInvalidator) Invalidate(_ context.Context, path string) error {
	r.paths = append(r.paths, path)
	return r.err
}

// fakeUploader returns a canned URL or error for every blob.
type fakeUploader struct {
	url     string
	err     error
	uploads int
}

func (f *fakeUploader) Upload(_ context.Context, _ io.Reader, _, _ string) (string, error) {
	f.uploads++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}
