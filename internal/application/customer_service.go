package application

import (
	"bytes"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/finboard/dashboard/internal/domain/entity"
	"github.com/finboard/dashboard/internal/domain/repository"
	"github.com/finboard/dashboard/internal/forms"
	"github.com/finboard/dashboard/internal/infrastructure/viewcache"
	"github.com/finboard/dashboard/pkg/money"
	"github.com/finboard/dashboard/pkg/uploader"
)

// CustomerService owns the customer read and write operations. Images go
// through the pluggable Uploader; with the Placeholder uploader the image
// rule is not enforced and every row gets the static default path.
type CustomerService struct {
	Repo         repository.CustomerRepository
	Cache        viewcache.Invalidator
	Uploader     uploader.Uploader
	RequireImage bool
	Logger       *logrus.Logger
}

func NewCustomerService(repo repository.CustomerRepository, cache viewcache.Invalidator, up uploader.Uploader, requireImage bool, logger *logrus.Logger) *CustomerService {
	return &CustomerService{Repo: repo, Cache: cache, Uploader: up, RequireImage: requireImage, Logger: logger}
}

// CustomerTableRow is a filtered customer annotated with derived invoice
// statistics; the pending and paid sums are pre-formatted currency strings.
type CustomerTableRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

// FetchCustomers returns every customer's id and name, ordered by name, for
// select inputs.
func (s *CustomerService) FetchCustomers(ctx context.Context) ([]entity.CustomerField, error) {
	rows, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch all customers: %w", err)
	}
	return rows, nil
}

// FetchFilteredCustomers returns one page of customers matching the name or
// email substring filter, each annotated with invoice statistics.
func (s *CustomerService) FetchFilteredCustomers(ctx context.Context, query string, page int) ([]CustomerTableRow, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * InvoicesPerPage
	rows, err := s.Repo.ListFiltered(ctx, query, InvoicesPerPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch filtered customers: %w", err)
	}
	out := make([]CustomerTableRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, CustomerTableRow{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      row.ImageURL,
			TotalInvoices: row.TotalInvoices,
			TotalPending:  money.FormatCents(row.TotalPending),
			TotalPaid:     money.FormatCents(row.TotalPaid),
		})
	}
	return out, nil
}

// FetchCustomersPages returns the total page count for the customer filter
// predicate (name, email or image path substring).
func (s *CustomerService) FetchCustomersPages(ctx context.Context, query string) (int, error) {
	count, err := s.Repo.CountFiltered(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch total number of customers: %w", err)
	}
	return int((count + InvoicesPerPage - 1) / InvoicesPerPage), nil
}

// FetchCustomerByID returns the customer row, or nil without error when
// absent.
func (s *CustomerService) FetchCustomerByID(ctx context.Context, id string) (*entity.Customer, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}
	return c, nil
}

// CreateCustomer validates the form, resolves the image through the upload
// collaborator, stores the row and signals the customer list for re-render.
func (s *CustomerService) CreateCustomer(ctx context.Context, form forms.CustomerForm) MutationResult {
	fields, ferrs := form.Validate(s.RequireImage)
	if ferrs != nil {
		return MutationResult{FieldErrors: ferrs, Message: "Missing fields. Failed to create customer."}
	}
	imageURL, err := s.resolveImage(ctx, form, fields.Image)
	if err != nil {
		s.logError("customer image upload failed", err)
		return MutationResult{Message: "Failed to upload customer image."}
	}
	cust := &entity.Customer{Name: fields.Name, Email: fields.Email, ImageURL: imageURL}
	if err := s.Repo.Create(ctx, cust); err != nil {
		s.logError("create customer failed", err)
		return MutationResult{Message: "Database error: failed to create customer."}
	}
	revalidate(ctx, s.Cache, s.Logger, CustomersPath)
	return MutationResult{Ok: true, RedirectTo: CustomersPath}
}

// UpdateCustomer revalidates the form and overwrites name, email and image
// path on the row matching id.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id string, form forms.CustomerForm) MutationResult {
	fields, ferrs := form.Validate(s.RequireImage)
	if ferrs != nil {
		return MutationResult{FieldErrors: ferrs, Message: "Missing fields. Failed to update customer."}
	}
	imageURL, err := s.resolveImage(ctx, form, fields.Image)
	if err != nil {
		s.logError("customer image upload failed", err)
		return MutationResult{Message: "Failed to upload customer image."}
	}
	cust := &entity.Customer{ID: id, Name: fields.Name, Email: fields.Email, ImageURL: imageURL}
	if err := s.Repo.Update(ctx, cust); err != nil {
		s.logError("update customer failed", err)
		return MutationResult{Message: "Database error: failed to update customer."}
	}
	revalidate(ctx, s.Cache, s.Logger, CustomersPath)
	return MutationResult{Ok: true, RedirectTo: CustomersPath}
}

// DeleteCustomer deletes by id; a missing id still reports success.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id string) MutationResult {
	if err := s.Repo.Delete(ctx, id); err != nil {
		s.logError("delete customer failed", err)
		return MutationResult{Message: "Database error: failed to delete customer."}
	}
	revalidate(ctx, s.Cache, s.Logger, CustomersPath)
	return MutationResult{Ok: true, Message: "Deleted customer."}
}

func (s *CustomerService) resolveImage(ctx context.Context, form forms.CustomerForm, blob []byte) (string, error) {
	return s.Uploader.Upload(ctx, bytes.NewReader(blob), form.ImageName, form.ImageType)
}

func (s *CustomerService) logError(msg string, err error) {
	if s.Logger != nil {
		s.Logger.WithError(err).Error(msg)
	}
}
