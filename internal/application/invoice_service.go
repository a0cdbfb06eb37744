package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/finboard/dashboard/internal/domain/entity"
	"github.com/finboard/dashboard/internal/domain/repository"
	"github.com/finboard/dashboard/internal/forms"
	"github.com/finboard/dashboard/internal/infrastructure/viewcache"
	"github.com/finboard/dashboard/pkg/money"
)

// InvoiceService owns the invoice read and write operations.
type InvoiceService struct {
	Repo   repository.InvoiceRepository
	Cache  viewcache.Invalidator
	Logger *logrus.Logger
}

func NewInvoiceService(repo repository.InvoiceRepository, cache viewcache.Invalidator, logger *logrus.Logger) *InvoiceService {
	return &InvoiceService{Repo: repo, Cache: cache, Logger: logger}
}

// InvoiceFormData is the edit-form projection of a stored invoice, with the
// amount converted back to major units.
type InvoiceFormData struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

// FetchFilteredInvoices returns one page of invoices matching the
// case-insensitive substring filter, newest issue date first.
func (s *InvoiceService) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]entity.InvoiceWithCustomer, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * InvoicesPerPage
	rows, err := s.Repo.ListFiltered(ctx, query, InvoicesPerPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}
	return rows, nil
}

// FetchInvoicesPages returns the total page count for the same filter
// predicate FetchFilteredInvoices uses; zero matches means zero pages.
func (s *InvoiceService) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	count, err := s.Repo.CountFiltered(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch total number of invoices: %w", err)
	}
	return int((count + InvoicesPerPage - 1) / InvoicesPerPage), nil
}

// FetchInvoiceByID returns the edit-form projection, or nil without error
// when no row matches.
func (s *InvoiceService) FetchInvoiceByID(ctx context.Context, id string) (*InvoiceFormData, error) {
	inv, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoice: %w", err)
	}
	if inv == nil {
		return nil, nil
	}
	return &InvoiceFormData{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     money.CentsToMajor(inv.Amount),
		Status:     inv.Status,
	}, nil
}

// CreateInvoice validates the form, stores the row with a system-assigned
// issue date, and signals the invoice list for re-render.
func (s *InvoiceService) CreateInvoice(ctx context.Context, form forms.InvoiceForm) MutationResult {
	fields, ferrs := form.Validate()
	if ferrs != nil {
		return MutationResult{FieldErrors: ferrs, Message: "Missing fields. Failed to create invoice."}
	}
	inv := &entity.Invoice{
		CustomerID: fields.CustomerID,
		Amount:     fields.AmountCents,
		Status:     fields.Status,
		Date:       issueDate(),
	}
	if err := s.Repo.Create(ctx, inv); err != nil {
		s.logError("create invoice failed", err)
		return MutationResult{Message: "Database error: failed to create invoice."}
	}
	revalidate(ctx, s.Cache, s.Logger, InvoicesPath)
	return MutationResult{Ok: true, RedirectTo: InvoicesPath}
}

// UpdateInvoice revalidates the form fields and overwrites customer, amount
// and status on the row matching id. The id comes from the route, not the
// form, and is not re-validated.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id string, form forms.InvoiceForm) MutationResult {
	fields, ferrs := form.Validate()
	if ferrs != nil {
		return MutationResult{FieldErrors: ferrs, Message: "Missing fields. Failed to update invoice."}
	}
	inv := &entity.Invoice{
		ID:         id,
		CustomerID: fields.CustomerID,
		Amount:     fields.AmountCents,
		Status:     fields.Status,
	}
	if err := s.Repo.Update(ctx, inv); err != nil {
		s.logError("update invoice failed", err)
		return MutationResult{Message: "Database error: failed to update invoice."}
	}
	revalidate(ctx, s.Cache, s.Logger, InvoicesPath)
	return MutationResult{Ok: true, RedirectTo: InvoicesPath}
}

// DeleteInvoice deletes by id. Deleting an id that no longer exists still
// reports success; zero affected rows is indistinguishable by contract.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id string) MutationResult {
	if err := s.Repo.Delete(ctx, id); err != nil {
		s.logError("delete invoice failed", err)
		return MutationResult{Message: "Database error: failed to delete invoice."}
	}
	revalidate(ctx, s.Cache, s.Logger, InvoicesPath)
	return MutationResult{Ok: true, Message: "Deleted invoice."}
}

func (s *InvoiceService) logError(msg string, err error) {
	if s.Logger != nil {
		s.Logger.WithError(err).Error(msg)
	}
}

// issueDate assigns the invoice's calendar date: today, UTC, midnight.
func issueDate() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
