package repository

import (
	"context"

	"github.com/finboard/dashboard/internal/domain/entity"
)

// InvoiceRepository defines the storage operations for invoices.
// By-id lookups return (nil, nil) when no row matches; an error always means
// a genuine store failure.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *entity.Invoice) error
	Update(ctx context.Context, inv *entity.Invoice) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)

	ListLatest(ctx context.Context, limit int) ([]entity.InvoiceWithCustomer, error)
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]entity.InvoiceWithCustomer, error)
	CountFiltered(ctx context.Context, query string) (int64, error)
	Count(ctx context.Context) (int64, error)
	TotalsByStatus(ctx context.Context) (paid, pending int64, err error)
}
