package repository

import (
	"context"

	"github.com/finboard/dashboard/internal/domain/entity"
)

// CustomerRepository defines the storage operations for customers, including
// the statistics read path used by the customers table. Same not-found
// convention as InvoiceRepository: absence is (nil, nil), never an error.
type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	Update(ctx context.Context, c *entity.Customer) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)

	List(ctx context.Context) ([]entity.CustomerField, error)
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]entity.CustomerStats, error)
	CountFiltered(ctx context.Context, query string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
