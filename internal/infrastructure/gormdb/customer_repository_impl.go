package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/finboard/dashboard/internal/domain/entity"
	"github.com/finboard/dashboard/internal/domain/repository"
)

// CustomerRepository is the ORM-backed implementation. Callers cannot tell it
// apart from the raw-SQL repositories; the interface contract is identical.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	row := Customer{Name: c.Name, Email: c.Email, ImageURL: c.ImageURL}
	if err := r.db.WithContext(ctx).Omit("Invoices").Create(&row).Error; err != nil {
		return err
	}
	c.ID = row.ID
	return nil
}

// Update overwrites name, email and image_url by id. Zero affected rows is
// not an error, matching the invoice write semantics.
func (r *CustomerRepository) Update(ctx context.Context, c *entity.Customer) error {
	return r.db.WithContext(ctx).
		Model(&Customer{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{"name": c.Name, "email": c.Email, "image_url": c.ImageURL}).
		Error
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Customer{}).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	var row Customer
	err := r.db.WithContext(ctx).
		Select("id", "name", "email", "image_url").
		First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity.Customer{ID: row.ID, Name: row.Name, Email: row.Email, ImageURL: row.ImageURL}, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]entity.CustomerField, error) {
	var rows []Customer
	err := r.db.WithContext(ctx).
		Select("id", "name").
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entity.CustomerField, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.CustomerField{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

// ListFiltered loads matching customers with their invoices preloaded and
// derives the per-customer aggregates in process, the way the statistics
// page consumes them.
func (r *CustomerRepository) ListFiltered(ctx context.Context, query string, limit, offset int) ([]entity.CustomerStats, error) {
	pattern := "%" + query + "%"
	var rows []Customer
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR email ILIKE ?", pattern, pattern).
		Preload("Invoices").
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.CustomerStats, 0, len(rows))
	for _, row := range rows {
		stats := entity.CustomerStats{
			Customer:      entity.Customer{ID: row.ID, Name: row.Name, Email: row.Email, ImageURL: row.ImageURL},
			TotalInvoices: int64(len(row.Invoices)),
		}
		for _, inv := range row.Invoices {
			switch inv.Status {
			case entity.InvoiceStatusPending:
				stats.TotalPending += inv.Amount
			case entity.InvoiceStatusPaid:
				stats.TotalPaid += inv.Amount
			}
		}
		out = append(out, stats)
	}
	return out, nil
}

func (r *CustomerRepository) CountFiltered(ctx context.Context, query string) (int64, error) {
	pattern := "%" + query + "%"
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Customer{}).
		Where("name ILIKE ? OR email ILIKE ? OR image_url ILIKE ?", pattern, pattern, pattern).
		Count(&count).Error
	return count, err
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Customer{}).Count(&count).Error
	return count, err
}

var _ repository.CustomerRepository = (*CustomerRepository)(nil)
