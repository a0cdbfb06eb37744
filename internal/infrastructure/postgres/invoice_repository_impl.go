package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finboard/dashboard/internal/domain/entity"
	"github.com/finboard/dashboard/internal/domain/repository"
)

// InvoiceRepository is the raw-SQL implementation over pgxpool.
type InvoiceRepository struct {
	pool *pgxpool.Pool
}

func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

const invoiceFilterWhere = `
	customers.name ILIKE $1 OR
	customers.email ILIKE $1 OR
	invoices.amount::text ILIKE $1 OR
	invoices.date::text ILIKE $1 OR
	invoices.status ILIKE $1`

func likePattern(query string) string {
	return "%" + query + "%"
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *entity.Invoice) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, inv.CustomerID, inv.Amount, inv.Status, inv.Date)
	return row.Scan(&inv.ID)
}

// Update overwrites the row matching inv.ID. Zero affected rows is not an
// error; last write wins and there is no existence check.
func (r *InvoiceRepository) Update(ctx context.Context, inv *entity.Invoice) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4
	`, inv.CustomerID, inv.Amount, inv.Status, inv.ID)
	return err
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	return err
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	inv := &entity.Invoice{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE id = $1
	`, id)
	if err := row.Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return inv, nil
}

func (r *InvoiceRepository) ListLatest(ctx context.Context, limit int) ([]entity.InvoiceWithCustomer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT invoices.id, invoices.amount, invoices.date, invoices.status,
		       customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		ORDER BY invoices.date DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInvoiceRows(rows)
}

func (r *InvoiceRepository) ListFiltered(ctx context.Context, query string, limit, offset int) ([]entity.InvoiceWithCustomer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT invoices.id, invoices.amount, invoices.date, invoices.status,
		       customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE`+invoiceFilterWhere+`
		ORDER BY invoices.date DESC
		LIMIT $2 OFFSET $3
	`, likePattern(query), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInvoiceRows(rows)
}

func (r *InvoiceRepository) CountFiltered(ctx context.Context, query string) (int64, error) {
	var count int64
	row := r.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE`+invoiceFilterWhere, likePattern(query))
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *InvoiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *InvoiceRepository) TotalsByStatus(ctx context.Context) (paid, pending int64, err error) {
	row := r.pool.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending
		FROM invoices
	`)
	if err := row.Scan(&paid, &pending); err != nil {
		return 0, 0, err
	}
	return paid, pending, nil
}

func scanInvoiceRows(rows pgx.Rows) ([]entity.InvoiceWithCustomer, error) {
	var out []entity.InvoiceWithCustomer
	for rows.Next() {
		var iv entity.InvoiceWithCustomer
		if err := rows.Scan(&iv.ID, &iv.Amount, &iv.Date, &iv.Status, &iv.Name, &iv.Email, &iv.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, rows.Err()
}

var _ repository.InvoiceRepository = (*InvoiceRepository)(nil)
