package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finboard/dashboard/internal/domain/entity"
	"github.com/finboard/dashboard/internal/domain/repository"
)

// RevenueRepository reads the report table. Rows come back in table order;
// the seed loads one row per month, January first.
type RevenueRepository struct {
	pool *pgxpool.Pool
}

func NewRevenueRepository(pool *pgxpool.Pool) *RevenueRepository {
	return &RevenueRepository{pool: pool}
}

func (r *RevenueRepository) List(ctx context.Context) ([]entity.Revenue, error) {
	rows, err := r.pool.Query(ctx, `SELECT month, revenue FROM revenue`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Revenue
	for rows.Next() {
		var rev entity.Revenue
		if err := rows.Scan(&rev.Month, &rev.Revenue); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}

var _ repository.RevenueRepository = (*RevenueRepository)(nil)
