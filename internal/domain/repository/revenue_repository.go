package repository

import (
	"context"

	"github.com/finboard/dashboard/internal/domain/entity"
)

// RevenueRepository exposes the read-only revenue report rows.
type RevenueRepository interface {
	List(ctx context.Context) ([]entity.Revenue, error)
}
