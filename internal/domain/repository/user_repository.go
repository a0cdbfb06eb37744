package repository

import (
	"context"

	"github.com/finboard/dashboard/internal/domain/entity"
)

// UserRepository looks up credential records for the auth service.
// An unknown email returns (nil, nil).
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
