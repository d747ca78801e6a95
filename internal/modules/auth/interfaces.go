package auth

import (
	"context"

	"parishledger/internal/domain"
)

// UserRepository is the account store. GetByUsername returns (nil, nil)
// when no account exists.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
