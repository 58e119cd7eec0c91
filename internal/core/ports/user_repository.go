package ports

import (
	"context"

	"github.com/marketgrid/marketplace-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	// Create stores a new account. A duplicate email yields domain.ErrEmailInUse.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindSellerByID resolves id to an account holding the seller role.
	// A missing account or one with a different role yields domain.ErrVendorNotFound.
	FindSellerByID(ctx context.Context, id string) (*domain.User, error)
}
