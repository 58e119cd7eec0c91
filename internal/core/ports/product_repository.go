package ports

import (
	"context"

	"github.com/marketgrid/marketplace-api/internal/core/domain"
)

// ProductRepository defines persistence operations for product listings.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// Update replaces the mutable fields of the product identified by p.ID.
	// A missing product yields domain.ErrProductNotFound.
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	// DeleteMany removes all products whose ids are listed and returns the
	// number actually deleted.
	DeleteMany(ctx context.Context, ids []string) (int64, error)
	List(ctx context.Context) ([]*domain.Product, error)
	ListByVendor(ctx context.Context, vendorID string) ([]*domain.Product, error)
}
