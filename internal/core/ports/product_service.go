package ports

import (
	"context"

	"github.com/marketgrid/marketplace-api/internal/core/domain"
)

// Actor identifies the authenticated caller performing an operation. It is
// derived from verified token claims, never from request payload fields.
type Actor struct {
	UserID string
	Role   string
}

// ProductInput carries the fields supplied on product create and update.
type ProductInput struct {
	Name        string
	Price       float64
	Discount    int
	Images      []string
	Quantity    int
	Category    string
	Description string
	VendorID    string
}

// ProductService defines product use cases. Every mutation enforces the
// ownership policy: the target vendor must hold the seller role, and the
// acting identity must own the product (admins are exempt from the
// ownership-link check, not from authentication).
type ProductService interface {
	Create(ctx context.Context, actor Actor, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, actor Actor, productID string, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, actor Actor, productID string) error
	DeleteMany(ctx context.Context, actor Actor, productIDs []string) error
	List(ctx context.Context) ([]*domain.Product, error)
	ListByVendor(ctx context.Context, vendorID string) ([]*domain.Product, error)
}
