package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/marketgrid/marketplace-api/internal/core/domain"
	"github.com/marketgrid/marketplace-api/internal/core/ports"
)

// ProductService implements product CRUD behind the ownership policy: the
// named vendor must resolve to a seller account in the data layer, and the
// acting identity must own the target product. All checks run before any
// write, so a failed check leaves no partial state.
type ProductService struct {
	products ports.ProductRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

func NewProductService(products ports.ProductRepository, users ports.UserRepository, log zerolog.Logger) *ProductService {
	return &ProductService{products: products, users: users, log: log}
}

// Create verifies the named vendor and links the new product to it.
func (s *ProductService) Create(ctx context.Context, actor ports.Actor, in ports.ProductInput) (*domain.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}

	// The payload may name any vendor; the claim in the caller's token is not
	// trusted as sufficient. The vendor must exist with the seller role.
	vendor, err := s.users.FindSellerByID(ctx, in.VendorID)
	if err != nil {
		return nil, err
	}
	if !actorOwns(actor, vendor.ID) {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Price:       in.Price,
		Discount:    in.Discount,
		Images:      in.Images,
		Quantity:    in.Quantity,
		Category:    in.Category,
		Description: in.Description,
		VendorID:    vendor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.products.Create(ctx, product); err != nil {
		s.log.Error().Err(err).Str("vendor_id", vendor.ID).Msg("failed to create product")
		return nil, err
	}

	s.log.Info().Str("product_id", product.ID).Str("vendor_id", vendor.ID).Msg("product created")
	return product, nil
}

// Update replaces the mutable fields of an existing product.
func (s *ProductService) Update(ctx context.Context, actor ports.Actor, productID string, in ports.ProductInput) (*domain.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}

	vendor, err := s.users.FindSellerByID(ctx, in.VendorID)
	if err != nil {
		return nil, err
	}

	existing, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !actorOwns(actor, existing.VendorID) || !actorOwns(actor, vendor.ID) {
		return nil, domain.ErrForbidden
	}

	updated := &domain.Product{
		ID:          existing.ID,
		Name:        in.Name,
		Price:       in.Price,
		Discount:    in.Discount,
		Images:      in.Images,
		Quantity:    in.Quantity,
		Category:    in.Category,
		Description: in.Description,
		VendorID:    vendor.ID,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.products.Update(ctx, updated); err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", updated.ID).Str("vendor_id", vendor.ID).Msg("product updated")
	return updated, nil
}

// Delete removes a single product after verifying the caller owns it.
func (s *ProductService) Delete(ctx context.Context, actor ports.Actor, productID string) error {
	existing, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if !actorOwns(actor, existing.VendorID) {
		return domain.ErrForbidden
	}

	if err := s.products.Delete(ctx, productID); err != nil {
		return err
	}

	s.log.Info().Str("product_id", productID).Str("user_id", actor.UserID).Msg("product deleted")
	return nil
}

// DeleteMany removes a batch of products. Ownership of every product is
// verified before any delete is issued: one foreign id rejects the whole
// batch untouched.
func (s *ProductService) DeleteMany(ctx context.Context, actor ports.Actor, productIDs []string) error {
	if len(productIDs) == 0 {
		return fmt.Errorf("%w: productIds must be a non-empty array", domain.ErrValidation)
	}

	for _, id := range productIDs {
		existing, err := s.products.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !actorOwns(actor, existing.VendorID) {
			return domain.ErrForbidden
		}
	}

	deleted, err := s.products.DeleteMany(ctx, productIDs)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrProductNotFound
	}

	s.log.Info().Int64("deleted", deleted).Str("user_id", actor.UserID).Msg("products deleted")
	return nil
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx)
}

func (s *ProductService) ListByVendor(ctx context.Context, vendorID string) ([]*domain.Product, error) {
	return s.products.ListByVendor(ctx, vendorID)
}

// actorOwns reports whether the acting identity may mutate resources linked
// to vendorID. Admins bypass the ownership link, never the authentication.
func actorOwns(actor ports.Actor, vendorID string) bool {
	return actor.Role == domain.RoleAdmin || actor.UserID == vendorID
}

func validateProductInput(in ports.ProductInput) error {
	var errs []string
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, "invalid product name")
	}
	if in.Price <= 0 {
		errs = append(errs, "invalid price")
	}
	if in.Discount < 0 {
		errs = append(errs, "invalid discount")
	}
	if in.Quantity <= 0 {
		errs = append(errs, "invalid quantity")
	}
	if len(in.Images) == 0 {
		errs = append(errs, "at least one image URL is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		errs = append(errs, "invalid category")
	}
	if strings.TrimSpace(in.VendorID) == "" {
		errs = append(errs, "invalid vendor ID")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(errs, ", "))
	}
	return nil
}
