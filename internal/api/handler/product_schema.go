package handler

import (
	"github.com/marketgrid/marketplace-api/internal/core/domain"
	"github.com/marketgrid/marketplace-api/internal/core/ports"
)

// productRequest is the payload accepted on product create and update. Field
// names match the public API contract.
type productRequest struct {
	Name        string   `json:"pname" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Discount    int      `json:"discount" validate:"gte=0"`
	Images      []string `json:"images" validate:"required,min=1"`
	Quantity    int      `json:"quantity" validate:"required,gt=0"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description"`
	VendorID    string   `json:"vendorId" validate:"required"`
}

func (r *productRequest) toInput() ports.ProductInput {
	return ports.ProductInput{
		Name:        r.Name,
		Price:       r.Price,
		Discount:    r.Discount,
		Images:      r.Images,
		Quantity:    r.Quantity,
		Category:    r.Category,
		Description: r.Description,
		VendorID:    r.VendorID,
	}
}

type productResponse struct {
	Message string          `json:"message"`
	Product *domain.Product `json:"product"`
}

type deleteSelectedRequest struct {
	ProductIDs []string `json:"productIds" validate:"required,min=1"`
}
