package domain

import "time"

// Product is a marketplace listing. VendorID is the ownership link: it names
// the seller account that may mutate this product.
type Product struct {
	ID          string    `json:"productId"`
	Name        string    `json:"pname"`
	Price       float64   `json:"price"`
	Discount    int       `json:"discount"`
	Images      []string  `json:"images"`
	Quantity    int       `json:"quantity"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	VendorID    string    `json:"vendorId"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
