package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/marketgrid/marketplace-api/internal/core/domain"
)

const productsCollection = "products"

// ProductRepository implements ports.ProductRepository on top of MongoDB.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(productsCollection)}
}

type productDoc struct {
	ID          string   `bson:"_id"`
	Name        string   `bson:"name"`
	Price       float64  `bson:"price"`
	Discount    int      `bson:"discount"`
	Images      []string `bson:"images"`
	Quantity    int      `bson:"quantity"`
	Category    string   `bson:"category"`
	Description string   `bson:"description"`
	VendorID    string   `bson:"vendor_id"`
	CreatedAt   int64    `bson:"created_at"`
	UpdatedAt   int64    `bson:"updated_at"`
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toDoc(p)); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc productDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc.toDomain(), nil
}

// Update replaces the mutable fields of the product identified by p.ID.
func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"price":       p.Price,
		"discount":    p.Discount,
		"images":      p.Images,
		"quantity":    p.Quantity,
		"category":    p.Category,
		"description": p.Description,
		"vendor_id":   p.VendorID,
		"updated_at":  p.UpdatedAt.Unix(),
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": p.ID}, update)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// DeleteMany removes the listed products and returns the number deleted.
func (r *ProductRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("delete products: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *ProductRepository) ListByVendor(ctx context.Context, vendorID string) ([]*domain.Product, error) {
	return r.find(ctx, bson.M{"vendor_id": vendorID})
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M) ([]*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	var products []*domain.Product
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// EnsureIndexes creates the vendor lookup index.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "vendor_id", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func toDoc(p *domain.Product) productDoc {
	return productDoc{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Discount:    p.Discount,
		Images:      p.Images,
		Quantity:    p.Quantity,
		Category:    p.Category,
		Description: p.Description,
		VendorID:    p.VendorID,
		CreatedAt:   p.CreatedAt.Unix(),
		UpdatedAt:   p.UpdatedAt.Unix(),
	}
}

func (d *productDoc) toDomain() *domain.Product {
	return &domain.Product{
		ID:          d.ID,
		Name:        d.Name,
		Price:       d.Price,
		Discount:    d.Discount,
		Images:      d.Images,
		Quantity:    d.Quantity,
		Category:    d.Category,
		Description: d.Description,
		VendorID:    d.VendorID,
		CreatedAt:   unixToTime(d.CreatedAt),
		UpdatedAt:   unixToTime(d.UpdatedAt),
	}
}
