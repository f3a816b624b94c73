package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/techstore3d/techstore-backend/pkg/config"
	"github.com/techstore3d/techstore-backend/pkg/db"
	"github.com/techstore3d/techstore-backend/pkg/db/models"
	"github.com/techstore3d/techstore-backend/pkg/enums"
	pkgerrors "github.com/techstore3d/techstore-backend/pkg/errors"
)

// Service exposes product catalog operations.
type Service interface {
	ListProducts(ctx context.Context, input ListProductsInput) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	SeedSampleData(ctx context.Context) (int, error)
}

// ListProductsInput narrows and bounds a catalog listing.
type ListProductsInput struct {
	Category    string
	ProductType string
	Featured    *bool
	Limit       int
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	ProductType string
	Colors      []string
	ModelURL    *string
	Images      []string
	Stock       int
	Featured    bool
}

// UpdateProductInput holds optional mutation values; nil fields are left
// untouched so an explicit false/0 is distinguishable from "absent".
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	ProductType *string
	Colors      *[]string
	ModelURL    *string
	Images      *[]string
	Stock       *int
	Featured    *bool
}

type service struct {
	repo   Repository
	limits config.CatalogConfig
}

// NewService constructs a catalog service instance.
func NewService(repo Repository, limits config.CatalogConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if limits.DefaultListLimit <= 0 {
		limits.DefaultListLimit = 50
	}
	if limits.MaxListLimit < limits.DefaultListLimit {
		limits.MaxListLimit = limits.DefaultListLimit
	}
	return &service{repo: repo, limits: limits}, nil
}

// ListProducts returns products matching every supplied filter, truncated to
// the requested limit.
func (s *service) ListProducts(ctx context.Context, input ListProductsInput) ([]models.Product, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = s.limits.DefaultListLimit
	}
	if limit > s.limits.MaxListLimit {
		limit = s.limits.MaxListLimit
	}

	products, err := s.repo.Find(ctx, ProductFilter{
		Category:    input.Category,
		ProductType: input.ProductType,
		Featured:    input.Featured,
	}, int64(limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list products")
	}
	return products, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}
	return product, nil
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	now := time.Now().UTC()
	product := &models.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ProductType: enums.ProductType(input.ProductType),
		Colors:      emptyWhenNil(input.Colors),
		ModelURL:    input.ModelURL,
		Images:      emptyWhenNil(input.Images),
		Stock:       input.Stock,
		Featured:    input.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert product")
	}
	return product, nil
}

// UpdateProduct applies only the fields present in the payload and refreshes
// updated_at, returning the merged document.
func (s *service) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*models.Product, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}

	fields := bson.M{"updated_at": time.Now().UTC()}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.ProductType != nil {
		fields["product_type"] = *input.ProductType
	}
	if input.Colors != nil {
		fields["colors"] = emptyWhenNil(*input.Colors)
	}
	if input.ModelURL != nil {
		fields["model_url"] = *input.ModelURL
	}
	if input.Images != nil {
		fields["images"] = emptyWhenNil(*input.Images)
	}
	if input.Stock != nil {
		fields["stock"] = *input.Stock
	}
	if input.Featured != nil {
		fields["featured"] = *input.Featured
	}

	if _, err := s.repo.SetFields(ctx, id, fields); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update product")
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: reload product")
	}
	return updated, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete product")
	}
	if deleted == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
	}
	return nil
}

func emptyWhenNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
