package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/techstore3d/techstore-backend/pkg/db/models"
	"github.com/techstore3d/techstore-backend/pkg/enums"
	pkgerrors "github.com/techstore3d/techstore-backend/pkg/errors"
)

type sampleProduct struct {
	name        string
	description string
	price       float64
	category    string
	productType enums.ProductType
	colors      []string
	stock       int
}

var sampleProducts = []sampleProduct{
	{
		name:        "MacBook Pro M3",
		description: "Flagship laptop with the M3 chip and a 14-inch Retina display",
		price:       29999000,
		category:    "Laptop",
		productType: enums.ProductTypeLaptop,
		colors:      []string{"#C0C0C0", "#222222", "#FFD700"},
		stock:       25,
	},
	{
		name:        "iPhone 15 Pro",
		description: "Flagship smartphone with the A17 Pro chip and a titanium frame",
		price:       26999000,
		category:    "Smartphone",
		productType: enums.ProductTypePhone,
		colors:      []string{"#C0C0C0", "#222222", "#0066CC", "#FFD700"},
		stock:       50,
	},
	{
		name:        "AirPods Pro (2nd Gen)",
		description: "Wireless earbuds with active noise cancellation and spatial audio",
		price:       5999000,
		category:    "Audio",
		productType: enums.ProductTypeHeadphones,
		colors:      []string{"#FFFFFF", "#222222"},
		stock:       100,
	},
	{
		name:        "Apple Watch Series 9",
		description: "Smartwatch with advanced health sensors and an Always-On display",
		price:       8999000,
		category:    "Wearable",
		productType: enums.ProductTypeWatch,
		colors:      []string{"#C0C0C0", "#222222", "#FFD700", "#CC0000"},
		stock:       75,
	},
}

// SeedSampleData inserts the demo catalog once; it no-ops when any product
// already exists so repeated calls stay safe.
func (s *service) SeedSampleData(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count products")
	}
	if count > 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	products := make([]models.Product, 0, len(sampleProducts))
	for _, sample := range sampleProducts {
		products = append(products, models.Product{
			ID:          uuid.NewString(),
			Name:        sample.name,
			Description: sample.description,
			Price:       sample.price,
			Category:    sample.category,
			ProductType: sample.productType,
			Colors:      sample.colors,
			Images:      []string{},
			Stock:       sample.stock,
			Featured:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := s.repo.InsertMany(ctx, products); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert sample products")
	}
	return len(products), nil
}
