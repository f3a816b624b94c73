package models

import (
	"time"

	"github.com/techstore3d/techstore-backend/pkg/enums"
)

// Product is a catalog entry. Documents are keyed by the generated `id`
// field, never by Mongo's own `_id`.
type Product struct {
	ID          string            `bson:"id" json:"id"`
	Name        string            `bson:"name" json:"name"`
	Description string            `bson:"description" json:"description"`
	Price       float64           `bson:"price" json:"price"`
	Category    string            `bson:"category" json:"category"`
	ProductType enums.ProductType `bson:"product_type" json:"product_type"`
	Colors      []string          `bson:"colors" json:"colors"`
	ModelURL    *string           `bson:"model_url,omitempty" json:"model_url,omitempty"`
	Images      []string          `bson:"images" json:"images"`
	Stock       int               `bson:"stock" json:"stock"`
	Featured    bool              `bson:"featured" json:"featured"`
	CreatedAt   time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time         `bson:"updated_at" json:"updated_at"`
}
