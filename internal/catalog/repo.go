package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techstore3d/techstore-backend/pkg/db"
	"github.com/techstore3d/techstore-backend/pkg/db/models"
)

// ProductFilter narrows a catalog listing. Zero-valued fields impose no
// constraint; Featured stays nil when the caller did not filter on it.
type ProductFilter struct {
	Category    string
	ProductType string
	Featured    *bool
}

func (f ProductFilter) toBSON() bson.M {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.ProductType != "" {
		filter["product_type"] = f.ProductType
	}
	if f.Featured != nil {
		filter["featured"] = *f.Featured
	}
	return filter
}

// Repository exposes product persistence operations.
type Repository interface {
	Find(ctx context.Context, filter ProductFilter, limit int64) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
	InsertMany(ctx context.Context, products []models.Product) error
	SetFields(ctx context.Context, id string, fields bson.M) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type mongoRepository struct {
	collection *mongo.Collection
}

// NewRepository constructs a catalog repo bound to the products collection.
func NewRepository(client *db.Client) Repository {
	return &mongoRepository{collection: client.Collection(db.CollectionProducts)}
}

func (r *mongoRepository) Find(ctx context.Context, filter ProductFilter, limit int64) ([]models.Product, error) {
	opts := options.Find()
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := r.collection.Find(ctx, filter.toBSON(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *mongoRepository) Insert(ctx context.Context, product *models.Product) error {
	_, err := r.collection.InsertOne(ctx, product)
	return err
}

func (r *mongoRepository) InsertMany(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	docs := make([]any, len(products))
	for i := range products {
		docs[i] = products[i]
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// SetFields applies a partial $set and reports how many documents matched.
func (r *mongoRepository) SetFields(ctx context.Context, id string, fields bson.M) (int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id string) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *mongoRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
