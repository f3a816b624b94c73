package status

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techstore3d/techstore-backend/pkg/db"
	"github.com/techstore3d/techstore-backend/pkg/db/models"
)

// Repository exposes persistence for diagnostic status checks.
type Repository interface {
	Insert(ctx context.Context, check *models.StatusCheck) error
	List(ctx context.Context, limit int64) ([]models.StatusCheck, error)
}

type mongoRepository struct {
	collection *mongo.Collection
}

// NewRepository constructs a status repo bound to the status_checks collection.
func NewRepository(client *db.Client) Repository {
	return &mongoRepository{collection: client.Collection(db.CollectionStatusChecks)}
}

func (r *mongoRepository) Insert(ctx context.Context, check *models.StatusCheck) error {
	_, err := r.collection.InsertOne(ctx, check)
	return err
}

func (r *mongoRepository) List(ctx context.Context, limit int64) ([]models.StatusCheck, error) {
	opts := options.Find()
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	checks := []models.StatusCheck{}
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, err
	}
	return checks, nil
}
