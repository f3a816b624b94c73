package cart

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techstore3d/techstore-backend/pkg/db"
	"github.com/techstore3d/techstore-backend/pkg/db/models"
)

// Repository exposes cart persistence operations. Every method is keyed by
// session id; the cart document's own id is never used for lookups.
type Repository interface {
	FindBySession(ctx context.Context, sessionID string) (*models.Cart, error)
	Insert(ctx context.Context, cart *models.Cart) error
	ReplaceItems(ctx context.Context, sessionID string, items []models.CartItem, updatedAt time.Time) error
	ClearItems(ctx context.Context, sessionID string, clearedAt time.Time) error
}

type mongoRepository struct {
	collection *mongo.Collection
}

// NewRepository constructs a cart repo bound to the carts collection.
func NewRepository(client *db.Client) Repository {
	return &mongoRepository{collection: client.Collection(db.CollectionCarts)}
}

func (r *mongoRepository) FindBySession(ctx context.Context, sessionID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.collection.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *mongoRepository) Insert(ctx context.Context, cart *models.Cart) error {
	_, err := r.collection.InsertOne(ctx, cart)
	return err
}

// ReplaceItems writes the full item list back to the session's cart. This is
// a read-modify-write over the whole document: two concurrent writers for the
// same session can each read the same prior state and the later write wins.
func (r *mongoRepository) ReplaceItems(ctx context.Context, sessionID string, items []models.CartItem, updatedAt time.Time) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"session_id": sessionID},
		bson.M{"$set": bson.M{"items": items, "updated_at": updatedAt}},
	)
	return err
}

// ClearItems empties the session's cart, creating an empty cart document when
// none exists yet.
func (r *mongoRepository) ClearItems(ctx context.Context, sessionID string, clearedAt time.Time) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"session_id": sessionID},
		bson.M{
			"$set": bson.M{"items": []models.CartItem{}, "updated_at": clearedAt},
			"$setOnInsert": bson.M{
				"id":         uuid.NewString(),
				"created_at": clearedAt,
			},
		},
		options.Update().SetUpsert(true),
	)
	return err
}
