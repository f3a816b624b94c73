package models

import "time"

// User represents a registered shopper. Email is unique across the
// collection, enforced by a pre-check at write time.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name" json:"name"`
	Phone     *string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   *string   `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
