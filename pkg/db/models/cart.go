package models

import "time"

// CartItem is one product/color line inside a cart. The id is unique within
// the cart only.
type CartItem struct {
	ID            string    `bson:"id" json:"id"`
	ProductID     string    `bson:"product_id" json:"product_id"`
	Quantity      int       `bson:"quantity" json:"quantity"`
	SelectedColor string    `bson:"selected_color" json:"selected_color"`
	AddedAt       time.Time `bson:"added_at" json:"added_at"`
}

// Cart holds the items for one browser session. Lookups always go through
// SessionID; the cart's own id is never used as a key. UserID stays nil for
// guest sessions.
type Cart struct {
	ID        string     `bson:"id" json:"id"`
	UserID    *string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	SessionID string     `bson:"session_id" json:"session_id"`
	Items     []CartItem `bson:"items" json:"items"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}
