package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/techstore3d/techstore-backend/pkg/db"
	"github.com/techstore3d/techstore-backend/pkg/db/models"
	pkgerrors "github.com/techstore3d/techstore-backend/pkg/errors"
)

type productLoader interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
}

// Service exposes session-scoped cart operations.
type Service interface {
	GetOrCreateCart(ctx context.Context, sessionID string) (*models.Cart, error)
	AddItem(ctx context.Context, sessionID string, input AddItemInput) (*models.Cart, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) error
	ClearCart(ctx context.Context, sessionID string) error
}

// AddItemInput captures one catalog line heading into a cart.
type AddItemInput struct {
	ProductID     string
	Quantity      int
	SelectedColor string
}

type service struct {
	repo     Repository
	products productLoader
}

// NewService builds a cart service backed by the provided stack.
func NewService(repo Repository, products productLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{repo: repo, products: products}, nil
}

// GetOrCreateCart fetches the session's cart, creating an empty one when the
// session has not been seen before. Two concurrent first-time callers can
// race and insert twice; later lookups settle on whichever document FindOne
// returns.
func (s *service) GetOrCreateCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}

	cart, err := s.repo.FindBySession(ctx, sessionID)
	if err == nil {
		return cart, nil
	}
	if !db.IsNotFound(err) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load cart")
	}

	now := time.Now().UTC()
	fresh := &models.Cart{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Items:     []models.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, fresh); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: create cart")
	}
	return fresh, nil
}

// AddItem verifies the product exists, then merges the line into the
// session's cart: an existing item with the same product and color has its
// quantity bumped, anything else is appended as a new item.
func (s *service) AddItem(ctx context.Context, sessionID string, input AddItemInput) (*models.Cart, error) {
	if input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	if _, err := s.products.FindByID(ctx, input.ProductID); err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}

	cart, err := s.GetOrCreateCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == input.ProductID && cart.Items[i].SelectedColor == input.SelectedColor {
			cart.Items[i].Quantity += input.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, models.CartItem{
			ID:            uuid.NewString(),
			ProductID:     input.ProductID,
			Quantity:      input.Quantity,
			SelectedColor: input.SelectedColor,
			AddedAt:       time.Now().UTC(),
		})
	}

	cart.UpdatedAt = time.Now().UTC()
	if err := s.repo.ReplaceItems(ctx, sessionID, cart.Items, cart.UpdatedAt); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: save cart")
	}
	return cart, nil
}

// RemoveItem drops the item from the session's cart. An unknown item id is
// not an error; the filter simply leaves the list unchanged.
func (s *service) RemoveItem(ctx context.Context, sessionID, itemID string) error {
	cart, err := s.repo.FindBySession(ctx, sessionID)
	if err != nil {
		if db.IsNotFound(err) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Cart not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load cart")
	}

	kept := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}

	if err := s.repo.ReplaceItems(ctx, sessionID, kept, time.Now().UTC()); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: save cart")
	}
	return nil
}

// ClearCart empties the session's cart unconditionally, creating an empty
// cart document for sessions that never had one.
func (s *service) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.repo.ClearItems(ctx, sessionID, time.Now().UTC()); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: clear cart")
	}
	return nil
}
