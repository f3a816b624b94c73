package users

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/techstore3d/techstore-backend/pkg/db"
	"github.com/techstore3d/techstore-backend/pkg/db/models"
	pkgerrors "github.com/techstore3d/techstore-backend/pkg/errors"
)

// Service exposes user registration and lookup. Users carry no update or
// delete surface by design.
type Service interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// CreateUserInput holds the validated payload to register a user.
type CreateUserInput struct {
	Email   string
	Name    string
	Phone   *string
	Address *string
}

type service struct {
	repo Repository
}

// NewService constructs a user service instance.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	return &service{repo: repo}, nil
}

// CreateUser registers a new shopper. Email uniqueness is enforced by a
// pre-check against the collection rather than a unique index.
func (s *service) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "User with this email already exists")
	} else if !db.IsNotFound(err) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check email")
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Email:     input.Email,
		Name:      input.Name,
		Phone:     input.Phone,
		Address:   input.Address,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert user")
	}
	return user, nil
}

func (s *service) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "User not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load user")
	}
	return user, nil
}
