package status

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/techstore3d/techstore-backend/pkg/db/models"
	pkgerrors "github.com/techstore3d/techstore-backend/pkg/errors"
)

// listCap bounds how many diagnostic entries a single read returns.
const listCap = 1000

// Service exposes the diagnostic heartbeat surface.
type Service interface {
	CreateCheck(ctx context.Context, clientName string) (*models.StatusCheck, error)
	ListChecks(ctx context.Context) ([]models.StatusCheck, error)
}

type service struct {
	repo Repository
}

// NewService constructs a status service instance.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("status repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) CreateCheck(ctx context.Context, clientName string) (*models.StatusCheck, error) {
	check := &models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, check); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert status check")
	}
	return check, nil
}

func (s *service) ListChecks(ctx context.Context) ([]models.StatusCheck, error) {
	checks, err := s.repo.List(ctx, listCap)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list status checks")
	}
	return checks, nil
}
