package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	app_errors "inner-story/backend/internal/errors"
	"inner-story/backend/internal/model"
	"inner-story/backend/internal/repository"
)

// statusListLimit bounds how many checks a single list call returns.
const statusListLimit = 1000

// StatusService records and lists client liveness checks.
type StatusService struct {
	repo repository.StatusRepository
}

func NewStatusService(repo repository.StatusRepository) *StatusService {
	return &StatusService{repo: repo}
}

func (s *StatusService) Create(ctx context.Context, clientName string) (*model.StatusCheck, error) {
	check := &model.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, check); err != nil {
		return nil, fmt.Errorf("%w: %v", app_errors.ErrStorage, err)
	}
	return check, nil
}

func (s *StatusService) List(ctx context.Context) ([]model.StatusCheck, error) {
	checks, err := s.repo.List(ctx, statusListLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app_errors.ErrStorage, err)
	}
	if checks == nil {
		checks = []model.StatusCheck{}
	}
	return checks, nil
}
