package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/acad-api/internal/models"
	appErrors "github.com/noah-isme/acad-api/pkg/errors"
)

type gradeWeightRepository interface {
	List(ctx context.Context) ([]models.GradeWeight, error)
}

// GradeWeightService exposes the read-only bobot nilai reference data.
type GradeWeightService struct {
	repo   gradeWeightRepository
	logger *zap.Logger
}

// NewGradeWeightService constructs the service.
func NewGradeWeightService(repo gradeWeightRepository, logger *zap.Logger) *GradeWeightService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeWeightService{repo: repo, logger: logger}
}

// List returns every grade-to-weight mapping.
func (s *GradeWeightService) List(ctx context.Context) ([]models.GradeWeight, error) {
	weights, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list grade weights")
	}
	if weights == nil {
		weights = []models.GradeWeight{}
	}
	return weights, nil
}
