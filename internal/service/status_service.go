package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/acad-api/internal/models"
	appErrors "github.com/noah-isme/acad-api/pkg/errors"
)

type statusRepository interface {
	Counts(ctx context.Context) (*models.DBStatistics, error)
	Version(ctx context.Context) (string, error)
}

// StatusService assembles the db-status diagnostic.
type StatusService struct {
	repo   statusRepository
	logger *zap.Logger
}

// NewStatusService constructs the status service.
func NewStatusService(repo statusRepository, logger *zap.Logger) *StatusService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatusService{repo: repo, logger: logger}
}

// Check reports row counts per collection and the engine version. Any
// failure means the store is unreachable and surfaces as Unavailable.
func (s *StatusService) Check(ctx context.Context) (*models.DBStatus, error) {
	stats, err := s.repo.Counts(ctx)
	if err != nil {
		s.logger.Error("db-status counts failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "database unreachable")
	}
	version, err := s.repo.Version(ctx)
	if err != nil {
		s.logger.Error("db-status version failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "database unreachable")
	}

	return &models.DBStatus{
		Status:     "connected",
		Database:   "PostgreSQL",
		Version:    shortVersion(version),
		Statistics: *stats,
	}, nil
}

// shortVersion keeps the product name and release number, dropping the
// build details version() appends.
func shortVersion(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) > 2 {
		fields = fields[:2]
	}
	return strings.Join(fields, " ")
}
