package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/acad-api/internal/models"
	appErrors "github.com/noah-isme/acad-api/pkg/errors"
)

type krsRepository interface {
	ListDetails(ctx context.Context, filter models.KRSFilter) ([]models.KRSDetail, error)
	Create(ctx context.Context, krs *models.KRS) error
}

// CreateKRSRequest holds payload for one enrollment. Nilai is optional
// and may be filled in later by the grading process.
type CreateKRSRequest struct {
	NIM      string  `json:"nim" validate:"required,max=10"`
	KodeMK   string  `json:"kode_mk" validate:"required,max=10"`
	Nilai    *string `json:"nilai" validate:"omitempty,min=1,max=2"`
	Semester int     `json:"semester" validate:"required,gt=0"`
}

// KRSService handles enrollment use-cases.
type KRSService struct {
	repo      krsRepository
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewKRSService constructs the KRS service.
func NewKRSService(repo krsRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *KRSService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KRSService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

// List returns the denormalized enrollments for one student ordered by
// semester then course code. Ungraded enrollments appear with a null
// nilai.
func (s *KRSService) List(ctx context.Context, filter models.KRSFilter) ([]models.KRSDetail, error) {
	start := time.Now()
	details, err := s.repo.ListDetails(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list krs")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("krs_list", time.Since(start))
	}
	if details == nil {
		details = []models.KRSDetail{}
	}
	return details, nil
}

// Create records one enrollment. Referential failures (unknown nim,
// kode_mk, or nilai) are the store's to reject and surface as internal
// errors.
func (s *KRSService) Create(ctx context.Context, req CreateKRSRequest) (*models.KRS, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid krs payload")
	}
	krs := &models.KRS{
		NIM:      req.NIM,
		KodeMK:   req.KodeMK,
		Nilai:    req.Nilai,
		Semester: req.Semester,
	}
	start := time.Now()
	if err := s.repo.Create(ctx, krs); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create krs")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("krs_create", time.Since(start))
	}
	return krs, nil
}
