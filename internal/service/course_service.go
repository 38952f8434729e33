package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/acad-api/internal/models"
	appErrors "github.com/noah-isme/acad-api/pkg/errors"
)

type courseRepository interface {
	List(ctx context.Context) ([]models.Course, error)
	ExistsByCode(ctx context.Context, kodeMK string) (bool, error)
	Create(ctx context.Context, course *models.Course) error
}

// CreateCourseRequest holds payload for creating mata kuliah.
type CreateCourseRequest struct {
	KodeMK string `json:"kode_mk" validate:"required,max=10"`
	NamaMK string `json:"nama_mk" validate:"required,max=100"`
	SKS    int    `json:"sks" validate:"required,gt=0"`
}

// CourseService handles mata kuliah use-cases.
type CourseService struct {
	repo      courseRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo courseRepository, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, validator: validate, logger: logger}
}

// List returns all courses ordered by code.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// Create registers a new course.
func (s *CourseService) Create(ctx context.Context, req CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid mata kuliah payload")
	}
	exists, err := s.repo.ExistsByCode(ctx, req.KodeMK)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate kode_mk")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "kode_mk already registered")
	}
	course := &models.Course{
		KodeMK: req.KodeMK,
		NamaMK: req.NamaMK,
		SKS:    req.SKS,
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}
	return course, nil
}
