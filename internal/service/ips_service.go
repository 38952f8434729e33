package service

import (
	"context"
	"database/sql"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/acad-api/internal/models"
	appErrors "github.com/noah-isme/acad-api/pkg/errors"
)

type semesterGradeReader interface {
	SemesterGrades(ctx context.Context, nim string, semester int) ([]models.SemesterGrade, error)
}

type studentNameReader interface {
	FindByNIM(ctx context.Context, nim string) (*models.Student, error)
}

// CalculateIPSRequest identifies the student and term to aggregate.
type CalculateIPSRequest struct {
	NIM      string `json:"nim" validate:"required,max=10"`
	Semester int    `json:"semester" validate:"required,gt=0"`
}

// IPSService computes the credit-weighted semester GPA.
type IPSService struct {
	grades    semesterGradeReader
	students  studentNameReader
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewIPSService constructs the IPS service.
func NewIPSService(grades semesterGradeReader, students studentNameReader, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *IPSService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IPSService{grades: grades, students: students, validator: validate, metrics: metrics, logger: logger}
}

// Calculate aggregates graded enrollments for one (nim, semester).
// Enrollments without a resolvable grade never reach this computation;
// an empty result set is NotFound. Sums run at full float64 precision
// and rounding happens only on the presented values.
func (s *IPSService) Calculate(ctx context.Context, req CalculateIPSRequest) (*models.IPSReport, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid ips payload")
	}

	start := time.Now()
	rows, err := s.grades.SemesterGrades(ctx, req.NIM, req.Semester)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester grades")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("ips_semester_grades", time.Since(start))
	}
	if len(rows) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no krs data found for this semester")
	}

	var totalBobot float64
	var totalSKS int
	details := make([]models.IPSCourseDetail, 0, len(rows))
	for _, row := range rows {
		weighted := row.Bobot * float64(row.SKS)
		totalBobot += weighted
		totalSKS += row.SKS
		details = append(details, models.IPSCourseDetail{
			MataKuliah: row.NamaMK,
			SKS:        row.SKS,
			Nilai:      row.Nilai,
			Bobot:      row.Bobot,
			BobotXSKS:  round2(weighted),
		})
	}

	// Unreachable while the empty-set guard holds, but a zero-credit
	// course must not divide by zero.
	var ips float64
	if totalSKS > 0 {
		ips = totalBobot / float64(totalSKS)
	}

	nama := "Unknown"
	student, err := s.students.FindByNIM(ctx, req.NIM)
	switch {
	case err == nil:
		nama = student.Nama
	case err == sql.ErrNoRows:
		// Orphaned enrollment rows still produce a report.
		s.logger.Warn("ips for missing student", zap.String("nim", req.NIM))
	default:
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	return &models.IPSReport{
		NIM:        req.NIM,
		Nama:       nama,
		Semester:   req.Semester,
		IPS:        round2(ips),
		TotalSKS:   totalSKS,
		TotalBobot: round2(totalBobot),
		Details:    details,
	}, nil
}

func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
