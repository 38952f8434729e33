package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/acad-api/internal/models"
	appErrors "github.com/noah-isme/acad-api/pkg/errors"
)

type mockGradeReader struct {
	rows []models.SemesterGrade
	err  error
}

func (m *mockGradeReader) SemesterGrades(ctx context.Context, nim string, semester int) ([]models.SemesterGrade, error) {
	return m.rows, m.err
}

type mockNameReader struct {
	students map[string]models.Student
	err      error
}

func (m *mockNameReader) FindByNIM(ctx context.Context, nim string) (*models.Student, error) {
	if m.err != nil {
		return nil, m.err
	}
	if s, ok := m.students[nim]; ok {
		return &s, nil
	}
	return nil, sql.ErrNoRows
}

func newIPSService(grades *mockGradeReader, students *mockNameReader) *IPSService {
	return NewIPSService(grades, students, validator.New(), nil, zap.NewNop())
}

func TestIPSCalculateWeightedAverage(t *testing.T) {
	grades := &mockGradeReader{rows: []models.SemesterGrade{
		{NamaMK: "Algoritma", SKS: 3, Nilai: "A", Bobot: 4.0},
		{NamaMK: "Basis Data", SKS: 2, Nilai: "B", Bobot: 3.0},
	}}
	students := &mockNameReader{students: map[string]models.Student{"001": {NIM: "001", Nama: "Andi"}}}
	svc := newIPSService(grades, students)

	report, err := svc.Calculate(context.Background(), CalculateIPSRequest{NIM: "001", Semester: 1})
	require.NoError(t, err)
	assert.Equal(t, "Andi", report.Nama)
	assert.Equal(t, 3.6, report.IPS)
	assert.Equal(t, 5, report.TotalSKS)
	assert.Equal(t, 18.0, report.TotalBobot)
	require.Len(t, report.Details, 2)
	assert.Equal(t, 12.0, report.Details[0].BobotXSKS)
	assert.Equal(t, 6.0, report.Details[1].BobotXSKS)
}

func TestIPSCalculateOrderIndependent(t *testing.T) {
	forward := []models.SemesterGrade{
		{NamaMK: "A", SKS: 3, Nilai: "A", Bobot: 4.0},
		{NamaMK: "B", SKS: 2, Nilai: "B+", Bobot: 3.5},
		{NamaMK: "C", SKS: 4, Nilai: "C", Bobot: 2.0},
	}
	reversed := []models.SemesterGrade{forward[2], forward[1], forward[0]}
	students := &mockNameReader{students: map[string]models.Student{"001": {Nama: "Andi"}}}

	first, err := newIPSService(&mockGradeReader{rows: forward}, students).
		Calculate(context.Background(), CalculateIPSRequest{NIM: "001", Semester: 1})
	require.NoError(t, err)
	second, err := newIPSService(&mockGradeReader{rows: reversed}, students).
		Calculate(context.Background(), CalculateIPSRequest{NIM: "001", Semester: 1})
	require.NoError(t, err)

	assert.Equal(t, first.IPS, second.IPS)
	assert.Equal(t, first.TotalBobot, second.TotalBobot)
	assert.Equal(t, first.TotalSKS, second.TotalSKS)
}

func TestIPSCalculateRoundsPresentationOnly(t *testing.T) {
	// Per-row products carry more than two decimals; the sum must be
	// accumulated before any rounding.
	grades := &mockGradeReader{rows: []models.SemesterGrade{
		{NamaMK: "A", SKS: 3, Nilai: "B+", Bobot: 3.33},
		{NamaMK: "B", SKS: 3, Nilai: "B+", Bobot: 3.33},
		{NamaMK: "C", SKS: 1, Nilai: "A", Bobot: 4.0},
	}}
	students := &mockNameReader{students: map[string]models.Student{"001": {Nama: "Andi"}}}
	svc := newIPSService(grades, students)

	report, err := svc.Calculate(context.Background(), CalculateIPSRequest{NIM: "001", Semester: 1})
	require.NoError(t, err)
	// total = 3*3.33 + 3*3.33 + 4 = 23.98, ips = 23.98/7 = 3.4257...
	assert.Equal(t, 3.43, report.IPS)
	assert.Equal(t, 23.98, report.TotalBobot)
	assert.Equal(t, 9.99, report.Details[0].BobotXSKS)
}

func TestIPSCalculateNoData(t *testing.T) {
	svc := newIPSService(&mockGradeReader{}, &mockNameReader{})

	_, err := svc.Calculate(context.Background(), CalculateIPSRequest{NIM: "001", Semester: 1})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}

func TestIPSCalculateMissingStudentIsUnknown(t *testing.T) {
	grades := &mockGradeReader{rows: []models.SemesterGrade{
		{NamaMK: "Algoritma", SKS: 3, Nilai: "A", Bobot: 4.0},
	}}
	svc := newIPSService(grades, &mockNameReader{})

	report, err := svc.Calculate(context.Background(), CalculateIPSRequest{NIM: "999", Semester: 1})
	require.NoError(t, err)
	assert.Equal(t, "Unknown", report.Nama)
	assert.Equal(t, 4.0, report.IPS)
}

func TestIPSCalculateZeroCreditGuard(t *testing.T) {
	grades := &mockGradeReader{rows: []models.SemesterGrade{
		{NamaMK: "Seminar", SKS: 0, Nilai: "A", Bobot: 4.0},
	}}
	students := &mockNameReader{students: map[string]models.Student{"001": {Nama: "Andi"}}}
	svc := newIPSService(grades, students)

	report, err := svc.Calculate(context.Background(), CalculateIPSRequest{NIM: "001", Semester: 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.IPS)
	assert.Equal(t, 0, report.TotalSKS)
}

func TestIPSCalculateRecordsQueryTiming(t *testing.T) {
	metrics := NewMetricsService()
	grades := &mockGradeReader{rows: []models.SemesterGrade{
		{NamaMK: "Algoritma", SKS: 3, Nilai: "A", Bobot: 4.0},
	}}
	students := &mockNameReader{students: map[string]models.Student{"001": {NIM: "001", Nama: "Andi"}}}
	svc := NewIPSService(grades, students, validator.New(), metrics, zap.NewNop())

	_, err := svc.Calculate(context.Background(), CalculateIPSRequest{NIM: "001", Semester: 1})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), `db_query_duration_seconds_count{query="ips_semester_grades"} 1`)
}

func TestIPSCalculateRepositoryError(t *testing.T) {
	svc := newIPSService(&mockGradeReader{err: errors.New("boom")}, &mockNameReader{})

	_, err := svc.Calculate(context.Background(), CalculateIPSRequest{NIM: "001", Semester: 1})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Status, appErrors.FromError(err).Status)
}

func TestIPSCalculateValidatesPayload(t *testing.T) {
	svc := newIPSService(&mockGradeReader{}, &mockNameReader{})

	_, err := svc.Calculate(context.Background(), CalculateIPSRequest{Semester: 1})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErrors.FromError(err).Status)
}
