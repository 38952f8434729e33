package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/acad-api/internal/models"
	appErrors "github.com/noah-isme/acad-api/pkg/errors"
)

func exportFixtureRepo() *mockKRSRepo {
	nilai := "A"
	return &mockKRSRepo{details: []models.KRSDetail{
		{IDKRS: 1, NIM: "001", NamaMahasiswa: "Andi", KodeMK: "IF101", NamaMK: "Algoritma", SKS: 3, Nilai: &nilai, Semester: 1},
		{IDKRS: 2, NIM: "001", NamaMahasiswa: "Andi", KodeMK: "IF102", NamaMK: "Basis Data", SKS: 2, Semester: 1},
	}}
}

func TestExportServiceRenderCSV(t *testing.T) {
	svc := NewExportService(exportFixtureRepo(), nil, nil, zap.NewNop())

	file, err := svc.RenderKRS(context.Background(), models.KRSFilter{NIM: "001"}, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "krs_001.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	lines := strings.Split(strings.TrimSpace(string(file.Data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "NIM,Nama,Kode MK,Mata Kuliah,SKS,Nilai,Semester", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "Algoritma")
	assert.Contains(t, lines[2], "Basis Data")
}

func TestExportServiceRenderPDF(t *testing.T) {
	svc := NewExportService(exportFixtureRepo(), nil, nil, zap.NewNop())

	file, err := svc.RenderKRS(context.Background(), models.KRSFilter{NIM: "001"}, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasPrefix(string(file.Data), "%PDF"))
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := NewExportService(exportFixtureRepo(), nil, nil, zap.NewNop())

	_, err := svc.RenderKRS(context.Background(), models.KRSFilter{NIM: "001"}, "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErrors.FromError(err).Status)
}

func TestExportServiceEmptyListingNotFound(t *testing.T) {
	svc := NewExportService(&mockKRSRepo{}, nil, nil, zap.NewNop())

	_, err := svc.RenderKRS(context.Background(), models.KRSFilter{NIM: "001"}, FormatCSV)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}
