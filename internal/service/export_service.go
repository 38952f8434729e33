package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/acad-api/internal/models"
	appErrors "github.com/noah-isme/acad-api/pkg/errors"
	"github.com/noah-isme/acad-api/pkg/export"
)

// Export formats.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

type csvRenderer interface {
	Render(table export.Table) ([]byte, error)
}

type pdfRenderer interface {
	Render(table export.Table, title string) ([]byte, error)
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders enrollment listings into downloadable tables.
type ExportService struct {
	krs    krsRepository
	csv    csvRenderer
	pdf    pdfRenderer
	logger *zap.Logger
}

// NewExportService constructs the export service.
func NewExportService(krs krsRepository, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVRenderer()
	}
	if pdf == nil {
		pdf = export.NewPDFRenderer()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{krs: krs, csv: csv, pdf: pdf, logger: logger}
}

// RenderKRS renders the student's enrollment listing in the requested
// format. The row order matches the JSON listing contract.
func (s *ExportService) RenderKRS(ctx context.Context, filter models.KRSFilter, format string) (*ExportFile, error) {
	if format != FormatCSV && format != FormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
	details, err := s.krs.ListDetails(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list krs")
	}
	if len(details) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no krs data found for this student")
	}

	table := export.Table{Columns: []string{"NIM", "Nama", "Kode MK", "Mata Kuliah", "SKS", "Nilai", "Semester"}}
	for _, d := range details {
		nilai := ""
		if d.Nilai != nil {
			nilai = *d.Nilai
		}
		table.AddRow(d.NIM, d.NamaMahasiswa, d.KodeMK, d.NamaMK, strconv.Itoa(d.SKS), nilai, strconv.Itoa(d.Semester))
	}

	switch format {
	case FormatPDF:
		data, err := s.pdf.Render(table, fmt.Sprintf("KRS %s", filter.NIM))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportFile{
			Filename:    fmt.Sprintf("krs_%s.pdf", filter.NIM),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		data, err := s.csv.Render(table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportFile{
			Filename:    fmt.Sprintf("krs_%s.csv", filter.NIM),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	}
}
