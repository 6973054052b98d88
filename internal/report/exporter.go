package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/evep-admin/internal/models"
	apperrors "github.com/noah-isme/evep-admin/pkg/errors"
	"github.com/noah-isme/evep-admin/pkg/export"
)

// Columns is the fixed column order of the medical-report export.
var Columns = []string{
	"Timestamp",
	"Report Type",
	"School",
	"Total Students",
	"Total Screenings",
	"Completed Screenings",
	"Pending Screenings",
	"Vision Issues Detected",
	"Referrals Required",
	"Glasses Prescribed",
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
}

// Exporter renders the medical-reports dashboard summary into a file.
type Exporter struct {
	storage   fileStorage
	renderers map[string]export.Renderer
	logger    *zap.Logger
}

// NewExporter builds an Exporter with CSV, PDF and XLSX renderers.
func NewExporter(storage fileStorage, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	renderers := map[string]export.Renderer{}
	for _, r := range []export.Renderer{
		export.NewCSVExporter(),
		export.NewPDFExporter(),
		export.NewExcelExporter(),
	} {
		renderers[r.Extension()] = r
	}
	return &Exporter{storage: storage, renderers: renderers, logger: logger}
}

// Formats lists the supported output formats.
func (e *Exporter) Formats() []string {
	return []string{"csv", "pdf", "xlsx"}
}

// BuildDataset maps one summary onto the fixed columns.
func BuildDataset(summary models.MedicalReportSummary) export.Dataset {
	return export.Dataset{
		Title:   "Vision Screening Medical Report",
		Headers: Columns,
		Rows: [][]string{{
			summary.Timestamp.Format(time.RFC3339),
			summary.ReportType,
			summary.School,
			strconv.Itoa(summary.TotalStudents),
			strconv.Itoa(summary.TotalScreenings),
			strconv.Itoa(summary.CompletedScreenings),
			strconv.Itoa(summary.PendingScreenings),
			strconv.Itoa(summary.VisionIssuesDetected),
			strconv.Itoa(summary.ReferralsRequired),
			strconv.Itoa(summary.GlassesPrescribed),
		}},
	}
}

// Filename follows the medical-report-{type}-{school}-{YYYY-MM-DD} pattern,
// with the extension tracking the chosen format.
func Filename(reportType, school string, day time.Time, ext string) string {
	return fmt.Sprintf("medical-report-%s-%s-%s.%s",
		slug(reportType), slug(school), day.Format("2006-01-02"), ext)
}

// Export renders the summary in the requested format and saves it to the
// export directory, returning the written path.
func (e *Exporter) Export(summary models.MedicalReportSummary, format string) (string, error) {
	renderer, ok := e.renderers[strings.ToLower(format)]
	if !ok {
		return "", apperrors.Wrap(apperrors.ErrExportFailed, fmt.Errorf("unsupported format %q", format))
	}

	payload, err := renderer.Render(BuildDataset(summary))
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrExportFailed, err)
	}

	filename := Filename(summary.ReportType, summary.School, summary.Timestamp, renderer.Extension())
	path, err := e.storage.Save(filename, payload)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrExportFailed, err)
	}

	e.logger.Info("report exported",
		zap.String("format", renderer.Extension()),
		zap.String("path", path),
	)
	return path, nil
}

var slugPattern = regexp.MustCompile(`\s+`)

func slug(raw string) string {
	return slugPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(raw)), "-")
}
