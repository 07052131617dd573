package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chinpangura/outreach-api/internal/models"
	appErrors "github.com/chinpangura/outreach-api/pkg/errors"
	"github.com/chinpangura/outreach-api/pkg/export"
)

// Export formats supported by the admin donations export.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

type donationLister interface {
	ListAll(ctx context.Context) ([]models.Donation, error)
}

// ExportResult carries rendered export bytes with download metadata.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders the donation table for the admin dashboard download.
type ExportService struct {
	donations donationLister
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	logger    *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(donations donationLister, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		donations: donations,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		logger:    logger,
	}
}

// Render produces the donation export in the requested format.
func (s *ExportService) Render(ctx context.Context, format string) (*ExportResult, error) {
	donations, err := s.donations.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load donations for export")
	}

	dataset := donationDataset(donations)
	stamp := time.Now().UTC().Format("2006-01-02")

	switch format {
	case ExportFormatCSV:
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("donations-%s.csv", stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	case ExportFormatPDF:
		data, err := s.pdf.Render(dataset, "Donation Records")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("donations-%s.pdf", stamp),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func donationDataset(donations []models.Donation) export.Dataset {
	rows := make([][]string, 0, len(donations))
	for _, donation := range donations {
		donor := "Anonymous"
		email := ""
		if !donation.IsAnonymous {
			if donation.DonorName != nil {
				donor = *donation.DonorName
			}
			if donation.Email != nil {
				email = *donation.Email
			}
		}
		message := ""
		if donation.Message != nil {
			message = *donation.Message
		}
		rows = append(rows, []string{
			donation.CreatedAt.Format("2006-01-02 15:04"),
			donor,
			email,
			donation.Amount.StringFixed(2),
			message,
		})
	}

	return export.Dataset{
		Headers: []string{"Date", "Donor", "Email", "Amount", "Message"},
		Rows:    rows,
	}
}
