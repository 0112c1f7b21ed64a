package service

import (
	"io"

	"workhours/internal/domain/entity"
)

// ReportExporter writes work logs as a downloadable report.
type ReportExporter interface {
	// Export writes logs to w, pricing them with profile.
	Export(w io.Writer, logs []*entity.WorkLog, profile *entity.WageProfile) error

	// ContentType is the MIME type of Export's output.
	ContentType() string
}
