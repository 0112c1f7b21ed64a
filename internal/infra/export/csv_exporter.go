// Package export renders work logs as downloadable reports.
package export

import (
	"encoding/csv"
	"io"

	"workhours/internal/domain/earnings"
	"workhours/internal/domain/entity"
	"workhours/internal/domain/service"

	"github.com/pkg/errors"
)

const csvContentType = "text/csv; charset=utf-8"

// Header is the first row of every CSV report.
var Header = []string{"Date", "Start Time", "End Time", "Hours Worked", "Rate", "Earnings", "Notes"}

type csvExporter struct{}

// NewCSVExporter is the constructor for the CSV report exporter.
func NewCSVExporter() service.ReportExporter {
	return &csvExporter{}
}

// Export writes Header followed by one row per log. Times keep their stored HH:MM:SS form;
// rate and earnings carry the profile's currency symbol and two decimals.
func (e *csvExporter) Export(w io.Writer, logs []*entity.WorkLog, profile *entity.WageProfile) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return errors.Wrap(err, "write header")
	}

	symbol := profile.CurrencySymbol()
	for _, log := range logs {
		if log == nil {
			continue
		}
		if err := writer.Write([]string{
			log.DayKey(),
			log.StartTime.String(),
			log.EndTime.String(),
			log.Hours().StringFixed(2),
			symbol + earnings.EffectiveRate(log, profile).StringFixed(2),
			symbol + earnings.Earnings(log, profile).StringFixed(2),
			log.Notes,
		}); err != nil {
			return errors.Wrap(err, "write row")
		}
	}

	writer.Flush()

	return errors.Wrap(writer.Error(), "flush csv")
}

// ContentType is the MIME type of Export's output.
func (e *csvExporter) ContentType() string {
	return csvContentType
}
