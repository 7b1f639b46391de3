package recordio

import (
	"fmt"
	"os"

	"unitfin/internal/classifier"
	"unitfin/internal/formatter"
	"unitfin/internal/logging"
	"unitfin/internal/models"

	"github.com/gocarina/gocsv"
)

// reportRow is one per-category line of the exported bucket report.
type reportRow struct {
	Year        int    `csv:"Year"`
	Month       string `csv:"Month"`
	Category    string `csv:"Category"`
	Icon        string `csv:"Icon"`
	Amount      string `csv:"Amount"`
	Compact     string `csv:"Compact"`
	BucketTotal string `csv:"BucketTotal"`
}

// Writer exports month buckets as a CSV report.
type Writer struct {
	formatter      *formatter.Formatter
	logger         logging.Logger
	includeHeaders bool
}

// NewWriter creates a Writer rendering amounts with the given formatter.
// Reports include a header row unless disabled with WithoutHeaders.
func NewWriter(f *formatter.Formatter, logger logging.Logger) *Writer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if f == nil {
		f = formatter.New("")
	}
	return &Writer{formatter: f, logger: logger, includeHeaders: true}
}

// WithoutHeaders disables the header row on written reports.
func (w *Writer) WithoutHeaders() *Writer {
	w.includeHeaders = false
	return w
}

// WriteReport writes one row per bucket category, annotated with icon tags and
// formatted amounts, in the bucket order given.
func (w *Writer) WriteReport(buckets []models.MonthBucket, filePath string) error {
	rows := make([]reportRow, 0)
	for _, bucket := range buckets {
		for _, total := range bucket.Totals {
			rows = append(rows, reportRow{
				Year:        bucket.Year,
				Month:       bucket.Month.String(),
				Category:    total.Category,
				Icon:        string(classifier.Classify(total.Category)),
				Amount:      w.formatter.Full(total.Amount),
				Compact:     w.formatter.Compact(total.Amount),
				BucketTotal: w.formatter.Full(bucket.Total),
			})
		}
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error creating report file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			w.logger.WithError(err).Warn("Failed to close report file")
		}
	}()

	if w.includeHeaders {
		err = gocsv.MarshalFile(&rows, file)
	} else {
		err = gocsv.MarshalWithoutHeaders(&rows, file)
	}
	if err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	w.logger.Info("Report written",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return nil
}
