// Package recordio reads finance records from CSV files and writes bucket
// reports back out. All struct mapping goes through gocsv so the column set
// lives in the struct tags.
package recordio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"unitfin/internal/dateutils"
	"unitfin/internal/financeerror"
	"unitfin/internal/logging"
	"unitfin/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// SetDelimiter configures the separator used for both record input and report
// output files.
func SetDelimiter(delim rune) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = delim
		return gocsv.NewSafeCSVWriter(w)
	})
}

// recordRow is the CSV projection of a FinanceRecord. Dates travel as strings
// because exports from different client versions use different layouts.
type recordRow struct {
	ID          string `csv:"ID"`
	UnitID      string `csv:"UnitID"`
	Type        string `csv:"Type"`
	Amount      string `csv:"Amount"`
	Category    string `csv:"Category"`
	Description string `csv:"Description"`
	Date        string `csv:"Date"`
	RecordedBy  string `csv:"RecordedBy"`
}

// Reader loads finance records from CSV files.
type Reader struct {
	logger logging.Logger
}

// NewReader creates a Reader.
func NewReader(logger logging.Logger) *Reader {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Reader{logger: logger}
}

// ReadFile reads records from a CSV file. Rows with unparseable dates or
// amounts are skipped with a warning rather than failing the whole file;
// skipped rows simply never reach a bucket.
func (r *Reader) ReadFile(filePath string) ([]models.FinanceRecord, error) {
	r.logger.Info("Reading records file",
		logging.Field{Key: logging.FieldFile, Value: filePath})

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening records file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			r.logger.WithError(err).Warn("Failed to close records file")
		}
	}()

	var rows []recordRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing records file: %w", err)
	}

	records := make([]models.FinanceRecord, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		record, err := r.toRecord(row)
		if err != nil {
			skipped++
			r.logger.WithError(err).Warn("Skipping malformed record row",
				logging.Field{Key: "record_id", Value: row.ID})
			continue
		}
		records = append(records, record)
	}

	r.logger.Info("Records loaded",
		logging.Field{Key: logging.FieldCount, Value: len(records)},
		logging.Field{Key: "skipped", Value: skipped})
	return records, nil
}

// toRecord converts a CSV row into a FinanceRecord.
func (r *Reader) toRecord(row recordRow) (models.FinanceRecord, error) {
	recordType := models.RecordType(row.Type)
	if !recordType.IsValid() {
		return models.FinanceRecord{}, fmt.Errorf("unknown record type %q", row.Type)
	}

	amount, err := decimal.NewFromString(row.Amount)
	if err != nil {
		return models.FinanceRecord{}, fmt.Errorf("invalid amount %q: %w", row.Amount, err)
	}
	if amount.IsNegative() {
		return models.FinanceRecord{}, fmt.Errorf("negative amount %q", row.Amount)
	}

	date, err := dateutils.ParseDate(row.Date)
	if err != nil {
		return models.FinanceRecord{}, &financeerror.BadDateError{RecordID: row.ID, Value: row.Date, Err: err}
	}

	return models.FinanceRecord{
		ID:          row.ID,
		UnitID:      row.UnitID,
		Type:        recordType,
		Amount:      amount,
		Category:    row.Category,
		Description: row.Description,
		Date:        date,
		RecordedBy:  row.RecordedBy,
	}, nil
}
