package recordio

import (
	"time"

	"unitfin/internal/logging"
	"unitfin/internal/models"
)

// RecordSource supplies a unit's finance records. The deployed client fetches
// them from the backend; here the collaborator is file-backed.
type RecordSource interface {
	// Fetch returns the unit's records of the given type within [from, to].
	// An empty type matches both; a zero from or to leaves that bound open.
	Fetch(unitID string, recordType models.RecordType, from, to time.Time) ([]models.FinanceRecord, error)
}

// FileRecordSource is a RecordSource reading from a records CSV file.
type FileRecordSource struct {
	Path   string
	reader *Reader
}

// NewFileRecordSource creates a FileRecordSource for the given file.
func NewFileRecordSource(path string, logger logging.Logger) *FileRecordSource {
	return &FileRecordSource{Path: path, reader: NewReader(logger)}
}

func (s *FileRecordSource) Fetch(unitID string, recordType models.RecordType, from, to time.Time) ([]models.FinanceRecord, error) {
	records, err := s.reader.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}

	matched := make([]models.FinanceRecord, 0, len(records))
	for _, record := range records {
		if record.UnitID != unitID {
			continue
		}
		if recordType != "" && record.Type != recordType {
			continue
		}
		if !from.IsZero() && record.Date.Before(from) {
			continue
		}
		if !to.IsZero() && record.Date.After(to) {
			continue
		}
		matched = append(matched, record)
	}
	return matched, nil
}
