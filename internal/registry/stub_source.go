package registry

import (
	"fmt"

	"unitfin/internal/models"
)

// StubCategorySource is an in-memory CategorySource for tests and wiring
// experiments. It applies no conflict rules of its own; that is the
// registry's job.
type StubCategorySource struct {
	names map[string]map[models.RecordType][]string

	// ListErr, when set, is returned by every List call.
	ListErr error
}

// NewStubCategorySource creates an empty in-memory source.
func NewStubCategorySource() *StubCategorySource {
	return &StubCategorySource{
		names: make(map[string]map[models.RecordType][]string),
	}
}

func (s *StubCategorySource) List(unitID string, recordType models.RecordType) ([]string, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return append([]string{}, s.names[unitID][recordType]...), nil
}

func (s *StubCategorySource) Add(unitID string, recordType models.RecordType, name string) error {
	if s.names[unitID] == nil {
		s.names[unitID] = make(map[models.RecordType][]string)
	}
	s.names[unitID][recordType] = append(s.names[unitID][recordType], name)
	return nil
}

func (s *StubCategorySource) Rename(unitID string, recordType models.RecordType, from, to string) error {
	names := s.names[unitID][recordType]
	for i, name := range names {
		if name == from {
			names[i] = to
			return nil
		}
	}
	return fmt.Errorf("category %q not present", from)
}
