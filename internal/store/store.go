// Package store provides file-backed persistence for category data: a YAML
// CategorySource used by the CLI and the legacy local cache that gets
// migrated into the registry.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"unitfin/internal/logging"
	"unitfin/internal/models"

	"gopkg.in/yaml.v3"
)

// categoriesFile is the on-disk shape of the category source:
// unit id -> record type -> names.
type categoriesFile struct {
	Units map[string]map[models.RecordType][]string `yaml:"units"`
}

// FileSource is a CategorySource persisted in a single YAML file. It stands in
// for the remote backend the deployed client talks to.
type FileSource struct {
	Path   string
	logger logging.Logger
}

// NewFileSource creates a FileSource at the given path.
func NewFileSource(path string, logger logging.Logger) *FileSource {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &FileSource{Path: path, logger: logger}
}

// List returns the raw names for a unit and record type. A missing file is an
// empty source, not an error.
func (s *FileSource) List(unitID string, recordType models.RecordType) ([]string, error) {
	file, err := s.load()
	if err != nil {
		return nil, err
	}
	return file.Units[unitID][recordType], nil
}

// Add appends a name and writes the file back.
func (s *FileSource) Add(unitID string, recordType models.RecordType, name string) error {
	file, err := s.load()
	if err != nil {
		return err
	}

	if file.Units == nil {
		file.Units = make(map[string]map[models.RecordType][]string)
	}
	if file.Units[unitID] == nil {
		file.Units[unitID] = make(map[models.RecordType][]string)
	}
	file.Units[unitID][recordType] = append(file.Units[unitID][recordType], name)

	return s.save(file)
}

// Rename replaces from with to in place, keeping list order.
func (s *FileSource) Rename(unitID string, recordType models.RecordType, from, to string) error {
	file, err := s.load()
	if err != nil {
		return err
	}

	names := file.Units[unitID][recordType]
	replaced := false
	for i, name := range names {
		if name == from {
			names[i] = to
			replaced = true
			break
		}
	}
	if !replaced {
		return fmt.Errorf("category %q not present in source for unit %s", from, unitID)
	}

	return s.save(file)
}

// load reads the YAML file, tolerating a missing one.
func (s *FileSource) load() (categoriesFile, error) {
	var file categoriesFile

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("Category source file not found, starting empty",
				logging.Field{Key: logging.FieldFile, Value: s.Path})
			return file, nil
		}
		return file, fmt.Errorf("error reading categories file: %w", err)
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("error parsing categories file: %w", err)
	}
	return file, nil
}

// save writes the YAML file, creating parent directories as needed.
func (s *FileSource) save(file categoriesFile) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}

	s.logger.Debug("Category source saved",
		logging.Field{Key: logging.FieldFile, Value: s.Path})
	return nil
}
