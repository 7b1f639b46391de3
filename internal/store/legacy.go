package store

import (
	"fmt"
	"os"

	"unitfin/internal/logging"
	"unitfin/internal/models"
	"unitfin/internal/registry"

	"gopkg.in/yaml.v3"
)

// LegacyFileStore reads the category cache written by older client versions.
// Two historical shapes exist and both are still found in the wild:
//
//	unit id -> [names]                      (applied to both record types)
//	unit id -> record type -> [names]
//
// Load tries the split-by-type shape first and falls back to the flat one,
// mirroring how other loaders here tolerate old formats.
type LegacyFileStore struct {
	Path   string
	logger logging.Logger
}

// NewLegacyFileStore creates a LegacyFileStore at the given path.
func NewLegacyFileStore(path string, logger logging.Logger) *LegacyFileStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &LegacyFileStore{Path: path, logger: logger}
}

// Load returns the cached lists. A missing cache file is an empty cache.
func (s *LegacyFileStore) Load() (registry.LegacyCache, error) {
	cache := registry.LegacyCache{}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return cache, nil
		}
		return cache, fmt.Errorf("error reading legacy cache: %w", err)
	}

	// Split-by-type shape
	var perUnitType map[string]map[models.RecordType][]string
	if err := yaml.Unmarshal(data, &perUnitType); err == nil && validPerUnitType(perUnitType) {
		cache.PerUnitType = perUnitType
		s.logger.Debug("Loaded legacy cache (per unit and type)",
			logging.Field{Key: logging.FieldCount, Value: len(perUnitType)})
		return cache, nil
	}

	// Flat per-unit shape
	var perUnit map[string][]string
	if err := yaml.Unmarshal(data, &perUnit); err == nil && len(perUnit) > 0 {
		cache.PerUnit = perUnit
		s.logger.Debug("Loaded legacy cache (per unit)",
			logging.Field{Key: logging.FieldCount, Value: len(perUnit)})
		return cache, nil
	}

	return cache, fmt.Errorf("legacy cache %s has an unrecognized format", s.Path)
}

// Clear removes the cache file. Clearing an already-missing file succeeds.
func (s *LegacyFileStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing legacy cache: %w", err)
	}
	s.logger.Info("Legacy category cache cleared",
		logging.Field{Key: logging.FieldFile, Value: s.Path})
	return nil
}

// validPerUnitType rejects maps that only parsed because YAML is lenient:
// every inner map must use a known record type key.
func validPerUnitType(m map[string]map[models.RecordType][]string) bool {
	if len(m) == 0 {
		return false
	}
	for _, byType := range m {
		if len(byType) == 0 {
			return false
		}
		for recordType := range byType {
			if !recordType.IsValid() {
				return false
			}
		}
	}
	return true
}
