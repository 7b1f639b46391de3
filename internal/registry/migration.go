package registry

import (
	"errors"
	"fmt"

	"unitfin/internal/financeerror"
	"unitfin/internal/logging"
	"unitfin/internal/models"
)

// LegacyStore holds category lists cached locally by older client versions,
// either per unit or per unit and type. The cache is merged into the registry
// once and then cleared.
type LegacyStore interface {
	// Load returns the cached lists. A missing cache yields an empty result,
	// not an error.
	Load() (LegacyCache, error)

	// Clear removes the cache after a successful migration.
	Clear() error
}

// LegacyCache is the shape of the old local cache. PerUnit lists applied to
// both record types; PerUnitType lists were already split by type.
type LegacyCache struct {
	PerUnit     map[string][]string
	PerUnitType map[string]map[models.RecordType][]string
}

// IsEmpty reports whether there is anything to migrate.
func (c LegacyCache) IsEmpty() bool {
	return len(c.PerUnit) == 0 && len(c.PerUnitType) == 0
}

// MigrateLegacyCache merges the legacy cache into the registry. Names already
// present (case-insensitively) are silently skipped, which makes the merge
// idempotent if a previous run was interrupted before the cache was cleared.
// The cache is cleared only after every entry merged cleanly.
func (r *Registry) MigrateLegacyCache(store LegacyStore) error {
	cache, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading legacy category cache: %w", err)
	}
	if cache.IsEmpty() {
		r.logger.Debug("No legacy category cache to migrate")
		return nil
	}

	migrated := 0
	for unitID, names := range cache.PerUnit {
		for _, recordType := range []models.RecordType{models.TypeIncome, models.TypeExpense} {
			n, err := r.mergeNames(unitID, recordType, names)
			if err != nil {
				return err
			}
			migrated += n
		}
	}
	for unitID, byType := range cache.PerUnitType {
		for recordType, names := range byType {
			n, err := r.mergeNames(unitID, recordType, names)
			if err != nil {
				return err
			}
			migrated += n
		}
	}

	if err := store.Clear(); err != nil {
		return fmt.Errorf("clearing legacy category cache: %w", err)
	}

	r.logger.Info("Legacy category cache migrated",
		logging.Field{Key: logging.FieldCount, Value: migrated})
	return nil
}

// mergeNames adds each name, swallowing duplicate conflicts.
func (r *Registry) mergeNames(unitID string, recordType models.RecordType, names []string) (int, error) {
	added := 0
	for _, name := range names {
		err := r.Add(unitID, recordType, name)
		if err != nil {
			var conflict *financeerror.ConflictError
			if errors.As(err, &conflict) {
				continue // already present, migration stays idempotent
			}
			return added, fmt.Errorf("migrating category %q for unit %s: %w", name, unitID, err)
		}
		added++
	}
	return added, nil
}
