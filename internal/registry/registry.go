// Package registry manages the per-unit, per-type category name lists.
// Categories are created and renamed, never deleted; the actual persistence
// lives behind the CategorySource collaborator.
package registry

import (
	"sort"
	"strings"
	"sync"

	"unitfin/internal/financeerror"
	"unitfin/internal/logging"
	"unitfin/internal/models"
)

// CategorySource is the collaborator that owns persisted category names.
type CategorySource interface {
	// List returns the raw category names for a unit and record type.
	List(unitID string, recordType models.RecordType) ([]string, error)

	// Add appends a new category name.
	Add(unitID string, recordType models.RecordType, name string) error

	// Rename replaces the stored name from with to.
	Rename(unitID string, recordType models.RecordType, from, to string) error
}

// Registry wraps a CategorySource with conflict detection, ordering, and
// legacy-cache migration. Mutations are serialized with a mutex so concurrent
// Add/Rename calls for the same scope cannot race past the conflict check.
type Registry struct {
	source CategorySource
	mu     sync.Mutex
	logger logging.Logger
}

// New creates a Registry backed by the given source.
func New(source CategorySource, logger logging.Logger) *Registry {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Registry{source: source, logger: logger}
}

// List returns the unit's category names sorted case-insensitively.
func (r *Registry) List(unitID string, recordType models.RecordType) ([]string, error) {
	if strings.TrimSpace(unitID) == "" {
		return nil, &financeerror.MissingUnitError{Operation: "list categories"}
	}

	names, err := r.source.List(unitID, recordType)
	if err != nil {
		return nil, err
	}

	sorted := append([]string{}, names...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i]) < strings.ToLower(sorted[j])
	})
	return sorted, nil
}

// Entries returns the unit's categories as fully scoped entries, in the same
// order as List.
func (r *Registry) Entries(unitID string, recordType models.RecordType) ([]models.CategoryEntry, error) {
	names, err := r.List(unitID, recordType)
	if err != nil {
		return nil, err
	}

	entries := make([]models.CategoryEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, models.CategoryEntry{
			UnitID: unitID,
			Type:   recordType,
			Name:   name,
		})
	}
	return entries, nil
}

// Add appends a category name. A case-insensitive duplicate within the
// (unit, type) scope surfaces a ConflictError; nothing is retried internally.
func (r *Registry) Add(unitID string, recordType models.RecordType, name string) error {
	if strings.TrimSpace(unitID) == "" {
		return &financeerror.MissingUnitError{Operation: "add category"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.source.List(unitID, recordType)
	if err != nil {
		return err
	}
	if match, found := findFold(existing, name); found {
		return &financeerror.ConflictError{
			UnitID:   unitID,
			Type:     string(recordType),
			Name:     name,
			Existing: match,
		}
	}

	if err := r.source.Add(unitID, recordType, name); err != nil {
		return err
	}

	r.logger.Info("Category added",
		logging.Field{Key: logging.FieldUnit, Value: unitID},
		logging.Field{Key: logging.FieldType, Value: string(recordType)},
		logging.Field{Key: logging.FieldCategory, Value: name})
	return nil
}

// Rename replaces the stored name from with to. Renaming a name to itself is a
// no-op; a collision with a different existing entry is a conflict. Whether
// historical records referencing the old name are relabelled is the record
// owner's decision, not the registry's.
func (r *Registry) Rename(unitID string, recordType models.RecordType, from, to string) error {
	if strings.TrimSpace(unitID) == "" {
		return &financeerror.MissingUnitError{Operation: "rename category"}
	}
	if from == to {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.source.List(unitID, recordType)
	if err != nil {
		return err
	}

	stored, found := findFold(existing, from)
	if !found {
		return &financeerror.NotFoundError{UnitID: unitID, Type: string(recordType), Name: from}
	}

	// A collision only counts when it is a different entry; changing just the
	// casing of an existing name is allowed.
	if match, found := findFold(existing, to); found && !strings.EqualFold(match, from) {
		return &financeerror.ConflictError{
			UnitID:   unitID,
			Type:     string(recordType),
			Name:     to,
			Existing: match,
		}
	}

	if err := r.source.Rename(unitID, recordType, stored, to); err != nil {
		return err
	}

	r.logger.Info("Category renamed",
		logging.Field{Key: logging.FieldUnit, Value: unitID},
		logging.Field{Key: logging.FieldType, Value: string(recordType)},
		logging.Field{Key: "from", Value: from},
		logging.Field{Key: "to", Value: to})
	return nil
}

// findFold returns the first name matching target case-insensitively.
func findFold(names []string, target string) (string, bool) {
	for _, name := range names {
		if strings.EqualFold(name, target) {
			return name, true
		}
	}
	return "", false
}
