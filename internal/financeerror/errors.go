// Package financeerror defines the typed, recoverable errors surfaced by the
// engine. Nothing here is fatal; callers inspect the concrete type with
// errors.As and decide how to present the condition.
package financeerror

import "fmt"

// ConflictError is returned when adding or renaming a category would collide
// with an existing name. Names conflict case-insensitively within their
// (unit, type) scope.
type ConflictError struct {
	UnitID   string
	Type     string
	Name     string
	Existing string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("category %q conflicts with existing %q for unit %s (%s)",
		e.Name, e.Existing, e.UnitID, e.Type)
}

// NotFoundError is returned when a rename references a category that does not
// exist in the registry.
type NotFoundError struct {
	UnitID string
	Type   string
	Name   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("category %q not found for unit %s (%s)", e.Name, e.UnitID, e.Type)
}

// MissingUnitError is returned when an operation that needs a unit identifier
// was invoked without one.
type MissingUnitError struct {
	Operation string
}

func (e *MissingUnitError) Error() string {
	return fmt.Sprintf("%s: no unit identifier resolved", e.Operation)
}

// BadDateError reports a record whose date could not be parsed. Aggregation
// skips such records; the error exists for callers that want to surface the
// data-quality problem.
type BadDateError struct {
	RecordID string
	Value    string
	Err      error
}

func (e *BadDateError) Error() string {
	return fmt.Sprintf("record %s: failed to parse date %q: %v", e.RecordID, e.Value, e.Err)
}

func (e *BadDateError) Unwrap() error {
	return e.Err
}
