// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordType identifies whether a finance record is money coming in or going out.
type RecordType string

const (
	TypeIncome  RecordType = "income"
	TypeExpense RecordType = "expense"
)

// IsValid returns true if the record type is one of the known values.
func (t RecordType) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// FinanceRecord represents a single income or expense transaction for a unit.
// Records are immutable from the engine's point of view: the engine only reads
// them, it never mutates or persists them.
type FinanceRecord struct {
	ID          string          `json:"id" csv:"ID"`
	UnitID      string          `json:"unit_id" csv:"UnitID"`
	Type        RecordType      `json:"type" csv:"Type"`
	Amount      decimal.Decimal `json:"amount" csv:"Amount"`
	Category    string          `json:"category" csv:"Category"`
	Description string          `json:"description" csv:"Description"`
	Date        time.Time       `json:"date" csv:"-"`
	RecordedBy  string          `json:"recorded_by" csv:"RecordedBy"`
}

// NewFinanceRecord creates a record with a fresh identifier.
// Amount must be non-negative; negative amounts are clamped to zero since the
// record type already carries the direction of the money flow.
func NewFinanceRecord(unitID string, recordType RecordType, amount decimal.Decimal, category string, date time.Time) FinanceRecord {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	return FinanceRecord{
		ID:       uuid.NewString(),
		UnitID:   unitID,
		Type:     recordType,
		Amount:   amount,
		Category: category,
		Date:     date,
	}
}

// IsIncome returns true if the record is an income transaction.
func (r FinanceRecord) IsIncome() bool {
	return r.Type == TypeIncome
}

// IsExpense returns true if the record is an expense transaction.
func (r FinanceRecord) IsExpense() bool {
	return r.Type == TypeExpense
}

// HasValidDate reports whether the record carries a usable date.
// Records without one are skipped during bucketing rather than failing the run.
func (r FinanceRecord) HasValidDate() bool {
	return !r.Date.IsZero()
}

// CategoryEntry is a category name scoped to a unit and record type.
// Names are unique case-insensitively within their (UnitID, Type) scope.
type CategoryEntry struct {
	UnitID string     `json:"unit_id" yaml:"unit_id"`
	Type   RecordType `json:"type" yaml:"type"`
	Name   string     `json:"name" yaml:"name"`
}
