package models

import (
	"time"

	"unitfin/internal/dateutils"

	"github.com/shopspring/decimal"
)

// CategoryTotal is a per-category subtotal inside a month bucket.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// MonthBucket groups all records sharing a calendar year and month.
// Totals are ordered descending by amount; ties keep their input order.
// Buckets are derived on every query and never persisted.
type MonthBucket struct {
	Year   int             `json:"year"`
	Month  time.Month      `json:"month"`
	Totals []CategoryTotal `json:"totals"`
	Total  decimal.Decimal `json:"total"`
}

// Label returns the bucket's display label, e.g. "January, 2025".
func (b MonthBucket) Label() string {
	return dateutils.MonthLabel(b.Year, b.Month)
}

// Before reports whether this bucket is chronologically earlier than other.
// Comparison is on the numeric (year, month) pair; the formatted label must
// never be used as an ordering key.
func (b MonthBucket) Before(other MonthBucket) bool {
	if b.Year != other.Year {
		return b.Year < other.Year
	}
	return b.Month < other.Month
}

// PeriodSummary holds the resolved income/expense totals for one month.
type PeriodSummary struct {
	Year    int             `json:"year"`
	Month   time.Month      `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Net returns income minus expense for the period.
func (p PeriodSummary) Net() decimal.Decimal {
	return p.Income.Sub(p.Expense)
}

// HasActivity reports whether the period saw any money movement at all.
// The comparison resolver uses this to decide whether a data source tier
// actually answered or should be skipped.
func (p PeriodSummary) HasActivity() bool {
	return p.Income.Add(p.Expense).IsPositive()
}

// Label returns the period's display label, e.g. "January, 2025".
func (p PeriodSummary) Label() string {
	return dateutils.MonthLabel(p.Year, p.Month)
}

// Trend labels for a comparison result.
const (
	TrendSurplus = "Surplus"
	TrendDeficit = "Deficit"
)

// ComparisonResult is the outcome of comparing a month against its predecessor.
type ComparisonResult struct {
	Current       PeriodSummary `json:"current"`
	Previous      PeriodSummary `json:"previous"`
	PercentChange float64       `json:"percent_change"`
	TrendLabel    string        `json:"trend_label"`
	Sentence      string        `json:"sentence"`
}
