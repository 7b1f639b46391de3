// Package aggregator groups finance records into monthly buckets with
// per-category subtotals.
package aggregator

import (
	"sort"
	"strings"
	"time"

	"unitfin/internal/logging"
	"unitfin/internal/models"

	"github.com/shopspring/decimal"
)

// Options controls which records take part in an aggregation run.
type Options struct {
	UnitID   string            // required; an empty unit id yields an empty result
	Type     models.RecordType // optional; zero value means both types
	Category string            // optional; exact name match, case-insensitive
}

// Aggregator produces month buckets from raw record lists.
type Aggregator struct {
	logger logging.Logger
}

// New creates an Aggregator.
func New(logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Aggregator{logger: logger}
}

// monthKey identifies a bucket. Ordering is on the numeric pair, never on a
// formatted label: "2025-9" sorts after "2025-10" lexicographically, which is
// exactly the bug this type exists to avoid.
type monthKey struct {
	year  int
	month time.Month
}

// AggregateByMonth partitions records into month buckets ordered most-recent-first.
// Within a bucket, per-category subtotals are ordered descending by amount with
// ties keeping their input order. Records with no usable date or not matching
// the options are skipped.
func (a *Aggregator) AggregateByMonth(records []models.FinanceRecord, opts Options) []models.MonthBucket {
	if strings.TrimSpace(opts.UnitID) == "" {
		a.logger.Warn("Aggregation requested without a unit identifier")
		return []models.MonthBucket{}
	}

	type accumulator struct {
		totals map[string]decimal.Decimal
		order  []string // category names in first-seen order, for stable ties
		total  decimal.Decimal
	}
	buckets := make(map[monthKey]*accumulator)

	skipped := 0
	for _, record := range records {
		if !a.matches(record, opts) {
			continue
		}
		if !record.HasValidDate() {
			skipped++
			a.logger.Debug("Skipping record with unusable date",
				logging.Field{Key: "record_id", Value: record.ID},
				logging.Field{Key: logging.FieldUnit, Value: record.UnitID})
			continue
		}

		key := monthKey{year: record.Date.Year(), month: record.Date.Month()}
		acc, ok := buckets[key]
		if !ok {
			acc = &accumulator{totals: make(map[string]decimal.Decimal)}
			buckets[key] = acc
		}

		if _, seen := acc.totals[record.Category]; !seen {
			acc.order = append(acc.order, record.Category)
		}
		acc.totals[record.Category] = acc.totals[record.Category].Add(record.Amount)
		acc.total = acc.total.Add(record.Amount)
	}

	if skipped > 0 {
		a.logger.Warn("Skipped records with unusable dates",
			logging.Field{Key: logging.FieldCount, Value: skipped})
	}

	result := make([]models.MonthBucket, 0, len(buckets))
	for key, acc := range buckets {
		totals := make([]models.CategoryTotal, 0, len(acc.order))
		for _, category := range acc.order {
			totals = append(totals, models.CategoryTotal{
				Category: category,
				Amount:   acc.totals[category],
			})
		}
		// Stable keeps first-seen order for equal amounts
		sort.SliceStable(totals, func(i, j int) bool {
			return totals[i].Amount.GreaterThan(totals[j].Amount)
		})

		result = append(result, models.MonthBucket{
			Year:   key.year,
			Month:  key.month,
			Totals: totals,
			Total:  acc.total,
		})
	}

	// Most recent first
	sort.Slice(result, func(i, j int) bool {
		return result[j].Before(result[i])
	})

	return result
}

// matches reports whether a record passes the option filters.
func (a *Aggregator) matches(record models.FinanceRecord, opts Options) bool {
	if record.UnitID != opts.UnitID {
		return false
	}
	if opts.Type != "" && record.Type != opts.Type {
		return false
	}
	if opts.Category != "" && !strings.EqualFold(record.Category, opts.Category) {
		return false
	}
	return true
}

// MonthTotals resolves the income and expense totals of a single month by
// aggregating the given records locally. The comparison resolver uses this as
// its second data tier.
func (a *Aggregator) MonthTotals(records []models.FinanceRecord, unitID string, year int, month time.Month) models.PeriodSummary {
	summary := models.PeriodSummary{Year: year, Month: month}
	if strings.TrimSpace(unitID) == "" {
		return summary
	}

	for _, record := range records {
		if record.UnitID != unitID || !record.HasValidDate() {
			continue
		}
		if record.Date.Year() != year || record.Date.Month() != month {
			continue
		}
		switch record.Type {
		case models.TypeIncome:
			summary.Income = summary.Income.Add(record.Amount)
		case models.TypeExpense:
			summary.Expense = summary.Expense.Add(record.Amount)
		}
	}

	return summary
}
