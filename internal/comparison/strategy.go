package comparison

import (
	"time"

	"unitfin/internal/aggregator"
	"unitfin/internal/dateutils"
	"unitfin/internal/logging"
	"unitfin/internal/models"

	"github.com/shopspring/decimal"
)

// ResolutionStrategy resolves the income/expense totals of one month from a
// single data source. Strategies are tried in precedence order; the resolver
// prefers the first one whose result shows actual activity.
type ResolutionStrategy interface {
	// ResolveMonth returns the period totals for (year, month) and whether
	// this source had an answer at all (even an all-zero one).
	ResolveMonth(year int, month time.Month) (models.PeriodSummary, bool)

	// Name returns the name of this strategy for logging and debugging.
	Name() string
}

// preciseStrategy is the first tier: totals fetched externally and explicitly
// tagged with their (year, month).
type preciseStrategy struct {
	totals []models.PeriodSummary
}

func (s *preciseStrategy) Name() string {
	return "Precise"
}

func (s *preciseStrategy) ResolveMonth(year int, month time.Month) (models.PeriodSummary, bool) {
	for _, summary := range s.totals {
		if summary.Year == year && summary.Month == month {
			return summary, true
		}
	}
	return models.PeriodSummary{}, false
}

// localStrategy is the second tier: totals derived by aggregating the year's
// raw records for the requested month.
type localStrategy struct {
	aggregator *aggregator.Aggregator
	unitID     string
	records    []models.FinanceRecord
}

func (s *localStrategy) Name() string {
	return "LocalRecords"
}

func (s *localStrategy) ResolveMonth(year int, month time.Month) (models.PeriodSummary, bool) {
	if len(s.records) == 0 {
		return models.PeriodSummary{}, false
	}
	return s.aggregator.MonthTotals(s.records, s.unitID, year, month), true
}

// MonthAmounts is one entry of the pre-computed summary-by-month cache.
type MonthAmounts struct {
	Income  decimal.Decimal `json:"income" yaml:"income"`
	Expense decimal.Decimal `json:"expense" yaml:"expense"`
}

// cachedStrategy is the third tier: a summary cache keyed by a month label.
// Labels come in several historical formats, so each key is parsed into a
// (year, month) pair before matching.
type cachedStrategy struct {
	summaries map[string]MonthAmounts
	logger    logging.Logger
}

func (s *cachedStrategy) Name() string {
	return "SummaryCache"
}

func (s *cachedStrategy) ResolveMonth(year int, month time.Month) (models.PeriodSummary, bool) {
	for label, amounts := range s.summaries {
		labelYear, labelMonth, err := dateutils.ParseMonthLabel(label)
		if err != nil {
			s.logger.Debug("Skipping unparseable summary cache label",
				logging.Field{Key: "label", Value: label})
			continue
		}
		if labelYear == year && labelMonth == month {
			return models.PeriodSummary{
				Year:    year,
				Month:   month,
				Income:  amounts.Income,
				Expense: amounts.Expense,
			}, true
		}
	}
	return models.PeriodSummary{}, false
}
