// Package comparison computes current-vs-previous-month surplus/deficit
// trends. Month totals are resolved through an ordered chain of data source
// strategies, so the fallback precedence stays testable and a fourth source
// can be added without touching the resolver itself.
package comparison

import (
	"fmt"
	"math"
	"strings"
	"time"

	"unitfin/internal/aggregator"
	"unitfin/internal/dateutils"
	"unitfin/internal/financeerror"
	"unitfin/internal/logging"
	"unitfin/internal/models"

	"github.com/shopspring/decimal"
)

// Input carries everything the resolver may consult for one comparison.
type Input struct {
	UnitID string
	Year   int

	// PreciseTotals are externally fetched month totals tagged with their
	// (year, month). First tier.
	PreciseTotals []models.PeriodSummary

	// Records are the unit's raw records for the year, aggregated locally
	// on demand. Second tier.
	Records []models.FinanceRecord

	// SummaryByMonth is a pre-computed cache keyed by month label. Third tier.
	SummaryByMonth map[string]MonthAmounts
}

// Resolver computes comparison results.
type Resolver struct {
	aggregator *aggregator.Aggregator
	clock      Clock
	logger     logging.Logger
}

// NewResolver creates a Resolver. A nil clock falls back to the system clock.
func NewResolver(agg *aggregator.Aggregator, clock Clock, logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if agg == nil {
		agg = aggregator.New(logger)
	}
	return &Resolver{aggregator: agg, clock: clock, logger: logger}
}

// Resolve compares the target month of input.Year against its predecessor.
// The target is the current calendar month when the year is the current one,
// December otherwise (comparisons default to year-end for past years).
func (r *Resolver) Resolve(input Input) (models.ComparisonResult, error) {
	if strings.TrimSpace(input.UnitID) == "" {
		return models.ComparisonResult{}, &financeerror.MissingUnitError{Operation: "comparison"}
	}

	targetYear := input.Year
	targetMonth := time.December
	if now := r.clock.Now(); input.Year == now.Year() {
		targetMonth = now.Month()
	}
	prevYear, prevMonth := dateutils.PreviousMonth(targetYear, targetMonth)

	strategies := []ResolutionStrategy{
		&preciseStrategy{totals: input.PreciseTotals},
		&localStrategy{aggregator: r.aggregator, unitID: input.UnitID, records: input.Records},
		&cachedStrategy{summaries: input.SummaryByMonth, logger: r.logger},
	}

	current := r.resolveMonth(strategies, targetYear, targetMonth)
	previous := r.resolveMonth(strategies, prevYear, prevMonth)

	percent := percentChange(current.Net(), previous.Net())

	trend := models.TrendSurplus
	if current.Net().IsNegative() {
		trend = models.TrendDeficit
	}

	return models.ComparisonResult{
		Current:       current,
		Previous:      previous,
		PercentChange: percent,
		TrendLabel:    trend,
		Sentence:      fmt.Sprintf("%s%% Compared to %s", formatSignedPercent(percent), previous.Label()),
	}, nil
}

// resolveMonth walks the strategy chain and keeps the first result that shows
// activity. A tier that answers with all zeros does not win over a later tier
// with real numbers; if no tier saw any movement the month is genuinely zero.
func (r *Resolver) resolveMonth(strategies []ResolutionStrategy, year int, month time.Month) models.PeriodSummary {
	zero := models.PeriodSummary{Year: year, Month: month}

	for _, strategy := range strategies {
		summary, ok := strategy.ResolveMonth(year, month)
		if !ok {
			continue
		}
		if summary.HasActivity() {
			r.logger.Debug("Month resolved",
				logging.Field{Key: logging.FieldTier, Value: strategy.Name()},
				logging.Field{Key: logging.FieldYear, Value: year},
				logging.Field{Key: logging.FieldMonth, Value: month.String()})
			summary.Year = year
			summary.Month = month
			return summary
		}
	}

	return zero
}

// percentChange computes the trend percentage on net magnitudes, clamped to
// [-100, 100] and rounded to one decimal place. A zero previous magnitude
// resolves to 100 when the current month moved at all, 0 otherwise; nothing
// here can produce NaN or infinity.
func percentChange(currentNet, previousNet decimal.Decimal) float64 {
	curMag := currentNet.Abs()
	prevMag := previousNet.Abs()

	if prevMag.IsZero() {
		if curMag.IsZero() {
			return 0
		}
		return 100
	}

	ratio, _ := curMag.Sub(prevMag).Div(prevMag).Float64()
	pct := ratio * 100

	if pct > 100 {
		pct = 100
	} else if pct < -100 {
		pct = -100
	}

	return math.Round(pct*10) / 10
}

// formatSignedPercent renders a percentage with up to one decimal place and an
// explicit sign on positive values. Zero never renders as "-0".
func formatSignedPercent(pct float64) string {
	if pct == 0 {
		return "0"
	}

	text := strings.TrimSuffix(fmt.Sprintf("%.1f", pct), ".0")
	if pct > 0 {
		return "+" + text
	}
	return text
}
