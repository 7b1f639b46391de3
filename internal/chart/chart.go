// Package chart converts expense/income magnitudes into two-slice pie chart
// geometry. It only produces data for a rendering layer; nothing here draws.
package chart

import (
	"math"

	"github.com/shopspring/decimal"
)

// Point is a cartesian coordinate in the chart's drawing space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Arc describes one filled wedge of the pie. Angles are in degrees, measured
// clockwise from twelve o'clock. Start/End are the wedge's rim points at the
// given radius; together with Center they are enough to draw the slice.
type Arc struct {
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Radius     float64 `json:"radius"`
	Center     Point   `json:"center"`
	Start      Point   `json:"start"`
	End        Point   `json:"end"`
}

// Span returns the angular width of the arc in degrees.
func (a Arc) Span() float64 {
	return a.EndAngle - a.StartAngle
}

// Geometry is the complete pie description for one expense/income pair.
type Geometry struct {
	Empty          bool    `json:"empty"`
	ExpenseArc     Arc     `json:"expense_arc"`
	IncomeArc      Arc     `json:"income_arc"`
	ExpenseLabel   Point   `json:"expense_label"`
	IncomeLabel    Point   `json:"income_label"`
	ExpensePercent float64 `json:"expense_percent"`
	IncomePercent  float64 `json:"income_percent"`
}

// labelRadiusRatio places label anchors at 60% of the radius from center.
const labelRadiusRatio = 0.6

// Build computes the two-slice geometry for the given magnitudes. When both
// magnitudes are zero it returns an empty geometry so callers can render an
// empty state instead of dividing by zero. The income slice always occupies
// the exact angular complement of the expense slice, so the two wedges close
// the full circle with no gap.
func Build(expense, income decimal.Decimal, radius float64, center Point) Geometry {
	total := expense.Add(income)
	if !total.IsPositive() {
		return Geometry{Empty: true}
	}

	expenseRatio, _ := expense.Div(total).Float64()
	expenseSpan := 360 * expenseRatio
	incomeSpan := 360 - expenseSpan

	expenseArc := newArc(0, expenseSpan, radius, center)
	incomeArc := newArc(expenseSpan, expenseSpan+incomeSpan, radius, center)

	incomeRatio, _ := income.Div(total).Float64()
	// Income percent is truncated, expense takes the remainder so the two
	// always sum to exactly 100.0.
	incomePercent := math.Trunc(incomeRatio*1000) / 10
	expensePercent := 100 - incomePercent

	return Geometry{
		ExpenseArc:     expenseArc,
		IncomeArc:      incomeArc,
		ExpenseLabel:   polarToCartesian(center, radius*labelRadiusRatio, midAngle(expenseArc)),
		IncomeLabel:    polarToCartesian(center, radius*labelRadiusRatio, midAngle(incomeArc)),
		ExpensePercent: expensePercent,
		IncomePercent:  incomePercent,
	}
}

// newArc builds an arc with its rim points resolved.
func newArc(startAngle, endAngle, radius float64, center Point) Arc {
	return Arc{
		StartAngle: startAngle,
		EndAngle:   endAngle,
		Radius:     radius,
		Center:     center,
		Start:      polarToCartesian(center, radius, startAngle),
		End:        polarToCartesian(center, radius, endAngle),
	}
}

// midAngle returns the angular midpoint of an arc.
func midAngle(a Arc) float64 {
	return (a.StartAngle + a.EndAngle) / 2
}

// polarToCartesian converts a clockwise-from-noon angle at the given distance
// from center into drawing coordinates (y grows downwards, as on a canvas).
func polarToCartesian(center Point, distance, angleDeg float64) Point {
	rad := angleDeg * math.Pi / 180
	return Point{
		X: center.X + distance*math.Sin(rad),
		Y: center.Y - distance*math.Cos(rad),
	}
}
