// Package compare implements the month-over-month comparison command
package compare

import (
	"fmt"
	"time"

	"unitfin/cmd/root"
	"unitfin/internal/aggregator"
	"unitfin/internal/chart"
	"unitfin/internal/comparison"
	"unitfin/internal/formatter"
	"unitfin/internal/logging"
	"unitfin/internal/models"
	"unitfin/internal/recordio"

	"github.com/spf13/cobra"
)

// Cmd represents the compare command
var Cmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a month's surplus/deficit against the previous month",
	Long: `Resolve income and expense totals for the target month and its
predecessor, and report the net surplus/deficit trend between them.`,
	Run: compareFunc,
}

func compareFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input records file is required (--input)")
	}
	if root.SharedFlags.Unit == "" {
		root.Log.Fatal("Unit identifier is required (--unit)")
	}

	year := root.SharedFlags.Year
	if year == 0 {
		year = time.Now().Year()
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	records, err := recordio.NewReader(logger).ReadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading records: %v", err)
	}

	resolver := comparison.NewResolver(aggregator.New(logger), nil, logger)
	result, err := resolver.Resolve(comparison.Input{
		UnitID:  root.SharedFlags.Unit,
		Year:    year,
		Records: records,
	})
	if err != nil {
		root.Log.Fatalf("Error resolving comparison: %v", err)
	}

	format := formatter.New(root.Cfg.Currency.Symbol)
	fmt.Printf("%s: %s\n", result.TrendLabel, result.Sentence)
	printPeriod("Current", result.Current, format)
	printPeriod("Previous", result.Previous, format)
	fmt.Printf("Trend: %+.1f%%\n", result.PercentChange)

	geometry := chart.Build(result.Current.Expense, result.Current.Income, 100, chart.Point{X: 100, Y: 100})
	if geometry.Empty {
		fmt.Println("No activity to chart for the current month")
		return
	}
	fmt.Printf("Income %.1f%% / Expense %.1f%% of the month's movement\n",
		geometry.IncomePercent, geometry.ExpensePercent)
}

func printPeriod(label string, period models.PeriodSummary, format *formatter.Formatter) {
	fmt.Printf("%-8s %s  income %s  expense %s  net %s\n",
		label, period.Label(), format.Full(period.Income), format.Full(period.Expense), format.Full(period.Net()))
}
