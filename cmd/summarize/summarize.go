// Package summarize implements the monthly aggregation command
package summarize

import (
	"fmt"
	"time"

	"unitfin/cmd/root"
	"unitfin/internal/aggregator"
	"unitfin/internal/classifier"
	"unitfin/internal/formatter"
	"unitfin/internal/logging"
	"unitfin/internal/models"
	"unitfin/internal/recordio"

	"github.com/spf13/cobra"
)

var (
	recordType string
	category   string
)

// Cmd represents the summarize command
var Cmd = &cobra.Command{
	Use:   "summarize",
	Short: "Aggregate records into monthly buckets",
	Long:  `Aggregate a unit's income/expense records into per-month category breakdowns.`,
	Run:   summarizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&recordType, "type", "t", "", "Record type to include (income or expense)")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Only include records with this category")
}

func summarizeFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input records file is required (--input)")
	}
	if root.SharedFlags.Unit == "" {
		root.Log.Fatal("Unit identifier is required (--unit)")
	}
	if recordType != "" && !models.RecordType(recordType).IsValid() {
		root.Log.Fatalf("Unknown record type: %s", recordType)
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	source := recordio.NewFileRecordSource(root.SharedFlags.Input, logger)

	var from, to time.Time
	if year := root.SharedFlags.Year; year != 0 {
		from = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to = time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	}
	records, err := source.Fetch(root.SharedFlags.Unit, models.RecordType(recordType), from, to)
	if err != nil {
		root.Log.Fatalf("Error reading records: %v", err)
	}

	buckets := aggregator.New(logger).AggregateByMonth(records, aggregator.Options{
		UnitID:   root.SharedFlags.Unit,
		Type:     models.RecordType(recordType),
		Category: category,
	})
	if len(buckets) == 0 {
		root.Log.Info("No records matched; nothing to summarize")
		return
	}

	format := formatter.New(root.Cfg.Currency.Symbol)
	for _, bucket := range buckets {
		fmt.Printf("%s  total %s (%s)\n", bucket.Label(), format.Full(bucket.Total), format.Compact(bucket.Total))
		for _, total := range bucket.Totals {
			fmt.Printf("  %-24s %-12s %s\n", total.Category, classifier.Classify(total.Category), format.Full(total.Amount))
		}
	}
}
