// Package export implements the bucket report export command
package export

import (
	"unitfin/cmd/root"
	"unitfin/internal/aggregator"
	"unitfin/internal/formatter"
	"unitfin/internal/logging"
	"unitfin/internal/recordio"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export monthly buckets as a CSV report",
	Long:  `Aggregate records into monthly buckets and write one CSV row per bucket category.`,
	Run:   exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input records file is required (--input)")
	}
	if root.SharedFlags.Output == "" {
		root.Log.Fatal("Output report file is required (--output)")
	}
	if root.SharedFlags.Unit == "" {
		root.Log.Fatal("Unit identifier is required (--unit)")
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	records, err := recordio.NewReader(logger).ReadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading records: %v", err)
	}

	buckets := aggregator.New(logger).AggregateByMonth(records, aggregator.Options{
		UnitID: root.SharedFlags.Unit,
	})

	writer := recordio.NewWriter(formatter.New(root.Cfg.Currency.Symbol), logger)
	if !root.Cfg.CSV.IncludeHeaders {
		writer = writer.WithoutHeaders()
	}
	if err := writer.WriteReport(buckets, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
	root.Log.Info("Report export completed successfully!")
}
