package recordio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"unitfin/internal/formatter"
	"unitfin/internal/logging"
	"unitfin/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recordsHeader = "ID,UnitID,Type,Amount,Category,Description,Date,RecordedBy\n"

func writeRecordsFile(t *testing.T, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.csv")
	content := recordsHeader + strings.Join(rows, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadFile(t *testing.T) {
	path := writeRecordsFile(t,
		"r1,u1,income,5000,Tithe,Sunday service,2025-01-05,treasurer",
		"r2,u1,expense,1200.50,Fuel,Generator diesel,15.01.2025,treasurer",
	)

	reader := NewReader(&logging.MockLogger{})
	records, err := reader.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "r1", records[0].ID)
	assert.Equal(t, "u1", records[0].UnitID)
	assert.Equal(t, models.TypeIncome, records[0].Type)
	assert.True(t, records[0].Amount.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, "Tithe", records[0].Category)
	assert.Equal(t, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), records[0].Date)

	assert.Equal(t, models.TypeExpense, records[1].Type)
	assert.True(t, records[1].Amount.Equal(decimal.RequireFromString("1200.50")))
	assert.Equal(t, time.January, records[1].Date.Month())
}

func TestReadFileSkipsMalformedRows(t *testing.T) {
	path := writeRecordsFile(t,
		"r1,u1,income,5000,Tithe,,2025-01-05,treasurer",
		"r2,u1,transfer,100,Tithe,,2025-01-05,treasurer",
		"r3,u1,income,abc,Tithe,,2025-01-05,treasurer",
		"r4,u1,expense,-50,Fuel,,2025-01-05,treasurer",
		"r5,u1,expense,75,Fuel,,not-a-date,treasurer",
	)

	logger := &logging.MockLogger{}
	reader := NewReader(logger)
	records, err := reader.ReadFile(path)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "r1", records[0].ID)
	assert.True(t, logger.HasEntry("WARN", "Skipping malformed record row"))
}

func TestReadFileMissingFile(t *testing.T) {
	reader := NewReader(&logging.MockLogger{})
	_, err := reader.ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestFileRecordSourceFetch(t *testing.T) {
	path := writeRecordsFile(t,
		"r1,u1,income,100,Tithe,,2025-01-05,treasurer",
		"r2,u1,expense,40,Fuel,,2025-02-10,treasurer",
		"r3,u1,income,60,Tithe,,2024-12-28,treasurer",
		"r4,u2,income,500,Sales,,2025-01-06,treasurer",
	)
	source := NewFileRecordSource(path, &logging.MockLogger{})

	t.Run("filters by unit", func(t *testing.T) {
		records, err := source.Fetch("u1", "", time.Time{}, time.Time{})
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})

	t.Run("filters by type", func(t *testing.T) {
		records, err := source.Fetch("u1", models.TypeExpense, time.Time{}, time.Time{})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "r2", records[0].ID)
	})

	t.Run("filters by date range", func(t *testing.T) {
		from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
		records, err := source.Fetch("u1", "", from, to)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}

func TestWriteReport(t *testing.T) {
	buckets := []models.MonthBucket{
		{
			Year:  2025,
			Month: time.January,
			Totals: []models.CategoryTotal{
				{Category: "Tithe", Amount: decimal.NewFromInt(1500)},
				{Category: "Offering", Amount: decimal.NewFromInt(500)},
			},
			Total: decimal.NewFromInt(2000),
		},
	}

	path := filepath.Join(t.TempDir(), "report.csv")
	writer := NewWriter(formatter.New("₦"), &logging.MockLogger{})
	require.NoError(t, writer.WriteReport(buckets, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Year,Month,Category,Icon,Amount,Compact,BucketTotal", lines[0])
	assert.Equal(t, "2025,January,Tithe,tithe,\"₦1,500\",₦1.5K,\"₦2,000\"", lines[1])
	assert.Equal(t, "2025,January,Offering,tithe,₦500,₦500,\"₦2,000\"", lines[2])
}

func TestWriteReportWithoutHeaders(t *testing.T) {
	buckets := []models.MonthBucket{
		{
			Year:   2025,
			Month:  time.January,
			Totals: []models.CategoryTotal{{Category: "Tithe", Amount: decimal.NewFromInt(500)}},
			Total:  decimal.NewFromInt(500),
		},
	}

	path := filepath.Join(t.TempDir(), "report.csv")
	writer := NewWriter(formatter.New("₦"), &logging.MockLogger{}).WithoutHeaders()
	require.NoError(t, writer.WriteReport(buckets, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2025,January,Tithe,tithe,₦500,₦500,₦500", strings.TrimSpace(string(data)))
}

func TestWriteReportEmptyBuckets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	writer := NewWriter(formatter.New("₦"), &logging.MockLogger{})
	require.NoError(t, writer.WriteReport(nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Year,Month,Category,Icon,Amount,Compact,BucketTotal",
		strings.TrimSpace(string(data)))
}
