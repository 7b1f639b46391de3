package store

import (
	"os"
	"path/filepath"
	"testing"

	"unitfin/internal/logging"
	"unitfin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(t *testing.T) *FileSource {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.yaml")
	return NewFileSource(path, &logging.MockLogger{})
}

func TestFileSourceMissingFileIsEmpty(t *testing.T) {
	source := newTestSource(t)

	names, err := source.List("u1", models.TypeIncome)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestFileSourceAddAndList(t *testing.T) {
	source := newTestSource(t)

	require.NoError(t, source.Add("u1", models.TypeIncome, "Tithe"))
	require.NoError(t, source.Add("u1", models.TypeIncome, "Offering"))
	require.NoError(t, source.Add("u1", models.TypeExpense, "Fuel"))
	require.NoError(t, source.Add("u2", models.TypeIncome, "Sales"))

	names, err := source.List("u1", models.TypeIncome)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tithe", "Offering"}, names)

	names, err = source.List("u1", models.TypeExpense)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fuel"}, names)

	names, err = source.List("u2", models.TypeIncome)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sales"}, names)
}

func TestFileSourceSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	first := NewFileSource(path, &logging.MockLogger{})
	require.NoError(t, first.Add("u1", models.TypeIncome, "Tithe"))

	second := NewFileSource(path, &logging.MockLogger{})
	names, err := second.List("u1", models.TypeIncome)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tithe"}, names)
}

func TestFileSourceCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "categories.yaml")
	source := NewFileSource(path, &logging.MockLogger{})

	require.NoError(t, source.Add("u1", models.TypeIncome, "Tithe"))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileSourceRename(t *testing.T) {
	source := newTestSource(t)
	require.NoError(t, source.Add("u1", models.TypeExpense, "Fuel"))
	require.NoError(t, source.Add("u1", models.TypeExpense, "Rent"))

	require.NoError(t, source.Rename("u1", models.TypeExpense, "Fuel", "Diesel"))

	names, err := source.List("u1", models.TypeExpense)
	require.NoError(t, err)
	assert.Equal(t, []string{"Diesel", "Rent"}, names)
}

func TestFileSourceRenameMissingName(t *testing.T) {
	source := newTestSource(t)
	require.NoError(t, source.Add("u1", models.TypeExpense, "Rent"))

	err := source.Rename("u1", models.TypeExpense, "Fuel", "Diesel")
	assert.Error(t, err)
}

func TestFileSourceCorruptFile(t *testing.T) {
	source := newTestSource(t)
	require.NoError(t, os.WriteFile(source.Path, []byte(":\n  - not yaml"), 0644))

	_, err := source.List("u1", models.TypeIncome)
	assert.Error(t, err)
}

func TestLegacyFileStoreMissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy_categories.yaml")
	legacy := NewLegacyFileStore(path, &logging.MockLogger{})

	cache, err := legacy.Load()
	require.NoError(t, err)
	assert.True(t, cache.IsEmpty())
}

func TestLegacyFileStoreLoadsPerUnitTypeShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy_categories.yaml")
	data := "u1:\n  income:\n    - Tithe\n    - Offering\n  expense:\n    - Fuel\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	legacy := NewLegacyFileStore(path, &logging.MockLogger{})
	cache, err := legacy.Load()
	require.NoError(t, err)

	assert.Empty(t, cache.PerUnit)
	assert.Equal(t, []string{"Tithe", "Offering"}, cache.PerUnitType["u1"][models.TypeIncome])
	assert.Equal(t, []string{"Fuel"}, cache.PerUnitType["u1"][models.TypeExpense])
}

func TestLegacyFileStoreLoadsPerUnitShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy_categories.yaml")
	data := "u1:\n  - Tithe\n  - Fuel\nu2:\n  - Sales\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	legacy := NewLegacyFileStore(path, &logging.MockLogger{})
	cache, err := legacy.Load()
	require.NoError(t, err)

	assert.Empty(t, cache.PerUnitType)
	assert.Equal(t, []string{"Tithe", "Fuel"}, cache.PerUnit["u1"])
	assert.Equal(t, []string{"Sales"}, cache.PerUnit["u2"])
}

func TestLegacyFileStoreRejectsUnknownTypeKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy_categories.yaml")
	data := "u1:\n  revenue:\n    - Tithe\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	legacy := NewLegacyFileStore(path, &logging.MockLogger{})
	_, err := legacy.Load()
	assert.Error(t, err)
}

func TestLegacyFileStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy_categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("u1:\n  - Tithe\n"), 0644))

	legacy := NewLegacyFileStore(path, &logging.MockLogger{})
	require.NoError(t, legacy.Clear())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing again is fine.
	assert.NoError(t, legacy.Clear())
}
