package registry

import (
	"errors"
	"testing"

	"unitfin/internal/financeerror"
	"unitfin/internal/logging"
	"unitfin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() (*Registry, *StubCategorySource) {
	source := NewStubCategorySource()
	return New(source, &logging.MockLogger{}), source
}

func TestAdd_CaseInsensitiveConflict(t *testing.T) {
	reg, _ := newTestRegistry()

	require.NoError(t, reg.Add("u1", models.TypeIncome, "Tithe"))

	err := reg.Add("u1", models.TypeIncome, "tithe")
	require.Error(t, err)

	var conflict *financeerror.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Tithe", conflict.Existing)
	assert.Equal(t, "tithe", conflict.Name)
}

func TestAdd_SameNameDifferentScope(t *testing.T) {
	reg, _ := newTestRegistry()

	require.NoError(t, reg.Add("u1", models.TypeIncome, "Gift"))
	// Same name for the other type and for another unit is fine.
	assert.NoError(t, reg.Add("u1", models.TypeExpense, "Gift"))
	assert.NoError(t, reg.Add("u2", models.TypeIncome, "Gift"))
}

func TestAdd_MissingUnit(t *testing.T) {
	reg, _ := newTestRegistry()

	var missing *financeerror.MissingUnitError
	assert.ErrorAs(t, reg.Add("", models.TypeIncome, "Tithe"), &missing)
}

func TestList_SortedCaseInsensitively(t *testing.T) {
	reg, _ := newTestRegistry()

	for _, name := range []string{"offering", "Tithe", "Building Fund", "airtime"} {
		require.NoError(t, reg.Add("u1", models.TypeIncome, name))
	}

	names, err := reg.List("u1", models.TypeIncome)
	require.NoError(t, err)
	assert.Equal(t, []string{"airtime", "Building Fund", "offering", "Tithe"}, names)
}

func TestList_PropagatesSourceError(t *testing.T) {
	source := NewStubCategorySource()
	source.ListErr = errors.New("backend unavailable")
	reg := New(source, &logging.MockLogger{})

	_, err := reg.List("u1", models.TypeIncome)
	assert.Error(t, err)
}

func TestEntries(t *testing.T) {
	reg, _ := newTestRegistry()
	require.NoError(t, reg.Add("u1", models.TypeIncome, "Tithe"))
	require.NoError(t, reg.Add("u1", models.TypeIncome, "Offering"))

	entries, err := reg.Entries("u1", models.TypeIncome)
	require.NoError(t, err)
	assert.Equal(t, []models.CategoryEntry{
		{UnitID: "u1", Type: models.TypeIncome, Name: "Offering"},
		{UnitID: "u1", Type: models.TypeIncome, Name: "Tithe"},
	}, entries)
}

func TestRename(t *testing.T) {
	t.Run("replaces the stored name", func(t *testing.T) {
		reg, source := newTestRegistry()
		require.NoError(t, reg.Add("u1", models.TypeExpense, "Rent"))

		require.NoError(t, reg.Rename("u1", models.TypeExpense, "Rent", "Facility Rent"))

		names, err := source.List("u1", models.TypeExpense)
		require.NoError(t, err)
		assert.Equal(t, []string{"Facility Rent"}, names)
	})

	t.Run("same name is a no-op", func(t *testing.T) {
		reg, _ := newTestRegistry()
		// No entries exist, but renaming a name to itself never fails.
		assert.NoError(t, reg.Rename("u1", models.TypeExpense, "Rent", "Rent"))
	})

	t.Run("missing source name", func(t *testing.T) {
		reg, _ := newTestRegistry()

		var notFound *financeerror.NotFoundError
		err := reg.Rename("u1", models.TypeExpense, "Rent", "Facility Rent")
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("collision with different entry", func(t *testing.T) {
		reg, _ := newTestRegistry()
		require.NoError(t, reg.Add("u1", models.TypeExpense, "Rent"))
		require.NoError(t, reg.Add("u1", models.TypeExpense, "Fuel"))

		var conflict *financeerror.ConflictError
		err := reg.Rename("u1", models.TypeExpense, "Rent", "fuel")
		assert.ErrorAs(t, err, &conflict)
	})

	t.Run("case change of same entry allowed", func(t *testing.T) {
		reg, source := newTestRegistry()
		require.NoError(t, reg.Add("u1", models.TypeExpense, "rent"))

		require.NoError(t, reg.Rename("u1", models.TypeExpense, "rent", "Rent"))

		names, err := source.List("u1", models.TypeExpense)
		require.NoError(t, err)
		assert.Equal(t, []string{"Rent"}, names)
	})
}
