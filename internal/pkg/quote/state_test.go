package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
)

func TestReduceSelectManufacturer(t *testing.T) {
	state := Reduce(NewState(), EventSelectManufacturer{Manufacturer: "Samsung"})

	assert.Equal(t, StepModel, state.Step)
	assert.Equal(t, "Samsung", state.Manufacturer)
	assert.Empty(t, state.Model)
	assert.Empty(t, state.Repairs)
}

func TestReduceSelectManufacturer_EmptyIgnored(t *testing.T) {
	initial := NewState()
	state := Reduce(initial, EventSelectManufacturer{})

	assert.Equal(t, initial, state)
}

func TestReduceRepairsResolved(t *testing.T) {
	rows := []models.RepairPrice{
		{Manufacturer: "Samsung", Model: "Galaxy S23", RepairType: "Backcover exchange"},
		{Manufacturer: "Samsung", Model: "Galaxy S23", RepairType: "Display exchange"},
		{Manufacturer: "Samsung", Model: "Galaxy S23", RepairType: "Battery exchange"},
	}

	state := Reduce(NewState(), EventRepairsResolved{
		Manufacturer: "Samsung",
		Model:        "Galaxy S23",
		Repairs:      rows,
	})

	require.Equal(t, StepRepairs, state.Step)
	assert.Equal(t, "Samsung", state.Manufacturer)
	assert.Equal(t, "Galaxy S23", state.Model)
	require.Len(t, state.Repairs, 3)
	assert.Equal(t, "Display exchange", state.Repairs[0].RepairType)
	assert.Equal(t, "Battery exchange", state.Repairs[1].RepairType)
	assert.Equal(t, "Backcover exchange", state.Repairs[2].RepairType)
}

func TestReduceRepairsResolved_MissingSelectionIgnored(t *testing.T) {
	state := Reduce(NewState(), EventRepairsResolved{Model: "Galaxy S23"})
	assert.Equal(t, NewState(), state)

	state = Reduce(NewState(), EventRepairsResolved{Manufacturer: "Samsung"})
	assert.Equal(t, NewState(), state)
}

func TestReduceBack(t *testing.T) {
	state := State{
		Step:         StepRepairs,
		Manufacturer: "Apple",
		Model:        "iPhone 14",
		Repairs:      []models.RepairPrice{{RepairType: "Display exchange"}},
	}

	state = Reduce(state, EventBack{})
	assert.Equal(t, StepModel, state.Step)
	assert.Equal(t, "Apple", state.Manufacturer)
	assert.Empty(t, state.Model)
	assert.Empty(t, state.Repairs)

	state = Reduce(state, EventBack{})
	assert.Equal(t, StepManufacturer, state.Step)
	assert.Empty(t, state.Manufacturer)

	// Back on step 1 is a no-op.
	state = Reduce(state, EventBack{})
	assert.Equal(t, StepManufacturer, state.Step)
}

func TestReduceRestart(t *testing.T) {
	state := State{
		Step:         StepRepairs,
		Manufacturer: "Apple",
		Model:        "iPhone 14",
		Repairs:      []models.RepairPrice{{RepairType: "Display exchange"}},
	}

	state = Reduce(state, EventRestart{})
	assert.Equal(t, NewState(), state)
}

func TestSortRepairsPrecedence(t *testing.T) {
	rows := []models.RepairPrice{
		{RepairType: "Water damage"},
		{RepairType: "Charging port"},
		{RepairType: "Battery exchange"},
		{RepairType: "Display exchange"},
		{RepairType: "Backcover exchange"},
	}

	sorted := SortRepairs(rows)

	got := make([]string, 0, len(sorted))
	for _, row := range sorted {
		got = append(got, row.RepairType)
	}
	assert.Equal(t, []string{
		"Display exchange",
		"Battery exchange",
		"Backcover exchange",
		"Charging port",
		"Water damage",
	}, got)

	// The input order is untouched.
	assert.Equal(t, "Water damage", rows[0].RepairType)
}

func TestSortRepairsStableWithinRank(t *testing.T) {
	rows := []models.RepairPrice{
		{RepairType: "Display exchange", PriceCents: 100},
		{RepairType: "Display exchange", PriceCents: 200},
	}

	sorted := SortRepairs(rows)

	require.Len(t, sorted, 2)
	assert.Equal(t, int64(100), sorted[0].PriceCents)
	assert.Equal(t, int64(200), sorted[1].PriceCents)
}
