package quote

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
)

// fakeCatalog implements repository.RepairPriceRepository over fixed data.
type fakeCatalog struct {
	manufacturers []models.ManufacturerSummary
	models        map[string][]string
	repairs       map[string][]models.RepairPrice

	repairsErr error
	onFetch    func()
}

func (f *fakeCatalog) GetByID(id uint) (*models.RepairPrice, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCatalog) GetManufacturers() ([]models.ManufacturerSummary, error) {
	return f.manufacturers, nil
}

func (f *fakeCatalog) GetModels(manufacturer string) ([]string, error) {
	if f.onFetch != nil {
		f.onFetch()
	}
	return f.models[manufacturer], nil
}

func (f *fakeCatalog) GetRepairs(manufacturer, model string) ([]models.RepairPrice, error) {
	if f.onFetch != nil {
		f.onFetch()
	}
	if f.repairsErr != nil {
		return nil, f.repairsErr
	}
	return f.repairs[manufacturer+"/"+model], nil
}

func (f *fakeCatalog) SearchRanked(query string, limit int) ([]models.RepairPrice, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCatalog) SearchSubstring(query string, limit int) ([]models.RepairPrice, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCatalog) GetAll() ([]models.RepairPrice, error) { return nil, errors.New("not implemented") }
func (f *fakeCatalog) Create(row *models.RepairPrice) error  { return errors.New("not implemented") }
func (f *fakeCatalog) Update(row *models.RepairPrice) error  { return errors.New("not implemented") }
func (f *fakeCatalog) Delete(id uint) error                  { return errors.New("not implemented") }
func (f *fakeCatalog) Count() (int64, error)                 { return 0, errors.New("not implemented") }

func newTestCatalog() *fakeCatalog {
	return &fakeCatalog{
		manufacturers: []models.ManufacturerSummary{
			{Manufacturer: "Apple", ModelCount: 2},
			{Manufacturer: "Samsung", ModelCount: 1},
		},
		models: map[string][]string{
			"Apple":   {"iPhone 13", "iPhone 14"},
			"Samsung": {"Galaxy S23"},
		},
		repairs: map[string][]models.RepairPrice{
			"Apple/iPhone 14": {
				{Manufacturer: "Apple", Model: "iPhone 14", RepairType: "Battery exchange", PriceCents: 8900},
				{Manufacturer: "Apple", Model: "iPhone 14", RepairType: "Display exchange", PriceCents: 24900},
			},
		},
	}
}

func TestConfiguratorFullFlow(t *testing.T) {
	cf := NewConfigurator(newTestCatalog())

	manufacturers, err := cf.Manufacturers()
	require.NoError(t, err)
	require.Len(t, manufacturers, 2)
	assert.Equal(t, StepManufacturer, cf.State().Step)

	modelNames, err := cf.SelectManufacturer("Apple")
	require.NoError(t, err)
	assert.Equal(t, []string{"iPhone 13", "iPhone 14"}, modelNames)
	assert.Equal(t, StepModel, cf.State().Step)

	rows, err := cf.SelectModel("iPhone 14")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Display repairs come first regardless of catalog order.
	assert.Equal(t, "Display exchange", rows[0].RepairType)
	assert.Equal(t, "Battery exchange", rows[1].RepairType)

	state := cf.State()
	assert.Equal(t, StepRepairs, state.Step)
	assert.Equal(t, "Apple", state.Manufacturer)
	assert.Equal(t, "iPhone 14", state.Model)
}

func TestConfiguratorSelectModelWithoutManufacturer(t *testing.T) {
	cf := NewConfigurator(newTestCatalog())

	_, err := cf.SelectModel("iPhone 14")
	assert.ErrorIs(t, err, ErrNoManufacturer)
	assert.Equal(t, StepManufacturer, cf.State().Step)
}

func TestConfiguratorResolveSearchShortcut(t *testing.T) {
	cf := NewConfigurator(newTestCatalog())

	rows, err := cf.ResolveSearch("Apple", "iPhone 14")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	state := cf.State()
	assert.Equal(t, StepRepairs, state.Step)
	assert.Equal(t, "Apple", state.Manufacturer)
	assert.Equal(t, "iPhone 14", state.Model)
}

func TestConfiguratorFetchErrorLeavesStateUntouched(t *testing.T) {
	catalog := newTestCatalog()
	catalog.repairsErr = errors.New("db gone")
	cf := NewConfigurator(catalog)

	_, err := cf.SelectManufacturer("Apple")
	require.NoError(t, err)

	_, err = cf.SelectModel("iPhone 14")
	require.Error(t, err)

	state := cf.State()
	assert.Equal(t, StepModel, state.Step)
	assert.Equal(t, "Apple", state.Manufacturer)
	assert.Empty(t, state.Model)
}

func TestConfiguratorStaleFetchDiscarded(t *testing.T) {
	catalog := newTestCatalog()
	cf := NewConfigurator(catalog)

	_, err := cf.SelectManufacturer("Apple")
	require.NoError(t, err)

	// The visitor restarts while the repairs fetch is in flight; the fetch
	// result must not resurrect the abandoned selection.
	catalog.onFetch = func() { cf.Restart() }

	rows, err := cf.ResolveSearch("Apple", "iPhone 14")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	state := cf.State()
	assert.Equal(t, StepManufacturer, state.Step)
	assert.Empty(t, state.Manufacturer)
	assert.Empty(t, state.Repairs)
}

func TestConfiguratorBack(t *testing.T) {
	cf := NewConfigurator(newTestCatalog())

	_, err := cf.SelectManufacturer("Apple")
	require.NoError(t, err)
	_, err = cf.SelectModel("iPhone 14")
	require.NoError(t, err)

	state := cf.Back()
	assert.Equal(t, StepModel, state.Step)
	assert.Equal(t, "Apple", state.Manufacturer)

	state = cf.Back()
	assert.Equal(t, StepManufacturer, state.Step)
}

func TestConfiguratorRestore(t *testing.T) {
	cf := NewConfigurator(newTestCatalog())

	cf.Restore("Apple", "")
	assert.Equal(t, StepModel, cf.State().Step)
	assert.Equal(t, "Apple", cf.State().Manufacturer)

	cf.Restore("", "")
	assert.Equal(t, NewState(), cf.State())

	// A model without a manufacturer violates the step invariants.
	cf.Restore("", "iPhone 14")
	assert.Equal(t, NewState(), cf.State())
}

func TestConfiguratorRestoreFullSelection(t *testing.T) {
	cf := NewConfigurator(newTestCatalog())

	cf.Restore("Apple", "iPhone 14")
	state := cf.State()
	assert.Equal(t, StepRepairs, state.Step)
	assert.Equal(t, "Apple", state.Manufacturer)
	assert.Equal(t, "iPhone 14", state.Model)
	assert.Empty(t, state.Repairs)
}

func TestConfiguratorBackAfterRestore(t *testing.T) {
	cf := NewConfigurator(newTestCatalog())
	cf.Restore("Apple", "iPhone 14")

	state := cf.Back()
	assert.Equal(t, StepModel, state.Step)
	assert.Equal(t, "Apple", state.Manufacturer)
	assert.Empty(t, state.Model)

	state = cf.Back()
	assert.Equal(t, StepManufacturer, state.Step)
	assert.Empty(t, state.Manufacturer)
}

func TestConfiguratorRestartAfterRestore(t *testing.T) {
	cf := NewConfigurator(newTestCatalog())
	cf.Restore("Apple", "iPhone 14")

	state := cf.Restart()
	assert.Equal(t, NewState(), state)
}
