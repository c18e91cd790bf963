package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
)

type fakeSearchRepo struct {
	rankedRows    []models.RepairPrice
	rankedErr     error
	substringRows []models.RepairPrice
	substringErr  error

	rankedCalls    int
	substringCalls int
	lastQuery      string
	lastLimit      int
}

func (f *fakeSearchRepo) SearchRanked(query string, limit int) ([]models.RepairPrice, error) {
	f.rankedCalls++
	f.lastQuery = query
	f.lastLimit = limit
	return f.rankedRows, f.rankedErr
}

func (f *fakeSearchRepo) SearchSubstring(query string, limit int) ([]models.RepairPrice, error) {
	f.substringCalls++
	f.lastQuery = query
	f.lastLimit = limit
	return f.substringRows, f.substringErr
}

func (f *fakeSearchRepo) GetByID(id uint) (*models.RepairPrice, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSearchRepo) GetManufacturers() ([]models.ManufacturerSummary, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSearchRepo) GetModels(manufacturer string) ([]string, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSearchRepo) GetRepairs(manufacturer, model string) ([]models.RepairPrice, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSearchRepo) GetAll() ([]models.RepairPrice, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSearchRepo) Create(row *models.RepairPrice) error { return errors.New("not implemented") }
func (f *fakeSearchRepo) Update(row *models.RepairPrice) error { return errors.New("not implemented") }
func (f *fakeSearchRepo) Delete(id uint) error                 { return errors.New("not implemented") }
func (f *fakeSearchRepo) Count() (int64, error)                { return 0, errors.New("not implemented") }

func TestSearchShortQueryReturnsEmptyWithoutStoreCall(t *testing.T) {
	repo := &fakeSearchRepo{}
	m := NewMatcher(repo)

	for _, query := range []string{"", "a", " x ", "  "} {
		rows, err := m.Search(query)
		require.NoError(t, err)
		assert.Empty(t, rows)
	}

	assert.Zero(t, repo.rankedCalls)
	assert.Zero(t, repo.substringCalls)
}

func TestSearchUsesRankedMatch(t *testing.T) {
	repo := &fakeSearchRepo{
		rankedRows: []models.RepairPrice{
			{Manufacturer: "Apple", Model: "iPhone 14", RepairType: "Display exchange"},
		},
	}
	m := NewMatcher(repo)

	rows, err := m.Search("  iphone 14  ")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, 1, repo.rankedCalls)
	assert.Zero(t, repo.substringCalls)
	assert.Equal(t, "iphone 14", repo.lastQuery)
	assert.Equal(t, DefaultLimit, repo.lastLimit)
}

func TestSearchFallsBackToSubstringMatch(t *testing.T) {
	repo := &fakeSearchRepo{
		rankedErr: errors.New("fulltext index missing"),
		substringRows: []models.RepairPrice{
			{Manufacturer: "Samsung", Model: "Galaxy S23", RepairType: "Battery exchange"},
		},
	}
	m := NewMatcher(repo)

	rows, err := m.Search("galaxy")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, repo.rankedCalls)
	assert.Equal(t, 1, repo.substringCalls)
}

func TestSearchBothPathsFailing(t *testing.T) {
	repo := &fakeSearchRepo{
		rankedErr:    errors.New("fulltext index missing"),
		substringErr: errors.New("db gone"),
	}
	m := NewMatcher(repo)

	_, err := m.Search("galaxy")
	assert.Error(t, err)
}

func TestSearchMultibyteQueryLength(t *testing.T) {
	repo := &fakeSearchRepo{}
	m := NewMatcher(repo)

	// Two runes, four bytes: long enough.
	_, err := m.Search("öö")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.rankedCalls)
}
