package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptop-shop/models"
)

type fakeSearcher struct {
	calls    int
	lastMin  float64
	lastMax  float64
	products []models.Product
	err      error
}

func (f *fakeSearcher) ProductsByPriceRange(minPrice, maxPrice float64) ([]models.Product, error) {
	f.calls++
	f.lastMin = minPrice
	f.lastMax = maxPrice
	return f.products, f.err
}

func TestPriceBandBounds(t *testing.T) {
	expected := map[string][2]float64{
		"Dưới 5 triệu":  {0, 5000000},
		"5 - 10 triệu":  {5000000, 10000000},
		"10 - 15 triệu": {10000000, 15000000},
		"15 - 20 triệu": {15000000, 20000000},
		"20 - 25 triệu": {20000000, 25000000},
		"25 - 30 triệu": {25000000, 30000000},
		"30 - 35 triệu": {30000000, 35000000},
		"35 - 40 triệu": {35000000, 40000000},
		"40 - 45 triệu": {40000000, 45000000},
		"45 - 50 triệu": {45000000, 50000000},
		"Trên 50 triệu": {50000000, 1000000000},
	}

	require.Len(t, PriceBands, 11)
	for label, bounds := range expected {
		band, ok := BandByLabel(label)
		require.True(t, ok, label)
		assert.Equal(t, bounds[0], band.Min, label)
		assert.Equal(t, bounds[1], band.Max, label)
	}
}

func TestSearchBandQueriesDeclaredBounds(t *testing.T) {
	repo := &fakeSearcher{products: []models.Product{{IDProduct: 1}}}
	svc := NewFilterService(repo)

	results := svc.SearchBand("5 - 10 triệu")

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, float64(5000000), repo.lastMin)
	assert.Equal(t, float64(10000000), repo.lastMax)
	assert.Len(t, results, 1)
}

func TestSearchBandUnknownLabelClearsWithoutCall(t *testing.T) {
	repo := &fakeSearcher{}
	svc := NewFilterService(repo)

	results := svc.SearchBand("")

	assert.Zero(t, repo.calls)
	assert.Empty(t, results)
}

func TestSearchCustomRejectsNonNumericInput(t *testing.T) {
	repo := &fakeSearcher{}
	svc := NewFilterService(repo)

	_, err := svc.SearchCustom("10", "abc")

	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Zero(t, repo.calls, "a rejected search must not hit the network")
}

func TestSearchCustomValidInput(t *testing.T) {
	repo := &fakeSearcher{products: []models.Product{{IDProduct: 3}}}
	svc := NewFilterService(repo)

	results, err := svc.SearchCustom("10", "20000000")

	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, float64(10), repo.lastMin)
	assert.Equal(t, float64(20000000), repo.lastMax)
	assert.Len(t, results, 1)
}

func TestSearchFailureRepublishesEmptyList(t *testing.T) {
	repo := &fakeSearcher{err: errors.New("backend down")}
	svc := NewFilterService(repo)

	results, err := svc.SearchCustom("0", "5000000")

	require.NoError(t, err, "a query failure is not surfaced inline")
	assert.NotNil(t, results)
	assert.Empty(t, results)
}
