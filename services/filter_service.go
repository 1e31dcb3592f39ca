package services

import (
	"errors"

	"github.com/spf13/cast"

	"laptop-shop/libs"
	"laptop-shop/models"
)

// PriceBand is one of the fixed quick-filter intervals.
type PriceBand struct {
	Label string
	Min   float64
	Max   float64
}

// PriceBands are the eleven fixed bands offered by the header filter.
var PriceBands = []PriceBand{
	{"Dưới 5 triệu", 0, 5000000},
	{"5 - 10 triệu", 5000000, 10000000},
	{"10 - 15 triệu", 10000000, 15000000},
	{"15 - 20 triệu", 15000000, 20000000},
	{"20 - 25 triệu", 20000000, 25000000},
	{"25 - 30 triệu", 25000000, 30000000},
	{"30 - 35 triệu", 30000000, 35000000},
	{"35 - 40 triệu", 35000000, 40000000},
	{"40 - 45 triệu", 40000000, 45000000},
	{"45 - 50 triệu", 45000000, 50000000},
	{"Trên 50 triệu", 50000000, 1000000000},
}

func BandByLabel(label string) (PriceBand, bool) {
	for _, band := range PriceBands {
		if band.Label == label {
			return band, true
		}
	}
	return PriceBand{}, false
}

// ErrInvalidRange blocks a custom search whose inputs do not parse; the
// notice is shown to the user and no request is made.
var ErrInvalidRange = errors.New("Vui lòng nhập khoảng giá hợp lệ.")

type PriceSearcher interface {
	ProductsByPriceRange(minPrice, maxPrice float64) ([]models.Product, error)
}

type FilterService struct {
	repo PriceSearcher
}

func NewFilterService(repo PriceSearcher) *FilterService {
	return &FilterService{repo: repo}
}

// SearchBand resolves a band label to its declared bounds and queries the
// price-range endpoint. The empty "no range" option and unknown labels
// clear the results without a network call.
func (s *FilterService) SearchBand(label string) []models.Product {
	band, ok := BandByLabel(label)
	if !ok {
		return []models.Product{}
	}
	return s.search(band.Min, band.Max)
}

// SearchCustom validates the free-form min/max inputs. Both must parse as
// numbers or the search is rejected client-side with ErrInvalidRange.
func (s *FilterService) SearchCustom(minInput, maxInput string) ([]models.Product, error) {
	minPrice, errMin := cast.ToFloat64E(minInput)
	maxPrice, errMax := cast.ToFloat64E(maxInput)
	if errMin != nil || errMax != nil {
		return nil, ErrInvalidRange
	}
	return s.search(minPrice, maxPrice), nil
}

// search republishes an empty list on failure; the listing shows nothing
// rather than an error banner.
func (s *FilterService) search(minPrice, maxPrice float64) []models.Product {
	products, err := s.repo.ProductsByPriceRange(minPrice, maxPrice)
	if err != nil {
		libs.Log().Warnw("price range search failed", "min", minPrice, "max", maxPrice, "err", err)
		return []models.Product{}
	}
	return products
}
