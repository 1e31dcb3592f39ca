package services

import (
	"laptop-shop/models"
)

// ProductPager is the slice of the backend client the catalog needs.
type ProductPager interface {
	Products(page, size int, modelName string) (*models.ProductPage, error)
}

// CatalogView is what the product listing template renders.
type CatalogView struct {
	Products    []models.Product
	CurrentPage int
	TotalPages  int
	PageSize    int
	Injected    bool
	Error       string
}

// Pages enumerates page indexes for the pager, zero-based like the backend.
func (v CatalogView) Pages() []int {
	pages := make([]int, v.TotalPages)
	for i := range pages {
		pages[i] = i
	}
	return pages
}

type CatalogService struct {
	repo     ProductPager
	pageSize int
}

func NewCatalogService(repo ProductPager, pageSize int) *CatalogService {
	if pageSize <= 0 {
		pageSize = 8
	}
	return &CatalogService{repo: repo, pageSize: pageSize}
}

// Resolve applies the listing rules in priority order:
//  1. a non-empty injected list is displayed as-is, already fully
//     paginated, and no fetch happens regardless of fromCollection;
//  2. otherwise, when a collection is available, the requested page is
//     fetched and totalPages taken from the envelope;
//  3. otherwise the view is empty.
//
// Injected result sets are never re-paginated against the server.
func (s *CatalogService) Resolve(injected []models.Product, fromCollection bool, page int) CatalogView {
	if len(injected) > 0 {
		return CatalogView{
			Products:    injected,
			CurrentPage: 0,
			TotalPages:  1,
			PageSize:    s.pageSize,
			Injected:    true,
		}
	}

	if !fromCollection {
		return CatalogView{TotalPages: 1, PageSize: s.pageSize}
	}

	if page < 0 {
		page = 0
	}

	resp, err := s.repo.Products(page, s.pageSize, "")
	if err != nil {
		// shown raw and inline, no retry
		return CatalogView{CurrentPage: page, TotalPages: 1, PageSize: s.pageSize, Error: err.Error()}
	}

	return CatalogView{
		Products:    resp.Content,
		CurrentPage: page,
		TotalPages:  resp.TotalPages,
		PageSize:    s.pageSize,
	}
}
