package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptop-shop/models"
)

type fakePager struct {
	calls    int
	lastPage int
	lastSize int
	page     *models.ProductPage
	err      error
}

func (f *fakePager) Products(page, size int, modelName string) (*models.ProductPage, error) {
	f.calls++
	f.lastPage = page
	f.lastSize = size
	return f.page, f.err
}

func TestResolveInjectedListSkipsFetch(t *testing.T) {
	repo := &fakePager{}
	svc := NewCatalogService(repo, 8)

	injected := []models.Product{{IDProduct: 1}, {IDProduct: 2}}
	view := svc.Resolve(injected, true, 3)

	assert.Zero(t, repo.calls, "an injected list must bypass the fetch even with a collection available")
	assert.True(t, view.Injected)
	assert.Equal(t, injected, view.Products)
	assert.Equal(t, 1, view.TotalPages, "injected results are treated as fully paginated")
	assert.Equal(t, 0, view.CurrentPage)
}

func TestResolveFetchesRequestedPage(t *testing.T) {
	repo := &fakePager{page: &models.ProductPage{
		Content:    []models.Product{{IDProduct: 7}},
		TotalPages: 5,
	}}
	svc := NewCatalogService(repo, 8)

	view := svc.Resolve(nil, true, 2)

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, 2, repo.lastPage)
	assert.Equal(t, 8, repo.lastSize)
	assert.False(t, view.Injected)
	assert.Equal(t, 5, view.TotalPages, "totalPages comes from the envelope")
	require.Len(t, view.Products, 1)
	assert.Equal(t, 7, view.Products[0].IDProduct)
}

func TestResolveWithoutCollectionShowsEmptyState(t *testing.T) {
	repo := &fakePager{}
	svc := NewCatalogService(repo, 8)

	view := svc.Resolve(nil, false, 0)

	assert.Zero(t, repo.calls)
	assert.Empty(t, view.Products)
	assert.Empty(t, view.Error)
}

func TestResolveFetchFailureShowsRawMessage(t *testing.T) {
	repo := &fakePager{err: errors.New("HTTP error! Status: 503")}
	svc := NewCatalogService(repo, 8)

	view := svc.Resolve(nil, true, 0)

	assert.Equal(t, "HTTP error! Status: 503", view.Error)
	assert.Empty(t, view.Products)
}

func TestDefaultPageSize(t *testing.T) {
	repo := &fakePager{page: &models.ProductPage{TotalPages: 1}}
	svc := NewCatalogService(repo, 0)

	svc.Resolve(nil, true, 0)

	assert.Equal(t, 8, repo.lastSize)
}

func TestPagesEnumeration(t *testing.T) {
	view := CatalogView{TotalPages: 3}
	assert.Equal(t, []int{0, 1, 2}, view.Pages())
}
