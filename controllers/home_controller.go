package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"laptop-shop/models"
	"laptop-shop/repositories"
	"laptop-shop/services"
)

type HomeController struct {
	shop    *repositories.ShopClient
	catalog *services.CatalogService
	filter  *services.FilterService
}

func NewHomeController(shop *repositories.ShopClient, catalog *services.CatalogService, filter *services.FilterService) *HomeController {
	return &HomeController{shop: shop, catalog: catalog, filter: filter}
}

// Index renders the storefront: brand strip, header filter and the product
// listing. A price filter in the query string produces an injected result
// list that bypasses the listing's own paginated fetch.
func (ctrl *HomeController) Index(c *gin.Context) {
	page := cast.ToInt(c.Query("page"))

	var injected []models.Product
	var notice string

	selectedBand := c.Query("priceRange")
	minInput := c.Query("minPrice")
	maxInput := c.Query("maxPrice")

	switch {
	case selectedBand != "":
		injected = ctrl.filter.SearchBand(selectedBand)
	case minInput != "" || maxInput != "":
		results, err := ctrl.filter.SearchCustom(minInput, maxInput)
		if err != nil {
			notice = err.Error()
		} else {
			injected = results
		}
	}

	view := ctrl.catalog.Resolve(injected, true, page)

	brands, brandErr := ctrl.shop.AllBrands()
	brandError := ""
	if brandErr != nil {
		brandError = brandErr.Error()
	}

	c.HTML(http.StatusOK, "home.html", viewData(c, gin.H{
		"ShowFilter":   true,
		"View":         view,
		"Brands":       brands,
		"BrandError":   brandError,
		"Notice":       notice,
		"SelectedBand": selectedBand,
		"MinInput":     minInput,
		"MaxInput":     maxInput,
	}))
}
