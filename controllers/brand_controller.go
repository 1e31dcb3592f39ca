package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"laptop-shop/repositories"
	"laptop-shop/services"
)

type BrandController struct {
	shop    *repositories.ShopClient
	catalog *services.CatalogService
}

func NewBrandController(shop *repositories.ShopClient, catalog *services.CatalogService) *BrandController {
	return &BrandController{shop: shop, catalog: catalog}
}

// Show lists one brand's products. Filtering is by the id in the route; the
// brandName query parameter is display-only.
func (ctrl *BrandController) Show(c *gin.Context) {
	brandID := cast.ToInt(c.Param("brandId"))
	brandName := c.DefaultQuery("brandName", "Unknown Brand")

	products, err := ctrl.shop.BrandProducts(brandID)
	if err != nil {
		c.HTML(http.StatusOK, "brand.html", viewData(c, gin.H{
			"BrandName": brandName,
			"Error":     err.Error(),
		}))
		return
	}

	// the brand result is injected: already a single, fully paginated page
	view := ctrl.catalog.Resolve(products, false, 0)

	c.HTML(http.StatusOK, "brand.html", viewData(c, gin.H{
		"BrandName": brandName,
		"View":      view,
	}))
}
