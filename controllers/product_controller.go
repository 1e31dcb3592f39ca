package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"laptop-shop/repositories"
)

type ProductController struct {
	shop *repositories.ShopClient
}

func NewProductController(shop *repositories.ShopClient) *ProductController {
	return &ProductController{shop: shop}
}

// Detail renders one product keyed by id.
func (ctrl *ProductController) Detail(c *gin.Context) {
	id := cast.ToInt(c.Param("id"))

	product, err := ctrl.shop.Product(id)
	if err != nil {
		c.HTML(http.StatusOK, "product.html", viewData(c, gin.H{"Error": err.Error()}))
		return
	}

	c.HTML(http.StatusOK, "product.html", viewData(c, gin.H{"Product": product}))
}
