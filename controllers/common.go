package controllers

import (
	"github.com/gin-gonic/gin"

	"laptop-shop/config"
	"laptop-shop/middleware"
	"laptop-shop/services"
)

// viewData builds the template payload every page shares: the resolved
// session for nav gating, the fixed price bands for the header filter, and
// the shop contact number.
func viewData(c *gin.Context, extra gin.H) gin.H {
	data := gin.H{
		"Session":      middleware.CurrentSession(c),
		"PriceBands":   services.PriceBands,
		"ContactPhone": config.AppConfig.ContactPhone,
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func formBool(c *gin.Context, name string) bool {
	v := c.PostForm(name)
	return v == "on" || v == "true"
}
