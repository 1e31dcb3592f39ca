package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"laptop-shop/config"
	"laptop-shop/middleware"
	"laptop-shop/models"
	"laptop-shop/repositories"
	"laptop-shop/services"
)

type DashboardController struct {
	shop   *repositories.ShopClient
	editor *services.EditorService
}

func NewDashboardController(shop *repositories.ShopClient, editor *services.EditorService) *DashboardController {
	return &DashboardController{shop: shop, editor: editor}
}

// Index renders the admin page: the product form on one side and the
// server-paginated, name-filtered table on the other. ?edit=<id> switches
// the form into Editing mode prefilled with that record.
func (ctrl *DashboardController) Index(c *gin.Context) {
	page := cast.ToInt(c.Query("page"))
	search := c.Query("modelName")

	form := services.NewRecordState()
	formError := ""
	if editID := cast.ToInt(c.Query("edit")); editID > 0 {
		record, err := ctrl.shop.Product(editID)
		if err != nil {
			formError = err.Error()
		} else {
			form = services.EditingState(*record)
		}
	}

	tableError := ""
	table := &models.ProductPage{TotalPages: 1}
	if resp, err := ctrl.shop.Products(page, config.AppConfig.TablePageSize, search); err != nil {
		tableError = err.Error()
	} else {
		table = resp
	}

	brands, _ := ctrl.shop.AllBrands()

	c.HTML(http.StatusOK, "dashboard.html", viewData(c, gin.H{
		"Form":       form,
		"FormError":  formError,
		"Table":      table,
		"TableError": tableError,
		"Page":       page,
		"Search":     search,
		"Brands":     brands,
		"Saved":      c.Query("saved") == "1",
	}))
}

// Create submits a new record through the multipart add endpoint.
func (ctrl *DashboardController) Create(c *gin.Context) {
	ctrl.submit(c, services.FormState{Mode: services.Creating, Record: parseProductForm(c)})
}

// Update submits the edited record to the update endpoint for its id.
func (ctrl *DashboardController) Update(c *gin.Context) {
	record := parseProductForm(c)
	record.IDProduct = cast.ToInt(c.Param("id"))
	ctrl.submit(c, services.EditingState(record))
}

func (ctrl *DashboardController) submit(c *gin.Context, state services.FormState) {
	sess := middleware.CurrentSession(c)

	// the image part is optional; a form without one is still valid
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	if err := ctrl.editor.Submit(sess.Token, state, image); err != nil {
		var apiErr *repositories.APIError
		msg := err.Error()
		if errors.As(err, &apiErr) && len(apiErr.Messages) == 0 {
			action := "create"
			if state.Mode == services.Editing {
				action = "update"
			}
			msg = "Failed to " + action + " product: " + strconv.Itoa(apiErr.Status)
		}
		ctrl.renderWithError(c, state, msg)
		return
	}

	// success: reset to defaults and force the table to refetch
	c.Redirect(http.StatusFound, "/dashboard?saved=1&page="+c.Query("page")+"&modelName="+url.QueryEscape(c.Query("modelName")))
}

// Delete removes a record immediately; the redirect back to the dashboard
// is the single refetch of the current page and search term.
func (ctrl *DashboardController) Delete(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	id := cast.ToInt(c.Param("id"))

	if err := ctrl.editor.Delete(sess.Token, id); err != nil {
		ctrl.renderWithError(c, services.NewRecordState(), err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/dashboard?page="+c.Query("page")+"&modelName="+url.QueryEscape(c.Query("modelName")))
}

func (ctrl *DashboardController) renderWithError(c *gin.Context, state services.FormState, msg string) {
	page := cast.ToInt(c.Query("page"))
	search := c.Query("modelName")

	table := &models.ProductPage{TotalPages: 1}
	if resp, err := ctrl.shop.Products(page, config.AppConfig.TablePageSize, search); err == nil {
		table = resp
	}
	brands, _ := ctrl.shop.AllBrands()

	c.HTML(http.StatusOK, "dashboard.html", viewData(c, gin.H{
		"Form":      state,
		"FormError": msg,
		"Table":     table,
		"Page":      page,
		"Search":    search,
		"Brands":    brands,
	}))
}

// ProductsJSON backs the table's in-page refetch.
func (ctrl *DashboardController) ProductsJSON(c *gin.Context) {
	page := cast.ToInt(c.DefaultQuery("page", "0"))
	size := cast.ToInt(c.DefaultQuery("size", strconv.Itoa(config.AppConfig.TablePageSize)))
	search := c.Query("modelName")

	resp, err := ctrl.shop.Products(page, size, search)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Products retrieved", Data: resp})
}

func parseProductForm(c *gin.Context) models.Product {
	return models.Product{
		IDProduct:    cast.ToInt(c.PostForm("idProduct")),
		Brand:        cast.ToInt(c.PostForm("brand")),
		ModelName:    c.PostForm("modelName"),
		CPU:          c.PostForm("cpu"),
		RAM:          c.PostForm("ram"),
		SSD:          c.PostForm("ssd"),
		GPU:          c.PostForm("gpu"),
		Screen:       c.PostForm("screen"),
		Battery:      c.PostForm("battery"),
		Price:        cast.ToInt64(c.PostForm("price")),
		Location:     c.PostForm("location"),
		Touchscreen:  formBool(c, "touchscreen"),
		Convertible:  formBool(c, "convertible"),
		Grade:        c.PostForm("grade"),
		KeyboardLed:  formBool(c, "keyboardLed"),
		Numpad:       formBool(c, "numpad"),
		FullFunction: formBool(c, "fullFunction"),
		Notes:        c.PostForm("notes"),
		ImageURL:     c.PostForm("imageUrl"),
		Warranty:     c.PostForm("warranty"),
		Enabled:      formBool(c, "enabled"),
	}
}
