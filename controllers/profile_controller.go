package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"laptop-shop/middleware"
	"laptop-shop/models"
	"laptop-shop/repositories"
)

type ProfileController struct {
	shop *repositories.ShopClient
}

func NewProfileController(shop *repositories.ShopClient) *ProfileController {
	return &ProfileController{shop: shop}
}

// Show renders the current user's record. An expired session is a redirect
// to login, not an error state.
func (ctrl *ProfileController) Show(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	user, err := ctrl.shop.CurrentUser(sess.Token)
	if err != nil {
		if repositories.IsUnauthorized(err) {
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.HTML(http.StatusOK, "profile.html", viewData(c, gin.H{"Error": err.Error()}))
		return
	}

	c.HTML(http.StatusOK, "profile.html", viewData(c, gin.H{
		"User":    user,
		"Editing": c.Query("edit") == "1",
		"Updated": c.Query("updated") == "1",
	}))
}

// Update submits the full draft record; there is no partial-field update.
// Cancel never reaches this handler, the edit form simply links back to the
// view mode, which re-renders from the last-known-good record.
func (ctrl *ProfileController) Update(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	draft := models.User{
		UserID:      cast.ToInt(c.PostForm("userId")),
		Username:    c.PostForm("username"),
		Email:       c.PostForm("email"),
		FirstName:   c.PostForm("firstName"),
		LastName:    c.PostForm("lastName"),
		PhoneNumber: c.PostForm("phoneNumber"),
		Address:     c.PostForm("address"),
		Enabled:     formBool(c, "enabled"),
		RoleID:      cast.ToInt(c.PostForm("roleId")),
	}

	if _, err := ctrl.shop.UpdateUser(sess.Token, draft); err != nil {
		if repositories.IsUnauthorized(err) {
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.HTML(http.StatusOK, "profile.html", viewData(c, gin.H{
			"User":    &draft,
			"Editing": true,
			"Error":   err.Error(),
		}))
		return
	}

	c.Redirect(http.StatusFound, "/profile?updated=1")
}
