package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"laptop-shop/middleware"
	"laptop-shop/models"
	"laptop-shop/repositories"
	"laptop-shop/services"
)

type AuthController struct {
	shop     *repositories.ShopClient
	sessions *services.SessionManager
}

func NewAuthController(shop *repositories.ShopClient, sessions *services.SessionManager) *AuthController {
	return &AuthController{shop: shop, sessions: sessions}
}

func (ctrl *AuthController) LoginPage(c *gin.Context) {
	if middleware.CurrentSession(c).LoggedIn {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "login.html", viewData(c, nil))
}

// Login forwards the credentials to the backend and, on success, hands the
// token pair to the session provider.
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "login.html", viewData(c, gin.H{
			"Error": "Vui lòng nhập tên đăng nhập và mật khẩu",
		}))
		return
	}

	auth, err := ctrl.shop.Authenticate(req)
	if err != nil {
		c.HTML(http.StatusOK, "login.html", viewData(c, gin.H{
			"Error": "Tên đăng nhập hoặc mật khẩu không đúng",
		}))
		return
	}

	ctrl.sessions.Write(c, *auth)
	c.Redirect(http.StatusFound, "/")
}

// GoogleLogin hands the browser to the backend's OAuth entry point.
func (ctrl *AuthController) GoogleLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, ctrl.shop.OAuthURL("google"))
}

func (ctrl *AuthController) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", viewData(c, nil))
}

// Register creates a customer account (roleId 2) and sends the visitor to
// the login page.
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "register.html", viewData(c, gin.H{"Error": "Vui lòng điền đầy đủ thông tin"}))
		return
	}
	req.RoleID = 2

	if err := ctrl.shop.Register(req); err != nil {
		c.HTML(http.StatusOK, "register.html", viewData(c, gin.H{"Error": err.Error()}))
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

// Logout deletes the token pair and forces navigation to the login view.
func (ctrl *AuthController) Logout(c *gin.Context) {
	ctrl.sessions.Clear(c)
	c.Redirect(http.StatusFound, "/login")
}
