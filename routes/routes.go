package routes

import (
	"github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"

	"laptop-shop/config"
	"laptop-shop/controllers"
	"laptop-shop/libs"
	"laptop-shop/middleware"
	"laptop-shop/repositories"
	"laptop-shop/services"
)

func SetupRoutes(router *gin.Engine) {
	cfg := config.AppConfig

	bus := EventBus.New()
	bus.Subscribe(services.TopicLogin, func(string) {
		libs.Log().Infow("session opened")
	})
	bus.Subscribe(services.TopicLogout, func() {
		libs.Log().Infow("session closed")
	})

	shop := repositories.NewShopClient(cfg.APIBaseURL)
	sessions := services.NewSessionManager(cfg, bus)
	catalog := services.NewCatalogService(shop, cfg.PageSize)
	filter := services.NewFilterService(shop)
	editor := services.NewEditorService(shop)

	homeCtrl := controllers.NewHomeController(shop, catalog, filter)
	brandCtrl := controllers.NewBrandController(shop, catalog)
	productCtrl := controllers.NewProductController(shop)
	authCtrl := controllers.NewAuthController(shop, sessions)
	profileCtrl := controllers.NewProfileController(shop)
	dashCtrl := controllers.NewDashboardController(shop, editor)

	router.Use(middleware.SessionMiddleware(sessions))

	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/", homeCtrl.Index)
	router.GET("/products/:id", productCtrl.Detail)
	router.GET("/brands/:brandId", brandCtrl.Show)

	router.GET("/login", authCtrl.LoginPage)
	router.POST("/login", authCtrl.Login)
	router.GET("/login/google", authCtrl.GoogleLogin)
	router.GET("/register", authCtrl.RegisterPage)
	router.POST("/register", authCtrl.Register)
	router.POST("/logout", authCtrl.Logout)

	profile := router.Group("/profile")
	profile.Use(middleware.RequireAuth())
	{
		profile.GET("", profileCtrl.Show)
		profile.POST("/update", profileCtrl.Update)
	}

	admin := router.Group("/dashboard")
	admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
	{
		admin.GET("", dashCtrl.Index)
		admin.POST("/products/add", dashCtrl.Create)
		admin.POST("/products/:id/update", dashCtrl.Update)
		admin.POST("/products/:id/delete", dashCtrl.Delete)

		api := admin.Group("/api")
		api.Use(middleware.CORSMiddleware())
		{
			api.GET("/products", dashCtrl.ProductsJSON)
		}
	}
}
