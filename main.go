package main

import (
	"html/template"
	"log"

	"github.com/gin-gonic/gin"

	"laptop-shop/config"
	"laptop-shop/libs"
	"laptop-shop/routes"
	"laptop-shop/utils"
)

func main() {

	config.LoadConfig()

	logger := libs.InitLogger(config.AppConfig.AppEnv)
	defer logger.Sync()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()
	router.SetFuncMap(template.FuncMap{
		"vnd": utils.FormatVND,
		"inc": func(i int) int { return i + 1 },
	})
	router.LoadHTMLGlob("templates/*.html")
	router.Static("/static", "./static")
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Backend API: %s", config.AppConfig.APIBaseURL)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
