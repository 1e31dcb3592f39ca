package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv            string
	Port              string
	APIBaseURL        string
	AdminRole         string
	PageSize          int
	TablePageSize     int
	TokenCookie       string
	RefreshCookie     string
	TokenExpiryDays   int
	RefreshExpiryDays int
	ContactPhone      string
}

var AppConfig *Config

// LoadConfig reads the environment once at startup. API_BASE_URL is the
// single source for the backend host; no other place may build one.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	pageSize, _ := strconv.Atoi(os.Getenv("PAGE_SIZE"))
	if pageSize == 0 {
		pageSize = 8
	}
	tablePageSize, _ := strconv.Atoi(os.Getenv("TABLE_PAGE_SIZE"))
	if tablePageSize == 0 {
		tablePageSize = 10
	}

	AppConfig = &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("APP_PORT", getEnv("PORT", "3000")),
		APIBaseURL:        getEnv("API_BASE_URL", "http://localhost:8080"),
		AdminRole:         getEnv("ADMIN_ROLE", "ROLE_ADMIN"),
		PageSize:          pageSize,
		TablePageSize:     tablePageSize,
		TokenCookie:       getEnv("TOKEN_COOKIE", "jwtToken"),
		RefreshCookie:     getEnv("REFRESH_COOKIE", "refreshToken"),
		TokenExpiryDays:   7,
		RefreshExpiryDays: 30,
		ContactPhone:      getEnv("CONTACT_PHONE", "0976540201"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Backend API: %s", AppConfig.APIBaseURL)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
