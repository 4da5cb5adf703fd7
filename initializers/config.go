package initializers

import (
	"os"
	"strconv"
)

// Config holds every environment-driven option the storefront recognizes.
type Config struct {
	DatabaseDSN           string
	SecretKey             string
	Port                  string
	DeliveryFee           float64
	CompanyEmail          string
	CompanyPhone          string
	MaxContentLength      int64
	UploadFolder          string
	SessionCookieHTTPOnly bool
	SessionLifetime       int
}

var AppConfig Config

func LoadConfig() {
	AppConfig = Config{
		DatabaseDSN:           getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/pastry_db?charset=utf8mb4&parseTime=True&loc=Local"),
		SecretKey:             getEnv("SECRET_KEY", "fallback-secret-key-change-in-production"),
		Port:                  getEnv("PORT", "8080"),
		DeliveryFee:           getEnvFloat("DELIVERY_FEE", 5.99),
		CompanyEmail:          getEnv("COMPANY_EMAIL", "orders@sweetdelights.com"),
		CompanyPhone:          getEnv("COMPANY_PHONE", "(555) 123-4567"),
		MaxContentLength:      getEnvInt64("MAX_CONTENT_LENGTH", 16777216),
		UploadFolder:          getEnv("UPLOAD_FOLDER", "static/uploads"),
		SessionCookieHTTPOnly: getEnvBool("SESSION_COOKIE_HTTPONLY", true),
		SessionLifetime:       int(getEnvInt64("PERMANENT_SESSION_LIFETIME", 3600)),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
