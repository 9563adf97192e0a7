package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config carries the environment-driven settings of the application.
type Config struct {
	NutritionAPIKey  string
	NutritionBaseURL string
	MealBaseURL      string
	ProductBaseURL   string
	DatabasePath     string
	HTTPTimeout      time.Duration
}

// Load reads .env when present, then the process environment. Missing
// values fall back to the public endpoints and a local database file.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using process environment")
	}
	return &Config{
		NutritionAPIKey:  os.Getenv("NUTRITION_API_KEY"),
		NutritionBaseURL: getenv("NUTRITION_BASE_URL", "https://nutriplan-api.vercel.app/api"),
		MealBaseURL:      getenv("MEALDB_BASE_URL", "https://www.themealdb.com/api/json/v1/1"),
		ProductBaseURL:   getenv("PRODUCT_BASE_URL", "https://nutriplan-api.vercel.app/api"),
		DatabasePath:     getenv("DATABASE_PATH", "nutriplan.db"),
		HTTPTimeout:      10 * time.Second,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
