package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI       string
	DBName         string
	RedisAddr      string
	RedisPassword  string
	SheetID        string
	FeedBaseURL    string
	FeedTimeout    time.Duration
	JWTSecret      string
	AccessTokenTTL time.Duration
	GeminiAPIKey   string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:       getEnvOrDefault("MONGO_URI", ""),
		DBName:         getEnvOrDefault("DB_NAME", "vietmarket"),
		RedisAddr:      getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnvOrDefault("REDIS_PASSWORD", ""),
		SheetID:        getEnvOrDefault("SHEET_ID", "1uqOCrUxoeSXAHODRjwCSY0PRc1cjB_r6nk-R5PyE4pQ"),
		FeedBaseURL:    getEnvOrDefault("FEED_BASE_URL", "https://docs.google.com/spreadsheets"),
		FeedTimeout:    getDurationEnv("FEED_TIMEOUT", 10, time.Second),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", ""),
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", 20, time.Minute),
		GeminiAPIKey:   getEnvOrDefault("GEMINI_API_KEY", ""),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
