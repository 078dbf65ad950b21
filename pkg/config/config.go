package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                    string
	Env                     string
	PostgresConnStr         string
	RedisAddr               string
	JWTSecret               string
	JWTRefreshSecret        string
	AccessTokenTTL          time.Duration
	RefreshTokenTTL         time.Duration
	FirebaseCredentialsPath string
	StorageBucket           string
	DeleteRequiresOwner     bool
}

func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		PostgresConnStr:         getEnv("POSTGRES_CONN_STR", ""),
		RedisAddr:               getEnv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:               getEnv("JWT_SECRET", "supersecretjwtkey"),
		JWTRefreshSecret:        getEnv("JWT_REFRESH_SECRET", "supersecretrefreshkey"),
		AccessTokenTTL:          getEnvSeconds("JWT_EXPIRATION_TIME", 3600),
		RefreshTokenTTL:         getEnvSeconds("JWT_REFRESH_EXPIRATION_TIME", 7*24*3600),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase_credentials.json"),
		StorageBucket:           getEnv("STORAGE_BUCKET", ""),
		DeleteRequiresOwner:     getEnvBool("DELETE_REQUIRES_OWNER", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvSeconds(key string, defaultSeconds int) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return time.Duration(defaultSeconds) * time.Second
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Invalid %s value %q, using default of %ds\n", key, raw, defaultSeconds)
		return time.Duration(defaultSeconds) * time.Second
	}
	return time.Duration(seconds) * time.Second
}

func getEnvBool(key string, defaultValue bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
