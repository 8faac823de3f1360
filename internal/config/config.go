package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	DbMaxOpenConns int
	TrustedProxies []string
	CORSOrigins    []string
	BcryptCost     int
	TokenSecret    string
	TokenTTL       time.Duration
	AuthRequired   bool
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "5000"),
		DbHost:         getEnv("MYSQL_HOST", "db"),
		DbPort:         getEnv("MYSQL_PORT", "3306"),
		DbUser:         getEnv("MYSQL_USER", "productify"),
		DbPassword:     getEnv("MYSQL_PASSWORD", "productify"),
		DbName:         getEnv("MYSQL_DATABASE", "productify"),
		DbParams:       getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		DbMaxOpenConns: getEnvInt("MYSQL_MAX_OPEN_CONNS", 25),
		TrustedProxies: parseList(os.Getenv("TRUSTED_PROXIES")),
		CORSOrigins:    parseListWithDefault(os.Getenv("CORS_ORIGINS"), []string{"http://localhost:5173"}),
		BcryptCost:     getEnvInt("BCRYPT_COST", 10),
		TokenSecret:    getEnv("TOKEN_SECRET", ""),
		TokenTTL:       getEnvDuration("TOKEN_TTL", 24*time.Hour),
		AuthRequired:   getEnvBool("AUTH_REQUIRED", false),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}

func parseListWithDefault(value string, fallback []string) []string {
	if items := parseList(value); items != nil {
		return items
	}
	return fallback
}
