package config

import (
	"os"
	"strconv"
)

// Store backend selectors.
const (
	StoreFile  = "file"
	StoreRedis = "redis"
	StoreMySQL = "mysql"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort   string
	StoreBackend string
	DataFile     string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	MySQLDSN     string
	JWTSecret    string
	SimLatencyMS int
	LogLevel     string
	LogFormat    string
	SwaggerHost  string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		StoreBackend: getEnv("STORE_BACKEND", StoreFile),
		DataFile:     getEnv("DATA_FILE", "data/tutorhub.json"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:      getEnvInt("REDIS_DB", 0),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		MySQLDSN:     getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/tutorhub?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:    getEnv("JWT_SECRET", "change-me"),
		SimLatencyMS: getEnvInt("SIM_LATENCY_MS", 0),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		SwaggerHost:  os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
