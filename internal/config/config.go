package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	HTTP     HTTPConfig
	Log      LogConfig
	Cache    CacheConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	// MigrationsPath - каталог миграций; пустой путь отключает миграции при старте
	MigrationsPath string
}

type HTTPConfig struct {
	Addr string
}

type LogConfig struct {
	Level  string
	Pretty bool
}

type CacheConfig struct {
	// Size - максимальное число участников в кэше
	Size int
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "members"),
			Password: getEnv("DB_PASSWORD", "members"),
			DBName:   getEnv("DB_NAME", "member_search"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),

			MigrationsPath: getEnv("DB_MIGRATIONS_PATH", ""),
		},
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvAsBool("LOG_PRETTY", false),
		},
		Cache: CacheConfig{
			Size: getEnvAsInt("CACHE_SIZE", 1024),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
