package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	DBDriver string
	// DBPath is the datastore file used by the sqlite driver.
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	// StrictEmployeeRefs makes employee writes verify the referenced
	// organisation exists before persisting.
	StrictEmployeeRefs bool
}

func Load() *Config {
	// Missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		DBDriver:           getEnv("DB_DRIVER", "sqlite"),
		DBPath:             getEnv("DB_PATH", "organisations.db"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "3306"),
		DBUser:             getEnv("DB_USER", "orguser"),
		DBPassword:         getEnv("DB_PASSWORD", "orgpassword"),
		DBName:             getEnv("DB_NAME", "organisations"),
		StrictEmployeeRefs: getEnvBool("EMPLOYEE_STRICT_REFS", false),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
