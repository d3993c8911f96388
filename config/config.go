package config

import (
	"log"
	"os"
	"strconv"
)

const (
	DefaultPort                 = "8080"
	DefaultAccessTokenExpiryMin = 30
	DefaultBcryptCost           = 12
	DefaultStorageRoot          = "./storage"
	DefaultStorageMaxBytes      = 5 << 20
)

type Config struct {
	Env             string
	Port            string
	DBURL           string
	JWTSecret       string
	AccessExpiryMin int
	BcryptCost      int
	StorageRoot     string
	StorageMaxBytes int
}

func Load() *Config {
	return &Config{
		Env:             getEnv("ENV", "development"),
		Port:            getEnv("PORT", DefaultPort),
		DBURL:           mustGetEnv("DB_URL"),
		JWTSecret:       mustGetEnv("JWT_SECRET"),
		AccessExpiryMin: getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		BcryptCost:      getEnvAsInt("BCRYPT_COST", DefaultBcryptCost),
		StorageRoot:     getEnv("STORAGE_ROOT", DefaultStorageRoot),
		StorageMaxBytes: getEnvAsInt("STORAGE_MAX_BYTES", DefaultStorageMaxBytes),
	}
}

func (c *Config) Production() bool {
	return c.Env == "production"
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
