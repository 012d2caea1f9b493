package config

import (
	"os"
	"strconv"
	"time"
)

// QuotaConfig holds the admission-policy defaults applied at registration time.
type QuotaConfig struct {
	// DefaultQuota is the per-day admitted-request quota assigned when a
	// registration does not specify one.
	DefaultQuota int
	// DefaultLogLimit bounds usage-log listings when the caller omits a limit.
	DefaultLogLimit int
}

func NewQuotaConfig() *QuotaConfig {
	return &QuotaConfig{
		DefaultQuota:    getEnvInt("DEFAULT_QUOTA", 100),
		DefaultLogLimit: getEnvInt("DEFAULT_LOG_LIMIT", 50),
	}
}

type CacheConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	DefaultTTL    time.Duration
}

func NewCacheConfig() *CacheConfig {
	return &CacheConfig{
		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       0,
		DefaultTTL:    15 * time.Minute,
	}
}

// Enabled reports whether a redis cache has been configured at all.
func (c *CacheConfig) Enabled() bool {
	return c.RedisHost != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
