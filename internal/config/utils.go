package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// IsDevelopment returns true if running in development mode.
func IsDevelopment() bool {
	return viper.GetString("GIN_MODE") != "release"
}

// IsProduction returns true if running in production mode.
func IsProduction() bool {
	return viper.GetString("GIN_MODE") == "release"
}

// ValidateConfig checks the settings the engine's host cannot safely run
// without: a cache backend name it recognizes, and, when that backend is
// redis, a non-empty connection URL.
func ValidateConfig() error {
	backend := viper.GetString("ENGINE_CACHE_BACKEND")
	switch backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("ENGINE_CACHE_BACKEND must be \"memory\" or \"redis\", got %q", backend)
	}
	if backend == "redis" && viper.GetString("REDIS_URL") == "" {
		return fmt.Errorf("REDIS_URL is required when ENGINE_CACHE_BACKEND=redis")
	}
	return nil
}

// PrintConfig logs the non-sensitive settings a host started with.
func PrintConfig() {
	log.Println("=== Configuration ===")
	log.Printf("Server: %s:%s", viper.GetString("HOST"), viper.GetString("PORT"))
	log.Printf("Gin Mode: %s", viper.GetString("GIN_MODE"))
	log.Printf("Cache Backend: %s", viper.GetString("ENGINE_CACHE_BACKEND"))
	log.Printf("Cache TTL: %ds", viper.GetInt("ENGINE_CACHE_TTL_SECONDS"))
	log.Printf("Redis URL: %s", viper.GetString("REDIS_URL"))
	log.Printf("Log Level: %s", viper.GetString("LOG_LEVEL"))
	log.Printf("Log Format: %s", viper.GetString("LOG_FORMAT"))
	log.Printf("Min NPV Threshold: %.2f", viper.GetFloat64("ENGINE_MIN_NPV_THRESHOLD"))
	log.Printf("Max CAC Bonus: %.2f", viper.GetFloat64("ENGINE_MAX_CAC_BONUS"))
	log.Println("=====================")
}
