package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config carries the settings the trade-up engine's host process needs:
// where to listen, how to reach the cache backend, and the engine
// settings read from the environment (see EngineDefaults).
type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Logging LoggingConfig
	Engine  EngineDefaults
}

type ServerConfig struct {
	Port string
	Host string
}

type RedisConfig struct {
	URL string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// EngineDefaults holds the engine settings read from the environment.
// The host reads only CacheBackend (internal/fx.NewCache); the other
// fields are loaded but not applied to requests, whose EngineConfig
// starts from internal/engine.DefaultEngineConfig.
type EngineDefaults struct {
	CacheBackend      string // "memory" or "redis"
	CacheTTLSeconds   int
	MinNPVThreshold   float64
	MaxCACBonus       float64
	RefreshMin        float64
	RefreshMax        float64
	UpgradeMin        float64
	UpgradeMax        float64
	MaxUpgradeMin     float64
	MaxUpgradeMax     float64
	MaxOffersPerTier  int
	MaxCombinations   int
	EarlyStopOnOffers int
}

// Load initializes and loads configuration using Viper.
func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("warning: .env file not found, using environment variables and defaults")
		} else {
			log.Printf("error reading config file: %v", err)
		}
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("PORT"),
			Host: viper.GetString("HOST"),
		},
		Redis: RedisConfig{
			URL: viper.GetString("REDIS_URL"),
		},
		Logging: LoggingConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Engine: EngineDefaults{
			CacheBackend:      viper.GetString("ENGINE_CACHE_BACKEND"),
			CacheTTLSeconds:   viper.GetInt("ENGINE_CACHE_TTL_SECONDS"),
			MinNPVThreshold:   viper.GetFloat64("ENGINE_MIN_NPV_THRESHOLD"),
			MaxCACBonus:       viper.GetFloat64("ENGINE_MAX_CAC_BONUS"),
			RefreshMin:        viper.GetFloat64("ENGINE_TIER_REFRESH_MIN"),
			RefreshMax:        viper.GetFloat64("ENGINE_TIER_REFRESH_MAX"),
			UpgradeMin:        viper.GetFloat64("ENGINE_TIER_UPGRADE_MIN"),
			UpgradeMax:        viper.GetFloat64("ENGINE_TIER_UPGRADE_MAX"),
			MaxUpgradeMin:     viper.GetFloat64("ENGINE_TIER_MAX_UPGRADE_MIN"),
			MaxUpgradeMax:     viper.GetFloat64("ENGINE_TIER_MAX_UPGRADE_MAX"),
			MaxOffersPerTier:  viper.GetInt("ENGINE_MAX_OFFERS_PER_TIER"),
			MaxCombinations:   viper.GetInt("ENGINE_MAX_COMBINATIONS_TO_TEST"),
			EarlyStopOnOffers: viper.GetInt("ENGINE_EARLY_STOP_ON_OFFERS"),
		},
	}
}

func setDefaults() {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("GIN_MODE", "debug")

	viper.SetDefault("REDIS_URL", "redis://localhost:6379")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")

	viper.SetDefault("ENGINE_CACHE_BACKEND", "memory")
	viper.SetDefault("ENGINE_CACHE_TTL_SECONDS", 24*60*60)
	viper.SetDefault("ENGINE_MIN_NPV_THRESHOLD", 5000.0)
	viper.SetDefault("ENGINE_MAX_CAC_BONUS", 10000.0)
	viper.SetDefault("ENGINE_TIER_REFRESH_MIN", -0.05)
	viper.SetDefault("ENGINE_TIER_REFRESH_MAX", 0.05)
	viper.SetDefault("ENGINE_TIER_UPGRADE_MIN", 0.0501)
	viper.SetDefault("ENGINE_TIER_UPGRADE_MAX", 0.25)
	viper.SetDefault("ENGINE_TIER_MAX_UPGRADE_MIN", 0.2501)
	viper.SetDefault("ENGINE_TIER_MAX_UPGRADE_MAX", 1.0)
	viper.SetDefault("ENGINE_MAX_OFFERS_PER_TIER", 50)
	viper.SetDefault("ENGINE_MAX_COMBINATIONS_TO_TEST", 1000)
	viper.SetDefault("ENGINE_EARLY_STOP_ON_OFFERS", 100)
}
