package fx

import (
	"fmt"
	"net/http"
	"time"

	"tradeupengine/internal/config"
	"tradeupengine/internal/engine"
	"tradeupengine/internal/logger"
	"tradeupengine/internal/middleware"
	"tradeupengine/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// CoreModule provides the ambient dependencies every route needs: config,
// logging, the redis client, the offer cache, the engine, and the router.
var CoreModule = fx.Module("core",
	fx.Provide(
		// Configuration
		config.Load,

		// Logger (must be early)
		NewLogger,

		// Redis client (backs the offer cache when ENGINE_CACHE_BACKEND=redis)
		config.NewRedisClient,

		// Offer cache, selected by config
		NewCache,

		// The engine itself
		NewEngine,

		// Gin router
		NewGinRouter,
	),
)

// NewLogger creates a new zap logger based on config
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log.Info("Logger initialized",
		zap.String("level", cfg.Logging.Level),
		zap.String("format", cfg.Logging.Format),
	)

	return log, nil
}

// NewCache selects the offer cache backend named by
// cfg.Engine.CacheBackend, falling back to the in-process cache for any
// value other than "redis".
func NewCache(cfg *config.Config, redisClient *redis.Client, log *zap.Logger) engine.Cache {
	if cfg.Engine.CacheBackend == "redis" {
		log.Info("offer cache backend: redis")
		return engine.NewRedisCache(redisClient, log)
	}
	log.Info("offer cache backend: memory")
	return engine.NewMemoryCache()
}

// NewEngine wires the process-wide risk-profile tables and the selected
// cache into the Engine the HTTP handlers share.
func NewEngine(cache engine.Cache, log *zap.Logger) *engine.Engine {
	return engine.NewEngine(engine.DefaultRiskProfileTables(), cache, log)
}

// NewGinRouter creates a new Gin router with the ambient middleware stack.
func NewGinRouter(cfg *config.Config, log *zap.Logger) *gin.Engine {
	// Set Gin mode based on config
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Apply logger middleware first so it's available in all subsequent middleware
	r.Use(middleware.LoggerMiddleware(log))

	// Apply recovery middleware
	r.Use(middleware.RecoveryMiddleware())

	// Apply error handler middleware
	r.Use(middleware.ErrorHandlerMiddleware())

	// Apply CORS middleware (no configured allow-list yet, so wildcard)
	r.Use(middleware.NewCORS(nil))

	// Apply rate limiting middleware (global IP-based rate limiting)
	// Allow 100 requests per second with burst of 200
	r.Use(middleware.IPRateLimiter(100, 200))

	// Request logging middleware (only in debug mode)
	if config.IsDevelopment() {
		r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("[%s] %s %s %d %s \"%s\" %s\n",
				param.TimeStamp.Format("2006/01/02 - 15:04:05"),
				param.ClientIP,
				param.Method,
				param.StatusCode,
				param.Latency,
				param.Path,
				param.ErrorMessage,
			)
		}))
	}

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		shared.RespondWithSuccess(c, http.StatusOK, "Service is healthy", gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	return r
}
