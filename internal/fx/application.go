package fx

import (
	"tradeupengine/internal/config"

	"go.uber.org/fx"
)

// Application creates the main FX application: the core dependencies
// (config, logger, cache, engine, router) plus the trade-up HTTP module.
func Application() *fx.App {
	options := []fx.Option{
		CoreModule,
		AppModule,
	}

	// Suppress FX logs in production for cleaner output
	if config.IsProduction() {
		options = append(options, fx.NopLogger)
	}

	return fx.New(options...)
}
