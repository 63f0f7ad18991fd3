package cmd

import (
	"log"

	"tradeupengine/internal/config"
	"tradeupengine/internal/fx"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the trade-up offer API server",
	Long:  `Start the trade-up offer generation engine's HTTP API server.`,
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() {
	log.Println("========================================")
	log.Println("  Trade-Up Offer Engine API Server")
	log.Println("========================================")
	log.Println()

	// Load configuration
	log.Println("📋 Loading configuration...")
	cfg := config.Load()

	// Validate configuration
	log.Println("🔍 Validating configuration...")
	if err := config.ValidateConfig(); err != nil {
		log.Fatalf("❌ Configuration validation failed: %v", err)
	}

	// Print configuration
	log.Println("⚙️  Configuration Summary")
	config.PrintConfig()

	log.Println()
	log.Println("🚀 Starting application...")
	log.Printf("   Server: http://%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("   Generate: http://%s:%s/api/v1/tradeup/generate", cfg.Server.Host, cfg.Server.Port)

	if config.IsDevelopment() {
		log.Println("   Mode: DEVELOPMENT 🛠")
	} else {
		log.Println("   Mode: PRODUCTION 🏭")
	}

	log.Println()
	log.Println("📦 Initializing dependency injection (Uber FX)...")

	// Run FX application
	fx.Application().Run()
}
