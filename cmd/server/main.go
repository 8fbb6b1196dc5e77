package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"salestrack/internal/adapters/http/middleware"
	"salestrack/internal/adapters/http/routes"
	"salestrack/internal/adapters/persistence/repositories"
	"salestrack/internal/config"
	"salestrack/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	_ "salestrack/docs" // Swagger docs
)

// @title SalesTrack API
// @version 1.0
// @description Field-sales workforce tracker: attendance, dealer visits, PJP route plans, TA/DA claims and admin reports.

// @contact.name API Support
// @contact.email support@example.com

// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := newRootCmd(serve).Execute(); err != nil {
		log.Fatal(err)
	}
}

// newRootCmd builds the CLI. Running it without a subcommand serves.
func newRootCmd(serveFn func()) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "salestrack",
		Short: "Field-sales workforce tracker API",
		Run: func(c *cobra.Command, args []string) {
			serveFn()
		},
	}
	rootCmd.PersistentFlags().StringP("port", "p", "", "Port to listen on (overrides PORT)")
	if err := viper.BindPFlag("PORT", rootCmd.PersistentFlags().Lookup("port")); err != nil {
		log.Fatalf("❌ Failed to bind flags: %v", err)
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema and start the HTTP server",
		Run: func(c *cobra.Command, args []string) {
			serveFn()
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Run: func(c *cobra.Command, args []string) {
			withDatabase(func(cfg *config.Config, db *gorm.DB) {
				if err := config.Migrate(db); err != nil {
					log.Fatalf("❌ Failed to migrate: %v", err)
				}
			})
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Create or reset the admin account (and demo users in dev)",
		Run: func(c *cobra.Command, args []string) {
			withDatabase(func(cfg *config.Config, db *gorm.DB) {
				if err := config.NewSeeder(db, cfg).Run(); err != nil {
					log.Fatalf("❌ Failed to seed: %v", err)
				}
			})
		},
	}

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
	return rootCmd
}

func serve() {
	withDatabase(func(cfg *config.Config, db *gorm.DB) {
		// Migrate schema
		if err := config.Migrate(db); err != nil {
			log.Fatalf("❌ Failed to migrate: %v", err)
		}

		// Seed accounts for local development
		if cfg.IsDev() {
			if err := config.NewSeeder(db, cfg).Run(); err != nil {
				log.Printf("⚠️ Warning: Failed to seed: %v", err)
			}
		}

		// Start scheduler
		dashboardService := services.NewDashboardService(repositories.NewSet(db))
		cronService := services.NewCronService(dashboardService, cfg.Cron.DailySummary)
		if err := cronService.Start(); err != nil {
			log.Fatalf("❌ Invalid DAILY_SUMMARY_CRON: %v", err)
		}
		defer cronService.Stop()

		// Create Fiber app
		app := fiber.New(fiber.Config{
			AppName:      "SalesTrack API v1.0",
			ErrorHandler: middleware.CustomErrorHandler,
		})

		// Setup middlewares
		middleware.Setup(app, cfg)

		// Setup routes (pass db and cfg for dependency injection)
		routes.Setup(app, db, cfg)

		// Graceful shutdown
		go gracefulShutdown(app)

		// Start server
		log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("❌ Failed to start server: %v", err)
		}
	})
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
