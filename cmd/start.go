package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sports-catalog/core/database"
	"sports-catalog/core/loader"
	"sports-catalog/core/logger"
	"sports-catalog/core/middleware/auth"
	"sports-catalog/core/middleware/rayid"
	"sports-catalog/core/storage"

	"sports-catalog/feature/catalog"
	"sports-catalog/feature/favourites"
	"sports-catalog/feature/integrity"
	"sports-catalog/feature/selection"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "sports-catalog/docs/swagger"
)

// @title Sports Catalog API
// @version 1.0
// @description Incremental, deduplicated browsing of teams, players and matches across leagues.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		rt, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer rt.Close()
		cfg, logg := rt.cfg, rt.log
		zap.ReplaceGlobals(logg)

		// Saved league selections
		selStore, err := selection.Open(cfg.Selection)
		if err != nil {
			logg.Fatal("Failed to open selection store", zap.Error(err))
		}
		defer selStore.Close()
		selSvc := selection.NewService(selStore, cfg.Catalog.Leagues(), cfg.Selection.MaxLeagues, logg)

		// Database (Optional)
		var db *gorm.DB
		if cfg.Database.Enabled {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed", zap.Error(err))
			} else {
				db = conn
				logg.Info("Connected to favourites database")
			}
		}

		// Object storage (Optional)
		var exporter *catalog.Exporter
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Warn("Storage unavailable, snapshot export disabled", zap.Error(err))
		} else {
			exporter = catalog.NewExporter(store, cfg.Storage.Bucket, logg)
		}

		catalogSvc := catalog.NewService(rt.client, selStore, exporter, cfg.Catalog, logg)
		defer catalogSvc.Close()
		favSvc := favourites.NewService(db, rt.client, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(catalog.NewFeature(catalogSvc, cfg.Server))
		mgr.Register(selection.NewFeature(selSvc, cfg.Server))
		mgr.Register(favourites.NewFeature(favSvc, cfg.Server))
		mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, logg, db))

		// RayID first so every later log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			l.Info("Request handled",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("duration", time.Since(start)),
			)
			return err
		})

		// Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		app.Use(auth.New(auth.Config{
			ApiKey: cfg.Server.ApiKey,
			Skip:   []string{"/swagger", "/metrics", "/health"},
		}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.ShutdownWithTimeout(time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
