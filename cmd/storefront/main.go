package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	cartAPI "github.com/ridloal/agri-storefront/internal/cart/api"
	cartService "github.com/ridloal/agri-storefront/internal/cart/service"
	catalogAPI "github.com/ridloal/agri-storefront/internal/catalog/api"
	catalogRepo "github.com/ridloal/agri-storefront/internal/catalog/repository"
	catalogService "github.com/ridloal/agri-storefront/internal/catalog/service"
	"github.com/ridloal/agri-storefront/internal/platform/config"
	"github.com/ridloal/agri-storefront/internal/platform/database"
	"github.com/ridloal/agri-storefront/internal/platform/logger"
	"github.com/ridloal/agri-storefront/internal/session"
	storefrontAPI "github.com/ridloal/agri-storefront/internal/storefront/api"
)

func main() {
	// Load Config
	serverCfg := config.LoadServerConfig("8080")
	catalogCfg := config.LoadCatalogConfig()
	sessionCfg := config.LoadSessionConfig()

	logger.Info("Starting Storefront...")

	// Setup Catalog
	ctx := context.Background()
	source, err := newCatalogSource(ctx, catalogCfg)
	if err != nil {
		logger.Error("Failed to load product catalog", err)
		os.Exit(1)
	}
	if source.db != nil {
		defer source.db.Close()
	}
	catService := catalogService.NewCatalogService(source.repo)

	// Setup Sessions
	registry := session.NewRegistry(source.currency, sessionCfg.IdleTimeout)
	sweeper, err := session.NewSweeper(registry, sessionCfg.SweepSpec)
	if err != nil {
		logger.Error("Failed to schedule session sweeper", err)
		os.Exit(1)
	}
	sweeper.Start()
	defer sweeper.Stop()

	tokens := session.NewTokenIssuer(sessionCfg.Secret, sessionCfg.TokenTTL)
	cookie := session.CookieConfig{
		Name:   sessionCfg.CookieName,
		Secure: sessionCfg.CookieSecure,
		MaxAge: int(sessionCfg.TokenTTL / time.Second),
	}

	// Setup Dependencies
	crtService := cartService.NewCartService(registry, catService)
	productHandler := catalogAPI.NewProductHandler(catService)
	cartHandler := cartAPI.NewCartHandler(crtService)
	storefrontHandler := storefrontAPI.NewStorefrontHandler(catService, crtService)

	tmpl, err := storefrontAPI.LoadTemplates()
	if err != nil {
		logger.Error("Failed to load templates", err)
		os.Exit(1)
	}

	// Setup Gin Router
	router := gin.Default()
	router.RedirectTrailingSlash = false
	router.SetHTMLTemplate(tmpl)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": registry.Len()})
	})

	router.Use(session.Middleware(tokens, cookie))
	apiV1 := router.Group("/api/v1")
	productHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1)
	storefrontHandler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:         serverCfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Storefront running on port " + serverCfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to run Storefront server", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down Storefront...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Storefront forced to shutdown", err)
	}
	logger.Info("Storefront stopped")
}

type catalogSource struct {
	repo     catalogRepo.ProductRepository
	currency string // every product and cart total uses it
	db       *sql.DB
}

// newCatalogSource prefers Postgres when a DSN is configured, otherwise the
// YAML catalog (CATALOG_FILE, or the embedded default). A YAML catalog that
// declares its own currency overrides CATALOG_CURRENCY.
func newCatalogSource(ctx context.Context, cfg config.CatalogConfig) (*catalogSource, error) {
	if cfg.DB.DSN != "" {
		db, err := database.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		logger.Info("Serving %s catalog from Postgres", cfg.Currency)
		return &catalogSource{
			repo:     catalogRepo.NewPostgresProductRepository(db, cfg.Currency),
			currency: cfg.Currency,
			db:       db,
		}, nil
	}

	cat, err := catalogRepo.LoadCatalogFile(cfg.File, cfg.Currency)
	if err != nil {
		return nil, err
	}
	if cat.Currency != cfg.Currency {
		logger.Warn("Catalog is priced in %s, ignoring CATALOG_CURRENCY=%s", cat.Currency, cfg.Currency)
	}
	name := cfg.File
	if name == "" {
		name = "embedded catalog"
	}
	logger.Info("Serving %d products in %s from %s", len(cat.Products), cat.Currency, name)
	return &catalogSource{
		repo:     catalogRepo.NewMemoryProductRepository(cat.Products),
		currency: cat.Currency,
	}, nil
}
