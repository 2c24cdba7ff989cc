package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"nutriplan/internal/advice"
	"nutriplan/internal/api"
	"nutriplan/internal/catalog"
	"nutriplan/internal/config"
	"nutriplan/internal/database"
	"nutriplan/internal/metrics"
	"nutriplan/internal/models"
)

var (
	port        = flag.Int("port", 8080, "API server port")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
	catalogFile = flag.String("catalog", "", "Path to catalog CSV (overrides config)")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *catalogFile != "" {
		cfg.CatalogPath = *catalogFile
	}
	if *metricsPort != 0 {
		cfg.Metrics.Port = *metricsPort
	}

	// Initialize database
	if err := database.InitDB(cfg.DatabasePath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	// Load the food catalog once; it is read-only for the process lifetime
	foods, err := loadCatalog(cfg)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Loaded %d foods into the catalog", len(foods))

	// Optional LLM for advice personalization
	model, err := initializeLLM(cfg)
	if err != nil {
		log.Printf("Advice personalization disabled: %v", err)
	}

	// Initialize metrics collector and API server
	collector := metrics.NewCollector()
	server := api.NewPlannerAPI(foods, advice.NewAdvisor(model), collector, cfg.JWTSecret)

	// Start metrics server
	if cfg.Metrics.Enabled {
		go startMetricsServer(cfg.Metrics.Port, cfg.Metrics.Path, collector)
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: server.Router,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
	}()

	// Start server
	log.Printf("Starting API server on port %d", *port)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

// loadCatalog migrates the foods table, seeds it (from the configured CSV or
// the built-in defaults) and reads the full catalog back.
func loadCatalog(cfg *config.Config) ([]models.FoodItem, error) {
	db := database.GetDB()
	if err := catalog.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate foods table: %w", err)
	}

	seed := catalog.Default()
	if cfg.CatalogPath != "" {
		items, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, fmt.Errorf("catalog file %s contained no usable rows", cfg.CatalogPath)
		}
		seed = items
	}

	if err := catalog.Seed(db, seed); err != nil {
		return nil, err
	}
	return catalog.LoadAll(db)
}

// initializeLLM builds the optional langchaingo client used for advice
// personalization. Returns nil when no API key is configured.
func initializeLLM(cfg *config.Config) (llms.LLM, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("no OpenAI API key configured")
	}

	model, err := openai.New(
		openai.WithModel("gpt-4-turbo-preview"),
		openai.WithToken(cfg.OpenAIKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
	}
	return model, nil
}

func startMetricsServer(port int, path string, collector *metrics.Collector) {
	if path == "" {
		path = "/metrics"
	}

	metricsRouter := gin.Default()
	metricsRouter.GET(path, gin.WrapH(collector.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
