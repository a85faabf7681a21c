package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/aman-zulfiqar/solana-holder-intel/internal/config"
	"github.com/aman-zulfiqar/solana-holder-intel/internal/dexscreener"
	"github.com/aman-zulfiqar/solana-holder-intel/internal/flags"
	"github.com/aman-zulfiqar/solana-holder-intel/internal/intel"
	"github.com/aman-zulfiqar/solana-holder-intel/internal/rpc"
	"github.com/aman-zulfiqar/solana-holder-intel/internal/rugcheck"
	"github.com/aman-zulfiqar/solana-holder-intel/internal/server"
)

// env bootstrap function
func loadEnv(logger *logrus.Logger) {
	// Get the project root directory (where go.mod is)
	_, filename, _, _ := runtime.Caller(0)
	projectRoot := filepath.Join(filepath.Dir(filename), "../..")
	envPath := filepath.Join(projectRoot, ".env")

	if err := godotenv.Load(envPath); err != nil {
		logger.Warnf("no .env file found at %s, using system environment variables", envPath)
	} else {
		logger.Infof("loaded .env from %s", envPath)
	}
}

// main is the entry point for the API server
// It initializes all dependencies and starts the HTTP server with graceful shutdown
func main() {
	// Initialize structured logger with custom formatting
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetLevel(logrus.InfoLevel)

	// load .env BEFORE anything reads os.Getenv
	loadEnv(logger)

	// Load and validate configuration from environment variables
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling for graceful shutdown (Ctrl+C, SIGTERM)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	// Redis backs feature flags only; the analysis pipeline never touches it
	rclient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   0, // Use default database for main application
	})
	if err := rclient.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Fatal("failed to connect to Redis")
	}

	// Initialize feature flags store for runtime kill switches
	flagStore, err := flags.NewStore(rclient)
	if err != nil {
		logger.WithError(err).Fatal("failed to create flags store")
	}

	// Outbound collaborators: market pairs, holder reports, chain RPC
	market := dexscreener.NewClient(cfg.DexScreenerBaseURL, cfg.HTTPTimeout)
	holders := rugcheck.NewClient(cfg.RugcheckBaseURL, cfg.HTTPTimeout)
	chain := rpc.NewClient(rpc.ClientConfig{
		BaseURL: cfg.RPCUrl,
		Timeout: cfg.HTTPTimeout,
		Logger:  logger,
	})

	analyzer := intel.NewAnalyzer(intel.AnalyzerConfig{
		Market:            market,
		Holders:           holders,
		Chain:             chain,
		HolderReportDelay: cfg.HolderReportDelay,
		ChainCallDelay:    cfg.ChainCallDelay,
		SearchDelay:       cfg.SearchDelay,
		Logger:            logger,
	})

	// Create handlers with all dependencies injected
	h := &server.Handlers{
		Analyzer: analyzer,    // Paced holder intelligence pipeline
		Flags:    flagStore,   // Redis-backed feature flags
		DevMode:  cfg.DevMode, // Enable detailed error responses in development
		Logger:   logger,      // Structured logger
	}

	// Create HTTP server with configuration and handlers
	srv, err := server.NewServer(server.ServerDeps{
		Handlers: h,
		Config: server.ServerConfig{
			Addr:    cfg.APIAddr, // Server bind address (e.g., ":8090")
			DevMode: cfg.DevMode, // Development mode flag
			APIKey:  cfg.APIKey,  // Optional API key for authentication
		},
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create http server")
	}

	// Setup graceful shutdown in a separate goroutine
	go func() {
		<-sigCh // Wait for shutdown signal
		logger.Info("shutting down")
		cancel()                               // Cancel context to stop ongoing operations
		_ = srv.Shutdown(context.Background()) // Gracefully shutdown HTTP server
	}()

	// Start the HTTP server
	logger.WithField("addr", cfg.APIAddr).Info("api server starting")
	if err := srv.Start(); err != nil {
		// "http: Server closed" is expected during graceful shutdown
		if err.Error() == "http: Server closed" {
			return
		}
		logger.WithError(err).Fatal("api server failed")
	}

	// Wait for server to be fully shut down
	if err := srv.WaitClosed(context.Background()); err != nil {
		fmt.Println(err)
	}
}
