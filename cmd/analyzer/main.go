package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/aman-zulfiqar/solana-holder-intel/internal/config"
	"github.com/aman-zulfiqar/solana-holder-intel/internal/dexscreener"
	"github.com/aman-zulfiqar/solana-holder-intel/internal/intel"
	"github.com/aman-zulfiqar/solana-holder-intel/internal/rpc"
	"github.com/aman-zulfiqar/solana-holder-intel/internal/rugcheck"
)

// env bootstrap function
func loadEnv(logger *logrus.Logger) {
	_, filename, _, _ := runtime.Caller(0)
	projectRoot := filepath.Join(filepath.Dir(filename), "../..")
	envPath := filepath.Join(projectRoot, ".env")

	if err := godotenv.Load(envPath); err != nil {
		logger.Warnf("no .env file found at %s, using system environment variables", envPath)
	}
}

// main runs a one-shot holder analysis (or market snapshot) from the command
// line and prints the report as JSON. A full report takes a couple of minutes
// because every chain call is paced.
func main() {
	mint := flag.String("mint", "", "token mint address to analyze")
	name := flag.String("name", "", "optional display name for the token")
	snapshot := flag.String("snapshot", "", "comma-separated token names for a market snapshot instead of a holder report")
	chainFilter := flag.String("chain", "", "chain filter for -snapshot (e.g. solana)")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall run timeout")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	// Keep stdout clean for the JSON report
	logger.SetOutput(os.Stderr)

	loadEnv(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	if *mint == "" && *snapshot == "" {
		logger.Fatal("either -mint or -snapshot is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("interrupted, aborting run")
		cancel()
	}()

	analyzer := intel.NewAnalyzer(intel.AnalyzerConfig{
		Market:  dexscreener.NewClient(cfg.DexScreenerBaseURL, cfg.HTTPTimeout),
		Holders: rugcheck.NewClient(cfg.RugcheckBaseURL, cfg.HTTPTimeout),
		Chain: rpc.NewClient(rpc.ClientConfig{
			BaseURL: cfg.RPCUrl,
			Timeout: cfg.HTTPTimeout,
			Logger:  logger,
		}),
		HolderReportDelay: cfg.HolderReportDelay,
		ChainCallDelay:    cfg.ChainCallDelay,
		SearchDelay:       cfg.SearchDelay,
		Logger:            logger,
	})

	var out any
	if *snapshot != "" {
		names := splitNames(*snapshot)
		if len(names) == 0 {
			logger.Fatal("-snapshot needs at least one token name")
		}
		tokens, err := analyzer.MarketSnapshot(ctx, names, *chainFilter)
		if err != nil {
			logger.WithError(err).Fatal("market snapshot failed")
		}
		out = tokens
	} else {
		report, err := analyzer.AnalyzeHolders(ctx, *mint, *name)
		if err != nil {
			logger.WithError(err).Fatal("holder analysis failed")
		}
		out = report
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.WithError(err).Fatal("failed to encode report")
	}
}

func splitNames(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
