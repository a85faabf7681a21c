package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aman-zulfiqar/solana-holder-intel/internal/constants"
)

type Config struct {
	// Collaborator endpoints
	RPCUrl             string
	DexScreenerBaseURL string
	RugcheckBaseURL    string

	// Redis settings (feature flags)
	RedisAddr string

	// HTTP client settings
	HTTPTimeout time.Duration

	// Rate-limit cadence
	HolderReportDelay time.Duration
	SearchDelay       time.Duration
	ChainCallDelay    time.Duration

	// API server settings
	APIAddr string
	APIKey  string
	DevMode bool
}

func Load() *Config {
	return &Config{
		RPCUrl:             getEnv("SOLANA_RPC_URL", constants.DefaultRPCURL),
		DexScreenerBaseURL: getEnv("DEXSCREENER_BASE_URL", constants.DefaultDexScreenerBaseURL),
		RugcheckBaseURL:    getEnv("RUGCHECK_BASE_URL", constants.DefaultRugcheckBaseURL),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),

		HTTPTimeout: getDurationEnv("HTTP_TIMEOUT", 30*time.Second),

		HolderReportDelay: getDurationEnv("HOLDER_REPORT_DELAY", constants.HolderReportDelay),
		SearchDelay:       getDurationEnv("SEARCH_DELAY", constants.SearchDelay),
		ChainCallDelay:    getDurationEnv("CHAIN_CALL_DELAY", constants.ChainCallDelay),

		APIAddr: getEnv("API_ADDR", ":8090"),
		APIKey:  getEnv("API_KEY", ""),
		DevMode: getBoolEnv("DEV_MODE", false),
	}
}

func (c *Config) Validate() error {
	if c.RPCUrl == "" {
		return fmt.Errorf("SOLANA_RPC_URL must not be empty")
	}
	if c.DexScreenerBaseURL == "" {
		return fmt.Errorf("DEXSCREENER_BASE_URL must not be empty")
	}
	if c.RugcheckBaseURL == "" {
		return fmt.Errorf("RUGCHECK_BASE_URL must not be empty")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.HolderReportDelay < 0 || c.SearchDelay < 0 || c.ChainCallDelay < 0 {
		return fmt.Errorf("rate-limit delays must not be negative")
	}
	if c.APIAddr == "" {
		return fmt.Errorf("API_ADDR must not be empty")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getBoolEnv(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
