package constants

import "time"

// Default collaborator endpoints
const (
	DefaultRPCURL             = "https://api.mainnet-beta.solana.com"
	DefaultDexScreenerBaseURL = "https://api.dexscreener.com/latest/dex"
	DefaultRugcheckBaseURL    = "https://api.rugcheck.xyz/v1"
)

// Rate limiting. Public endpoints throttle aggressively, so every
// per-holder chain call gets a full pause in front of it.
const (
	HolderReportDelay = 1 * time.Second         // before the rugcheck report call
	SearchDelay       = 500 * time.Millisecond  // between DexScreener search calls
	ChainCallDelay    = 2500 * time.Millisecond // before each per-holder chain RPC call
)

// Limits
const (
	SignatureLimit     = 20 // most recent signatures fetched per holder
	MaxProfiledHolders = 10 // holders enriched per report
)

// Holder filter bounds: below the floor is dust noise, above the ceiling is
// a structural entry (burn address, mint authority) rather than a holder.
const (
	MinHoldingPct = 0.01
	MaxHoldingPct = 50.0
)
