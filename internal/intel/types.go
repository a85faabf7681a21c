package intel

// HolderType is the behavioral classification of a holder address.
type HolderType string

const (
	HolderHuman  HolderType = "HUMAN"
	HolderBot    HolderType = "BOT"
	HolderDead   HolderType = "DEAD"
	HolderLPPool HolderType = "LP_POOL"
)

// Signal tags attached to a holder profile.
const (
	SignalBurstTrading = "burst_trading"
	SignalHighPct      = "high_pct"
	SignalNoTxns       = "no_txns"
	SignalMegaDegen    = "MEGA_DEGEN"
	SignalDegen        = "DEGEN"
	SignalFocused      = "FOCUSED"
	SignalWhale        = "WHALE"
	SignalMidCap       = "MID_CAP"
	SignalRetail       = "RETAIL"
	SignalDust         = "DUST"
)

// TxSample is one transaction observation for a holder, newest first in a
// slice. Used only transiently during classification.
type TxSample struct {
	TimeMillis int64
	Failed     bool
}

// TokenContext is the display/risk snapshot for the analyzed token. Nil
// pointer fields mean the market lookup failed or returned nothing, not zero.
type TokenContext struct {
	Name      string   `json:"name"`
	Mint      string   `json:"mint"`
	Price     *string  `json:"price"`
	MarketCap *float64 `json:"mc"`
	Volume24h *float64 `json:"vol24h"`
	RiskScore float64  `json:"riskScore"`
}

// HolderProfile is the classified result for one holder. SolBalance and
// TokenCount are nil when the corresponding lookup failed; Timezone is nil
// when no transaction sample exists.
type HolderProfile struct {
	Address    string     `json:"address"`
	HoldingPct float64    `json:"holdingPct"`
	Type       HolderType `json:"type"`
	Confidence float64    `json:"confidence"`
	SolBalance *float64   `json:"solBalance"`
	TokenCount *int       `json:"tokenCount"`
	Timezone   *string    `json:"timezone"`
	Signals    []string   `json:"signals"`
}

// Summary rolls all profiled holders into aggregate counts. TotalHolders
// counts every holder that passed the percentage filter, not just the
// enriched subset.
type Summary struct {
	TotalHolders int            `json:"totalHolders"`
	Bots         int            `json:"bots"`
	Humans       int            `json:"humans"`
	Dead         int            `json:"dead"`
	AvgSol       float64        `json:"avgSol"`
	Timezones    map[string]int `json:"timezones"`
}

// Report is the full holder intelligence report for one token.
type Report struct {
	Token   TokenContext    `json:"token"`
	Holders []HolderProfile `json:"holders"`
	Summary Summary         `json:"summary"`
}

// SnapshotToken is one entry of a multi-token market snapshot.
type SnapshotToken struct {
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Chain          string  `json:"chain"`
	Price          string  `json:"price"`
	MarketCap      float64 `json:"mc"`
	Volume24h      float64 `json:"vol24h"`
	Buys24h        int     `json:"buys24h"`
	Sells24h       int     `json:"sells24h"`
	BuysSellRatio  float64 `json:"buysSellRatio"`
	Liquidity      float64 `json:"liquidity"`
	PriceChange24h float64 `json:"priceChange24h"`
}

// TokenStats is the full display stat block for a single token, taken from
// its deepest-liquidity pair.
type TokenStats struct {
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	PriceUsd       string  `json:"priceUsd"`
	MarketCap      float64 `json:"marketCap"`
	Volume24h      float64 `json:"volume24h"`
	Volume1h       float64 `json:"volume1h"`
	Volume5m       float64 `json:"volume5m"`
	PriceChange24h float64 `json:"priceChange24h"`
	PriceChange1h  float64 `json:"priceChange1h"`
	Liquidity      float64 `json:"liquidity"`
	Buys24h        int     `json:"buys24h"`
	Sells24h       int     `json:"sells24h"`
	Chain          string  `json:"chain"`
	Dex            string  `json:"dex"`
	PairAddress    string  `json:"pairAddress"`
}
