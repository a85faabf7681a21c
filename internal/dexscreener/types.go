package dexscreener

// Token identifies one side of a trading pair.
type Token struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// Volume holds rolling volume windows in USD.
type Volume struct {
	H24 float64 `json:"h24"`
	H6  float64 `json:"h6"`
	H1  float64 `json:"h1"`
	M5  float64 `json:"m5"`
}

// PriceChange holds rolling price change windows in percent.
type PriceChange struct {
	H24 float64 `json:"h24"`
	H6  float64 `json:"h6"`
	H1  float64 `json:"h1"`
	M5  float64 `json:"m5"`
}

// Liquidity holds pooled liquidity figures.
type Liquidity struct {
	USD   float64 `json:"usd"`
	Base  float64 `json:"base"`
	Quote float64 `json:"quote"`
}

// TxnCount holds buy/sell counts for one window.
type TxnCount struct {
	Buys  int `json:"buys"`
	Sells int `json:"sells"`
}

// Txns holds transaction counts per rolling window.
type Txns struct {
	H24 TxnCount `json:"h24"`
	H6  TxnCount `json:"h6"`
	H1  TxnCount `json:"h1"`
	M5  TxnCount `json:"m5"`
}

// Pair is a single DexScreener trading pair. Numeric fields the API omits
// decode to zero; PriceUsd stays a string exactly as the API returns it.
type Pair struct {
	ChainID     string      `json:"chainId"`
	DexID       string      `json:"dexId"`
	PairAddress string      `json:"pairAddress"`
	BaseToken   Token       `json:"baseToken"`
	QuoteToken  Token       `json:"quoteToken"`
	PriceUsd    string      `json:"priceUsd"`
	Volume      Volume      `json:"volume"`
	PriceChange PriceChange `json:"priceChange"`
	Liquidity   *Liquidity  `json:"liquidity"`
	FDV         float64     `json:"fdv"`
	MarketCap   float64     `json:"marketCap"`
	Txns        Txns        `json:"txns"`
}

// LiquidityUSD returns pooled USD liquidity, treating a missing liquidity
// object as zero.
func (p *Pair) LiquidityUSD() float64 {
	if p.Liquidity == nil {
		return 0
	}
	return p.Liquidity.USD
}

// MarketCapOrFDV returns marketCap with fdv as fallback, zero when both are
// missing.
func (p *Pair) MarketCapOrFDV() float64 {
	if p.MarketCap > 0 {
		return p.MarketCap
	}
	return p.FDV
}

type pairsResponse struct {
	Pairs []Pair `json:"pairs"`
}
