package intel

import (
	"context"
	"fmt"
	"strings"

	"github.com/aman-zulfiqar/solana-holder-intel/internal/dexscreener"
)

// MarketSnapshot resolves each token name to its first matching pair via the
// free-text search, optionally filtered by chain. Searches are paced 500ms
// apart; a failed search skips that name rather than aborting the batch.
func (a *Analyzer) MarketSnapshot(ctx context.Context, names []string, chain string) ([]SnapshotToken, error) {
	tokens := make([]SnapshotToken, 0, len(names))

	for i, name := range names {
		if i > 0 {
			if err := a.searchPacer.Wait(ctx); err != nil {
				return nil, err
			}
		}

		pairs, err := a.market.Search(ctx, name)
		if err != nil {
			a.logger.WithError(err).WithField("query", name).Warn("market search failed")
			continue
		}

		match := firstMatchingPair(pairs, name, chain)
		if match == nil {
			continue
		}

		sells := match.Txns.H24.Sells
		denom := sells
		if denom == 0 {
			denom = 1
		}

		tokens = append(tokens, SnapshotToken{
			Name:           match.BaseToken.Symbol,
			Address:        match.BaseToken.Address,
			Chain:          match.ChainID,
			Price:          match.PriceUsd,
			MarketCap:      match.MarketCapOrFDV(),
			Volume24h:      match.Volume.H24,
			Buys24h:        match.Txns.H24.Buys,
			Sells24h:       sells,
			BuysSellRatio:  float64(match.Txns.H24.Buys) / float64(denom),
			Liquidity:      match.LiquidityUSD(),
			PriceChange24h: match.PriceChange.H24,
		})
	}

	return tokens, nil
}

// TokenStats returns the full display stat block for one token address from
// its deepest-liquidity pair.
func (a *Analyzer) TokenStats(ctx context.Context, address string) (*TokenStats, error) {
	pairs, err := a.market.TokenPairs(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("token pairs for %s: %w", address, err)
	}

	best := dexscreener.BestPair(pairs)
	if best == nil {
		return nil, fmt.Errorf("%w for token %s", ErrNoPairs, address)
	}

	return &TokenStats{
		Symbol:         best.BaseToken.Symbol,
		Name:           best.BaseToken.Name,
		PriceUsd:       best.PriceUsd,
		MarketCap:      best.MarketCapOrFDV(),
		Volume24h:      best.Volume.H24,
		Volume1h:       best.Volume.H1,
		Volume5m:       best.Volume.M5,
		PriceChange24h: best.PriceChange.H24,
		PriceChange1h:  best.PriceChange.H1,
		Liquidity:      best.LiquidityUSD(),
		Buys24h:        best.Txns.H24.Buys,
		Sells24h:       best.Txns.H24.Sells,
		Chain:          best.ChainID,
		Dex:            best.DexID,
		PairAddress:    best.PairAddress,
	}, nil
}

// firstMatchingPair applies the chain filter then a case-insensitive symbol
// substring match, returning the first survivor in API order.
func firstMatchingPair(pairs []dexscreener.Pair, name, chain string) *dexscreener.Pair {
	upper := strings.ToUpper(name)
	for i := range pairs {
		if chain != "" && pairs[i].ChainID != chain {
			continue
		}
		if !strings.Contains(strings.ToUpper(pairs[i].BaseToken.Symbol), upper) {
			continue
		}
		return &pairs[i]
	}
	return nil
}
