package intel

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/sirupsen/logrus"

	"github.com/aman-zulfiqar/solana-holder-intel/internal/constants"
	"github.com/aman-zulfiqar/solana-holder-intel/internal/dexscreener"
	"github.com/aman-zulfiqar/solana-holder-intel/internal/ratelimit"
	"github.com/aman-zulfiqar/solana-holder-intel/internal/rpc"
	"github.com/aman-zulfiqar/solana-holder-intel/internal/rugcheck"
)

// MarketSource is the market-pair collaborator (DexScreener).
type MarketSource interface {
	TokenPairs(ctx context.Context, address string) ([]dexscreener.Pair, error)
	Search(ctx context.Context, query string) ([]dexscreener.Pair, error)
}

// HolderSource is the holder-report collaborator (rugcheck).
type HolderSource interface {
	Report(ctx context.Context, mint string) (*rugcheck.TokenReport, error)
}

// ChainSource is the chain RPC collaborator.
type ChainSource interface {
	GetBalance(ctx context.Context, address string) (uint64, error)
	GetSignaturesForAddress(ctx context.Context, address string, limit int) ([]rpc.SignatureInfo, error)
	GetTokenAccountCount(ctx context.Context, owner string) (int, error)
}

// Analyzer runs the holder intelligence pipeline. It holds no mutable state,
// so concurrent invocations for different tokens are independent; within one
// invocation every outbound call is strictly sequential and paced.
type Analyzer struct {
	market  MarketSource
	holders HolderSource
	chain   ChainSource

	reportPacer *ratelimit.Pacer
	chainPacer  *ratelimit.Pacer
	searchPacer *ratelimit.Pacer

	logger *logrus.Logger
}

// AnalyzerConfig holds dependencies for the Analyzer. Zero-valued delays
// disable pacing, which is what the tests use; a nil Clock means the real
// clock.
type AnalyzerConfig struct {
	Market  MarketSource
	Holders HolderSource
	Chain   ChainSource

	HolderReportDelay time.Duration
	ChainCallDelay    time.Duration
	SearchDelay       time.Duration

	Clock  clock.Clock
	Logger *logrus.Logger
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(cfg AnalyzerConfig) *Analyzer {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}

	return &Analyzer{
		market:      cfg.Market,
		holders:     cfg.Holders,
		chain:       cfg.Chain,
		reportPacer: ratelimit.NewWithClock(cfg.HolderReportDelay, cfg.Clock),
		chainPacer:  ratelimit.NewWithClock(cfg.ChainCallDelay, cfg.Clock),
		searchPacer: ratelimit.NewWithClock(cfg.SearchDelay, cfg.Clock),
		logger:      cfg.Logger,
	}
}

// AnalyzeHolders runs a full intelligence report for a token mint. Single
// flaky lookups degrade individual profile fields; only an unparseable mint,
// a failed holder report, an empty qualifying holder set, or cancellation
// abort the run.
func (a *Analyzer) AnalyzeHolders(ctx context.Context, mint, displayName string) (*Report, error) {
	if _, err := solana.PublicKeyFromBase58(mint); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMint, mint)
	}

	token := TokenContext{Name: displayName, Mint: mint}

	pairs, err := a.market.TokenPairs(ctx, mint)
	if err != nil {
		a.logger.WithError(err).WithField("mint", mint).Warn("market pair lookup failed")
	} else if best := dexscreener.BestPair(pairs); best != nil {
		if best.PriceUsd != "" {
			price := best.PriceUsd
			token.Price = &price
		}
		if mc := best.MarketCapOrFDV(); mc > 0 {
			token.MarketCap = &mc
		}
		if vol := best.Volume.H24; vol > 0 {
			token.Volume24h = &vol
		}
		if token.Name == "" {
			token.Name = best.BaseToken.Symbol
		}
	}
	if token.Name == "" {
		token.Name = shortAddr(mint)
	}

	if err := a.reportPacer.Wait(ctx); err != nil {
		return nil, err
	}
	report, err := a.holders.Report(ctx, mint)
	if err != nil {
		return nil, fmt.Errorf("holder report for %s: %w", mint, err)
	}
	token.RiskScore = report.Score

	qualified := filterHolders(report.TopHolders)
	if len(qualified) == 0 {
		return nil, fmt.Errorf("%w for token %s", ErrNoHolders, token.Name)
	}

	capped := qualified
	if len(capped) > constants.MaxProfiledHolders {
		capped = capped[:constants.MaxProfiledHolders]
	}

	a.logger.WithFields(logrus.Fields{
		"mint":      mint,
		"qualified": len(qualified),
		"profiling": len(capped),
	}).Info("enriching holders")

	profiles := make([]HolderProfile, 0, len(capped))
	for _, h := range capped {
		p, err := a.profileHolder(ctx, h)
		if err != nil {
			// Only cancellation propagates out of the loop.
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return &Report{
		Token:   token,
		Holders: profiles,
		Summary: Summarize(profiles, len(qualified)),
	}, nil
}

// profileHolder enriches one holder with three paced chain calls and
// classifies the result. Each lookup failure leaves its field unknown.
func (a *Analyzer) profileHolder(ctx context.Context, h rugcheck.TopHolder) (HolderProfile, error) {
	in := ClassifyInputs{HoldingPct: h.Pct}

	if err := a.chainPacer.Wait(ctx); err != nil {
		return HolderProfile{}, err
	}
	if lamports, err := a.chain.GetBalance(ctx, h.Owner); err != nil {
		a.logger.WithError(err).WithField("owner", shortAddr(h.Owner)).Warn("balance lookup failed")
	} else {
		sol := float64(lamports) / float64(solana.LAMPORTS_PER_SOL)
		in.SolBalance = &sol
	}

	if err := a.chainPacer.Wait(ctx); err != nil {
		return HolderProfile{}, err
	}
	if sigs, err := a.chain.GetSignaturesForAddress(ctx, h.Owner, constants.SignatureLimit); err != nil {
		a.logger.WithError(err).WithField("owner", shortAddr(h.Owner)).Warn("signature lookup failed")
	} else {
		in.Samples = samplesFromSignatures(sigs)
	}

	if err := a.chainPacer.Wait(ctx); err != nil {
		return HolderProfile{}, err
	}
	if count, err := a.chain.GetTokenAccountCount(ctx, h.Owner); err != nil {
		a.logger.WithError(err).WithField("owner", shortAddr(h.Owner)).Warn("token account lookup failed")
	} else {
		in.TokenCount = &count
	}

	return Classify(h.Owner, in), nil
}

// filterHolders drops noise positions, structural entries (burn/mint
// authority scale percentages) and owners that are not 32-byte base58
// addresses.
func filterHolders(holders []rugcheck.TopHolder) []rugcheck.TopHolder {
	out := make([]rugcheck.TopHolder, 0, len(holders))
	for _, h := range holders {
		if h.Pct <= constants.MinHoldingPct || h.Pct >= constants.MaxHoldingPct {
			continue
		}
		raw, err := base58.Decode(h.Owner)
		if err != nil || len(raw) != 32 {
			continue
		}
		out = append(out, h)
	}
	return out
}

func samplesFromSignatures(sigs []rpc.SignatureInfo) []TxSample {
	samples := make([]TxSample, 0, len(sigs))
	for _, s := range sigs {
		samples = append(samples, TxSample{
			TimeMillis: s.BlockTime * 1000,
			Failed:     s.Err != nil,
		})
	}
	return samples
}

func shortAddr(addr string) string {
	if len(addr) <= 8 {
		return addr
	}
	return addr[:8]
}
