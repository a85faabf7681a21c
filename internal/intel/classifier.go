package intel

// Classification thresholds
const (
	lpPoolPctThreshold = 10.0 // no-txn holders above this look like pool contracts

	burstCountBotThreshold = 5
	minGapBotSeconds       = 2.0
	botSampleFloor         = 10

	megaDegenTokenCount = 20
	degenTokenCount     = 10
	focusedTokenCount   = 3

	whaleSOL  = 100.0
	midCapSOL = 10.0
	retailSOL = 1.0
)

// ClassifyInputs are the enrichment results for one holder. A nil pointer or
// empty sample slice means the lookup failed or returned nothing; the
// classifier treats those as unknown, never as zero.
type ClassifyInputs struct {
	Samples    []TxSample // newest first
	TokenCount *int
	SolBalance *float64 // SOL, not lamports
	HoldingPct float64
}

// classifierRule inspects one independent signal and mutates the profile.
// Rules run in a fixed order so signal ordering stays reproducible.
type classifierRule func(p *HolderProfile, stats ActivityStats, in ClassifyInputs)

var classifierRules = []classifierRule{
	botRule,
	tokenDiversityRule,
	wealthTierRule,
}

// Classify builds a fully populated profile for one holder. It is a pure
// function of its inputs: no lookups, no clocks, no shared state.
func Classify(address string, in ClassifyInputs) HolderProfile {
	p := HolderProfile{
		Address:    address,
		HoldingPct: in.HoldingPct,
		SolBalance: in.SolBalance,
		TokenCount: in.TokenCount,
		Signals:    []string{},
	}

	// No usable transaction history: a large no-txn position is a pool
	// contract, a small one is a dead wallet.
	if len(in.Samples) == 0 {
		if in.HoldingPct > lpPoolPctThreshold {
			p.Type = HolderLPPool
			p.Confidence = 0.9
			p.Signals = []string{SignalHighPct, SignalNoTxns}
		} else {
			p.Type = HolderDead
			p.Confidence = 0.8
			p.Signals = []string{SignalNoTxns}
		}
		return p
	}

	p.Type = HolderHuman
	p.Confidence = 0.6

	stats := AnalyzeGaps(in.Samples)
	for _, rule := range classifierRules {
		rule(&p, stats, in)
	}

	p.Timezone = InferTimezone(in.Samples)
	return p
}

func botRule(p *HolderProfile, stats ActivityStats, _ ClassifyInputs) {
	if stats.BurstCount > burstCountBotThreshold ||
		(stats.MinGapSeconds < minGapBotSeconds && stats.Samples > botSampleFloor) {
		p.Type = HolderBot
		p.Confidence = 0.9
		p.Signals = append(p.Signals, SignalBurstTrading)
	}
}

func tokenDiversityRule(p *HolderProfile, _ ActivityStats, in ClassifyInputs) {
	if in.TokenCount == nil {
		return
	}
	switch n := *in.TokenCount; {
	case n > megaDegenTokenCount:
		p.Signals = append(p.Signals, SignalMegaDegen)
	case n > degenTokenCount:
		p.Signals = append(p.Signals, SignalDegen)
	case n <= focusedTokenCount:
		p.Signals = append(p.Signals, SignalFocused)
	}
}

func wealthTierRule(p *HolderProfile, _ ActivityStats, in ClassifyInputs) {
	if in.SolBalance == nil {
		return
	}
	switch sol := *in.SolBalance; {
	case sol > whaleSOL:
		p.Signals = append(p.Signals, SignalWhale)
	case sol > midCapSOL:
		p.Signals = append(p.Signals, SignalMidCap)
	case sol > retailSOL:
		p.Signals = append(p.Signals, SignalRetail)
	default:
		p.Signals = append(p.Signals, SignalDust)
	}
}
