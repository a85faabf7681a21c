package intel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

// burstSamples returns n samples spaced gapMillis apart, newest first.
func burstSamples(n int, gapMillis int64) []TxSample {
	base := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC).UnixMilli()
	out := make([]TxSample, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, TxSample{TimeMillis: base - int64(i)*gapMillis})
	}
	return out
}

func TestClassify_NoTxnsHighPctIsLPPool(t *testing.T) {
	p := Classify("addr1", ClassifyInputs{HoldingPct: 15})

	assert.Equal(t, HolderLPPool, p.Type)
	assert.Equal(t, 0.9, p.Confidence)
	assert.Equal(t, []string{SignalHighPct, SignalNoTxns}, p.Signals)
	assert.Nil(t, p.Timezone)
}

func TestClassify_NoTxnsLowPctIsDead(t *testing.T) {
	p := Classify("addr1", ClassifyInputs{HoldingPct: 5})

	assert.Equal(t, HolderDead, p.Type)
	assert.Equal(t, 0.8, p.Confidence)
	assert.Equal(t, []string{SignalNoTxns}, p.Signals)
	assert.Nil(t, p.Timezone)
}

func TestClassify_NoTxnsAppliesOnLookupFailureToo(t *testing.T) {
	// Nil samples (failed fetch) and empty samples behave identically.
	failed := Classify("addr1", ClassifyInputs{Samples: nil, HoldingPct: 5})
	empty := Classify("addr1", ClassifyInputs{Samples: []TxSample{}, HoldingPct: 5})
	assert.Equal(t, failed.Type, empty.Type)
	assert.Equal(t, failed.Confidence, empty.Confidence)
}

func TestClassify_TightBurstsAreBot(t *testing.T) {
	p := Classify("addr1", ClassifyInputs{
		Samples:    burstSamples(15, 1000), // 14 one-second gaps
		HoldingPct: 2,
	})

	assert.Equal(t, HolderBot, p.Type)
	assert.Equal(t, 0.9, p.Confidence)
	assert.Contains(t, p.Signals, SignalBurstTrading)
	require.NotNil(t, p.Timezone)
}

func TestClassify_SingleShortGapNeedsSampleDepth(t *testing.T) {
	// One sub-2s gap among long gaps: bot only when more than 10 samples.
	shallow := append(burstSamples(2, 1000), burstSamples(8, 3_600_000)...)
	p := Classify("addr1", ClassifyInputs{Samples: shallow, HoldingPct: 2})
	assert.Equal(t, HolderHuman, p.Type)

	deep := append(burstSamples(2, 1000), burstSamples(10, 3_600_000)...)
	p = Classify("addr1", ClassifyInputs{Samples: deep, HoldingPct: 2})
	assert.Equal(t, HolderBot, p.Type)
}

func TestClassify_SlowTraderIsHuman(t *testing.T) {
	p := Classify("addr1", ClassifyInputs{
		Samples:    burstSamples(8, 6*3_600_000), // 6h apart
		TokenCount: intPtr(5),
		SolBalance: floatPtr(3),
		HoldingPct: 1.5,
	})

	assert.Equal(t, HolderHuman, p.Type)
	assert.Equal(t, 0.6, p.Confidence)
	assert.NotContains(t, p.Signals, SignalBurstTrading)
}

func TestClassify_TokenDiversityTiers(t *testing.T) {
	cases := []struct {
		count  *int
		signal string
	}{
		{intPtr(25), SignalMegaDegen},
		{intPtr(21), SignalMegaDegen},
		{intPtr(20), SignalDegen},
		{intPtr(11), SignalDegen},
		{intPtr(3), SignalFocused},
		{intPtr(0), SignalFocused},
	}
	for _, tc := range cases {
		p := Classify("addr1", ClassifyInputs{
			Samples:    burstSamples(3, 3_600_000),
			TokenCount: tc.count,
			HoldingPct: 1,
		})
		assert.Contains(t, p.Signals, tc.signal, "count %d", *tc.count)
	}

	// 4-10 is the neutral band.
	p := Classify("addr1", ClassifyInputs{
		Samples:    burstSamples(3, 3_600_000),
		TokenCount: intPtr(7),
		HoldingPct: 1,
	})
	for _, s := range []string{SignalMegaDegen, SignalDegen, SignalFocused} {
		assert.NotContains(t, p.Signals, s)
	}

	// Unknown count skips the rule entirely.
	p = Classify("addr1", ClassifyInputs{
		Samples:    burstSamples(3, 3_600_000),
		HoldingPct: 1,
	})
	for _, s := range []string{SignalMegaDegen, SignalDegen, SignalFocused} {
		assert.NotContains(t, p.Signals, s)
	}
}

func TestClassify_WealthTiers(t *testing.T) {
	cases := []struct {
		sol    *float64
		signal string
	}{
		{floatPtr(150), SignalWhale},
		{floatPtr(100), SignalMidCap},
		{floatPtr(10.5), SignalMidCap},
		{floatPtr(10), SignalRetail},
		{floatPtr(1.2), SignalRetail},
		{floatPtr(1), SignalDust},
		{floatPtr(0), SignalDust},
	}
	for _, tc := range cases {
		p := Classify("addr1", ClassifyInputs{
			Samples:    burstSamples(3, 3_600_000),
			SolBalance: tc.sol,
			HoldingPct: 1,
		})
		assert.Contains(t, p.Signals, tc.signal, "sol %.2f", *tc.sol)
	}

	// Unknown balance skips the rule.
	p := Classify("addr1", ClassifyInputs{
		Samples:    burstSamples(3, 3_600_000),
		HoldingPct: 1,
	})
	for _, s := range []string{SignalWhale, SignalMidCap, SignalRetail, SignalDust} {
		assert.NotContains(t, p.Signals, s)
	}
}

func TestClassify_SignalOrderIsStable(t *testing.T) {
	p := Classify("addr1", ClassifyInputs{
		Samples:    burstSamples(15, 1000),
		TokenCount: intPtr(30),
		SolBalance: floatPtr(500),
		HoldingPct: 2,
	})
	assert.Equal(t, []string{SignalBurstTrading, SignalMegaDegen, SignalWhale}, p.Signals)
}

func TestClassify_ConfidenceAlwaysInRange(t *testing.T) {
	inputs := []ClassifyInputs{
		{HoldingPct: 15},
		{HoldingPct: 5},
		{Samples: burstSamples(15, 1000), HoldingPct: 1},
		{Samples: burstSamples(3, 3_600_000), TokenCount: intPtr(7), SolBalance: floatPtr(2), HoldingPct: 0.5},
	}
	for _, in := range inputs {
		p := Classify("addr1", in)
		assert.GreaterOrEqual(t, p.Confidence, 0.0)
		assert.LessOrEqual(t, p.Confidence, 1.0)
		assert.NotEmpty(t, string(p.Type))
	}
}

func TestClassify_CarriesEnrichmentFields(t *testing.T) {
	p := Classify("addr9", ClassifyInputs{
		Samples:    burstSamples(4, 3_600_000),
		TokenCount: intPtr(6),
		SolBalance: floatPtr(12.5),
		HoldingPct: 3.3,
	})
	assert.Equal(t, "addr9", p.Address)
	assert.Equal(t, 3.3, p.HoldingPct)
	require.NotNil(t, p.SolBalance)
	assert.Equal(t, 12.5, *p.SolBalance)
	require.NotNil(t, p.TokenCount)
	assert.Equal(t, 6, *p.TokenCount)
	require.NotNil(t, p.Timezone)
}
