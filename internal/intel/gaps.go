package intel

import "math"

// burstGapSeconds is the gap below which two consecutive transactions count
// as a burst pair.
const burstGapSeconds = 5.0

// ActivityStats summarizes the inter-transaction timing of one holder.
type ActivityStats struct {
	Samples       int
	MinGapSeconds float64 // +Inf when fewer than 2 samples
	BurstCount    int     // consecutive pairs with a gap strictly under 5s
}

// AnalyzeGaps computes timing stats over a newest-first sample sequence.
// Bots transact in tight bursts: a single very short gap or many short gaps
// both read as automation.
func AnalyzeGaps(samples []TxSample) ActivityStats {
	stats := ActivityStats{
		Samples:       len(samples),
		MinGapSeconds: math.Inf(1),
	}

	for i := 0; i+1 < len(samples); i++ {
		gap := math.Abs(float64(samples[i].TimeMillis-samples[i+1].TimeMillis)) / 1000.0
		if gap < stats.MinGapSeconds {
			stats.MinGapSeconds = gap
		}
		if gap < burstGapSeconds {
			stats.BurstCount++
		}
	}

	return stats
}
