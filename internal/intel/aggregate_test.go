package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestSummarize_Counts(t *testing.T) {
	profiles := []HolderProfile{
		{Type: HolderBot, Timezone: strPtr(RegionUS)},
		{Type: HolderHuman, Timezone: strPtr(RegionEurope)},
		{Type: HolderHuman, Timezone: strPtr(RegionUS)},
		{Type: HolderDead},
		{Type: HolderLPPool},
	}

	s := Summarize(profiles, 12)

	assert.Equal(t, 12, s.TotalHolders)
	assert.Equal(t, 1, s.Bots)
	assert.Equal(t, 2, s.Humans)
	// Dead rolls up DEAD and LP_POOL.
	assert.Equal(t, 2, s.Dead)
	assert.Equal(t, map[string]int{RegionUS: 2, RegionEurope: 1}, s.Timezones)
}

func TestSummarize_EveryProfileHasExactlyOneBucket(t *testing.T) {
	profiles := []HolderProfile{
		{Type: HolderBot},
		{Type: HolderHuman},
		{Type: HolderHuman},
		{Type: HolderDead},
		{Type: HolderLPPool},
		{Type: HolderBot},
	}

	s := Summarize(profiles, len(profiles))
	assert.Equal(t, len(profiles), s.Bots+s.Humans+s.Dead)
}

func TestSummarize_AvgSolExcludesNullBalances(t *testing.T) {
	profiles := []HolderProfile{
		{Type: HolderHuman, SolBalance: floatPtr(10.555)},
		{Type: HolderHuman, SolBalance: floatPtr(20)},
		{Type: HolderDead}, // failed balance lookup, not zero
	}

	s := Summarize(profiles, 3)
	assert.Equal(t, 15.28, s.AvgSol)
}

func TestSummarize_AvgSolZeroWhenNoBalances(t *testing.T) {
	profiles := []HolderProfile{
		{Type: HolderDead},
		{Type: HolderLPPool},
	}

	s := Summarize(profiles, 2)
	assert.Zero(t, s.AvgSol)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, 0)
	assert.Zero(t, s.Bots+s.Humans+s.Dead)
	assert.Zero(t, s.AvgSol)
	assert.Empty(t, s.Timezones)
	assert.NotNil(t, s.Timezones)
}

func TestSummarize_TimezoneTotalBounded(t *testing.T) {
	profiles := []HolderProfile{
		{Type: HolderHuman, Timezone: strPtr(RegionAsia)},
		{Type: HolderBot},
		{Type: HolderDead},
	}

	s := Summarize(profiles, 3)
	total := 0
	for _, n := range s.Timezones {
		total += n
	}
	assert.LessOrEqual(t, total, len(profiles))
	assert.Equal(t, 1, total)
}
