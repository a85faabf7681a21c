package intel

import "math"

// Summarize rolls per-holder profiles into summary counts. totalHolders is
// the count of all holders that passed the percentage filter, which can
// exceed the enriched subset. Holders with a nil balance are excluded from
// the average entirely rather than counted as zero.
func Summarize(profiles []HolderProfile, totalHolders int) Summary {
	s := Summary{
		TotalHolders: totalHolders,
		Timezones:    map[string]int{},
	}

	var solSum float64
	var solCount int

	for _, p := range profiles {
		switch p.Type {
		case HolderBot:
			s.Bots++
		case HolderHuman:
			s.Humans++
		case HolderDead, HolderLPPool:
			s.Dead++
		}

		if p.SolBalance != nil {
			solSum += *p.SolBalance
			solCount++
		}

		if p.Timezone != nil {
			s.Timezones[*p.Timezone]++
		}
	}

	if solCount > 0 {
		s.AvgSol = math.Round(solSum/float64(solCount)*100) / 100
	}

	return s
}
