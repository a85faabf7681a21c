package intel

import "time"

// Region tags inferred from peak activity hour.
const (
	RegionUS        = "US"
	RegionEurope    = "Europe"
	RegionAsia      = "Asia"
	RegionAmbiguous = "Ambiguous"
)

// InferTimezone maps a holder's transaction timestamps to UTC hours, finds
// the busiest hour, and classifies it into a coarse operating region.
// Returns nil when there are no samples. Ties on the peak hour resolve to
// the lower hour.
func InferTimezone(samples []TxSample) *string {
	if len(samples) == 0 {
		return nil
	}

	var counts [24]int
	for _, s := range samples {
		h := time.UnixMilli(s.TimeMillis).UTC().Hour()
		counts[h]++
	}

	peak := 0
	for h := 1; h < 24; h++ {
		if counts[h] > counts[peak] {
			peak = h
		}
	}

	region := regionForHour(peak)
	return &region
}

// regionForHour buckets a UTC hour into a region. The bands overlap at
// hours 8-9 and 13-17; the check order US, Europe, Asia is load-bearing and
// must not be reordered, e.g. hour 13 always resolves to US.
func regionForHour(hour int) string {
	switch {
	case hour >= 13 && hour <= 22:
		return RegionUS
	case hour >= 8 && hour <= 17:
		return RegionEurope
	case hour >= 0 && hour <= 9:
		return RegionAsia
	default:
		return RegionAmbiguous
	}
}
