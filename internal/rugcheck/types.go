package rugcheck

// TopHolder is one entry from the token report's holder list.
type TopHolder struct {
	Owner string  `json:"owner"`
	Pct   float64 `json:"pct"`
}

// TokenReport is the subset of the rugcheck report the pipeline consumes.
// Score is 0 when rugcheck has no risk assessment for the token.
type TokenReport struct {
	Score      float64     `json:"score"`
	TopHolders []TopHolder `json:"topHolders"`
}
