package intel

import "errors"

// Fatal invocation errors. Per-holder lookup failures are never fatal; these
// cover the cases where no meaningful report can be built at all.
var (
	ErrInvalidMint = errors.New("invalid mint address")
	ErrNoHolders   = errors.New("no qualifying holders")
	ErrNoPairs     = errors.New("no pairs found")
)
