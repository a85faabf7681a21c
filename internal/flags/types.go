package flags

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("flag not found")

// Well-known kill switches consulted by the API handlers. A missing flag
// means the feature is enabled.
const (
	KeyAnalysisEnabled = "analysis.enabled"
	KeySnapshotEnabled = "snapshot.enabled"
)

type Flag struct {
	Key       string    `json:"key"`
	Value     bool      `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
