package player

import (
	"time"

	"github.com/katalvlaran/algostep/algorithms"
)

const (
	MinSpeed     = 1
	MaxSpeed     = 100
	DefaultSpeed = 50

	// MinGraphDelay keeps small graphs from flashing past.
	MinGraphDelay = 50 * time.Millisecond
)

// Delay is the pause after each rendered step: 1000-9·speed ms, halved
// with a MinGraphDelay floor for the graph family.
func Delay(speed int, f algorithms.Family) time.Duration {
	d := time.Duration(1000-9*speed) * time.Millisecond
	if f == algorithms.FamilyGraph {
		d = max(MinGraphDelay, d/2)
	}
	return d
}
