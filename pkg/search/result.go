package search

import (
	"errors"
	"time"
)

// Sentinel errors for the coordinator's synchronous rejections and fatal
// asynchronous failures.
var (
	// ErrAlreadyRunning is returned by Start while a search is active.
	// At most one search runs per coordinator.
	ErrAlreadyRunning = errors.New("a search is already running")

	// ErrProvider wraps a keypair provider failure. It terminates the
	// current search but a fresh one may be started afterwards.
	ErrProvider = errors.New("keypair provider failure")
)

// Request describes one search. Immutable once accepted by Start.
type Request struct {
	// Pattern is the raw vanity pattern, compiled before workers spawn.
	Pattern string

	// SavePath is the base directory winning keypairs are persisted
	// under. Empty disables persistence.
	SavePath string

	// SubmittedAt is stamped by Start when zero.
	SubmittedAt time.Time
}

// Outcome is the terminal state of a search. Exactly one applies.
type Outcome int

const (
	OutcomeFound     Outcome = iota // matching keypair installed
	OutcomeCancelled                // cancel requested, no keypair
	OutcomeError                    // fatal failure, see Result.Err
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeError:
		return "error"
	default:
		return "found"
	}
}

// Result is the terminal value of a search, produced exactly once.
// Attempts and RelaxedMatches are the converged totals and are
// authoritative over any progress snapshot.
type Result struct {
	Outcome        Outcome
	Address        string // set for OutcomeFound
	PrivateKey     string // set for OutcomeFound
	Attempts       uint64
	RelaxedMatches uint64
	Duration       time.Duration

	// Err is the fatal failure for OutcomeError.
	Err error

	// SavedTo / SaveErr report persistence separately: a save failure
	// never invalidates the in-memory result.
	SavedTo string
	SaveErr error
}

// Snapshot is a point-in-time copy of the running counters, emitted to
// progress listeners. Never mutated after creation.
type Snapshot struct {
	Attempts       uint64
	RelaxedMatches uint64
	Duration       time.Duration
	Rate           float64 // attempts per second
}

// Listener receives progress snapshots while a search runs.
type Listener func(Snapshot)
