package purge

import "time"

// CommandOptions captures the resolved inputs for a purge invocation.
type CommandOptions struct {
	Username        string
	Repositories    []string
	ListFilePath    string
	BatchConfigPath string
	AutoConfirm     bool
	Verbose         bool
	DryRun          bool
	Interactive     bool
	DeleteDelay     time.Duration
}

// BatchOutcome tallies the results of a deletion batch.
type BatchOutcome struct {
	SuccessfulDeletions int
	FailedDeletions     int
}

// TotalProcessed reports the combined number of successful and failed operations.
func (outcome BatchOutcome) TotalProcessed() int {
	return outcome.SuccessfulDeletions + outcome.FailedDeletions
}

// Clock abstracts time retrieval for deterministic journal entries in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the current wall-clock time.
type SystemClock struct{}

// Now implements Clock using time.Now.
func (SystemClock) Now() time.Time {
	return time.Now()
}
