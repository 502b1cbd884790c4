// Package coordinator consumes worker signals, keeps the search statistics,
// and hands the first match to persistence.
//
// The receive loop is the only reader of the signal channel and the only
// owner of the attempt counter, so no locking is involved. Workers never see
// the statistics.
package coordinator

import (
	"errors"
	"fmt"
	"time"

	"github.com/Hxs123/squads-grinder/pkg/generator"
)

// DefaultReportEvery is the number of heartbeats between progress reports.
const DefaultReportEvery = 10000

var (
	// ErrPersistenceFailure wraps any error writing the winning key pair.
	ErrPersistenceFailure = errors.New("failed to save keypair")
	// ErrSearchStopped is returned when every worker exited without a match.
	ErrSearchStopped = errors.New("search stopped before a match was found")
)

// Reporter receives human-facing progress events.
type Reporter interface {
	Progress(attempts uint64, elapsed time.Duration)
	Found(attempts uint64, elapsed time.Duration, result *generator.Result)
	Saved(path string)
}

// Persister durably stores a matched result and returns where it went.
type Persister interface {
	Persist(result *generator.Result) (string, error)
}

// Outcome is what a finished search produced.
type Outcome struct {
	Result *generator.Result // nil if the search stopped without a match
	Path   string            // keypair file, set once persisted
	Stats  generator.Stats
}

// Coordinator runs the receive loop for one search.
type Coordinator struct {
	reporter    Reporter
	persister   Persister
	reportEvery uint64
	now         func() time.Time
}

// New creates a coordinator. A reportEvery of 0 uses DefaultReportEvery.
func New(reporter Reporter, persister Persister, reportEvery uint64) *Coordinator {
	if reportEvery == 0 {
		reportEvery = DefaultReportEvery
	}
	return &Coordinator{
		reporter:    reporter,
		persister:   persister,
		reportEvery: reportEvery,
		now:         time.Now,
	}
}

// searchStats is owned by a single Run call.
type searchStats struct {
	attempts uint64
	start    time.Time
}

func (s *searchStats) snapshot(now time.Time) generator.Stats {
	elapsed := now.Sub(s.start).Seconds()

	var hashRate float64
	if elapsed > 0 {
		hashRate = float64(s.attempts) / elapsed
	}

	return generator.Stats{
		Attempts:    s.attempts,
		HashRate:    hashRate,
		ElapsedSecs: elapsed,
	}
}

// Run receives signals until the first Found or until the channel closes.
// Any Found after the first is never read; workers blocked on it are
// released by cancelling their context.
func (c *Coordinator) Run(signals <-chan generator.Signal) (*Outcome, error) {
	stats := &searchStats{start: c.now()}

	for sig := range signals {
		switch sig.Kind {
		case generator.Heartbeat:
			stats.attempts++
			if stats.attempts%c.reportEvery == 0 {
				c.reporter.Progress(stats.attempts, c.now().Sub(stats.start))
			}

		case generator.Found:
			if sig.Result == nil {
				continue
			}
			return c.finish(stats, sig.Result)
		}
	}

	return &Outcome{Stats: stats.snapshot(c.now())}, ErrSearchStopped
}

func (c *Coordinator) finish(stats *searchStats, result *generator.Result) (*Outcome, error) {
	now := c.now()
	outcome := &Outcome{
		Result: result,
		Stats:  stats.snapshot(now),
	}

	c.reporter.Found(stats.attempts, now.Sub(stats.start), result)

	path, err := c.persister.Persist(result)
	if err != nil {
		return outcome, fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
	}
	outcome.Path = path
	c.reporter.Saved(path)

	return outcome, nil
}
