package cpu

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/Hxs123/squads-grinder/pkg/generator"
	"github.com/Hxs123/squads-grinder/pkg/generator/squads"
)

// signalBuffer is the per-worker capacity of the signal channel.
const signalBuffer = 256

// CPUGenerator implements the Generator interface using CPU-based goroutines.
// Each worker is independent; they only share the read-only matcher and
// derivation pipeline and the send side of the signal channel.
type CPUGenerator struct {
	workers int // Number of concurrent workers

	// newSource builds the candidate source for one worker. Overridable in tests.
	newSource func(config *generator.Config) (squads.CandidateSource, error)
}

// NewCPUGenerator creates a new CPU-based generator.
// If workers is 0, it defaults to the number of CPU cores.
func NewCPUGenerator(workers int) *CPUGenerator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &CPUGenerator{
		workers:   workers,
		newSource: candidateSource,
	}
}

// Name returns the implementation name.
func (g *CPUGenerator) Name() string {
	return "CPU"
}

// Workers returns the default worker count.
func (g *CPUGenerator) Workers() int {
	return g.workers
}

// Start spawns the workers. The returned channel is closed once all of them
// have exited.
func (g *CPUGenerator) Start(ctx context.Context, config *generator.Config) (<-chan generator.Signal, error) {
	if config == nil {
		return nil, errors.New("nil config")
	}
	if err := squads.ValidatePattern(config.Pattern); err != nil {
		return nil, err
	}

	workers := g.workers
	if config.Workers > 0 {
		workers = config.Workers
	}

	// Build every source up front so a bad config fails before any worker runs.
	sources := make([]squads.CandidateSource, workers)
	for i := range sources {
		src, err := g.newSource(config)
		if err != nil {
			return nil, err
		}
		sources[i] = src
	}

	matcher := squads.NewMatcher(config.Pattern)
	pipeline := squads.NewPipeline(config.ProgramID, config.AuthorityIndex)
	signals := make(chan generator.Signal, workers*signalBuffer)

	var wg sync.WaitGroup
	for _, src := range sources {
		wg.Add(1)
		go func(src squads.CandidateSource) {
			defer wg.Done()
			worker(ctx, src, pipeline, matcher, signals)
		}(src)
	}

	go func() {
		wg.Wait()
		close(signals)
	}()

	return signals, nil
}

// worker generates create keys until one matches or ctx is cancelled.
func worker(ctx context.Context, next squads.CandidateSource, pipeline *squads.Pipeline, matcher *squads.Matcher, signals chan<- generator.Signal) {
	heartbeat := generator.Signal{Kind: generator.Heartbeat}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		candidate, err := next()
		if err != nil {
			continue
		}

		multisig, vault, err := pipeline.Derive(candidate.PublicKey())
		if err != nil {
			continue
		}

		if !send(ctx, signals, heartbeat) {
			return
		}

		if matcher.Matches(vault.String()) {
			send(ctx, signals, generator.Signal{
				Kind: generator.Found,
				Result: &generator.Result{
					CreateKey: candidate.PrivateKey,
					Mnemonic:  candidate.Mnemonic,
					Multisig:  multisig,
					Vault:     vault,
				},
			})
			return
		}
	}
}

// send delivers s unless ctx is cancelled first.
func send(ctx context.Context, signals chan<- generator.Signal, s generator.Signal) bool {
	select {
	case signals <- s:
		return true
	case <-ctx.Done():
		return false
	}
}

func candidateSource(config *generator.Config) (squads.CandidateSource, error) {
	if config.UseMnemonic {
		return squads.MnemonicCandidates(config.WordCount, "")
	}
	return squads.RandomCandidate, nil
}
