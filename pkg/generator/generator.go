// Package generator defines the contract between vanity search backends and
// the coordinator that consumes their output.
// Backends emit a stream of Signals: one Heartbeat per candidate checked and a
// Found carrying the key that produced a matching Squads vault address.
package generator

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// SignalKind discriminates the messages a worker sends to the coordinator.
type SignalKind int

const (
	Heartbeat SignalKind = iota // One candidate derived and checked
	Found                       // A candidate matched; Result is set
)

// String returns the signal kind name.
func (k SignalKind) String() string {
	switch k {
	case Heartbeat:
		return "Heartbeat"
	case Found:
		return "Found"
	default:
		return "Unknown"
	}
}

// Signal is a single progress message from a worker.
// Ownership of Result passes to the receiver on send.
type Signal struct {
	Kind   SignalKind
	Result *Result // nil unless Kind == Found
}

// Config holds the configuration for a vanity search.
type Config struct {
	Pattern        string           // Desired vault address prefix (case-insensitive)
	Workers        int              // Number of concurrent workers
	ProgramID      solana.PublicKey // Squads program the addresses are derived under
	AuthorityIndex uint8            // Vault index used in the second derivation
	UseMnemonic    bool             // Generate create keys from BIP39 mnemonics
	WordCount      int              // Mnemonic length when UseMnemonic is set
}

// Result contains a create key whose derived vault matches the pattern.
type Result struct {
	CreateKey solana.PrivateKey // Winning key pair (64 bytes: seed || public key)
	Mnemonic  string            // BIP39 phrase the key came from, empty for random keys
	Multisig  solana.PublicKey  // First-stage address: the multisig account
	Vault     solana.PublicKey  // Second-stage address: the vault that matched
}

// PublicKey returns the public half of the create key.
func (r *Result) PublicKey() solana.PublicKey {
	return r.CreateKey.PublicKey()
}

// Address returns the matched vault address in base58.
func (r *Result) Address() string {
	return r.Vault.String()
}

// Stats holds search performance statistics.
type Stats struct {
	Attempts    uint64  // Total number of candidates checked
	HashRate    float64 // Candidates per second
	ElapsedSecs float64 // Time elapsed since start
}

// Generator defines the contract for address search backends.
type Generator interface {
	// Start spawns the workers and returns the channel they report on.
	// The channel is closed once every worker has exited, which happens
	// after the first match or when ctx is cancelled.
	Start(ctx context.Context, config *Config) (<-chan Signal, error)

	// Name returns the implementation name (e.g., "CPU").
	Name() string
}
