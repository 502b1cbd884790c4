package squads

import (
	"crypto/ed25519"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/tyler-smith/go-bip39"
)

// Candidate is a freshly generated create key.
type Candidate struct {
	PrivateKey solana.PrivateKey
	Mnemonic   string // set only for mnemonic-backed candidates
}

// PublicKey returns the public half of the candidate.
func (c Candidate) PublicKey() solana.PublicKey {
	return c.PrivateKey.PublicKey()
}

// CandidateSource produces one new candidate per call.
type CandidateSource func() (Candidate, error)

// RandomCandidate generates a new Ed25519 key pair from crypto/rand.
func RandomCandidate() (Candidate, error) {
	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		return Candidate{}, err
	}
	return Candidate{PrivateKey: key}, nil
}

// ValidWordCount reports whether n is a BIP39 mnemonic length.
func ValidWordCount(n int) bool {
	switch n {
	case 12, 15, 18, 21, 24:
		return true
	}
	return false
}

// MnemonicCandidates returns a source that generates a BIP39 mnemonic per
// candidate and derives the key the way solana-keygen does for a seed phrase
// without a derivation path: Ed25519 from the first 32 bytes of the seed.
func MnemonicCandidates(wordCount int, passphrase string) (CandidateSource, error) {
	if !ValidWordCount(wordCount) {
		return nil, fmt.Errorf("invalid mnemonic word count %d", wordCount)
	}
	bits := wordCount * 32 / 3

	return func() (Candidate, error) {
		entropy, err := bip39.NewEntropy(bits)
		if err != nil {
			return Candidate{}, fmt.Errorf("generating entropy: %w", err)
		}
		mnemonic, err := bip39.NewMnemonic(entropy)
		if err != nil {
			return Candidate{}, fmt.Errorf("creating mnemonic: %w", err)
		}
		return CandidateFromMnemonic(mnemonic, passphrase), nil
	}, nil
}

// CandidateFromMnemonic derives the create key for an existing phrase.
func CandidateFromMnemonic(mnemonic, passphrase string) Candidate {
	seed := bip39.NewSeed(mnemonic, passphrase)
	key := ed25519.NewKeyFromSeed(seed[:ed25519.SeedSize])
	return Candidate{
		PrivateKey: solana.PrivateKey(key),
		Mnemonic:   mnemonic,
	}
}
