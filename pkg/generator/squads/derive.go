// Package squads derives Squads v4 multisig and vault addresses from a create
// key and matches them against a vanity pattern.
package squads

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// DefaultProgramID is the Squads v4 multisig program on mainnet.
const DefaultProgramID = "SQDS4ep65T869zMMBKyuUq6aD6EgTu8psMjkvj52pCf"

// Seed strings used by the Squads program for PDA derivation.
var (
	SeedPrefix   = []byte("multisig")
	SeedMultisig = []byte("multisig")
	SeedVault    = []byte("vault")
)

// FindProgramAddressFunc finds a program-derived address and its bump seed.
type FindProgramAddressFunc func(seeds [][]byte, programID solana.PublicKey) (solana.PublicKey, uint8, error)

// Pipeline turns a create key into its multisig and vault addresses.
// It holds no mutable state and is safe for concurrent use.
type Pipeline struct {
	programID solana.PublicKey
	authority [1]byte // vault index, little-endian u8
	find      FindProgramAddressFunc
}

// NewPipeline creates a derivation pipeline for the given program and vault
// authority index.
func NewPipeline(programID solana.PublicKey, authorityIndex uint8) *Pipeline {
	return NewPipelineWith(programID, authorityIndex, solana.FindProgramAddress)
}

// NewPipelineWith is NewPipeline with a custom derivation function.
func NewPipelineWith(programID solana.PublicKey, authorityIndex uint8, find FindProgramAddressFunc) *Pipeline {
	return &Pipeline{
		programID: programID,
		authority: [1]byte{authorityIndex},
		find:      find,
	}
}

// ProgramID returns the program addresses are derived under.
func (p *Pipeline) ProgramID() solana.PublicKey {
	return p.programID
}

// AuthorityIndex returns the vault index used in the second derivation.
func (p *Pipeline) AuthorityIndex() uint8 {
	return p.authority[0]
}

// MultisigAddress derives the multisig account for a create key.
// Seeds: "multisig", "multisig", createKey.
func (p *Pipeline) MultisigAddress(createKey solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := p.find([][]byte{SeedPrefix, SeedMultisig, createKey.Bytes()}, p.programID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("deriving multisig address: %w", err)
	}
	return addr, nil
}

// VaultAddress derives the vault for a multisig account.
// Seeds: "multisig", multisig, "vault", authorityIndex.
func (p *Pipeline) VaultAddress(multisig solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := p.find([][]byte{SeedPrefix, multisig.Bytes(), SeedVault, p.authority[:]}, p.programID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("deriving vault address: %w", err)
	}
	return addr, nil
}

// Derive runs both stages for a create key.
func (p *Pipeline) Derive(createKey solana.PublicKey) (multisig, vault solana.PublicKey, err error) {
	multisig, err = p.MultisigAddress(createKey)
	if err != nil {
		return solana.PublicKey{}, solana.PublicKey{}, err
	}
	vault, err = p.VaultAddress(multisig)
	if err != nil {
		return solana.PublicKey{}, solana.PublicKey{}, err
	}
	return multisig, vault, nil
}
