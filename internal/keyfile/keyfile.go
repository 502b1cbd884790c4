// Package keyfile reads and writes create keys in the Solana CLI keypair
// format: a JSON array of the 64 secret key bytes.
package keyfile

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

const (
	// Extension of keypair files.
	Extension = ".json"
	// MnemonicExtension of the companion seed phrase file.
	MnemonicExtension = ".mnemonic"
)

var (
	ErrInvalidKeyLength = errors.New("secret key must be 64 bytes")
	ErrKeyMismatch      = errors.New("public key does not match secret seed")
)

// Filename returns the keypair file name for a matched vault address.
func Filename(prefix, address string) string {
	return prefix + address + Extension
}

// MnemonicFilename returns the seed phrase file name for a matched vault address.
func MnemonicFilename(prefix, address string) string {
	return prefix + address + MnemonicExtension
}

// Write stores key at path in Solana CLI format with owner-only permissions.
func Write(path string, key solana.PrivateKey) error {
	if err := check(key); err != nil {
		return err
	}

	ints := make([]int, len(key))
	for i, b := range key {
		ints[i] = int(b)
	}
	data, err := json.Marshal(ints)
	if err != nil {
		return fmt.Errorf("encoding keypair: %w", err)
	}

	if err := writeFile(path, data); err != nil {
		return fmt.Errorf("writing keypair %s: %w", path, err)
	}
	return nil
}

// WriteMnemonic stores a seed phrase next to its keypair file.
func WriteMnemonic(path, mnemonic string) error {
	if err := writeFile(path, []byte(mnemonic+"\n")); err != nil {
		return fmt.Errorf("writing mnemonic %s: %w", path, err)
	}
	return nil
}

// Read loads a create key from path. Both the Solana CLI JSON array and a
// base58-encoded 64-byte secret key (wallet export format) are accepted.
func Read(path string) (solana.PrivateKey, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	key, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return key, nil
}

// Parse decodes a create key from file content.
func Parse(content []byte) (solana.PrivateKey, error) {
	content = bytes.TrimSpace(content)

	var key []byte
	if bytes.HasPrefix(content, []byte("[")) {
		var ints []int
		if err := json.Unmarshal(content, &ints); err != nil {
			return nil, fmt.Errorf("decoding keypair JSON: %w", err)
		}
		key = make([]byte, len(ints))
		for i, v := range ints {
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("byte %d out of range: %d", i, v)
			}
			key[i] = byte(v)
		}
	} else {
		decoded, err := base58.Decode(strings.TrimSpace(string(content)))
		if err != nil {
			return nil, fmt.Errorf("decoding base58 secret key: %w", err)
		}
		key = decoded
	}

	if err := check(key); err != nil {
		return nil, err
	}
	return solana.PrivateKey(key), nil
}

// check verifies key is a well-formed Ed25519 secret key (seed || public key).
func check(key []byte) error {
	if len(key) != ed25519.PrivateKeySize {
		return fmt.Errorf("%w: got %d", ErrInvalidKeyLength, len(key))
	}
	derived := ed25519.NewKeyFromSeed(key[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], key[ed25519.SeedSize:]) {
		return ErrKeyMismatch
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0600)
}
