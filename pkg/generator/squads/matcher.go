package squads

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Base58 alphabet (Bitcoin/Solana style - excludes 0, O, I, l)
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// MaxAddressLen is the longest base58 encoding of a 32-byte address.
const MaxAddressLen = 44

// ErrInvalidPatternEncoding is returned when a pattern contains characters
// outside the base58 alphabet.
var ErrInvalidPatternEncoding = errors.New("pattern is not in base58 encoding")

// Matcher checks vault addresses against a prefix.
// Matching is case-insensitive: the pattern is lowered once here and each
// candidate prefix is lowered per check.
type Matcher struct {
	prefix string
}

// NewMatcher creates a new vault address matcher.
func NewMatcher(prefix string) *Matcher {
	return &Matcher{
		prefix: strings.ToLower(prefix),
	}
}

// Prefix returns the normalized (lower-case) pattern.
func (m *Matcher) Prefix() string {
	return m.prefix
}

// Matches reports whether address starts with the pattern, ignoring case.
// An address shorter than the pattern never matches.
func (m *Matcher) Matches(address string) bool {
	n := len(m.prefix)
	if len(address) < n {
		return false
	}
	return strings.ToLower(address[:n]) == m.prefix
}

// IsValidBase58 checks if a string contains only valid Base58 characters.
func IsValidBase58(s string) bool {
	for _, c := range s {
		if !strings.ContainsRune(base58Alphabet, c) {
			return false
		}
	}
	return true
}

// InvalidBase58Chars returns any invalid Base58 characters in the input.
func InvalidBase58Chars(s string) []rune {
	var invalid []rune
	for _, c := range s {
		if !strings.ContainsRune(base58Alphabet, c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}

// ValidatePattern returns an error wrapping ErrInvalidPatternEncoding if the
// pattern has characters outside the base58 alphabet.
func ValidatePattern(pattern string) error {
	if invalid := InvalidBase58Chars(pattern); len(invalid) > 0 {
		return fmt.Errorf("%w: invalid character(s) %q", ErrInvalidPatternEncoding, string(invalid))
	}
	return nil
}

// EstimateAttempts returns the expected number of candidates needed to find
// a case-insensitive match for pattern, treating base58 digits as uniform.
func EstimateAttempts(pattern string) float64 {
	attempts := 1.0
	for _, c := range pattern {
		k := 0
		for _, v := range caseVariants(c) {
			if strings.ContainsRune(base58Alphabet, v) {
				k++
			}
		}
		if k == 0 {
			continue
		}
		attempts *= float64(len(base58Alphabet)) / float64(k)
	}
	return attempts
}

// caseVariants returns c and, for letters, its other-case counterpart.
func caseVariants(c rune) []rune {
	lower, upper := unicode.ToLower(c), unicode.ToUpper(c)
	if lower == upper {
		return []rune{c}
	}
	return []rune{lower, upper}
}
