package ui

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hxs123/squads-grinder/pkg/generator"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	SetColor(false)
	t.Cleanup(func() { color.NoColor = prev })
}

func testResult(t *testing.T, mnemonic string) *generator.Result {
	t.Helper()
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return &generator.Result{
		CreateKey: key,
		Mnemonic:  mnemonic,
		Multisig:  solana.MustPublicKeyFromBase58("11111111111111111111111111111111"),
		Vault:     solana.MustPublicKeyFromBase58("SQDS4ep65T869zMMBKyuUq6aD6EgTu8psMjkvj52pCf"),
	}
}

func TestConsole_SearchLines(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Banner("1.2.3")
	c.Searching(10, "Sqd", 29*29*58)
	c.Progress(20000, 2*time.Second)

	out := buf.String()
	assert.Contains(t, out, "SQUADS GRINDER")
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "Searching with 10 threads for PDA that starts with 'Sqd' (~1 in 48,778)")
	assert.Contains(t, out, "Searched 20,000 keypairs in 2.0s (10.0K/s)")
}

func TestConsole_Found(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	c := NewConsole(&buf)
	result := testResult(t, "")

	c.Found(1234, 1500*time.Millisecond, result)
	c.Saved("Squads-x.json")

	out := buf.String()
	assert.Contains(t, out, "Found after 1,234 searches in 1.5s")
	assert.Contains(t, out, "Found match: Create Key "+result.PublicKey().String()+
		" results in SQDS4ep65T869zMMBKyuUq6aD6EgTu8psMjkvj52pCf on Squads Multisig")
	assert.Contains(t, out, "Written to file: Squads-x.json")
	assert.NotContains(t, out, "Mnemonic:")
}

func TestConsole_FoundMnemonic(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	NewConsole(&buf).Found(1, time.Millisecond, testResult(t, "word "+"list"))

	assert.Contains(t, buf.String(), "Mnemonic: word list")
	assert.Contains(t, buf.String(), "KEEP YOUR SEED PHRASE SECRET")
}

func TestConsole_Cancelled(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	NewConsole(&buf).Cancelled(generator.Stats{Attempts: 5000, ElapsedSecs: 90})
	assert.Contains(t, buf.String(), "Cancelled after 5,000 searches in 1m 30s")
}

func TestError(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	cause := errors.New("invalid character '0'")

	err := Error(&buf, "Input string is not in Base58 encoding", cause, []string{"Drop 0, O, I and l", "Use a shorter pattern"})
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, buf.String(), "✗ Input string is not in Base58 encoding")
	assert.Contains(t, buf.String(), "Either:")
	assert.Contains(t, buf.String(), "  2. Use a shorter pattern")

	buf.Reset()
	err = Error(&buf, "Bad", nil, nil)
	assert.EqualError(t, err, "Bad")
	assert.NotContains(t, buf.String(), "Either:")
}

func TestUnsaved(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	result := testResult(t, "seed words")

	Unsaved(&buf, result)
	assert.Contains(t, buf.String(), base58.Encode(result.CreateKey))
	assert.Contains(t, buf.String(), "seed words")
	assert.Contains(t, buf.String(), "NOT saved")
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
	assert.Equal(t, "58", FormatEstimate(58))
	assert.Equal(t, "1.00e+20", FormatEstimate(1e20))

	assert.Equal(t, "500/s", FormatHashRate(500))
	assert.Equal(t, "1.5K/s", FormatHashRate(1500))
	assert.Equal(t, "2.5M/s", FormatHashRate(2500000))

	assert.Equal(t, "250ms", FormatDuration(250*time.Millisecond))
	assert.Equal(t, "2m 5s", FormatDuration(125*time.Second))
	assert.Equal(t, "1h 1m", FormatDuration(61*time.Minute))
}
