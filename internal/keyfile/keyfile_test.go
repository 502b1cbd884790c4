package keyfile

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKey(t *testing.T) solana.PrivateKey {
	t.Helper()
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return key
}

func TestWriteRead(t *testing.T) {
	key := newKey(t)
	path := filepath.Join(t.TempDir(), "nested", Filename("Squads-", "abc"))

	require.NoError(t, Write(path, key))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, key, got)
}

func TestWrite_SolanaCLICompatible(t *testing.T) {
	key := newKey(t)
	path := filepath.Join(t.TempDir(), "id.json")
	require.NoError(t, Write(path, key))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "["))
	assert.NotContains(t, string(content), " ", "compact array like solana-keygen")

	loaded, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey(), loaded.PublicKey())
}

func TestWrite_RejectsBadKey(t *testing.T) {
	dir := t.TempDir()

	err := Write(filepath.Join(dir, "short.json"), solana.PrivateKey(make([]byte, 32)))
	assert.ErrorIs(t, err, ErrInvalidKeyLength)

	key := newKey(t)
	key[63] ^= 0xff
	err = Write(filepath.Join(dir, "mismatch.json"), key)
	assert.ErrorIs(t, err, ErrKeyMismatch)

	_, statErr := os.Stat(filepath.Join(dir, "mismatch.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestParse(t *testing.T) {
	key := newKey(t)

	t.Run("base58", func(t *testing.T) {
		got, err := Parse([]byte(base58.Encode(key) + "\n"))
		require.NoError(t, err)
		assert.Equal(t, key, got)
	})

	t.Run("json with whitespace", func(t *testing.T) {
		parts := make([]string, len(key))
		for i, b := range key {
			parts[i] = strconv.Itoa(int(b))
		}
		got, err := Parse([]byte("  [" + strings.Join(parts, ", ") + "]\n"))
		require.NoError(t, err)
		assert.Equal(t, key, got)
	})

	t.Run("byte out of range", func(t *testing.T) {
		_, err := Parse([]byte("[256]"))
		assert.Error(t, err)
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := Parse([]byte("[1,2,3]"))
		assert.ErrorIs(t, err, ErrInvalidKeyLength)
	})

	t.Run("not base58", func(t *testing.T) {
		_, err := Parse([]byte("0OIl"))
		assert.Error(t, err)
	})
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
