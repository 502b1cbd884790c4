package keyfile

import (
	"path/filepath"

	"github.com/Hxs123/squads-grinder/pkg/generator"
)

// DefaultPrefix is prepended to the vault address in output file names.
const DefaultPrefix = "Squads-"

// Store persists matched results as keypair files in a directory.
type Store struct {
	Dir    string // Output directory, "" for the working directory
	Prefix string // File name prefix
}

// NewStore creates a store writing to dir with the given file prefix.
func NewStore(dir, prefix string) *Store {
	return &Store{Dir: dir, Prefix: prefix}
}

// Persist writes the create key, and its mnemonic if there is one, and
// returns the keypair file path.
func (s *Store) Persist(result *generator.Result) (string, error) {
	address := result.Address()
	path := filepath.Join(s.Dir, Filename(s.Prefix, address))

	if err := Write(path, result.CreateKey); err != nil {
		return "", err
	}

	if result.Mnemonic != "" {
		if err := WriteMnemonic(filepath.Join(s.Dir, MnemonicFilename(s.Prefix, address)), result.Mnemonic); err != nil {
			return "", err
		}
	}

	return path, nil
}
