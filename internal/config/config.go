package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/gagliardetto/solana-go"
	"gopkg.in/yaml.v3"

	"github.com/Hxs123/squads-grinder/internal/coordinator"
	"github.com/Hxs123/squads-grinder/internal/keyfile"
	"github.com/Hxs123/squads-grinder/pkg/generator"
	"github.com/Hxs123/squads-grinder/pkg/generator/squads"
)

// DefaultWorkers is the thread count used when none is given.
const DefaultWorkers = 10

// Errors
var (
	ErrEmptyPattern          = errors.New("pattern must not be empty")
	ErrPatternTooLong        = errors.New("pattern is longer than any base58 address")
	ErrInvalidThreadCount    = errors.New("thread count must be a non-negative number")
	ErrInvalidProgramID      = errors.New("invalid program ID")
	ErrInvalidReportInterval = errors.New("report interval must be greater than zero")
	ErrInvalidWordCount      = errors.New("mnemonic word count must be 12, 15, 18, 21 or 24")
)

// Config holds the application configuration.
// Fields tagged for YAML may come from a config file; Pattern is always a
// command-line argument.
type Config struct {
	Pattern        string `yaml:"-"`
	Workers        int    `yaml:"workers"`
	ProgramID      string `yaml:"program_id"`
	AuthorityIndex uint8  `yaml:"authority_index"`
	ReportEvery    uint64 `yaml:"report_every"`
	OutputDir      string `yaml:"output_dir"`
	FilePrefix     string `yaml:"file_prefix"`
	UseMnemonic    bool   `yaml:"use_mnemonic"`
	WordCount      int    `yaml:"word_count"`
	NoColor        bool   `yaml:"no_color"`
	HighPriority   bool   `yaml:"high_priority"`
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		Workers:     DefaultWorkers,
		ProgramID:   squads.DefaultProgramID,
		ReportEvery: coordinator.DefaultReportEvery,
		OutputDir:   ".",
		FilePrefix:  keyfile.DefaultPrefix,
		WordCount:   12,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a YAML config file over the current values. Keys missing
// from the file keep their current value.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// ParseWorkers parses the thread count argument.
func ParseWorkers(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidThreadCount, s)
	}
	return n, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Pattern == "" {
		return ErrEmptyPattern
	}
	if err := squads.ValidatePattern(c.Pattern); err != nil {
		return err
	}
	if len(c.Pattern) > squads.MaxAddressLen {
		return fmt.Errorf("%w: %d characters, max %d", ErrPatternTooLong, len(c.Pattern), squads.MaxAddressLen)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidThreadCount, c.Workers)
	}
	if _, err := c.Program(); err != nil {
		return err
	}
	if c.ReportEvery == 0 {
		return ErrInvalidReportInterval
	}
	if c.UseMnemonic && !squads.ValidWordCount(c.WordCount) {
		return fmt.Errorf("%w: got %d", ErrInvalidWordCount, c.WordCount)
	}
	return nil
}

// Program returns the parsed program ID.
func (c *Config) Program() (solana.PublicKey, error) {
	id, err := solana.PublicKeyFromBase58(c.ProgramID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w %q: %w", ErrInvalidProgramID, c.ProgramID, err)
	}
	return id, nil
}

// GeneratorConfig converts a validated Config into the search configuration.
func (c *Config) GeneratorConfig() (*generator.Config, error) {
	programID, err := c.Program()
	if err != nil {
		return nil, err
	}
	return &generator.Config{
		Pattern:        c.Pattern,
		Workers:        c.Workers,
		ProgramID:      programID,
		AuthorityIndex: c.AuthorityIndex,
		UseMnemonic:    c.UseMnemonic,
		WordCount:      c.WordCount,
	}, nil
}
