package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hxs123/squads-grinder/pkg/generator/squads"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, 10, cfg.Workers)
	assert.Equal(t, squads.DefaultProgramID, cfg.ProgramID)
	assert.Equal(t, uint64(10000), cfg.ReportEvery)
	assert.Equal(t, "Squads-", cfg.FilePrefix)
	assert.Equal(t, uint8(0), cfg.AuthorityIndex)
	assert.False(t, cfg.UseMnemonic)
}

func TestParseWorkers(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "10", want: 10},
		{in: "1", want: 1},
		{in: "0", want: 0},
		{in: "abc", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "4.5", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWorkers(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidThreadCount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{name: "valid", modify: func(c *Config) {}},
		{name: "empty pattern", modify: func(c *Config) { c.Pattern = "" }, wantErr: ErrEmptyPattern},
		{name: "not base58", modify: func(c *Config) { c.Pattern = "0x" }, wantErr: squads.ErrInvalidPatternEncoding},
		{name: "too long", modify: func(c *Config) { c.Pattern = strings.Repeat("a", squads.MaxAddressLen+1) }, wantErr: ErrPatternTooLong},
		{name: "negative workers", modify: func(c *Config) { c.Workers = -2 }, wantErr: ErrInvalidThreadCount},
		{name: "zero workers", modify: func(c *Config) { c.Workers = 0 }},
		{name: "bad program id", modify: func(c *Config) { c.ProgramID = "not-a-key" }, wantErr: ErrInvalidProgramID},
		{name: "zero report interval", modify: func(c *Config) { c.ReportEvery = 0 }, wantErr: ErrInvalidReportInterval},
		{name: "bad word count", modify: func(c *Config) { c.UseMnemonic = true; c.WordCount = 13 }, wantErr: ErrInvalidWordCount},
		{name: "word count ignored without mnemonic", modify: func(c *Config) { c.WordCount = 13 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Pattern = "Sqd"
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grinder.yaml")
	content := "workers: 4\nauthority_index: 2\nuse_mnemonic: true\nword_count: 24\nhigh_priority: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, uint8(2), cfg.AuthorityIndex)
	assert.True(t, cfg.UseMnemonic)
	assert.Equal(t, 24, cfg.WordCount)
	assert.True(t, cfg.HighPriority)
	// Missing keys keep their defaults.
	assert.Equal(t, squads.DefaultProgramID, cfg.ProgramID)
	assert.Equal(t, uint64(10000), cfg.ReportEvery)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: [1"), 0600))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestGeneratorConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = "abc"
	cfg.Workers = 3
	cfg.AuthorityIndex = 1

	gc, err := cfg.GeneratorConfig()
	require.NoError(t, err)
	assert.Equal(t, "abc", gc.Pattern)
	assert.Equal(t, 3, gc.Workers)
	assert.Equal(t, uint8(1), gc.AuthorityIndex)
	assert.Equal(t, squads.DefaultProgramID, gc.ProgramID.String())
}
