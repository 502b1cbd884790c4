package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Hxs123/squads-grinder/internal/config"
	"github.com/Hxs123/squads-grinder/internal/coordinator"
	"github.com/Hxs123/squads-grinder/internal/keyfile"
	"github.com/Hxs123/squads-grinder/internal/ui"
	"github.com/Hxs123/squads-grinder/pkg/generator/cpu"
	"github.com/Hxs123/squads-grinder/pkg/generator/squads"
)

var version = "dev"

// SetVersion sets the version reported by --version and the banner.
func SetVersion(v string) {
	version = v
}

// Execute builds the root command and runs it against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Each call returns independent state.
func NewRootCmd() *cobra.Command {
	flagCfg := config.NewConfig()
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "squads-grinder <pattern> [threads]",
		Short: "Vanity address grinder for Squads multisig vaults",
		Long: `Searches for a Squads create key whose vault address starts with the
given base58 pattern (case-insensitive). The matching key pair is written
to Squads-<vault>.json in Solana CLI format.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.RangeArgs(1, 2)(cmd, args); err != nil {
				return ui.Error(cmd.ErrOrStderr(), "Invalid arguments", err, []string{
					"Usage: squads-grinder <pattern> [threads]",
				})
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrind(cmd, flagCfg, configPath, args)
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return ui.Error(cmd.ErrOrStderr(), "Invalid flag", err, []string{
			fmt.Sprintf("Run '%s --help' for usage", cmd.CommandPath()),
		})
	})

	persistent := rootCmd.PersistentFlags()
	persistent.StringVarP(&configPath, "config", "c", "", "YAML config file")
	persistent.StringVar(&flagCfg.ProgramID, "program-id", flagCfg.ProgramID, "Squads program ID")
	persistent.Uint8Var(&flagCfg.AuthorityIndex, "authority-index", flagCfg.AuthorityIndex, "Vault authority index")
	persistent.BoolVar(&flagCfg.NoColor, "no-color", false, "Disable colored output")

	flags := rootCmd.Flags()
	flags.IntVarP(&flagCfg.Workers, "threads", "t", flagCfg.Workers, "Number of worker goroutines (0 = one per CPU core)")
	flags.Uint64Var(&flagCfg.ReportEvery, "report-every", flagCfg.ReportEvery, "Print progress every N keypairs")
	flags.StringVarP(&flagCfg.OutputDir, "output-dir", "o", flagCfg.OutputDir, "Directory for the keypair file")
	flags.StringVar(&flagCfg.FilePrefix, "file-prefix", flagCfg.FilePrefix, "Keypair file name prefix")
	flags.BoolVar(&flagCfg.UseMnemonic, "use-mnemonic", false, "Generate keys from BIP39 seed phrases (much slower)")
	flags.IntVar(&flagCfg.WordCount, "word-count", flagCfg.WordCount, "Seed phrase length with --use-mnemonic")
	flags.BoolVar(&flagCfg.HighPriority, "high-priority", false, "Raise the process scheduling priority while searching")

	rootCmd.AddCommand(newLookupCmd(flagCfg, &configPath))

	return rootCmd
}

func runGrind(cmd *cobra.Command, flagCfg *config.Config, configPath string, args []string) error {
	errOut := cmd.ErrOrStderr()

	cfg, err := resolveConfig(cmd, flagCfg, configPath)
	if err != nil {
		return ui.Error(errOut, "Invalid configuration", err, nil)
	}

	cfg.Pattern = args[0]
	if len(args) > 1 {
		workers, err := config.ParseWorkers(args[1])
		if err != nil {
			return configError(errOut, err)
		}
		cfg.Workers = workers
	}

	if err := cfg.Validate(); err != nil {
		return configError(errOut, err)
	}
	if cfg.NoColor {
		ui.SetColor(false)
	}

	genCfg, err := cfg.GeneratorConfig()
	if err != nil {
		return configError(errOut, err)
	}

	console := ui.NewConsole(cmd.OutOrStdout())
	gen := cpu.NewCPUGenerator(cfg.Workers)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	console.Banner(version)
	if cfg.HighPriority {
		if err := raisePriority(); err != nil {
			console.Warning(fmt.Sprintf("Could not raise process priority: %v", err))
		}
	}
	console.Searching(gen.Workers(), cfg.Pattern, squads.EstimateAttempts(cfg.Pattern))

	signals, err := gen.Start(ctx, genCfg)
	if err != nil {
		return ui.Error(errOut, "Failed to start search", err, nil)
	}

	store := keyfile.NewStore(cfg.OutputDir, cfg.FilePrefix)
	outcome, err := coordinator.New(console, store, cfg.ReportEvery).Run(signals)
	cancel()

	switch {
	case errors.Is(err, coordinator.ErrSearchStopped):
		console.Cancelled(outcome.Stats)
		return err
	case errors.Is(err, coordinator.ErrPersistenceFailure):
		ui.Unsaved(errOut, outcome.Result)
		return ui.Error(errOut, "Failed to save keypair", err, []string{
			"Check that the output directory exists and is writable",
		})
	case err != nil:
		return ui.Error(errOut, "Search failed", err, nil)
	}

	return nil
}

// resolveConfig layers the config file under explicitly set flags.
func resolveConfig(cmd *cobra.Command, flagCfg *config.Config, configPath string) (*config.Config, error) {
	if configPath == "" {
		cfg := *flagCfg
		return &cfg, nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("threads") {
		cfg.Workers = flagCfg.Workers
	}
	if flags.Changed("program-id") {
		cfg.ProgramID = flagCfg.ProgramID
	}
	if flags.Changed("authority-index") {
		cfg.AuthorityIndex = flagCfg.AuthorityIndex
	}
	if flags.Changed("report-every") {
		cfg.ReportEvery = flagCfg.ReportEvery
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = flagCfg.OutputDir
	}
	if flags.Changed("file-prefix") {
		cfg.FilePrefix = flagCfg.FilePrefix
	}
	if flags.Changed("use-mnemonic") {
		cfg.UseMnemonic = flagCfg.UseMnemonic
	}
	if flags.Changed("word-count") {
		cfg.WordCount = flagCfg.WordCount
	}
	if flags.Changed("high-priority") {
		cfg.HighPriority = flagCfg.HighPriority
	}
	if flags.Changed("no-color") {
		cfg.NoColor = flagCfg.NoColor
	}
	return cfg, nil
}

func configError(w io.Writer, err error) error {
	switch {
	case errors.Is(err, squads.ErrInvalidPatternEncoding):
		return ui.Error(w, "Input string is not in Base58 encoding", err, []string{
			"Base58 excludes 0 (zero), O (upper-case o), I (upper-case i) and l (lower-case L)",
		})
	case errors.Is(err, config.ErrInvalidThreadCount):
		return ui.Error(w, "Thread count must be a number", err, nil)
	default:
		return ui.Error(w, "Invalid configuration", err, nil)
	}
}
