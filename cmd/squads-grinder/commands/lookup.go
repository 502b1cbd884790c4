package commands

import (
	"github.com/spf13/cobra"

	"github.com/Hxs123/squads-grinder/internal/config"
	"github.com/Hxs123/squads-grinder/internal/keyfile"
	"github.com/Hxs123/squads-grinder/internal/ui"
	"github.com/Hxs123/squads-grinder/pkg/generator/squads"
)

func newLookupCmd(flagCfg *config.Config, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <keyfile>",
		Short: "Show the multisig and vault addresses of a saved create key",
		Long: `Reads a create key (Solana CLI JSON or base58 secret key) and prints the
multisig and vault addresses it derives under the configured program ID
and authority index.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			errOut := cmd.ErrOrStderr()

			cfg, err := resolveConfig(cmd, flagCfg, *configPath)
			if err != nil {
				return ui.Error(errOut, "Invalid configuration", err, nil)
			}
			if cfg.NoColor {
				ui.SetColor(false)
			}

			programID, err := cfg.Program()
			if err != nil {
				return configError(errOut, err)
			}

			key, err := keyfile.Read(args[0])
			if err != nil {
				return ui.Error(errOut, "Failed to read keypair", err, []string{
					"Expected a Solana CLI keypair file or a base58-encoded 64-byte secret key",
				})
			}

			createKey := key.PublicKey()
			pipeline := squads.NewPipeline(programID, cfg.AuthorityIndex)
			multisig, vault, err := pipeline.Derive(createKey)
			if err != nil {
				return ui.Error(errOut, "Failed to derive addresses", err, nil)
			}

			ui.NewConsole(cmd.OutOrStdout()).Addresses(createKey.String(), multisig.String(), vault.String(), cfg.AuthorityIndex)
			return nil
		},
	}
}
