package cli

import (
	"github.com/soyeahso/registrygen/internal/config"
	"github.com/soyeahso/registrygen/internal/docgen"
	"github.com/soyeahso/registrygen/internal/logging"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registrygen",
		Short: "registrygen — generate the agent registry docs page",
		Long: "registrygen fetches the agent registry from the CDN, sanitizes agent icons,\n" +
			"and renders the registry docs page from its template.\n\n" +
			"Configuration is environment-driven; REGISTRY_URL overrides the CDN endpoint.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.DefaultPath)
			if err != nil {
				logging.New(nil, "info").Error().Err(err).Msg("could not load config")
				return err
			}

			log := logging.New(nil, cfg.Logging.Level)
			if err := docgen.New(cfg, log).Run(cmd.Context()); err != nil {
				log.Error().Err(err).Msg("generation failed")
				return err
			}
			return nil
		},
	}

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
