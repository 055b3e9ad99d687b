package main

import (
	"fmt"

	"github.com/at-ishikawa/ankigen/internal/anki"
	"github.com/spf13/cobra"
)

func newPingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that AnkiConnect is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client := anki.NewClient(cfg.Anki.URL, cfg.Anki.Deck)
			defer closeClient(client)

			version, err := client.Version(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "AnkiConnect %s is reachable (API version %d, deck %s)\n", cfg.Anki.URL, version, cfg.Anki.Deck)
			return err
		},
	}
}
