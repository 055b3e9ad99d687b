package main

import (
	"fmt"

	"github.com/at-ishikawa/ankigen/internal/anki"
	"github.com/at-ishikawa/ankigen/internal/cli"
	"github.com/at-ishikawa/ankigen/internal/lexicon"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCreateCommand() *cobra.Command {
	var template anki.CardTemplate

	command := &cobra.Command{
		Use:   "create",
		Short: "Start the interactive card creation loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			inferenceClient, err := newInferenceClient(ctx, cfg.Generation)
			if err != nil {
				return err
			}
			defer closeClient(inferenceClient)

			ankiClient := anki.NewClient(cfg.Anki.URL, cfg.Anki.Deck)
			defer closeClient(ankiClient)

			generator := lexicon.NewGenerator(inferenceClient, cfg.Generation.ExampleDomain, cfg.Generation.RetryAttempts)
			creator := cli.NewCardCreatorCLI(generator, ankiClient, cfg.Session.ExitKeyword, template)

			out := cmd.OutOrStdout()
			_, _ = color.New(color.Bold).Fprintln(out, "Iniciando el creador de tarjetas Anki con IA.")
			_, _ = fmt.Fprintf(out, "Mazo: %s. Modelo: %s.\n", cfg.Anki.Deck, cfg.Generation.Model)
			_, _ = fmt.Fprintf(out, "Escribe '%s' para terminar el programa.\n", cfg.Session.ExitKeyword)

			return creator.Run(ctx, creator)
		},
	}
	command.Flags().Var(&template, "template", fmt.Sprintf("note type used for every card, skipping the menu. Possible values are %v", anki.Templates()))
	return command
}
