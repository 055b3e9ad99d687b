package main

import (
	"fmt"

	"github.com/at-ishikawa/ankigen/internal/lexicon"
	"github.com/spf13/cobra"
)

type OutputFormat string

const (
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatJSON OutputFormat = "json"
)

var allOutputFormats = []OutputFormat{OutputFormatYAML, OutputFormatJSON}

func (f *OutputFormat) Set(val string) error {
	for _, format := range allOutputFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s", val)
}

func (f OutputFormat) String() string {
	return string(f)
}

func (f *OutputFormat) Type() string {
	return "format"
}

func newLookupCommand() *cobra.Command {
	format := OutputFormatYAML

	command := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Generate the record of a word and print it without creating a card",
		Args:  cobra.ExactArgs(1),
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

			generator := lexicon.NewGenerator(inferenceClient, cfg.Generation.ExampleDomain, cfg.Generation.RetryAttempts)
			record, err := generator.Generate(ctx, args[0])
			if err != nil {
				return err
			}

			return printRecord(cmd, record, format)
		},
	}
	command.Flags().Var(&format, "format", fmt.Sprintf("output format. Possible values are %v", allOutputFormats))
	return command
}

func printRecord(cmd *cobra.Command, record lexicon.Record, format OutputFormat) error {
	var output string
	switch format {
	case OutputFormatJSON:
		output = record.JSON()
	default:
		output = record.YAML()
	}
	if _, err := fmt.Fprint(cmd.OutOrStdout(), output); err != nil {
		return fmt.Errorf("fmt.Fprint > %w", err)
	}
	return nil
}
