package main

import (
	"bytes"
	"testing"

	"github.com/at-ishikawa/ankigen/internal/lexicon"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormat_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    OutputFormat
		wantErr bool
	}{
		{name: "yaml", value: "yaml", want: OutputFormatYAML},
		{name: "json", value: "json", want: OutputFormatJSON},
		{name: "invalid format", value: "toml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var format OutputFormat
			err := format.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid output format")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, format)
		})
	}
}

func TestOutputFormat_StringAndType(t *testing.T) {
	format := OutputFormatJSON
	assert.Equal(t, "json", format.String())
	assert.Equal(t, "format", format.Type())
}

func TestNewLookupCommand(t *testing.T) {
	cmd := newLookupCommand()

	assert.Equal(t, "lookup <word>", cmd.Use)
	formatFlag := cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "yaml", formatFlag.DefValue)

	assert.Error(t, cmd.Args(cmd, []string{}))
	assert.Error(t, cmd.Args(cmd, []string{"a", "b"}))
	assert.NoError(t, cmd.Args(cmd, []string{"bleed"}))
}

func TestPrintRecord(t *testing.T) {
	word := "fever"
	record := lexicon.Record{
		Word:     &word,
		Meanings: lexicon.NewMeanings("fiebre"),
	}

	tests := []struct {
		name   string
		format OutputFormat
		want   []string
	}{
		{name: "yaml", format: OutputFormatYAML, want: []string{"word: fever", "- fiebre"}},
		{name: "json", format: OutputFormatJSON, want: []string{`"word": "fever"`, `"fiebre"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			cmd := &cobra.Command{}
			cmd.SetOut(&stdout)

			require.NoError(t, printRecord(cmd, record, tt.format))
			for _, want := range tt.want {
				assert.Contains(t, stdout.String(), want)
			}
		})
	}
}
