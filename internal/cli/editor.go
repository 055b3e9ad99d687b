package cli

import (
	"io"
	"strings"

	"github.com/at-ishikawa/ankigen/internal/lexicon"
)

// Editor lets the operator overwrite the word, meanings, pronunciation and
// domain example of a record. Grammar, etymology and the general example are
// kept as generated.
type Editor struct {
	*InteractiveCLI
}

func NewEditor(stdin io.Reader, stdout io.Writer) *Editor {
	return &Editor{InteractiveCLI: newInteractiveCLI(stdin, stdout)}
}

func newEditorFrom(cli *InteractiveCLI) *Editor {
	return &Editor{InteractiveCLI: cli}
}

// Edit never fails: a blank answer or a read error keeps the current value.
func (e *Editor) Edit(record lexicon.Record) lexicon.Record {
	e.println()
	_, _ = e.bold.Fprintln(e.stdoutWriter, "--- Modo de edición ---")
	e.println("Deja el campo vacío para no modificarlo.")

	if value, ok := e.ask("Palabra actual", lexicon.Display(record.Word), "Nueva palabra: "); ok {
		record.Word = &value
	}
	if value, ok := e.ask("Significado actual", record.Meanings.String(), "Nuevo significado (separado por comas): "); ok {
		record.Meanings = lexicon.ParseMeanings(value)
	}
	if value, ok := e.ask("Pronunciación actual", lexicon.Display(record.Pronunciation), "Nueva pronunciación: "); ok {
		record.Pronunciation = &value
	}
	if value, ok := e.ask("Oración de dominio actual", lexicon.Display(record.ExampleDomain), "Nueva oración de dominio: "); ok {
		record.ExampleDomain = &value
	}

	e.println()
	_, _ = e.green.Fprintln(e.stdoutWriter, "✅ Edición completada. Los datos actualizados son:")
	e.printf("%s", record.YAML())
	return record
}

func (e *Editor) ask(label, current, question string) (string, bool) {
	e.printf("%s: %s\n", label, e.italic.Sprint(current))
	value, err := e.prompt(question)
	if err != nil || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}
