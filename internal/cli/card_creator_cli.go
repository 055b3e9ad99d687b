package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/at-ishikawa/ankigen/internal/anki"
	"github.com/at-ishikawa/ankigen/internal/lexicon"
)

//go:generate mockgen -source=card_creator_cli.go -destination=../mocks/cli/mock_card_creator_cli.go -package=mock_cli

type RecordGenerator interface {
	Generate(ctx context.Context, word string) (lexicon.Record, error)
}

type NoteSubmitter interface {
	AddNote(ctx context.Context, card anki.Card, template anki.CardTemplate) (anki.Receipt, error)
}

const (
	choiceConfirm = "s"
	choiceCancel  = "n"
	choiceEdit    = "e"
)

// CardCreatorCLI runs the word → review → submit loop.
// Only one record is in flight at a time.
type CardCreatorCLI struct {
	*InteractiveCLI
	generator      RecordGenerator
	submitter      NoteSubmitter
	editor         *Editor
	exitKeyword    string
	presetTemplate anki.CardTemplate

	word     string
	record   lexicon.Record
	template anki.CardTemplate
}

// NewCardCreatorCLI creates the loop on the process console. A non-empty
// template skips the template menu.
func NewCardCreatorCLI(
	generator RecordGenerator,
	submitter NoteSubmitter,
	exitKeyword string,
	template anki.CardTemplate,
) *CardCreatorCLI {
	return newCardCreatorCLI(os.Stdin, os.Stdout, generator, submitter, exitKeyword, template)
}

func newCardCreatorCLI(
	stdin io.Reader,
	stdout io.Writer,
	generator RecordGenerator,
	submitter NoteSubmitter,
	exitKeyword string,
	template anki.CardTemplate,
) *CardCreatorCLI {
	base := newInteractiveCLI(stdin, stdout)
	return &CardCreatorCLI{
		InteractiveCLI: base,
		generator:      generator,
		submitter:      submitter,
		editor:         newEditorFrom(base),
		exitKeyword:    exitKeyword,
		presetTemplate: template,
	}
}

// Session runs one round, from reading a word until the loop is back to waiting for the next one.
func (r *CardCreatorCLI) Session(ctx context.Context) error {
	state := StateAwaitingWord
	for {
		next, err := r.Step(ctx, state)
		if err != nil {
			return err
		}
		switch next {
		case StateExited:
			return errEnd
		case StateAwaitingWord:
			return nil
		}
		state = next
	}
}

// Step performs the work of one state and returns the next one.
func (r *CardCreatorCLI) Step(ctx context.Context, state State) (State, error) {
	switch state {
	case StateAwaitingWord:
		return r.awaitWord()
	case StateGenerating:
		return r.generate(ctx)
	case StateReviewingCard:
		return r.review()
	case StateSelectingTemplate:
		return r.selectTemplate()
	case StateSubmitting:
		return r.submit(ctx)
	default:
		return state, fmt.Errorf("no transition from state %s", state)
	}
}

func (r *CardCreatorCLI) awaitWord() (State, error) {
	r.word = ""
	r.record = lexicon.Record{}
	r.template = r.presetTemplate

	r.println(strings.Repeat("-", 20))
	input, err := r.prompt("Introduce la palabra en inglés: ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			r.println()
			r.println("Saliendo del programa. ¡Hasta pronto!")
			return StateExited, nil
		}
		return StateAwaitingWord, fmt.Errorf("error reading word input: %w", err)
	}

	word := strings.TrimSpace(input)
	if strings.EqualFold(word, r.exitKeyword) {
		r.println("Saliendo del programa. ¡Hasta pronto!")
		return StateExited, nil
	}
	if word == "" {
		return StateAwaitingWord, nil
	}
	r.word = word
	return StateGenerating, nil
}

func (r *CardCreatorCLI) generate(ctx context.Context) (State, error) {
	r.printf("Obteniendo información completa para '%s'...\n", r.word)

	record, err := r.generator.Generate(ctx, r.word)
	if err != nil {
		_, _ = r.red.Fprintf(r.stdoutWriter, "Error al obtener y parsear la información: %v\n", err)
		r.println("Prueba de nuevo con otra palabra.")
		return StateAwaitingWord, nil
	}
	r.record = record

	r.println()
	_, _ = r.bold.Fprintln(r.stdoutWriter, "--- Respuesta detallada de la IA ---")
	r.printf("%s", record.YAML())
	return StateReviewingCard, nil
}

func (r *CardCreatorCLI) review() (State, error) {
	r.println("-----------------------------------")
	_, _ = r.bold.Fprintln(r.stdoutWriter, "--- Resumen para la tarjeta ---")
	r.printf("Palabra: %s\n", lexicon.Display(r.record.Word))
	r.printf("Significado: %s\n", r.record.Meanings.String())
	r.printf("Pronunciación: %s\n", lexicon.Display(r.record.Pronunciation))
	r.printf("Oración de dominio: %s\n", lexicon.Display(r.record.ExampleDomain))
	r.println("-----------------------------------")
	r.println()
	r.println("¿Deseas agregar la tarjeta a Anki?")
	r.println(" (s)í: crear tarjeta")
	r.println(" (n)o: cancelar creación")
	r.println(" (e)ditar: modificar datos antes de crear la tarjeta")

	input, err := r.prompt("=========> ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			r.println()
			r.println("Creación de tarjeta cancelada.")
			return StateAwaitingWord, nil
		}
		return StateReviewingCard, fmt.Errorf("error reading review choice: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case choiceConfirm:
		if r.template != "" {
			return StateSubmitting, nil
		}
		return StateSelectingTemplate, nil
	case choiceEdit:
		r.record = r.editor.Edit(r.record)
		return StateReviewingCard, nil
	case choiceCancel:
		r.println("Creación de tarjeta cancelada.")
		return StateAwaitingWord, nil
	default:
		r.reportInvalidChoice(&InputValidationError{
			Input:   input,
			Allowed: []string{choiceConfirm, choiceCancel, choiceEdit},
		})
		return StateReviewingCard, nil
	}
}

func (r *CardCreatorCLI) selectTemplate() (State, error) {
	r.println("Elige el tipo de carta que deseas crear:")
	choices := make([]string, 0, len(anki.Templates()))
	for i, template := range anki.Templates() {
		choice := fmt.Sprint(i + 1)
		choices = append(choices, choice)
		r.printf("%s. %s\n", choice, template)
	}

	input, err := r.prompt(strings.Join(choices, " / ") + ": ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			r.println()
			r.println("Creación de tarjeta cancelada.")
			return StateAwaitingWord, nil
		}
		return StateSelectingTemplate, fmt.Errorf("error reading template choice: %w", err)
	}

	template, ok := anki.TemplateFromChoice(input)
	if !ok {
		r.reportInvalidChoice(&InputValidationError{Input: input, Allowed: choices})
		return StateSelectingTemplate, nil
	}
	r.template = template
	return StateSubmitting, nil
}

func (r *CardCreatorCLI) submit(ctx context.Context) (State, error) {
	card := anki.Render(r.record)
	receipt, err := r.submitter.AddNote(ctx, card, r.template)

	r.println()
	if err != nil {
		_, _ = r.red.Fprintf(r.stdoutWriter, "No se pudo crear la tarjeta: %v\n", err)
		_, _ = r.bold.Fprintln(r.stdoutWriter, "--- Tarjeta no creada ---")
		return StateAwaitingWord, nil
	}

	if noteID, ok := receipt.NoteID(); ok {
		_, _ = r.green.Fprintf(r.stdoutWriter, "Nota %d añadida (%s).\n", noteID, r.template)
	} else {
		r.printf("Respuesta de AnkiConnect: %s\n", receipt.Raw)
	}
	_, _ = r.bold.Fprintln(r.stdoutWriter, "--- Tarjeta creada ---")
	return StateAwaitingWord, nil
}

func (r *CardCreatorCLI) reportInvalidChoice(err *InputValidationError) {
	_, _ = r.red.Fprintln(r.stdoutWriter, err.Message())
}
