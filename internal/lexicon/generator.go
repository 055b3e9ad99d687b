package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/at-ishikawa/ankigen/internal/inference"
	"github.com/avast/retry-go"
)

// GenerationError is returned when no record could be produced for a word.
// The round should be skipped; the caller decides whether to ask again.
type GenerationError struct {
	Word string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate lexical data for %q: %v", e.Word, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

type Generator struct {
	client        inference.Client
	domain        string
	retryAttempts uint
	retryDelay    time.Duration
}

// NewGenerator creates a Generator. With retryAttempts 0 every word is requested exactly once.
func NewGenerator(client inference.Client, domain string, retryAttempts uint) *Generator {
	return &Generator{
		client:        client,
		domain:        domain,
		retryAttempts: retryAttempts,
		retryDelay:    time.Second,
	}
}

func (g *Generator) Generate(ctx context.Context, word string) (Record, error) {
	prompt := BuildPrompt(word, g.domain)
	slog.Default().Debug("lexicon prompt", "word", word, "prompt", prompt)

	var record Record
	if err := retry.Do(
		func() error {
			completion, err := g.client.Complete(ctx, prompt)
			if err != nil {
				return fmt.Errorf("client.Complete > %w", err)
			}
			slog.Default().Debug("lexicon completion", "word", word, "completion", completion)

			parsed, err := ParseRecord(completion)
			if err != nil {
				slog.Default().Debug("failed to parse completion as a lexical record",
					"word", word,
					"error", err)
				return fmt.Errorf("ParseRecord > %w", err)
			}
			record = parsed
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(g.retryAttempts+1),
		retry.Delay(g.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	); err != nil {
		return Record{}, &GenerationError{Word: word, Err: err}
	}
	return record, nil
}
