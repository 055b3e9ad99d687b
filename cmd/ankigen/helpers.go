package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/at-ishikawa/ankigen/internal/config"
	"github.com/at-ishikawa/ankigen/internal/inference"
	"github.com/at-ishikawa/ankigen/internal/inference/gemini"
	"github.com/at-ishikawa/ankigen/internal/inference/openai"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newInferenceClient(ctx context.Context, cfg config.GenerationConfig) (inference.Client, error) {
	slog.Debug("creating inference client", "provider", cfg.Provider, "model", cfg.Model)

	switch cfg.Provider {
	case config.ProviderOpenAI:
		return openai.NewClient(cfg.APIKey(), cfg.Model), nil
	case config.ProviderGemini:
		client, err := gemini.NewClient(ctx, gemini.Config{
			APIKey: cfg.APIKey(),
			Model:  cfg.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("gemini.NewClient > %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}

func closeClient(client any) {
	closer, ok := client.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		slog.Warn("failed to close client", "error", err)
	}
}
