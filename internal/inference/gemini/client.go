package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/ankigen/internal/inference"
	"google.golang.org/genai"
)

var (
	ErrEmptyResponse  = errors.New("empty response")
	ErrContentBlocked = errors.New("content blocked by safety filters")
)

type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the Gemini API endpoint. Empty uses the default one.
	BaseURL string
}

type Client struct {
	client *genai.Client
	model  string
}

var _ inference.Client = (*Client)(nil)

func NewClient(ctx context.Context, config Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}
	if config.Model == "" {
		return nil, errors.New("gemini model name cannot be empty")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{
			BaseURL: config.BaseURL,
		}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient > %w", err)
	}
	return &Client{
		client: client,
		model:  config.Model,
	}, nil
}

// GetModel returns the model name configured for this client
func (client *Client) GetModel() string {
	return client.model
}

func (client *Client) Complete(ctx context.Context, prompt string) (string, error) {
	response, err := client.client.Models.GenerateContent(ctx, client.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("Models.GenerateContent > %w", err)
	}
	if response == nil || len(response.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", ErrEmptyResponse)
	}

	candidate := response.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", ErrContentBlocked
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: no content in candidate", ErrEmptyResponse)
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("%w: no text in candidate", ErrEmptyResponse)
	}

	slog.Default().Debug("gemini response",
		"model", client.model,
		"finishReason", candidate.FinishReason,
		"length", text.Len(),
	)
	return text.String(), nil
}
