package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client sends a single prompt to a text-generation service and returns its completion
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
