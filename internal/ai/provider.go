package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/keshon/abg-tutor/internal/config"
)

// Failure taxonomy for the generative backend. Callers branch with
// errors.Is instead of string-matching provider messages.
var (
	ErrRateLimited = errors.New("ai: rate limited")
	ErrTimeout     = errors.New("ai: request timed out")
	ErrEmpty       = errors.New("ai: empty reply")
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is one completion call. Model may be empty to use the
// provider's default.
type Request struct {
	Messages    []Message
	Model       string
	MaxTokens   int
	Temperature float32
}

type Provider interface {
	Generate(ctx context.Context, req Request) (string, error)
}

func DefaultProvider(cfg *config.Config) Provider {
	switch cfg.AIProvider {
	case "pollinations":
		return NewPollinationsProvider()
	case "huggingface", "":
		return NewHFProvider(cfg.HFAPIKey, cfg.HFModel)
	default:
		panic(fmt.Sprintf("unsupported AI_PROVIDER: %s", cfg.AIProvider))
	}
}
