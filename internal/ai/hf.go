package ai

import (
	"context"
	"errors"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const hfRouterBaseURL = "https://router.huggingface.co/v1"

// HFProvider talks to the Hugging Face inference router through its
// OpenAI-compatible chat endpoint.
type HFProvider struct {
	client *openai.Client
	model  string
}

func NewHFProvider(apiKey, model string) *HFProvider {
	cc := openai.DefaultConfig(apiKey)
	cc.BaseURL = hfRouterBaseURL
	cc.HTTPClient = &http.Client{Timeout: 25 * time.Second}
	return &HFProvider{
		client: openai.NewClientWithConfig(cc),
		model:  model,
	}
}

func (p *HFProvider) Generate(ctx context.Context, req Request) (string, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmpty
	}
	reply := cleanReply(resp.Choices[0].Message.Content)
	if reply == "" || isGarbageResponse(reply) {
		return "", ErrEmpty
	}
	return reply, nil
}

// classifyError maps transport errors to the package taxonomy. APIError
// carries the HTTP status, so no message sniffing is needed.
func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return ErrRateLimited
		}
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}
