package completion

import (
	"context"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"negobot/internal/domain/entity"
	"negobot/pkg/errors"
)

// Client talks to an OpenAI-compatible chat completion endpoint. The
// response is opaque free text and treated as untrusted downstream.
type Client struct {
	api         *openai.Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
}

func NewClient(apiKey, baseURL, model string, maxTokens int, temperature float64, timeout time.Duration) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &Client{
		api:         openai.NewClientWithConfig(cfg),
		model:       model,
		maxTokens:   maxTokens,
		temperature: float32(temperature),
		timeout:     timeout,
	}
}

// Complete sends the ordered role-tagged messages and returns the raw
// generated text. Failures come back as SERVICE_UNAVAILABLE so the turn
// degrades to the rule-based fallback instead of failing the session.
func (c *Client) Complete(ctx context.Context, messages []entity.ChatMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(messages)),
	}

	for _, msg := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    toCompletionRole(msg.Role),
			Content: msg.Content,
		})
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", errors.Unavailable("Completion service failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.Unavailable("Completion service returned no choices", nil)
	}

	return resp.Choices[0].Message.Content, nil
}

func toCompletionRole(role string) string {
	switch role {
	case entity.RoleSystem:
		return openai.ChatMessageRoleSystem
	case entity.RoleSeller:
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleUser
	}
}
