package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"workorder_invoicing/internal/usecase/interfaces"

	openai "github.com/sashabaranov/go-openai"
)

const chatService = "chat completion service"

// OpenAIClient sends a single user message to an OpenAI-compatible chat completion API and
// returns the first choice.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

var _ interfaces.IChatService = (*OpenAIClient)(nil)

func NewOpenAIClient(baseURL, apiKey, model string, timeout time.Duration) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &OpenAIClient{client: openai.NewClientWithConfig(cfg), model: model}
}

func (c *OpenAIClient) Complete(ctx context.Context, userInput string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: userInput},
		},
	})
	if err != nil {
		if status := upstreamStatus(err); status != 0 {
			log.Printf("[assistant][openai] upstream status=%d model=%s", status, c.model)
			return "", &interfaces.UpstreamStatusError{Service: chatService, StatusCode: status, Status: http.StatusText(status)}
		}
		log.Printf("[assistant][openai] request failed err=%v", err)
		return "", fmt.Errorf("%w: %s: %v", interfaces.ErrUpstreamFailure, chatService, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: %s returned no choices", interfaces.ErrUpstreamFailure, chatService)
	}
	return resp.Choices[0].Message.Content, nil
}

// upstreamStatus extracts the HTTP status of a non-success answer, or 0 for transport errors.
func upstreamStatus(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return reqErr.HTTPStatusCode
	}
	return 0
}
