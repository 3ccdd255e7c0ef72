package usecase

import (
	"context"
	"errors"
	"strings"

	"workorder_invoicing/internal/usecase/interfaces"
)

var (
	ErrMissingScrapeQuery = errors.New("missing url parameter")
	ErrMissingUserInput   = errors.New("user input is required")
)

type IAssistantUseCase interface {
	Scrape(ctx context.Context, query string) (string, error)
	Chat(ctx context.Context, userInput string) (string, error)
}

// AssistantUseCase proxies free-text questions to the scrape service and the chat model.
type AssistantUseCase struct {
	scraper interfaces.IScrapeService
	chat    interfaces.IChatService
}

var _ IAssistantUseCase = (*AssistantUseCase)(nil)

func NewAssistantUseCase(scraper interfaces.IScrapeService, chat interfaces.IChatService) *AssistantUseCase {
	return &AssistantUseCase{scraper: scraper, chat: chat}
}

func (u *AssistantUseCase) Scrape(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrMissingScrapeQuery
	}
	return u.scraper.Scrape(ctx, query)
}

func (u *AssistantUseCase) Chat(ctx context.Context, userInput string) (string, error) {
	userInput = strings.TrimSpace(userInput)
	if userInput == "" {
		return "", ErrMissingUserInput
	}
	return u.chat.Complete(ctx, userInput)
}
