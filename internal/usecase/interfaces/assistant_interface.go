package interfaces

import "context"

// IScrapeService forwards a free-text query to the external scrape service and returns
// its answer text (possibly empty).
type IScrapeService interface {
	Scrape(ctx context.Context, query string) (string, error)
}

// IChatService asks a language model for a single reply.
type IChatService interface {
	Complete(ctx context.Context, userInput string) (string, error)
}
