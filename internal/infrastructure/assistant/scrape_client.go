package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"workorder_invoicing/internal/usecase/interfaces"
)

const scrapeService = "scrape service"

// ScrapeClient forwards free-text queries to the scrape service's GET /scrape?url= endpoint.
type ScrapeClient struct {
	baseURL string
	http    *http.Client
}

var _ interfaces.IScrapeService = (*ScrapeClient)(nil)

func NewScrapeClient(baseURL string, timeout time.Duration) *ScrapeClient {
	return &ScrapeClient{baseURL: baseURL, http: &http.Client{Timeout: timeout}}
}

type scrapeResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

func (c *ScrapeClient) Scrape(ctx context.Context, query string) (string, error) {
	endpoint := c.baseURL + "/scrape?url=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[assistant][scrape] request failed err=%v", err)
		return "", fmt.Errorf("%w: %s: %v", interfaces.ErrUpstreamFailure, scrapeService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Printf("[assistant][scrape] upstream status=%d", resp.StatusCode)
		return "", &interfaces.UpstreamStatusError{Service: scrapeService, StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}

	var body scrapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("[assistant][scrape] decode failed err=%v", err)
		return "", fmt.Errorf("%w: %s: decode: %v", interfaces.ErrUpstreamFailure, scrapeService, err)
	}
	return body.Response, nil
}
