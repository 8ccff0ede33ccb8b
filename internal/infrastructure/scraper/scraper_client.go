package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// NotifyClient tells the API server a scrape run finished so it reloads
// the catalog and rebuilds its engine.
type NotifyClient interface {
	CatalogScraped(ctx context.Context, runID string, count int) error
}

type httpNotifyClient struct {
	url    string
	token  string
	client *http.Client
	logger *log.Logger
}

type reloadWebhookBody struct {
	RunID        string `json:"run_id"`
	ScrapedCount int    `json:"scraped_count"`
	CompletedAt  string `json:"completed_at"`
}

// NewNotifyClient builds a webhook client for the server's internal
// reload endpoint. An empty URL returns nil, meaning notification is
// disabled for this deployment.
func NewNotifyClient(url, token string, logger *log.Logger) NotifyClient {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil
	}
	return &httpNotifyClient{
		url:    url,
		token:  strings.TrimSpace(token),
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

func (c *httpNotifyClient) CatalogScraped(ctx context.Context, runID string, count int) error {
	if c == nil {
		return errors.New("nil notify client")
	}

	body := reloadWebhookBody{
		RunID:        strings.TrimSpace(runID),
		ScrapedCount: count,
		CompletedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("X-Internal-Token", c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		err := fmt.Errorf("reload notify failed: status=%d body=%s", resp.StatusCode, bodyStr)
		if c.logger != nil {
			c.logger.Printf("[Scraper] CatalogScraped error url=%s status=%d body=%q", c.url, resp.StatusCode, bodyStr)
		}
		return err
	}
	return nil
}

var _ NotifyClient = (*httpNotifyClient)(nil)
