// Package cms is the HTTP client for the headless content store. The
// contact pipeline only ever asks it for the auto-reply document; page
// content is fetched by the static site build, not by this service.
package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/ta89365/twconnect2-sub000/internal/domain/contact"
	"github.com/ta89365/twconnect2-sub000/internal/shared/config"
	"github.com/ta89365/twconnect2-sub000/internal/shared/logger"
)

const (
	// Query for the single published auto-reply document.
	autoReplyQuery = `*[_type == "autoReply"][0]{subject, body}`
	// Maximum response body size for the content API (1MB)
	maxResponseSize = 1 << 20
)

// queryResponse is the content API envelope. A null result means no
// document is published, which is a valid response rather than an error.
type queryResponse struct {
	Result *contact.AutoReplyDocument `json:"result"`
}

// Client queries the content store over HTTP.
type Client struct {
	baseURL    string
	dataset    string
	token      string
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(cfg config.CMSConfig, log logger.Interface) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		dataset: cfg.Dataset,
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
		logger: log,
	}
}

var _ contact.AutoReplyStore = (*Client)(nil)

// FetchAutoReply retrieves the auto-reply document. Returns (nil, nil)
// when the store has no published document.
func (c *Client) FetchAutoReply(ctx context.Context) (*contact.AutoReplyDocument, error) {
	endpoint := fmt.Sprintf("%s/v1/data/query/%s?query=%s",
		c.baseURL, c.dataset, url.QueryEscape(autoReplyQuery))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query content store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var data queryResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if data.Result == nil {
		c.logger.Debugw("no auto-reply document published")
		return nil, nil
	}

	return data.Result, nil
}
