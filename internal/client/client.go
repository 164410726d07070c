// Package client implements the log tail wire contract over HTTP. A Client
// satisfies session.Fetcher, so a Session can poll any server exposing the
// /api/v1/logs endpoints.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/plexnotify/logtail-api-server/internal/models"
)

const defaultRequestTimeout = 15 * time.Second

// Client is an HTTP client for the tail API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a Client for the server at baseURL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}
}

// Tail fetches the lines appended to the given stream since cursor.
func (c *Client) Tail(ctx context.Context, fileID string, cursor int64) (models.TailResponse, error) {
	endpoint := fmt.Sprintf("%s/api/v1/logs/%s/tail?cursor=%s",
		c.baseURL, url.PathEscape(fileID), strconv.FormatInt(cursor, 10))

	var resp models.TailResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return models.TailResponse{}, err
	}
	return resp, nil
}

// ListFiles returns the streams the server offers for tailing.
func (c *Client) ListFiles(ctx context.Context) ([]models.LogFileInfo, error) {
	var resp models.LogFileListResponse
	if err := c.getJSON(ctx, c.baseURL+"/api/v1/logs", &resp); err != nil {
		return nil, err
	}
	return resp.Files, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp models.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Error != "" {
			return fmt.Errorf("server returned status %d: %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
