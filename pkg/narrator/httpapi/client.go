package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strconv"
	"time"

	"dungeon-master-be/pkg/narrator"
)

// Client talks to a remote dungeon-master generation endpoint.
// The wire contract is POST <base-url>/api with a JSON array of
// {role, content} objects in chronological order.
type Client struct {
	BaseURL string
	Client  *http.Client
}

var _ narrator.Narrator = &Client{}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

func (c *Client) Complete(ctx context.Context, transcript []narrator.Message, opts ...narrator.Option) (narrator.Message, error) {
	options := &narrator.Options{}
	for _, opt := range opts {
		opt(options)
	}

	payloadBytes, err := json.Marshal(transcript)
	if err != nil {
		return narrator.Message{}, fmt.Errorf("marshal request: %w", err)
	}

	// Generation options travel as query parameters; the body stays a
	// bare message array.
	url := c.BaseURL + "/api"
	query := neturl.Values{}
	if options.Temperature > 0 {
		query.Set("temperature", strconv.FormatFloat(options.Temperature, 'f', -1, 64))
	}
	if options.MaxTokens > 0 {
		query.Set("max_tokens", strconv.Itoa(options.MaxTokens))
	}
	if len(query) > 0 {
		url += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return narrator.Message{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return narrator.Message{}, fmt.Errorf("narrator request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return narrator.Message{}, fmt.Errorf("read response: %w", err)
	}

	// Non-2xx: body is read as plain text for diagnostics.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return narrator.Message{}, fmt.Errorf("narrator error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	reply, err := DecodeReply(bodyBytes)
	if err != nil {
		return narrator.Message{}, fmt.Errorf("decode reply: %w", err)
	}

	return reply, nil
}
