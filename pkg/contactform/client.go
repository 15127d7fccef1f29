package contactform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Result is the relay's structured verdict. A non-2xx status with a valid
// body is still a Result; only transport or decode failures become errors.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Client posts drafts to the relay endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client for the given contact endpoint URL.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Submit sends the draft form-encoded and decodes the JSON verdict.
func (c *Client) Submit(ctx context.Context, d Draft) (*Result, error) {
	form := url.Values{}
	form.Set("name", d.Name)
	form.Set("email", d.Email)
	form.Set("message", d.Message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &result, nil
}
