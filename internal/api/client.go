package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"calog/internal/logger"
)

// Client is an HTTP client for the remote tracker API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a tracker API client for the given base URL.
// httpClient may be nil, in which case a client with a sane timeout is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Error is a failure reported by the tracker API, either as a success=false
// envelope or a non-2xx status.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("tracker API error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("tracker API error %d", e.Status)
}

// envelope is the common response wrapper {success, message?|error?}.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Reason  string `json:"error"`
}

func (e envelope) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Reason
}

// do issues one request and decodes the response into out (when non-nil).
// payload (when non-nil) is sent as a JSON body; the server accepts bodies
// on DELETE as well as POST/PUT.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tracker API request failed: %w", err)
	}
	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	logger.Debug("tracker API response",
		"request_id", requestID, "method", method, "path", path, "status", resp.StatusCode)

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &Error{Status: resp.StatusCode, Message: strings.TrimSpace(string(data))}
		}
		return fmt.Errorf("decoding tracker response: %w", err)
	}
	if !env.Success {
		return &Error{Status: resp.StatusCode, Message: env.text()}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding tracker response: %w", err)
		}
	}
	return nil
}
