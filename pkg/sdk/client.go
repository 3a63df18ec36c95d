package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ResponseError is returned when the API answers with a non-2xx status
type ResponseError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("[RECORDS-API]: '%s %s' failed: %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// Client wraps calls to the records API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// doJSON is a helper to perform JSON requests to the API. An empty response
// body leaves out untouched
func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	// Create request body if input is provided
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}

	// Create the request
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	// Perform the request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := string(b)

		var errBody errorResponse
		if json.Unmarshal(b, &errBody) == nil && errBody.Error != "" {
			message = errBody.Error
		}
		return &ResponseError{Method: method, Path: path, StatusCode: resp.StatusCode, Message: message}
	}

	// If no output expected, return early
	if out == nil || len(bytes.TrimSpace(b)) == 0 {
		return nil
	}

	return json.Unmarshal(b, out)
}
