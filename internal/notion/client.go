package notion

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	notionapi "github.com/dstotijn/go-notion"
	"github.com/ethanbaker/notion-records/pkg/utils"
	"github.com/rs/zerolog"
)

// NewClient creates the Notion API client from NOTION_API_KEY.
// NOTION_TIMEOUT_SECONDS bounds every call (unset or 0 means no bound) and
// NOTION_DEBUG logs each response body
func NewClient(cfg *utils.Config, logger zerolog.Logger) (*notionapi.Client, error) {
	token := cfg.Get("NOTION_API_KEY")
	if token == "" {
		return nil, fmt.Errorf("NOTION_API_KEY environment variable is not set")
	}

	return notionapi.NewClient(token, notionapi.WithHTTPClient(newHTTPClient(cfg, logger))), nil
}

func newHTTPClient(cfg *utils.Config, logger zerolog.Logger) *http.Client {
	httpClient := &http.Client{
		Timeout: cfg.GetSeconds("NOTION_TIMEOUT_SECONDS", 0),
	}
	if cfg.GetBool("NOTION_DEBUG") {
		httpClient.Transport = &debugTransport{
			next:   http.DefaultTransport,
			logger: logger.With().Str("module", "notion").Logger(),
		}
	}
	return httpClient
}

// debugTransport logs the status and body of every Notion response
type debugTransport struct {
	next   http.RoundTripper
	logger zerolog.Logger
}

// RoundTrip implements http.RoundTripper. The response body is read once,
// logged and handed back to the caller unchanged
func (t *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	res, err := t.next.RoundTrip(req)
	if err != nil {
		t.logger.Debug().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("notion request failed")
		return nil, err
	}

	body, err := io.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		return nil, err
	}
	res.Body = io.NopCloser(bytes.NewReader(body))

	t.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", res.StatusCode).
		RawJSON("body", jsonOrQuoted(body)).
		Msg("notion response")

	return res, nil
}

// jsonOrQuoted keeps a JSON body as-is in the log line and quotes anything else
func jsonOrQuoted(body []byte) []byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return trimmed
	}
	return []byte(fmt.Sprintf("%q", string(body)))
}
