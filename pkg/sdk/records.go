package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	notionapi "github.com/dstotijn/go-notion"
)

// Create a new record
func (c *Client) CreateRecord(ctx context.Context, req *CreateRecordRequest) (*notionapi.Page, error) {
	if req == nil {
		req = &CreateRecordRequest{}
	}

	var page notionapi.Page
	if err := c.doJSON(ctx, http.MethodPost, "/api/records", req, &page); err != nil {
		return nil, err
	}

	if page.ID == "" {
		return nil, fmt.Errorf("no page id returned")
	}

	return &page, nil
}

// Get a record by its numeric id. A nil page means no record has the id
func (c *Client) GetRecord(ctx context.Context, id string) (*notionapi.Page, error) {
	var page *notionapi.Page
	if err := c.doJSON(ctx, http.MethodGet, recordPath(id), nil, &page); err != nil {
		return nil, err
	}
	return page, nil
}

// Update fields of a record. A nil page means no record has the id
func (c *Client) UpdateRecord(ctx context.Context, id string, req *UpdateRecordRequest) (*notionapi.Page, error) {
	if req == nil {
		req = &UpdateRecordRequest{}
	}

	var page *notionapi.Page
	if err := c.doJSON(ctx, http.MethodPut, recordPath(id), req, &page); err != nil {
		return nil, err
	}
	return page, nil
}

// Delete a record. Deleting a missing record is not an error
func (c *Client) DeleteRecord(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, recordPath(id), nil, nil)
}

// History lists the operations performed on a record
func (c *Client) History(ctx context.Context, id string) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	if err := c.doJSON(ctx, http.MethodGet, recordPath(id)+"/history", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Health returns the latest database check
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var out ApiResponse[*HealthStatus]
	if err := c.doJSON(ctx, http.MethodGet, "/api/health", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func recordPath(id string) string {
	return "/api/records/" + url.PathEscape(id)
}
