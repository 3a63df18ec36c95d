package sdk

import (
	"time"

	"github.com/ethanbaker/api/pkg/api_types"
)

// ApiResponse represents the envelope used by the health endpoint
type ApiResponse[T any] struct {
	Status  api_types.StatusType `json:"status"`          // Status message
	Code    int                  `json:"code"`            // Status code
	Message string               `json:"message"`         // Human-readable message
	Data    T                    `json:"data,omitempty"`  // Optional data field for successful responses
	Error   any                  `json:"error,omitempty"` // Optional errors field for error responses
}

// HealthStatus is the latest reachability check of the records database
type HealthStatus struct {
	Reachable bool      `json:"reachable"`
	CheckedAt time.Time `json:"checked_at"`
	Error     string    `json:"error,omitempty"`
}

// ImageFile references an externally hosted image
type ImageFile struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// CreateRecordRequest is the body sent when creating a record. Every field is optional
type CreateRecordRequest struct {
	Company       string     `json:"company,omitempty"`
	Campaign      string     `json:"campaign,omitempty"`
	Description   string     `json:"description,omitempty"`
	PlannedDate   string     `json:"plannedDate,omitempty"`
	Where         string     `json:"where,omitempty"`
	Language      string     `json:"language,omitempty"`
	LanguageColor string     `json:"languageColor,omitempty"`
	Content       string     `json:"content,omitempty"`
	ImageFile     *ImageFile `json:"imageFile,omitempty"`
	ImageContent  string     `json:"imageContent,omitempty"`
}

// UpdateRecordRequest is the body sent when updating a record. Empty fields are left untouched
type UpdateRecordRequest struct {
	Company      string     `json:"company,omitempty"`
	Campaign     string     `json:"campaign,omitempty"`
	Description  string     `json:"description,omitempty"`
	PlannedDate  string     `json:"plannedDate,omitempty"`
	Where        string     `json:"where,omitempty"`
	Language     string     `json:"language,omitempty"`
	Content      string     `json:"content,omitempty"`
	ImageFile    *ImageFile `json:"imageFile,omitempty"`
	ImageContent string     `json:"imageContent,omitempty"`
}

// HistoryEntry is one journaled operation on a record
type HistoryEntry struct {
	ID        string    `json:"id"`
	Operation string    `json:"operation"`
	RecordID  string    `json:"record_id,omitempty"`
	PageID    string    `json:"page_id,omitempty"`
	Outcome   string    `json:"outcome"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// errorResponse is the body of a failed record request
type errorResponse struct {
	Error string `json:"error"`
}
