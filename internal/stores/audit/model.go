package audit

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MAX_ERROR_LENGTH is the size of the error column, in characters
const MAX_ERROR_LENGTH = 1000

// Operation names the record operation an entry describes
type Operation string

const (
	OperationCreate Operation = "create"
	OperationRead   Operation = "read"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// Outcome is how an operation ended
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeNotFound  Outcome = "not_found"
	OutcomeFailed    Outcome = "failed"
)

// Entry is one journaled record operation. It never holds record content
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Operation Operation `json:"operation"`
	RecordID  string    `json:"record_id,omitempty"`
	PageID    string    `json:"page_id,omitempty"`
	Outcome   Outcome   `json:"outcome"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EntryModel represents the database model for audit entries
type EntryModel struct {
	ID        string    `gorm:"column:id;primaryKey;size:36"`
	CreatedAt time.Time `gorm:"column:created_at;index"`

	Operation string `gorm:"column:operation;not null;size:16"`
	RecordID  string `gorm:"column:record_id;index;size:64"`
	PageID    string `gorm:"column:page_id;size:64"`
	Outcome   string `gorm:"column:outcome;not null;size:16"`
	Error     string `gorm:"column:error;size:1000"`
}

// TableName sets the table name for GORM
func (EntryModel) TableName() string {
	return "record_audit_entries"
}

func toModel(entry Entry) EntryModel {
	return EntryModel{
		ID:        entry.ID.String(),
		CreatedAt: entry.CreatedAt,
		Operation: string(entry.Operation),
		RecordID:  entry.RecordID,
		PageID:    entry.PageID,
		Outcome:   string(entry.Outcome),
		Error:     entry.Error,
	}
}

func fromModel(model EntryModel) Entry {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		id = uuid.Nil
	}

	return Entry{
		ID:        id,
		Operation: Operation(model.Operation),
		RecordID:  model.RecordID,
		PageID:    model.PageID,
		Outcome:   Outcome(model.Outcome),
		Error:     model.Error,
		CreatedAt: model.CreatedAt,
	}
}

// prepare fills the id and timestamp of a new entry and cuts its error to fit
// the error column
func prepare(entry Entry) Entry {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if utf8.RuneCountInString(entry.Error) > MAX_ERROR_LENGTH {
		entry.Error = string([]rune(entry.Error)[:MAX_ERROR_LENGTH])
	}
	return entry
}
