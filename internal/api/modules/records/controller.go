package records

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/ethanbaker/notion-records/internal/events"
	"github.com/ethanbaker/notion-records/internal/records"
	"github.com/ethanbaker/notion-records/internal/stores/audit"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Controller serves the record endpoints
type Controller struct {
	accessor  *records.Accessor
	audit     audit.Store
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewController creates a controller over the given accessor. Operations are
// journaled to auditStore and successful changes are sent to publisher
func NewController(accessor *records.Accessor, auditStore audit.Store, publisher events.Publisher, logger zerolog.Logger) *Controller {
	if auditStore == nil {
		auditStore = audit.NewInMemoryStore()
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}

	return &Controller{
		accessor:  accessor,
		audit:     auditStore,
		publisher: publisher,
		logger:    logger.With().Str("module", "api/records").Logger(),
	}
}

// Create handles POST requests to create a new record
//
//	@Summary	Create a record
//	@Tags		records
//	@Accept		json
//	@Produce	json
//	@Param		record	body		records.CreateRecordRequest	true	"Record fields"
//	@Success	201		{object}	object
//	@Failure	400		{object}	errorBody
//	@Failure	500		{object}	errorBody
//	@Router		/records [post]
func (ctl *Controller) Create(c *gin.Context) {
	var req records.CreateRecordRequest
	if !bindBody(c, &req) {
		return
	}

	page, err := ctl.accessor.Create(c.Request.Context(), req)
	if err != nil {
		ctl.record(c.Request.Context(), audit.Entry{Operation: audit.OperationCreate, Outcome: audit.OutcomeFailed, Error: err.Error()})
		c.JSON(http.StatusInternalServerError, errorBody{Error: "creation failed"})
		return
	}

	recordID, _ := records.RecordIDOf(page)
	ctl.record(c.Request.Context(), audit.Entry{Operation: audit.OperationCreate, RecordID: recordID, PageID: page.ID, Outcome: audit.OutcomeSucceeded})
	ctl.publish(c.Request.Context(), events.Event{Type: events.RecordCreated, RecordID: recordID, PageID: page.ID})

	c.JSON(http.StatusCreated, page)
}

// Get handles GET requests for a record by its numeric id
//
//	@Summary	Get a record
//	@Tags		records
//	@Produce	json
//	@Param		id	path		string	true	"Record ID"
//	@Success	200	{object}	object	"The record page, or null when no record has the id"
//	@Failure	404	{object}	errorBody
//	@Router		/records/{id} [get]
func (ctl *Controller) Get(c *gin.Context) {
	id := c.Param("id")

	result, err := ctl.accessor.FindByID(c.Request.Context(), id)
	if err != nil {
		ctl.record(c.Request.Context(), audit.Entry{Operation: audit.OperationRead, RecordID: id, Outcome: audit.OutcomeFailed, Error: err.Error()})
		c.JSON(http.StatusNotFound, errorBody{Error: "not found"})
		return
	}

	if !result.Found {
		ctl.record(c.Request.Context(), audit.Entry{Operation: audit.OperationRead, RecordID: id, Outcome: audit.OutcomeNotFound})
		c.JSON(http.StatusOK, nil)
		return
	}

	ctl.record(c.Request.Context(), audit.Entry{Operation: audit.OperationRead, RecordID: id, PageID: result.Value.ID, Outcome: audit.OutcomeSucceeded})
	c.JSON(http.StatusOK, result.Value)
}

// Update handles PUT requests that overlay fields onto a record
//
//	@Summary	Update a record
//	@Tags		records
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Record ID"
//	@Param		record	body		records.UpdateRecordRequest	true	"Fields to change"
//	@Success	200		{object}	object	"The updated page, or an empty body when no record has the id"
//	@Failure	400		{object}	errorBody
//	@Failure	500		{object}	errorBody
//	@Router		/records/{id} [put]
func (ctl *Controller) Update(c *gin.Context) {
	id := c.Param("id")

	var req records.UpdateRecordRequest
	if !bindBody(c, &req) {
		return
	}

	result, err := ctl.accessor.Update(c.Request.Context(), id, req)
	if err != nil {
		ctl.record(c.Request.Context(), audit.Entry{Operation: audit.OperationUpdate, RecordID: id, Outcome: audit.OutcomeFailed, Error: err.Error()})
		c.JSON(http.StatusInternalServerError, errorBody{Error: "update failed"})
		return
	}

	if !result.Found {
		ctl.record(c.Request.Context(), audit.Entry{Operation: audit.OperationUpdate, RecordID: id, Outcome: audit.OutcomeNotFound})
		c.Status(http.StatusOK)
		return
	}

	ctl.record(c.Request.Context(), audit.Entry{Operation: audit.OperationUpdate, RecordID: id, PageID: result.Value.ID, Outcome: audit.OutcomeSucceeded})
	ctl.publish(c.Request.Context(), events.Event{Type: events.RecordUpdated, RecordID: id, PageID: result.Value.ID})
	c.JSON(http.StatusOK, result.Value)
}

// Delete handles DELETE requests that archive a record
//
//	@Summary	Delete a record
//	@Tags		records
//	@Param		id	path	string	true	"Record ID"
//	@Success	204
//	@Failure	500	{object}	errorBody
//	@Router		/records/{id} [delete]
func (ctl *Controller) Delete(c *gin.Context) {
	id := c.Param("id")

	result, err := ctl.accessor.Delete(c.Request.Context(), id)
	if err != nil {
		ctl.record(c.Request.Context(), audit.Entry{Operation: audit.OperationDelete, RecordID: id, Outcome: audit.OutcomeFailed, Error: err.Error()})
		c.JSON(http.StatusInternalServerError, errorBody{Error: "deletion failed"})
		return
	}

	entry := audit.Entry{Operation: audit.OperationDelete, RecordID: id, Outcome: audit.OutcomeNotFound}
	if result.Found {
		entry.PageID = result.Value.ID
		entry.Outcome = audit.OutcomeSucceeded
		ctl.publish(c.Request.Context(), events.Event{Type: events.RecordDeleted, RecordID: id, PageID: result.Value.ID})
	}
	ctl.record(c.Request.Context(), entry)

	c.Status(http.StatusNoContent)
}

// History handles GET requests for the operations journaled against a record
//
//	@Summary	List the operations performed on a record
//	@Tags		records
//	@Produce	json
//	@Param		id	path		string	true	"Record ID"
//	@Success	200	{array}		audit.Entry
//	@Failure	500	{object}	errorBody
//	@Router		/records/{id}/history [get]
func (ctl *Controller) History(c *gin.Context) {
	id := c.Param("id")

	entries, err := ctl.audit.ListByRecordID(c.Request.Context(), id)
	if err != nil {
		ctl.logger.Error().Err(err).Str("record_id", id).Msg("failed to list record history")
		c.JSON(http.StatusInternalServerError, errorBody{Error: "history unavailable"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

/* ---- HELPERS ---- */

type errorBody struct {
	Error string `json:"error"`
}

// bindBody decodes a JSON body into req. An empty body leaves req zeroed
func bindBody(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return false
	}
	return true
}

// record writes an audit entry. Failures are only logged
func (ctl *Controller) record(ctx context.Context, entry audit.Entry) {
	if err := ctl.audit.Record(ctx, entry); err != nil {
		ctl.logger.Warn().Err(err).Str("operation", string(entry.Operation)).Str("record_id", entry.RecordID).Msg("failed to record audit entry")
	}
}

// publish sends a record change event. Failures are only logged
func (ctl *Controller) publish(ctx context.Context, event events.Event) {
	if err := ctl.publisher.Publish(ctx, event); err != nil {
		ctl.logger.Warn().Err(err).Str("event", string(event.Type)).Str("page_id", event.PageID).Msg("failed to publish record event")
	}
}
