package records

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	notionapi "github.com/dstotijn/go-notion"
	"github.com/rs/zerolog"
)

// Store is the part of the Notion API the accessor needs. *notionapi.Client satisfies it
type Store interface {
	QueryDatabase(ctx context.Context, id string, query *notionapi.DatabaseQuery) (notionapi.DatabaseQueryResponse, error)
	CreatePage(ctx context.Context, params notionapi.CreatePageParams) (notionapi.Page, error)
	UpdatePage(ctx context.Context, pageID string, params notionapi.UpdatePageParams) (notionapi.Page, error)
	DeleteBlock(ctx context.Context, blockID string) (notionapi.Block, error)
}

// Deletion is the confirmation returned once a record page is archived
type Deletion struct {
	Object   string `json:"object"`
	ID       string `json:"id"`
	Archived bool   `json:"archived"`
}

// Accessor performs record operations against a single Notion database.
// Records are addressed by the numeric ID column; the page id needed for
// mutation is always taken from a fresh lookup
type Accessor struct {
	store      Store
	databaseID string
	defaults   Defaults
	logger     zerolog.Logger
	now        func() time.Time
}

// NewAccessor creates an accessor for the database with the given id
func NewAccessor(store Store, databaseID string, defaults Defaults, logger zerolog.Logger) *Accessor {
	return &Accessor{
		store:      store,
		databaseID: databaseID,
		defaults:   defaults,
		logger:     logger.With().Str("module", "records").Logger(),
		now:        time.Now,
	}
}

// Create writes a new record page with defaults for every missing field
func (a *Accessor) Create(ctx context.Context, req CreateRecordRequest) (notionapi.Page, error) {
	properties := BuildCreateProperties(req, a.defaults, a.now())

	page, err := a.store.CreatePage(ctx, notionapi.CreatePageParams{
		ParentType:             notionapi.ParentTypeDatabase,
		ParentID:               a.databaseID,
		DatabasePageProperties: &properties,
	})
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to create record")
		return notionapi.Page{}, newOperationError(ErrCreationFailed, "", err)
	}

	a.logger.Info().Str("page_id", page.ID).Msg("record created")
	return page, nil
}

// FindByID returns the first record whose ID column equals id. An id that is
// not an integer cannot match any row and is reported as not found
func (a *Accessor) FindByID(ctx context.Context, id string) (Result[notionapi.Page], error) {
	numericID, ok := parseRecordID(id)
	if !ok {
		a.logger.Info().Str("record_id", id).Msg("record id is not numeric, no record can match")
		return NotFound[notionapi.Page](), nil
	}

	response, err := a.store.QueryDatabase(ctx, a.databaseID, buildFindByIDQuery(numericID))
	if err != nil {
		a.logger.Error().Err(err).Str("record_id", id).Msg("failed to look up record")
		return NotFound[notionapi.Page](), newOperationError(ErrLookupFailed, id, err)
	}

	if len(response.Results) == 0 {
		a.logger.Info().Str("record_id", id).Msg("record not found")
		return NotFound[notionapi.Page](), nil
	}

	return Found(response.Results[0]), nil
}

// Update overlays the fields set in req onto the record with the given id.
// A missing record is skipped without calling Notion
func (a *Accessor) Update(ctx context.Context, id string, req UpdateRecordRequest) (Result[notionapi.Page], error) {
	found, err := a.FindByID(ctx, id)
	if err != nil {
		return NotFound[notionapi.Page](), newOperationError(ErrUpdateFailed, id, err)
	}
	if !found.Found {
		a.logger.Info().Str("record_id", id).Msg("no record to update")
		return NotFound[notionapi.Page](), nil
	}

	page, err := a.store.UpdatePage(ctx, found.Value.ID, notionapi.UpdatePageParams{
		DatabasePageProperties: BuildUpdateProperties(req),
	})
	if err != nil {
		a.logger.Error().Err(err).Str("record_id", id).Str("page_id", found.Value.ID).Msg("failed to update record")
		return NotFound[notionapi.Page](), newOperationError(ErrUpdateFailed, id, err)
	}

	a.logger.Info().Str("record_id", id).Str("page_id", page.ID).Msg("record updated")
	return Found(page), nil
}

// Delete archives the record with the given id.
// A missing record is skipped without calling Notion
func (a *Accessor) Delete(ctx context.Context, id string) (Result[Deletion], error) {
	found, err := a.FindByID(ctx, id)
	if err != nil {
		return NotFound[Deletion](), newOperationError(ErrDeletionFailed, id, err)
	}
	if !found.Found {
		return NotFound[Deletion](), nil
	}

	pageID := found.Value.ID
	block, err := a.store.DeleteBlock(ctx, pageID)
	if err != nil {
		a.logger.Error().Err(err).Str("record_id", id).Str("page_id", pageID).Msg("failed to delete record")
		return NotFound[Deletion](), newOperationError(ErrDeletionFailed, id, err)
	}

	a.logger.Info().Str("record_id", id).Str("page_id", pageID).Msg("record deleted")
	return Found(deletionFrom(pageID, block)), nil
}

/* ---- HELPERS ---- */

// parseRecordID reads a user-facing id the way the ID number column stores it
func parseRecordID(id string) (int, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(id), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	if value != math.Trunc(value) || value >= math.MaxInt64 || value < math.MinInt64 {
		return 0, false
	}
	return int(value), true
}

// buildFindByIDQuery constructs a query matching the ID number column exactly
func buildFindByIDQuery(id int) *notionapi.DatabaseQuery {
	return &notionapi.DatabaseQuery{
		Filter: &notionapi.DatabaseQueryFilter{
			Property: COLUMN_ID,
			DatabaseQueryPropertyFilter: notionapi.DatabaseQueryPropertyFilter{
				Number: &notionapi.NumberDatabaseQueryFilter{
					Equals: &id,
				},
			},
		},
	}
}

func deletionFrom(pageID string, block notionapi.Block) Deletion {
	if block == nil {
		return Deletion{Object: "block", ID: pageID, Archived: true}
	}
	return Deletion{Object: "block", ID: block.ID(), Archived: block.Archived()}
}
