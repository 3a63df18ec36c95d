package records

import (
	"context"
	"io"
	"time"

	notionapi "github.com/dstotijn/go-notion"
	"github.com/rs/zerolog"
)

// fakeStore records every call made against it and returns canned results
type fakeStore struct {
	queryResults []notionapi.Page
	queryErr     error
	createErr    error
	updateErr    error
	deleteErr    error

	queries    []notionapi.DatabaseQuery
	queriedDBs []string
	created    []notionapi.CreatePageParams
	updated    []notionapi.UpdatePageParams
	updatedIDs []string
	deletedIDs []string
}

func (s *fakeStore) QueryDatabase(_ context.Context, id string, query *notionapi.DatabaseQuery) (notionapi.DatabaseQueryResponse, error) {
	s.queriedDBs = append(s.queriedDBs, id)
	s.queries = append(s.queries, *query)
	if s.queryErr != nil {
		return notionapi.DatabaseQueryResponse{}, s.queryErr
	}
	return notionapi.DatabaseQueryResponse{Results: s.queryResults}, nil
}

func (s *fakeStore) CreatePage(_ context.Context, params notionapi.CreatePageParams) (notionapi.Page, error) {
	s.created = append(s.created, params)
	if s.createErr != nil {
		return notionapi.Page{}, s.createErr
	}
	return notionapi.Page{ID: "created-page", Properties: *params.DatabasePageProperties}, nil
}

func (s *fakeStore) UpdatePage(_ context.Context, pageID string, params notionapi.UpdatePageParams) (notionapi.Page, error) {
	s.updatedIDs = append(s.updatedIDs, pageID)
	s.updated = append(s.updated, params)
	if s.updateErr != nil {
		return notionapi.Page{}, s.updateErr
	}
	return notionapi.Page{ID: pageID, Properties: params.DatabasePageProperties}, nil
}

func (s *fakeStore) DeleteBlock(_ context.Context, blockID string) (notionapi.Block, error) {
	s.deletedIDs = append(s.deletedIDs, blockID)
	if s.deleteErr != nil {
		return nil, s.deleteErr
	}
	return &archivedBlock{id: blockID}, nil
}

// archivedBlock is a block as returned by a successful delete call
type archivedBlock struct {
	notionapi.ParagraphBlock
	id string
}

func (b *archivedBlock) ID() string     { return b.id }
func (b *archivedBlock) Archived() bool { return true }

var fixedNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func newTestAccessor(store *fakeStore) *Accessor {
	accessor := NewAccessor(store, "records-db", DefaultValues(), zerolog.New(io.Discard))
	accessor.now = func() time.Time { return fixedNow }
	return accessor
}
