package records

import (
	"context"
	"errors"
	"testing"

	notionapi "github.com/dstotijn/go-notion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRemote = errors.New("notion: rate limited")

func TestAccessorCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates page in configured database", func(t *testing.T) {
		store := &fakeStore{}
		accessor := newTestAccessor(store)

		page, err := accessor.Create(ctx, CreateRecordRequest{Company: "T", Campaign: "C"})
		require.NoError(t, err)
		assert.Equal(t, "created-page", page.ID)

		require.Len(t, store.created, 1)
		params := store.created[0]
		assert.Equal(t, notionapi.ParentTypeDatabase, params.ParentType)
		assert.Equal(t, "records-db", params.ParentID)
		require.NotNil(t, params.DatabasePageProperties)

		props := *params.DatabasePageProperties
		assert.Equal(t, DEFAULT_WHERE, textOf(t, props[COLUMN_WHERE]))
		assert.Equal(t, DEFAULT_IMAGE_URL, props[COLUMN_IMAGE].Files[0].External.URL)
	})

	t.Run("Remote failure is a creation failure", func(t *testing.T) {
		store := &fakeStore{createErr: errRemote}
		accessor := newTestAccessor(store)

		_, err := accessor.Create(ctx, CreateRecordRequest{Company: "T"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCreationFailed)
		assert.ErrorIs(t, err, errRemote)
	})
}

func TestAccessorFindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Queries the ID column for equality", func(t *testing.T) {
		store := &fakeStore{queryResults: []notionapi.Page{{ID: "page-123"}, {ID: "page-dup"}}}
		accessor := newTestAccessor(store)

		result, err := accessor.FindByID(ctx, "123")
		require.NoError(t, err)
		require.True(t, result.Found)
		assert.Equal(t, "page-123", result.Value.ID)

		require.Len(t, store.queries, 1)
		assert.Equal(t, "records-db", store.queriedDBs[0])
		filter := store.queries[0].Filter
		require.NotNil(t, filter)
		assert.Equal(t, COLUMN_ID, filter.Property)
		require.NotNil(t, filter.Number)
		require.NotNil(t, filter.Number.Equals)
		assert.Equal(t, 123, *filter.Number.Equals)
	})

	t.Run("Ids beyond 32 bits are still queried", func(t *testing.T) {
		store := &fakeStore{queryResults: []notionapi.Page{{ID: "page-big"}}}
		accessor := newTestAccessor(store)

		result, err := accessor.FindByID(ctx, "3000000000")
		require.NoError(t, err)
		require.True(t, result.Found)
		assert.Equal(t, "page-big", result.Value.ID)

		require.Len(t, store.queries, 1)
		assert.Equal(t, 3000000000, *store.queries[0].Filter.Number.Equals)
	})

	t.Run("Zero matches is not found, not an error", func(t *testing.T) {
		store := &fakeStore{}
		accessor := newTestAccessor(store)

		result, err := accessor.FindByID(ctx, "999")
		require.NoError(t, err)
		assert.False(t, result.Found)
		assert.Len(t, store.queries, 1)
	})

	t.Run("Remote failure is a lookup failure", func(t *testing.T) {
		store := &fakeStore{queryErr: errRemote}
		accessor := newTestAccessor(store)

		result, err := accessor.FindByID(ctx, "1")
		require.Error(t, err)
		assert.False(t, result.Found)
		assert.ErrorIs(t, err, ErrLookupFailed)
	})

	t.Run("Non-numeric ids never match", func(t *testing.T) {
		for _, id := range []string{"abc", "1.5", "NaN", "Infinity", ""} {
			store := &fakeStore{queryResults: []notionapi.Page{{ID: "page"}}}
			accessor := newTestAccessor(store)

			result, err := accessor.FindByID(ctx, id)
			require.NoError(t, err, id)
			assert.False(t, result.Found, id)
			assert.Empty(t, store.queries, id)
		}
	})
}

func TestAccessorUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Only present fields are sent", func(t *testing.T) {
		store := &fakeStore{queryResults: []notionapi.Page{{ID: "page-123"}}}
		accessor := newTestAccessor(store)

		result, err := accessor.Update(ctx, "123", UpdateRecordRequest{Description: "new"})
		require.NoError(t, err)
		require.True(t, result.Found)
		assert.Equal(t, "page-123", result.Value.ID)

		require.Equal(t, []string{"page-123"}, store.updatedIDs)
		props := store.updated[0].DatabasePageProperties
		assert.Len(t, props, 1)
		assert.Equal(t, "new", textOf(t, props[COLUMN_DESCRIPTION]))
		assert.NotContains(t, props, COLUMN_COMPANY)
		assert.NotContains(t, props, COLUMN_CAMPAIGN)
	})

	t.Run("Missing record skips the mutate call", func(t *testing.T) {
		store := &fakeStore{}
		accessor := newTestAccessor(store)

		result, err := accessor.Update(ctx, "999", UpdateRecordRequest{Company: "Updated"})
		require.NoError(t, err)
		assert.False(t, result.Found)
		assert.Empty(t, store.updated)
	})

	t.Run("Lookup failure is an update failure", func(t *testing.T) {
		store := &fakeStore{queryErr: errRemote}
		accessor := newTestAccessor(store)

		_, err := accessor.Update(ctx, "123", UpdateRecordRequest{Company: "Updated"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUpdateFailed)
		assert.ErrorIs(t, err, ErrLookupFailed)
		assert.Empty(t, store.updated)
	})

	t.Run("Mutate failure is an update failure", func(t *testing.T) {
		store := &fakeStore{queryResults: []notionapi.Page{{ID: "page-123"}}, updateErr: errRemote}
		accessor := newTestAccessor(store)

		_, err := accessor.Update(ctx, "123", UpdateRecordRequest{Company: "Updated"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUpdateFailed)
		assert.ErrorIs(t, err, errRemote)

		var opErr *OperationError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "123", opErr.RecordID)
	})
}

func TestAccessorDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Archives the looked up page", func(t *testing.T) {
		store := &fakeStore{queryResults: []notionapi.Page{{ID: "page-123"}}}
		accessor := newTestAccessor(store)

		result, err := accessor.Delete(ctx, "123")
		require.NoError(t, err)
		require.True(t, result.Found)
		assert.Equal(t, Deletion{Object: "block", ID: "page-123", Archived: true}, result.Value)
		assert.Equal(t, []string{"page-123"}, store.deletedIDs)
	})

	t.Run("Missing record skips the archive call", func(t *testing.T) {
		store := &fakeStore{}
		accessor := newTestAccessor(store)

		result, err := accessor.Delete(ctx, "999")
		require.NoError(t, err)
		assert.False(t, result.Found)
		assert.Empty(t, store.deletedIDs)
	})

	t.Run("Archive failure is a deletion failure", func(t *testing.T) {
		store := &fakeStore{queryResults: []notionapi.Page{{ID: "page-123"}}, deleteErr: errRemote}
		accessor := newTestAccessor(store)

		_, err := accessor.Delete(ctx, "123")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDeletionFailed)
		assert.ErrorIs(t, err, errRemote)
	})
}

func TestAccessorRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	accessor := newTestAccessor(store)

	req := CreateRecordRequest{
		Company:      "Acme",
		Campaign:     "Spring",
		Description:  "Launch post",
		PlannedDate:  "2026-11-02",
		Where:        "Instagram",
		Language:     "English",
		Content:      "Body",
		ImageFile:    &ImageFile{Name: "cover.jpg", URL: "https://example.com/cover.jpg"},
		ImageContent: "A cover",
	}

	created, err := accessor.Create(ctx, req)
	require.NoError(t, err)

	// The remote store assigns the ID column; serve the created page back from a lookup
	store.queryResults = []notionapi.Page{created}
	found, err := accessor.FindByID(ctx, "1")
	require.NoError(t, err)
	require.True(t, found.Found)

	props, ok := found.Value.Properties.(notionapi.DatabasePageProperties)
	require.True(t, ok)
	assert.Equal(t, "Acme", textOf(t, props[COLUMN_COMPANY]))
	assert.Equal(t, "Spring", textOf(t, props[COLUMN_CAMPAIGN]))
	assert.Equal(t, "Launch post", textOf(t, props[COLUMN_DESCRIPTION]))
	assert.Equal(t, "Instagram", textOf(t, props[COLUMN_WHERE]))
	assert.Equal(t, "English", props[COLUMN_LANGUAGE].Select.Name)
	assert.Equal(t, "Body", textOf(t, props[COLUMN_CONTENT]))
	assert.Equal(t, "cover.jpg", props[COLUMN_IMAGE].Files[0].Name)
	assert.Equal(t, "A cover", textOf(t, props[COLUMN_IMAGE_CONTENT]))
	assert.Equal(t, 2, props[COLUMN_PLANNED_DATE].Date.Start.Day())
}

func TestParseRecordID(t *testing.T) {
	tests := []struct {
		id       string
		expected int
		ok       bool
	}{
		{"123", 123, true},
		{" 42 ", 42, true},
		{"7.0", 7, true},
		{"-3", -3, true},
		{"1e2", 100, true},
		{"1.5", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"3000000000", 3000000000, true},
		{"-3000000000", -3000000000, true},
		{"1e20", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			id, ok := parseRecordID(tt.id)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, id)
		})
	}
}
