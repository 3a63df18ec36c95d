package records

import (
	"testing"

	notionapi "github.com/dstotijn/go-notion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaColumns = []string{
	COLUMN_COMPANY,
	COLUMN_CAMPAIGN,
	COLUMN_DESCRIPTION,
	COLUMN_PLANNED_DATE,
	COLUMN_WHERE,
	COLUMN_LANGUAGE,
	COLUMN_CONTENT,
	COLUMN_IMAGE,
}

func textOf(t *testing.T, prop notionapi.DatabasePageProperty) string {
	t.Helper()

	texts := prop.RichText
	if prop.Title != nil {
		texts = prop.Title
	}
	require.Len(t, texts, 1)
	require.NotNil(t, texts[0].Text)
	return texts[0].Text.Content
}

func TestBuildCreateProperties(t *testing.T) {
	tests := []struct {
		name string
		req  CreateRecordRequest
	}{
		{name: "Empty payload", req: CreateRecordRequest{}},
		{name: "Company and campaign only", req: CreateRecordRequest{Company: "T", Campaign: "C"}},
		{
			name: "Full payload",
			req: CreateRecordRequest{
				Company:      "Acme",
				Campaign:     "Spring",
				Description:  "Launch post",
				PlannedDate:  "2026-11-02",
				Where:        "Instagram",
				Language:     "English",
				Content:      "Body",
				ImageFile:    &ImageFile{Name: "cover.jpg", URL: "https://example.com/cover.jpg"},
				ImageContent: "A cover",
			},
		},
		{name: "Image without url", req: CreateRecordRequest{ImageFile: &ImageFile{Name: "orphan.jpg"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := BuildCreateProperties(tt.req, DefaultValues(), fixedNow)

			for _, column := range schemaColumns {
				assert.Contains(t, props, column, "create properties must always contain %s", column)
			}
		})
	}
}

func TestBuildCreatePropertiesDefaults(t *testing.T) {
	props := BuildCreateProperties(CreateRecordRequest{Company: "T", Campaign: "C"}, DefaultValues(), fixedNow)

	assert.Equal(t, "T", textOf(t, props[COLUMN_COMPANY]))
	assert.Equal(t, "C", textOf(t, props[COLUMN_CAMPAIGN]))
	assert.Equal(t, "", textOf(t, props[COLUMN_DESCRIPTION]))
	assert.Equal(t, "", textOf(t, props[COLUMN_CONTENT]))
	assert.Equal(t, DEFAULT_WHERE, textOf(t, props[COLUMN_WHERE]))

	require.NotNil(t, props[COLUMN_LANGUAGE].Select)
	assert.Equal(t, DEFAULT_LANGUAGE, props[COLUMN_LANGUAGE].Select.Name)

	require.NotNil(t, props[COLUMN_PLANNED_DATE].Date)
	assert.True(t, fixedNow.Equal(props[COLUMN_PLANNED_DATE].Date.Start.Time))

	image := props[COLUMN_IMAGE].Files
	require.Len(t, image, 1)
	assert.Equal(t, DEFAULT_IMAGE_NAME, image[0].Name)
	require.NotNil(t, image[0].External)
	assert.Equal(t, DEFAULT_IMAGE_URL, image[0].External.URL)

	assert.NotContains(t, props, COLUMN_IMAGE_CONTENT)
}

func TestBuildCreatePropertiesSuppliedValues(t *testing.T) {
	req := CreateRecordRequest{
		Company:       "Acme",
		PlannedDate:   "2026-11-02T15:04:05Z",
		Language:      "English",
		LanguageColor: "blue",
		ImageFile:     &ImageFile{URL: "https://example.com/cover.jpg"},
		ImageContent:  "A cover",
	}

	props := BuildCreateProperties(req, DefaultValues(), fixedNow)

	assert.Equal(t, "Acme", textOf(t, props[COLUMN_COMPANY]))
	assert.Equal(t, "English", props[COLUMN_LANGUAGE].Select.Name)
	assert.Equal(t, notionapi.Color("blue"), props[COLUMN_LANGUAGE].Select.Color)
	assert.Equal(t, 2026, props[COLUMN_PLANNED_DATE].Date.Start.Year())
	assert.Equal(t, 15, props[COLUMN_PLANNED_DATE].Date.Start.Hour())

	// A usable image without a name falls back to the default name
	assert.Equal(t, DEFAULT_IMAGE_NAME, props[COLUMN_IMAGE].Files[0].Name)
	assert.Equal(t, "https://example.com/cover.jpg", props[COLUMN_IMAGE].Files[0].External.URL)

	assert.Equal(t, "A cover", textOf(t, props[COLUMN_IMAGE_CONTENT]))
}

func TestBuildCreatePropertiesInvalidPlannedDate(t *testing.T) {
	props := BuildCreateProperties(CreateRecordRequest{PlannedDate: "next tuesday"}, DefaultValues(), fixedNow)

	assert.True(t, fixedNow.Equal(props[COLUMN_PLANNED_DATE].Date.Start.Time))
}

func TestBuildUpdateProperties(t *testing.T) {
	tests := []struct {
		name     string
		req      UpdateRecordRequest
		expected []string
	}{
		{
			name:     "Empty payload",
			req:      UpdateRecordRequest{},
			expected: []string{},
		},
		{
			name:     "Description only",
			req:      UpdateRecordRequest{Description: "new"},
			expected: []string{COLUMN_DESCRIPTION},
		},
		{
			name:     "Company and language",
			req:      UpdateRecordRequest{Company: "Acme", Language: "Spanish"},
			expected: []string{COLUMN_COMPANY, COLUMN_LANGUAGE},
		},
		{
			name:     "Image without url is ignored",
			req:      UpdateRecordRequest{ImageFile: &ImageFile{Name: "orphan.jpg"}},
			expected: []string{},
		},
		{
			name:     "Invalid planned date is ignored",
			req:      UpdateRecordRequest{PlannedDate: "soon", Where: "Site"},
			expected: []string{COLUMN_WHERE},
		},
		{
			name: "Every field",
			req: UpdateRecordRequest{
				Company:      "Acme",
				Campaign:     "Spring",
				Description:  "Launch post",
				PlannedDate:  "2026-11-02",
				Where:        "Instagram",
				Language:     "English",
				Content:      "Body",
				ImageFile:    &ImageFile{Name: "cover.jpg", URL: "https://example.com/cover.jpg"},
				ImageContent: "A cover",
			},
			expected: append(append([]string{}, schemaColumns...), COLUMN_IMAGE_CONTENT),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := BuildUpdateProperties(tt.req)

			require.NotNil(t, props)
			keys := make([]string, 0, len(props))
			for key := range props {
				keys = append(keys, key)
			}
			assert.ElementsMatch(t, tt.expected, keys)
		})
	}
}

func TestBuildUpdatePropertiesImage(t *testing.T) {
	props := BuildUpdateProperties(UpdateRecordRequest{ImageFile: &ImageFile{URL: "https://example.com/new.jpg"}})

	require.Len(t, props[COLUMN_IMAGE].Files, 1)
	assert.Equal(t, "", props[COLUMN_IMAGE].Files[0].Name)
	assert.Equal(t, notionapi.FileTypeExternal, props[COLUMN_IMAGE].Files[0].Type)
	assert.Equal(t, "https://example.com/new.jpg", props[COLUMN_IMAGE].Files[0].External.URL)
}

func TestParsePlannedDate(t *testing.T) {
	tests := []struct {
		value   string
		ok      bool
		hasTime bool
	}{
		{"2026-11-02", true, false},
		{"2026-11-02T15:04:05-03:00", true, true},
		{"  2026-11-02  ", true, false},
		{"", false, false},
		{"02/11/2026", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			prop, ok := parsePlannedDate(tt.value)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.hasTime, prop.Date.Start.HasTime())
			}
		})
	}
}
