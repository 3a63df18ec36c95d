package records

import (
	"strings"
	"time"

	notionapi "github.com/dstotijn/go-notion"
)

// BuildCreateProperties maps a create request onto the full column set of the
// records database. Every column gets an entry, missing fields fall back to the
// configured defaults and the planned date falls back to now
func BuildCreateProperties(req CreateRecordRequest, defaults Defaults, now time.Time) notionapi.DatabasePageProperties {
	properties := notionapi.DatabasePageProperties{
		COLUMN_COMPANY:     titleProperty(orDefault(req.Company, defaults.Company)),
		COLUMN_CAMPAIGN:    richTextProperty(orDefault(req.Campaign, defaults.Campaign)),
		COLUMN_DESCRIPTION: richTextProperty(orDefault(req.Description, defaults.Description)),
		COLUMN_WHERE:       richTextProperty(orDefault(req.Where, defaults.Where)),
		COLUMN_LANGUAGE:    selectProperty(orDefault(req.Language, defaults.Language), req.LanguageColor),
		COLUMN_CONTENT:     richTextProperty(orDefault(req.Content, defaults.Content)),
	}

	if planned, ok := parsePlannedDate(req.PlannedDate); ok {
		properties[COLUMN_PLANNED_DATE] = planned
	} else {
		properties[COLUMN_PLANNED_DATE] = dateProperty(now, true)
	}

	if req.ImageFile.Usable() {
		properties[COLUMN_IMAGE] = imageProperty(orDefault(req.ImageFile.Name, defaults.ImageName), req.ImageFile.URL)
	} else {
		properties[COLUMN_IMAGE] = imageProperty(defaults.ImageName, defaults.ImageURL)
	}

	// The caption has no default, so it is only written when given
	if req.ImageContent != "" {
		properties[COLUMN_IMAGE_CONTENT] = richTextProperty(req.ImageContent)
	}

	return properties
}

// BuildUpdateProperties maps an update request onto only the columns it sets.
// Columns without an entry keep their stored value
func BuildUpdateProperties(req UpdateRecordRequest) notionapi.DatabasePageProperties {
	properties := notionapi.DatabasePageProperties{}

	if req.Company != "" {
		properties[COLUMN_COMPANY] = titleProperty(req.Company)
	}

	if req.Campaign != "" {
		properties[COLUMN_CAMPAIGN] = richTextProperty(req.Campaign)
	}

	if req.Description != "" {
		properties[COLUMN_DESCRIPTION] = richTextProperty(req.Description)
	}

	if planned, ok := parsePlannedDate(req.PlannedDate); ok {
		properties[COLUMN_PLANNED_DATE] = planned
	}

	if req.Where != "" {
		properties[COLUMN_WHERE] = richTextProperty(req.Where)
	}

	if req.Language != "" {
		properties[COLUMN_LANGUAGE] = selectProperty(req.Language, "")
	}

	if req.Content != "" {
		properties[COLUMN_CONTENT] = richTextProperty(req.Content)
	}

	if req.ImageFile.Usable() {
		properties[COLUMN_IMAGE] = imageProperty(req.ImageFile.Name, req.ImageFile.URL)
	}

	if req.ImageContent != "" {
		properties[COLUMN_IMAGE_CONTENT] = richTextProperty(req.ImageContent)
	}

	return properties
}

/* ---- PROPERTY HELPERS ---- */

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func richText(content string) []notionapi.RichText {
	return []notionapi.RichText{
		{
			Type: notionapi.RichTextTypeText,
			Text: &notionapi.Text{Content: content},
		},
	}
}

func titleProperty(content string) notionapi.DatabasePageProperty {
	return notionapi.DatabasePageProperty{Title: richText(content)}
}

func richTextProperty(content string) notionapi.DatabasePageProperty {
	return notionapi.DatabasePageProperty{RichText: richText(content)}
}

func selectProperty(name, color string) notionapi.DatabasePageProperty {
	return notionapi.DatabasePageProperty{
		Select: &notionapi.SelectOptions{Name: name, Color: notionapi.Color(color)},
	}
}

func dateProperty(t time.Time, hasTime bool) notionapi.DatabasePageProperty {
	return notionapi.DatabasePageProperty{
		Date: &notionapi.Date{Start: notionapi.NewDateTime(t, hasTime)},
	}
}

func imageProperty(name, url string) notionapi.DatabasePageProperty {
	return notionapi.DatabasePageProperty{
		Files: []notionapi.File{
			{
				Name:     name,
				Type:     notionapi.FileTypeExternal,
				External: &notionapi.FileExternal{URL: url},
			},
		},
	}
}

// parsePlannedDate accepts an RFC 3339 timestamp or a plain date
func parsePlannedDate(value string) (notionapi.DatabasePageProperty, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return notionapi.DatabasePageProperty{}, false
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return dateProperty(t, true), true
	}
	if t, err := time.Parse(DATE_FORMAT, value); err == nil {
		return dateProperty(t, false), true
	}

	return notionapi.DatabasePageProperty{}, false
}
