package records

import (
	"strconv"

	notionapi "github.com/dstotijn/go-notion"
)

// RecordIDOf reads the numeric ID column of a record page
func RecordIDOf(page notionapi.Page) (string, bool) {
	properties, ok := page.Properties.(notionapi.DatabasePageProperties)
	if !ok {
		return "", false
	}

	property, ok := properties[COLUMN_ID]
	if !ok || property.Number == nil {
		return "", false
	}

	return strconv.FormatFloat(*property.Number, 'f', -1, 64), true
}
