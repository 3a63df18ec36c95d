package records

const (
	// Record Database Column Names
	COLUMN_COMPANY       = "Company"
	COLUMN_CAMPAIGN      = "Campaign"
	COLUMN_DESCRIPTION   = "Description"
	COLUMN_PLANNED_DATE  = "PlannedDate"
	COLUMN_WHERE         = "Where"
	COLUMN_LANGUAGE      = "Language"
	COLUMN_CONTENT       = "Content"
	COLUMN_IMAGE         = "Image"
	COLUMN_IMAGE_CONTENT = "ImageContent"
	COLUMN_ID            = "ID"

	// Fallback values used when a record is created without them
	DEFAULT_WHERE      = "Linkedin"
	DEFAULT_LANGUAGE   = "Portuguese"
	DEFAULT_IMAGE_NAME = "Image from URL"
	DEFAULT_IMAGE_URL  = "https://unsplash.com/pt-br/fotografias/um-close-up-de-um-gato-em-uma-cama-gz0rGe7mhL8"

	// Accepted planned date layouts
	DATE_FORMAT = "2006-01-02"
)
