package records

// ImageFile references an externally hosted image. It is only usable when URL is set
type ImageFile struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Usable reports whether the image can be written to the Image column
func (f *ImageFile) Usable() bool {
	return f != nil && f.URL != ""
}

// CreateRecordRequest is the body accepted when creating a record. Every field is optional
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

// UpdateRecordRequest is the body accepted when updating a record. Empty fields are left untouched
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
