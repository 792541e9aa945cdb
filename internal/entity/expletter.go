package entity

// LetterData holds the fields extracted from an experience letter.
// Dates are ISO "2006-01-02" strings, derived from parsed calendar dates.
type LetterData struct {
	OrgName        *string  `json:"org_name,omitempty"`
	JobTitle       *string  `json:"job_title,omitempty"`
	EmployeeName   *string  `json:"employee_name,omitempty"`
	StartDate      *string  `json:"start_date,omitempty"`
	EndDate        *string  `json:"end_date,omitempty"`
	DurationYears  *float64 `json:"duration_years,omitempty"`
	ManagerName    *string  `json:"manager_name,omitempty"`
	ManagerContact *string  `json:"manager_contact,omitempty"`
}

// ConsistencyReport is a pure function of the extracted data: boolean checks
// plus human-readable anomalies, never mutated after construction.
type ConsistencyReport struct {
	AllRequiredFieldsPresent bool `json:"all_required_fields_present"`
	DatesValid               bool `json:"dates_valid"`
	DatesLogical             bool `json:"dates_logical"`
	OrganizationNameValid    bool `json:"organization_name_valid"`
	JobTitleValid            bool `json:"job_title_valid"`
	EmployeeNameValid        bool `json:"employee_name_valid"`
	ManagerInfoPresent       bool `json:"manager_info_present"`
}

// ExperienceLetterRecord is the canonical structured output for an experience letter.
type ExperienceLetterRecord struct {
	ExtractedData         LetterData        `json:"extracted_data"`
	FormattingConsistency ConsistencyReport `json:"formatting_consistency"`
	Anomalies             []string          `json:"anomalies"`
	ConfidenceScore       float64           `json:"confidence_score"` // 0..100
	FileProcessed         string            `json:"file_processed,omitempty"`
	RawTextLength         int               `json:"raw_text_length,omitempty"`
	Error                 string            `json:"error,omitempty"`
	RequiresOCR           bool              `json:"requires_ocr,omitempty"`
}
