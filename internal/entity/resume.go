package entity

import "time"

// Classification describes what kind of document the text looks like.
type Classification struct {
	Type        string  `json:"type"`
	Confidence  float64 `json:"confidence"`
	Format      string  `json:"format"`
	Language    string  `json:"language"`
	PageCount   int     `json:"page_count"`
	IsScannable bool    `json:"is_scannable"`
}

// PersonalInfo holds identifying details pulled from the top of a resume.
type PersonalInfo struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	GitHub   *string `json:"github,omitempty"`
	Location *string `json:"location,omitempty"`
}

// EducationEntry is one education record from the resume's education section.
type EducationEntry struct {
	Institution string  `json:"institution"`
	Degree      *string `json:"degree,omitempty"`
	Field       *string `json:"field,omitempty"`
	Date        *string `json:"date,omitempty"`
	GPA         *string `json:"gpa,omitempty"`
}

// ExperienceEntry is one job from the resume's experience section.
type ExperienceEntry struct {
	Company      string   `json:"company"`
	Position     *string  `json:"position,omitempty"`
	DateRange    *string  `json:"date_range,omitempty"`
	Achievements []string `json:"achievements"`
}

// Skills splits detected skills into the two fixed vocabularies.
type Skills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// ResumeEntities is the full entity set extracted from a resume.
type ResumeEntities struct {
	PersonalInfo   PersonalInfo      `json:"personal_info"`
	Education      []EducationEntry  `json:"education"`
	Experience     []ExperienceEntry `json:"experience"`
	Skills         Skills            `json:"skills"`
	Certifications []string          `json:"certifications"`
	Languages      []string          `json:"languages"`
}

// FitScores holds the weighted candidate-fit sub-scores on a 0..100 scale.
type FitScores struct {
	SkillsMatch         float64 `json:"skills_match"`
	ExperienceRelevance float64 `json:"experience_relevance"`
	EducationMatch      float64 `json:"education_match"`
	TenureStability     float64 `json:"tenure_stability"`
	GrowthTrajectory    float64 `json:"growth_trajectory"`
	TotalFit            float64 `json:"total_fit"`
}

// ResumeRecord is the canonical structured output for a processed resume.
type ResumeRecord struct {
	ID             string          `json:"id"`
	FilePath       string          `json:"file_path"`
	Filename       string          `json:"filename"`
	ProcessedAt    time.Time       `json:"processed_at"`
	Classification *Classification `json:"classification,omitempty"`
	IsResume       bool            `json:"is_resume"`
	Entities       *ResumeEntities `json:"entities,omitempty"`
	Anonymized     *ResumeEntities `json:"anonymized,omitempty"`
	FitScores      *FitScores      `json:"fit_scores,omitempty"`
	Rank           int             `json:"rank,omitempty"`
	Shortlisted    *bool           `json:"shortlisted,omitempty"`
	Error          string          `json:"error,omitempty"`
	RequiresOCR    bool            `json:"requires_ocr,omitempty"`
}
