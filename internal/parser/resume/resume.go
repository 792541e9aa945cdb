// Package resume extracts structured candidate data from resume text:
// classification, personal info, education and experience histories, skill
// vocabularies, and configurable candidate-fit scoring.
package resume

import (
	"log/slog"

	"hiredocs/internal/entity"
)

// ExtractEntities pulls the full entity set from resume text. Individual
// sections that cannot be located simply come back empty.
func ExtractEntities(text, filename string, logger *slog.Logger) entity.ResumeEntities {
	if logger == nil {
		logger = slog.Default()
	}
	if text == "" {
		return entity.ResumeEntities{}
	}

	ents := entity.ResumeEntities{
		PersonalInfo:   extractPersonalInfo(text, filename),
		Education:      extractEducation(text),
		Experience:     extractExperience(text),
		Skills:         extractSkills(text),
		Certifications: extractCertifications(text),
		Languages:      extractLanguages(text),
	}

	logger.Debug("resume entities extracted",
		"education", len(ents.Education),
		"experience", len(ents.Experience),
		"technical_skills", len(ents.Skills.Technical),
		"soft_skills", len(ents.Skills.Soft))
	return ents
}
