package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiredocs/internal/common"
	"hiredocs/internal/entity"
	"hiredocs/internal/nlp"
)

const sampleResume = `John Smith
john.smith@example.com
+1 555-123-4567
linkedin.com/in/johnsmith
Austin, TX

Experience
Acme Corp 2019 - 2022
Senior Developer
• Built billing pipeline in Python
• Led a team of four engineers

Widget Works 2016 - 2019
• Maintained React frontend

Education
University of Texas
Bachelor of Computer Science
2012 - 2016
GPA: 3.8

Skills
Python, React, SQL, Leadership, Communication

Certifications
• AWS Certified Solutions Architect

Languages
• English (native)
• Spanish (conversational)`

func TestExtractEntities_PersonalInfo(t *testing.T) {
	ents := ExtractEntities(sampleResume, "John_Smith_Resume.pdf", nil)
	info := ents.PersonalInfo

	require.NotNil(t, info.Name)
	assert.Equal(t, "John Smith", *info.Name)
	require.NotNil(t, info.Email)
	assert.Equal(t, "john.smith@example.com", *info.Email)
	require.NotNil(t, info.Phone)
	require.NotNil(t, info.LinkedIn)
	assert.Equal(t, "johnsmith", *info.LinkedIn)
	require.NotNil(t, info.Location)
	assert.Equal(t, "Austin, TX", *info.Location)
}

func TestExtractEntities_NameFromFilename(t *testing.T) {
	ents := ExtractEntities("some text without any name lines", "Jane Doe_resume.pdf", nil)
	require.NotNil(t, ents.PersonalInfo.Name)
	assert.Equal(t, "Jane Doe", *ents.PersonalInfo.Name)
}

func TestExtractEntities_Education(t *testing.T) {
	ents := ExtractEntities(sampleResume, "resume.pdf", nil)

	require.Len(t, ents.Education, 1)
	edu := ents.Education[0]
	assert.Equal(t, "University of Texas", edu.Institution)
	require.NotNil(t, edu.Degree)
	assert.Equal(t, "Bachelor", *edu.Degree)
	require.NotNil(t, edu.Field)
	assert.Equal(t, "Computer Science", *edu.Field)
	require.NotNil(t, edu.Date)
	assert.Equal(t, "2012 - 2016", *edu.Date)
	require.NotNil(t, edu.GPA)
	assert.Equal(t, "3.8", *edu.GPA)
}

func TestExtractEntities_Experience(t *testing.T) {
	ents := ExtractEntities(sampleResume, "resume.pdf", nil)

	require.Len(t, ents.Experience, 2)
	first := ents.Experience[0]
	assert.Equal(t, "Acme Corp", first.Company)
	require.NotNil(t, first.DateRange)
	assert.Equal(t, "2019 - 2022", *first.DateRange)
	require.NotNil(t, first.Position)
	assert.Equal(t, "Senior Developer", *first.Position)
	assert.Len(t, first.Achievements, 2)

	second := ents.Experience[1]
	assert.Equal(t, "Widget Works", second.Company)
	assert.Len(t, second.Achievements, 1)
}

func TestExtractEntities_SkillsScenario(t *testing.T) {
	text := `Candidate Profile

Skills
Python, React, Leadership`

	ents := ExtractEntities(text, "candidate.pdf", nil)

	assert.Contains(t, ents.Skills.Technical, "Python")
	assert.Contains(t, ents.Skills.Technical, "React")
	assert.Contains(t, ents.Skills.Soft, "Leadership")
}

func TestExtractEntities_CertificationsAndLanguages(t *testing.T) {
	ents := ExtractEntities(sampleResume, "resume.pdf", nil)

	assert.Contains(t, ents.Certifications, "AWS Certified Solutions Architect")
	assert.Contains(t, ents.Languages, "English (native)")
	assert.Contains(t, ents.Languages, "Spanish (conversational)")
}

func TestClassify(t *testing.T) {
	t.Run("filename resume", func(t *testing.T) {
		c := Classify("john_resume.pdf", "short text", "PDF")
		assert.Equal(t, TypeResume, c.Type)
		assert.Equal(t, 0.8, c.Confidence)
	})

	t.Run("content overrides unknown filename", func(t *testing.T) {
		c := Classify("document.pdf", "experience education skills work employment history", "PDF")
		assert.Equal(t, TypeResume, c.Type)
		assert.Greater(t, c.Confidence, 0.5)
	})

	t.Run("empty text", func(t *testing.T) {
		c := Classify("document.pdf", "", "PDF")
		assert.Equal(t, TypeUnknown, c.Type)
		assert.Zero(t, c.Confidence)
	})

	t.Run("cover letter", func(t *testing.T) {
		c := Classify("cover_letter.pdf", "Dear hiring manager, I am applying for the position", "PDF")
		assert.Equal(t, TypeCover, c.Type)
	})
}

func TestAnonymize(t *testing.T) {
	ents := ExtractEntities(sampleResume, "resume.pdf", nil)
	anon := Anonymize(ents)

	assert.Equal(t, "[NAME REDACTED]", *anon.PersonalInfo.Name)
	assert.Equal(t, "[EMAIL REDACTED]", *anon.PersonalInfo.Email)
	assert.Equal(t, "[INSTITUTION REDACTED]", anon.Education[0].Institution)
	assert.Equal(t, "[COMPANY REDACTED]", anon.Experience[0].Company)
	assert.Equal(t, "[DATE REDACTED]", *anon.Experience[0].DateRange)

	// position and skills survive for blind review
	assert.Equal(t, "Senior Developer", *anon.Experience[0].Position)
	assert.Equal(t, ents.Skills.Technical, anon.Skills.Technical)

	// original untouched
	assert.Equal(t, "John Smith", *ents.PersonalInfo.Name)
	assert.Equal(t, "Acme Corp", ents.Experience[0].Company)
}

func testScoringConfig() common.ScoringConfig {
	return common.ScoringConfig{
		SkillsWeight:     0.4,
		ExperienceWeight: 0.3,
		EducationWeight:  0.2,
		TenureWeight:     0.05,
		GrowthWeight:     0.05,
		PhDScore:         100,
		MasterScore:      90,
		BachelorScore:    80,
		DefaultScore:     50,
	}
}

func TestScorer_Fit(t *testing.T) {
	scorer := NewScorer(testScoringConfig(), nlp.Unavailable{})
	ents := ExtractEntities(sampleResume, "resume.pdf", nil)

	scores := scorer.Fit(ents, "Looking for a Python and React developer with leadership skills and a Bachelor degree")

	assert.Greater(t, scores.SkillsMatch, 0.0)
	assert.Equal(t, 50.0, scores.ExperienceRelevance) // neutral without a tokenizer
	assert.Equal(t, 80.0, scores.EducationMatch)
	assert.Equal(t, 80.0, scores.TenureStability) // 70 + 2 jobs * 5
	assert.Equal(t, 70.0, scores.GrowthTrajectory)
	assert.Greater(t, scores.TotalFit, 0.0)
}

func TestScorer_Fit_NoJobDescription(t *testing.T) {
	scorer := NewScorer(testScoringConfig(), nil)
	scores := scorer.Fit(entity.ResumeEntities{}, "")
	assert.Zero(t, scores.TotalFit)
	assert.Zero(t, scores.SkillsMatch)
}

func TestRankAndShortlist(t *testing.T) {
	mk := func(name string, fit float64) *entity.ResumeRecord {
		return &entity.ResumeRecord{Filename: name, FitScores: &entity.FitScores{TotalFit: fit}}
	}
	candidates := []*entity.ResumeRecord{mk("a.pdf", 55), mk("b.pdf", 88), mk("c.pdf", 72)}

	ranked := Rank(candidates)
	require.Len(t, ranked, 3)
	assert.Equal(t, "b.pdf", ranked[0].Filename)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "a.pdf", ranked[2].Filename)
	assert.Equal(t, 3, ranked[2].Rank)

	shortlisted := Shortlist(ranked, 70, 0)
	require.Len(t, shortlisted, 2)
	assert.True(t, *ranked[0].Shortlisted)
	assert.True(t, *ranked[1].Shortlisted)
	assert.False(t, *ranked[2].Shortlisted)

	capped := Shortlist(ranked, 70, 1)
	assert.Len(t, capped, 1)
}

func TestExtractSection_MissingHeader(t *testing.T) {
	assert.Empty(t, extractSection("no sections here", []string{"Education"}, nil))
}
