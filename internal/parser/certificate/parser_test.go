package certificate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiredocs/internal/entity"
	"hiredocs/internal/nlp"
)

type stubRecognizer struct {
	entities nlp.Entities
}

func (stubRecognizer) Available() bool                 { return true }
func (s stubRecognizer) Recognize(string) nlp.Entities { return s.entities }

func TestParse_DegreeCertificate(t *testing.T) {
	text := `Bachelor of Computer Science
University of Waterloo
GPA: 3.8/4.0
Conferred 2019-06-15`

	rec := Parse(text, nlp.Unavailable{}, nil)

	require.NotNil(t, rec.University)
	assert.Equal(t, "Waterloo", *rec.University)
	assert.Equal(t, entity.MethodRegex, rec.ExtractionMethods["university"])
	assert.Equal(t, 0.8, rec.ConfidenceScores["university"])

	require.NotNil(t, rec.Degree)
	assert.Equal(t, "Computer", *rec.Degree)
	assert.Equal(t, 0.6, rec.ConfidenceScores["degree"])

	require.NotNil(t, rec.GPA)
	assert.Equal(t, "3.80", *rec.GPA)

	require.NotNil(t, rec.GraduationDate)
	assert.Equal(t, "June 2019", *rec.GraduationDate)
	assert.Equal(t, entity.MethodDateparser, rec.ExtractionMethods["graduation_date"])
	assert.Equal(t, 0.8, rec.ConfidenceScores["graduation_date"])

	assert.NotEmpty(t, rec.RawMatches["university"])
	assert.NotEmpty(t, rec.RawMatches["degree"])
}

func TestParse_NamedIssuerWins(t *testing.T) {
	rec := Parse("offered by Meta and offered through Coursera.", nlp.Unavailable{}, nil)

	require.NotNil(t, rec.University)
	assert.Equal(t, "Meta", *rec.University)
	assert.Equal(t, 0.8, rec.ConfidenceScores["university"])
}

func TestParse_GPA(t *testing.T) {
	rec := Parse("CGPA: 8.7/10", nlp.Unavailable{}, nil)

	require.NotNil(t, rec.GPA)
	assert.Equal(t, "8.70", *rec.GPA)
	assert.Equal(t, entity.MethodRegex, rec.ExtractionMethods["gpa"])
	assert.Equal(t, 0.9, rec.ConfidenceScores["gpa"])
}

func TestParse_OverallIsMeanOfFieldScores(t *testing.T) {
	rec := Parse("CGPA: 8.7/10", nlp.Unavailable{}, nil)
	assert.InDelta(t, 0.225, rec.ConfidenceScores["overall"], 1e-9)
}

func TestParse_NLPFallbackUniversity(t *testing.T) {
	stub := stubRecognizer{entities: nlp.Entities{Universities: []string{"Example University"}}}

	rec := Parse("qualification details unavailable", stub, nil)

	require.NotNil(t, rec.University)
	assert.Equal(t, "Example University", *rec.University)
	assert.Equal(t, entity.MethodNLP, rec.ExtractionMethods["university"])
	assert.Equal(t, 0.7, rec.ConfidenceScores["university"])
}

func TestParse_OrgFallbackUniversity(t *testing.T) {
	stub := stubRecognizer{entities: nlp.Entities{Organizations: []string{"Globex"}}}

	rec := Parse("qualification details unavailable", stub, nil)

	require.NotNil(t, rec.University)
	assert.Equal(t, "Globex", *rec.University)
	assert.Equal(t, entity.MethodNLPFallback, rec.ExtractionMethods["university"])
	assert.Equal(t, 0.5, rec.ConfidenceScores["university"])
}

func TestParse_EmptyText(t *testing.T) {
	rec := Parse("  ", nlp.Unavailable{}, nil)

	assert.NotEmpty(t, rec.Error)
	assert.Nil(t, rec.University)
	assert.Equal(t, entity.MethodNone, rec.ExtractionMethods["university"])
	assert.Zero(t, rec.ConfidenceScores["gpa"])
}

func TestParse_UnparseableDateKeptRaw(t *testing.T) {
	rec := Parse("Graduated 99/99/2023", nlp.Unavailable{}, nil)

	require.NotNil(t, rec.GraduationDate)
	assert.Equal(t, "99/99/2023", *rec.GraduationDate)
	assert.Equal(t, entity.MethodRegex, rec.ExtractionMethods["graduation_date"])
	assert.Equal(t, 0.6, rec.ConfidenceScores["graduation_date"])
}
