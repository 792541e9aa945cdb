package expletter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

const sampleLetter = `Date: 15 March 2022

To Whom It May Concern,

This is to certify that John Smith was employed with Acme Technologies Pvt Ltd
as a Software Engineer from 1st January 2020 to 28 February 2022.

During his tenure he was a valued member of the team.

Signed by: Priya Sharma (HR Manager)
priya.sharma@acme.example.com`

func TestParse_FullLetter(t *testing.T) {
	rec := Parse(sampleLetter, testNow, nil)

	require.Empty(t, rec.Error)
	data := rec.ExtractedData

	require.NotNil(t, data.OrgName)
	assert.Equal(t, "Acme Technologies Pvt Ltd", *data.OrgName)

	require.NotNil(t, data.JobTitle)
	assert.Equal(t, "Software Engineer", *data.JobTitle)

	require.NotNil(t, data.EmployeeName)
	assert.Equal(t, "John Smith", *data.EmployeeName)

	require.NotNil(t, data.StartDate)
	assert.Equal(t, "2020-01-01", *data.StartDate)
	require.NotNil(t, data.EndDate)
	assert.Equal(t, "2022-02-28", *data.EndDate)

	require.NotNil(t, data.DurationYears)
	assert.InDelta(t, 2.16, *data.DurationYears, 0.02)

	require.NotNil(t, data.ManagerName)
	assert.Equal(t, "Priya Sharma", *data.ManagerName)
	require.NotNil(t, data.ManagerContact)
	assert.Equal(t, "priya.sharma@acme.example.com", *data.ManagerContact)

	assert.True(t, rec.FormattingConsistency.AllRequiredFieldsPresent)
	assert.True(t, rec.FormattingConsistency.DatesLogical)
	assert.True(t, rec.FormattingConsistency.ManagerInfoPresent)
	assert.Empty(t, rec.Anomalies)
	assert.Greater(t, rec.ConfidenceScore, 90.0)
}

func TestParse_EndBeforeStart(t *testing.T) {
	text := `This is to certify that Jane Doe was employed with Beta Corp Ltd
as a Business Analyst from January 2020 to March 2019.`

	rec := Parse(text, testNow, nil)
	data := rec.ExtractedData

	require.NotNil(t, data.StartDate)
	assert.Equal(t, "2020-01-01", *data.StartDate)
	require.NotNil(t, data.EndDate)
	assert.Equal(t, "2019-03-01", *data.EndDate)

	assert.False(t, rec.FormattingConsistency.DatesLogical)
	assert.Contains(t, rec.Anomalies, "End date should be after start date")
}

func TestParse_FutureStartDate(t *testing.T) {
	text := `Alice Brown was employed with Gamma Systems Inc
as a Data Scientist from January 2030 to March 2031.`

	rec := Parse(text, testNow, nil)

	assert.Contains(t, rec.Anomalies, "Start date is in the future")
}

func TestParse_SingleDateWithDuration(t *testing.T) {
	text := `This is to certify that Ravi Kumar was employed with Delta Services Limited
as a Test Engineer since January 2020 for a period of 3.5 years.`

	rec := Parse(text, testNow, nil)
	data := rec.ExtractedData

	require.NotNil(t, data.StartDate)
	assert.Equal(t, "2020-01-01", *data.StartDate)
	assert.Nil(t, data.EndDate)
	require.NotNil(t, data.DurationYears)
	assert.Equal(t, 3.5, *data.DurationYears)
}

func TestParse_MissingFields(t *testing.T) {
	rec := Parse("Nothing useful in this document at all.", testNow, nil)

	assert.False(t, rec.FormattingConsistency.AllRequiredFieldsPresent)
	require.NotEmpty(t, rec.Anomalies)
	assert.Contains(t, rec.Anomalies[0], "Missing required fields:")
	assert.Less(t, rec.ConfidenceScore, 50.0)
}

func TestParse_EmptyText(t *testing.T) {
	rec := Parse("   ", testNow, nil)
	assert.NotEmpty(t, rec.Error)
}

func TestCanonicalTitle(t *testing.T) {
	got, ok := canonicalTitle("Sofware Enginer")
	require.True(t, ok)
	assert.Equal(t, "Software Engineer", got)

	_, ok = canonicalTitle("Chief Star Gazer")
	assert.False(t, ok)
}

func TestClassifyByContext_NearestKeywordWins(t *testing.T) {
	assert.Equal(t, dateEnd, classifyByContext("Engineer from 1st January 2020 to ", ""))
	assert.Equal(t, dateStart, classifyByContext("as a Software Engineer from ", ""))
	assert.Equal(t, dateUnknown, classifyByContext("on the morning of ", " the weather was fine"))
}
