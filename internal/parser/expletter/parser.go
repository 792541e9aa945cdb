// Package expletter parses employment experience letters: organization,
// job title, employee name, the employment period, and manager details,
// plus a consistency report over whatever was found.
package expletter

import (
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"hiredocs/internal/cascade"
	"hiredocs/internal/entity"
)

var orgCascade = cascade.New("org_name",
	`employed\s+(?:with|at|by)\s+([A-Za-z][A-Za-z\s&.,()0-9]+?)(?:\s+(?:as|from|since|during))`,
	`working\s+(?:with|at|for)\s+([A-Za-z][A-Za-z\s&.,()0-9]+?)(?:\s+(?:as|from|since))`,
	`(?:company|organization|employer)[\s:]+([A-Za-z][A-Za-z\s&.,()0-9]+?)(?:\s+(?:as|from|\.|\n))`,
	`([A-Za-z][A-Za-z\s&.,()0-9]+?)\s+(?:pvt\.?\s*ltd\.?|ltd\.?|inc\.?|corp\.?|llc|limited)`,
	`(?m)(?:^|\n)([A-Z][A-Za-z\s&.,()0-9]+?)\s*\n.*(?:experience|employment|letter)`,
	`letterhead[:\s]*([A-Za-z][A-Za-z\s&.,()0-9]+)`,
	`from[:\s]*([A-Za-z][A-Za-z\s&.,()0-9]+?)(?:\s+(?:to|regarding))`,
	`certify\s+that\s+[A-Za-z\s]+\s+(?:was\s+)?(?:employed|worked|served)\s+(?:with|at|for|by)\s+([A-Za-z][A-Za-z\s&.,()0-9]+?)(?:\s+(?:as|from))`,
	`(?:this\s+)?(?:is\s+to\s+)?(?:certify|confirm)\s+that\s+[A-Za-z\s]+\s+(?:was\s+)?(?:employed|worked)\s+(?:with|at)\s+([A-Za-z][A-Za-z\s&.,()0-9]+)`,
	`(?m)^([A-Z][A-Za-z\s&.,()0-9]{5,50})\s*$`,
).WithLimits(4, 99).WithBlacklist("template", "sample", "example", "experience", "letter")

var titleCascade = cascade.New("job_title",
	`employed\s+with\s+[A-Za-z\s&.,()0-9]+?\s+as\s+(?:a\s+)?([A-Za-z][A-Za-z\s\-/&]+?)(?:\s+from)`,
	`employed\s+[A-Za-z\s&.,()0-9]+?\s+as\s+(?:a\s+)?([A-Za-z][A-Za-z\s\-/&]+?)(?:\s+from)`,
	`working\s+as\s+(?:a\s+)?([A-Za-z][A-Za-z\s\-/&]+?)(?:\s+(?:with|at|from))`,
	`(?:as|position|title|designation|role)[\s:]+(?:a\s+)?([A-Za-z][A-Za-z\s\-/&]+?)(?:\s+(?:from|with|at|during|\.|,))`,
	`position\s+of\s+([A-Za-z][A-Za-z\s\-/&]+?)(?:\s+(?:from|with|at))`,
	`(?:served|worked)\s+as\s+(?:a\s+)?([A-Za-z][A-Za-z\s\-/&]+?)(?:\s+(?:from|with|at))`,
).WithLimits(3, 49)

var nameCascade = cascade.New("employee_name",
	`(?:that|certify that|mr\.?\s*|ms\.?\s*|mrs\.?\s*)([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`,
	`employee[\s:]+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`,
	`(?:name|person)[\s:]+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`,
	`([A-Z][a-z]+\s+[A-Z][a-z]+)(?:\s+was\s+employed|\s+worked|\s+has\s+been)`,
	`employee\s+name[:\s]*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`,
	`name\s+of\s+employee[:\s]*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`,
	`(?:mr|ms|mrs)\.?\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)\s+(?:was|is|has)`,
	`(?s)(?:to\s+whom\s+it\s+may\s+concern.*?)([A-Z][a-z]+\s+[A-Z][a-z]+)(?:\s+(?:was|is|has))`,
	`(?s)(?:this\s+is\s+to\s+certify.*?)([A-Z][a-z]+\s+[A-Z][a-z]+)(?:\s+(?:was|is|has))`,
	`(?s)(?:employ|work|serv)(?:ed|ing).*?([A-Z][a-z]+\s+[A-Z][a-z]+)`,
).WithLimits(0, 49)

var managerCascade = cascade.New("manager_name",
	`(?:manager|supervisor|reporting\s+to|signed\s+by|approved\s+by)[\s:]+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`,
	`(?:hr\s+manager|human\s+resources)[\s:]+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`,
)

var (
	reEmail      = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	rePhone      = regexp.MustCompile(`[+]?[\d\s\-()]{10,15}`)
	reMultiSpace = regexp.MustCompile(`\s+`)
	reOrgNoise   = regexp.MustCompile(`[^\w\s&.,()-]`)
)

// canonical titles the fuzzy matcher normalizes toward
var commonTitles = []string{
	"software engineer", "developer", "analyst", "manager", "director",
	"consultant", "specialist", "executive", "coordinator", "administrator",
	"qa engineer", "tester", "project manager", "team lead", "architect",
	"designer", "marketing manager", "sales executive", "hr manager",
	"finance manager", "accountant", "data scientist", "business analyst",
	"qa analyst", "quality analyst", "test engineer", "senior developer",
	"marketing executive", "software developer", "senior analyst",
	"operations engineer", "academic counselor", "system administrator",
}

var quoteReplacer = strings.NewReplacer(
	"“", `"`, "”", `"`,
	"‘", "'", "’", "'",
)

// cleanText flattens all whitespace to single spaces and normalizes curly
// quotes, so the cascades can anchor on word boundaries instead of layout.
func cleanText(text string) string {
	text = reMultiSpace.ReplaceAllString(text, " ")
	return strings.TrimSpace(quoteReplacer.Replace(text))
}

// Parse extracts structured fields from experience letter text and checks
// their internal consistency. now anchors the future-date and age checks.
func Parse(text string, now time.Time, logger *slog.Logger) entity.ExperienceLetterRecord {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(text) == "" {
		return entity.ExperienceLetterRecord{Error: "no text extracted from the document"}
	}

	cleaned := cleanText(text)
	rec := entity.ExperienceLetterRecord{RawTextLength: len(cleaned)}
	data := &rec.ExtractedData

	data.OrgName = extractOrg(cleaned)
	data.JobTitle = extractTitle(cleaned)
	data.EmployeeName = extractName(cleaned)
	data.ManagerName, data.ManagerContact = extractManager(cleaned)

	dates := extractDates(cleaned, now)
	start, end, duration := resolveEmployment(dates, cleaned)
	if start != nil {
		s := start.Format("2006-01-02")
		data.StartDate = &s
	}
	if end != nil {
		e := end.Format("2006-01-02")
		data.EndDate = &e
	}
	data.DurationYears = duration

	rec.FormattingConsistency, rec.Anomalies = validateLetter(*data, now)
	rec.ConfidenceScore = confidence(*data)

	logger.Debug("experience letter parsed",
		"confidence", rec.ConfidenceScore,
		"dates_found", len(dates),
		"anomalies", len(rec.Anomalies))
	return rec
}

func extractOrg(text string) *string {
	cands := orgCascade.Filter(orgCascade.Match(text))
	for i := range cands {
		v := reMultiSpace.ReplaceAllString(cands[i].Raw, " ")
		cands[i].Raw = strings.TrimSpace(reOrgNoise.ReplaceAllString(v, ""))
	}
	if best, ok := cascade.First(orgCascade.Filter(cands)); ok {
		return &best.Raw
	}
	return nil
}

func extractTitle(text string) *string {
	cands := titleCascade.Filter(titleCascade.Match(text))
	best, ok := cascade.First(cands)
	if !ok {
		return nil
	}
	title := reMultiSpace.ReplaceAllString(best.Raw, " ")

	if canon, ok := canonicalTitle(title); ok {
		return &canon
	}

	lower := strings.ToLower(title)
	for _, ct := range commonTitles {
		if ct == lower {
			v := titleCase(ct)
			return &v
		}
	}
	for _, ct := range commonTitles {
		if len(ct) > 3 && strings.Contains(lower, ct) && float64(len(ct))/float64(len(title)) > 0.7 {
			v := titleCase(ct)
			return &v
		}
	}
	switch lower {
	case "employed", "working", "position", "job":
		return nil
	}
	v := titleCase(title)
	return &v
}

// canonicalTitle maps an extracted title onto the closest known title when
// the Levenshtein similarity clears 70%.
func canonicalTitle(title string) (string, bool) {
	lower := strings.ToLower(title)
	bestScore := 0.0
	best := ""
	for _, ct := range commonTitles {
		dist := fuzzy.LevenshteinDistance(lower, ct)
		denom := max(len(lower), len(ct))
		if denom == 0 {
			continue
		}
		score := 1.0 - float64(dist)/float64(denom)
		if score > bestScore {
			bestScore, best = score, ct
		}
	}
	if bestScore > 0.70 {
		return titleCase(best), true
	}
	return "", false
}

func extractName(text string) *string {
	cands := nameCascade.Filter(nameCascade.Match(text))
	for _, c := range cands {
		if validPersonName(c.Raw) {
			name := c.Raw
			return &name
		}
	}
	return nil
}

func validPersonName(name string) bool {
	parts := strings.Fields(name)
	if len(parts) < 2 || len(name) >= 50 {
		return false
	}
	for _, p := range parts {
		switch strings.ToLower(p) {
		case "company", "organization", "employee", "name", "template", "sample":
			return false
		}
	}
	return true
}

func extractManager(text string) (name, contact *string) {
	if best, ok := cascade.First(managerCascade.Filter(managerCascade.Match(text))); ok {
		name = &best.Raw
	}
	if m := reEmail.FindString(text); m != "" {
		contact = &m
	} else if m := strings.TrimSpace(rePhone.FindString(text)); m != "" {
		contact = &m
	}
	return name, contact
}

// confidence weights the five required fields above the three optional ones.
func confidence(data entity.LetterData) float64 {
	required := []*string{data.OrgName, data.JobTitle, data.EmployeeName, data.StartDate, data.EndDate}
	foundRequired := 0
	for _, f := range required {
		if f != nil {
			foundRequired++
		}
	}
	foundOptional := 0
	if data.DurationYears != nil {
		foundOptional++
	}
	if data.ManagerName != nil {
		foundOptional++
	}
	if data.ManagerContact != nil {
		foundOptional++
	}
	score := float64(foundRequired*15+foundOptional*10) / float64(len(required)*15+3*10) * 100
	return round2(score)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
