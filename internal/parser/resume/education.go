package resume

import (
	"regexp"
	"strings"

	"hiredocs/internal/entity"
)

var (
	reInstitutionOf = regexp.MustCompile(`(?i)(University|College|Institute|School) of ([A-Za-z\s&]+)`)
	reDegree        = regexp.MustCompile(`(?i)(Bachelor|Master|Ph\.?D\.?|B\.?[A-Za-z]*|M\.?[A-Za-z]*)\s+(of|in)\s+([A-Za-z\s&]+)`)
	reEduDate       = regexp.MustCompile(`(19|20)\d{2}\s*[-–]\s*(19|20)\d{2}|(19|20)\d{2}`)
	reGPALine       = regexp.MustCompile(`(?i)GPA\s*[:=]?\s*([\d.]+)`)
)

var institutionWords = []string{"University", "College", "Institute", "School"}

// extractEducation walks the education section line by line, starting a new
// entry at each institution line and attaching degree, field, date, and GPA
// lines to the entry in progress.
func extractEducation(text string) []entity.EducationEntry {
	section := extractSection(text,
		[]string{"Education", "Academic Background", "Academic History"},
		[]string{"Experience", "Work History", "Skills", "Projects"})
	if section == "" {
		return nil
	}

	var entries []entity.EducationEntry
	var current *entity.EducationEntry
	flush := func() {
		if current != nil && current.Institution != "" {
			entries = append(entries, *current)
		}
	}

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := reInstitutionOf.FindString(line); m != "" {
			flush()
			current = &entity.EducationEntry{Institution: m}
			continue
		}
		if lineHasInstitutionWord(line) {
			flush()
			current = &entity.EducationEntry{Institution: line}
			continue
		}
		if current == nil {
			continue
		}
		if m := reDegree.FindStringSubmatch(line); m != nil {
			deg := m[1]
			field := strings.TrimSpace(m[3])
			current.Degree = &deg
			current.Field = &field
			continue
		}
		if m := reEduDate.FindString(line); m != "" {
			d := m
			current.Date = &d
			continue
		}
		if m := reGPALine.FindStringSubmatch(line); m != nil {
			gpa := m[1]
			current.GPA = &gpa
		}
	}
	flush()
	return entries
}

func lineHasInstitutionWord(line string) bool {
	for _, w := range institutionWords {
		if strings.Contains(line, w) {
			return true
		}
	}
	return false
}
