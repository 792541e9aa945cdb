package resume

import (
	"path/filepath"
	"regexp"
	"strings"

	"hiredocs/internal/entity"
)

var (
	reNameSimple  = regexp.MustCompile(`^[A-Z][a-z]+(\s+[A-Z][a-z]+){1,2}$`)
	reNameHyphen  = regexp.MustCompile(`^[A-Z][a-z]+(-[A-Z][a-z]+)?(\s+[A-Z][a-z]+){1,2}$`)
	reNameInitial = regexp.MustCompile(`^[A-Z][a-z]+ [A-Z]\. [A-Z][a-z]+$`)
	reFileName    = regexp.MustCompile(`^([A-Za-z\s]+)_`)
	reResumeEmail = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	reResumePhone = regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?(?:\(?\d{1,4}\)?[-.\s]?)?\d{3}[-.\s]?\d{3,4}[-.\s]?\d{3,4}`)
	reLinkedIn    = regexp.MustCompile(`(?i)(?:linkedin\.com/in/|linkedin:\s*)([A-Za-z0-9_-]+)`)
	reGitHub      = regexp.MustCompile(`(?i)(?:github\.com/|github:\s*)([A-Za-z0-9_-]+)`)
	reCityState   = regexp.MustCompile(`\b[A-Z][a-z]+,\s*[A-Z]{2}\b`)
	reCityCountry = regexp.MustCompile(`\b[A-Z][a-z]+,\s*[A-Z][a-z]+\b`)
)

// extractPersonalInfo pulls identity and contact fields from the top of the
// resume. The name comes from the earliest short capitalized line in the
// first 15 lines, with the filename stem as a fallback.
func extractPersonalInfo(text, filename string) entity.PersonalInfo {
	var info entity.PersonalInfo
	lines := strings.Split(text, "\n")

	for _, line := range firstN(lines, 15) {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "Page") || len(line) >= 50 {
			continue
		}
		if reNameSimple.MatchString(line) || reNameHyphen.MatchString(line) || reNameInitial.MatchString(line) {
			info.Name = &line
			break
		}
	}
	if info.Name == nil {
		base := filepath.Base(filename)
		if m := reFileName.FindStringSubmatch(base); m != nil {
			name := titleCaseWords(strings.ReplaceAll(m[1], "_", " "))
			info.Name = &name
		}
	}

	if m := reResumeEmail.FindString(text); m != "" {
		info.Email = &m
	}
	if m := strings.TrimSpace(reResumePhone.FindString(text)); m != "" {
		info.Phone = &m
	}
	if m := reLinkedIn.FindStringSubmatch(text); m != nil {
		info.LinkedIn = &m[1]
	}
	if m := reGitHub.FindStringSubmatch(text); m != nil {
		info.GitHub = &m[1]
	}

	for _, line := range firstN(lines, 20) {
		line = strings.TrimSpace(line)
		if reCityState.MatchString(line) || reCityCountry.MatchString(line) {
			info.Location = &line
			break
		}
	}
	return info
}

func firstN(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}

func titleCaseWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
