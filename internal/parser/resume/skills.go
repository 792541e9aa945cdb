package resume

import (
	"regexp"
	"sort"
	"strings"

	"hiredocs/internal/entity"
)

// Fixed skill vocabularies. Matching is word-boundary and case-insensitive;
// matched skills are reported capitalized.
var technicalSkills = []string{
	"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift", "kotlin",
	"typescript", "go", "rust", "scala", "perl", "html", "css", "react", "angular",
	"vue", "node", "django", "flask", "spring", "laravel", "express", "tensorflow",
	"pytorch", "keras", "scikit-learn", "pandas", "numpy", "aws", "azure", "gcp",
	"docker", "kubernetes", "jenkins", "git", "github", "gitlab", "ci/cd", "rest api",
	"graphql", "sql", "nosql", "mongodb", "postgresql", "mysql", "oracle", "sqlite",
	"hadoop", "spark", "kafka", "redis", "elasticsearch", "tableau", "powerbi", "excel",
	"linux", "unix", "windows", "macos", "agile", "scrum", "jira", "confluence",
}

var softSkills = []string{
	"leadership", "communication", "teamwork", "problemsolving", "criticalthinking",
	"decisionmaking", "timemanagement", "organization", "creativity", "adaptability",
	"flexibility", "interpersonal", "negotiation", "conflictresolution", "presentation",
	"mentoring", "coaching", "customerfocus", "detail-oriented", "multitasking",
	"planning", "prioritization", "innovation", "collaboration", "emotional intelligence",
}

var skillPatterns = map[string]*regexp.Regexp{}

func init() {
	for _, s := range technicalSkills {
		skillPatterns[s] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(s) + `\b`)
	}
	for _, s := range softSkills {
		skillPatterns[s] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(s) + `\b`)
	}
}

// extractSkills matches both vocabularies against the skills section and
// then against the whole document, so skills mentioned anywhere still count.
func extractSkills(text string) entity.Skills {
	section := extractSection(text,
		[]string{"Skills", "Technical Skills", "Core Competencies"},
		[]string{"Experience", "Education", "Projects", "Certifications"})

	technical := matchSkills(technicalSkills, section, text)
	soft := matchSkills(softSkills, section, text)

	sort.Strings(technical)
	sort.Strings(soft)
	return entity.Skills{Technical: technical, Soft: soft}
}

func matchSkills(vocab []string, section, fullText string) []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(skill string) {
		v := capitalize(skill)
		if _, dup := seen[v]; !dup {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	for _, s := range vocab {
		if section != "" && skillPatterns[s].MatchString(section) {
			add(s)
		}
	}
	for _, s := range vocab {
		if skillPatterns[s].MatchString(fullText) {
			add(s)
		}
	}
	return out
}

// capitalize uppercases the first letter and lowercases the rest, matching
// how skills are reported.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// extractCertifications collects plausible certification lines from the
// certifications section.
func extractCertifications(text string) []string {
	section := extractSection(text,
		[]string{"Certifications", "Certificates", "Accreditations"},
		[]string{"Experience", "Education", "Skills", "Projects", "Languages"})
	return collectLines(section, 5, 200)
}

// extractLanguages collects language lines from the languages section.
func extractLanguages(text string) []string {
	section := extractSection(text,
		[]string{"Languages", "Language Proficiency", "Foreign Languages"},
		[]string{"Experience", "Education", "Skills", "Projects", "Certifications"})
	return collectLines(section, 2, 50)
}

func collectLines(section string, minLen, maxLen int) []string {
	if section == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isBullet(line) {
			line = strings.TrimLeft(line, "•-* ")
		}
		if len(line) > minLen && len(line) < maxLen {
			out = append(out, line)
		}
	}
	return out
}
