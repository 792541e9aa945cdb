package resume

import (
	"regexp"
	"strings"

	"hiredocs/internal/entity"
)

var reCompanyDate = regexp.MustCompile(`(.+?)\s+(\d{1,2}/\d{4}\s*[-–]\s*(\d{1,2}/\d{4}|\bPresent\b)|\(\d{4}\s*[-–]\s*(\d{4}|\bPresent\b)\)|\d{4}\s*[-–]\s*(\d{4}|\bPresent\b))`)

func isBullet(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*")
}

// extractExperience walks the experience section: a short non-bullet line
// with a date range opens a new job entry, a non-bullet line directly above
// bullets becomes the company or position, and bullets accumulate as
// achievements on the entry in progress.
func extractExperience(text string) []entity.ExperienceEntry {
	section := extractSection(text,
		[]string{"Experience", "Work History", "Employment", "Professional Experience"},
		[]string{"Education", "Skills", "Projects"})
	if section == "" {
		return nil
	}

	var entries []entity.ExperienceEntry
	var current *entity.ExperienceEntry
	flush := func() {
		if current != nil && current.Company != "" {
			entries = append(entries, *current)
		}
	}

	lines := strings.Split(section, "\n")
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if len(line) < 100 && !isBullet(line) {
			if m := reCompanyDate.FindStringSubmatch(line); m != nil {
				flush()
				dr := strings.TrimSpace(m[2])
				current = &entity.ExperienceEntry{
					Company:      strings.TrimSpace(m[1]),
					DateRange:    &dr,
					Achievements: []string{},
				}
				continue
			}
			if i+1 < len(lines) && isBullet(strings.TrimSpace(lines[i+1])) {
				if current == nil || current.Company == "" {
					current = &entity.ExperienceEntry{Company: line, Achievements: []string{}}
				} else {
					pos := line
					current.Position = &pos
				}
				continue
			}
		}

		if isBullet(line) && current != nil {
			current.Achievements = append(current.Achievements, strings.TrimLeft(line, "•-* "))
		}
	}
	flush()
	return entries
}
