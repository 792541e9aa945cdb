package resume

import (
	"regexp"
	"strings"
)

// Headers that terminate a section when no explicit end set is given.
var defaultSectionEnds = []string{
	"Education", "Experience", "Skills", "Projects",
	"Certifications", "Awards", "Publications", "References",
}

func headingIndex(text, heading string) int {
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(heading) + `\b`)
	if loc := re.FindStringIndex(text); loc != nil {
		return loc[0]
	}
	return -1
}

// extractSection slices the text between the best-matching start header and
// the nearest following end header. The start header's own line is dropped;
// an end set containing the start header itself is ignored so a section is
// never terminated by its own heading.
func extractSection(text string, starts, ends []string) string {
	if text == "" {
		return ""
	}
	if ends == nil {
		ends = defaultSectionEnds
	}

	bestStart := -1
	bestHeading := ""
	for _, h := range starts {
		if idx := headingIndex(text, h); idx >= 0 && (bestStart < 0 || idx < bestStart) {
			bestStart = idx
			bestHeading = h
		}
	}
	if bestStart < 0 {
		return ""
	}

	end := len(text)
	for _, h := range ends {
		if strings.EqualFold(h, bestHeading) {
			continue
		}
		if idx := headingIndex(text[bestStart+len(bestHeading):], h); idx >= 0 {
			abs := bestStart + len(bestHeading) + idx
			if abs < end {
				end = abs
			}
		}
	}

	contentStart := strings.IndexByte(text[bestStart:], '\n')
	if contentStart < 0 {
		contentStart = len(bestHeading)
	} else {
		contentStart++
	}
	contentStart += bestStart
	if contentStart >= end {
		return ""
	}
	return text[contentStart:end]
}
