package expletter

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Date occurrence classes.
const (
	dateUnknown  = "unknown"
	dateDocument = "document_date"
	dateStart    = "start_date"
	dateEnd      = "end_date"
)

// dateOccurrence is one date string found in the letter, with its parsed
// value and the employment role inferred from the surrounding context.
type dateOccurrence struct {
	Raw      string
	Parsed   time.Time
	Position int
	Type     string
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d{1,2}[/\-.]\d{1,2}[/\-.]\d{4}\b`),                 // DD/MM/YYYY or MM/DD/YYYY
	regexp.MustCompile(`(?i)\b\d{4}[/\-.]\d{1,2}[/\-.]\d{1,2}\b`),                 // YYYY/MM/DD
	regexp.MustCompile(`(?i)\b[A-Za-z]{3,12}\s+\d{1,2},?\s+\d{4}\b`),              // Month DD, YYYY
	regexp.MustCompile(`(?i)\b\d{1,2}\s+[A-Za-z]{3,12}\s+\d{4}\b`),                // DD Month YYYY
	regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)\s+[A-Za-z]{3,12}\s+\d{4}\b`), // 1st January 2020
	regexp.MustCompile(`(?i)\b[A-Za-z]{3,12}\s+\d{4}\b`),                          // Month Year
}

// fallback layouts mirror the manual formats tried when the lenient parser
// cannot make sense of a match
var dateLayouts = []string{
	"02/01/2006", "01/02/2006", "2006/01/02",
	"02-01-2006", "01-02-2006", "2006-01-02",
	"January 2, 2006", "2 January 2006", "January 2006",
	"Jan 2, 2006", "2 Jan 2006", "Jan 2006",
}

var (
	reStartKw = regexp.MustCompile(`(?i)\b(from|since|joined|started)\b`)
	reEndKw   = regexp.MustCompile(`(?i)\b(to|until|till|ended|left|relieved)\b`)

	reOrdinal = regexp.MustCompile(`(?i)(\d{1,2})(st|nd|rd|th)`)
)

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(reOrdinal.ReplaceAllString(s, "$1"))
	if t, err := dateparse.ParseAny(s); err == nil {
		return t, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// extractDates finds every date occurrence, parses it into a calendar date,
// and classifies it by context keywords within 50 characters on either side.
// Overlapping matches from lower-priority patterns are dropped so each date
// string counts once.
func extractDates(text string, now time.Time) []dateOccurrence {
	type span struct{ start, end int }
	var taken []span
	overlaps := func(start, end int) bool {
		for _, s := range taken {
			if start < s.end && end > s.start {
				return true
			}
		}
		return false
	}

	var out []dateOccurrence
	for _, re := range datePatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if overlaps(loc[0], loc[1]) {
				continue
			}
			raw := text[loc[0]:loc[1]]
			parsed, ok := parseDateString(raw)
			if !ok {
				continue
			}
			taken = append(taken, span{loc[0], loc[1]})

			before := text[max(0, loc[0]-50):loc[0]]
			after := text[loc[1]:min(len(text), loc[1]+50)]

			dtype := dateUnknown
			if loc[0] < 100 && (strings.Contains(strings.ToLower(before), "date:") || loc[0] < 50) {
				// letterhead date at the very top of the document
				dtype = dateDocument
			} else {
				dtype = classifyByContext(before, after)
			}

			out = append(out, dateOccurrence{Raw: raw, Parsed: parsed, Position: loc[0], Type: dtype})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// classifyByContext infers the employment role of a date from the nearest
// start/end keyword. Keywords before the date take precedence, with the one
// closest to the date winning ("from January 2020 to March 2019" classifies
// the second date as an end even though "from" also appears in its window).
func classifyByContext(before, after string) string {
	lastIdx := func(re *regexp.Regexp, s string) int {
		locs := re.FindAllStringIndex(s, -1)
		if len(locs) == 0 {
			return -1
		}
		return locs[len(locs)-1][0]
	}
	if si, ei := lastIdx(reStartKw, before), lastIdx(reEndKw, before); si >= 0 || ei >= 0 {
		if si > ei {
			return dateStart
		}
		return dateEnd
	}
	si := reStartKw.FindStringIndex(after)
	ei := reEndKw.FindStringIndex(after)
	switch {
	case si != nil && (ei == nil || si[0] < ei[0]):
		return dateStart
	case ei != nil:
		return dateEnd
	}
	return dateUnknown
}

var reFromTo = regexp.MustCompile(`(?i)from\s+[A-Za-z0-9\s,/.-]+?\s+to\s+[A-Za-z0-9\s,/.-]+`)
var reDuration = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*years?`)
var reStartHint = regexp.MustCompile(`(?i)from.*to|since.*until`)

// resolveEmployment turns classified date occurrences into start/end dates.
// Preference order: explicit typed pair, then chronological ordering of all
// non-document dates (when a from..to phrase exists), then a single date
// combined with a stated duration.
func resolveEmployment(dates []dateOccurrence, text string) (start, end *time.Time, durationYears *float64) {
	var employment []dateOccurrence
	for _, d := range dates {
		if d.Type != dateDocument {
			employment = append(employment, d)
		}
	}

	switch {
	case len(employment) >= 2:
		var starts, ends []dateOccurrence
		for _, d := range employment {
			switch d.Type {
			case dateStart:
				starts = append(starts, d)
			case dateEnd:
				ends = append(ends, d)
			}
		}
		if len(starts) > 0 && len(ends) > 0 {
			s, e := starts[0].Parsed, ends[0].Parsed
			start, end = &s, &e
		} else if reFromTo.MatchString(text) {
			// compare calendar values, never the raw strings
			sorted := append([]dateOccurrence(nil), employment...)
			sort.Slice(sorted, func(i, j int) bool { return sorted[i].Parsed.Before(sorted[j].Parsed) })
			s, e := sorted[0].Parsed, sorted[len(sorted)-1].Parsed
			start, end = &s, &e
		}
	case len(employment) == 1:
		if m := reDuration.FindStringSubmatch(text); m != nil {
			if v, ok := parseFloat(m[1]); ok {
				durationYears = &v
			}
			single := employment[0].Parsed
			if employment[0].Type == dateStart || reStartHint.MatchString(text) {
				start = &single
			} else {
				end = &single
			}
		}
	}

	if start != nil && end != nil {
		days := end.Sub(*start).Hours() / 24
		v := round2(days / 365.25)
		durationYears = &v
	}
	return start, end, durationYears
}
