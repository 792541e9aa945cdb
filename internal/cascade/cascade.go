// Package cascade implements the ordered rule-list matcher shared by all four
// field extractors: every rule runs in priority order against the full text,
// all matches are collected as candidates, and a field-specific policy picks
// the canonical value from the filtered survivors.
package cascade

import (
	"regexp"
	"strings"

	"hiredocs/internal/entity"
)

// Candidate is one potential value for a field, tagged with where it came from.
type Candidate struct {
	entity.FieldMatch
	Priority int // index of the rule that produced it; lower wins ties
	Position int // byte offset of the match in the source text
}

// Rule is a single candidate matcher. Value is taken from the first capture
// group when present, otherwise the whole match.
type Rule struct {
	re     *regexp.Regexp
	method string
}

// Cascade is the ordered rule list for one field plus its post-filters.
type Cascade struct {
	Field string
	rules []Rule

	MinLen    int
	MaxLen    int
	Blacklist []string       // boilerplate words that disqualify a match
	TrimAfter *regexp.Regexp // suffix noise stripped after known terminators
}

// New compiles the field's patterns case-insensitively, in priority order.
// Panics on an invalid pattern: cascades are package-level declarations.
func New(field string, patterns ...string) *Cascade {
	c := &Cascade{Field: field}
	for _, p := range patterns {
		c.rules = append(c.rules, Rule{
			re:     regexp.MustCompile(`(?i)` + p),
			method: entity.MethodRegex,
		})
	}
	return c
}

// WithLimits sets the accepted value length bounds (0 leaves a bound open).
func (c *Cascade) WithLimits(min, max int) *Cascade {
	c.MinLen, c.MaxLen = min, max
	return c
}

// WithBlacklist rejects values containing any of the given words.
func (c *Cascade) WithBlacklist(words ...string) *Cascade {
	c.Blacklist = words
	return c
}

// WithTrimAfter strips everything from the first match of pattern onward.
func (c *Cascade) WithTrimAfter(pattern string) *Cascade {
	c.TrimAfter = regexp.MustCompile(`(?i)` + pattern)
	return c
}

// Match runs every rule against text and collects all matches. It never stops
// at the first rule: later rules add more candidates, but earlier rules keep
// a lower Priority and win ties at selection.
func (c *Cascade) Match(text string) []Candidate {
	var out []Candidate
	for prio, rule := range c.rules {
		for _, idx := range rule.re.FindAllStringSubmatchIndex(text, -1) {
			start, end := idx[0], idx[1]
			if len(idx) >= 4 && idx[2] >= 0 {
				start, end = idx[2], idx[3]
			}
			raw := text[start:end]
			out = append(out, Candidate{
				FieldMatch: entity.FieldMatch{
					Field:  c.Field,
					Raw:    raw,
					Method: rule.method,
				},
				Priority: prio,
				Position: idx[0],
			})
		}
	}
	return out
}

// Filter applies the field's post-filters: whitespace trimming, length bounds,
// blacklist rejection, trailing-noise stripping, and collapsing embedded
// newlines to the longest constituent line.
func (c *Cascade) Filter(cands []Candidate) []Candidate {
	var out []Candidate
	for _, cand := range cands {
		v := strings.TrimSpace(cand.Raw)
		if c.TrimAfter != nil {
			if loc := c.TrimAfter.FindStringIndex(v); loc != nil {
				v = strings.TrimSpace(v[:loc[0]])
			}
		}
		if strings.Contains(v, "\n") {
			v = LongestLine(v)
		}
		if c.MinLen > 0 && len(v) < c.MinLen {
			continue
		}
		if c.MaxLen > 0 && len(v) > c.MaxLen {
			continue
		}
		if containsAnyWord(v, c.Blacklist) {
			continue
		}
		if v == "" {
			continue
		}
		cand.Raw = v
		out = append(out, cand)
	}
	return out
}

// Raws returns the unfiltered match strings, for the record's audit trail.
func Raws(cands []Candidate) []string {
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.Raw)
	}
	return out
}

// LongestLine reduces a multi-line match to its longest constituent line.
func LongestLine(s string) string {
	best := ""
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > len(best) {
			best = line
		}
	}
	return best
}

func containsAnyWord(s string, words []string) bool {
	if len(words) == 0 {
		return false
	}
	lower := strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(lower, strings.ToLower(w)) {
			return true
		}
	}
	return false
}
