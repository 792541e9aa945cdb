package cascade

import "sort"

// Policy picks the canonical candidate from the filtered set.
type Policy func([]Candidate) (Candidate, bool)

// First returns the candidate from the highest-priority rule; within a rule,
// the earliest occurrence in text.
func First(cands []Candidate) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Priority < best.Priority || (c.Priority == best.Priority && c.Position < best.Position) {
			best = c
		}
	}
	return best, true
}

// Last returns the candidate occurring last in the text regardless of rule
// priority — the "final total on the page" policy.
func Last(cands []Candidate) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Position >= best.Position {
			best = c
		}
	}
	return best, true
}

// Shortest prefers the shortest clean value, breaking length ties by text order.
func Shortest(cands []Candidate) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}
	sorted := append([]Candidate(nil), cands...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if len(sorted[i].Raw) != len(sorted[j].Raw) {
			return len(sorted[i].Raw) < len(sorted[j].Raw)
		}
		return sorted[i].Position < sorted[j].Position
	})
	return sorted[0], true
}

// Longest prefers the longest value, breaking ties by text order.
func Longest(cands []Candidate) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}
	sorted := append([]Candidate(nil), cands...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if len(sorted[i].Raw) != len(sorted[j].Raw) {
			return len(sorted[i].Raw) > len(sorted[j].Raw)
		}
		return sorted[i].Position < sorted[j].Position
	})
	return sorted[0], true
}

// PreferNamed wraps a fallback policy: candidates whose value equals one of
// the given names always win (the named-company override).
func PreferNamed(names []string, fallback Policy) Policy {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return func(cands []Candidate) (Candidate, bool) {
		for _, c := range cands {
			if _, ok := set[c.Raw]; ok {
				return c, true
			}
		}
		return fallback(cands)
	}
}
