// Package certificate parses academic and course-completion certificates:
// issuing institution, degree or course name, GPA, and graduation date, each
// with a per-field confidence and extraction method.
package certificate

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"

	"hiredocs/internal/cascade"
	"hiredocs/internal/entity"
	"hiredocs/internal/nlp"
)

// Issuers that always win over generic university matches.
var namedIssuers = []string{"Meta", "Google", "IBM", "Microsoft", "Amazon", "Facebook", "Apple"}

var universityCascade = cascade.New("university",
	`(?:authorized by|offered by|in partnership with)\s+([A-Za-z\s,.-]+?)(?:\s+and offered through|\s+through|$|\n)`,
	`([A-Za-z\s,.-]+?)\s+(?:and offered through Coursera|via edX|on Udacity)(?:\s|$|,|\n)`,
	`(?:Meta|Google|IBM|Microsoft|Amazon|Facebook|Apple|Netflix|Tesla)\s*([A-Za-z\s,.-]*?)(?:\s|$|,|\n)`,
	`(?:University of|at|from)\s+([A-Za-z\s,.-]+?)(?:\s|$|,|\n)`,
	`([A-Za-z\s,.-]+?)\s+University(?:\s|$|,|\n)`,
	`([A-Za-z\s,.-]+?)\s+College(?:\s|$|,|\n)`,
	`([A-Za-z\s,.-]+?)\s+Institute(?:\s|$|,|\n)`,
	`([A-Za-z\s,.-]+?)\s+(?:Universität|Universidad|Université|Università)(?:\s|$|,|\n)`,
	`(?:IIT|MIT|ITT|NIT)\s+([A-Za-z\s,.-]+?)(?:\s|$|,|\n)`,
	`([A-Za-z\s,.-]+?)\s+(?:Institute of Technology|Technical University)(?:\s|$|,|\n)`,
).WithLimits(3, 0)

var degreeCascade = cascade.New("degree",
	`(?:has successfully completed|completed)\s+([A-Za-z\s,.-]+?)(?:\s+an online|\s+course|\s+program|$|\n)`,
	`(?:Certificate of Completion for|Certification in)\s+([A-Za-z\s,.-]+?)(?:\s|$|,|\n)`,
	`Bachelor\s+of\s+([A-Za-z\s,.-]+?)(?:\s|$|,|\n|\()`,
	`Master\s+of\s+([A-Za-z\s,.-]+?)(?:\s|$|,|\n|\()`,
	`Doctor\s+of\s+([A-Za-z\s,.-]+?)(?:\s|$|,|\n|\()`,
	`Ph\.?D\.?\s*(?:in\s+)?([A-Za-z\s,.-]+?)(?:\s|$|,|\n|\()`,
	`Diploma\s+(?:in\s+)?([A-Za-z\s,.-]+?)(?:\s|$|,|\n|\()`,
	`Certificate\s+(?:in\s+)?([A-Za-z\s,.-]+?)(?:\s|$|,|\n|\()`,
	`(?:Introduction to|Fundamentals of|Advanced|Complete|Professional)\s+([A-Za-z\s,.-]+?)(?:\s+Development|\s+Programming|\s+Course|\s+Certification|$|\n)`,
	`([A-Za-z\s,.-]+?)\s+(?:Development|Programming|Course|Certification|Specialization)(?:\s|$|,|\n)`,
).WithLimits(4, 0)

var gpaCascade = cascade.New("gpa",
	`(?:GPA|Grade Point Average)[:\s]+(\d+\.?\d*)\s*(?:/\s*\d+\.?\d*)?`,
	`(?:CGPA|Cumulative GPA)[:\s]+(\d+\.?\d*)\s*(?:/\s*\d+\.?\d*)?`,
	`(?:Percentage|Percent|%)[:\s]*(\d+\.?\d*)\s*%?`,
)

var dateCascade = cascade.New("graduation_date",
	`(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}`,
	`(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\.?\s+\d{4}`,
	`\d{1,2}[/-]\d{1,2}[/-]\d{4}`,
	`\d{4}[/-]\d{1,2}[/-]\d{1,2}`,
	`(?:Conferred|Granted|Awarded|Issued).*?(\d{4})`,
	`(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{1,2},?\s+\d{4}`,
)

// Course words that mark a degree match as a full course name.
var courseWords = []string{
	"introduction", "development", "science", "engineering",
	"certificate", "diploma", "bachelor", "master",
}

var certFields = []string{"university", "degree", "gpa", "graduation_date"}

// Parse extracts the structured certificate fields from text. A field whose
// cascades all miss stays nil with confidence 0 and method "none"; the
// university field additionally falls back to NER entities.
func Parse(text string, recognizer nlp.EntityRecognizer, logger *slog.Logger) entity.CertificateRecord {
	if logger == nil {
		logger = slog.Default()
	}
	if recognizer == nil {
		recognizer = nlp.Unavailable{}
	}

	rec := entity.CertificateRecord{
		ConfidenceScores:  map[string]float64{},
		ExtractionMethods: map[string]string{},
		RawMatches:        map[string][]string{},
	}
	for _, f := range certFields {
		rec.ConfidenceScores[f] = 0
		rec.ExtractionMethods[f] = entity.MethodNone
		rec.RawMatches[f] = []string{}
	}

	if strings.TrimSpace(text) == "" {
		rec.Error = "No text extracted from the document"
		return rec
	}
	rec.TextLength = len(text)

	ents := recognizer.Recognize(text)
	rec.ExtractedEntities = entity.CertificateEntities{
		Universities:  ents.Universities,
		Organizations: ents.Organizations,
		Persons:       ents.Persons,
	}

	extractUniversity(text, &rec)
	extractDegree(text, &rec)
	extractGPA(text, &rec)
	extractGraduationDate(text, &rec)

	total := 0.0
	for _, f := range certFields {
		total += rec.ConfidenceScores[f]
	}
	rec.ConfidenceScores["overall"] = total / float64(len(certFields))

	logger.Debug("certificate parsed", "overall_confidence", rec.ConfidenceScores["overall"])
	return rec
}

func extractUniversity(text string, rec *entity.CertificateRecord) {
	all := universityCascade.Match(text)
	rec.RawMatches["university"] = cascade.Raws(all)

	filtered := universityCascade.Filter(all)
	policy := cascade.PreferNamed(namedIssuers, cascade.Shortest)
	if best, ok := policy(filtered); ok {
		v := best.Raw
		rec.University = &v
		rec.ExtractionMethods["university"] = entity.MethodRegex
		if len(v) > 3 {
			rec.ConfidenceScores["university"] = 0.8
		} else {
			rec.ConfidenceScores["university"] = 0.6
		}
		return
	}

	// NER fallback when no regex candidate survives
	switch {
	case len(rec.ExtractedEntities.Universities) > 0:
		v := rec.ExtractedEntities.Universities[0]
		rec.University = &v
		rec.ConfidenceScores["university"] = 0.7
		rec.ExtractionMethods["university"] = entity.MethodNLP
	case len(rec.ExtractedEntities.Organizations) > 0:
		v := rec.ExtractedEntities.Organizations[0]
		rec.University = &v
		rec.ConfidenceScores["university"] = 0.5
		rec.ExtractionMethods["university"] = entity.MethodNLPFallback
	}
}

// extractDegree prefers full course names over partial matches: candidates
// containing a course word win, with "Introduction to ..." style names first,
// and the longest candidate wins within each tier.
func extractDegree(text string, rec *entity.CertificateRecord) {
	all := degreeCascade.Match(text)
	rec.RawMatches["degree"] = cascade.Raws(all)

	filtered := degreeCascade.Filter(all)
	if len(filtered) == 0 {
		return
	}

	var course, intro []cascade.Candidate
	for _, c := range filtered {
		lower := strings.ToLower(c.Raw)
		if containsAnyWord(lower, courseWords) {
			course = append(course, c)
			if strings.Contains(lower, "introduction") {
				intro = append(intro, c)
			}
		}
	}

	pool := filtered
	if len(intro) > 0 {
		pool = intro
	} else if len(course) > 0 {
		pool = course
	}
	best, _ := cascade.Longest(pool)

	v := best.Raw
	rec.Degree = &v
	rec.ExtractionMethods["degree"] = entity.MethodRegex
	if len(v) > 10 {
		rec.ConfidenceScores["degree"] = 0.8
	} else {
		rec.ConfidenceScores["degree"] = 0.6
	}
}

func extractGPA(text string, rec *entity.CertificateRecord) {
	all := gpaCascade.Match(text)
	rec.RawMatches["gpa"] = cascade.Raws(all)

	best, ok := cascade.First(gpaCascade.Filter(all))
	if !ok {
		return
	}
	v, err := strconv.ParseFloat(best.Raw, 64)
	if err != nil {
		return
	}
	formatted := fmt.Sprintf("%.2f", v)
	rec.GPA = &formatted
	rec.ConfidenceScores["gpa"] = 0.9
	rec.ExtractionMethods["gpa"] = entity.MethodRegex
}

// extractGraduationDate normalizes the first parseable date match to
// "Month YYYY"; an unparseable match is kept raw at lower confidence.
func extractGraduationDate(text string, rec *entity.CertificateRecord) {
	all := dateCascade.Match(text)
	rec.RawMatches["graduation_date"] = cascade.Raws(all)
	if len(all) == 0 {
		return
	}

	for _, c := range all {
		t, err := dateparse.ParseAny(c.Raw)
		if err != nil {
			continue
		}
		v := t.Format("January 2006")
		rec.GraduationDate = &v
		rec.ConfidenceScores["graduation_date"] = 0.8
		rec.ExtractionMethods["graduation_date"] = entity.MethodDateparser
		return
	}

	v := strings.TrimSpace(all[0].Raw)
	rec.GraduationDate = &v
	rec.ConfidenceScores["graduation_date"] = 0.6
	rec.ExtractionMethods["graduation_date"] = entity.MethodRegex
}

func containsAnyWord(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
