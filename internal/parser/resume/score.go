package resume

import (
	"sort"
	"strings"

	"hiredocs/internal/common"
	"hiredocs/internal/entity"
	"hiredocs/internal/nlp"
)

// Scorer computes candidate-fit scores against a job description. The
// weights come from configuration rather than being baked in.
type Scorer struct {
	cfg    common.ScoringConfig
	tokens nlp.KeywordTokenizer
}

func NewScorer(cfg common.ScoringConfig, tokens nlp.KeywordTokenizer) *Scorer {
	if tokens == nil {
		tokens = nlp.Unavailable{}
	}
	return &Scorer{cfg: cfg, tokens: tokens}
}

// Fit scores a candidate 0..100 per factor and combines them with the
// configured weights. A missing job description yields all zeros.
func (s *Scorer) Fit(ents entity.ResumeEntities, jobDescription string) entity.FitScores {
	var scores entity.FitScores
	if jobDescription == "" {
		return scores
	}

	scores.SkillsMatch = s.skillsMatch(ents.Skills, jobDescription)

	if len(ents.Experience) > 0 {
		scores.ExperienceRelevance = s.experienceRelevance(ents.Experience, jobDescription)

		jobCount := len(ents.Experience)
		scores.TenureStability = min(70+float64(jobCount)*5, 100)
		growth := 50.0
		if jobCount > 1 {
			growth += 10 * float64(jobCount)
		}
		scores.GrowthTrajectory = min(growth, 100)
	}

	if len(ents.Education) > 0 {
		scores.EducationMatch = s.educationMatch(ents.Education)
	}

	scores.TotalFit = scores.SkillsMatch*s.cfg.SkillsWeight +
		scores.ExperienceRelevance*s.cfg.ExperienceWeight +
		scores.EducationMatch*s.cfg.EducationWeight +
		scores.TenureStability*s.cfg.TenureWeight +
		scores.GrowthTrajectory*s.cfg.GrowthWeight
	return scores
}

// skillsMatch is the fraction of the candidate's skills named in the job
// description; soft skills count half.
func (s *Scorer) skillsMatch(skills entity.Skills, jobDescription string) float64 {
	jd := strings.ToLower(jobDescription)

	matches := 0.0
	total := len(skills.Technical) + len(skills.Soft)
	if total == 0 {
		return 0
	}
	for _, skill := range skills.Technical {
		if strings.Contains(jd, strings.ToLower(skill)) {
			matches++
		}
	}
	for _, skill := range skills.Soft {
		if strings.Contains(jd, strings.ToLower(skill)) {
			matches += 0.5
		}
	}
	return matches / float64(total) * 100
}

// experienceRelevance measures keyword overlap between the candidate's
// experience text and the job description. Falls back to a neutral score when
// the tokenizer is unavailable.
func (s *Scorer) experienceRelevance(exps []entity.ExperienceEntry, jobDescription string) float64 {
	if !s.tokens.Available() {
		return 50
	}
	jdKeywords := s.tokens.Keywords(jobDescription)
	if len(jdKeywords) == 0 {
		return 50
	}

	var sb strings.Builder
	for _, exp := range exps {
		sb.WriteString(exp.Company)
		sb.WriteByte(' ')
		if exp.Position != nil {
			sb.WriteString(*exp.Position)
			sb.WriteByte(' ')
		}
		sb.WriteString(strings.Join(exp.Achievements, " "))
		sb.WriteByte(' ')
	}
	expKeywords := toSet(s.tokens.Keywords(sb.String()))

	overlap := 0
	for _, kw := range toSortedKeys(toSet(jdKeywords)) {
		if _, ok := expKeywords[kw]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(len(jdKeywords)) * 100
}

func (s *Scorer) educationMatch(education []entity.EducationEntry) float64 {
	hasLevel := func(substrs ...string) bool {
		for _, edu := range education {
			if edu.Degree == nil {
				continue
			}
			deg := strings.ToLower(*edu.Degree)
			for _, sub := range substrs {
				if strings.Contains(deg, sub) {
					return true
				}
			}
		}
		return false
	}
	switch {
	case hasLevel("phd", "ph.d"):
		return s.cfg.PhDScore
	case hasLevel("master"):
		return s.cfg.MasterScore
	case hasLevel("bachelor"):
		return s.cfg.BachelorScore
	default:
		return s.cfg.DefaultScore
	}
}

func toSet(words []string) map[string]struct{} {
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		out[w] = struct{}{}
	}
	return out
}

func toSortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Rank orders candidates by total fit, best first, and stamps 1-based ranks.
func Rank(candidates []*entity.ResumeRecord) []*entity.ResumeRecord {
	ranked := append([]*entity.ResumeRecord(nil), candidates...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return fitOf(ranked[i]) > fitOf(ranked[j])
	})
	for i, c := range ranked {
		c.Rank = i + 1
	}
	return ranked
}

func fitOf(r *entity.ResumeRecord) float64 {
	if r.FitScores == nil {
		return 0
	}
	return r.FitScores.TotalFit
}

// Shortlist flags candidates at or above the threshold, up to maxCandidates
// when positive, and returns the shortlisted subset.
func Shortlist(ranked []*entity.ResumeRecord, threshold float64, maxCandidates int) []*entity.ResumeRecord {
	var shortlisted []*entity.ResumeRecord
	for _, c := range ranked {
		if fitOf(c) >= threshold && (maxCandidates <= 0 || len(shortlisted) < maxCandidates) {
			shortlisted = append(shortlisted, c)
		}
	}
	inShortlist := make(map[*entity.ResumeRecord]struct{}, len(shortlisted))
	for _, c := range shortlisted {
		inShortlist[c] = struct{}{}
	}
	for _, c := range ranked {
		_, ok := inShortlist[c]
		flag := ok
		c.Shortlisted = &flag
	}
	return shortlisted
}
