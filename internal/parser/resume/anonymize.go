package resume

import "hiredocs/internal/entity"

const (
	redactedName        = "[NAME REDACTED]"
	redactedEmail       = "[EMAIL REDACTED]"
	redactedPhone       = "[PHONE REDACTED]"
	redactedLinkedIn    = "[LINKEDIN REDACTED]"
	redactedGitHub      = "[GITHUB REDACTED]"
	redactedLocation    = "[LOCATION REDACTED]"
	redactedInstitution = "[INSTITUTION REDACTED]"
	redactedCompany     = "[COMPANY REDACTED]"
	redactedDate        = "[DATE REDACTED]"
)

func redact(field **string, placeholder string) {
	if *field != nil {
		v := placeholder
		*field = &v
	}
}

// Anonymize returns a copy of the entities with identifying fields replaced
// by redaction markers. Positions, achievements, degrees, and skills are kept
// so the candidate can still be evaluated blind.
func Anonymize(ents entity.ResumeEntities) entity.ResumeEntities {
	out := ents

	redact(&out.PersonalInfo.Name, redactedName)
	redact(&out.PersonalInfo.Email, redactedEmail)
	redact(&out.PersonalInfo.Phone, redactedPhone)
	redact(&out.PersonalInfo.LinkedIn, redactedLinkedIn)
	redact(&out.PersonalInfo.GitHub, redactedGitHub)
	redact(&out.PersonalInfo.Location, redactedLocation)

	out.Education = make([]entity.EducationEntry, len(ents.Education))
	for i, edu := range ents.Education {
		out.Education[i] = edu
		out.Education[i].Institution = redactedInstitution
		if edu.Date != nil {
			d := redactedDate
			out.Education[i].Date = &d
		}
	}

	out.Experience = make([]entity.ExperienceEntry, len(ents.Experience))
	for i, exp := range ents.Experience {
		out.Experience[i] = exp
		out.Experience[i].Company = redactedCompany
		if exp.DateRange != nil {
			d := redactedDate
			out.Experience[i].DateRange = &d
		}
	}
	return out
}
