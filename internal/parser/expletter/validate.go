package expletter

import (
	"strings"
	"time"

	"hiredocs/internal/entity"
)

var requiredLetterFields = []string{"org_name", "job_title", "employee_name", "start_date", "end_date"}

// validateLetter checks the extracted fields for internal consistency and
// returns the report together with human-readable anomalies.
func validateLetter(data entity.LetterData, now time.Time) (entity.ConsistencyReport, []string) {
	var anomalies []string
	report := entity.ConsistencyReport{DatesValid: true, DatesLogical: true}

	present := map[string]bool{
		"org_name":      data.OrgName != nil,
		"job_title":     data.JobTitle != nil,
		"employee_name": data.EmployeeName != nil,
		"start_date":    data.StartDate != nil,
		"end_date":      data.EndDate != nil,
	}
	var missing []string
	for _, f := range requiredLetterFields {
		if !present[f] {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		anomalies = append(anomalies, "Missing required fields: "+strings.Join(missing, ", "))
	} else {
		report.AllRequiredFieldsPresent = true
	}

	if data.OrgName != nil && len(*data.OrgName) > 2 {
		report.OrganizationNameValid = true
	}
	if data.JobTitle != nil && len(*data.JobTitle) > 2 {
		report.JobTitleValid = true
	}
	if data.EmployeeName != nil && len(strings.Fields(*data.EmployeeName)) >= 2 {
		report.EmployeeNameValid = true
	}

	if data.StartDate != nil && data.EndDate != nil {
		start, errS := time.Parse("2006-01-02", *data.StartDate)
		end, errE := time.Parse("2006-01-02", *data.EndDate)
		if errS != nil || errE != nil {
			report.DatesValid = false
			anomalies = append(anomalies, "Invalid date format in extracted dates")
		} else {
			if !end.After(start) {
				report.DatesLogical = false
				anomalies = append(anomalies, "End date should be after start date")
			}
			if start.After(now) {
				anomalies = append(anomalies, "Start date is in the future")
			}
			if now.Sub(start).Hours() > 24*365*50 {
				anomalies = append(anomalies, "Start date seems unreasonably old")
			}
		}
	}

	if data.ManagerName != nil || data.ManagerContact != nil {
		report.ManagerInfoPresent = true
	}
	return report, anomalies
}
