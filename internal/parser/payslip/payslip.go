// Package payslip extracts salary components and employment-proof fields
// from payslip text.
package payslip

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"hiredocs/internal/cascade"
	"hiredocs/internal/entity"
)

const amount = `(\d{1,6}(?:\.\d{2})?)`

// Component cascades. Order inside each list is priority order.
var componentCascades = []*cascade.Cascade{
	cascade.New("basic",
		`basic\s*(?:pay|salary)?\s*[:\-|]?\s*`+amount,
		`basic\s*`+amount,
		`(?:basic\s*pay|basic\s*salary)\s*`+amount,
	),
	cascade.New("hra",
		`(?:hra|house\s*rent\s*allowance)\s*[:\-|]?\s*`+amount,
		`house\s*rent\s*allowance\s*`+amount,
		`hra\s*`+amount,
	),
	cascade.New("variable_pay",
		`(?:variable\s*pay|incentive\s*pay|bonus|other\s*allowance|i[cn]entive)\s*[:\-|]?\s*`+amount,
		`(?:meal\s*allowance|transport\s*allowance|special\s*allowance)\s*[:\-|]?\s*`+amount,
	),
	cascade.New("total_earnings",
		`(?:total\s*earnings?|gross\s*earnings?|gross\s*pay|total\s*pay)\s*[:\-|]?\s*`+amount,
	),
	cascade.New("total_deductions",
		`(?:total\s*deductions?|total\s*deduction)\s*[:\-|]?\s*`+amount,
	),
	cascade.New("net_pay",
		`net\s*pay[|\s]*`+amount,
		`(?:net\s*(?:salary|payable)|total\s*net\s*payable|employee\s*net\s*pay)\s*[:\-|]?\s*`+amount,
		`(?:take\s*home|net\s*amount)\s*[:\-|]?\s*`+amount,
	),
}

// Labeled identity fields.
var proofCascades = []*cascade.Cascade{
	cascade.New("employee_name",
		`(?:employee\s*name|name)\s*[:\-]?\s*([A-Za-z][A-Za-z\s]{1,30})`,
		`name\s*:\s*([A-Za-z][A-Za-z\s]{1,30})`,
	),
	cascade.New("employee_id",
		`(?:employee\s*id|emp\s*id|id)\s*[:\-]?\s*(\w+)`,
		`employee\s*id\s*:\s*(\w+)`,
	),
	cascade.New("designation",
		`designation\s*[:\-]?\s*([A-Za-z][A-Za-z\s]{1,40})`,
		`(?:position|role|title)\s*[:\-]?\s*([A-Za-z][A-Za-z\s]{1,40})`,
	),
}

var (
	reTrailingLabel = regexp.MustCompile(`(?i)\s*(pf\s*no|employee|department|designation).*$`)
	reStandalone    = regexp.MustCompile(`\b(\d{4,6}(?:\.\d{2})?)\b`)
)

// Bounds for the last-resort standalone net-pay heuristic. The window and
// range come straight from production data with no stated rationale; they are
// tunable, not load-bearing (pending product-owner confirmation).
const (
	standaloneWindow = 5
	standaloneMin    = 1000
	standaloneMax    = 500000
)

// Parse extracts payslip components and employment-proof fields from document
// text. Missing fields are absent from the result rather than zero; it only
// errors (in-record) on empty input.
func Parse(text string, logger *slog.Logger) entity.PayslipRecord {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(text) == "" {
		return entity.PayslipRecord{Error: "No text extracted from the document"}
	}

	// strip currency markers and group separators before the amount regexes run
	text = strings.NewReplacer("\t", " ", "₹", "", ",", "").Replace(text)

	rec := entity.PayslipRecord{Components: map[string]float64{}}

	for _, c := range componentCascades {
		cands := c.Match(text)
		policy := cascade.First
		if c.Field == "net_pay" {
			// the final total on the page wins, not the first line item
			policy = cascade.Last
		}
		if v, ok := pickAmount(cands, policy); ok {
			rec.Components[c.Field] = v
		}
	}

	for _, c := range proofCascades {
		if v, ok := pickProof(c, text); ok {
			switch c.Field {
			case "employee_name":
				rec.EmploymentProof.EmployeeName = &v
			case "employee_id":
				rec.EmploymentProof.EmployeeID = &v
			case "designation":
				rec.EmploymentProof.Designation = &v
			}
		}
	}

	// last-resort: a bare number near the bottom of the slip. Only when the
	// derivation below cannot compute net pay from the labeled totals.
	_, hasNet := rec.Components["net_pay"]
	_, hasEarnings := rec.Components["total_earnings"]
	if !hasNet && !hasEarnings {
		if v, ok := standaloneNetPay(text); ok {
			logger.Debug("net pay recovered from standalone number heuristic", "value", v)
			rec.Components["net_pay"] = v
		}
	}

	deriveTotals(rec.Components)

	rec.EmploymentProof.Valid = rec.EmploymentProof.EmployeeName != nil || rec.EmploymentProof.EmployeeID != nil
	return rec
}

func pickAmount(cands []cascade.Candidate, policy cascade.Policy) (float64, bool) {
	// drop candidates that do not parse as a positive amount before selecting
	var valid []cascade.Candidate
	for _, c := range cands {
		if v, err := strconv.ParseFloat(c.Raw, 64); err == nil && v > 0 {
			valid = append(valid, c)
		}
	}
	best, ok := policy(valid)
	if !ok {
		return 0, false
	}
	v, _ := strconv.ParseFloat(best.Raw, 64)
	return v, true
}

func pickProof(c *cascade.Cascade, text string) (string, bool) {
	for _, cand := range c.Match(text) {
		v := strings.TrimSpace(cand.Raw)
		v = strings.TrimSpace(reTrailingLabel.ReplaceAllString(v, ""))
		// keep only the labeled line, not whatever OCR glued after it
		if i := strings.IndexByte(v, '\n'); i >= 0 {
			v = strings.TrimSpace(v[:i])
		}
		if len(v) > 1 && !isAllDigits(v) {
			return v, true
		}
	}
	return "", false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// standaloneNetPay scans the last few lines for a bare plausible amount.
func standaloneNetPay(text string) (float64, bool) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	start := len(lines) - standaloneWindow
	if start < 0 {
		start = 0
	}
	tail := lines[start:]
	for i := len(tail) - 1; i >= 0; i-- {
		nums := reStandalone.FindAllString(tail[i], -1)
		if len(nums) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(nums[len(nums)-1], 64)
		if err == nil && v >= standaloneMin && v <= standaloneMax {
			return v, true
		}
	}
	return 0, false
}

// deriveTotals fills in whichever of net pay / total earnings can be computed
// from the other two, then sets the net_salary alias.
func deriveTotals(components map[string]float64) {
	earnings := components["total_earnings"]
	deductions := components["total_deductions"]
	netPay := components["net_pay"]

	if earnings > 0 && netPay == 0 {
		components["net_pay"] = earnings - deductions
	} else if netPay > 0 && earnings == 0 {
		components["total_earnings"] = netPay + deductions
	}

	components["net_salary"] = components["net_pay"]
}
