package entity

// EmploymentProof holds the identity fields found on a payslip. Valid is true
// when at least an employee name or ID was found.
type EmploymentProof struct {
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeID   *string `json:"employee_id,omitempty"`
	Designation  *string `json:"designation,omitempty"`
	Valid        bool    `json:"valid"`
}

// PayslipRecord is the canonical structured output for a processed payslip.
// Components maps component name (basic, hra, variable_pay, total_earnings,
// total_deductions, net_pay, net_salary) to a positive amount; a missing key
// means the component was not found.
type PayslipRecord struct {
	Components      map[string]float64 `json:"components"`
	EmploymentProof EmploymentProof    `json:"employment_proof"`
	FileProcessed   string             `json:"file_processed,omitempty"`
	Error           string             `json:"error,omitempty"`
	RequiresOCR     bool               `json:"requires_ocr,omitempty"`
}
