package payslip

import "github.com/shopspring/decimal"

// EmployeeInput is one row of the uploaded compensation sheet. Every field
// arrives as trimmed text; amount fields that are blank or unparseable are
// treated as zero when the payslip is calculated.
type EmployeeInput struct {
	Month         string `json:"month"`
	FullName      string `json:"fullName"`
	CNICNumber    string `json:"cnicNumber"`
	Designation   string `json:"designation"`
	DateOfJoining string `json:"dateOfJoining"`

	GrossSalary        string `json:"grossSalary"`
	BonusCommission    string `json:"bonusCommission"`
	Increment          string `json:"increment"`
	ReimbursmentAmount string `json:"reimbursmentAmount"`
	Compensation       string `json:"compensation"`
	Adjustments        string `json:"adjustments"`

	AbsentsDeduction    string `json:"absentsDeduction"`
	LatesDeduction      string `json:"latesDeduction"`
	OtherDeductions     string `json:"otherDeductions"`
	PayrollTaxDeduction string `json:"payrollTaxDeduction"`
}

// Employer identifies the issuing company on every payslip. It is injected
// configuration, not derived from the uploaded sheet.
type Employer struct {
	Name     string
	Address  string
	Phone    string
	Currency string
	LogoURL  string
}

// Payslip is the calculated record a document is rendered from. Totals are
// rounded to two decimal places and NetPayable is always exactly
// TotalEarnings minus TotalDeductions.
type Payslip struct {
	Employee          EmployeeInput   `json:"employeeDetails"`
	PayDate           string          `json:"payDate"`
	PayPeriod         string          `json:"payPeriod"`
	TotalEarnings     decimal.Decimal `json:"totalEarnings"`
	TotalDeductions   decimal.Decimal `json:"totalDeductions"`
	NetPayable        decimal.Decimal `json:"netPayable"`
	NetPayableInWords string          `json:"netPayableInWords"`
	EmployerName      string          `json:"employerName"`
	EmployerAddress   string          `json:"employerAddress"`
	EmployerPhone     string          `json:"employerPhone"`
	Currency          string          `json:"currency"`
	PaymentDetails    string          `json:"paymentDetails"`
	FooterNote        string          `json:"footerNote"`
	LogoURL           string          `json:"logoUrl"`
}

// BatchRecord tracks one row through a generation attempt. Document holds
// the rendered PDF as a base64 data URI once the record has succeeded.
type BatchRecord struct {
	ID       string        `json:"id"`
	Input    EmployeeInput `json:"input"`
	Status   string        `json:"status"`
	Document string        `json:"document,omitempty"`
	Err      string        `json:"error,omitempty"`
}
