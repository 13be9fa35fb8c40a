package payslip

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Calculate derives a payslip from one sheet row. It fails only when the
// employee name is structurally absent; amount fields follow the sheet's
// silent-default policy and never cause an error. PayDate is stamped from
// the supplied clock.
func Calculate(input EmployeeInput, employer Employer, now time.Time) (Payslip, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return Payslip{}, ErrMissingFullName
	}

	totalEarnings := decimal.Sum(
		ParseAmount(input.GrossSalary),
		ParseAmount(input.BonusCommission),
		ParseAmount(input.Increment),
		ParseAmount(input.ReimbursmentAmount),
		ParseAmount(input.Compensation),
		ParseAmount(input.Adjustments),
	).Round(2)

	totalDeductions := decimal.Sum(
		ParseAmount(input.AbsentsDeduction),
		ParseAmount(input.LatesDeduction),
		ParseAmount(input.OtherDeductions),
		ParseAmount(input.PayrollTaxDeduction),
	).Round(2)

	netPayable := totalEarnings.Sub(totalDeductions)

	return Payslip{
		Employee:          input,
		PayDate:           now.Format("02/01/2006"),
		PayPeriod:         input.Month,
		TotalEarnings:     totalEarnings,
		TotalDeductions:   totalDeductions,
		NetPayable:        netPayable,
		NetPayableInWords: NumberToWords(netPayable.Floor().IntPart()) + " " + employer.Currency,
		EmployerName:      employer.Name,
		EmployerAddress:   employer.Address,
		EmployerPhone:     employer.Phone,
		Currency:          employer.Currency,
		PaymentDetails:    PaymentDetailsNote,
		FooterNote:        FooterNoteText,
		LogoURL:           employer.LogoURL,
	}, nil
}

// ParseAmount applies the sheet's silent-default policy: blank or
// unparseable amounts count as zero rather than failing the row. Grouped
// figures like "50,000.75" are accepted.
func ParseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
