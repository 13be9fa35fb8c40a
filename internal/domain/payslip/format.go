package payslip

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a money value with thousands grouping and exactly
// two fraction digits, e.g. 45000.5 becomes "45,000.50". Negative values
// keep their sign.
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	out := b.String() + "." + fracPart
	if negative {
		out = "-" + out
	}
	return out
}

// DocumentFileName names the payslip download for one employee-month,
// e.g. "Payslip_Jane_Doe_January 2025.pdf".
func DocumentFileName(input EmployeeInput) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, input.FullName)
	return "Payslip_" + name + "_" + input.Month + ".pdf"
}
