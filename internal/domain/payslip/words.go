package payslip

var (
	onesNames  = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teenNames  = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tensNames  = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
	groupNames = []string{"", "Thousand", "Million", "Billion"}
)

// NumberToWords spells an integer out in English, e.g. 1234567 becomes
// "One Million Two Hundred Thirty Four Thousand Five Hundred Sixty Seven".
// Zero base-1000 groups are omitted entirely. Supported magnitudes run up
// to billions.
func NumberToWords(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n < 0 {
		return "Minus " + NumberToWords(-n)
	}

	word := ""
	for i := 0; n > 0; i++ {
		if group := n % 1000; group != 0 {
			segment := belowThousand(int(group))
			if i > 0 && i < len(groupNames) {
				segment += " " + groupNames[i]
			}
			if word != "" {
				segment += " " + word
			}
			word = segment
		}
		n /= 1000
	}
	return word
}

func belowThousand(n int) string {
	switch {
	case n == 0:
		return ""
	case n < 10:
		return onesNames[n]
	case n < 20:
		return teenNames[n-10]
	case n < 100:
		word := tensNames[n/10]
		if n%10 != 0 {
			word += " " + onesNames[n%10]
		}
		return word
	default:
		word := onesNames[n/100] + " Hundred"
		if n%100 != 0 {
			word += " " + belowThousand(n%100)
		}
		return word
	}
}
