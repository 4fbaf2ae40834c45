package harvest

import (
	"strconv"
	"strings"
)

const currencySymbol = "₹"

// FormatRupees renders an amount with the rupee sign and Indian digit grouping,
// e.g. 100000 -> "₹1,00,000" and -2500 -> "₹-2,500".
func FormatRupees(amount int) string {
	return currencySymbol + GroupIndian(amount)
}

// GroupIndian groups the last three digits, then every two digits above them
func GroupIndian(n int) string {
	digits := strconv.Itoa(n)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var b strings.Builder
	b.WriteString(sign)
	first := len(head) % 2
	if first > 0 {
		b.WriteString(head[:first])
	}
	for i := first; i < len(head); i += 2 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}

// FormatPercent prints a percentage value without trailing zeros (85, 90.5)
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
