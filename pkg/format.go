package pkg

import (
	"fmt"
	"strings"
)

// FormatCurrency renders amounts as $1,234.56. Both the PDF documents and
// the quote emails print money through this one formatter.
func FormatCurrency(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot:]

	neg := false
	if strings.HasPrefix(intPart, "-") {
		neg = true
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := "$" + b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
