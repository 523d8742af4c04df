package cli

import (
	"math"
	"strconv"
	"strings"
)

// FormatINR renders an amount as rupees with Indian digit grouping, e.g.
// 1234567.5 -> "₹12,34,567.50". Whole amounts drop the paise.
func FormatINR(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	// Round to whole paise before splitting.
	paise := int64(math.Floor(v*100 + 0.5))
	whole := paise / 100
	frac := paise % 100

	out := sign + "₹" + groupINR(strconv.FormatInt(whole, 10))
	if frac > 0 {
		out += "." + pad2(frac)
	}
	return out
}

// groupINR applies en-IN digit grouping: the last three digits form one
// group, the rest group in pairs (12,34,567).
func groupINR(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	groups := []string{digits[len(digits)-3:]}
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",")
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

// FormatPercent renders a fraction-of-100 value like "82.0%".
func FormatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', 1, 64) + "%"
}

// Bar renders a horizontal text bar scaled so that maxValue fills width
// runes. A zero or negative maxValue yields an empty bar.
func Bar(value, maxValue float64, width int) string {
	if width <= 0 || maxValue <= 0 || value <= 0 {
		return ""
	}
	n := int(math.Round(value / maxValue * float64(width)))
	if n > width {
		n = width
	}
	if n == 0 && value > 0 {
		n = 1
	}
	return BarStyle.Render(strings.Repeat("█", n))
}
