package formatter

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatNumber converts an integer to a string with commas as thousands separators.
// Example: 1234567 -> "1,234,567"
func FormatNumber(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		s = s[1:]
	}

	le := len(s)
	if le <= 3 {
		if n < 0 {
			return "-" + s
		}
		return s
	}

	sepCount := (le - 1) / 3

	res := make([]byte, le+sepCount)

	j := len(res) - 1
	for i := le - 1; i >= 0; i-- {
		res[j] = s[i]
		j--
		if (le-i)%3 == 0 && i > 0 {
			res[j] = ','
			j--
		}
	}

	if n < 0 {
		return "-" + string(res)
	}
	return string(res)
}

// CompactCount abbreviates a non-negative count the way feed UIs render like
// totals. Examples: 932 -> "932", 1200 -> "1.2K", 4000000 -> "4M".
func CompactCount(n int) string {
	switch {
	case n < 1000:
		return strconv.Itoa(n)
	case n < 1_000_000:
		return compactUnit(n, 1000, "K")
	default:
		return compactUnit(n, 1_000_000, "M")
	}
}

func compactUnit(n, unit int, suffix string) string {
	whole := n / unit
	tenth := (n % unit) * 10 / unit
	if tenth == 0 {
		return fmt.Sprintf("%d%s", whole, suffix)
	}
	return strings.TrimSuffix(fmt.Sprintf("%d.%d", whole, tenth), ".0") + suffix
}
