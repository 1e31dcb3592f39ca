package utils

import "strconv"

// FormatVND renders a price with dot thousand separators, the way prices
// are written in Vietnamese shops (5.000.000).
func FormatVND(price int64) string {
	s := strconv.FormatInt(price, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
