package utils

import (
	"strings"
)

// NormalizePhone strips everything but digits so that "+1 (555) 000-0000"
// and "15550000000" compare equal. Phone numbers are stored and looked up
// in this form only.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePromoCode trims whitespace and uppercases so promo matching is
// case-insensitive. Codes are stored uppercase.
func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
