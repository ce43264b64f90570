package auth

import "strings"

// NormalizePhone reduces a phone number to digits only with the Kazakhstan
// country code: "8 707 812 67 98" and "+7 (707) 812-67-98" both become
// "77078126798".
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}

	if len(digits) == 11 && digits[0] == '8' {
		digits = "7" + digits[1:]
	}
	if len(digits) == 10 {
		digits = "7" + digits
	}
	return digits
}

// PhoneVariants returns every stored representation a number may have been
// saved under, covering legacy "+7..." and "8..." formats.
func PhoneVariants(raw string) []string {
	normalized := NormalizePhone(raw)
	if normalized == "" {
		return nil
	}

	variants := []string{normalized, "+" + normalized}
	if strings.HasPrefix(normalized, "7") && len(normalized) == 11 {
		legacy := "8" + normalized[1:]
		variants = append(variants, legacy, "+"+legacy)
	}
	return variants
}
