package validators

// IsPhoneDigits reports whether phone is a non-empty string of ASCII
// digits.
func IsPhoneDigits(phone string) bool {
	if phone == "" {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
