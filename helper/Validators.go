package helper

import "regexp"

var (
	usernameRe  = regexp.MustCompile(`^[a-zA-Z0-9]{3,}$`)
	urlRe       = regexp.MustCompile(`^(https?://)([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)*/?$`)
	digitRe     = regexp.MustCompile(`\d`)
	lowercaseRe = regexp.MustCompile(`[a-z]`)
	uppercaseRe = regexp.MustCompile(`[A-Z]`)
)

// ValidatePassword requires 8 to 15 characters with at least one digit,
// one lowercase and one uppercase letter.
func ValidatePassword(password string) bool {
	if len(password) < 8 || len(password) > 15 {
		return false
	}
	return digitRe.MatchString(password) &&
		lowercaseRe.MatchString(password) &&
		uppercaseRe.MatchString(password)
}

// ValidateUsername requires at least 3 alphanumeric characters.
func ValidateUsername(username string) bool {
	return usernameRe.MatchString(username)
}

func ValidateURL(url string) bool {
	return urlRe.MatchString(url)
}
