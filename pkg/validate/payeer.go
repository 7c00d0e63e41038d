package validate

import "regexp"

var payeerRe = regexp.MustCompile(`^P\d{7,10}$`)

// IsPayeerAccount reports whether s looks like a Payeer account number
// (letter P followed by 7 to 10 digits).
func IsPayeerAccount(s string) bool {
	return payeerRe.MatchString(s)
}
