package domain

import "regexp"

// ServiceEngineer is a person assignable to maintenance periods and the
// author of service reports. Stored as an independent collection and
// referenced by id.
type ServiceEngineer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe = regexp.MustCompile(`^\+380\d{9}$`)
)

func ValidEmail(s string) bool { return emailRe.MatchString(s) }

// ValidPhone accepts the Ukrainian mobile format +380XXXXXXXXX. Empty is
// allowed, the field is optional.
func ValidPhone(s string) bool {
	if s == "" {
		return true
	}
	return phoneRe.MatchString(s)
}
