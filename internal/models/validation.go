package models

import "regexp"

// ValidationError reports a rejected field value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

var (
	usernameRe   = regexp.MustCompile(`^[a-zA-Z0-9._ ]{3,20}$`)
	doubledSepRe = regexp.MustCompile(`[_.]{2}`)
	emailRe      = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)
)

// ValidateUsername enforces 3-20 characters from letters, digits, dot,
// underscore and space, with no doubled separators.
func ValidateUsername(username string) error {
	if !usernameRe.MatchString(username) {
		return &ValidationError{Field: "username", Message: "must be 3-20 characters of letters, digits, dots, underscores or spaces"}
	}
	if doubledSepRe.MatchString(username) {
		return &ValidationError{Field: "username", Message: "must not repeat dots or underscores"}
	}
	return nil
}

// ValidateEmail checks the address shape.
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return &ValidationError{Field: "email", Message: "is not a valid address"}
	}
	return nil
}

// ValidatePassword enforces the minimum length.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return &ValidationError{Field: "password", Message: "must be at least 8 characters"}
	}
	return nil
}
